/*
 * Copyright 2025 SeriesDB, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package seriesdb

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

// Tags is the tag set of a point.
type Tags map[string]string

// Fields is the field set of a point. It must not be empty when written.
type Fields map[string]any

// Point is a single measurement record to write.
//
// A Point exists only for the duration of one write call; it is never
// retained by the client.
type Point struct {
	// Measurement is the measurement name.
	Measurement string
	// Tags is the tag set. It may be empty.
	Tags Tags
	// Fields is the field set. It must contain at least one entry.
	Fields Fields
	// Timestamp is the point's time, rounded to the nearest second on
	// encoding. The zero value means the wall clock at encoding time.
	Timestamp time.Time
}

// encodeLine serializes the point into one line of line protocol:
//
//	measurement[,tag=value]* field=value[,field=value]* epochSeconds
//
// Tags and fields are emitted in sorted key order so one call always
// produces the same line. Reserved characters are escaped: ',' and ' '
// in measurement names; ',', '=' and ' ' in tag keys, tag values and
// field keys. String field values are double-quoted with '\' and '"'
// escaped; numbers render in their shortest decimal form; booleans
// render as true/false.
func (p *Point) encodeLine() (string, error) {
	if len(p.Fields) == 0 {
		return "", ErrNoFields
	}

	var b bytes.Buffer
	b.WriteString(escapeMeasurement(p.Measurement))

	for _, k := range sortedKeys(p.Tags) {
		b.WriteByte(',')
		b.WriteString(escapeKey(k))
		b.WriteByte('=')
		b.WriteString(escapeKey(p.Tags[k]))
	}

	b.WriteByte(' ')
	for i, k := range sortedKeys(p.Fields) {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escapeKey(k))
		b.WriteByte('=')
		v, err := formatFieldValue(p.Fields[k])
		if err != nil {
			return "", err
		}
		b.WriteString(v)
	}

	ts := p.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(epochSeconds(ts), 10))
	return b.String(), nil
}

// epochSeconds rounds the time to the nearest whole second.
func epochSeconds(t time.Time) int64 {
	return int64(math.Round(float64(t.UnixNano()) / float64(time.Second)))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escapeMeasurement(s string) string {
	return escapeRunes(s, ',', ' ')
}

func escapeKey(s string) string {
	return escapeRunes(s, ',', '=', ' ')
}

func escapeRunes(s string, reserved ...rune) string {
	var b bytes.Buffer
	for _, c := range s {
		for _, r := range reserved {
			if c == r {
				b.WriteByte('\\')
				break
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}

func formatFieldValue(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return quoteString(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case int:
		return strconv.FormatInt(int64(v), 10), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(v), 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return "", fmt.Errorf("unsupported field value of type %T", v)
	}
}

func quoteString(s string) string {
	var b bytes.Buffer
	b.WriteByte('"')
	for _, c := range s {
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	b.WriteByte('"')
	return b.String()
}
