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

import "fmt"

// Value stores the contents of a single cell from a SeriesDB query result.
type Value any

// queryResponse is the wire shape of a query result envelope.
type queryResponse struct {
	Results []resultEntry `json:"results"`
}

type resultEntry struct {
	Series []series `json:"series"`
	Err    string   `json:"error"`
}

type series struct {
	Name    string    `json:"name"`
	Columns []string  `json:"columns"`
	Values  [][]Value `json:"values"`
}

// Table is a column-oriented view of one result series.
//
// Columns keep the order the server reported them in, all columns share
// equal length, and row order matches arrival order. A nil *Table is the
// "no result at all" marker; a non-nil Table with zero rows still knows
// its columns.
type Table struct {
	columns []string
	data    [][]Value
}

// tableOfResponse converts one decoded result envelope into a Table.
//
// An envelope with no results, no series key or an empty series list
// represents "no rows" and yields a nil Table without error. A row
// shorter than the column list fails the conversion; rows are never
// padded or truncated.
func tableOfResponse(resp *queryResponse) (*Table, error) {
	if len(resp.Results) == 0 {
		return nil, nil
	}
	if resp.Results[0].Err != "" {
		return nil, &QueryError{Message: resp.Results[0].Err}
	}
	if len(resp.Results[0].Series) == 0 {
		return nil, nil
	}

	s := resp.Results[0].Series[0]
	t := &Table{
		columns: s.Columns,
		data:    make([][]Value, len(s.Columns)),
	}
	for i := range t.data {
		t.data[i] = make([]Value, 0, len(s.Values))
	}
	for _, row := range s.Values {
		if len(row) < len(s.Columns) {
			return nil, &MalformedResultError{
				Reason: fmt.Sprintf("row has %d values for %d columns", len(row), len(s.Columns)),
			}
		}
		for i := range s.Columns {
			t.data[i] = append(t.data[i], row[i])
		}
	}
	return t, nil
}

// appendRows appends all rows of other to t.
//
// The column names and their order must match the columns t was built
// with; a disagreeing chunk fails the whole concatenation.
func (t *Table) appendRows(other *Table) error {
	if len(other.columns) != len(t.columns) {
		return &MalformedResultError{
			Reason: fmt.Sprintf("chunk has %d columns, expected %d", len(other.columns), len(t.columns)),
		}
	}
	for i, name := range t.columns {
		if other.columns[i] != name {
			return &MalformedResultError{
				Reason: fmt.Sprintf("chunk column %d is %q, expected %q", i, other.columns[i], name),
			}
		}
	}
	for i := range t.data {
		t.data[i] = append(t.data[i], other.data[i]...)
	}
	return nil
}

// Columns returns the column names in result order.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

// NumRows returns the number of rows. It is zero for the nil Table.
func (t *Table) NumRows() int {
	if t == nil || len(t.data) == 0 {
		return 0
	}
	return len(t.data[0])
}

// Column returns the named column's values in row order, or nil if no
// such column exists.
func (t *Table) Column(name string) []Value {
	if t == nil {
		return nil
	}
	for i, n := range t.columns {
		if n == name {
			return t.data[i]
		}
	}
	return nil
}

// Row returns the i-th row's values in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.columns))
	for c := range t.columns {
		row[c] = t.data[c][i]
	}
	return row
}
