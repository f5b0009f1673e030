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
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrNoFields is returned when writing a point whose field set is empty.
var ErrNoFields = errors.New("must provide at least one value")

// ConfigError indicates the configured server address could not be parsed.
type ConfigError struct {
	Address string
	Err     error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid server address %q: %s", e.Address, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// QueryError represents a failed query. Message is the raw response body.
type QueryError struct {
	StatusCode int
	Message    string
}

func (e *QueryError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}
	return fmt.Sprintf("query failed: %d: %s", e.StatusCode, e.Message)
}

// WriteError represents a failed write. Message is the raw response body.
type WriteError struct {
	StatusCode int
	Message    string
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write failed: %d: %s", e.StatusCode, e.Message)
}

// DatabaseError represents a failed database management operation.
// Message is the raw response body.
type DatabaseError struct {
	StatusCode int
	Message    string
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("database operation failed: %d: %s", e.StatusCode, e.Message)
}

// MalformedResultError indicates a query response that violates the
// documented result envelope contract.
type MalformedResultError struct {
	Reason string
}

func (e *MalformedResultError) Error() string {
	return fmt.Sprintf("malformed result: %s", e.Reason)
}

// readBody drains the response body for use as error diagnostics.
func readBody(resp *http.Response) string {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Sprintf("(unreadable body: %s)", err)
	}
	return string(data)
}

// sneakyBodyClose closes the body and ignores the error.
// This is useful to close the HTTP response body when we don't care about the error.
func sneakyBodyClose(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
