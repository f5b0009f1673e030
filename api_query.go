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
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
)

// queryAPI defines interfaces under /query.
type queryAPI interface {
	// query runs a statement and decodes the single result document.
	query(ctx context.Context, params *queryParams) (*Table, error)
	// queryChunked runs a statement in chunked mode and concatenates the
	// streamed result documents.
	queryChunked(ctx context.Context, params *queryParams) (*Table, error)
}

var _ queryAPI = (*Client)(nil)

type queryParams struct {
	// Database is the database to run the statement against.
	Database string
	// Statement is the query statement to execute.
	Statement string
	// ChunkSize is the number of rows per streamed chunk. Only used by
	// the chunked path.
	ChunkSize int
}

func (c *Client) queryValues(params *queryParams, chunked bool) url.Values {
	values := url.Values{}
	values.Set("db", params.Database)
	values.Set("q", params.Statement)
	if chunked {
		values.Set("chunked", "true")
		values.Set("chunk_size", strconv.Itoa(params.ChunkSize))
	}
	c.authenticate(values)
	return values
}

// query issues a buffered GET to the query endpoint and decodes exactly
// one result document. Callers that know the result is small use this;
// it is the one-iteration form of queryChunked.
func (c *Client) query(ctx context.Context, params *queryParams) (*Table, error) {
	u := c.endpointURL("/query", c.queryValues(params, false))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer sneakyBodyClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &QueryError{StatusCode: resp.StatusCode, Message: readBody(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var envelope queryResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &MalformedResultError{Reason: "decoding result: " + err.Error()}
	}
	return tableOfResponse(&envelope)
}

// queryChunked issues a streamed GET to the query endpoint and consumes
// the response body as a sequence of self-contained JSON documents.
//
// Each document is assembled into a Table; the first non-empty chunk
// becomes the accumulator and later non-empty chunks append to it. The
// loop ends when the decoder reports a clean end of input; a document
// that fails to decode, or a chunk whose columns disagree with the
// accumulator's, fails the whole query and no partial table is
// returned. The response body is closed on every exit path, and a
// cancelled ctx aborts the stream through the transport.
func (c *Client) queryChunked(ctx context.Context, params *queryParams) (*Table, error) {
	u := c.endpointURL("/query", c.queryValues(params, true))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, err
	}
	defer sneakyBodyClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, &QueryError{StatusCode: resp.StatusCode, Message: readBody(resp)}
	}

	dec := json.NewDecoder(resp.Body)
	var table *Table
	for {
		var envelope queryResponse
		err := dec.Decode(&envelope)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			return nil, &MalformedResultError{Reason: "decoding chunk: " + err.Error()}
		}

		chunk, err := tableOfResponse(&envelope)
		if err != nil {
			return nil, err
		}
		if chunk == nil {
			continue
		}
		if table == nil {
			table = chunk
			continue
		}
		if err := table.appendRows(chunk); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// execStatement runs a management statement for its side effect and
// reports the status code and body of a non-200 response.
func (c *Client) execStatement(ctx context.Context, statement string) (int, string, error) {
	values := url.Values{}
	values.Set("q", statement)
	c.authenticate(values)
	u := c.endpointURL("/query", values)

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return 0, "", err
	}
	defer sneakyBodyClose(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, readBody(resp), nil
	}
	return http.StatusOK, "", nil
}
