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
	"net/http"
	"net/url"
)

// writeAPI defines interfaces under /write.
type writeAPI interface {
	// writePoint encodes one point to line protocol and posts it.
	writePoint(ctx context.Context, database string, point *Point) error
}

var _ writeAPI = (*Client)(nil)

const lineProtocolContentType = "text/plain; charset=utf-8"

func (c *Client) writePoint(ctx context.Context, database string, point *Point) error {
	line, err := point.encodeLine()
	if err != nil {
		return err
	}

	values := url.Values{}
	values.Set("db", database)
	values.Set("precision", "s")
	c.authenticate(values)
	u := c.endpointURL("/write", values)

	resp, err := c.http.Post(ctx, u, lineProtocolContentType, []byte(line))
	if err != nil {
		return err
	}
	defer sneakyBodyClose(resp.Body)
	if resp.StatusCode != http.StatusNoContent {
		return &WriteError{StatusCode: resp.StatusCode, Message: readBody(resp)}
	}
	return nil
}
