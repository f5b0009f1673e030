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
	"context"
	"fmt"
	"net/http"
)

// Database is a handle to one database on a SeriesDB server.
//
// It shares the Client it was created from and holds no resources of
// its own; there is nothing to tear down when it is no longer used.
type Database struct {
	c *Client

	// Name is the name of the database.
	Name string
}

// Database creates a handle bound to the named database.
//
// This is pure construction: no request is issued and no existence
// check is performed.
func (c *Client) Database(name string) *Database {
	return &Database{
		c:    c,
		Name: name,
	}
}

// CreateDatabase creates the named database and returns a handle to it.
//
// Success means the server accepted the statement; the database is not
// re-read to verify it exists.
func (c *Client) CreateDatabase(ctx context.Context, name string) (*Database, error) {
	statement := fmt.Sprintf(`CREATE DATABASE %s`, quoteIdent(name))
	status, body, err := c.execStatement(ctx, statement)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, &DatabaseError{StatusCode: status, Message: body}
	}
	return c.Database(name), nil
}

// Query runs the statement against this database and returns the result
// series as a Table. A nil Table means the query produced no result.
func (db *Database) Query(ctx context.Context, statement string) (*Table, error) {
	return db.c.query(ctx, &queryParams{
		Database:  db.Name,
		Statement: statement,
	})
}

// QueryChunked runs the statement in chunked mode, streaming the result
// as documents of at most chunkSize rows, and returns their
// concatenation as one Table.
func (db *Database) QueryChunked(ctx context.Context, statement string, chunkSize int) (*Table, error) {
	return db.c.queryChunked(ctx, &queryParams{
		Database:  db.Name,
		Statement: statement,
		ChunkSize: chunkSize,
	})
}

// WritePoint writes one point to this database with second precision.
func (db *Database) WritePoint(ctx context.Context, point *Point) error {
	return db.c.writePoint(ctx, db.Name, point)
}

func quoteIdent(s string) string {
	var b bytes.Buffer
	b.WriteByte('"')
	for _, c := range s {
		switch c {
		case '\t':
			b.WriteString("\\t")
		case '\n':
			b.WriteString("\\n")
		case '\r':
			b.WriteString("\\r")
		case '\\':
			b.WriteString("\\\\")
		case '"':
			b.WriteString("\\\"")
		default:
			if c < 0x20 {
				b.WriteString(fmt.Sprintf("\\x%02x", c))
				break
			}

			b.WriteRune(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
