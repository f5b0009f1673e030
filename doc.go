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

/*
Package seriesdb provides a lightweight and easy-to-use client for interacting with a SeriesDB service.

# Client

Use NewClient to create a client struct. This is the major entrance to construct structs for interacting with SeriesDB:

	client, err := seriesdb.NewClient(&seriesdb.Config{
		Address: "http://<seriesdb-host>:<seriesdb-port:-8086>",
	})

The address may omit the scheme and the port; "http" and 8086 are assumed.

# Write Data

Bind a database and write points in line protocol:

	db, err := client.CreateDatabase(ctx, "metrics")
	if err != nil {
		return err
	}
	err = db.WritePoint(ctx, &seriesdb.Point{
		Measurement: "cpu",
		Tags:        seriesdb.Tags{"host": "server01"},
		Fields:      seriesdb.Fields{"value": 0.64},
	})

# Query Data

Query returns the result series as a column-oriented Table:

	table, err := db.Query(ctx, "SELECT * FROM cpu")
	if err != nil {
		return err
	}
	values := table.Column("value")

For result sets too large to arrive as one JSON document, QueryChunked
streams the response as a sequence of self-contained JSON documents and
concatenates them into one Table:

	table, err := db.QueryChunked(ctx, "SELECT * FROM cpu", 10000)
*/
package seriesdb
