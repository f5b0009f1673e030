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

package itcases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	seriesdb "github.com/seriesdb/seriesdb-sdk/go"
	"github.com/stretchr/testify/require"
)

func TestReadAfterWrite(t *testing.T) {
	c := NewClient(t)
	defer c.Close()

	ctx := context.Background()

	db, err := c.CreateDatabase(ctx, RandomName(t))
	require.NoError(t, err)
	t.Logf("With database: %s", db.Name)

	run := uuid.NewString()
	base := time.Now().Add(-time.Minute).Truncate(time.Second)
	for i := 0; i < 10; i++ {
		err := db.WritePoint(ctx, &seriesdb.Point{
			Measurement: "cpu",
			Tags:        seriesdb.Tags{"run": run, "host": "server01"},
			Fields:      seriesdb.Fields{"value": float64(i) / 10},
			Timestamp:   base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	statement := fmt.Sprintf(`SELECT "value" FROM cpu WHERE run = '%s'`, run)
	table, err := db.Query(ctx, statement)
	require.NoError(t, err)
	require.Equal(t, 10, table.NumRows())
	require.Contains(t, table.Columns(), "value")

	chunked, err := db.QueryChunked(ctx, statement, 3)
	require.NoError(t, err)
	require.Equal(t, table.NumRows(), chunked.NumRows())
	require.Equal(t, table.Columns(), chunked.Columns())
	for i := 0; i < table.NumRows(); i++ {
		require.Equal(t, table.Row(i), chunked.Row(i))
	}
}

func TestQueryNoSuchSeries(t *testing.T) {
	c := NewClient(t)
	defer c.Close()

	ctx := context.Background()

	db, err := c.CreateDatabase(ctx, RandomName(t))
	require.NoError(t, err)

	table, err := db.Query(ctx, "SELECT * FROM does_not_exist")
	require.NoError(t, err)
	require.Nil(t, table)
}

func TestPing(t *testing.T) {
	c := NewClient(t)
	defer c.Close()

	version, err := c.Ping(context.Background())
	require.NoError(t, err)
	t.Logf("Server version: %s", version)
}
