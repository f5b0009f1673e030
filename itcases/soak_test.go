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

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	seriesdb "github.com/seriesdb/seriesdb-sdk/go"
	"github.com/stretchr/testify/require"
)

// TestSoakWriteChunkedRead writes a few hundred random points and reads
// them back through the chunked path with a chunk size small enough to
// force many chunks on one response body.
func TestSoakWriteChunkedRead(t *testing.T) {
	if testing.Short() {
		t.Skip("soak test")
	}

	c := NewClient(t)
	defer c.Close()

	ctx := context.Background()

	db, err := c.CreateDatabase(ctx, RandomName(t))
	require.NoError(t, err)

	faker := gofakeit.New(0)
	run := uuid.NewString()
	base := time.Now().Add(-time.Hour).Truncate(time.Second)

	const numPoints = 500
	for i := 0; i < numPoints; i++ {
		err := db.WritePoint(ctx, &seriesdb.Point{
			Measurement: "requests",
			Tags: seriesdb.Tags{
				"run":    run,
				"host":   fmt.Sprintf("host%02d", i%10),
				"method": faker.HTTPMethod(),
			},
			Fields: seriesdb.Fields{
				"latency_ms": faker.Float64Range(0.1, 2500),
				"status":     faker.HTTPStatusCode(),
				"user_agent": faker.UserAgent(),
			},
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	table, err := db.QueryChunked(ctx,
		fmt.Sprintf(`SELECT "latency_ms", "status" FROM requests WHERE run = '%s'`, run), 37)
	require.NoError(t, err)
	require.Equal(t, numPoints, table.NumRows())
}
