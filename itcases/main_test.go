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
	"os"
	"strings"
	"testing"

	"github.com/lucasepe/codename"
	seriesdb "github.com/seriesdb/seriesdb-sdk/go"
	"github.com/stretchr/testify/require"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func NewClient(t testing.TB) *seriesdb.Client {
	address := os.Getenv("SERIESDB_ADDRESS")

	if address == "" {
		t.Skip("SERIESDB_ADDRESS not set")
		return nil // unreachable
	}

	c, err := seriesdb.NewClient(&seriesdb.Config{
		Address:  address,
		Username: os.Getenv("SERIESDB_USERNAME"),
		Password: os.Getenv("SERIESDB_PASSWORD"),
	})
	require.NoError(t, err)
	return c
}

func RandomName(t testing.TB) string {
	rng, err := codename.DefaultRNG()
	require.NoError(t, err)
	return strings.ReplaceAll(codename.Generate(rng, 10), "-", "_")
}
