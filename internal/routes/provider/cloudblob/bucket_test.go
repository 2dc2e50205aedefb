// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cloudblob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	"github.com/dadrus/pathtrie/internal/pathtrie"
)

const (
	usersRouteSet  = "version: \"1\"\nname: users\nroutes: [{id: user, path: '/users/${User}', target: users}]"
	ordersRouteSet = `{"version": "1", "routes": [{"id": "order", "path": "/orders/$Id", "target": "orders"}]}`
)

func newTestBucket(t *testing.T) (string, *blob.Bucket) {
	t.Helper()

	bucketURL := "file://" + t.TempDir()

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	require.NoError(t, err)

	t.Cleanup(func() { _ = bucket.Close() })

	return bucketURL, bucket
}

func writeBlob(t *testing.T, bucket *blob.Bucket, key, contentType, content string) {
	t.Helper()

	require.NoError(t, bucket.WriteAll(context.Background(), key, []byte(content),
		&blob.WriterOptions{ContentType: contentType}))
}

func TestBucketFetchRouteSets(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		prefix string
		setup  func(t *testing.T, bucket *blob.Bucket)
		assert func(t *testing.T, err error, sets []RouteSet, bucketURL string)
	}{
		"empty bucket": {
			setup: func(t *testing.T, _ *blob.Bucket) { t.Helper() },
			assert: func(t *testing.T, err error, sets []RouteSet, _ string) {
				t.Helper()

				require.NoError(t, err)
				assert.Empty(t, sets)
			},
		},
		"route sets below the prefix": {
			prefix: "routes/",
			setup: func(t *testing.T, bucket *blob.Bucket) {
				t.Helper()

				writeBlob(t, bucket, "routes/users.yaml", "application/yaml", usersRouteSet)
				writeBlob(t, bucket, "routes/orders", "application/json", ordersRouteSet)
				writeBlob(t, bucket, "routes/empty.yaml", "application/yaml", "")
				writeBlob(t, bucket, "other/users.yaml", "application/yaml", "foo: [")
			},
			assert: func(t *testing.T, err error, sets []RouteSet, bucketURL string) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, sets, 2)

				assert.Equal(t, "routes/orders@"+bucketURL+"/routes/", sets[0].Key)
				assert.Equal(t, "order", sets[0].Routes[0].ID)
				assert.NotEmpty(t, sets[0].Hash)

				assert.Equal(t, "routes/users.yaml@"+bucketURL+"/routes/", sets[1].Key)
				assert.Equal(t, "users", sets[1].Name)
			},
		},
		"content type derived from the key": {
			setup: func(t *testing.T, bucket *blob.Bucket) {
				t.Helper()

				writeBlob(t, bucket, "orders.json", "text/plain; charset=utf-8", ordersRouteSet)
			},
			assert: func(t *testing.T, err error, sets []RouteSet, _ string) {
				t.Helper()

				require.NoError(t, err)
				require.Len(t, sets, 1)
				assert.Equal(t, "order", sets[0].Routes[0].ID)
			},
		},
		"invalid route set": {
			setup: func(t *testing.T, bucket *blob.Bucket) {
				t.Helper()

				writeBlob(t, bucket, "broken.yaml", "application/yaml", "version: \"1\"")
			},
			assert: func(t *testing.T, err error, _ []RouteSet, _ string) {
				t.Helper()

				require.ErrorIs(t, err, pathtrie.ErrConfiguration)
				require.ErrorContains(t, err, "broken.yaml")
			},
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			bucketURL, bucket := newTestBucket(t)
			tc.setup(t, bucket)

			endpoint := &Bucket{URL: bucketURL, Prefix: tc.prefix}

			sets, err := endpoint.FetchRouteSets(context.Background())

			tc.assert(t, err, sets, bucketURL)
		})
	}
}

func TestBucketFetchRouteSetsFromUnknownScheme(t *testing.T) {
	t.Parallel()

	endpoint := &Bucket{URL: "foo://bar"}

	_, err := endpoint.FetchRouteSets(context.Background())
	require.ErrorIs(t, err, pathtrie.ErrInternal)
}

func TestContentType(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		declared string
		key      string
		expected string
	}{
		"json":                 {declared: "application/json; charset=utf-8", key: "a", expected: "application/json"},
		"yaml":                 {declared: "application/yaml", key: "a.json", expected: "application/yaml"},
		"text yaml":            {declared: "text/x-yaml", key: "a", expected: "application/yaml"},
		"json extension":       {declared: "text/plain", key: "a/b.JSON", expected: "application/json"},
		"no hint at all":       {key: "a/b", expected: "application/yaml"},
		"malformed media type": {declared: ";;", key: "a.json", expected: "application/json"},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, contentType(tc.declared, tc.key))
		})
	}
}
