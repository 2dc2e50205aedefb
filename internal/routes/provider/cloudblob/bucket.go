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
	"bytes"
	"context"
	"crypto/md5" //nolint:gosec
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob" // to support azure blob storage
	_ "gocloud.dev/blob/fileblob"  // to support local directories
	_ "gocloud.dev/blob/gcsblob"   // to support google cloud storage
	_ "gocloud.dev/blob/s3blob"    // to support aws s3 and compatible storages

	"github.com/dadrus/pathtrie/internal/pathtrie"
	"github.com/dadrus/pathtrie/internal/routes"
	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

type RouteSet struct {
	*routes.RouteSet

	Key  string
	Hash []byte
}

type Bucket struct {
	URL    string `mapstructure:"url"    validate:"required,url"`
	Prefix string `mapstructure:"prefix"`
}

func (b *Bucket) ID() string {
	return fmt.Sprintf("%s/%s", b.URL, b.Prefix)
}

// FetchRouteSets reads all blobs below the configured prefix. Empty blobs are skipped.
func (b *Bucket) FetchRouteSets(ctx context.Context) ([]RouteSet, error) {
	bucket, err := blob.OpenBucket(ctx, b.URL)
	if err != nil {
		return nil, errorchain.NewWithMessage(pathtrie.ErrInternal, "failed to open bucket").
			CausedBy(err)
	}

	defer bucket.Close()

	var sets []RouteSet

	it := bucket.List(&blob.ListOptions{Prefix: b.Prefix})

	for {
		obj, err := it.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return nil, errorchain.NewWithMessage(pathtrie.ErrCommunication, "failed to iterate blobs").
				CausedBy(err)
		}

		if obj.IsDir {
			continue
		}

		rs, err := b.fetchRouteSet(ctx, bucket, obj)
		if err != nil {
			return nil, err
		}

		if rs.RouteSet != nil {
			sets = append(sets, rs)
		}
	}

	return sets, nil
}

func (b *Bucket) fetchRouteSet(ctx context.Context, bucket *blob.Bucket, obj *blob.ListObject) (RouteSet, error) {
	attrs, err := bucket.Attributes(ctx, obj.Key)
	if err != nil {
		return RouteSet{}, errorchain.NewWithMessage(pathtrie.ErrCommunication, "failed to get blob attributes").
			CausedBy(err)
	}

	data, err := bucket.ReadAll(ctx, obj.Key)
	if err != nil {
		return RouteSet{}, errorchain.NewWithMessage(pathtrie.ErrCommunication, "failed reading blob contents").
			CausedBy(err)
	}

	rs, err := routes.ParseRouteSet(contentType(attrs.ContentType, obj.Key), bytes.NewReader(data))
	if err != nil {
		return RouteSet{}, errorchain.NewWithMessagef(pathtrie.ErrConfiguration,
			"failed to decode route set from %s", obj.Key).CausedBy(err)
	}

	hash := obj.MD5
	if len(hash) == 0 {
		sum := md5.Sum(data) //nolint:gosec
		hash = sum[:]
	}

	return RouteSet{
		RouteSet: rs,
		Key:      fmt.Sprintf("%s@%s", obj.Key, b.ID()),
		Hash:     hash,
	}, nil
}

// contentType falls back to the file extension if the blob is not labeled as json or yaml.
func contentType(declared, key string) string {
	mediaType, _, _ := mime.ParseMediaType(declared)

	switch mediaType {
	case "application/json":
		return "application/json"
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return "application/yaml"
	}

	if strings.EqualFold(path.Ext(key), ".json") {
		return "application/json"
	}

	return "application/yaml"
}
