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

package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Start(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Stop(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)

	if val, ok := args.Get(0).([]byte); ok {
		return val, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return m.Called(ctx, key, value, ttl).Error(0)
}
