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

package errorchain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dadrus/pathtrie/internal/x/errorchain"
)

var (
	errTest1 = errors.New("test error 1")
	errTest2 = errors.New("test error 2")
)

type competingPaths interface {
	Competitors() []string
}

type paths []string

func (p paths) Competitors() []string { return p }

func TestErrorChainNew(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		err    *errorchain.ErrorChain
		expMsg string
	}{
		"without message": {
			err:    errorchain.New(errTest1),
			expMsg: "test error 1",
		},
		"with message": {
			err:    errorchain.NewWithMessage(errTest1, "foobar"),
			expMsg: "test error 1: foobar",
		},
		"with formatted message": {
			err:    errorchain.NewWithMessagef(errTest1, "%s%s", "foo", "bar"),
			expMsg: "test error 1: foobar",
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			require.ErrorIs(t, tc.err, errTest1)
			require.NotErrorIs(t, tc.err, errTest2)
			assert.Equal(t, tc.expMsg, tc.err.Error())
		})
	}
}

func TestErrorChainCausedBy(t *testing.T) {
	t.Parallel()

	err := errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2).CausedBy(nil)

	require.ErrorIs(t, err, errTest1)
	require.ErrorIs(t, err, errTest2)
	assert.Equal(t, "test error 1: foo: test error 2", err.Error())
	assert.Equal(t, []error{errTest1, errTest2}, err.Errors())
	assert.Equal(t, "test error 1: foo", err.String())
}

func TestErrorChainErrorContext(t *testing.T) {
	t.Parallel()

	err := errorchain.New(errTest1).WithErrorContext(paths{"/a", "/b"})

	var competing competingPaths

	require.ErrorAs(t, err, &competing)
	assert.Equal(t, []string{"/a", "/b"}, competing.Competitors())
	assert.Equal(t, paths{"/a", "/b"}, err.ErrorContext())

	var other interface{ Other() }

	require.False(t, errors.As(err, &other))
}

func TestErrorChainMarshalJSON(t *testing.T) {
	t.Parallel()

	for uc, tc := range map[string]struct {
		err     *errorchain.ErrorChain
		expJSON string
	}{
		"code only": {
			err:     errorchain.New(errors.New("no route found")),
			expJSON: `{"code":"noRouteFound"}`,
		},
		"with message and cause": {
			err:     errorchain.NewWithMessage(errTest1, "foo").CausedBy(errTest2),
			expJSON: `{"code":"testError1","message":"foo"}`,
		},
		"with details": {
			err:     errorchain.New(errors.New("ambiguous route")).WithErrorContext([]string{"/a", "/b"}),
			expJSON: `{"code":"ambiguousRoute","details":["/a","/b"]}`,
		},
	} {
		t.Run(uc, func(t *testing.T) {
			t.Parallel()

			res, err := tc.err.MarshalJSON()
			require.NoError(t, err)
			assert.JSONEq(t, tc.expJSON, string(res))
		})
	}
}
