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

package parser

// merge combines src into dest. Maps are merged key by key and slices entry by
// entry, with nil entries in src keeping what dest has at that position. In any
// other case src wins.
func merge(dest, src any) any {
	if src == nil {
		return dest
	}

	switch srcVal := src.(type) {
	case map[string]any:
		destVal, ok := dest.(map[string]any)
		if !ok || destVal == nil {
			return src
		}

		for key, val := range srcVal {
			destVal[key] = merge(destVal[key], val)
		}

		return destVal
	case []any:
		destVal, ok := dest.([]any)
		if !ok {
			return src
		}

		for len(destVal) < len(srcVal) {
			destVal = append(destVal, nil)
		}

		for idx, val := range srcVal {
			destVal[idx] = merge(destVal[idx], val)
		}

		return destVal
	default:
		return src
	}
}
