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

package vartrie

import "strings"

func commonPrefixLen(a, b string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}

	return n
}

// offsets returns the positions of all, possibly overlapping, occurrences of needle in text.
func offsets(text, needle string) []int {
	var result []int

	if len(needle) == 0 {
		return result
	}

	for start := 0; start < len(text); start++ {
		idx := strings.Index(text[start:], needle)
		if idx == -1 {
			break
		}

		start += idx
		result = append(result, start)
	}

	return result
}
