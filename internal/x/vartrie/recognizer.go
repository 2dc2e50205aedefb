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

const sigil = '$'

// NameRecognizer decides whether the given text starts with a variable reference.
// On success it returns the canonical, sigil prefixed name and the text following the reference.
type NameRecognizer interface {
	RecognizeName(text string) (name, rest string, ok bool)
}

type NameRecognizerFunc func(text string) (string, string, bool)

func (f NameRecognizerFunc) RecognizeName(text string) (string, string, bool) { return f(text) }

// ValueRecognizer decides which prefix of the given text is an acceptable variable value.
type ValueRecognizer interface {
	RecognizeValue(text string) (value, rest string, ok bool)
}

type ValueRecognizerFunc func(text string) (string, string, bool)

func (f ValueRecognizerFunc) RecognizeValue(text string) (string, string, bool) { return f(text) }

var (
	// DefaultNames accepts ${name} and $name references. Both yield $name.
	DefaultNames = NameRecognizerFunc(recognizeName) //nolint:gochecknoglobals

	// DefaultValues accepts a maximal run of ASCII letters, digits, '_', '.' and '-'.
	DefaultValues = ValueRecognizerFunc(recognizeValue) //nolint:gochecknoglobals

	// AnyValue accepts any non-empty text.
	AnyValue = ValueRecognizerFunc(func(text string) (string, string, bool) { //nolint:gochecknoglobals
		return text, "", len(text) != 0
	})
)

func recognizeName(text string) (string, string, bool) {
	if len(text) < 2 || text[0] != sigil { //nolint:mnd
		return "", text, false
	}

	if text[1] == '{' {
		// -1: not terminated, 0: empty name
		end := strings.IndexByte(text[2:], '}')
		if end <= 0 {
			return "", text, false
		}

		return string(sigil) + text[2:2+end], text[3+end:], true
	}

	end := 1
	for end < len(text) && isNameByte(text[end]) {
		end++
	}

	if end == 1 {
		return "", text, false
	}

	return text[:end], text[end:], true
}

func recognizeValue(text string) (string, string, bool) {
	end := 0
	for end < len(text) && isValueByte(text[end]) {
		end++
	}

	if end == 0 {
		return "", text, false
	}

	return text[:end], text[end:], true
}

func isNameByte(b byte) bool {
	return b == '_' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isValueByte(b byte) bool {
	return isNameByte(b) || ('0' <= b && b <= '9') || b == '.' || b == '-'
}

// Syntax bundles the recognizers shared by all nodes of a tree.
type Syntax struct {
	names  NameRecognizer
	values ValueRecognizer
}

func newSyntax(names NameRecognizer, values ValueRecognizer) *Syntax {
	syn := &Syntax{names: DefaultNames, values: DefaultValues}

	if names != nil {
		syn.names = names
	}

	if values != nil {
		syn.values = values
	}

	return syn
}

// accepts reports whether the value recognizer consumes the whole capture.
func (s *Syntax) accepts(captured string) bool {
	_, rest, ok := s.values.RecognizeValue(captured)

	return ok && len(rest) == 0
}

// nextVariable returns the position of the first valid variable reference
// after the very first byte of path, or -1. Sigils not starting a valid
// reference are literal text.
func (s *Syntax) nextVariable(path string) int {
	for pos := 1; pos < len(path); pos++ {
		if _, _, ok := s.names.RecognizeName(path[pos:]); ok {
			return pos
		}
	}

	return -1
}
