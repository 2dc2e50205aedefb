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

package errorchain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/goccy/go-json"
	"github.com/iancoleman/strcase"
)

type link struct {
	err  error
	msg  string
	next *link
}

type body struct {
	Code    string `json:"code"              yaml:"code"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
	Details any    `json:"details,omitempty" yaml:"details,omitempty"`
}

// ErrorChain links a classifying error (usually one of the sentinels) with the errors which
// caused it. Only the head is exposed to clients when rendered.
type ErrorChain struct { // nolint: errname
	head    *link
	tail    *link
	context any
}

func New(err error) *ErrorChain {
	return (&ErrorChain{}).append(err, "")
}

func NewWithMessage(err error, message string) *ErrorChain {
	return (&ErrorChain{}).append(err, message)
}

func NewWithMessagef(err error, format string, a ...any) *ErrorChain {
	return (&ErrorChain{}).append(err, fmt.Sprintf(format, a...))
}

func (ec *ErrorChain) Error() string {
	parts := make([]string, 0, ec.len())

	for l := ec.head; l != nil; l = l.next {
		if len(l.msg) == 0 {
			parts = append(parts, l.err.Error())
		} else {
			parts = append(parts, l.err.Error()+": "+l.msg)
		}
	}

	return strings.Join(parts, ": ")
}

func (ec *ErrorChain) CausedBy(err error) *ErrorChain {
	if err == nil {
		return ec
	}

	return ec.append(err, "")
}

// WithErrorContext attaches additional data, e.g. the paths competing for an ambiguous
// lookup. It is rendered as details and can be retrieved with errors.As if it is an interface.
func (ec *ErrorChain) WithErrorContext(context any) *ErrorChain {
	ec.context = context

	return ec
}

func (ec *ErrorChain) ErrorContext() any { return ec.context }

func (ec *ErrorChain) Unwrap() error {
	if ec.head == nil || ec.head.next == nil {
		return nil
	}

	return &ErrorChain{head: ec.head.next, tail: ec.tail, context: ec.context}
}

func (ec *ErrorChain) Is(target error) bool {
	return ec.head != nil && errors.Is(ec.head.err, target)
}

func (ec *ErrorChain) As(target any) bool {
	if ec.head == nil {
		return false
	}

	return ec.contextAs(target) || errors.As(ec.head.err, target)
}

func (ec *ErrorChain) Errors() []error {
	errs := make([]error, 0, ec.len())

	for l := ec.head; l != nil; l = l.next {
		errs = append(errs, l.err)
	}

	return errs
}

// Body returns the client facing representation of the chain.
func (ec *ErrorChain) Body() any {
	return body{
		Code:    strcase.ToLowerCamel(ec.head.err.Error()),
		Message: ec.head.msg,
		Details: ec.context,
	}
}

func (ec *ErrorChain) MarshalJSON() ([]byte, error) {
	return json.Marshal(ec.Body())
}

func (ec *ErrorChain) String() string {
	return ec.head.err.Error() + ": " + ec.head.msg
}

func (ec *ErrorChain) contextAs(target any) bool {
	if ec.context == nil {
		return false
	}

	val := reflect.ValueOf(target)
	targetType := val.Type().Elem()

	if targetType.Kind() != reflect.Interface || !reflect.TypeOf(ec.context).AssignableTo(targetType) {
		return false
	}

	val.Elem().Set(reflect.ValueOf(ec.context))

	return true
}

func (ec *ErrorChain) len() int {
	count := 0
	for l := ec.head; l != nil; l = l.next {
		count++
	}

	return count
}

func (ec *ErrorChain) append(err error, msg string) *ErrorChain {
	entry := &link{err: err, msg: msg}

	if ec.head == nil {
		ec.head, ec.tail = entry, entry

		return ec
	}

	ec.tail.next = entry
	ec.tail = entry

	return ec
}
