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

package validation

import (
	"reflect"
	"strconv"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// registerTranslations overrides the default translations, which don't know
// anything about durations.
func registerTranslations(validate *validator.Validate, trans ut.Translator) error {
	for _, tag := range []string{"gt", "gte", "lt", "lte"} {
		err := validate.RegisterTranslation(tag, trans,
			func(ut ut.Translator) error {
				return ut.Add(tag+"-duration", "{0} must be "+comparisons[tag]+" {1}", false)
			},
			translateComparison,
		)
		if err != nil {
			return err
		}
	}

	return validate.RegisterTranslation("required_without", trans,
		func(ut ut.Translator) error {
			return ut.Add("required_without", "{0} is a required field as long as {1} is not set", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			translation, err := ut.T(fe.Tag(), fe.Field(), fe.Param())
			if err != nil {
				return fe.Error()
			}

			return translation
		},
	)
}

// nolint: gochecknoglobals
var comparisons = map[string]string{
	"gt":  "greater than",
	"gte": "greater than or equal to",
	"lt":  "less than",
	"lte": "less than or equal to",
}

func translateComparison(ut ut.Translator, fe validator.FieldError) string {
	var (
		translation string
		err         error
	)

	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}

	switch {
	case fe.Type() == reflect.TypeOf(time.Duration(0)):
		translation, err = ut.T(fe.Tag()+"-duration", fe.Field(), fe.Param())
	case kind == reflect.String:
		translation, err = ut.T(fe.Tag()+"-string", fe.Field(), plural(ut, fe, "-string-character"))
	case kind == reflect.Slice || kind == reflect.Map || kind == reflect.Array:
		translation, err = ut.T(fe.Tag()+"-items", fe.Field(), plural(ut, fe, "-items-item"))
	default:
		var f64 float64

		if f64, err = strconv.ParseFloat(fe.Param(), 64); err == nil {
			translation, err = ut.T(fe.Tag()+"-number", fe.Field(), ut.FmtNumber(f64, 0))
		}
	}

	if err != nil {
		return fe.Error()
	}

	return translation
}

func plural(ut ut.Translator, fe validator.FieldError, key string) string {
	f64, err := strconv.ParseFloat(fe.Param(), 64)
	if err != nil {
		return fe.Param()
	}

	res, err := ut.C(fe.Tag()+key, f64, 0, ut.FmtNumber(f64, 0))
	if err != nil {
		return fe.Param()
	}

	return res
}
