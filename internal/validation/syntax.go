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
	"github.com/dlclark/regexp2"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

type regexpSyntax struct{}

func (regexpSyntax) Tag() string { return "regexp" }
func (regexpSyntax) AlwaysValidate() bool { return false }
func (regexpSyntax) MessageTemplate() string { return "{0} must be a valid regular expression" }

func (regexpSyntax) Validate(fl validator.FieldLevel) bool {
	_, err := regexp2.Compile(fl.Field().String(), regexp2.RE2)

	return err == nil
}

func (regexpSyntax) Translate(ut ut.Translator, fe validator.FieldError) string {
	return translateField(ut, fe)
}

type globSyntax struct{}

func (globSyntax) Tag() string { return "glob" }
func (globSyntax) AlwaysValidate() bool { return false }
func (globSyntax) MessageTemplate() string { return "{0} must be a valid glob pattern" }

func (globSyntax) Validate(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String())

	return err == nil
}

func (globSyntax) Translate(ut ut.Translator, fe validator.FieldError) string {
	return translateField(ut, fe)
}

func translateField(ut ut.Translator, fe validator.FieldError) string {
	translation, err := ut.T(fe.Tag(), fe.Field())
	if err != nil {
		return fe.Error()
	}

	return translation
}

func syntaxOptions() []Option {
	return []Option{
		WithTagValidator(regexpSyntax{}),
		WithErrorTranslator(regexpSyntax{}),
		WithTagValidator(globSyntax{}),
		WithErrorTranslator(globSyntax{}),
	}
}
