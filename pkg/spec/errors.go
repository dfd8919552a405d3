// Copyright 2016-2026, Pulumi Corporation.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package spec

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrConfig is wrapped by every error caused by an invalid or incomplete spec.
var ErrConfig = errors.New("configuration error")

// ConfigError describes one problem with one field of a spec.
type ConfigError struct {
	Kind    Kind
	Name    string
	Field   string
	Problem string
}

func (e *ConfigError) Error() string {
	subject := string(e.Kind)
	if e.Name != "" {
		subject = fmt.Sprintf("%s %q", e.Kind, e.Name)
	}
	if e.Field == "" {
		return fmt.Sprintf("invalid %s: %s", subject, e.Problem)
	}
	return fmt.Sprintf("invalid %s: %s %s", subject, e.Field, e.Problem)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

// Collects the problems found while validating a single spec.
type problems struct {
	kind Kind
	name string
	errs *multierror.Error
}

func newProblems(kind Kind, name string) *problems {
	return &problems{kind: kind, name: name}
}

func (p *problems) add(field, format string, args ...any) {
	p.errs = multierror.Append(p.errs, &ConfigError{
		Kind:    p.kind,
		Name:    p.name,
		Field:   field,
		Problem: fmt.Sprintf(format, args...),
	})
}

func (p *problems) merge(err error) {
	if err != nil {
		p.errs = multierror.Append(p.errs, err)
	}
}

func (p *problems) err() error {
	return p.errs.ErrorOrNil()
}
