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

// Package spec holds the typed, defaulted descriptions of the Snowflake objects this template declares.
//
// Every spec is a plain value: building one never talks to Pulumi or Snowflake. [Normalize] applies the
// documented defaults to a copy and validates the result, and [Spec.Properties] maps it onto the provider's
// attributes.
package spec

import (
	"fmt"

	"github.com/mitchellh/copystructure"
	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// Spec is the declarative description of one Snowflake object or grant.
type Spec interface {
	Kind() Kind

	// Identity is the fully qualified name of the declared object. Grants have no name of their own and
	// describe themselves instead.
	Identity() string

	// Validate reports every shape or enum problem found. Errors wrap ErrConfig.
	Validate() error

	// Properties lists the provider attributes, in a stable order.
	Properties() Properties

	normalize(d Defaults) Spec
}

// Defaults that depend on the deployment rather than on the object.
type Defaults struct {
	// Comment applied to objects declared without one.
	Comment string
}

// NewDefaults returns the defaults for the given environment tag.
func NewDefaults(environment string) Defaults {
	return Defaults{Comment: fmt.Sprintf("Managed by Pulumi - %s", environment)}
}

// Normalize applies defaults to a copy of s and validates the result. The input is never modified.
func Normalize(s Spec, d Defaults) (Spec, error) {
	contract.Requiref(s != nil, "s", "must not be nil")
	n := s.normalize(d)
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// NamedAfter returns s with an empty object name set to name. Warehouses, roles and databases are named by a
// single identifier, so their logical name doubles as the object name; other specs are returned unchanged.
func NamedAfter(s Spec, name string) Spec {
	switch v := s.(type) {
	case WarehouseSpec:
		v.Name = orString(v.Name, name)
		return v
	case RoleSpec:
		v.Name = orString(v.Name, name)
		return v
	case DatabaseSpec:
		v.Name = orString(v.Name, name)
		return v
	default:
		return s
	}
}

// Render returns the Pulumi inputs of s with references shown as literal names.
func Render(s Spec) resource.PropertyMap {
	return s.Properties().PropertyMap()
}

// References lists the objects s depends on.
func References(s Spec) []Ref {
	return s.Properties().References()
}

func clone[T any](v T) T {
	c, err := copystructure.Copy(v)
	contract.AssertNoErrorf(err, "failed to copy %T", v)
	return c.(T)
}

func ptr[T any](v T) *T { return &v }

func orDefault[T any](v *T, d T) *T {
	if v == nil {
		return ptr(d)
	}
	return v
}

func orString(v, d string) string {
	if v == "" {
		return d
	}
	return v
}
