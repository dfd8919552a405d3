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

package layout

import (
	"fmt"

	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// GrantKind names one of the grant helpers.
type GrantKind string

const (
	DatabaseUsage  GrantKind = "databaseUsage"
	SchemaUsage    GrantKind = "schemaUsage"
	TableSelect    GrantKind = "tableSelect"
	WarehouseUsage GrantKind = "warehouseUsage"
)

// Grant is a privilege grant to an account role. Which of the object fields are used depends on Kind.
type Grant struct {
	LogicalName string    `yaml:"logicalName"`
	Kind        GrantKind `yaml:"kind"`
	Role        string    `yaml:"role"`
	Database    string    `yaml:"database,omitempty"`
	Schema      string    `yaml:"schema,omitempty"`
	Warehouse   string    `yaml:"warehouse,omitempty"`
	// tableSelect only: all (the default), future or table.
	Scope string `yaml:"scope,omitempty"`
	// tableSelect with scope table only.
	Table string `yaml:"table,omitempty"`
}

// Spec builds the grant the entry describes.
func (g Grant) Spec() (spec.GrantSpec, error) {
	switch g.Kind {
	case DatabaseUsage:
		return spec.GrantDatabaseUsage(g.Database, g.Role), nil
	case SchemaUsage:
		return spec.GrantSchemaUsage(g.Database, g.Schema, g.Role), nil
	case WarehouseUsage:
		return spec.GrantWarehouseUsage(g.Warehouse, g.Role), nil
	case TableSelect:
		scope, err := spec.ParseTableScope(g.Scope)
		if err != nil {
			return spec.GrantSpec{}, g.invalid("scope", err.Error())
		}
		return spec.GrantTableSelect(g.Database, g.Schema, g.Role, spec.TableSelectOptions{
			Scope: scope,
			Table: g.Table,
		}), nil
	case "":
		return spec.GrantSpec{}, g.invalid("kind", "is required")
	default:
		return spec.GrantSpec{}, g.invalid("kind", fmt.Sprintf(
			"must be one of %s, %s, %s or %s, got %q", DatabaseUsage, SchemaUsage, TableSelect, WarehouseUsage, g.Kind))
	}
}

func (g Grant) invalid(field, problem string) error {
	return &spec.ConfigError{Kind: spec.KindGrant, Name: g.LogicalName, Field: field, Problem: problem}
}
