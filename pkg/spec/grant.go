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
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// AccountObjectTarget is an object that lives directly in the account.
type AccountObjectTarget struct {
	ObjectType ObjectType `yaml:"objectType" validate:"required,oneof=DATABASE WAREHOUSE"`
	Name       string     `yaml:"name" validate:"required"`
}

// SchemaTarget is a schema itself.
type SchemaTarget struct {
	Database string `yaml:"database" validate:"required"`
	Schema   string `yaml:"schema" validate:"required"`
}

// SchemaObjectTarget is a single object inside a schema.
type SchemaObjectTarget struct {
	ObjectType ObjectType `yaml:"objectType" validate:"required,oneof=TABLE VIEW"`
	Database   string     `yaml:"database" validate:"required"`
	Schema     string     `yaml:"schema" validate:"required"`
	Name       string     `yaml:"name" validate:"required"`
}

// BulkTarget is every existing, or every future, object of one type inside a schema.
type BulkTarget struct {
	ObjectType ObjectType `yaml:"objectType" validate:"required,oneof=TABLE VIEW"`
	Database   string     `yaml:"database" validate:"required"`
	Schema     string     `yaml:"schema" validate:"required"`
}

// GrantTarget is the object a grant applies to. Exactly one field must be set.
type GrantTarget struct {
	AccountObject  *AccountObjectTarget `yaml:"accountObject,omitempty"`
	Schema         *SchemaTarget        `yaml:"schema,omitempty"`
	SchemaObject   *SchemaObjectTarget  `yaml:"schemaObject,omitempty"`
	AllInSchema    *BulkTarget          `yaml:"allInSchema,omitempty"`
	FutureInSchema *BulkTarget          `yaml:"futureInSchema,omitempty"`
}

func (t GrantTarget) count() int {
	n := 0
	for _, set := range []bool{
		t.AccountObject != nil,
		t.Schema != nil,
		t.SchemaObject != nil,
		t.AllInSchema != nil,
		t.FutureInSchema != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (t GrantTarget) String() string {
	switch {
	case t.AccountObject != nil:
		return fmt.Sprintf("%s %s", t.AccountObject.ObjectType, t.AccountObject.Name)
	case t.Schema != nil:
		return "SCHEMA " + qualify(t.Schema.Database, t.Schema.Schema)
	case t.SchemaObject != nil:
		o := t.SchemaObject
		return fmt.Sprintf("%s %s", o.ObjectType, qualify(o.Database, o.Schema, o.Name))
	case t.AllInSchema != nil:
		b := t.AllInSchema
		return fmt.Sprintf("ALL %s IN SCHEMA %s", b.ObjectType.Plural(), qualify(b.Database, b.Schema))
	case t.FutureInSchema != nil:
		b := t.FutureInSchema
		return fmt.Sprintf("FUTURE %s IN SCHEMA %s", b.ObjectType.Plural(), qualify(b.Database, b.Schema))
	default:
		return "nothing"
	}
}

// GrantSpec grants privileges on one target to an account role. Nothing beyond the listed privileges is
// granted; WithGrantOption is only set when asked for.
type GrantSpec struct {
	Role            string      `yaml:"role" validate:"required"`
	Privileges      []Privilege `yaml:"privileges" validate:"dive,required"`
	On              GrantTarget `yaml:"on"`
	WithGrantOption bool        `yaml:"withGrantOption,omitempty"`
}

// GrantDatabaseUsage grants USAGE on a database to role.
func GrantDatabaseUsage(database, role string) GrantSpec {
	return GrantSpec{
		Role:       role,
		Privileges: []Privilege{PrivilegeUsage},
		On:         GrantTarget{AccountObject: &AccountObjectTarget{ObjectType: ObjectDatabase, Name: database}},
	}
}

// GrantWarehouseUsage grants USAGE on a warehouse to role.
func GrantWarehouseUsage(warehouse, role string) GrantSpec {
	return GrantSpec{
		Role:       role,
		Privileges: []Privilege{PrivilegeUsage},
		On:         GrantTarget{AccountObject: &AccountObjectTarget{ObjectType: ObjectWarehouse, Name: warehouse}},
	}
}

// GrantSchemaUsage grants USAGE on database.schema to role.
func GrantSchemaUsage(database, schema, role string) GrantSpec {
	return GrantSpec{
		Role:       role,
		Privileges: []Privilege{PrivilegeUsage},
		On:         GrantTarget{Schema: &SchemaTarget{Database: database, Schema: schema}},
	}
}

// TableScope selects which tables GrantTableSelect applies to.
type TableScope string

const (
	// Every table that exists in the schema when the grant is applied.
	AllTables TableScope = "all"
	// Tables created in the schema afterwards.
	FutureTables TableScope = "future"
	// One named table.
	SingleTable TableScope = "table"
)

// ParseTableScope accepts the scope names case-insensitively. The empty string means AllTables.
func ParseTableScope(s string) (TableScope, error) {
	switch scope := TableScope(strings.ToLower(s)); scope {
	case "":
		return AllTables, nil
	case AllTables, FutureTables, SingleTable:
		return scope, nil
	default:
		return "", fmt.Errorf("unknown table scope %q, expected one of all, future or table", s)
	}
}

// TableSelectOptions for GrantTableSelect.
type TableSelectOptions struct {
	// Defaults to AllTables.
	Scope TableScope
	// Required with SingleTable.
	Table string
}

// GrantTableSelect grants SELECT on tables of database.schema to role.
func GrantTableSelect(database, schema, role string, opts TableSelectOptions) GrantSpec {
	g := GrantSpec{Role: role, Privileges: []Privilege{PrivilegeSelect}}
	switch opts.Scope {
	case AllTables, "":
		g.On.AllInSchema = &BulkTarget{ObjectType: ObjectTable, Database: database, Schema: schema}
	case FutureTables:
		g.On.FutureInSchema = &BulkTarget{ObjectType: ObjectTable, Database: database, Schema: schema}
	case SingleTable:
		g.On.SchemaObject = &SchemaObjectTarget{
			ObjectType: ObjectTable,
			Database:   database,
			Schema:     schema,
			Name:       opts.Table,
		}
	}
	return g
}

func (GrantSpec) Kind() Kind { return KindGrant }

func (s GrantSpec) Identity() string {
	privs := make([]string, len(s.Privileges))
	for i, p := range s.Privileges {
		privs[i] = string(p)
	}
	return fmt.Sprintf("%s ON %s TO ROLE %s", strings.Join(privs, ","), s.On, s.Role)
}

func (s GrantSpec) WithDefaults(Defaults) GrantSpec { return clone(s) }

func (s GrantSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s GrantSpec) Validate() error {
	p := newProblems(KindGrant, s.Identity())
	p.checkShape(s)
	if len(s.Privileges) == 0 {
		p.add("privileges", "must list at least one privilege")
	}
	seen := mapset.NewSet[Privilege]()
	for _, priv := range s.Privileges {
		if priv == "" {
			continue
		}
		if !knownPrivileges[priv] {
			p.add("privileges", "contains unknown privilege %q", priv)
		}
		if !seen.Add(priv) {
			p.add("privileges", "lists %q more than once", priv)
		}
	}
	if n := s.On.count(); n != 1 {
		p.add("on", "must set exactly one grant target, got %d", n)
	}
	return p.err()
}

func (s GrantSpec) Properties() Properties {
	var ps Properties
	ps.setRef("account_role_name", Ref{Kind: KindRole, Name: s.Role})
	privs := make([]string, len(s.Privileges))
	for i, p := range s.Privileges {
		privs[i] = string(p)
	}
	ps.setList("privileges", privs)
	ps.set("with_grant_option", s.WithGrantOption)

	switch t := s.On; {
	case t.AccountObject != nil:
		var on Properties
		on.set("object_type", string(t.AccountObject.ObjectType))
		on.setRef("object_name", Ref{Kind: t.AccountObject.ObjectType.kind(), Name: t.AccountObject.Name})
		ps.setBlock("on_account_object", on)
	case t.Schema != nil:
		var on Properties
		on.set("schema_name", schemaIdentifier(t.Schema.Database, t.Schema.Schema))
		ps.setBlock("on_schema", on)
	case t.SchemaObject != nil:
		o := t.SchemaObject
		var on Properties
		on.set("object_type", string(o.ObjectType))
		on.set("object_name", append(schemaIdentifier(o.Database, o.Schema),
			Ref{Kind: o.ObjectType.kind(), Database: o.Database, Schema: o.Schema, Name: o.Name}))
		ps.setBlock("on_schema_object", on)
	case t.AllInSchema != nil:
		ps.setBlock("on_schema_object", bulk("all", t.AllInSchema))
	case t.FutureInSchema != nil:
		ps.setBlock("on_schema_object", bulk("future", t.FutureInSchema))
	}
	return ps
}

func bulk(key string, b *BulkTarget) Properties {
	var inner Properties
	inner.set("object_type_plural", b.ObjectType.Plural())
	inner.set("in_schema", schemaIdentifier(b.Database, b.Schema))
	var on Properties
	on.setBlock(key, inner)
	return on
}

func schemaIdentifier(database, schema string) Identifier {
	return Identifier{
		{Kind: KindDatabase, Name: database},
		{Kind: KindSchema, Database: database, Name: schema},
	}
}
