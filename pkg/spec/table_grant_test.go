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
	"testing"

	"github.com/hexops/autogold/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var identifierGen = rapid.StringMatching(`^[A-Z][A-Z0-9_]{0,11}$`)

func TestTableClusterByMustNameColumns(t *testing.T) {
	_, err := Normalize(TableSpec{
		Database:  "ANALYTICS",
		Schema:    "SALES",
		Name:      "ORDERS",
		Columns:   []ColumnSpec{Column("ORDER_ID", "NUMBER(38,0)", false)},
		ClusterBy: []string{"ORDER_DATE"},
	}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), `clusterBy references "ORDER_DATE" which is not a column of the table`)
}

func TestTableValidation(t *testing.T) {
	_, err := Normalize(TableSpec{Database: "DB", Schema: "S", Name: "T"}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "must declare at least one column")

	_, err = Normalize(TableSpec{
		Database: "DB",
		Schema:   "S",
		Name:     "T",
		Columns:  []ColumnSpec{{Name: "A", Type: "NUMBER"}, {Name: "A", Type: "DATE"}},
	}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), `declares column "A" more than once`)

	_, err = Normalize(TableSpec{
		Database: "DB",
		Schema:   "S",
		Name:     "T",
		Columns:  []ColumnSpec{{Name: "A"}},
	}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "columns[0].type is required")
}

func TestTableProperties(t *testing.T) {
	in := TableSpec{
		Database: "ANALYTICS",
		Schema:   "SALES",
		Name:     "ORDERS",
		Columns: []ColumnSpec{
			Column("ORDER_ID", "NUMBER(38,0)", false),
			{Name: "ORDER_DATE", Type: "DATE"},
		},
		ClusterBy: []string{"ORDER_DATE"},
	}
	s, err := Normalize(in, testDefaults)
	require.NoError(t, err)

	assert.Nil(t, in.Columns[1].Nullable, "input must not be modified")
	autogold.Expect("ANALYTICS.SALES.ORDERS").Equal(t, s.Identity())
	assert.Equal(t, []Ref{
		{Kind: KindDatabase, Name: "ANALYTICS"},
		{Kind: KindSchema, Database: "ANALYTICS", Name: "SALES"},
	}, References(s))

	m := Render(s).Mappable()
	assert.Equal(t, "SALES", m["schema"])
	assert.Equal(t, []any{"ORDER_DATE"}, m["clusterBies"])
	assert.Equal(t, []any{
		map[string]any{"name": "ORDER_ID", "type": "NUMBER(38,0)", "nullable": false},
		map[string]any{"name": "ORDER_DATE", "type": "DATE", "nullable": true},
	}, m["columns"])
}

func TestTableColumnsKeepOrderAndClusterByIsChecked(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfNDistinct(identifierGen, 1, 8, rapid.ID[string]).Draw(t, "columns")
		cols := make([]ColumnSpec, len(names))
		for i, n := range names {
			cols[i] = ColumnSpec{Name: n, Type: rapid.SampledFrom([]string{"NUMBER", "DATE", "VARCHAR"}).Draw(t, "type")}
		}
		clusterBy := rapid.SliceOfN(rapid.SampledFrom(names), 0, 3).Draw(t, "clusterBy")
		stranger := rapid.Bool().Draw(t, "stranger")
		if stranger {
			clusterBy = append(clusterBy, "NOT_A_COLUMN_"+names[0])
		}

		s, err := Normalize(TableSpec{
			Database:  "DB",
			Schema:    "S",
			Name:      "T",
			Columns:   cols,
			ClusterBy: clusterBy,
		}, testDefaults)
		if stranger {
			require.ErrorIs(t, err, ErrConfig)
			return
		}
		require.NoError(t, err)

		v, ok := s.Properties().Get("column")
		require.True(t, ok)
		emitted := v.([]Properties)
		require.Len(t, emitted, len(names))
		for i, col := range emitted {
			name, _ := col.Get("name")
			assert.Equal(t, names[i], name)
		}
	})
}

func TestGrantConstructors(t *testing.T) {
	tests := []struct {
		name     string
		grant    GrantSpec
		identity string
		target   string
	}{
		{
			"database usage",
			GrantDatabaseUsage("ANALYTICS", "ANALYST"),
			"USAGE ON DATABASE ANALYTICS TO ROLE ANALYST",
			"on_account_object",
		},
		{
			"warehouse usage",
			GrantWarehouseUsage("ANALYTICS_WH", "ANALYST"),
			"USAGE ON WAREHOUSE ANALYTICS_WH TO ROLE ANALYST",
			"on_account_object",
		},
		{
			"schema usage",
			GrantSchemaUsage("ANALYTICS", "SALES", "ANALYST"),
			"USAGE ON SCHEMA ANALYTICS.SALES TO ROLE ANALYST",
			"on_schema",
		},
		{
			"select on all tables",
			GrantTableSelect("ANALYTICS", "SALES", "ANALYST", TableSelectOptions{}),
			"SELECT ON ALL TABLES IN SCHEMA ANALYTICS.SALES TO ROLE ANALYST",
			"on_schema_object",
		},
		{
			"select on future tables",
			GrantTableSelect("ANALYTICS", "SALES", "ANALYST", TableSelectOptions{Scope: FutureTables}),
			"SELECT ON FUTURE TABLES IN SCHEMA ANALYTICS.SALES TO ROLE ANALYST",
			"on_schema_object",
		},
		{
			"select on one table",
			GrantTableSelect("ANALYTICS", "SALES", "ANALYST", TableSelectOptions{Scope: SingleTable, Table: "ORDERS"}),
			"SELECT ON TABLE ANALYTICS.SALES.ORDERS TO ROLE ANALYST",
			"on_schema_object",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Normalize(tt.grant, testDefaults)
			require.NoError(t, err)
			assert.Equal(t, tt.identity, s.Identity())
			assert.False(t, s.(GrantSpec).WithGrantOption)
			_, ok := s.Properties().Get(tt.target)
			assert.True(t, ok, "expected %s", tt.target)
		})
	}
}

func TestGrantRendering(t *testing.T) {
	m := Render(GrantTableSelect("ANALYTICS", "SALES", "ANALYST", TableSelectOptions{})).Mappable()
	assert.Equal(t, map[string]any{
		"accountRoleName": "ANALYST",
		"privileges":      []any{"SELECT"},
		"withGrantOption": false,
		"onSchemaObject": map[string]any{
			"all": map[string]any{
				"objectTypePlural": "TABLES",
				"inSchema":         "ANALYTICS.SALES",
			},
		},
	}, m)

	m = Render(GrantSchemaUsage("ANALYTICS", "SALES", "ANALYST")).Mappable()
	assert.Equal(t, map[string]any{"schemaName": "ANALYTICS.SALES"}, m["onSchema"])

	m = Render(GrantTableSelect("ANALYTICS", "SALES", "ANALYST",
		TableSelectOptions{Scope: SingleTable, Table: "ORDERS"})).Mappable()
	assert.Equal(t, map[string]any{
		"objectType": "TABLE",
		"objectName": "ANALYTICS.SALES.ORDERS",
	}, m["onSchemaObject"])
}

func TestGrantsReflectInputsExactly(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		db := identifierGen.Draw(t, "database")
		schema := identifierGen.Draw(t, "schema")
		wh := identifierGen.Draw(t, "warehouse")
		role := identifierGen.Draw(t, "role")

		type expectation struct {
			grant     GrantSpec
			privilege Privilege
			refs      []Ref
		}
		for _, e := range []expectation{
			{GrantDatabaseUsage(db, role), PrivilegeUsage, []Ref{
				{Kind: KindRole, Name: role},
				{Kind: KindDatabase, Name: db},
			}},
			{GrantWarehouseUsage(wh, role), PrivilegeUsage, []Ref{
				{Kind: KindRole, Name: role},
				{Kind: KindWarehouse, Name: wh},
			}},
			{GrantSchemaUsage(db, schema, role), PrivilegeUsage, []Ref{
				{Kind: KindRole, Name: role},
				{Kind: KindDatabase, Name: db},
				{Kind: KindSchema, Database: db, Name: schema},
			}},
			{GrantTableSelect(db, schema, role, TableSelectOptions{}), PrivilegeSelect, []Ref{
				{Kind: KindRole, Name: role},
				{Kind: KindDatabase, Name: db},
				{Kind: KindSchema, Database: db, Name: schema},
			}},
		} {
			s, err := Normalize(e.grant, testDefaults)
			require.NoError(t, err)
			g := s.(GrantSpec)
			assert.Equal(t, role, g.Role)
			assert.Equal(t, []Privilege{e.privilege}, g.Privileges)
			assert.False(t, g.WithGrantOption)

			privs, _ := g.Properties().Get("privileges")
			assert.Equal(t, []string{string(e.privilege)}, privs)
			assert.Equal(t, e.refs, References(g))
		}
	})
}

func TestGrantValidation(t *testing.T) {
	_, err := Normalize(GrantSpec{Role: "R", Privileges: []Privilege{PrivilegeUsage}}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "must set exactly one grant target, got 0")

	both := GrantDatabaseUsage("DB", "R")
	both.On.Schema = &SchemaTarget{Database: "DB", Schema: "S"}
	_, err = Normalize(both, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "got 2")

	g := GrantDatabaseUsage("DB", "R")
	g.Privileges = []Privilege{"USAGE", "USAGE", "LAUNCH MISSILES"}
	_, err = Normalize(g, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), `lists "USAGE" more than once`)
	assert.Contains(t, err.Error(), `unknown privilege "LAUNCH MISSILES"`)

	g = GrantDatabaseUsage("DB", "")
	_, err = Normalize(g, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "role is required")

	_, err = Normalize(GrantTableSelect("DB", "S", "R", TableSelectOptions{Scope: SingleTable}), testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "on.schemaObject.name is required")
}

func TestParseTableScope(t *testing.T) {
	for in, want := range map[string]TableScope{"": AllTables, "ALL": AllTables, "future": FutureTables, "Table": SingleTable} {
		got, err := ParseTableScope(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseTableScope("some")
	assert.Error(t, err)
}
