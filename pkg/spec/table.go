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
	mapset "github.com/deckarep/golang-set/v2"
)

// ColumnSpec describes one column of a table.
type ColumnSpec struct {
	Name string `yaml:"name" validate:"required"`
	// Snowflake data type, e.g. NUMBER(38,0) or TIMESTAMP_NTZ.
	Type string `yaml:"type" validate:"required"`
	// Defaults to true.
	Nullable *bool  `yaml:"nullable,omitempty"`
	Comment  string `yaml:"comment,omitempty"`
}

// Column is a convenience constructor for a column with an explicit nullability.
func Column(name, typ string, nullable bool) ColumnSpec {
	return ColumnSpec{Name: name, Type: typ, Nullable: &nullable}
}

// TableSpec describes a table with typed columns and optional clustering keys.
type TableSpec struct {
	Database string `yaml:"database" validate:"required"`
	Schema   string `yaml:"schema" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	// Column order is preserved.
	Columns []ColumnSpec `yaml:"columns" validate:"dive"`
	// Clustering keys. Each one must name a column of this table.
	ClusterBy []string `yaml:"clusterBy,omitempty" validate:"dive,required"`
	Comment   string   `yaml:"comment,omitempty"`
}

func (TableSpec) Kind() Kind { return KindTable }

func (s TableSpec) Identity() string { return qualify(s.Database, s.Schema, s.Name) }

func (s TableSpec) WithDefaults(d Defaults) TableSpec {
	c := clone(s)
	for i := range c.Columns {
		c.Columns[i].Nullable = orDefault(c.Columns[i].Nullable, true)
	}
	c.Comment = orString(c.Comment, d.Comment)
	return c
}

func (s TableSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s TableSpec) Validate() error {
	p := newProblems(KindTable, s.Identity())
	p.checkShape(s)
	if len(s.Columns) == 0 {
		p.add("columns", "must declare at least one column")
	}
	columns := mapset.NewSet[string]()
	for i, col := range s.Columns {
		if col.Name == "" {
			continue
		}
		if !columns.Add(col.Name) {
			p.add("columns", "declares column %q more than once (position %d)", col.Name, i)
		}
	}
	for _, key := range s.ClusterBy {
		if key != "" && !columns.Contains(key) {
			p.add("clusterBy", "references %q which is not a column of the table", key)
		}
	}
	return p.err()
}

func (s TableSpec) Properties() Properties {
	var ps Properties
	ps.setRef("database", Ref{Kind: KindDatabase, Name: s.Database})
	ps.setRef("schema", Ref{Kind: KindSchema, Database: s.Database, Name: s.Schema})
	ps.setString("name", s.Name)
	columns := make([]Properties, len(s.Columns))
	for i, col := range s.Columns {
		var c Properties
		c.setString("name", col.Name)
		c.setString("type", col.Type)
		c.setBool("nullable", col.Nullable)
		c.setString("comment", col.Comment)
		columns[i] = c
	}
	ps.setList("column", columns)
	if len(s.ClusterBy) > 0 {
		ps.setList("cluster_by", append([]string(nil), s.ClusterBy...))
	}
	ps.setString("comment", s.Comment)
	return ps
}
