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

// DefaultRetentionDays is the Time Travel retention of databases declared without one.
const DefaultRetentionDays = 1

// DatabaseSpec describes a Snowflake database.
type DatabaseSpec struct {
	Name    string `yaml:"name" validate:"required"`
	Comment string `yaml:"comment,omitempty"`
	// Time Travel retention period.
	DataRetentionTimeInDays *int `yaml:"dataRetentionTimeInDays,omitempty" validate:"omitnil,gte=0,lte=90"`
}

func (DatabaseSpec) Kind() Kind { return KindDatabase }

func (s DatabaseSpec) Identity() string { return s.Name }

func (s DatabaseSpec) WithDefaults(d Defaults) DatabaseSpec {
	c := clone(s)
	c.Comment = orString(c.Comment, d.Comment)
	c.DataRetentionTimeInDays = orDefault(c.DataRetentionTimeInDays, DefaultRetentionDays)
	return c
}

func (s DatabaseSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s DatabaseSpec) Validate() error {
	p := newProblems(KindDatabase, s.Name)
	p.checkShape(s)
	return p.err()
}

func (s DatabaseSpec) Properties() Properties {
	var ps Properties
	ps.setString("name", s.Name)
	ps.setString("comment", s.Comment)
	ps.setInt("data_retention_time_in_days", s.DataRetentionTimeInDays)
	return ps
}

// SchemaSpec describes a schema. A schema belongs to exactly one database.
type SchemaSpec struct {
	Database string `yaml:"database" validate:"required"`
	Name     string `yaml:"name" validate:"required"`
	Comment  string `yaml:"comment,omitempty"`
	// Overrides the database's retention when set.
	DataRetentionDays *int  `yaml:"dataRetentionDays,omitempty" validate:"omitnil,gte=0,lte=90"`
	IsManaged         *bool `yaml:"isManaged,omitempty"`
}

func (SchemaSpec) Kind() Kind { return KindSchema }

func (s SchemaSpec) Identity() string { return qualify(s.Database, s.Name) }

func (s SchemaSpec) WithDefaults(d Defaults) SchemaSpec {
	c := clone(s)
	c.Comment = orString(c.Comment, d.Comment)
	c.IsManaged = orDefault(c.IsManaged, false)
	return c
}

func (s SchemaSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s SchemaSpec) Validate() error {
	p := newProblems(KindSchema, s.Identity())
	p.checkShape(s)
	return p.err()
}

func (s SchemaSpec) Properties() Properties {
	var ps Properties
	ps.setRef("database", Ref{Kind: KindDatabase, Name: s.Database})
	ps.setString("name", s.Name)
	ps.setString("comment", s.Comment)
	ps.setInt("data_retention_days", s.DataRetentionDays)
	ps.setBool("is_managed", s.IsManaged)
	return ps
}

// Joins non-empty name parts with dots.
func qualify(parts ...string) string {
	out := ""
	for _, part := range parts {
		if part == "" {
			continue
		}
		if out != "" {
			out += "."
		}
		out += part
	}
	return out
}
