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

// Package layout reads the set of Snowflake objects a stack declares from YAML or from stack configuration,
// and orders it into declaration steps.
package layout

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// Layout lists the objects of a stack by kind. Each entry carries the logical (Pulumi) name it is declared
// under next to the fields of its spec.
type Layout struct {
	Warehouses []Warehouse `yaml:"warehouses,omitempty"`
	Roles      []Role      `yaml:"roles,omitempty"`
	Users      []User      `yaml:"users,omitempty"`
	RoleGrants []RoleGrant `yaml:"roleGrants,omitempty"`
	Databases  []Database  `yaml:"databases,omitempty"`
	Schemas    []Schema    `yaml:"schemas,omitempty"`
	Tables     []Table     `yaml:"tables,omitempty"`
	Grants     []Grant     `yaml:"grants,omitempty"`

	// Stack outputs, from output name to the logical name of the step whose object name is exported. A logical
	// name shared by several kinds is written as kind/logicalName, e.g. database/analytics. When empty, the
	// first object of each kind is exported, see DefaultExports.
	Exports map[string]string `yaml:"exports,omitempty"`
}

type Warehouse struct {
	LogicalName        string `yaml:"logicalName"`
	spec.WarehouseSpec `yaml:",inline"`
}

type Role struct {
	LogicalName   string `yaml:"logicalName"`
	spec.RoleSpec `yaml:",inline"`
}

type User struct {
	LogicalName   string `yaml:"logicalName"`
	spec.UserSpec `yaml:",inline"`
}

type RoleGrant struct {
	LogicalName        string `yaml:"logicalName"`
	spec.RoleGrantSpec `yaml:",inline"`
}

type Database struct {
	LogicalName       string `yaml:"logicalName"`
	spec.DatabaseSpec `yaml:",inline"`
}

type Schema struct {
	LogicalName     string `yaml:"logicalName"`
	spec.SchemaSpec `yaml:",inline"`
}

type Table struct {
	LogicalName    string `yaml:"logicalName"`
	spec.TableSpec `yaml:",inline"`
}

// The layout as a whole is reported under this kind.
const kindLayout spec.Kind = "layout"

// Parse decodes a YAML layout. Unknown keys are rejected.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil && err != io.EOF {
		return nil, &spec.ConfigError{Kind: kindLayout, Problem: err.Error()}
	}
	return &l, nil
}

// Load reads and parses the YAML layout at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading layout %s", path)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading layout %s", path)
	}
	return l, nil
}

// Decode builds a layout from a structured value such as an object read from stack configuration. Keys are
// the same as in YAML layouts and unknown keys are rejected.
func Decode(raw map[string]any) (*Layout, error) {
	var l Layout
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "yaml",
		Squash:      true,
		ErrorUnused: true,
		Result:      &l,
	})
	contract.AssertNoErrorf(err, "failed to create layout decoder")
	if err := dec.Decode(raw); err != nil {
		return nil, &spec.ConfigError{Kind: kindLayout, Problem: err.Error()}
	}
	return &l, nil
}

//go:embed default.yaml
var defaultLayout []byte

// Default returns the example analytics stack declared when no layout is configured.
func Default() *Layout {
	l, err := Parse(defaultLayout)
	contract.AssertNoErrorf(err, "failed to parse the default layout")
	return l
}

// DefaultYAML is the source of the default layout.
func DefaultYAML() []byte {
	return bytes.Clone(defaultLayout)
}
