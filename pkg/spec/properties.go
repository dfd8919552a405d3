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

	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"

	"github.com/pulumi/pulumi-snowflake-template/pkg/naming"
)

// Ref is a reference to another Snowflake object by kind and name. Objects inside a database or a schema carry
// their container's names too. The parts are kept apart because quoted identifiers may contain dots.
//
// When the referenced object is declared by the same program, the reference resolves to the output of its
// handle, which is what orders the two declarations.
type Ref struct {
	Kind     Kind
	Database string
	Schema   string
	Name     string
}

// Object is the unqualified name of the referenced object.
func (r Ref) Object() string { return r.Name }

// QualifiedName is the dotted name of the object, e.g. ANALYTICS.SALES for a schema.
func (r Ref) QualifiedName() string { return qualify(r.Database, r.Schema, r.Name) }

func (r Ref) String() string { return fmt.Sprintf("%s %s", r.Kind, r.QualifiedName()) }

// RefTo is the reference other specs use for the object s declares.
func RefTo(s Spec) Ref {
	switch s := s.(type) {
	case SchemaSpec:
		return Ref{Kind: KindSchema, Database: s.Database, Name: s.Name}
	case TableSpec:
		return Ref{Kind: KindTable, Database: s.Database, Schema: s.Schema, Name: s.Name}
	default:
		return Ref{Kind: s.Kind(), Name: s.Identity()}
	}
}

// Identifier is a dotted identifier such as DATABASE.SCHEMA.TABLE built from the objects' own names.
type Identifier []Ref

func (id Identifier) String() string {
	parts := make([]string, len(id))
	for i, r := range id {
		parts[i] = r.Object()
	}
	return strings.Join(parts, ".")
}

// Shape of a provider attribute. The bridge exposes list attributes as pluralized arrays and flattens blocks
// limited to a single item into plain objects.
type Shape int

const (
	Scalar Shape = iota
	List
	Block
)

// Property is one provider attribute, keyed by its name in the upstream schema.
//
// Values are one of string, int, bool, []string, Ref, []Ref, Identifier, Properties (a Block) or
// []Properties (a List of blocks).
type Property struct {
	Key   string
	Value any
	Shape Shape
}

// PulumiName is the name of the property as exposed by the Pulumi provider.
func (p Property) PulumiName() string {
	return naming.TerraformToPulumiName(p.Key, p.Shape == List, false)
}

// Properties is an ordered set of provider attributes.
type Properties []Property

// Get returns the value of the attribute with the given upstream name.
func (ps Properties) Get(key string) (any, bool) {
	for _, p := range ps {
		if p.Key == key {
			return p.Value, true
		}
	}
	return nil, false
}

// References lists every object referenced by the properties, in order of appearance and without duplicates.
func (ps Properties) References() []Ref {
	var refs []Ref
	seen := map[Ref]bool{}
	add := func(r Ref) {
		if !seen[r] {
			seen[r] = true
			refs = append(refs, r)
		}
	}
	var walk func(v any)
	walk = func(v any) {
		switch v := v.(type) {
		case Ref:
			add(v)
		case []Ref:
			for _, r := range v {
				add(r)
			}
		case Identifier:
			for _, r := range v {
				add(r)
			}
		case Properties:
			for _, p := range v {
				walk(p.Value)
			}
		case []Properties:
			for _, block := range v {
				walk(block)
			}
		}
	}
	walk(ps)
	return refs
}

// PropertyMap renders the properties with Pulumi names, resolving references to the literal object names.
func (ps Properties) PropertyMap() resource.PropertyMap {
	m := resource.PropertyMap{}
	for _, p := range ps {
		m[resource.PropertyKey(p.PulumiName())] = renderValue(p.Value)
	}
	return m
}

func renderValue(v any) resource.PropertyValue {
	switch v := v.(type) {
	case string:
		return resource.NewStringProperty(v)
	case int:
		return resource.NewNumberProperty(float64(v))
	case bool:
		return resource.NewBoolProperty(v)
	case []string:
		arr := make([]resource.PropertyValue, len(v))
		for i, s := range v {
			arr[i] = resource.NewStringProperty(s)
		}
		return resource.NewArrayProperty(arr)
	case Ref:
		return resource.NewStringProperty(v.Object())
	case []Ref:
		arr := make([]resource.PropertyValue, len(v))
		for i, r := range v {
			arr[i] = resource.NewStringProperty(r.Object())
		}
		return resource.NewArrayProperty(arr)
	case Identifier:
		return resource.NewStringProperty(v.String())
	case Properties:
		return resource.NewObjectProperty(v.PropertyMap())
	case []Properties:
		arr := make([]resource.PropertyValue, len(v))
		for i, block := range v {
			arr[i] = resource.NewObjectProperty(block.PropertyMap())
		}
		return resource.NewArrayProperty(arr)
	default:
		contract.Failf("unexpected property value of type %T", v)
		return resource.NewNullProperty()
	}
}

func (ps *Properties) set(key string, v any) {
	*ps = append(*ps, Property{Key: key, Value: v, Shape: Scalar})
}

func (ps *Properties) setString(key, v string) {
	if v != "" {
		ps.set(key, v)
	}
}

func (ps *Properties) setInt(key string, v *int) {
	if v != nil {
		ps.set(key, *v)
	}
}

func (ps *Properties) setBool(key string, v *bool) {
	if v != nil {
		ps.set(key, *v)
	}
}

func (ps *Properties) setRef(key string, r Ref) {
	if r.Name != "" {
		ps.set(key, r)
	}
}

func (ps *Properties) setList(key string, v any) {
	*ps = append(*ps, Property{Key: key, Value: v, Shape: List})
}

func (ps *Properties) setBlock(key string, block Properties) {
	*ps = append(*ps, Property{Key: key, Value: block, Shape: Block})
}
