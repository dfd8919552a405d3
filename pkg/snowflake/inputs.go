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

package snowflake

import (
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// inputs converts provider attributes into resource inputs, keyed by Pulumi property name.
func (d *Deployment) inputs(ps spec.Properties) pulumi.Map {
	m := pulumi.Map{}
	for _, p := range ps {
		m[p.PulumiName()] = d.input(p.Value)
	}
	return m
}

func (d *Deployment) input(v any) pulumi.Input {
	switch v := v.(type) {
	case string:
		return pulumi.String(v)
	case int:
		return pulumi.Int(v)
	case bool:
		return pulumi.Bool(v)
	case []string:
		return pulumi.ToStringArray(v)
	case spec.Ref:
		return d.resolve(v)
	case []spec.Ref:
		arr := make(pulumi.StringArray, len(v))
		for i, r := range v {
			arr[i] = d.resolve(r)
		}
		return arr
	case spec.Identifier:
		return d.identifier(v)
	case spec.Properties:
		return d.inputs(v)
	case []spec.Properties:
		arr := make(pulumi.Array, len(v))
		for i, block := range v {
			arr[i] = d.inputs(block)
		}
		return arr
	default:
		contract.Failf("unexpected property value of type %T", v)
		return nil
	}
}

// resolve returns the name output of the object r refers to when this deployment declared it, and the
// literal object name otherwise.
func (d *Deployment) resolve(r spec.Ref) pulumi.StringInput {
	if h, ok := d.declared[r]; ok {
		return h.nameOutput()
	}
	return pulumi.String(r.Object())
}

// identifier joins the resolved parts with dots, e.g. ANALYTICS.SALES.
func (d *Deployment) identifier(id spec.Identifier) pulumi.StringInput {
	resolved := false
	args := make([]any, len(id))
	for i, r := range id {
		_, ok := d.declared[r]
		resolved = resolved || ok
		args[i] = d.resolve(r)
	}
	if !resolved {
		return pulumi.String(id.String())
	}
	return pulumi.Sprintf(strings.TrimSuffix(strings.Repeat("%s.", len(id)), "."), args...)
}
