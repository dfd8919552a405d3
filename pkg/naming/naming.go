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

// Package naming maps Snowflake provider schema names onto the names the Pulumi provider exposes.
//
// The Snowflake Pulumi provider is bridged from the Terraform provider, so its type tokens and property
// names follow the bridge's standard conventions. Specs in this repository describe resources with the
// Terraform attribute names and this package derives the Pulumi side.
package naming

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pulumi/inflector"
	"github.com/pulumi/pulumi/pkg/v3/codegen/cgstrings"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
)

// Package is the Pulumi package name of the Snowflake provider.
const Package = "snowflake"

// The only module the Snowflake provider uses.
const indexModule = "index"

// TerraformToPulumiName performs a standard transformation on the given name string, from Terraform's
// underscore_casing to Pulumi's PascalCasing (if upper is true) or camelCasing (if upper is false).
//
// Names of list-shaped attributes are pluralized, since they become array-shaped Pulumi values. Single nested
// blocks (MaxItems = 1) are flattened to objects by the bridge and must be passed with listShaped=false.
func TerraformToPulumiName(name string, listShaped, upper bool) string {
	if listShaped {
		name = pluralize(name)
	}

	var result strings.Builder
	var nextCap bool
	var prev rune
	casingActivated := false // tolerate leading underscores
	for i, c := range name {
		if c == '_' && casingActivated {
			contract.Assertf(!nextCap, "Unexpected duplicate underscore: %v", name)
			nextCap = true
		} else {
			if c != '_' && !casingActivated {
				casingActivated = true
			}
			if ((i == 0 && upper) || nextCap) && (c >= 'a' && c <= 'z') {
				result.WriteRune(unicode.ToUpper(c))
			} else {
				result.WriteRune(c)
			}
			nextCap = false
		}
		prev = c
	}
	if prev == '_' {
		// we had a next cap, but it wasn't realized.  propagate the _ after all.
		result.WriteRune('_')
	}
	return result.String()
}

// PulumiToTerraformName performs a standard transformation on the given name string, from Pulumi's PascalCasing
// or camelCasing, to Terraform's underscore_casing. Names of list-shaped attributes are singularized back.
func PulumiToTerraformName(name string, listShaped bool) string {
	var result strings.Builder
	for i, c := range name {
		if c >= 'A' && c <= 'Z' {
			if i != 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(c))
		} else {
			result.WriteRune(c)
		}
	}
	if !listShaped {
		return result.String()
	}
	return inflector.Singularize(result.String())
}

// Pluralize only when the result can be singularized back, otherwise the name is likely plural already.
func pluralize(name string) string {
	pluralized := inflector.Pluralize(name)
	if pluralized == name || inflector.Singularize(pluralized) == name {
		return pluralized
	}
	return name
}

// Token converts a Terraform resource type such as "snowflake_warehouse" to its Pulumi type token with the
// standard mapping:
//
//	snowflake_<name> => snowflake:index/lowerFirst(Name):Name
func Token(tfType string) (string, error) {
	rest, ok := strings.CutPrefix(tfType, Package+"_")
	if !ok || rest == "" {
		return "", fmt.Errorf("resource type %q does not belong to the %s provider", tfType, Package)
	}
	name := upperCamelCase(rest)
	lowerName := string(unicode.ToLower(rune(name[0]))) + name[1:]
	return fmt.Sprintf("%s:%s/%s:%s", Package, indexModule, lowerName, name), nil
}

// MustToken is like Token but panics on a resource type that does not belong to the provider.
func MustToken(tfType string) string {
	tok, err := Token(tfType)
	contract.AssertNoErrorf(err, "invalid resource type")
	return tok
}

func upperCamelCase(s string) string { return cgstrings.UppercaseFirst(camelCase(s)) }

func camelCase(s string) string {
	return cgstrings.ModifyStringAroundDelimeter(s, "_", cgstrings.UppercaseFirst)
}
