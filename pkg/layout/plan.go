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
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// Step is one declaration of a plan.
type Step struct {
	LogicalName string
	// Normalized: defaults applied and validated.
	Spec spec.Spec
	// Logical names of the earlier steps this one refers to.
	DependsOn []string
}

// Kind of the declared resource.
func (s Step) Kind() spec.Kind { return s.Spec.Kind() }

// Address is kind/logicalName, unique within a plan.
func (s Step) Address() string { return fmt.Sprintf("%s/%s", s.Kind(), s.LogicalName) }

type entry struct {
	logicalName string
	spec        spec.Spec
	err         error
}

// Lists the entries in declaration order: warehouses, roles, users, role grants, databases, schemas, tables
// and finally privilege grants. Every object an entry can refer to comes earlier in this order.
func (l *Layout) entries() []entry {
	var es []entry
	for _, w := range l.Warehouses {
		es = append(es, entry{logicalName: w.LogicalName, spec: w.WarehouseSpec})
	}
	for _, r := range l.Roles {
		es = append(es, entry{logicalName: r.LogicalName, spec: r.RoleSpec})
	}
	for _, u := range l.Users {
		es = append(es, entry{logicalName: u.LogicalName, spec: u.UserSpec})
	}
	for _, g := range l.RoleGrants {
		es = append(es, entry{logicalName: g.LogicalName, spec: g.RoleGrantSpec})
	}
	for _, d := range l.Databases {
		es = append(es, entry{logicalName: d.LogicalName, spec: d.DatabaseSpec})
	}
	for _, s := range l.Schemas {
		es = append(es, entry{logicalName: s.LogicalName, spec: s.SchemaSpec})
	}
	for _, t := range l.Tables {
		es = append(es, entry{logicalName: t.LogicalName, spec: t.TableSpec})
	}
	for _, g := range l.Grants {
		s, err := g.Spec()
		es = append(es, entry{logicalName: g.LogicalName, spec: s, err: err})
	}
	return es
}

// Plan normalizes every entry and orders the declarations. All problems found are reported together.
func (l *Layout) Plan(defaults spec.Defaults) ([]Step, error) {
	var errs *multierror.Error
	var steps []Step
	seen := map[spec.Kind]mapset.Set[string]{}
	declared := map[spec.Ref]string{}

	for _, e := range l.entries() {
		if e.err != nil {
			errs = multierror.Append(errs, e.err)
			continue
		}
		kind := e.spec.Kind()
		e.spec = spec.NamedAfter(e.spec, e.logicalName)
		if e.logicalName == "" {
			errs = multierror.Append(errs, &spec.ConfigError{
				Kind: kind, Name: e.spec.Identity(), Field: "logicalName", Problem: "is required",
			})
			continue
		}
		if seen[kind] == nil {
			seen[kind] = mapset.NewThreadUnsafeSet[string]()
		}
		if !seen[kind].Add(e.logicalName) {
			errs = multierror.Append(errs, &spec.ConfigError{
				Kind: kind, Name: e.logicalName, Field: "logicalName", Problem: "is used by more than one entry",
			})
			continue
		}

		n, err := spec.Normalize(e.spec, defaults)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		step := Step{LogicalName: e.logicalName, Spec: n}
		for _, ref := range spec.References(n) {
			if dep, ok := declared[ref]; ok {
				step.DependsOn = append(step.DependsOn, dep)
			}
		}
		ref := spec.RefTo(n)
		if _, ok := declared[ref]; !ok {
			declared[ref] = e.logicalName
		}
		steps = append(steps, step)
	}

	if err := l.checkExports(steps); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return steps, nil
}

// Validate reports every problem Plan would.
func (l *Layout) Validate() error {
	_, err := l.Plan(spec.Defaults{})
	return err
}

// DefaultExports exports the object name of the first warehouse, database, schema, table, user and role.
func (l *Layout) DefaultExports() map[string]string {
	exports := map[string]string{}
	first := func(output string, kind spec.Kind, logicalNames ...string) {
		if len(logicalNames) > 0 {
			exports[output] = fmt.Sprintf("%s/%s", kind, logicalNames[0])
		}
	}
	first("warehouse", spec.KindWarehouse, logicalNames(l.Warehouses, func(w Warehouse) string { return w.LogicalName })...)
	first("database", spec.KindDatabase, logicalNames(l.Databases, func(d Database) string { return d.LogicalName })...)
	first("schema", spec.KindSchema, logicalNames(l.Schemas, func(s Schema) string { return s.LogicalName })...)
	first("table", spec.KindTable, logicalNames(l.Tables, func(t Table) string { return t.LogicalName })...)
	first("user", spec.KindUser, logicalNames(l.Users, func(u User) string { return u.LogicalName })...)
	first("role", spec.KindRole, logicalNames(l.Roles, func(r Role) string { return r.LogicalName })...)
	return exports
}

// ExportTargets returns the configured exports, or DefaultExports when none are configured.
func (l *Layout) ExportTargets() map[string]string {
	if len(l.Exports) > 0 {
		return l.Exports
	}
	return l.DefaultExports()
}

func logicalNames[T any](entries []T, name func(T) string) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = name(e)
	}
	return names
}

func (l *Layout) checkExports(steps []Step) error {
	var errs *multierror.Error
	for output, target := range l.Exports {
		if _, err := FindStep(steps, target); err != nil {
			errs = multierror.Append(errs, &spec.ConfigError{
				Kind: kindLayout, Field: fmt.Sprintf("exports.%s", output), Problem: err.Error(),
			})
		}
	}
	return errs.ErrorOrNil()
}

// FindStep looks a step up by logical name or by kind/logicalName.
func FindStep(steps []Step, target string) (Step, error) {
	var found []Step
	for _, s := range steps {
		if s.LogicalName == target || s.Address() == target {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return Step{}, fmt.Errorf("refers to %q which is not declared", target)
	default:
		addrs := make([]string, len(found))
		for i, s := range found {
			addrs[i] = s.Address()
		}
		return Step{}, fmt.Errorf("%q is ambiguous, use one of %s", target, strings.Join(addrs, ", "))
	}
}
