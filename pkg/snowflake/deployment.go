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

// Package snowflake declares Snowflake objects described by [spec] values as resources of the Pulumi
// snowflake provider.
//
// A [Deployment] remembers every object it declared. When a later declaration refers to one of them, the
// reference resolves to the earlier handle's name output, so the engine creates the two in order.
package snowflake

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/common/util/contract"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pulumi/pulumi-snowflake-template/internal/logging"
	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// Deployment declares specs within one Pulumi program. It is not safe for concurrent use.
type Deployment struct {
	ctx      *pulumi.Context
	defaults spec.Defaults
	log      logging.Logger
	opts     []pulumi.ResourceOption

	declared     map[spec.Ref]named
	logicalNames map[spec.Kind]mapset.Set[string]
}

// Option configures a Deployment.
type Option func(*Deployment)

// WithLogger sends declaration diagnostics to l instead of the engine.
func WithLogger(l logging.Logger) Option {
	return func(d *Deployment) { d.log = l }
}

// WithProviderVersion pins the snowflake provider plugin used for every declared resource.
func WithProviderVersion(version string) Option {
	return func(d *Deployment) {
		if version != "" {
			d.opts = append(d.opts, pulumi.Version(version))
		}
	}
}

// NewDeployment returns a Deployment that applies defaults to every spec it declares.
func NewDeployment(ctx *pulumi.Context, defaults spec.Defaults, opts ...Option) *Deployment {
	d := &Deployment{
		ctx:          ctx,
		defaults:     defaults,
		declared:     map[spec.Ref]named{},
		logicalNames: map[spec.Kind]mapset.Set[string]{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.log == nil {
		d.log = logging.NewPulumiLogger(ctx)
	}
	return d
}

// Declare normalizes s and registers it under logicalName. The returned resource is one of the handle types of
// this package, matching s.Kind().
func (d *Deployment) Declare(logicalName string, s spec.Spec) (pulumi.CustomResource, error) {
	contract.Requiref(s != nil, "s", "must not be nil")
	res := newHandle(s.Kind())
	if res == nil {
		return nil, fmt.Errorf("%w: cannot declare %s %q: unsupported kind", spec.ErrConfig, s.Kind(), logicalName)
	}
	if err := d.declare(logicalName, s, res); err != nil {
		return nil, err
	}
	return res, nil
}

// Warehouses, roles and databases declared without a name are named after logicalName.
func (d *Deployment) declare(logicalName string, s spec.Spec, res pulumi.CustomResource) error {
	s = spec.NamedAfter(s, logicalName)
	kind := s.Kind()
	if logicalName == "" {
		return &spec.ConfigError{Kind: kind, Name: s.Identity(), Field: "logicalName", Problem: "is required"}
	}
	names, ok := d.logicalNames[kind]
	if !ok {
		names = mapset.NewThreadUnsafeSet[string]()
		d.logicalNames[kind] = names
	}
	if names.Contains(logicalName) {
		return &spec.ConfigError{
			Kind:    kind,
			Name:    logicalName,
			Problem: "is declared more than once; logical names must be unique per resource type",
		}
	}

	n, err := spec.Normalize(s, d.defaults)
	if err != nil {
		return err
	}

	token := kind.Token()
	err = d.ctx.RegisterResource(token, logicalName, d.inputs(n.Properties()), res, d.opts...)
	if err != nil {
		return fmt.Errorf("RegisterResource failed for %s %q: %w", kind, logicalName, err)
	}
	names.Add(logicalName)

	if h, ok := res.(named); ok {
		ref := spec.RefTo(n)
		if _, dup := d.declared[ref]; dup {
			logging.Infof(d.log.For(res), "%s is declared more than once, references resolve to the first declaration", ref)
		} else {
			d.declared[ref] = h
		}
	}
	logging.Debugf(d.log.For(res), "declared %s %s as %q", token, n.Identity(), logicalName)
	return nil
}

// CreateUser declares a user.
func (d *Deployment) CreateUser(logicalName string, s spec.UserSpec) (*User, error) {
	var u User
	if err := d.declare(logicalName, s, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// CreateRole declares an account role.
func (d *Deployment) CreateRole(logicalName string, s spec.RoleSpec) (*Role, error) {
	var r Role
	if err := d.declare(logicalName, s, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// GrantRoles declares the grant of a role to users and roles.
func (d *Deployment) GrantRoles(logicalName string, s spec.RoleGrantSpec) (*RoleGrants, error) {
	var g RoleGrants
	if err := d.declare(logicalName, s, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GrantRoleToUser grants role to user.
func (d *Deployment) GrantRoleToUser(logicalName, role, user string) (*RoleGrants, error) {
	return d.GrantRoles(logicalName, spec.GrantRoleToUser(role, user))
}

// CreateWarehouse declares a virtual warehouse.
func (d *Deployment) CreateWarehouse(logicalName string, s spec.WarehouseSpec) (*Warehouse, error) {
	var w Warehouse
	if err := d.declare(logicalName, s, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateDatabase declares a database.
func (d *Deployment) CreateDatabase(logicalName string, s spec.DatabaseSpec) (*Database, error) {
	var db Database
	if err := d.declare(logicalName, s, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// CreateSchema declares a schema.
func (d *Deployment) CreateSchema(logicalName string, s spec.SchemaSpec) (*Schema, error) {
	var sc Schema
	if err := d.declare(logicalName, s, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// CreateTable declares a table.
func (d *Deployment) CreateTable(logicalName string, s spec.TableSpec) (*Table, error) {
	var t Table
	if err := d.declare(logicalName, s, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Grant declares a privilege grant to an account role.
func (d *Deployment) Grant(logicalName string, s spec.GrantSpec) (*GrantPrivilegesToAccountRole, error) {
	var g GrantPrivilegesToAccountRole
	if err := d.declare(logicalName, s, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// GrantDatabaseUsage grants USAGE on database to role.
func (d *Deployment) GrantDatabaseUsage(logicalName, database, role string) (*GrantPrivilegesToAccountRole, error) {
	return d.Grant(logicalName, spec.GrantDatabaseUsage(database, role))
}

// GrantSchemaUsage grants USAGE on database.schema to role.
func (d *Deployment) GrantSchemaUsage(logicalName, database, schema, role string) (*GrantPrivilegesToAccountRole, error) {
	return d.Grant(logicalName, spec.GrantSchemaUsage(database, schema, role))
}

// GrantTableSelect grants SELECT on the tables of database.schema selected by opts to role.
func (d *Deployment) GrantTableSelect(
	logicalName, database, schema, role string, opts spec.TableSelectOptions,
) (*GrantPrivilegesToAccountRole, error) {
	return d.Grant(logicalName, spec.GrantTableSelect(database, schema, role, opts))
}

// GrantWarehouseUsage grants USAGE on warehouse to role.
func (d *Deployment) GrantWarehouseUsage(logicalName, warehouse, role string) (*GrantPrivilegesToAccountRole, error) {
	return d.Grant(logicalName, spec.GrantWarehouseUsage(warehouse, role))
}
