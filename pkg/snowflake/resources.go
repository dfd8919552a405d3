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
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// User is a declared snowflake:index/user:User.
type User struct {
	pulumi.CustomResourceState

	Name      pulumi.StringOutput `pulumi:"name"`
	LoginName pulumi.StringOutput `pulumi:"loginName"`
	Email     pulumi.StringOutput `pulumi:"email"`
}

// Role is a declared snowflake:index/role:Role.
type Role struct {
	pulumi.CustomResourceState

	Name pulumi.StringOutput `pulumi:"name"`
}

// RoleGrants is a declared snowflake:index/roleGrants:RoleGrants.
type RoleGrants struct {
	pulumi.CustomResourceState

	RoleName pulumi.StringOutput      `pulumi:"roleName"`
	Users    pulumi.StringArrayOutput `pulumi:"users"`
	Roles    pulumi.StringArrayOutput `pulumi:"roles"`
}

// Warehouse is a declared snowflake:index/warehouse:Warehouse.
type Warehouse struct {
	pulumi.CustomResourceState

	Name          pulumi.StringOutput `pulumi:"name"`
	WarehouseSize pulumi.StringOutput `pulumi:"warehouseSize"`
}

// Database is a declared snowflake:index/database:Database.
type Database struct {
	pulumi.CustomResourceState

	Name pulumi.StringOutput `pulumi:"name"`
}

// Schema is a declared snowflake:index/schema:Schema.
type Schema struct {
	pulumi.CustomResourceState

	Name     pulumi.StringOutput `pulumi:"name"`
	Database pulumi.StringOutput `pulumi:"database"`
}

// Table is a declared snowflake:index/table:Table.
type Table struct {
	pulumi.CustomResourceState

	Name     pulumi.StringOutput `pulumi:"name"`
	Database pulumi.StringOutput `pulumi:"database"`
	Schema   pulumi.StringOutput `pulumi:"schema"`
}

// GrantPrivilegesToAccountRole is a declared snowflake:index/grantPrivilegesToAccountRole:GrantPrivilegesToAccountRole.
type GrantPrivilegesToAccountRole struct {
	pulumi.CustomResourceState

	AccountRoleName pulumi.StringOutput      `pulumi:"accountRoleName"`
	Privileges      pulumi.StringArrayOutput `pulumi:"privileges"`
}

// Handles of objects that other declarations can refer to by name.
type named interface {
	pulumi.CustomResource
	nameOutput() pulumi.StringOutput
}

func (u *User) nameOutput() pulumi.StringOutput      { return u.Name }
func (r *Role) nameOutput() pulumi.StringOutput      { return r.Name }
func (w *Warehouse) nameOutput() pulumi.StringOutput { return w.Name }
func (d *Database) nameOutput() pulumi.StringOutput  { return d.Name }
func (s *Schema) nameOutput() pulumi.StringOutput    { return s.Name }
func (t *Table) nameOutput() pulumi.StringOutput     { return t.Name }

// Allocates the handle a spec of the given kind is registered into.
func newHandle(kind spec.Kind) pulumi.CustomResource {
	switch kind {
	case spec.KindUser:
		return &User{}
	case spec.KindRole:
		return &Role{}
	case spec.KindRoleGrants:
		return &RoleGrants{}
	case spec.KindWarehouse:
		return &Warehouse{}
	case spec.KindDatabase:
		return &Database{}
	case spec.KindSchema:
		return &Schema{}
	case spec.KindTable:
		return &Table{}
	case spec.KindGrant:
		return &GrantPrivilegesToAccountRole{}
	default:
		return nil
	}
}
