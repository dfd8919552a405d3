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

	"github.com/pulumi/pulumi-snowflake-template/pkg/naming"
)

// Kind identifies the provider resource a spec is declared as.
type Kind string

const (
	KindUser       Kind = "user"
	KindRole       Kind = "role"
	KindRoleGrants Kind = "role_grants"
	KindWarehouse  Kind = "warehouse"
	KindDatabase   Kind = "database"
	KindSchema     Kind = "schema"
	KindTable      Kind = "table"
	KindGrant      Kind = "grant_privileges_to_account_role"
)

// TerraformType is the resource type in the upstream provider schema, e.g. snowflake_warehouse.
func (k Kind) TerraformType() string { return naming.Package + "_" + string(k) }

// Token is the Pulumi type token, e.g. snowflake:index/warehouse:Warehouse.
func (k Kind) Token() string { return naming.MustToken(k.TerraformType()) }

// WarehouseSize is one of the fixed Snowflake warehouse tiers.
type WarehouseSize string

const (
	WarehouseXSmall   WarehouseSize = "XSMALL"
	WarehouseSmall    WarehouseSize = "SMALL"
	WarehouseMedium   WarehouseSize = "MEDIUM"
	WarehouseLarge    WarehouseSize = "LARGE"
	WarehouseXLarge   WarehouseSize = "XLARGE"
	WarehouseXXLarge  WarehouseSize = "XXLARGE"
	WarehouseXXXLarge WarehouseSize = "XXXLARGE"
	WarehouseX4Large  WarehouseSize = "X4LARGE"
	WarehouseX5Large  WarehouseSize = "X5LARGE"
	WarehouseX6Large  WarehouseSize = "X6LARGE"
)

var warehouseSizeAliases = map[string]WarehouseSize{
	"XSMALL":   WarehouseXSmall,
	"X-SMALL":  WarehouseXSmall,
	"SMALL":    WarehouseSmall,
	"MEDIUM":   WarehouseMedium,
	"LARGE":    WarehouseLarge,
	"XLARGE":   WarehouseXLarge,
	"X-LARGE":  WarehouseXLarge,
	"XXLARGE":  WarehouseXXLarge,
	"X2LARGE":  WarehouseXXLarge,
	"2X-LARGE": WarehouseXXLarge,
	"XXXLARGE": WarehouseXXXLarge,
	"X3LARGE":  WarehouseXXXLarge,
	"3X-LARGE": WarehouseXXXLarge,
	"X4LARGE":  WarehouseX4Large,
	"4X-LARGE": WarehouseX4Large,
	"X5LARGE":  WarehouseX5Large,
	"5X-LARGE": WarehouseX5Large,
	"X6LARGE":  WarehouseX6Large,
	"6X-LARGE": WarehouseX6Large,
}

// ParseWarehouseSize accepts any Snowflake spelling of a size, case-insensitively, and returns its canonical
// form.
func ParseWarehouseSize(s string) (WarehouseSize, error) {
	if size, ok := warehouseSizeAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return size, nil
	}
	return "", fmt.Errorf("unknown warehouse size %q", s)
}

// ScalingPolicy controls how a multi-cluster warehouse starts and shuts down clusters.
type ScalingPolicy string

const (
	ScalingStandard ScalingPolicy = "STANDARD"
	ScalingEconomy  ScalingPolicy = "ECONOMY"
)

// Privilege is a Snowflake access privilege.
type Privilege string

const (
	PrivilegeUsage        Privilege = "USAGE"
	PrivilegeSelect       Privilege = "SELECT"
	PrivilegeInsert       Privilege = "INSERT"
	PrivilegeUpdate       Privilege = "UPDATE"
	PrivilegeDelete       Privilege = "DELETE"
	PrivilegeTruncate     Privilege = "TRUNCATE"
	PrivilegeReferences   Privilege = "REFERENCES"
	PrivilegeMonitor      Privilege = "MONITOR"
	PrivilegeOperate      Privilege = "OPERATE"
	PrivilegeModify       Privilege = "MODIFY"
	PrivilegeCreateSchema Privilege = "CREATE SCHEMA"
	PrivilegeCreateTable  Privilege = "CREATE TABLE"
	PrivilegeCreateView   Privilege = "CREATE VIEW"
	PrivilegeOwnership    Privilege = "OWNERSHIP"
)

var knownPrivileges = map[Privilege]bool{
	PrivilegeUsage:        true,
	PrivilegeSelect:       true,
	PrivilegeInsert:       true,
	PrivilegeUpdate:       true,
	PrivilegeDelete:       true,
	PrivilegeTruncate:     true,
	PrivilegeReferences:   true,
	PrivilegeMonitor:      true,
	PrivilegeOperate:      true,
	PrivilegeModify:       true,
	PrivilegeCreateSchema: true,
	PrivilegeCreateTable:  true,
	PrivilegeCreateView:   true,
	PrivilegeOwnership:    true,
}

// ObjectType is the type of a securable Snowflake object.
type ObjectType string

const (
	ObjectDatabase  ObjectType = "DATABASE"
	ObjectWarehouse ObjectType = "WAREHOUSE"
	ObjectTable     ObjectType = "TABLE"
	ObjectView      ObjectType = "VIEW"
)

// Plural is the form used by bulk (all/future) grants, e.g. TABLES.
func (o ObjectType) Plural() string { return string(o) + "S" }

func (o ObjectType) kind() Kind {
	switch o {
	case ObjectDatabase:
		return KindDatabase
	case ObjectWarehouse:
		return KindWarehouse
	default:
		return KindTable
	}
}
