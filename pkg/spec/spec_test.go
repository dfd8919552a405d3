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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/hexops/autogold/v2"
	"github.com/pulumi/pulumi/sdk/v3/go/common/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDefaults = NewDefaults("test")

func TestNewDefaults(t *testing.T) {
	autogold.Expect("Managed by Pulumi - dev").Equal(t, NewDefaults("dev").Comment)
}

func TestWarehouseDefaults(t *testing.T) {
	w := WarehouseSpec{Name: "x"}.WithDefaults(Defaults{})

	assert.Equal(t, WarehouseSmall, w.Size)
	require.NotNil(t, w.AutoSuspend)
	assert.Equal(t, 600, *w.AutoSuspend)
	require.NotNil(t, w.InitiallySuspended)
	assert.True(t, *w.InitiallySuspended)
	require.NotNil(t, w.AutoResume)
	assert.True(t, *w.AutoResume)
	assert.Equal(t, 1, *w.MinClusterCount)
	assert.Equal(t, 1, *w.MaxClusterCount)
	assert.Empty(t, w.ScalingPolicy)
}

func TestWarehouseScenario(t *testing.T) {
	s, err := Normalize(WarehouseSpec{
		Name:        "analytics-warehouse",
		Size:        "MEDIUM",
		AutoSuspend: ptr(600),
	}, testDefaults)
	require.NoError(t, err)

	assert.Equal(t, resource.PropertyMap{
		"name":               resource.NewStringProperty("analytics-warehouse"),
		"warehouseSize":      resource.NewStringProperty("MEDIUM"),
		"autoSuspend":        resource.NewNumberProperty(600),
		"autoResume":         resource.NewBoolProperty(true),
		"initiallySuspended": resource.NewBoolProperty(true),
		"minClusterCount":    resource.NewNumberProperty(1),
		"maxClusterCount":    resource.NewNumberProperty(1),
		"comment":            resource.NewStringProperty("Managed by Pulumi - test"),
	}, Render(s))
}

func TestWarehouseExplicitOptionsWin(t *testing.T) {
	w := WarehouseSpec{
		Name:               "etl",
		Size:               "x-large",
		AutoSuspend:        ptr(0),
		AutoResume:         ptr(false),
		InitiallySuspended: ptr(false),
		MinClusterCount:    ptr(2),
		MaxClusterCount:    ptr(4),
		ScalingPolicy:      ScalingEconomy,
		Comment:            "nightly loads",
	}.WithDefaults(testDefaults)

	require.NoError(t, w.Validate())
	assert.Equal(t, WarehouseXLarge, w.Size)
	assert.Equal(t, 0, *w.AutoSuspend)
	assert.False(t, *w.AutoResume)
	assert.False(t, *w.InitiallySuspended)
	assert.Equal(t, "nightly loads", w.Comment)
}

func TestParseWarehouseSize(t *testing.T) {
	tests := map[string]WarehouseSize{
		"xsmall":    WarehouseXSmall,
		"X-SMALL":   WarehouseXSmall,
		"Medium":    WarehouseMedium,
		" large ":   WarehouseLarge,
		"2X-LARGE":  WarehouseXXLarge,
		"X3LARGE":   WarehouseXXXLarge,
		"6x-large":  WarehouseX6Large,
		"X5LARGE":   WarehouseX5Large,
		"XXXLARGE":  WarehouseXXXLarge,
		"x4large":   WarehouseX4Large,
		"XLARGE":    WarehouseXLarge,
		"XXLARGE":   WarehouseXXLarge,
		"SMALL":     WarehouseSmall,
		"4X-LARGE":  WarehouseX4Large,
		"5X-LARGE":  WarehouseX5Large,
		"3X-LARGE":  WarehouseXXXLarge,
		"X-LARGE":   WarehouseXLarge,
		"X2LARGE":   WarehouseXXLarge,
		"X6LARGE":   WarehouseX6Large,
		"LARGE":     WarehouseLarge,
		"XSMALL":    WarehouseXSmall,
		"MEDIUM":    WarehouseMedium,
		"x-small  ": WarehouseXSmall,
	}
	for in, want := range tests {
		got, err := ParseWarehouseSize(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "HUGE", "7X-LARGE", "X-MEDIUM"} {
		_, err := ParseWarehouseSize(bad)
		assert.Error(t, err, bad)
	}
}

func TestWarehouseValidation(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		_, err := Normalize(WarehouseSpec{Name: "wh", Size: "GIGANTIC"}, testDefaults)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrConfig))
		assert.Contains(t, err.Error(), `"GIGANTIC"`)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Normalize(WarehouseSpec{}, testDefaults)
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "name is required")
	})

	t.Run("negative auto suspend", func(t *testing.T) {
		_, err := Normalize(WarehouseSpec{Name: "wh", AutoSuspend: ptr(-1)}, testDefaults)
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "autoSuspend must be at least 0")
	})

	t.Run("cluster counts", func(t *testing.T) {
		_, err := Normalize(WarehouseSpec{
			Name:            "wh",
			MinClusterCount: ptr(3),
			MaxClusterCount: ptr(2),
		}, testDefaults)
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "must not exceed maxClusterCount")

		_, err = Normalize(WarehouseSpec{Name: "wh", MaxClusterCount: ptr(11)}, testDefaults)
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "maxClusterCount must be at most 10")
	})

	t.Run("scaling policy", func(t *testing.T) {
		_, err := Normalize(WarehouseSpec{Name: "wh", ScalingPolicy: "AGGRESSIVE"}, testDefaults)
		require.ErrorIs(t, err, ErrConfig)
		assert.Contains(t, err.Error(), "scalingPolicy must be one of [STANDARD ECONOMY]")
	})

	t.Run("problems are aggregated", func(t *testing.T) {
		err := WarehouseSpec{Size: "GIGANTIC", AutoSuspend: ptr(-5)}.Validate()
		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, 3)
	})
}

func TestUserDefaults(t *testing.T) {
	in := UserSpec{LoginName: "JDOE", Email: "jdoe@example.com", DefaultRole: "ANALYST"}
	s, err := Normalize(in, testDefaults)
	require.NoError(t, err)

	u := s.(UserSpec)
	assert.Equal(t, "JDOE", u.Name)
	assert.True(t, *u.MustChangePassword)
	assert.False(t, *u.Disabled)
	assert.Equal(t, "Managed by Pulumi - test", u.Comment)

	assert.Nil(t, in.MustChangePassword, "input must not be modified")
	assert.Equal(t, []Ref{{Kind: KindRole, Name: "ANALYST"}}, References(u))

	m := Render(u)
	assert.Equal(t, "JDOE", m["loginName"].StringValue())
	assert.Equal(t, "ANALYST", m["defaultRole"].StringValue())
	assert.True(t, m["mustChangePassword"].BoolValue())
	assert.NotContains(t, m, resource.PropertyKey("defaultWarehouse"))
}

func TestUserValidation(t *testing.T) {
	_, err := Normalize(UserSpec{LoginName: "JDOE", Email: "not-an-email"}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "email must be an email address")

	_, err = Normalize(UserSpec{Email: "jdoe@example.com"}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "loginName is required")
}

func TestRoleAndRoleGrant(t *testing.T) {
	r, err := Normalize(RoleSpec{Name: "ANALYST"}, testDefaults)
	require.NoError(t, err)
	assert.Equal(t, "Managed by Pulumi - test", r.(RoleSpec).Comment)

	_, err = Normalize(RoleSpec{}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)

	g, err := Normalize(GrantRoleToUser("ANALYST", "JDOE"), testDefaults)
	require.NoError(t, err)
	assert.Equal(t, []Ref{
		{Kind: KindRole, Name: "ANALYST"},
		{Kind: KindUser, Name: "JDOE"},
	}, References(g))
	assert.Equal(t, resource.PropertyMap{
		"roleName": resource.NewStringProperty("ANALYST"),
		"users":    resource.NewArrayProperty([]resource.PropertyValue{resource.NewStringProperty("JDOE")}),
	}, Render(g))

	_, err = Normalize(RoleGrantSpec{Role: "ANALYST"}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "must name at least one user or role")
}

func TestDatabaseAndSchema(t *testing.T) {
	db, err := Normalize(DatabaseSpec{Name: "ANALYTICS"}, testDefaults)
	require.NoError(t, err)
	assert.Equal(t, 1, *db.(DatabaseSpec).DataRetentionTimeInDays)

	_, err = Normalize(DatabaseSpec{Name: "ANALYTICS", DataRetentionTimeInDays: ptr(91)}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)

	s, err := Normalize(SchemaSpec{Database: "ANALYTICS", Name: "SALES"}, testDefaults)
	require.NoError(t, err)
	assert.Equal(t, "ANALYTICS.SALES", s.Identity())
	assert.False(t, *s.(SchemaSpec).IsManaged)
	assert.Equal(t, []Ref{{Kind: KindDatabase, Name: "ANALYTICS"}}, References(s))

	m := Render(s)
	assert.NotContains(t, m, resource.PropertyKey("dataRetentionDays"), "unset retention inherits the database's")
	assert.Equal(t, "ANALYTICS", m["database"].StringValue())

	_, err = Normalize(SchemaSpec{Name: "SALES"}, testDefaults)
	require.ErrorIs(t, err, ErrConfig)
	assert.Contains(t, err.Error(), "database is required")
}

func TestIdempotence(t *testing.T) {
	build := func() []Spec {
		return []Spec{
			WarehouseSpec{Name: "WH", Size: "MEDIUM"},
			UserSpec{LoginName: "JDOE", Email: "jdoe@example.com"},
			TableSpec{
				Database:  "DB",
				Schema:    "S",
				Name:      "T",
				Columns:   []ColumnSpec{{Name: "A", Type: "NUMBER"}, Column("B", "DATE", false)},
				ClusterBy: []string{"B"},
			},
			GrantTableSelect("DB", "S", "R", TableSelectOptions{}),
		}
	}
	first, second := build(), build()
	for i := range first {
		a, err := Normalize(first[i], testDefaults)
		require.NoError(t, err)
		b, err := Normalize(second[i], testDefaults)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(a, b))
		assert.Empty(t, cmp.Diff(a.Properties(), b.Properties()))
		assert.Equal(t, Render(a), Render(b))
	}
}

func TestNamedAfter(t *testing.T) {
	assert.Equal(t, WarehouseSpec{Name: "x"}, NamedAfter(WarehouseSpec{}, "x"))
	assert.Equal(t, RoleSpec{Name: "analyst"}, NamedAfter(RoleSpec{}, "analyst"))
	assert.Equal(t, DatabaseSpec{Name: "analytics"}, NamedAfter(DatabaseSpec{}, "analytics"))
	assert.Equal(t, WarehouseSpec{Name: "WH"}, NamedAfter(WarehouseSpec{Name: "WH"}, "x"))
	assert.Equal(t, SchemaSpec{Database: "DB"}, NamedAfter(SchemaSpec{Database: "DB"}, "sales"))

	w, err := Normalize(NamedAfter(WarehouseSpec{}, "x"), testDefaults)
	require.NoError(t, err)
	assert.Equal(t, 600, *w.(WarehouseSpec).AutoSuspend)
	assert.True(t, *w.(WarehouseSpec).InitiallySuspended)
}

func TestRefsKeepQuotedIdentifiers(t *testing.T) {
	schema := SchemaSpec{Database: "ANALYTICS", Name: `"Q1.REPORTS"`}
	ref := RefTo(schema)
	assert.Equal(t, Ref{Kind: KindSchema, Database: "ANALYTICS", Name: `"Q1.REPORTS"`}, ref)
	assert.Equal(t, `"Q1.REPORTS"`, ref.Object())
	assert.Equal(t, `ANALYTICS."Q1.REPORTS"`, ref.QualifiedName())

	table := TableSpec{
		Database: "ANALYTICS",
		Schema:   `"Q1.REPORTS"`,
		Name:     "TOTALS",
		Columns:  []ColumnSpec{{Name: "AMOUNT", Type: "NUMBER"}},
	}
	assert.Equal(t, `"Q1.REPORTS"`, Render(table)["schema"].StringValue())
	assert.Contains(t, References(table), ref)

	on := Render(GrantSchemaUsage("ANALYTICS", `"Q1.REPORTS"`, "ANALYST"))["onSchema"].ObjectValue()
	assert.Equal(t, `ANALYTICS."Q1.REPORTS"`, on["schemaName"].StringValue())
}
