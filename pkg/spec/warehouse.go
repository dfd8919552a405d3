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

// Warehouse defaults. Warehouses start suspended so that declaring one costs nothing until it is used.
const (
	DefaultWarehouseSize      = WarehouseSmall
	DefaultAutoSuspendSeconds = 600
	DefaultClusterCount       = 1
)

// WarehouseSpec describes a Snowflake virtual warehouse.
type WarehouseSpec struct {
	Name string        `yaml:"name" validate:"required"`
	Size WarehouseSize `yaml:"size,omitempty"`
	// Seconds of inactivity before the warehouse suspends itself.
	AutoSuspend        *int          `yaml:"autoSuspend,omitempty" validate:"omitnil,gte=0"`
	AutoResume         *bool         `yaml:"autoResume,omitempty"`
	InitiallySuspended *bool         `yaml:"initiallySuspended,omitempty"`
	MinClusterCount    *int          `yaml:"minClusterCount,omitempty" validate:"omitnil,gte=1,lte=10"`
	MaxClusterCount    *int          `yaml:"maxClusterCount,omitempty" validate:"omitnil,gte=1,lte=10"`
	ScalingPolicy      ScalingPolicy `yaml:"scalingPolicy,omitempty" validate:"omitempty,oneof=STANDARD ECONOMY"`
	Comment            string        `yaml:"comment,omitempty"`
}

func (WarehouseSpec) Kind() Kind { return KindWarehouse }

func (s WarehouseSpec) Identity() string { return s.Name }

// WithDefaults returns a copy of s with every omitted option set to its default. A recognized size is
// rewritten to its canonical spelling; an unrecognized one is kept for Validate to report.
func (s WarehouseSpec) WithDefaults(d Defaults) WarehouseSpec {
	c := clone(s)
	if c.Size == "" {
		c.Size = DefaultWarehouseSize
	} else if size, err := ParseWarehouseSize(string(c.Size)); err == nil {
		c.Size = size
	}
	c.AutoSuspend = orDefault(c.AutoSuspend, DefaultAutoSuspendSeconds)
	c.AutoResume = orDefault(c.AutoResume, true)
	c.InitiallySuspended = orDefault(c.InitiallySuspended, true)
	c.MinClusterCount = orDefault(c.MinClusterCount, DefaultClusterCount)
	c.MaxClusterCount = orDefault(c.MaxClusterCount, DefaultClusterCount)
	c.Comment = orString(c.Comment, d.Comment)
	return c
}

func (s WarehouseSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s WarehouseSpec) Validate() error {
	p := newProblems(KindWarehouse, s.Name)
	p.checkShape(s)
	if s.Size != "" {
		if _, err := ParseWarehouseSize(string(s.Size)); err != nil {
			p.add("size", "must be a warehouse size such as XSMALL, SMALL or MEDIUM, got %q", s.Size)
		}
	}
	if s.MinClusterCount != nil && s.MaxClusterCount != nil && *s.MinClusterCount > *s.MaxClusterCount {
		p.add("minClusterCount", "must not exceed maxClusterCount (%d > %d)", *s.MinClusterCount, *s.MaxClusterCount)
	}
	return p.err()
}

func (s WarehouseSpec) Properties() Properties {
	var ps Properties
	ps.setString("name", s.Name)
	ps.setString("warehouse_size", string(s.Size))
	ps.setInt("auto_suspend", s.AutoSuspend)
	ps.setBool("auto_resume", s.AutoResume)
	ps.setBool("initially_suspended", s.InitiallySuspended)
	ps.setInt("min_cluster_count", s.MinClusterCount)
	ps.setInt("max_cluster_count", s.MaxClusterCount)
	ps.setString("scaling_policy", string(s.ScalingPolicy))
	ps.setString("comment", s.Comment)
	return ps
}
