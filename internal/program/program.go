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

// Package program is the Pulumi program of the template: it declares the configured layout and exports the
// names of its main objects.
package program

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pulumi/pulumi-snowflake-template/internal/logging"
	"github.com/pulumi/pulumi-snowflake-template/internal/settings"
	"github.com/pulumi/pulumi-snowflake-template/pkg/layout"
	"github.com/pulumi/pulumi-snowflake-template/pkg/snowflake"
)

// Run declares the stack. It is passed to pulumi.Run.
func Run(ctx *pulumi.Context) error {
	s, err := settings.Load(ctx)
	if err != nil {
		return err
	}
	l, source, err := s.ResolveLayout(ctx.RootDirectory())
	if err != nil {
		return err
	}
	return Declare(ctx, s, l, source)
}

// Declare plans l and declares every step, then exports the layout's outputs.
func Declare(ctx *pulumi.Context, s *settings.Settings, l *layout.Layout, source string) error {
	log := logging.NewPulumiLogger(ctx)

	steps, err := l.Plan(s.Defaults())
	if err != nil {
		return fmt.Errorf("invalid layout from %s: %w", source, err)
	}
	logging.Infof(log, "declaring %d Snowflake resources from the %s (environment %s)", len(steps), source, s.Environment)

	d := snowflake.NewDeployment(ctx, s.Defaults(),
		snowflake.WithLogger(log),
		snowflake.WithProviderVersion(s.ProviderVersion))

	declared := make(map[string]pulumi.CustomResource, len(steps))
	for _, step := range steps {
		res, err := d.Declare(step.LogicalName, step.Spec)
		if err != nil {
			return err
		}
		declared[step.Address()] = res
	}

	for output, target := range l.ExportTargets() {
		step, err := layout.FindStep(steps, target)
		if err != nil {
			return fmt.Errorf("export %q: %w", output, err)
		}
		ctx.Export(output, exported(declared[step.Address()]))
	}
	return nil
}

// The object name for named objects, and the resource ID for grants.
func exported(res pulumi.CustomResource) pulumi.Input {
	switch r := res.(type) {
	case *snowflake.User:
		return r.Name
	case *snowflake.Role:
		return r.Name
	case *snowflake.Warehouse:
		return r.Name
	case *snowflake.Database:
		return r.Name
	case *snowflake.Schema:
		return r.Name
	case *snowflake.Table:
		return r.Name
	default:
		return res.ID()
	}
}
