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

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pulumi/pulumi-snowflake-template/pkg/layout"
	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

var showCmd = &cobra.Command{
	Use:   "show LOGICAL_NAME",
	Short: "Print the provider inputs of one declaration",
	Long: `Print the type, dependencies and provider inputs of one declaration as YAML. A logical name used by
several resource types must be qualified with its type, e.g. database/analytics.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, source, err := loadLayout()
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		steps, err := l.Plan(defaults())
		if err != nil {
			return fmt.Errorf("layout from %s is invalid: %w", source, err)
		}
		step, err := layout.FindStep(steps, args[0])
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(describe(step))
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", step.Address(), err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

type declaration struct {
	Type      string         `yaml:"type"`
	Name      string         `yaml:"name"`
	Object    string         `yaml:"object"`
	DependsOn []string       `yaml:"dependsOn,omitempty"`
	Inputs    map[string]any `yaml:"inputs"`
}

func describe(step layout.Step) declaration {
	return declaration{
		Type:      step.Kind().Token(),
		Name:      step.LogicalName,
		Object:    step.Spec.Identity(),
		DependsOn: step.DependsOn,
		Inputs:    spec.Render(step.Spec).Mappable(),
	}
}
