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
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/pulumi/pulumi-snowflake-template/pkg/layout"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the resources a layout declares, in declaration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, source, err := loadLayout()
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		steps, err := l.Plan(defaults())
		if err != nil {
			return fmt.Errorf("layout from %s is invalid: %w", source, err)
		}
		writePlan(cmd.OutOrStdout(), steps)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}

func writePlan(w io.Writer, steps []layout.Step) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Type", "Logical name", "Object", "Depends on"})
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for i, step := range steps {
		table.Append([]string{
			strconv.Itoa(i + 1),
			step.Kind().Token(),
			step.LogicalName,
			step.Spec.Identity(),
			strings.Join(step.DependsOn, ", "),
		})
	}
	table.Render()
}
