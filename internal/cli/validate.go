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
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a layout for configuration errors",
	Long: `Check a layout for configuration errors. Every problem found is reported, and the command exits with
a non-zero status when there is any.

Example:
  snowflake-layout validate --layout layouts/prod.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, source, err := loadLayout()
		if err != nil {
			return fmt.Errorf("failed to load layout: %w", err)
		}
		steps, err := l.Plan(defaults())
		if err != nil {
			return fmt.Errorf("layout from %s is invalid: %w", source, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "The layout from %s is valid and declares %d resources.\n", source, len(steps))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
