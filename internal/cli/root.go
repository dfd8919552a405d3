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

// Package cli implements snowflake-layout, which checks and previews layouts without talking to the Pulumi
// engine or to Snowflake.
package cli

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/pulumi/pulumi-snowflake-template/internal/logging"
	"github.com/pulumi/pulumi-snowflake-template/internal/settings"
	"github.com/pulumi/pulumi-snowflake-template/pkg/layout"
	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

var (
	layoutFile  string
	environment string
)

var rootCmd = &cobra.Command{
	Use:   "snowflake-layout",
	Short: "Check and preview Snowflake layouts",
	Long: `Check and preview the layouts declared by the Snowflake template, offline.

Without --layout the commands operate on the default example layout.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute runs the command line.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layoutFile, "layout", "l", "", "YAML layout file (defaults to the example layout)")
	rootCmd.PersistentFlags().StringVarP(&environment, "environment", "e", settings.DefaultEnvironment,
		"Environment tag used in default comments")
	// glog flags such as -v and -logtostderr.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

var log = logging.NewGlogLogger()

// Loads the selected layout and describes where it came from.
func loadLayout() (*layout.Layout, string, error) {
	s := &settings.Settings{Environment: environment, LayoutFile: layoutFile}
	l, source, err := s.ResolveLayout(".")
	if err != nil {
		return nil, "", err
	}
	logging.Infof(log, "loaded the layout from %s", source)
	return l, source, nil
}

func defaults() spec.Defaults {
	return spec.NewDefaults(environment)
}
