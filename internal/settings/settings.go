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

// Package settings reads the template's stack configuration.
package settings

import (
	"fmt"
	"path/filepath"

	"github.com/blang/semver"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/pulumi/pulumi-snowflake-template/pkg/layout"
	"github.com/pulumi/pulumi-snowflake-template/pkg/spec"
)

// DefaultEnvironment is used when the environment key is not set.
const DefaultEnvironment = "dev"

const kindSettings spec.Kind = "configuration"

// Settings of one stack. Snowflake credentials are read by the provider itself, not here.
type Settings struct {
	// Tag appended to default comments, e.g. dev or prod.
	Environment string
	// Path of a YAML layout, relative to the project directory.
	LayoutFile string
	// Inline layout. Takes precedence over LayoutFile.
	Layout map[string]any
	// Version of the snowflake provider plugin. Empty means whatever the engine picks.
	ProviderVersion string
}

// Load reads the settings from the configuration of the current stack.
func Load(ctx *pulumi.Context) (*Settings, error) {
	cfg := config.New(ctx, "")
	s := &Settings{
		Environment:     cfg.Get("environment"),
		LayoutFile:      cfg.Get("layoutFile"),
		ProviderVersion: cfg.Get("providerVersion"),
	}
	if s.Environment == "" {
		s.Environment = DefaultEnvironment
	}
	if err := cfg.GetObject("layout", &s.Layout); err != nil {
		return nil, &spec.ConfigError{Kind: kindSettings, Field: "layout", Problem: fmt.Sprintf("must be an object: %v", err)}
	}
	if s.ProviderVersion != "" {
		v, err := semver.ParseTolerant(s.ProviderVersion)
		if err != nil {
			return nil, &spec.ConfigError{
				Kind:    kindSettings,
				Field:   "providerVersion",
				Problem: fmt.Sprintf("must be a semantic version: %v", err),
			}
		}
		s.ProviderVersion = v.String()
	}
	return s, nil
}

// Defaults derived from the settings.
func (s *Settings) Defaults() spec.Defaults {
	return spec.NewDefaults(s.Environment)
}

// ResolveLayout picks the inline layout, then the layout file, then the default layout. It also describes
// where the layout came from.
func (s *Settings) ResolveLayout(projectDir string) (*layout.Layout, string, error) {
	switch {
	case len(s.Layout) > 0:
		l, err := layout.Decode(s.Layout)
		return l, "stack configuration", err
	case s.LayoutFile != "":
		path := s.LayoutFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(projectDir, path)
		}
		l, err := layout.Load(path)
		return l, path, err
	default:
		return layout.Default(), "default layout", nil
	}
}
