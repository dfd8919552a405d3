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

// UserSpec describes a Snowflake user.
type UserSpec struct {
	// Name of the user object. Defaults to LoginName.
	Name      string `yaml:"name,omitempty"`
	LoginName string `yaml:"loginName" validate:"required"`
	// Email address. Uniqueness of logins and emails is enforced by Snowflake only.
	Email       string `yaml:"email" validate:"required,email"`
	DisplayName string `yaml:"displayName,omitempty"`
	// Role, warehouse and namespace used by new sessions. The role and warehouse are references.
	DefaultRole      string `yaml:"defaultRole,omitempty"`
	DefaultWarehouse string `yaml:"defaultWarehouse,omitempty"`
	// DATABASE or DATABASE.SCHEMA.
	DefaultNamespace string `yaml:"defaultNamespace,omitempty"`
	// Force a password change on first login. Defaults to true.
	MustChangePassword *bool  `yaml:"mustChangePassword,omitempty"`
	Disabled           *bool  `yaml:"disabled,omitempty"`
	Comment            string `yaml:"comment,omitempty"`
}

func (UserSpec) Kind() Kind { return KindUser }

func (s UserSpec) Identity() string { return orString(s.Name, s.LoginName) }

// WithDefaults returns a copy of s with every omitted option set to its default.
func (s UserSpec) WithDefaults(d Defaults) UserSpec {
	c := clone(s)
	c.Name = orString(c.Name, c.LoginName)
	c.MustChangePassword = orDefault(c.MustChangePassword, true)
	c.Disabled = orDefault(c.Disabled, false)
	c.Comment = orString(c.Comment, d.Comment)
	return c
}

func (s UserSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s UserSpec) Validate() error {
	p := newProblems(KindUser, s.Identity())
	p.checkShape(s)
	return p.err()
}

func (s UserSpec) Properties() Properties {
	var ps Properties
	ps.setString("name", s.Identity())
	ps.setString("login_name", s.LoginName)
	ps.setString("email", s.Email)
	ps.setString("display_name", s.DisplayName)
	ps.setRef("default_role", Ref{Kind: KindRole, Name: s.DefaultRole})
	ps.setRef("default_warehouse", Ref{Kind: KindWarehouse, Name: s.DefaultWarehouse})
	ps.setString("default_namespace", s.DefaultNamespace)
	ps.setBool("must_change_password", s.MustChangePassword)
	ps.setBool("disabled", s.Disabled)
	ps.setString("comment", s.Comment)
	return ps
}
