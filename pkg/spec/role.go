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

// RoleSpec describes a Snowflake account role.
type RoleSpec struct {
	Name    string `yaml:"name" validate:"required"`
	Comment string `yaml:"comment,omitempty"`
}

func (RoleSpec) Kind() Kind { return KindRole }

func (s RoleSpec) Identity() string { return s.Name }

func (s RoleSpec) WithDefaults(d Defaults) RoleSpec {
	s.Comment = orString(s.Comment, d.Comment)
	return s
}

func (s RoleSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s RoleSpec) Validate() error {
	p := newProblems(KindRole, s.Name)
	p.checkShape(s)
	return p.err()
}

func (s RoleSpec) Properties() Properties {
	var ps Properties
	ps.setString("name", s.Name)
	ps.setString("comment", s.Comment)
	return ps
}

// RoleGrantSpec grants a role to users and other roles.
type RoleGrantSpec struct {
	Role  string   `yaml:"role" validate:"required"`
	Users []string `yaml:"users,omitempty" validate:"dive,required"`
	Roles []string `yaml:"roles,omitempty" validate:"dive,required"`
}

// GrantRoleToUser grants role to a single user.
func GrantRoleToUser(role, user string) RoleGrantSpec {
	return RoleGrantSpec{Role: role, Users: []string{user}}
}

func (RoleGrantSpec) Kind() Kind { return KindRoleGrants }

func (s RoleGrantSpec) Identity() string { return "ROLE " + s.Role }

func (s RoleGrantSpec) WithDefaults(Defaults) RoleGrantSpec { return clone(s) }

func (s RoleGrantSpec) normalize(d Defaults) Spec { return s.WithDefaults(d) }

func (s RoleGrantSpec) Validate() error {
	p := newProblems(KindRoleGrants, s.Role)
	p.checkShape(s)
	if len(s.Users) == 0 && len(s.Roles) == 0 {
		p.add("users", "must name at least one user or role")
	}
	return p.err()
}

func (s RoleGrantSpec) Properties() Properties {
	var ps Properties
	ps.setRef("role_name", Ref{Kind: KindRole, Name: s.Role})
	if len(s.Users) > 0 {
		ps.setList("users", refs(KindUser, s.Users))
	}
	if len(s.Roles) > 0 {
		ps.setList("roles", refs(KindRole, s.Roles))
	}
	return ps
}

func refs(kind Kind, names []string) []Ref {
	rs := make([]Ref, len(names))
	for i, n := range names {
		rs[i] = Ref{Kind: kind, Name: n}
	}
	return rs
}
