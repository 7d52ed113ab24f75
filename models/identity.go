// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// AdminRoleID is the numeric role identifier of administrators.
const AdminRoleID int64 = 1

// AdminRoleName is the textual role name of administrators.
const AdminRoleName = "admin"

// Identity is the canonical snapshot of an authenticated principal.
//
// The CMS backend is not consistent about the JSON shape of a user: the id
// may arrive as "id" or "userId" and the role as "roleName" or "role".
// [Identity.UnmarshalJSON] folds every variant into this one shape so that
// nothing past the network boundary has to care.
type Identity struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   int64  `json:"roleId"`
	RoleName string `json:"roleName"`
	// Year is the member-since year some endpoints include.
	Year string `json:"year,omitempty"`
}

type identityWire struct {
	ID       FlexInt64 `json:"id"`
	UserID   FlexInt64 `json:"userId"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	RoleID   FlexInt64 `json:"roleId"`
	RoleName string    `json:"roleName"`
	Role     string    `json:"role"`
	Year     any       `json:"year"`
}

// UnmarshalJSON decodes any of the known user shapes into an Identity.
func (i *Identity) UnmarshalJSON(data []byte) error {
	var w identityWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode identity: %w", err)
	}

	*i = Identity{
		ID:       int64(w.ID),
		Name:     w.Name,
		Email:    w.Email,
		RoleID:   int64(w.RoleID),
		RoleName: w.RoleName,
	}
	if i.ID == 0 {
		i.ID = int64(w.UserID)
	}
	if i.RoleName == "" {
		i.RoleName = w.Role
	}
	if w.Year != nil {
		i.Year = fmt.Sprint(w.Year)
	}

	return nil
}

// IsAdmin reports whether the identity carries administrator rights under
// either role encoding. Depending on the endpoint only one of them is set.
func (i Identity) IsAdmin() bool {
	return i.RoleID == AdminRoleID || i.RoleName == AdminRoleName
}

// IsZero reports whether the identity is empty.
func (i Identity) IsZero() bool {
	return i == Identity{}
}

// DisplayName returns the name, falling back to the email.
func (i Identity) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.Email
}
