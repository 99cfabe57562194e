// Package actor provides the authenticated principal used by the
// authorization engine. An actor carries a role plus optional links to the
// consumer or restaurant it owns; the links are non-owning references used
// only for access decisions.
package actor

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Role classifies what an authenticated actor fundamentally is.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is always authorized, for every operation.
	RoleAdmin

	// RoleCustomer is a consumer-facing account linked to a consumer record
	// by email match.
	RoleCustomer

	// RoleRestaurant is a restaurant staff account. The restaurant link is
	// mandatory for this role.
	RoleRestaurant
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "UNKNOWN",
		RoleAdmin:      "ADMIN",
		RoleCustomer:   "CUSTOMER",
		RoleRestaurant: "RESTAURANT",
	}
}

// RoleFromString parses the wire representation of a role (e.g. "ADMIN").
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s && role != RoleUnknown {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is one of the defined roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role, e.g. "CUSTOMER".
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "UNKNOWN"
}
