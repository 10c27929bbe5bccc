// Package policy is the authorization core: a set of pure, stateless decision
// functions answering whether an actor may perform an operation against a
// target employee record. Every denial carries a classification that the
// handler layer maps to an HTTP status:
//
//	ErrNotFound     → 404 — also used to hide the existence of records the
//	                  actor may not see; indistinguishable from an absent record
//	ErrForbidden    → 403 — the record is known to the actor, the operation is not allowed
//	ErrActionDenied → 400 — the operation is semantically disallowed (protected role)
package policy

import (
	"errors"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
)

var (
	ErrNotFound     = errors.New("employee not found")
	ErrForbidden    = errors.New("operation forbidden")
	ErrActionDenied = errors.New("action denied")
)

// Actor is the authenticated identity making a request, taken from verified
// token claims. The zero value is never a valid actor — anonymous operations
// (login, register) do not consult the policy at all.
type Actor struct {
	ID       uint
	Username string
	Role     string
}

// IsAdmin reports whether the actor carries the Admin role.
func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// CanRead allows admins to read any record and employees to read their own.
// Any other combination denies as not-found: an unauthorized caller must not
// be able to tell an existing record from an absent one.
func CanRead(actor Actor, targetID uint) error {
	if actor.IsAdmin() || actor.ID == targetID {
		return nil
	}
	return ErrNotFound
}

// CanList allows only admins to enumerate the directory.
func CanList(actor Actor) error {
	if actor.IsAdmin() {
		return nil
	}
	return ErrForbidden
}

// RequireSelf denies as forbidden unless the actor addresses their own
// record. Checked before any store access so that an identity mismatch is
// classified the same whether or not the target exists.
func RequireSelf(actor Actor, targetID uint) error {
	if actor.ID != targetID {
		return ErrForbidden
	}
	return nil
}

// CanUpdateProfile governs the self-service profile edit.
// Identity mismatch is an honest 403; everything tied to the target record
// itself (protected role, modifiedBy not matching the target's username)
// denies as not-found so the caller learns nothing about the record.
func CanUpdateProfile(actor Actor, target *model.Employee, modifiedBy string) error {
	if err := RequireSelf(actor, target.ID); err != nil {
		return err
	}
	if target.Role == model.RoleAdmin {
		return ErrNotFound
	}
	if target.Username != modifiedBy {
		return ErrNotFound
	}
	return nil
}

// CanUpdateStatus governs activate/deactivate: Admin actor, non-Admin target.
func CanUpdateStatus(actor Actor, target *model.Employee) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if target.Role == model.RoleAdmin {
		return ErrActionDenied
	}
	return nil
}

// CanAdminUpdateProfile governs the admin profile edit of a non-Admin target.
// Same rule as status updates: Admin records are immutable through this path.
func CanAdminUpdateProfile(actor Actor, target *model.Employee) error {
	return CanUpdateStatus(actor, target)
}

// CanUpdateImage allows an employee to set or clear only their own image.
func CanUpdateImage(actor Actor, targetID uint) error {
	return RequireSelf(actor, targetID)
}

// CanReadImage mirrors CanUpdateImage: images are self-service only.
func CanReadImage(actor Actor, targetID uint) error {
	return RequireSelf(actor, targetID)
}
