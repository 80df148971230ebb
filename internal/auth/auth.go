// Package auth implements the two authorization policies used across the
// job service. Both resolve the caller's roles from the remote user service
// and differ only in what they accept:
//
//   - AllowList: every returned role must be a member of the permitted set.
//     A caller holding one disallowed role is rejected even if they also
//     hold an allowed one.
//   - StrictAdmin: the literal "admin" role must be present. Resolves roles
//     from the legacy endpoint shape.
//
// They stay separate policies on purpose: different operations of the CRUD
// surface invoke one or the other.
package auth

import (
	"context"
	"log/slog"
	"slices"

	"jobmate/job-service/internal/apperr"
)

// Role names known to the platform.
const (
	RoleAdmin           = "admin"
	RoleOperationsAdmin = "operations_admin"
)

// Authorizer decides whether a caller may perform an operation.
type Authorizer interface {
	Authorize(ctx context.Context, userID int64, credential string) error
}

// RoleSource resolves a caller's role names. *remote.RoleClient satisfies it.
type RoleSource interface {
	UserRoles(ctx context.Context, userID int64, credential string) ([]string, error)
	LegacyRoleNames(ctx context.Context, userID int64, credential string) ([]string, error)
}

// AllowList authorizes callers whose every role is in the allowed set.
type AllowList struct {
	roles   RoleSource
	allowed []string
}

// NewAllowList builds an AllowList policy over the given permitted roles.
func NewAllowList(roles RoleSource, allowed ...string) *AllowList {
	return &AllowList{roles: roles, allowed: allowed}
}

// Authorize resolves the caller's roles and checks each one against the
// allowed set. A failed remote call counts as "cannot prove authorization".
func (a *AllowList) Authorize(ctx context.Context, userID int64, credential string) error {
	names, err := a.roles.UserRoles(ctx, userID, credential)
	if err != nil {
		slog.Error("role resolution failed", "userId", userID, "err", err)
		return apperr.E(apperr.Unauthorized, "User not authorized", err)
	}
	if len(names) == 0 {
		return apperr.E(apperr.NotFound, "No roles found", nil)
	}
	for _, name := range names {
		if !slices.Contains(a.allowed, name) {
			return apperr.E(apperr.Unauthorized, "User not authorized", nil)
		}
	}
	return nil
}

// StrictAdmin authorizes only callers holding the "admin" role.
type StrictAdmin struct {
	roles RoleSource
}

// NewStrictAdmin builds the admin-only policy.
func NewStrictAdmin(roles RoleSource) *StrictAdmin {
	return &StrictAdmin{roles: roles}
}

// Authorize resolves the caller's roles from the legacy endpoint and
// requires "admin" among them.
func (a *StrictAdmin) Authorize(ctx context.Context, userID int64, credential string) error {
	names, err := a.roles.LegacyRoleNames(ctx, userID, credential)
	if err != nil {
		slog.Error("role resolution failed", "userId", userID, "err", err)
		return apperr.E(apperr.Unauthorized, "User not authorized", err)
	}
	if len(names) == 0 {
		return apperr.E(apperr.NotFound, "No roles found", nil)
	}
	if !slices.Contains(names, RoleAdmin) {
		return apperr.E(apperr.Unauthorized, "Not an admin", nil)
	}
	return nil
}
