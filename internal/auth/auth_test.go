package auth_test

import (
	"context"
	"errors"
	"testing"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/auth"
)

// fakeRoles returns canned role lists for both endpoint shapes.
type fakeRoles struct {
	userRoles   []string
	userErr     error
	legacyRoles []string
	legacyErr   error
}

func (f *fakeRoles) UserRoles(ctx context.Context, userID int64, credential string) ([]string, error) {
	return f.userRoles, f.userErr
}

func (f *fakeRoles) LegacyRoleNames(ctx context.Context, userID int64, credential string) ([]string, error) {
	return f.legacyRoles, f.legacyErr
}

// ── AllowList ──────────────────────────────────────────────────────────────

func TestAllowList_AllRolesAllowed(t *testing.T) {
	src := &fakeRoles{userRoles: []string{"admin", "operations_admin"}}
	policy := auth.NewAllowList(src, auth.RoleOperationsAdmin, auth.RoleAdmin)

	if err := policy.Authorize(context.Background(), 1, "tok"); err != nil {
		t.Errorf("Authorize = %v, want nil", err)
	}
}

func TestAllowList_OneDisallowedRoleRejects(t *testing.T) {
	// Holding an allowed role does not save a caller who also holds a
	// disallowed one: every returned role must be permitted.
	src := &fakeRoles{userRoles: []string{"admin", "guest"}}
	policy := auth.NewAllowList(src, auth.RoleAdmin)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("Authorize kind = %v, want Unauthorized", apperr.KindOf(err))
	}
}

func TestAllowList_EmptyRoleSet(t *testing.T) {
	src := &fakeRoles{userRoles: nil}
	policy := auth.NewAllowList(src, auth.RoleAdmin)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Authorize kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestAllowList_RemoteFailure(t *testing.T) {
	cause := errors.New("connection refused")
	src := &fakeRoles{userErr: cause}
	policy := auth.NewAllowList(src, auth.RoleAdmin)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("Authorize kind = %v, want Unauthorized", apperr.KindOf(err))
	}
	if !errors.Is(err, cause) {
		t.Error("cause should stay reachable for logging")
	}
}

// ── StrictAdmin ────────────────────────────────────────────────────────────

func TestStrictAdmin_AdminPresent(t *testing.T) {
	src := &fakeRoles{legacyRoles: []string{"guest", "admin"}}
	policy := auth.NewStrictAdmin(src)

	if err := policy.Authorize(context.Background(), 1, "tok"); err != nil {
		t.Errorf("Authorize = %v, want nil", err)
	}
}

func TestStrictAdmin_AdminAbsent(t *testing.T) {
	src := &fakeRoles{legacyRoles: []string{"operations_admin"}}
	policy := auth.NewStrictAdmin(src)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("Authorize kind = %v, want Unauthorized", apperr.KindOf(err))
	}
}

func TestStrictAdmin_EmptyRoleSet(t *testing.T) {
	src := &fakeRoles{legacyRoles: []string{}}
	policy := auth.NewStrictAdmin(src)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.NotFound {
		t.Errorf("Authorize kind = %v, want NotFound", apperr.KindOf(err))
	}
}

func TestStrictAdmin_RemoteFailure(t *testing.T) {
	src := &fakeRoles{legacyErr: errors.New("timeout")}
	policy := auth.NewStrictAdmin(src)

	err := policy.Authorize(context.Background(), 1, "tok")
	if apperr.KindOf(err) != apperr.Unauthorized {
		t.Errorf("Authorize kind = %v, want Unauthorized", apperr.KindOf(err))
	}
}
