package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/dto"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/model"
	"github.com/ShazamAtGithub/EmployeeManagementAPI/internal/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorFor(e *model.Employee) policy.Actor {
	return policy.Actor{ID: e.ID, Username: e.Username, Role: e.Role}
}

func setupEmployeeService(t *testing.T) (*stubEmployeeRepo, *recordingAuditSink, EmployeeService, *model.Employee, *model.Employee) {
	t.Helper()
	repo := newStubRepo()
	sink := &recordingAuditSink{}
	admin := seedEmployee(t, repo, "admin", "Password123!", model.RoleAdmin, model.StatusActive)
	alice := seedEmployee(t, repo, "alice", "Password123!", model.RoleEmployee, model.StatusActive)
	return repo, sink, NewEmployeeService(repo, sink, nil), admin, alice
}

// ── Read ─────────────────────────────────────────────────────────────────────

func TestGet_SelfAndAdmin(t *testing.T) {
	_, _, svc, admin, alice := setupEmployeeService(t)

	self, err := svc.Get(context.Background(), actorFor(alice), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", self.Username)

	byAdmin, err := svc.Get(context.Background(), actorFor(admin), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, byAdmin.EmployeeID)
}

func TestGet_OtherEmployee_HiddenAsNotFound(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)
	bob := seedEmployee(t, repo, "bob", "Password123!", model.RoleEmployee, model.StatusActive)

	_, err := svc.Get(context.Background(), actorFor(alice), bob.ID)
	assert.ErrorIs(t, err, policy.ErrNotFound)
	assert.NotErrorIs(t, err, policy.ErrForbidden)
}

func TestGet_MissingRecord(t *testing.T) {
	_, _, svc, admin, _ := setupEmployeeService(t)

	_, err := svc.Get(context.Background(), actorFor(admin), 999)
	assert.ErrorIs(t, err, policy.ErrNotFound)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestListSummaries_AdminOnly(t *testing.T) {
	_, _, svc, admin, alice := setupEmployeeService(t)

	summaries, err := svc.ListSummaries(context.Background(), actorFor(admin))
	require.NoError(t, err)
	assert.Len(t, summaries, 2)

	_, err = svc.ListSummaries(context.Background(), actorFor(alice))
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

// ── Profile updates ──────────────────────────────────────────────────────────

func validUpdate(modifiedBy string) dto.UpdateEmployeeRequest {
	designation := "Engineer"
	return dto.UpdateEmployeeRequest{Name: "Alice Updated", Designation: &designation, ModifiedBy: modifiedBy}
}

func TestUpdateProfile_Success(t *testing.T) {
	repo, sink, svc, _, alice := setupEmployeeService(t)

	err := svc.UpdateProfile(context.Background(), actorFor(alice), alice.ID, validUpdate("alice"))
	require.NoError(t, err)

	updated, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.Name)
	require.NotNil(t, updated.ModifiedBy)
	assert.Equal(t, "alice", *updated.ModifiedBy)
	assert.NotNil(t, updated.ModifiedAt)

	assert.Len(t, sink.byAction(model.AuditActionProfileUpdate), 1)
}

func TestUpdateProfile_ModifiedByMismatch_NotFoundAndUnchanged(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)

	err := svc.UpdateProfile(context.Background(), actorFor(alice), alice.ID, validUpdate("bob"))
	assert.ErrorIs(t, err, policy.ErrNotFound)

	unchanged, findErr := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "Test User", unchanged.Name)
	assert.Nil(t, unchanged.ModifiedBy)
}

func TestUpdateProfile_IdentityMismatch_Forbidden(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)
	bob := seedEmployee(t, repo, "bob", "Password123!", model.RoleEmployee, model.StatusActive)

	err := svc.UpdateProfile(context.Background(), actorFor(bob), alice.ID, validUpdate("alice"))
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Identity mismatch stays forbidden even when the target does not exist
	err = svc.UpdateProfile(context.Background(), actorFor(bob), 999, validUpdate("ghost"))
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUpdateProfile_AdminRecordImmutable(t *testing.T) {
	_, _, svc, admin, _ := setupEmployeeService(t)

	err := svc.UpdateProfile(context.Background(), actorFor(admin), admin.ID, validUpdate("admin"))
	assert.ErrorIs(t, err, policy.ErrNotFound)
}

func TestAdminUpdateProfile(t *testing.T) {
	repo, _, svc, admin, alice := setupEmployeeService(t)

	err := svc.AdminUpdateProfile(context.Background(), actorFor(admin), alice.ID, validUpdate("admin"))
	require.NoError(t, err)

	updated, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Updated", updated.Name)

	// Admin targets deny with action-denied regardless of actor
	err = svc.AdminUpdateProfile(context.Background(), actorFor(admin), admin.ID, validUpdate("admin"))
	assert.ErrorIs(t, err, policy.ErrActionDenied)
}

// ── Status updates ───────────────────────────────────────────────────────────

func TestUpdateStatus_TransitionsAndStamps(t *testing.T) {
	repo, sink, svc, admin, alice := setupEmployeeService(t)

	err := svc.UpdateStatus(context.Background(), actorFor(admin), alice.ID, model.StatusInactive)
	require.NoError(t, err)

	updated, err := repo.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInactive, updated.Status)
	require.NotNil(t, updated.ModifiedBy)
	assert.Equal(t, "admin", *updated.ModifiedBy)

	// Bidirectional: reactivation works the same way
	err = svc.UpdateStatus(context.Background(), actorFor(admin), alice.ID, model.StatusActive)
	require.NoError(t, err)
	updated, _ = repo.FindByID(context.Background(), alice.ID)
	assert.Equal(t, model.StatusActive, updated.Status)

	assert.Len(t, sink.byAction(model.AuditActionStatusUpdate), 2)
}

func TestUpdateStatus_AdminTarget_ActionDenied(t *testing.T) {
	_, _, svc, admin, _ := setupEmployeeService(t)

	err := svc.UpdateStatus(context.Background(), actorFor(admin), admin.ID, model.StatusInactive)
	assert.ErrorIs(t, err, policy.ErrActionDenied)
}

func TestUpdateStatus_NonAdminActor_Forbidden(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)
	bob := seedEmployee(t, repo, "bob", "Password123!", model.RoleEmployee, model.StatusActive)

	err := svc.UpdateStatus(context.Background(), actorFor(alice), bob.ID, model.StatusInactive)
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUpdateStatus_MissingTarget(t *testing.T) {
	_, _, svc, admin, _ := setupEmployeeService(t)

	err := svc.UpdateStatus(context.Background(), actorFor(admin), 999, model.StatusInactive)
	assert.ErrorIs(t, err, policy.ErrNotFound)
}

// ── Images ───────────────────────────────────────────────────────────────────

func TestImage_SetFetchClear(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)
	raw := []byte{0x89, 0x50, 0x4E, 0x47}
	encoded := base64.StdEncoding.EncodeToString(raw)

	err := svc.UpdateImage(context.Background(), actorFor(alice), alice.ID, dto.UpdateImageRequest{
		Base64Image: encoded, ModifiedBy: "alice",
	})
	require.NoError(t, err)

	resp, err := svc.GetImage(context.Background(), actorFor(alice), alice.ID)
	require.NoError(t, err)
	assert.Equal(t, encoded, resp.Image)

	// Empty payload clears the image
	err = svc.UpdateImage(context.Background(), actorFor(alice), alice.ID, dto.UpdateImageRequest{ModifiedBy: "alice"})
	require.NoError(t, err)

	_, err = svc.GetImage(context.Background(), actorFor(alice), alice.ID)
	assert.ErrorIs(t, err, ErrNoImage)

	stored, _ := repo.FindByID(context.Background(), alice.ID)
	require.NotNil(t, stored.ModifiedBy)
	assert.Equal(t, "alice", *stored.ModifiedBy)
}

func TestImage_OtherActor_Forbidden(t *testing.T) {
	repo, _, svc, admin, alice := setupEmployeeService(t)
	bob := seedEmployee(t, repo, "bob", "Password123!", model.RoleEmployee, model.StatusActive)

	err := svc.UpdateImage(context.Background(), actorFor(bob), alice.ID, dto.UpdateImageRequest{})
	assert.ErrorIs(t, err, policy.ErrForbidden)

	_, err = svc.GetImage(context.Background(), actorFor(bob), alice.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)

	// Image access is strictly self-service — even for admins
	_, err = svc.GetImage(context.Background(), actorFor(admin), alice.ID)
	assert.ErrorIs(t, err, policy.ErrForbidden)
}

func TestUpdateImage_DefaultsModifiedByToSystem(t *testing.T) {
	repo, _, svc, _, alice := setupEmployeeService(t)
	encoded := base64.StdEncoding.EncodeToString([]byte("img"))

	err := svc.UpdateImage(context.Background(), actorFor(alice), alice.ID, dto.UpdateImageRequest{Base64Image: encoded})
	require.NoError(t, err)

	stored, _ := repo.FindByID(context.Background(), alice.ID)
	require.NotNil(t, stored.ModifiedBy)
	assert.Equal(t, "System", *stored.ModifiedBy)
}

func TestUpdateImage_InvalidPayloads(t *testing.T) {
	_, _, svc, _, alice := setupEmployeeService(t)

	err := svc.UpdateImage(context.Background(), actorFor(alice), alice.ID, dto.UpdateImageRequest{Base64Image: "%%%"})
	assert.ErrorIs(t, err, ErrInvalidImage)

	oversized := base64.StdEncoding.EncodeToString(make([]byte, model.MaxImageBytes+1))
	err = svc.UpdateImage(context.Background(), actorFor(alice), alice.ID, dto.UpdateImageRequest{Base64Image: oversized})
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
