package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	col, err := store.Open[models.User](filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)
	return NewAuthService(col)
}

func TestAuthenticate(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateAdminAccount(ctx, "admin", "secret", "Administrator"))

	user, err := svc.Authenticate(ctx, "admin", "secret")
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
	assert.Equal(t, "Administrator", user.FullName)

	_, err = svc.Authenticate(ctx, "admin", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "secret")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestCreateStudentAccountConvention(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee"))

	// username and initial password are both the student id
	user, err := svc.Authenticate(ctx, "69000001", "69000001")
	require.NoError(t, err)
	assert.True(t, user.IsStudent())
	assert.Equal(t, "69000001", user.StudentID)
	assert.NotEmpty(t, user.ID)

	byStudent, err := svc.GetUserByStudentID(ctx, "69000001")
	require.NoError(t, err)
	assert.Equal(t, user.Username, byStudent.Username)
}

func TestCreateUserUniqueness(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee"))

	err := svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee")
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	err = svc.CreateUser(ctx, &models.User{
		Username:  "other",
		Password:  "pw",
		Role:      models.RoleStudent,
		StudentID: "69000001",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee"))

	err := svc.ChangePassword(ctx, "69000001", "wrong", "newpass")
	assert.ErrorIs(t, err, apperrors.ErrWrongPassword)

	require.NoError(t, svc.ChangePassword(ctx, "69000001", "69000001", "newpass"))

	_, err = svc.Authenticate(ctx, "69000001", "newpass")
	assert.NoError(t, err)
	_, err = svc.Authenticate(ctx, "69000001", "69000001")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestCreateTeacherAccount(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateTeacherAccount(ctx, "teacher01", "teacher123", "Teacher"))

	user, err := svc.Authenticate(ctx, "teacher01", "teacher123")
	require.NoError(t, err)
	assert.True(t, user.IsTeacher())
	assert.False(t, user.IsAdmin())
	assert.Empty(t, user.StudentID)
}

func TestRoleFilters(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateAdminAccount(ctx, "admin", "secret", "Administrator"))
	require.NoError(t, svc.CreateTeacherAccount(ctx, "teacher01", "teacher123", "Teacher"))
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee"))
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000002", "Kanda Wong"))

	assert.Len(t, svc.GetAllUsers(ctx), 4)
	assert.Len(t, svc.GetAllAdmins(ctx), 1)
	assert.Len(t, svc.GetAllTeachers(ctx), 1)
	assert.Len(t, svc.GetAllStudentUsers(ctx), 2)
}

func TestDeleteUser(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()
	require.NoError(t, svc.CreateStudentAccount(ctx, "69000001", "Somchai Jaidee"))

	require.NoError(t, svc.DeleteUser(ctx, "69000001"))
	assert.ErrorIs(t, svc.DeleteUser(ctx, "69000001"), apperrors.ErrUserNotFound)
}

func TestPasswordSurvivesReload(t *testing.T) {
	dir := t.TempDir()
	col, err := store.Open[models.User](filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	svc := NewAuthService(col)
	ctx := context.Background()
	require.NoError(t, svc.CreateAdminAccount(ctx, "admin", "secret", "Administrator"))

	// a fresh collection over the same file must still authenticate
	reloaded, err := store.Open[models.User](filepath.Join(dir, "users.json"))
	require.NoError(t, err)
	_, err = NewAuthService(reloaded).Authenticate(ctx, "admin", "secret")
	assert.NoError(t, err)
}
