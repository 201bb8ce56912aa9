package services

import (
	"context"
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

// AuthService handles user accounts and credential checks. Credentials are
// stored and compared in plain text, mirroring the account data this system
// inherits; hardening the credential store is explicitly out of scope.
type AuthService struct {
	users *store.Collection[models.User]
}

// NewAuthService creates a new auth service instance
func NewAuthService(users *store.Collection[models.User]) *AuthService {
	return &AuthService{users: users}
}

// Authenticate checks a username/password pair and returns the matching user
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, ok := s.users.FindOne(func(u models.User) bool { return u.Username == username })
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByUsername retrieves a user account by username
func (s *AuthService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := s.users.FindOne(func(u models.User) bool { return u.Username == username })
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// GetUserByStudentID retrieves the account provisioned for a student
func (s *AuthService) GetUserByStudentID(ctx context.Context, studentID string) (*models.User, error) {
	user, ok := s.users.FindOne(func(u models.User) bool { return u.StudentID == studentID })
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

// GetAllUsers retrieves all user accounts
func (s *AuthService) GetAllUsers(ctx context.Context) []models.User {
	return s.users.All()
}

// GetAllAdmins retrieves accounts with the admin role
func (s *AuthService) GetAllAdmins(ctx context.Context) []models.User {
	return s.users.Find(func(u models.User) bool { return u.IsAdmin() })
}

// GetAllTeachers retrieves accounts with the teacher role
func (s *AuthService) GetAllTeachers(ctx context.Context) []models.User {
	return s.users.Find(func(u models.User) bool { return u.IsTeacher() })
}

// GetAllStudentUsers retrieves accounts with the student role
func (s *AuthService) GetAllStudentUsers(ctx context.Context) []models.User {
	return s.users.Find(func(u models.User) bool { return u.IsStudent() })
}

// CreateUser adds a new account after checking username and student-id
// uniqueness
func (s *AuthService) CreateUser(ctx context.Context, user *models.User) error {
	if s.users.Exists(func(u models.User) bool { return u.Username == user.Username }) {
		return apperrors.ErrUsernameAlreadyExists
	}
	if user.StudentID != "" && s.users.Exists(func(u models.User) bool { return u.StudentID == user.StudentID }) {
		return apperrors.ErrStudentIDAlreadyExists
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	s.users.Add(*user)
	return nil
}

// UpdateUser replaces the account for username wholesale
func (s *AuthService) UpdateUser(ctx context.Context, username string, user *models.User) error {
	user.Username = username
	ok := s.users.Update(func(u models.User) bool { return u.Username == username }, *user)
	if !ok {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// ChangePassword replaces the account password after verifying the old one
func (s *AuthService) ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error {
	user, err := s.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(oldPassword)) != 1 {
		return apperrors.ErrWrongPassword
	}

	updated := *user
	updated.Password = newPassword
	return s.UpdateUser(ctx, username, &updated)
}

// DeleteUser removes the account for username
func (s *AuthService) DeleteUser(ctx context.Context, username string) error {
	if !s.users.Delete(func(u models.User) bool { return u.Username == username }) {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CreateStudentAccount provisions the conventional account for a student:
// username and initial password are both the student id.
func (s *AuthService) CreateStudentAccount(ctx context.Context, studentID, fullName string) error {
	return s.CreateUser(ctx, &models.User{
		ID:        uuid.New().String(),
		Username:  studentID,
		Password:  studentID,
		Role:      models.RoleStudent,
		FullName:  fullName,
		StudentID: studentID,
	})
}

// CreateAdminAccount provisions an admin account
func (s *AuthService) CreateAdminAccount(ctx context.Context, username, password, fullName string) error {
	return s.CreateUser(ctx, &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
		Role:     models.RoleAdmin,
		FullName: fullName,
	})
}

// CreateTeacherAccount provisions a teacher account
func (s *AuthService) CreateTeacherAccount(ctx context.Context, username, password, fullName string) error {
	return s.CreateUser(ctx, &models.User{
		ID:       uuid.New().String(),
		Username: username,
		Password: password,
		Role:     models.RoleTeacher,
		FullName: fullName,
	})
}
