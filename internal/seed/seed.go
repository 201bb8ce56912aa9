// Package seed provisions default data for a fresh installation.
package seed

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/config"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
)

// Default teacher credentials for a fresh installation. The admin account
// comes from configuration; the teacher account keeps the conventional
// starter credentials.
const (
	defaultTeacherUsername = "teacher01"
	defaultTeacherPassword = "teacher123"
)

// CreateDefaultData provisions the administrator and teacher accounts and a
// starter subject catalog when the stores are empty. Safe to run on every
// startup.
func CreateDefaultData(ctx context.Context, cfg *config.Config, cols *services.Collections, lgr zerolog.Logger) error {
	authService := services.NewAuthService(cols.Users)
	subjectService := services.NewSubjectService(cols.Subjects)
	curriculumService := services.NewCurriculumService(cols.Curriculum)

	var finalErr error

	if _, err := authService.GetUserByUsername(ctx, cfg.Admin.Username); err != nil {
		if err := authService.CreateAdminAccount(ctx, cfg.Admin.Username, cfg.Admin.Password, "Administrator"); err != nil {
			lgr.Error().Err(err).Msg("Error creating default admin account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("username", cfg.Admin.Username).Msg("Default admin account created")
		}
	}

	if _, err := authService.GetUserByUsername(ctx, defaultTeacherUsername); err != nil {
		if err := authService.CreateTeacherAccount(ctx, defaultTeacherUsername, defaultTeacherPassword, "Teacher"); err != nil {
			lgr.Error().Err(err).Msg("Error creating default teacher account")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("username", defaultTeacherUsername).Msg("Default teacher account created")
		}
	}

	if len(subjectService.GetAllSubjects(ctx)) == 0 {
		subjects := []models.Subject{
			{SubjectID: "05500001", SubjectName: "Introduction to Computer Engineering", Credits: 3, Instructor: "Dr. Somchai Prasert"},
			{SubjectID: "05500002", SubjectName: "Computer Programming I", Credits: 3, Instructor: "Dr. Somchai Prasert"},
			{SubjectID: "05500003", SubjectName: "Computer Programming II", Credits: 3, Instructor: "Dr. Kanda Wongsuwan", PrerequisiteID: "05500002"},
			{SubjectID: "05500004", SubjectName: "Data Structures and Algorithms", Credits: 3, Instructor: "Dr. Kanda Wongsuwan", PrerequisiteID: "05500003"},
			{SubjectID: "90690001", SubjectName: "English for Communication", Credits: 3, Instructor: "Ajarn Patricia Miller"},
			{SubjectID: "90690002", SubjectName: "General Mathematics", Credits: 3, Instructor: "Dr. Anan Thongchai"},
		}
		for i := range subjects {
			if err := subjectService.AddSubject(ctx, &subjects[i]); err != nil &&
				!errors.Is(err, apperrors.ErrSubjectAlreadyExists) {
				lgr.Error().Err(err).Str("subjectId", subjects[i].SubjectID).Msg("Error seeding subject")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("subjects", len(subjects)).Msg("Starter subject catalog seeded")
	}

	if len(curriculumService.GetAllStructures(ctx)) == 0 {
		structures := []models.CurriculumStructure{
			{CurriculumID: "10000001", CurriculumName: "Computer Engineering", DepartmentName: "Engineering", RequiredSubjectID: "05500001", Semester: 1},
			{CurriculumID: "10000001", CurriculumName: "Computer Engineering", DepartmentName: "Engineering", RequiredSubjectID: "05500002", Semester: 1},
			{CurriculumID: "10000001", CurriculumName: "Computer Engineering", DepartmentName: "Engineering", RequiredSubjectID: "90690001", Semester: 1},
			{CurriculumID: "10000001", CurriculumName: "Computer Engineering", DepartmentName: "Engineering", RequiredSubjectID: "05500003", Semester: 2},
			{CurriculumID: "10000001", CurriculumName: "Computer Engineering", DepartmentName: "Engineering", RequiredSubjectID: "90690002", Semester: 2},
		}
		for i := range structures {
			if err := curriculumService.AddStructure(ctx, &structures[i]); err != nil &&
				!errors.Is(err, apperrors.ErrCurriculumAlreadyExists) {
				lgr.Error().Err(err).Str("curriculumId", structures[i].CurriculumID).Msg("Error seeding curriculum structure")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Int("entries", len(structures)).Msg("Starter curriculum structure seeded")
	}

	return finalErr
}
