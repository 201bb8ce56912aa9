package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/pkg/validation"
	"github.com/warit/schoolregis/internal/store"
)

// SubjectService handles subject-record operations
type SubjectService struct {
	subjects *store.Collection[models.Subject]
}

// NewSubjectService creates a new subject service instance
func NewSubjectService(subjects *store.Collection[models.Subject]) *SubjectService {
	return &SubjectService{subjects: subjects}
}

// GetAllSubjects retrieves all subjects
func (s *SubjectService) GetAllSubjects(ctx context.Context) []models.Subject {
	return s.subjects.All()
}

// GetSubjectByID retrieves a subject by subject id
func (s *SubjectService) GetSubjectByID(ctx context.Context, subjectID string) (*models.Subject, error) {
	subject, ok := s.subjects.FindOne(func(sub models.Subject) bool { return sub.SubjectID == subjectID })
	if !ok {
		return nil, apperrors.ErrSubjectNotFound
	}
	return &subject, nil
}

// SubjectExists reports whether a subject record exists for the id
func (s *SubjectService) SubjectExists(ctx context.Context, subjectID string) bool {
	return s.subjects.Exists(func(sub models.Subject) bool { return sub.SubjectID == subjectID })
}

// SearchSubjects finds subjects whose name, instructor or id contains the keyword
func (s *SubjectService) SearchSubjects(ctx context.Context, keyword string) []models.Subject {
	lower := strings.ToLower(keyword)
	return s.subjects.Find(func(sub models.Subject) bool {
		return strings.Contains(strings.ToLower(sub.SubjectName), lower) ||
			strings.Contains(strings.ToLower(sub.Instructor), lower) ||
			strings.Contains(sub.SubjectID, keyword)
	})
}

// GetFacultySubjects returns subjects whose ids carry the faculty prefix
func (s *SubjectService) GetFacultySubjects(ctx context.Context) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool {
		return models.TypeOfSubject(sub.SubjectID) == models.SubjectTypeFaculty
	})
}

// GetGeneralSubjects returns subjects whose ids carry the general-education prefix
func (s *SubjectService) GetGeneralSubjects(ctx context.Context) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool {
		return models.TypeOfSubject(sub.SubjectID) == models.SubjectTypeGeneral
	})
}

// GetSubjectsWithPrerequisites returns subjects that declare a prerequisite
func (s *SubjectService) GetSubjectsWithPrerequisites(ctx context.Context) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool { return sub.HasPrerequisite() })
}

// GetSubjectsWithoutPrerequisites returns subjects with no prerequisite
func (s *SubjectService) GetSubjectsWithoutPrerequisites(ctx context.Context) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool { return !sub.HasPrerequisite() })
}

// GetSubjectsByCredits filters subjects by exact credit count
func (s *SubjectService) GetSubjectsByCredits(ctx context.Context, credits int) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool { return sub.Credits == credits })
}

// GetSubjectsByInstructor filters subjects by instructor name substring
func (s *SubjectService) GetSubjectsByInstructor(ctx context.Context, instructor string) []models.Subject {
	lower := strings.ToLower(instructor)
	return s.subjects.Find(func(sub models.Subject) bool {
		return strings.Contains(strings.ToLower(sub.Instructor), lower)
	})
}

// HasPrerequisite reports whether the subject declares a prerequisite
func (s *SubjectService) HasPrerequisite(ctx context.Context, subjectID string) bool {
	subject, err := s.GetSubjectByID(ctx, subjectID)
	return err == nil && subject.HasPrerequisite()
}

// GetPrerequisite resolves the prerequisite subject record, when declared
func (s *SubjectService) GetPrerequisite(ctx context.Context, subjectID string) (*models.Subject, error) {
	subject, err := s.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !subject.HasPrerequisite() {
		return nil, nil
	}
	return s.GetSubjectByID(ctx, subject.PrerequisiteID)
}

// GetDependents returns subjects that use subjectID as their prerequisite
func (s *SubjectService) GetDependents(ctx context.Context, subjectID string) []models.Subject {
	return s.subjects.Find(func(sub models.Subject) bool { return sub.PrerequisiteID == subjectID })
}

// GetAllInstructors returns the distinct instructors across all subjects, sorted
func (s *SubjectService) GetAllInstructors(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var instructors []string
	for _, sub := range s.subjects.All() {
		if _, ok := seen[sub.Instructor]; ok {
			continue
		}
		seen[sub.Instructor] = struct{}{}
		instructors = append(instructors, sub.Instructor)
	}
	sort.Strings(instructors)
	return instructors
}

// validateSubject validates a subject record before it is stored
func (s *SubjectService) validateSubject(subject *models.Subject) error {
	if subject == nil {
		return fmt.Errorf("%w: subject is nil", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidSubjectID(subject.SubjectID) {
		return apperrors.ErrInvalidSubjectID
	}
	if subject.Credits <= 0 {
		return apperrors.ErrInvalidCredits
	}
	if strings.TrimSpace(subject.SubjectName) == "" {
		return fmt.Errorf("%w: subject name is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// AddSubject creates a new subject record. The identifier format, positive
// credit count and uniqueness are checked here only.
func (s *SubjectService) AddSubject(ctx context.Context, subject *models.Subject) error {
	if err := s.validateSubject(subject); err != nil {
		return err
	}
	if s.SubjectExists(ctx, subject.SubjectID) {
		return apperrors.ErrSubjectAlreadyExists
	}
	s.subjects.Add(*subject)
	return nil
}

// UpdateSubject replaces the record for subjectID wholesale
func (s *SubjectService) UpdateSubject(ctx context.Context, subjectID string, subject *models.Subject) error {
	subject.SubjectID = subjectID
	if subject.Credits <= 0 {
		return apperrors.ErrInvalidCredits
	}
	ok := s.subjects.Update(func(sub models.Subject) bool { return sub.SubjectID == subjectID }, *subject)
	if !ok {
		return apperrors.ErrSubjectNotFound
	}
	return nil
}

// DeleteSubject removes a subject. The delete is refused while any other
// subject still lists it as a prerequisite.
func (s *SubjectService) DeleteSubject(ctx context.Context, subjectID string) error {
	if !s.SubjectExists(ctx, subjectID) {
		return apperrors.ErrSubjectNotFound
	}

	dependents := s.GetDependents(ctx, subjectID)
	if len(dependents) > 0 {
		names := make([]string, 0, len(dependents))
		for _, d := range dependents {
			names = append(names, d.SubjectName)
		}
		return apperrors.NewCustomError(apperrors.ErrSubjectHasDependents,
			fmt.Sprintf("cannot delete subject: it is a prerequisite for %s", strings.Join(names, ", ")))
	}

	s.subjects.Delete(func(sub models.Subject) bool { return sub.SubjectID == subjectID })
	return nil
}
