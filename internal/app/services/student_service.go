package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/pkg/validation"
	"github.com/warit/schoolregis/internal/store"
)

// MinimumAge is the youngest a student may be to register for subjects.
const MinimumAge = 15

// StudentService handles student-record operations
type StudentService struct {
	students *store.Collection[models.Student]
	now      func() time.Time
}

// NewStudentService creates a new student service instance
func NewStudentService(students *store.Collection[models.Student]) *StudentService {
	return &StudentService{
		students: students,
		now:      time.Now,
	}
}

// GetAllStudents retrieves all students
func (s *StudentService) GetAllStudents(ctx context.Context) []models.Student {
	return s.students.All()
}

// GetStudentByID retrieves a student by student id
func (s *StudentService) GetStudentByID(ctx context.Context, studentID string) (*models.Student, error) {
	student, ok := s.students.FindOne(func(st models.Student) bool { return st.StudentID == studentID })
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return &student, nil
}

// StudentExists reports whether a student record exists for the id
func (s *StudentService) StudentExists(ctx context.Context, studentID string) bool {
	return s.students.Exists(func(st models.Student) bool { return st.StudentID == studentID })
}

// SearchStudents finds students whose name, school or id contains the keyword
func (s *StudentService) SearchStudents(ctx context.Context, keyword string) []models.Student {
	lower := strings.ToLower(keyword)
	return s.students.Find(func(st models.Student) bool {
		return strings.Contains(strings.ToLower(st.FirstName), lower) ||
			strings.Contains(strings.ToLower(st.LastName), lower) ||
			strings.Contains(strings.ToLower(st.School), lower) ||
			strings.Contains(st.StudentID, keyword)
	})
}

// GetStudentsBySchool filters students by their current school
func (s *StudentService) GetStudentsBySchool(ctx context.Context, school string) []models.Student {
	return s.students.Find(func(st models.Student) bool { return st.School == school })
}

// GetStudentsByCurriculum filters students by enrolled curriculum
func (s *StudentService) GetStudentsByCurriculum(ctx context.Context, curriculumID string) []models.Student {
	return s.students.Find(func(st models.Student) bool { return st.CurriculumID == curriculumID })
}

// GetStudentsSortedByName returns all students ordered by full name
func (s *StudentService) GetStudentsSortedByName(ctx context.Context) []models.Student {
	students := s.students.All()
	sort.Slice(students, func(i, j int) bool {
		return strings.ToLower(students[i].FullName()) < strings.ToLower(students[j].FullName())
	})
	return students
}

// GetStudentsSortedByAge returns all students ordered youngest first
func (s *StudentService) GetStudentsSortedByAge(ctx context.Context) []models.Student {
	students := s.students.All()
	now := s.now()
	sort.Slice(students, func(i, j int) bool {
		ageI, _ := models.Age(students[i].BirthDate, now)
		ageJ, _ := models.Age(students[j].BirthDate, now)
		return ageI < ageJ
	})
	return students
}

// GetAllSchools returns the distinct schools across all students, sorted
func (s *StudentService) GetAllSchools(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var schools []string
	for _, st := range s.students.All() {
		if _, ok := seen[st.School]; ok {
			continue
		}
		seen[st.School] = struct{}{}
		schools = append(schools, st.School)
	}
	sort.Strings(schools)
	return schools
}

// StudentAge returns the student's age in full calendar years
func (s *StudentService) StudentAge(ctx context.Context, studentID string) (int, error) {
	student, err := s.GetStudentByID(ctx, studentID)
	if err != nil {
		return 0, err
	}
	age, ok := models.Age(student.BirthDate, s.now())
	if !ok {
		return 0, fmt.Errorf("%w: unparseable birth date %q", apperrors.ErrValidationFailed, student.BirthDate)
	}
	return age, nil
}

// IsStudentEligible reports whether the student meets the minimum age for
// subject registration
func (s *StudentService) IsStudentEligible(ctx context.Context, studentID string) bool {
	age, err := s.StudentAge(ctx, studentID)
	return err == nil && age >= MinimumAge
}

// validateStudent validates a student record before it is stored
func (s *StudentService) validateStudent(student *models.Student) error {
	if student == nil {
		return fmt.Errorf("%w: student is nil", apperrors.ErrValidationFailed)
	}
	if !validation.IsValidStudentID(student.StudentID) {
		return apperrors.ErrInvalidStudentID
	}
	if strings.TrimSpace(student.FirstName) == "" || strings.TrimSpace(student.LastName) == "" {
		return fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.Email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(student.CurriculumID) == "" {
		return fmt.Errorf("%w: curriculum id is required", apperrors.ErrValidationFailed)
	}
	return nil
}

// AddStudent creates a new student record. Identifier format and uniqueness
// are checked here; later updates are keyed on the id and not re-validated.
func (s *StudentService) AddStudent(ctx context.Context, student *models.Student) error {
	if err := s.validateStudent(student); err != nil {
		return err
	}
	if s.StudentExists(ctx, student.StudentID) {
		return apperrors.ErrStudentIDAlreadyExists
	}
	s.students.Add(*student)
	return nil
}

// UpdateStudent replaces the record for studentID wholesale
func (s *StudentService) UpdateStudent(ctx context.Context, studentID string, student *models.Student) error {
	student.StudentID = studentID
	ok := s.students.Update(func(st models.Student) bool { return st.StudentID == studentID }, *student)
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DeleteStudent removes the student record for studentID
func (s *StudentService) DeleteStudent(ctx context.Context, studentID string) error {
	if !s.students.Delete(func(st models.Student) bool { return st.StudentID == studentID }) {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
