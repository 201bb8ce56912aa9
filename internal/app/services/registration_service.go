package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

// RegistrationService mediates subject registration, unregistration and
// grading between student, subject and registration state. The registration
// collection is the single source of truth for grades; grade listings are
// derived from it rather than written to a second collection.
type RegistrationService struct {
	registrations  *store.Collection[models.Registration]
	studentService *StudentService
	subjectService *SubjectService
	now            func() time.Time
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(
	registrations *store.Collection[models.Registration],
	studentService *StudentService,
	subjectService *SubjectService,
) *RegistrationService {
	return &RegistrationService{
		registrations:  registrations,
		studentService: studentService,
		subjectService: subjectService,
		now:            time.Now,
	}
}

func matchRegistration(studentID, subjectID string) func(models.Registration) bool {
	return func(r models.Registration) bool {
		return r.StudentID == studentID && r.SubjectID == subjectID
	}
}

// GetAllRegistrations retrieves every registration record
func (s *RegistrationService) GetAllRegistrations(ctx context.Context) []models.Registration {
	return s.registrations.All()
}

// GetRegistrationsByStudent retrieves one student's registrations
func (s *RegistrationService) GetRegistrationsByStudent(ctx context.Context, studentID string) []models.Registration {
	return s.registrations.Find(func(r models.Registration) bool { return r.StudentID == studentID })
}

// GetRegistrationsBySubject retrieves one subject's registrations
func (s *RegistrationService) GetRegistrationsBySubject(ctx context.Context, subjectID string) []models.Registration {
	return s.registrations.Find(func(r models.Registration) bool { return r.SubjectID == subjectID })
}

// IsStudentRegistered reports whether the student holds a registration for
// the subject
func (s *RegistrationService) IsStudentRegistered(ctx context.Context, studentID, subjectID string) bool {
	return s.registrations.Exists(matchRegistration(studentID, subjectID))
}

// GetRegistration retrieves the registration for one (student, subject) pair
func (s *RegistrationService) GetRegistration(ctx context.Context, studentID, subjectID string) (*models.Registration, error) {
	reg, ok := s.registrations.FindOne(matchRegistration(studentID, subjectID))
	if !ok {
		return nil, apperrors.ErrRegistrationNotFound
	}
	return &reg, nil
}

// CountRegistrationsForSubject counts registrations for one subject
func (s *RegistrationService) CountRegistrationsForSubject(ctx context.Context, subjectID string) int {
	return s.registrations.Count(func(r models.Registration) bool { return r.SubjectID == subjectID })
}

// GetUngradedRegistrations retrieves registrations without an assigned grade
func (s *RegistrationService) GetUngradedRegistrations(ctx context.Context) []models.Registration {
	return s.registrations.Find(func(r models.Registration) bool { return !r.Graded() })
}

// GetGradedRegistrations retrieves registrations carrying a grade
func (s *RegistrationService) GetGradedRegistrations(ctx context.Context) []models.Registration {
	return s.registrations.Find(func(r models.Registration) bool { return r.Graded() })
}

// Register enrolls a student in a subject after running the registration
// rules in order. Each rule failure returns a distinct error naming the
// precondition that was not met.
func (s *RegistrationService) Register(ctx context.Context, studentID, subjectID string) error {
	if !s.studentService.StudentExists(ctx, studentID) {
		return apperrors.ErrStudentNotFound
	}
	if !s.subjectService.SubjectExists(ctx, subjectID) {
		return apperrors.ErrSubjectNotFound
	}
	if !s.studentService.IsStudentEligible(ctx, studentID) {
		return apperrors.ErrStudentNotEligible
	}
	if s.IsStudentRegistered(ctx, studentID, subjectID) {
		return apperrors.ErrAlreadyRegistered
	}
	if err := s.checkPrerequisite(ctx, studentID, subjectID); err != nil {
		return err
	}

	s.registrations.Add(models.Registration{
		StudentID:    studentID,
		SubjectID:    subjectID,
		RegisteredAt: s.now(),
	})
	return nil
}

// checkPrerequisite verifies that the subject's prerequisite, when declared,
// has been registered and passed by the student.
func (s *RegistrationService) checkPrerequisite(ctx context.Context, studentID, subjectID string) error {
	subject, err := s.subjectService.GetSubjectByID(ctx, subjectID)
	if err != nil {
		return err
	}
	if !subject.HasPrerequisite() {
		return nil
	}

	prereq, err := s.GetRegistration(ctx, studentID, subject.PrerequisiteID)
	if err != nil {
		return apperrors.ErrPrerequisiteNotTaken
	}
	if !prereq.Grade.IsPassing() {
		return apperrors.ErrPrerequisiteNotPassed
	}
	return nil
}

// Unregister removes the student's registration for the subject. An already
// assigned grade is discarded along with the record.
func (s *RegistrationService) Unregister(ctx context.Context, studentID, subjectID string) error {
	if s.registrations.DeleteMany(matchRegistration(studentID, subjectID)) == 0 {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// DeleteRegistrationsForStudent removes all of a student's registrations and
// returns how many were removed. Used when the student record itself is
// deleted.
func (s *RegistrationService) DeleteRegistrationsForStudent(ctx context.Context, studentID string) int {
	return s.registrations.DeleteMany(func(r models.Registration) bool { return r.StudentID == studentID })
}

// SetGrade assigns or replaces the grade on an existing registration. An
// invalid grade token leaves the stored registration untouched.
func (s *RegistrationService) SetGrade(ctx context.Context, studentID, subjectID, grade string) error {
	parsed, ok := models.ParseGrade(grade)
	if !ok {
		return apperrors.ErrInvalidGrade
	}

	reg, err := s.GetRegistration(ctx, studentID, subjectID)
	if err != nil {
		return err
	}

	updated := *reg
	updated.Grade = parsed
	now := s.now()
	updated.GradedAt = &now

	if !s.registrations.Update(matchRegistration(studentID, subjectID), updated) {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// ClearGrade removes the grade from an existing registration, returning it
// to the ungraded state. The registration itself is kept.
func (s *RegistrationService) ClearGrade(ctx context.Context, studentID, subjectID string) error {
	reg, err := s.GetRegistration(ctx, studentID, subjectID)
	if err != nil {
		return err
	}

	updated := *reg
	updated.Grade = ""
	updated.GradedAt = nil

	if !s.registrations.Update(matchRegistration(studentID, subjectID), updated) {
		return apperrors.ErrRegistrationNotFound
	}
	return nil
}

// GradeSubject applies grades to several students of one subject at once.
// Blank grades are skipped; per-student failures are collected rather than
// aborting the batch.
func (s *RegistrationService) GradeSubject(ctx context.Context, subjectID string, grades map[string]string) (*dto.GradeSubjectResult, error) {
	if !s.subjectService.SubjectExists(ctx, subjectID) {
		return nil, apperrors.ErrSubjectNotFound
	}

	result := &dto.GradeSubjectResult{SubjectID: subjectID}
	for studentID, grade := range grades {
		if strings.TrimSpace(grade) == "" {
			continue
		}
		if err := s.SetGrade(ctx, studentID, subjectID, strings.TrimSpace(grade)); err != nil {
			result.Failed = append(result.Failed, dto.GradeSubjectFail{
				StudentID: studentID,
				Reason:    err.Error(),
			})
			continue
		}
		result.Updated++
	}
	sort.Slice(result.Failed, func(i, j int) bool {
		return result.Failed[i].StudentID < result.Failed[j].StudentID
	})
	return result, nil
}

// GetGrade returns the grade a student received in a subject, when assigned
func (s *RegistrationService) GetGrade(ctx context.Context, studentID, subjectID string) (models.Grade, error) {
	reg, err := s.GetRegistration(ctx, studentID, subjectID)
	if err != nil {
		return "", err
	}
	if !reg.Graded() {
		return "", nil
	}
	return reg.Grade, nil
}

// GetSubjectStats summarizes one subject's registrations: totals with and
// without grades plus a per-grade histogram.
func (s *RegistrationService) GetSubjectStats(ctx context.Context, subjectID string) dto.SubjectStats {
	regs := s.GetRegistrationsBySubject(ctx, subjectID)

	stats := dto.SubjectStats{
		SubjectID:          subjectID,
		TotalRegistrations: len(regs),
		GradeDistribution:  make(map[string]int),
	}
	for _, r := range regs {
		if r.Graded() {
			stats.WithGrades++
			stats.GradeDistribution[string(r.Grade)]++
		} else {
			stats.WithoutGrades++
		}
	}
	return stats
}

// GetAvailableSubjects lists the subjects the student has not yet registered
// for, each annotated with whether registration would pass the prerequisite
// rule. Age and existence are not re-checked per subject.
func (s *RegistrationService) GetAvailableSubjects(ctx context.Context, studentID string) ([]dto.AvailableSubject, error) {
	if !s.studentService.StudentExists(ctx, studentID) {
		return nil, apperrors.ErrStudentNotFound
	}

	registered := make(map[string]struct{})
	for _, r := range s.GetRegistrationsByStudent(ctx, studentID) {
		registered[r.SubjectID] = struct{}{}
	}

	var out []dto.AvailableSubject
	for _, subject := range s.subjectService.GetAllSubjects(ctx) {
		if _, ok := registered[subject.SubjectID]; ok {
			continue
		}
		entry := dto.AvailableSubject{Subject: subject, CanRegister: true}
		if err := s.checkPrerequisite(ctx, studentID, subject.SubjectID); err != nil {
			entry.CanRegister = false
			entry.Reason = err.Error()
		}
		out = append(out, entry)
	}
	return out, nil
}

// GetTranscript builds the student's transcript: every registration joined
// with its subject, total and graded credit sums, and the GPA weighted by
// credits over graded subjects only.
func (s *RegistrationService) GetTranscript(ctx context.Context, studentID string) (*dto.TranscriptResponse, error) {
	student, err := s.studentService.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := &dto.TranscriptResponse{
		StudentID: student.StudentID,
		FullName:  student.FullName(),
	}

	var gradePoints float64
	for _, reg := range s.GetRegistrationsByStudent(ctx, studentID) {
		subject, err := s.subjectService.GetSubjectByID(ctx, reg.SubjectID)
		if err != nil {
			// registration referencing a deleted subject still appears,
			// with zero credits
			subject = &models.Subject{SubjectID: reg.SubjectID, SubjectName: "(unknown subject)"}
		}

		row := dto.TranscriptRow{
			SubjectID:    reg.SubjectID,
			SubjectName:  subject.SubjectName,
			Credits:      subject.Credits,
			RegisteredAt: reg.RegisteredAt.Format(time.RFC3339),
		}
		resp.TotalCredits += subject.Credits

		if reg.Graded() {
			row.Grade = string(reg.Grade)
			row.GradePoints = reg.Grade.Points()
			resp.GradedCredits += subject.Credits
			gradePoints += reg.Grade.Points() * float64(subject.Credits)
		}
		resp.Rows = append(resp.Rows, row)
	}

	if resp.GradedCredits > 0 {
		resp.GPA = gradePoints / float64(resp.GradedCredits)
	}
	return resp, nil
}

// RegistrationError reports whether err is one of the expected registration
// rule failures, as opposed to an unexpected internal failure.
func RegistrationError(err error) bool {
	return apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrStudentNotEligible,
		apperrors.ErrAlreadyRegistered,
		apperrors.ErrPrerequisiteNotTaken,
		apperrors.ErrPrerequisiteNotPassed,
		apperrors.ErrRegistrationNotFound,
		apperrors.ErrInvalidGrade)
}
