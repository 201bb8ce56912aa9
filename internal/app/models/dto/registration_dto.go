package dto

import "github.com/warit/schoolregis/internal/app/models"

// RegisterSubjectRequest represents a student's registration request
type RegisterSubjectRequest struct {
	SubjectID string `json:"subjectId" binding:"required,len=8"`
}

// SetGradeRequest represents an admin grade assignment
type SetGradeRequest struct {
	StudentID string `json:"studentId" binding:"required,len=8"`
	SubjectID string `json:"subjectId" binding:"required,len=8"`
	Grade     string `json:"grade" binding:"required"`
}

// GradeSubjectRequest carries grades for several students of one subject,
// keyed by student id. Blank grades are skipped.
type GradeSubjectRequest struct {
	Grades map[string]string `json:"grades" binding:"required"`
}

// GradeSubjectResult reports how a bulk grade update went per student
type GradeSubjectResult struct {
	SubjectID string             `json:"subjectId"`
	Updated   int                `json:"updated"`
	Failed    []GradeSubjectFail `json:"failed,omitempty"`
}

// GradeSubjectFail names one student whose grade could not be applied
type GradeSubjectFail struct {
	StudentID string `json:"studentId"`
	Reason    string `json:"reason"`
}

// AvailableSubject annotates a subject with the student's eligibility to
// register for it
type AvailableSubject struct {
	Subject     models.Subject `json:"subject"`
	CanRegister bool           `json:"canRegister"`
	Reason      string         `json:"reason,omitempty"`
}

// SubjectStats summarizes registrations for one subject
type SubjectStats struct {
	SubjectID          string         `json:"subjectId"`
	TotalRegistrations int            `json:"totalRegistrations"`
	WithGrades         int            `json:"studentsWithGrades"`
	WithoutGrades      int            `json:"studentsWithoutGrades"`
	GradeDistribution  map[string]int `json:"gradeDistribution"`
}
