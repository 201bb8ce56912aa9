package models

import "strings"

// Subject defines a subject record in the subjects collection
type Subject struct {
	SubjectID      string `json:"subjectId" example:"05500101"` // 8 digits, prefix 0550 or 9069
	SubjectName    string `json:"subjectName" example:"Introduction to Programming"`
	Credits        int    `json:"credits" example:"3"` // must be positive
	Instructor     string `json:"instructor" example:"Dr. Pranee"`
	PrerequisiteID string `json:"prerequisiteId,omitempty" example:"05500100"` // empty when the subject has none
	Schedule       string `json:"schedule,omitempty" example:"Mon 9:00-12:00"`
	Room           string `json:"room,omitempty" example:"ECC-801"`
}

// HasPrerequisite reports whether the subject declares a prerequisite.
func (s Subject) HasPrerequisite() bool {
	return s.PrerequisiteID != ""
}

// TypeOfSubject classifies a subject id by its prefix.
func TypeOfSubject(subjectID string) SubjectType {
	switch {
	case strings.HasPrefix(subjectID, "05500"):
		return SubjectTypeFaculty
	case strings.HasPrefix(subjectID, "9069"):
		return SubjectTypeGeneral
	default:
		return SubjectTypeUnknown
	}
}
