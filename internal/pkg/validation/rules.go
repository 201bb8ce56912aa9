package validation

import (
	"regexp"
)

// Identifier format patterns
var (
	// Student id: 8 digits starting with "69"
	StudentIDPattern = `^69\d{6}$`

	// Subject id: 8 digits starting with "0550" (faculty) or "9069" (general education)
	SubjectIDPattern = `^(0550|9069)\d{4}$`

	// Curriculum id: 8 digits, first digit nonzero
	CurriculumIDPattern = `^[1-9]\d{7}$`

	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentID    *regexp.Regexp
	SubjectID    *regexp.Regexp
	CurriculumID *regexp.Regexp
	Email        *regexp.Regexp
}{
	StudentID:    regexp.MustCompile(StudentIDPattern),
	SubjectID:    regexp.MustCompile(SubjectIDPattern),
	CurriculumID: regexp.MustCompile(CurriculumIDPattern),
	Email:        regexp.MustCompile(EmailPattern),
}

// IsValidStudentID reports whether id is a well-formed student identifier.
func IsValidStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// IsValidSubjectID reports whether id is a well-formed subject identifier.
func IsValidSubjectID(id string) bool {
	return CompiledPatterns.SubjectID.MatchString(id)
}

// IsValidCurriculumID reports whether id is a well-formed curriculum identifier.
func IsValidCurriculumID(id string) bool {
	return CompiledPatterns.CurriculumID.MatchString(id)
}

// IsValidSemester reports whether the term number is one of the two teaching terms.
func IsValidSemester(semester int) bool {
	return semester == 1 || semester == 2
}

// IsValidEmail reports whether the address matches the expected email shape.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}
