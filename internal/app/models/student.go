package models

import "time"

// Student defines a student record in the students collection
type Student struct {
	StudentID    string `json:"studentId" example:"69000001"`       // 8 digits, first two are "69"
	Title        string `json:"title" example:"Mr."`                // honorific prefix
	FirstName    string `json:"firstName" example:"Somchai"`        // given name
	LastName     string `json:"lastName" example:"Jaidee"`          // family name
	BirthDate    string `json:"birthDate" example:"2009-05-14"`     // ISO date
	School       string `json:"school" example:"Demonstration School"`
	Email        string `json:"email" example:"somchai@example.com"`
	CurriculumID string `json:"curriculumId" example:"10550001"`    // curriculum the student is enrolled in
}

// FullName returns the student's display name
func (s Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// Age computes full calendar years between the birth date and now.
// The calculation compares year, month and day fields rather than elapsed
// days, so a student turns a year older exactly on their birthday.
func Age(birthDate string, now time.Time) (int, bool) {
	born, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		// some records carry full RFC 3339 timestamps
		born, err = time.Parse(time.RFC3339, birthDate)
		if err != nil {
			return 0, false
		}
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}
