package models

import "time"

// Registration links one student to one subject, optionally carrying a grade.
// It is the single authoritative record for both "registered subjects" and
// grades; grade listings are derived views over this collection.
type Registration struct {
	StudentID    string     `json:"studentId" example:"69000001"`
	SubjectID    string     `json:"subjectId" example:"05500101"`
	Grade        Grade      `json:"grade,omitempty" example:"B+"` // empty until assigned
	RegisteredAt time.Time  `json:"registeredAt" example:"2026-06-01T09:00:00Z"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"` // set when the grade is assigned or changed
}

// Graded reports whether a grade has been assigned.
func (r Registration) Graded() bool {
	return r.Grade != ""
}

// Grade is one of the fixed set of letter grades.
type Grade string

// Letter grades in descending order of grade points.
const (
	GradeA      Grade = "A"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeDPlus  Grade = "D+"
	GradeD      Grade = "D"
	GradeF      Grade = "F"
)

// gradePoints maps each valid grade to its grade-point value.
var gradePoints = map[Grade]float64{
	GradeA:     4.0,
	GradeBPlus: 3.5,
	GradeB:     3.0,
	GradeCPlus: 2.5,
	GradeC:     2.0,
	GradeDPlus: 1.5,
	GradeD:     1.0,
	GradeF:     0.0,
}

// ParseGrade validates a grade token and returns its typed value.
func ParseGrade(s string) (Grade, bool) {
	g := Grade(s)
	_, ok := gradePoints[g]
	return g, ok
}

// IsValid reports whether the grade is one of the enumerated letter grades.
func (g Grade) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// IsPassing reports whether the grade counts as a pass. An absent or
// malformed grade is not passing, and neither is F.
func (g Grade) IsPassing() bool {
	return g.IsValid() && g != GradeF
}

// Points returns the grade-point value used for GPA calculation.
func (g Grade) Points() float64 {
	return gradePoints[g]
}
