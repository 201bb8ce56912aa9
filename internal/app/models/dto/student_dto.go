package dto

// CreateStudentRequest represents the payload for creating a student record.
// Creating a student also provisions the matching student user account.
type CreateStudentRequest struct {
	StudentID    string `json:"studentId" binding:"required,len=8"`
	Title        string `json:"title"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	BirthDate    string `json:"birthDate" binding:"required"`
	School       string `json:"school"`
	Email        string `json:"email" binding:"required,email"`
	CurriculumID string `json:"curriculumId" binding:"required,len=8"`
}

// UpdateStudentRequest carries the full replacement record for a student
type UpdateStudentRequest struct {
	Title        string `json:"title"`
	FirstName    string `json:"firstName" binding:"required"`
	LastName     string `json:"lastName" binding:"required"`
	BirthDate    string `json:"birthDate" binding:"required"`
	School       string `json:"school"`
	Email        string `json:"email" binding:"required,email"`
	CurriculumID string `json:"curriculumId" binding:"required,len=8"`
}

// TranscriptRow is one graded or pending subject on a transcript
type TranscriptRow struct {
	SubjectID    string  `json:"subjectId"`
	SubjectName  string  `json:"subjectName"`
	Credits      int     `json:"credits"`
	Grade        string  `json:"grade,omitempty"`
	GradePoints  float64 `json:"gradePoints"`
	RegisteredAt string  `json:"registeredAt"`
}

// TranscriptResponse summarizes a student's registrations and GPA
type TranscriptResponse struct {
	StudentID     string          `json:"studentId"`
	FullName      string          `json:"fullName"`
	Rows          []TranscriptRow `json:"rows"`
	TotalCredits  int             `json:"totalCredits"`
	GradedCredits int             `json:"gradedCredits"`
	GPA           float64         `json:"gpa"`
}
