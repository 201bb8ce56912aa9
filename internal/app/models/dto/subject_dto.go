package dto

// CreateSubjectRequest represents the payload for creating a subject
type CreateSubjectRequest struct {
	SubjectID      string `json:"subjectId" binding:"required,len=8"`
	SubjectName    string `json:"subjectName" binding:"required"`
	Credits        int    `json:"credits" binding:"required,min=1"`
	Instructor     string `json:"instructor" binding:"required"`
	PrerequisiteID string `json:"prerequisiteId"`
	Schedule       string `json:"schedule"`
	Room           string `json:"room"`
}

// UpdateSubjectRequest carries the full replacement record for a subject
type UpdateSubjectRequest struct {
	SubjectName    string `json:"subjectName" binding:"required"`
	Credits        int    `json:"credits" binding:"required,min=1"`
	Instructor     string `json:"instructor" binding:"required"`
	PrerequisiteID string `json:"prerequisiteId"`
	Schedule       string `json:"schedule"`
	Room           string `json:"room"`
}
