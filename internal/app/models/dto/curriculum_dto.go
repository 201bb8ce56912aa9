package dto

// CreateCurriculumStructureRequest represents the payload for declaring a
// required subject in a curriculum semester
type CreateCurriculumStructureRequest struct {
	CurriculumID      string `json:"curriculumId" binding:"required,len=8"`
	CurriculumName    string `json:"curriculumName" binding:"required"`
	DepartmentName    string `json:"departmentName" binding:"required"`
	RequiredSubjectID string `json:"requiredSubjectId" binding:"required,len=8"`
	Semester          int    `json:"semester" binding:"required,oneof=1 2"`
}

// UpdateCurriculumStructureRequest carries the full replacement record for a
// curriculum structure entry, addressed by its composite key in the URL
type UpdateCurriculumStructureRequest struct {
	CurriculumName    string `json:"curriculumName" binding:"required"`
	DepartmentName    string `json:"departmentName" binding:"required"`
}

// SemesterCounts reports required-subject counts per semester of a curriculum
type SemesterCounts struct {
	Semester1 int `json:"semester1"`
	Semester2 int `json:"semester2"`
}
