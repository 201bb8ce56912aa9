package models

// CurriculumStructure declares one mandatory subject for a curriculum in a
// given semester. The composite identity is (curriculumId, requiredSubjectId,
// semester).
type CurriculumStructure struct {
	CurriculumID      string `json:"curriculumId" example:"10550001"` // 8 digits, not starting with 0
	CurriculumName    string `json:"curriculumName" example:"Computer Engineering"`
	DepartmentName    string `json:"departmentName" example:"Computer Engineering Department"`
	RequiredSubjectID string `json:"requiredSubjectId" example:"05500101"`
	Semester          int    `json:"semester" example:"1"` // 1 or 2
}

// Curriculum is the distinct program identity derived from structure rows.
type Curriculum struct {
	CurriculumID   string `json:"curriculumId"`
	CurriculumName string `json:"curriculumName"`
	DepartmentName string `json:"departmentName"`
}
