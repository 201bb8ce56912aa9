package models

// Role defines the user role type
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// SubjectType classifies a subject by its identifier prefix
type SubjectType string

const (
	SubjectTypeFaculty SubjectType = "faculty" // ids starting with 0550
	SubjectTypeGeneral SubjectType = "general" // ids starting with 9069
	SubjectTypeUnknown SubjectType = "unknown"
)
