package models

// User defines a user account in the users collection.
// Passwords are stored and compared in plain text; hardening the
// credential store is out of scope for this system.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"` // student accounts use the student id
	Password  string `json:"password"` // persisted as-is; API responses use dto.UserResponse instead
	Role      Role   `json:"role" example:"student"`
	FullName  string `json:"fullName" example:"Somchai Jaidee"`
	StudentID string `json:"studentId,omitempty"` // set for student accounts only
}

// IsAdmin reports whether the account has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsTeacher reports whether the account has the teacher role.
func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

// IsStudent reports whether the account has the student role.
func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}
