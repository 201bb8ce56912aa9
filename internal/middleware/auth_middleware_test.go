package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/warit/schoolregis/internal/app/models"
)

// roleGateStatus runs a request with the given role already authenticated
// through RoleRequired(allowed...) and returns the response status.
func roleGateStatus(t *testing.T, role string, allowed ...models.Role) int {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewAuthMiddleware(nil)
	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			if role != "" {
				c.Set(ContextRole, role)
			}
		},
		m.RoleRequired(allowed...),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))
	return rec.Code
}

func TestRoleRequired(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		allowed    []models.Role
		wantStatus int
	}{
		{name: "admin on admin-only", role: "admin", allowed: []models.Role{models.RoleAdmin}, wantStatus: 200},
		{name: "student on admin-only", role: "student", allowed: []models.Role{models.RoleAdmin}, wantStatus: 403},
		{name: "teacher on grading gate", role: "teacher", allowed: []models.Role{models.RoleAdmin, models.RoleTeacher}, wantStatus: 200},
		{name: "admin on grading gate", role: "admin", allowed: []models.Role{models.RoleAdmin, models.RoleTeacher}, wantStatus: 200},
		{name: "student on grading gate", role: "student", allowed: []models.Role{models.RoleAdmin, models.RoleTeacher}, wantStatus: 403},
		{name: "missing role", role: "", allowed: []models.Role{models.RoleAdmin}, wantStatus: 401},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, roleGateStatus(t, tt.role, tt.allowed...))
		})
	}
}
