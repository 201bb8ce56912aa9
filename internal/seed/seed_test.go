package seed

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/config"
)

func seedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Admin.Username = "admin"
	cfg.Admin.Password = "admin123"
	return cfg
}

func TestCreateDefaultData(t *testing.T) {
	ctx := context.Background()
	cols, err := services.OpenCollections(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, CreateDefaultData(ctx, seedConfig(), cols, zerolog.Nop()))

	authService := services.NewAuthService(cols.Users)

	admin, err := authService.Authenticate(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	teacher, err := authService.Authenticate(ctx, defaultTeacherUsername, defaultTeacherPassword)
	require.NoError(t, err)
	assert.True(t, teacher.IsTeacher())

	subjectService := services.NewSubjectService(cols.Subjects)
	assert.NotEmpty(t, subjectService.GetAllSubjects(ctx))

	curriculumService := services.NewCurriculumService(cols.Curriculum)
	assert.NotEmpty(t, curriculumService.GetAllStructures(ctx))
}

func TestCreateDefaultDataIdempotent(t *testing.T) {
	ctx := context.Background()
	cols, err := services.OpenCollections(t.TempDir())
	require.NoError(t, err)
	cfg := seedConfig()

	require.NoError(t, CreateDefaultData(ctx, cfg, cols, zerolog.Nop()))
	usersAfterFirst := cols.Users.Len()
	subjectsAfterFirst := cols.Subjects.Len()

	require.NoError(t, CreateDefaultData(ctx, cfg, cols, zerolog.Nop()))
	assert.Equal(t, usersAfterFirst, cols.Users.Len())
	assert.Equal(t, subjectsAfterFirst, cols.Subjects.Len())
}
