package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

func newCurriculumService(t *testing.T) *CurriculumService {
	t.Helper()
	col, err := store.Open[models.CurriculumStructure](filepath.Join(t.TempDir(), "curriculum.json"))
	require.NoError(t, err)
	return NewCurriculumService(col)
}

func structureEntry(curriculumID, subjectID string, semester int) *models.CurriculumStructure {
	return &models.CurriculumStructure{
		CurriculumID:      curriculumID,
		CurriculumName:    "Computer Engineering",
		DepartmentName:    "Engineering",
		RequiredSubjectID: subjectID,
		Semester:          semester,
	}
}

func TestAddStructureValidation(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.AddStructure(ctx, structureEntry("01000001", "05500101", 1)), apperrors.ErrInvalidCurriculumID)
	assert.ErrorIs(t, svc.AddStructure(ctx, structureEntry("1000001", "05500101", 1)), apperrors.ErrInvalidCurriculumID)
	assert.ErrorIs(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 3)), apperrors.ErrInvalidSemester)
	assert.ErrorIs(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 0)), apperrors.ErrInvalidSemester)
	assert.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))
}

func TestAddStructureCompositeKeyUniqueness(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))

	// identical composite key is refused
	assert.ErrorIs(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)), apperrors.ErrCurriculumAlreadyExists)

	// varying any key component is a distinct entry
	assert.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 2)))
	assert.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500102", 1)))
	assert.NoError(t, svc.AddStructure(ctx, structureEntry("10000002", "05500101", 1)))
}

func TestGetRequiredBySemester(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500102", 2)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "90690001", 1)))

	first := svc.GetRequiredBySemester(ctx, "10000001", 1)
	assert.Len(t, first, 2)
	second := svc.GetRequiredBySemester(ctx, "10000001", 2)
	require.Len(t, second, 1)
	assert.Equal(t, "05500102", second[0].RequiredSubjectID)

	assert.True(t, svc.IsRequiredSubject(ctx, "10000001", "05500101"))
	assert.True(t, svc.IsRequiredInSemester(ctx, "10000001", "05500101", 1))
	assert.False(t, svc.IsRequiredInSemester(ctx, "10000001", "05500101", 2))
}

func TestCountBySemester(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500102", 2)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "90690001", 1)))

	counts := svc.CountBySemester(ctx, "10000001")
	assert.Equal(t, dto.SemesterCounts{Semester1: 2, Semester2: 1}, counts)
	assert.Equal(t, 3, svc.CountRequiredSubjects(ctx, "10000001"))
}

func TestGetAllCurriculaDistinct(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500102", 2)))

	other := structureEntry("10000002", "90690001", 1)
	other.CurriculumName = "Applied Mathematics"
	other.DepartmentName = "Science"
	require.NoError(t, svc.AddStructure(ctx, other))

	curricula := svc.GetAllCurricula(ctx)
	require.Len(t, curricula, 2)
	// sorted by curriculum name
	assert.Equal(t, "Applied Mathematics", curricula[0].CurriculumName)
	assert.Equal(t, "Computer Engineering", curricula[1].CurriculumName)

	assert.Equal(t, []string{"Engineering", "Science"}, svc.GetAllDepartments(ctx))
}

func TestUpdateStructureKeepsCompositeKey(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))

	replacement := structureEntry("10000001", "05500101", 1)
	replacement.CurriculumName = "Renamed Curriculum"
	require.NoError(t, svc.UpdateStructure(ctx, "10000001", "05500101", 1, replacement))

	entries := svc.GetStructuresByCurriculum(ctx, "10000001")
	require.Len(t, entries, 1)
	assert.Equal(t, "Renamed Curriculum", entries[0].CurriculumName)

	err := svc.UpdateStructure(ctx, "10000001", "05500101", 2, replacement)
	assert.ErrorIs(t, err, apperrors.ErrCurriculumNotFound)
}

func TestDeleteStructure(t *testing.T) {
	svc := newCurriculumService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500101", 1)))
	require.NoError(t, svc.AddStructure(ctx, structureEntry("10000001", "05500102", 2)))

	require.NoError(t, svc.DeleteStructure(ctx, "10000001", "05500101", 1))
	assert.ErrorIs(t, svc.DeleteStructure(ctx, "10000001", "05500101", 1), apperrors.ErrCurriculumNotFound)

	assert.Equal(t, 1, svc.DeleteAllForCurriculum(ctx, "10000001"))
	assert.Empty(t, svc.GetAllStructures(ctx))
}
