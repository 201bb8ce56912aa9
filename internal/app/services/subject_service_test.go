package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

func newSubjectService(t *testing.T) *SubjectService {
	t.Helper()
	col, err := store.Open[models.Subject](filepath.Join(t.TempDir(), "subjects.json"))
	require.NoError(t, err)
	return NewSubjectService(col)
}

func validSubject(id string) *models.Subject {
	return &models.Subject{
		SubjectID:   id,
		SubjectName: "Computer Programming I",
		Credits:     3,
		Instructor:  "Dr. Kanda Wongsuwan",
	}
}

func TestAddSubjectValidation(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Subject)
		wantErr error
	}{
		{name: "faculty prefix", mutate: func(*models.Subject) {}},
		{name: "general prefix", mutate: func(s *models.Subject) { s.SubjectID = "90690001" }},
		{name: "bad prefix", mutate: func(s *models.Subject) { s.SubjectID = "12345678" }, wantErr: apperrors.ErrInvalidSubjectID},
		{name: "too short", mutate: func(s *models.Subject) { s.SubjectID = "0550001" }, wantErr: apperrors.ErrInvalidSubjectID},
		{name: "zero credits", mutate: func(s *models.Subject) { s.Credits = 0 }, wantErr: apperrors.ErrInvalidCredits},
		{name: "negative credits", mutate: func(s *models.Subject) { s.Credits = -1 }, wantErr: apperrors.ErrInvalidCredits},
		{name: "missing name", mutate: func(s *models.Subject) { s.SubjectName = "" }, wantErr: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := validSubject("05500101")
			tt.mutate(subject)
			err := svc.AddSubject(ctx, subject)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddSubjectDuplicateID(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddSubject(ctx, validSubject("05500101")))
	assert.ErrorIs(t, svc.AddSubject(ctx, validSubject("05500101")), apperrors.ErrSubjectAlreadyExists)
}

func TestSubjectTypeFilters(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddSubject(ctx, validSubject("05500101")))
	general := validSubject("90690001")
	general.SubjectName = "English for Communication"
	require.NoError(t, svc.AddSubject(ctx, general))

	faculty := svc.GetFacultySubjects(ctx)
	require.Len(t, faculty, 1)
	assert.Equal(t, "05500101", faculty[0].SubjectID)

	generals := svc.GetGeneralSubjects(ctx)
	require.Len(t, generals, 1)
	assert.Equal(t, "90690001", generals[0].SubjectID)
}

func TestPrerequisiteLookups(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	base := validSubject("05500101")
	require.NoError(t, svc.AddSubject(ctx, base))
	next := validSubject("05500102")
	next.SubjectName = "Computer Programming II"
	next.PrerequisiteID = "05500101"
	require.NoError(t, svc.AddSubject(ctx, next))

	assert.False(t, svc.HasPrerequisite(ctx, "05500101"))
	assert.True(t, svc.HasPrerequisite(ctx, "05500102"))

	prereq, err := svc.GetPrerequisite(ctx, "05500102")
	require.NoError(t, err)
	assert.Equal(t, "05500101", prereq.SubjectID)

	dependents := svc.GetDependents(ctx, "05500101")
	require.Len(t, dependents, 1)
	assert.Equal(t, "05500102", dependents[0].SubjectID)
}

func TestDeleteSubjectWithDependentsRefused(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddSubject(ctx, validSubject("05500101")))
	next := validSubject("05500102")
	next.SubjectName = "Computer Programming II"
	next.PrerequisiteID = "05500101"
	require.NoError(t, svc.AddSubject(ctx, next))

	err := svc.DeleteSubject(ctx, "05500101")
	assert.ErrorIs(t, err, apperrors.ErrSubjectHasDependents)
	assert.Contains(t, err.Error(), "Computer Programming II")
	assert.True(t, svc.SubjectExists(ctx, "05500101"))

	// deleting the dependent first unblocks the base subject
	require.NoError(t, svc.DeleteSubject(ctx, "05500102"))
	assert.NoError(t, svc.DeleteSubject(ctx, "05500101"))
}

func TestDeleteSubjectNotFound(t *testing.T) {
	svc := newSubjectService(t)
	assert.ErrorIs(t, svc.DeleteSubject(context.Background(), "05500101"), apperrors.ErrSubjectNotFound)
}

func TestUpdateSubjectKeepsID(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddSubject(ctx, validSubject("05500101")))

	replacement := validSubject("05500999") // id in the body is ignored
	replacement.SubjectName = "Renamed"
	require.NoError(t, svc.UpdateSubject(ctx, "05500101", replacement))

	got, err := svc.GetSubjectByID(ctx, "05500101")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.SubjectName)
}

func TestSearchSubjects(t *testing.T) {
	svc := newSubjectService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddSubject(ctx, validSubject("05500101")))
	english := validSubject("90690001")
	english.SubjectName = "English for Communication"
	require.NoError(t, svc.AddSubject(ctx, english))

	assert.Len(t, svc.SearchSubjects(ctx, "programming"), 1)
	assert.Len(t, svc.SearchSubjects(ctx, "9069"), 1)
	assert.Empty(t, svc.SearchSubjects(ctx, "chemistry"))
}
