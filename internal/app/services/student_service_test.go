package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/store"
)

func newStudentService(t *testing.T) *StudentService {
	t.Helper()
	col, err := store.Open[models.Student](filepath.Join(t.TempDir(), "students.json"))
	require.NoError(t, err)
	svc := NewStudentService(col)
	svc.now = func() time.Time { return testNow }
	return svc
}

func validStudent(id string) *models.Student {
	return &models.Student{
		StudentID:    id,
		Title:        "Mr.",
		FirstName:    "Somchai",
		LastName:     "Jaidee",
		BirthDate:    "2009-05-14",
		School:       "Demonstration School",
		Email:        "somchai@example.com",
		CurriculumID: "10000001",
	}
}

func TestAddStudentValidation(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.Student)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Student) {}},
		{name: "wrong prefix", mutate: func(s *models.Student) { s.StudentID = "68000001" }, wantErr: apperrors.ErrInvalidStudentID},
		{name: "too short", mutate: func(s *models.Student) { s.StudentID = "6900001" }, wantErr: apperrors.ErrInvalidStudentID},
		{name: "non numeric", mutate: func(s *models.Student) { s.StudentID = "69abc001" }, wantErr: apperrors.ErrInvalidStudentID},
		{name: "missing first name", mutate: func(s *models.Student) { s.FirstName = " " }, wantErr: apperrors.ErrValidationFailed},
		{name: "missing email", mutate: func(s *models.Student) { s.Email = "" }, wantErr: apperrors.ErrValidationFailed},
		{name: "missing curriculum", mutate: func(s *models.Student) { s.CurriculumID = "" }, wantErr: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			student := validStudent("69000001")
			tt.mutate(student)
			err := svc.AddStudent(ctx, student)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAddStudentDuplicateID(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddStudent(ctx, validStudent("69000001")))
	err := svc.AddStudent(ctx, validStudent("69000001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentIDAlreadyExists)
}

func TestUpdateStudentReplacesRecord(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStudent(ctx, validStudent("69000001")))

	replacement := validStudent("69000001")
	replacement.FirstName = "Kanda"
	replacement.School = ""
	require.NoError(t, svc.UpdateStudent(ctx, "69000001", replacement))

	got, err := svc.GetStudentByID(ctx, "69000001")
	require.NoError(t, err)
	assert.Equal(t, "Kanda", got.FirstName)
	assert.Empty(t, got.School, "update is a full replacement, not a merge")
}

func TestUpdateStudentNotFound(t *testing.T) {
	svc := newStudentService(t)
	err := svc.UpdateStudent(context.Background(), "69000001", validStudent("69000001"))
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestDeleteStudent(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()
	require.NoError(t, svc.AddStudent(ctx, validStudent("69000001")))

	require.NoError(t, svc.DeleteStudent(ctx, "69000001"))
	assert.ErrorIs(t, svc.DeleteStudent(ctx, "69000001"), apperrors.ErrStudentNotFound)
}

func TestStudentAgeCalendarSemantics(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	// clock fixed at 2026-06-01
	birthdayToday := validStudent("69000001")
	birthdayToday.BirthDate = "2010-06-01"
	require.NoError(t, svc.AddStudent(ctx, birthdayToday))

	birthdayTomorrow := validStudent("69000002")
	birthdayTomorrow.BirthDate = "2010-06-02"
	require.NoError(t, svc.AddStudent(ctx, birthdayTomorrow))

	age, err := svc.StudentAge(ctx, "69000001")
	require.NoError(t, err)
	assert.Equal(t, 16, age)

	age, err = svc.StudentAge(ctx, "69000002")
	require.NoError(t, err)
	assert.Equal(t, 15, age)
}

func TestSearchStudents(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	a := validStudent("69000001")
	b := validStudent("69000002")
	b.FirstName = "Kanda"
	b.LastName = "Wong"
	require.NoError(t, svc.AddStudent(ctx, a))
	require.NoError(t, svc.AddStudent(ctx, b))

	assert.Len(t, svc.SearchStudents(ctx, "kanda"), 1)
	assert.Len(t, svc.SearchStudents(ctx, "69000001"), 1)
	assert.Len(t, svc.SearchStudents(ctx, "demonstration"), 2)
	assert.Empty(t, svc.SearchStudents(ctx, "missing"))
}

func TestGetStudentsSorted(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	older := validStudent("69000002")
	older.FirstName = "Anan"
	older.BirthDate = "2008-01-01"
	younger := validStudent("69000001")
	younger.FirstName = "Boonmee"
	younger.BirthDate = "2010-01-01"
	require.NoError(t, svc.AddStudent(ctx, younger))
	require.NoError(t, svc.AddStudent(ctx, older))

	byName := svc.GetStudentsSortedByName(ctx)
	require.Len(t, byName, 2)
	assert.Equal(t, "Anan", byName[0].FirstName)

	byAge := svc.GetStudentsSortedByAge(ctx)
	require.Len(t, byAge, 2)
	assert.Equal(t, "Boonmee", byAge[0].FirstName, "youngest first")
}

func TestGetAllSchools(t *testing.T) {
	svc := newStudentService(t)
	ctx := context.Background()

	a := validStudent("69000001")
	a.School = "Beta School"
	b := validStudent("69000002")
	b.School = "Alpha School"
	c := validStudent("69000003")
	c.School = "Beta School"
	require.NoError(t, svc.AddStudent(ctx, a))
	require.NoError(t, svc.AddStudent(ctx, b))
	require.NoError(t, svc.AddStudent(ctx, c))

	assert.Equal(t, []string{"Alpha School", "Beta School"}, svc.GetAllSchools(ctx))
}
