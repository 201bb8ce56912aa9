package services

import (
	"context"
	"sort"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
	"github.com/warit/schoolregis/internal/pkg/validation"
	"github.com/warit/schoolregis/internal/store"
)

// CurriculumService handles the required-subject declarations that make up
// each curriculum. Entries are addressed by the composite key
// (curriculumId, requiredSubjectId, semester).
type CurriculumService struct {
	structures *store.Collection[models.CurriculumStructure]
}

// NewCurriculumService creates a new curriculum service instance
func NewCurriculumService(structures *store.Collection[models.CurriculumStructure]) *CurriculumService {
	return &CurriculumService{structures: structures}
}

func matchStructure(curriculumID, subjectID string, semester int) func(models.CurriculumStructure) bool {
	return func(cs models.CurriculumStructure) bool {
		return cs.CurriculumID == curriculumID &&
			cs.RequiredSubjectID == subjectID &&
			cs.Semester == semester
	}
}

// GetAllStructures retrieves every curriculum structure entry
func (s *CurriculumService) GetAllStructures(ctx context.Context) []models.CurriculumStructure {
	return s.structures.All()
}

// GetStructuresByCurriculum retrieves all entries for one curriculum
func (s *CurriculumService) GetStructuresByCurriculum(ctx context.Context, curriculumID string) []models.CurriculumStructure {
	return s.structures.Find(func(cs models.CurriculumStructure) bool { return cs.CurriculumID == curriculumID })
}

// GetRequiredBySemester retrieves the required subjects for a curriculum term
func (s *CurriculumService) GetRequiredBySemester(ctx context.Context, curriculumID string, semester int) []models.CurriculumStructure {
	return s.structures.Find(func(cs models.CurriculumStructure) bool {
		return cs.CurriculumID == curriculumID && cs.Semester == semester
	})
}

// GetAllCurricula returns the distinct curricula, sorted by name
func (s *CurriculumService) GetAllCurricula(ctx context.Context) []models.Curriculum {
	seen := make(map[string]struct{})
	var out []models.Curriculum
	for _, cs := range s.structures.All() {
		if _, ok := seen[cs.CurriculumID]; ok {
			continue
		}
		seen[cs.CurriculumID] = struct{}{}
		out = append(out, models.Curriculum{
			CurriculumID:   cs.CurriculumID,
			CurriculumName: cs.CurriculumName,
			DepartmentName: cs.DepartmentName,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurriculumName < out[j].CurriculumName })
	return out
}

// GetAllDepartments returns the distinct department names, sorted
func (s *CurriculumService) GetAllDepartments(ctx context.Context) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, cs := range s.structures.All() {
		if _, ok := seen[cs.DepartmentName]; ok {
			continue
		}
		seen[cs.DepartmentName] = struct{}{}
		out = append(out, cs.DepartmentName)
	}
	sort.Strings(out)
	return out
}

// GetStructuresByDepartment retrieves entries belonging to one department
func (s *CurriculumService) GetStructuresByDepartment(ctx context.Context, departmentName string) []models.CurriculumStructure {
	return s.structures.Find(func(cs models.CurriculumStructure) bool { return cs.DepartmentName == departmentName })
}

// GetCurriculaRequiring returns the entries that declare subjectID mandatory
func (s *CurriculumService) GetCurriculaRequiring(ctx context.Context, subjectID string) []models.CurriculumStructure {
	return s.structures.Find(func(cs models.CurriculumStructure) bool { return cs.RequiredSubjectID == subjectID })
}

// IsRequiredSubject reports whether the subject is mandatory anywhere in the
// curriculum
func (s *CurriculumService) IsRequiredSubject(ctx context.Context, curriculumID, subjectID string) bool {
	return s.structures.Exists(func(cs models.CurriculumStructure) bool {
		return cs.CurriculumID == curriculumID && cs.RequiredSubjectID == subjectID
	})
}

// IsRequiredInSemester reports whether the subject is mandatory in the given
// curriculum term
func (s *CurriculumService) IsRequiredInSemester(ctx context.Context, curriculumID, subjectID string, semester int) bool {
	return s.structures.Exists(matchStructure(curriculumID, subjectID, semester))
}

// AddStructure creates a curriculum structure entry. Identifier and semester
// formats plus composite-key uniqueness are checked here only.
func (s *CurriculumService) AddStructure(ctx context.Context, structure *models.CurriculumStructure) error {
	if !validation.IsValidCurriculumID(structure.CurriculumID) {
		return apperrors.ErrInvalidCurriculumID
	}
	if !validation.IsValidSemester(structure.Semester) {
		return apperrors.ErrInvalidSemester
	}
	if s.structures.Exists(matchStructure(structure.CurriculumID, structure.RequiredSubjectID, structure.Semester)) {
		return apperrors.ErrCurriculumAlreadyExists
	}
	s.structures.Add(*structure)
	return nil
}

// UpdateStructure replaces the entry addressed by the composite key
func (s *CurriculumService) UpdateStructure(ctx context.Context, curriculumID, subjectID string, semester int, structure *models.CurriculumStructure) error {
	structure.CurriculumID = curriculumID
	structure.RequiredSubjectID = subjectID
	structure.Semester = semester
	ok := s.structures.Update(matchStructure(curriculumID, subjectID, semester), *structure)
	if !ok {
		return apperrors.ErrCurriculumNotFound
	}
	return nil
}

// DeleteStructure removes the entry addressed by the composite key
func (s *CurriculumService) DeleteStructure(ctx context.Context, curriculumID, subjectID string, semester int) error {
	if s.structures.DeleteMany(matchStructure(curriculumID, subjectID, semester)) == 0 {
		return apperrors.ErrCurriculumNotFound
	}
	return nil
}

// DeleteAllForCurriculum removes every entry of one curriculum and returns
// the number removed
func (s *CurriculumService) DeleteAllForCurriculum(ctx context.Context, curriculumID string) int {
	return s.structures.DeleteMany(func(cs models.CurriculumStructure) bool { return cs.CurriculumID == curriculumID })
}

// CountRequiredSubjects counts the mandatory subjects of a curriculum
func (s *CurriculumService) CountRequiredSubjects(ctx context.Context, curriculumID string) int {
	return s.structures.Count(func(cs models.CurriculumStructure) bool { return cs.CurriculumID == curriculumID })
}

// CountBySemester counts the mandatory subjects of a curriculum per term
func (s *CurriculumService) CountBySemester(ctx context.Context, curriculumID string) dto.SemesterCounts {
	return dto.SemesterCounts{
		Semester1: s.structures.Count(func(cs models.CurriculumStructure) bool {
			return cs.CurriculumID == curriculumID && cs.Semester == 1
		}),
		Semester2: s.structures.Count(func(cs models.CurriculumStructure) bool {
			return cs.CurriculumID == curriculumID && cs.Semester == 2
		}),
	}
}
