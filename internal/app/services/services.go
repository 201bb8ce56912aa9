// Package services holds the domain services layered over the record store:
//
//   - AuthService: user accounts and credential checks
//   - StudentService: student records and eligibility predicates
//   - SubjectService: subject records and prerequisite lookups
//   - CurriculumService: required-subject declarations per curriculum term
//   - RegistrationService: the registration rule engine (register,
//     unregister, grading, transcripts, statistics)
package services

import (
	"path/filepath"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/store"
)

// Collection file names under the data directory.
const (
	studentsFile      = "students.json"
	subjectsFile      = "subjects.json"
	registrationsFile = "registrations.json"
	usersFile         = "users.json"
	curriculumFile    = "curriculum.json"
)

// Collections holds the long-lived record store collections, one per entity
// type. A single instance is opened at startup and shared by reference
// across all services so every service observes the same working set.
type Collections struct {
	Students      *store.Collection[models.Student]
	Subjects      *store.Collection[models.Subject]
	Registrations *store.Collection[models.Registration]
	Users         *store.Collection[models.User]
	Curriculum    *store.Collection[models.CurriculumStructure]
}

// OpenCollections opens every entity collection under dataDir, creating
// empty collection files on first run.
func OpenCollections(dataDir string) (*Collections, error) {
	students, err := store.Open[models.Student](filepath.Join(dataDir, studentsFile))
	if err != nil {
		return nil, err
	}
	subjects, err := store.Open[models.Subject](filepath.Join(dataDir, subjectsFile))
	if err != nil {
		return nil, err
	}
	registrations, err := store.Open[models.Registration](filepath.Join(dataDir, registrationsFile))
	if err != nil {
		return nil, err
	}
	users, err := store.Open[models.User](filepath.Join(dataDir, usersFile))
	if err != nil {
		return nil, err
	}
	curriculum, err := store.Open[models.CurriculumStructure](filepath.Join(dataDir, curriculumFile))
	if err != nil {
		return nil, err
	}

	return &Collections{
		Students:      students,
		Subjects:      subjects,
		Registrations: registrations,
		Users:         users,
		Curriculum:    curriculum,
	}, nil
}
