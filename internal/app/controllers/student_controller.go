package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/middleware"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
)

// StudentController handles student record management
type StudentController struct {
	studentService      *services.StudentService
	registrationService *services.RegistrationService
	authService         *services.AuthService
	logger              zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService *services.StudentService,
	registrationService *services.RegistrationService,
	authService *services.AuthService,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService:      studentService,
		registrationService: registrationService,
		authService:         authService,
		logger:              logger,
	}
}

// GetStudents lists student records
// @Summary List students
// @Description Lists students, optionally filtered by keyword, school or curriculum and sorted by name or age.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param search query string false "Keyword matched against ID, name and email"
// @Param school query string false "Filter by school name"
// @Param curriculumId query string false "Filter by curriculum"
// @Param sort query string false "Sort order: name or age"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Student list"
// @Router /students [get]
func (c *StudentController) GetStudents(ctx *gin.Context) {
	var students []models.Student

	switch {
	case ctx.Query("search") != "":
		students = c.studentService.SearchStudents(ctx.Request.Context(), ctx.Query("search"))
	case ctx.Query("school") != "":
		students = c.studentService.GetStudentsBySchool(ctx.Request.Context(), ctx.Query("school"))
	case ctx.Query("curriculumId") != "":
		students = c.studentService.GetStudentsByCurriculum(ctx.Request.Context(), ctx.Query("curriculumId"))
	case ctx.Query("sort") == "name":
		students = c.studentService.GetStudentsSortedByName(ctx.Request.Context())
	case ctx.Query("sort") == "age":
		students = c.studentService.GetStudentsSortedByAge(ctx.Request.Context())
	default:
		students = c.studentService.GetAllStudents(ctx.Request.Context())
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// GetSchools lists distinct school names
// @Summary List schools
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "School names"
// @Router /students/schools [get]
func (c *StudentController) GetSchools(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.studentService.GetAllSchools(ctx.Request.Context())))
}

// GetStudent retrieves one student record
// @Summary Get a student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student record"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{studentId} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByID(ctx.Request.Context(), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// CreateStudent registers a new student record
// @Summary Create a student
// @Description Creates a student record and provisions the matching login account (username and initial password are the student ID).
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student created"
// @Failure 400 {object} dto.APIResponse "Invalid request or ID format"
// @Failure 409 {object} dto.APIResponse "Student ID already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student := models.Student{
		StudentID:    req.StudentID,
		Title:        req.Title,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		School:       req.School,
		Email:        req.Email,
		CurriculumID: req.CurriculumID,
	}

	if err := c.studentService.AddStudent(ctx.Request.Context(), &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.authService.CreateStudentAccount(ctx.Request.Context(), student.StudentID, student.FullName()); err != nil {
		// account may survive an earlier delete/re-create cycle
		if !errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			c.logger.Error().Err(err).Str("studentId", student.StudentID).Msg("Failed to provision student account")
		}
	}

	c.logger.Info().Str("studentId", student.StudentID).Msg("Student created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(student))
}

// UpdateStudent replaces a student record
// @Summary Update a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Replacement record"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{studentId} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID := ctx.Param("studentId")
	student := models.Student{
		StudentID:    studentID,
		Title:        req.Title,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    req.BirthDate,
		School:       req.School,
		Email:        req.Email,
		CurriculumID: req.CurriculumID,
	}

	if err := c.studentService.UpdateStudent(ctx.Request.Context(), studentID, &student); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// DeleteStudent removes a student record
// @Summary Delete a student
// @Description Deletes the student record together with its registrations and login account.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Student deleted"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{studentId} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	studentID := ctx.Param("studentId")

	if err := c.studentService.DeleteStudent(ctx.Request.Context(), studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	removed := c.registrationService.DeleteRegistrationsForStudent(ctx.Request.Context(), studentID)

	if user, err := c.authService.GetUserByStudentID(ctx.Request.Context(), studentID); err == nil {
		if err := c.authService.DeleteUser(ctx.Request.Context(), user.Username); err != nil {
			c.logger.Warn().Err(err).Str("studentId", studentID).Msg("Failed to remove student account")
		}
	}

	c.logger.Info().
		Str("studentId", studentID).
		Int("registrationsRemoved", removed).
		Msg("Student deleted")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "student deleted"}))
}
