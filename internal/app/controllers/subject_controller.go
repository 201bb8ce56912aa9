package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/middleware"
)

// SubjectController handles subject catalog management
type SubjectController struct {
	subjectService      *services.SubjectService
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(
	subjectService *services.SubjectService,
	registrationService *services.RegistrationService,
	logger zerolog.Logger,
) *SubjectController {
	return &SubjectController{
		subjectService:      subjectService,
		registrationService: registrationService,
		logger:              logger,
	}
}

// GetSubjects lists catalog subjects
// @Summary List subjects
// @Description Lists subjects, optionally filtered by keyword, type, instructor or credits.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param search query string false "Keyword matched against ID and name"
// @Param type query string false "Subject type: faculty or general"
// @Param instructor query string false "Filter by instructor name"
// @Param credits query int false "Filter by credit value"
// @Success 200 {object} dto.APIResponse{data=[]models.Subject} "Subject list"
// @Router /subjects [get]
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	var subjects []models.Subject

	switch {
	case ctx.Query("search") != "":
		subjects = c.subjectService.SearchSubjects(ctx.Request.Context(), ctx.Query("search"))
	case ctx.Query("type") == string(models.SubjectTypeFaculty):
		subjects = c.subjectService.GetFacultySubjects(ctx.Request.Context())
	case ctx.Query("type") == string(models.SubjectTypeGeneral):
		subjects = c.subjectService.GetGeneralSubjects(ctx.Request.Context())
	case ctx.Query("instructor") != "":
		subjects = c.subjectService.GetSubjectsByInstructor(ctx.Request.Context(), ctx.Query("instructor"))
	case ctx.Query("credits") != "":
		credits, err := strconv.Atoi(ctx.Query("credits"))
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "credits must be a number")
			ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(errorDetail.WithField("credits")))
			return
		}
		subjects = c.subjectService.GetSubjectsByCredits(ctx.Request.Context(), credits)
	default:
		subjects = c.subjectService.GetAllSubjects(ctx.Request.Context())
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subjects))
}

// GetInstructors lists distinct instructor names
// @Summary List instructors
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Instructor names"
// @Router /subjects/instructors [get]
func (c *SubjectController) GetInstructors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.subjectService.GetAllInstructors(ctx.Request.Context())))
}

// GetSubject retrieves one subject
// @Summary Get a subject
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject record"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /subjects/{subjectId} [get]
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	subject, err := c.subjectService.GetSubjectByID(ctx.Request.Context(), ctx.Param("subjectId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

// GetSubjectStats summarizes registrations for one subject
// @Summary Subject registration statistics
// @Description Returns registration totals and the grade distribution for one subject.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SubjectStats} "Registration statistics"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /subjects/{subjectId}/stats [get]
func (c *SubjectController) GetSubjectStats(ctx *gin.Context) {
	subjectID := ctx.Param("subjectId")

	if _, err := c.subjectService.GetSubjectByID(ctx.Request.Context(), subjectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.registrationService.GetSubjectStats(ctx.Request.Context(), subjectID)))
}

// CreateSubject adds a subject to the catalog
// @Summary Create a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSubjectRequest true "Subject information"
// @Success 201 {object} dto.APIResponse{data=models.Subject} "Subject created"
// @Failure 400 {object} dto.APIResponse "Invalid request or ID format"
// @Failure 409 {object} dto.APIResponse "Subject ID already exists"
// @Router /subjects [post]
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	subject := models.Subject{
		SubjectID:      req.SubjectID,
		SubjectName:    req.SubjectName,
		Credits:        req.Credits,
		Instructor:     req.Instructor,
		PrerequisiteID: req.PrerequisiteID,
		Schedule:       req.Schedule,
		Room:           req.Room,
	}

	if err := c.subjectService.AddSubject(ctx.Request.Context(), &subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("subjectId", subject.SubjectID).Msg("Subject created")
	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(subject))
}

// UpdateSubject replaces a subject record
// @Summary Update a subject
// @Tags subjects
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Param request body dto.UpdateSubjectRequest true "Replacement record"
// @Success 200 {object} dto.APIResponse{data=models.Subject} "Subject updated"
// @Failure 400 {object} dto.APIResponse "Invalid request"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /subjects/{subjectId} [put]
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	subjectID := ctx.Param("subjectId")
	subject := models.Subject{
		SubjectID:      subjectID,
		SubjectName:    req.SubjectName,
		Credits:        req.Credits,
		Instructor:     req.Instructor,
		PrerequisiteID: req.PrerequisiteID,
		Schedule:       req.Schedule,
		Room:           req.Room,
	}

	if err := c.subjectService.UpdateSubject(ctx.Request.Context(), subjectID, &subject); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(subject))
}

// DeleteSubject removes a subject from the catalog
// @Summary Delete a subject
// @Description Deletes a subject. Fails if other subjects declare it as their prerequisite.
// @Tags subjects
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Subject deleted"
// @Failure 400 {object} dto.APIResponse "Subject is a prerequisite for other subjects"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /subjects/{subjectId} [delete]
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	subjectID := ctx.Param("subjectId")

	if err := c.subjectService.DeleteSubject(ctx.Request.Context(), subjectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("subjectId", subjectID).Msg("Subject deleted")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "subject deleted"}))
}
