package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/middleware"
)

// RegistrationController handles subject registration, grading and
// transcript views
type RegistrationController struct {
	registrationService *services.RegistrationService
	logger              zerolog.Logger
}

// NewRegistrationController creates a new RegistrationController
func NewRegistrationController(registrationService *services.RegistrationService, logger zerolog.Logger) *RegistrationController {
	return &RegistrationController{
		registrationService: registrationService,
		logger:              logger,
	}
}

// callerStudentID resolves which student the request is about: admins name
// the student in the path, students always act as themselves.
func callerStudentID(ctx *gin.Context) string {
	if id := ctx.Param("studentId"); id != "" {
		return id
	}
	return ctx.GetString(middleware.ContextStudentID)
}

// Register enrolls the student in a subject
// @Summary Register for a subject
// @Description Registers the authenticated student for a subject after checking age, duplicates and the prerequisite chain.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RegisterSubjectRequest true "Subject to register"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration recorded"
// @Failure 400 {object} dto.APIResponse "A registration rule failed"
// @Failure 404 {object} dto.APIResponse "Student or subject not found"
// @Failure 409 {object} dto.APIResponse "Already registered"
// @Router /registrations [post]
func (c *RegistrationController) Register(ctx *gin.Context) {
	var req dto.RegisterSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	studentID := callerStudentID(ctx)

	if err := c.registrationService.Register(ctx.Request.Context(), studentID, req.SubjectID); err != nil {
		c.logger.Warn().
			Err(err).
			Str("studentId", studentID).
			Str("subjectId", req.SubjectID).
			Msg("Registration refused")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", studentID).
		Str("subjectId", req.SubjectID).
		Msg("Subject registered")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{Message: "registered"}))
}

// Unregister drops a subject registration
// @Summary Drop a subject
// @Description Removes the student's registration for the subject, discarding any assigned grade.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Registration removed"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /registrations/{subjectId} [delete]
func (c *RegistrationController) Unregister(ctx *gin.Context) {
	studentID := callerStudentID(ctx)
	subjectID := ctx.Param("subjectId")

	if err := c.registrationService.Unregister(ctx.Request.Context(), studentID, subjectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", studentID).
		Str("subjectId", subjectID).
		Msg("Subject dropped")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "registration removed"}))
}

// GetMyRegistrations lists the caller's registrations
// @Summary My registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registration list"
// @Router /registrations [get]
func (c *RegistrationController) GetMyRegistrations(ctx *gin.Context) {
	studentID := callerStudentID(ctx)
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		c.registrationService.GetRegistrationsByStudent(ctx.Request.Context(), studentID)))
}

// GetAvailableSubjects lists subjects the caller can still register for
// @Summary Available subjects
// @Description Lists subjects the student has not yet registered for, each annotated with prerequisite eligibility.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AvailableSubject} "Available subjects"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /registrations/available [get]
func (c *RegistrationController) GetAvailableSubjects(ctx *gin.Context) {
	available, err := c.registrationService.GetAvailableSubjects(ctx.Request.Context(), callerStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(available))
}

// GetTranscript returns a student's transcript
// @Summary Transcript
// @Description Returns the student's registrations joined with subject data, credit totals and GPA.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.TranscriptResponse} "Transcript"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{studentId}/transcript [get]
func (c *RegistrationController) GetTranscript(ctx *gin.Context) {
	transcript, err := c.registrationService.GetTranscript(ctx.Request.Context(), callerStudentID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(transcript))
}

// GetStudentRegistrations lists one student's registrations (admin view)
// @Summary Student registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Registration list"
// @Router /students/{studentId}/registrations [get]
func (c *RegistrationController) GetStudentRegistrations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		c.registrationService.GetRegistrationsByStudent(ctx.Request.Context(), ctx.Param("studentId"))))
}

// SetGrade assigns a grade to an existing registration
// @Summary Assign a grade
// @Description Assigns or replaces the grade on a student's registration.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SetGradeRequest true "Student, subject and grade"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade recorded"
// @Failure 400 {object} dto.APIResponse "Invalid grade"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /grades [put]
func (c *RegistrationController) SetGrade(ctx *gin.Context) {
	var req dto.SetGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.registrationService.SetGrade(ctx.Request.Context(), req.StudentID, req.SubjectID, req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", req.StudentID).
		Str("subjectId", req.SubjectID).
		Str("grade", req.Grade).
		Msg("Grade recorded")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "grade recorded"}))
}

// DeleteGrade removes the grade from a registration
// @Summary Delete a grade
// @Description Clears the grade on a student's registration; the registration itself is kept.
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param subjectId path string true "Subject ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Grade removed"
// @Failure 404 {object} dto.APIResponse "Registration not found"
// @Router /grades/{studentId}/{subjectId} [delete]
func (c *RegistrationController) DeleteGrade(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	subjectID := ctx.Param("subjectId")

	if err := c.registrationService.ClearGrade(ctx.Request.Context(), studentID, subjectID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("studentId", studentID).
		Str("subjectId", subjectID).
		Msg("Grade removed")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "grade removed"}))
}

// GradeSubject applies grades to several students of one subject
// @Summary Grade a subject in bulk
// @Description Applies grades for several students of one subject; blank grades are skipped and per-student failures are reported without aborting the batch.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param subjectId path string true "Subject ID"
// @Param request body dto.GradeSubjectRequest true "Grades keyed by student ID"
// @Success 200 {object} dto.APIResponse{data=dto.GradeSubjectResult} "Batch result"
// @Failure 404 {object} dto.APIResponse "Subject not found"
// @Router /grades/subjects/{subjectId} [put]
func (c *RegistrationController) GradeSubject(ctx *gin.Context) {
	var req dto.GradeSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	subjectID := ctx.Param("subjectId")

	result, err := c.registrationService.GradeSubject(ctx.Request.Context(), subjectID, req.Grades)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("subjectId", subjectID).
		Int("updated", result.Updated).
		Int("failed", len(result.Failed)).
		Msg("Subject grades updated")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(result))
}

// GetUngraded lists registrations still awaiting a grade
// @Summary Ungraded registrations
// @Tags registrations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Registration} "Ungraded registrations"
// @Router /grades/pending [get]
func (c *RegistrationController) GetUngraded(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		c.registrationService.GetUngradedRegistrations(ctx.Request.Context())))
}
