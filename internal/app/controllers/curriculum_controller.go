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
	"github.com/warit/schoolregis/internal/pkg/apperrors"
)

// CurriculumController handles curriculum structure management
type CurriculumController struct {
	curriculumService *services.CurriculumService
	logger            zerolog.Logger
}

// NewCurriculumController creates a new CurriculumController
func NewCurriculumController(curriculumService *services.CurriculumService, logger zerolog.Logger) *CurriculumController {
	return &CurriculumController{
		curriculumService: curriculumService,
		logger:            logger,
	}
}

func semesterParam(ctx *gin.Context, name string) (int, error) {
	semester, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, apperrors.ErrInvalidSemester
	}
	return semester, nil
}

// GetCurricula lists distinct curricula
// @Summary List curricula
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param department query string false "Filter structure entries by department"
// @Success 200 {object} dto.APIResponse{data=[]models.Curriculum} "Curriculum list"
// @Router /curricula [get]
func (c *CurriculumController) GetCurricula(ctx *gin.Context) {
	if department := ctx.Query("department"); department != "" {
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(
			c.curriculumService.GetStructuresByDepartment(ctx.Request.Context(), department)))
		return
	}
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.curriculumService.GetAllCurricula(ctx.Request.Context())))
}

// GetDepartments lists distinct department names
// @Summary List departments
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]string} "Department names"
// @Router /curricula/departments [get]
func (c *CurriculumController) GetDepartments(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(c.curriculumService.GetAllDepartments(ctx.Request.Context())))
}

// GetStructure lists a curriculum's required subjects
// @Summary Curriculum structure
// @Description Lists the required-subject entries of one curriculum, optionally restricted to a semester.
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param curriculumId path string true "Curriculum ID"
// @Param semester query int false "Restrict to semester 1 or 2"
// @Success 200 {object} dto.APIResponse{data=[]models.CurriculumStructure} "Structure entries"
// @Router /curricula/{curriculumId} [get]
func (c *CurriculumController) GetStructure(ctx *gin.Context) {
	curriculumID := ctx.Param("curriculumId")

	if raw := ctx.Query("semester"); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil {
			middleware.HandleAPIError(ctx, apperrors.ErrInvalidSemester)
			return
		}
		ctx.JSON(http.StatusOK, dto.NewAPIResponse(
			c.curriculumService.GetRequiredBySemester(ctx.Request.Context(), curriculumID, semester)))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		c.curriculumService.GetStructuresByCurriculum(ctx.Request.Context(), curriculumID)))
}

// GetSemesterCounts reports per-semester required subject counts
// @Summary Semester counts
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param curriculumId path string true "Curriculum ID"
// @Success 200 {object} dto.APIResponse{data=dto.SemesterCounts} "Counts per semester"
// @Router /curricula/{curriculumId}/semesters [get]
func (c *CurriculumController) GetSemesterCounts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(
		c.curriculumService.CountBySemester(ctx.Request.Context(), ctx.Param("curriculumId"))))
}

// CreateStructure declares a required subject in a curriculum semester
// @Summary Add a structure entry
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCurriculumStructureRequest true "Structure entry"
// @Success 201 {object} dto.APIResponse{data=models.CurriculumStructure} "Entry created"
// @Failure 400 {object} dto.APIResponse "Invalid request or ID format"
// @Failure 409 {object} dto.APIResponse "Entry already exists"
// @Router /curricula [post]
func (c *CurriculumController) CreateStructure(ctx *gin.Context) {
	var req dto.CreateCurriculumStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	structure := models.CurriculumStructure{
		CurriculumID:      req.CurriculumID,
		CurriculumName:    req.CurriculumName,
		DepartmentName:    req.DepartmentName,
		RequiredSubjectID: req.RequiredSubjectID,
		Semester:          req.Semester,
	}

	if err := c.curriculumService.AddStructure(ctx.Request.Context(), &structure); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("curriculumId", structure.CurriculumID).
		Str("subjectId", structure.RequiredSubjectID).
		Int("semester", structure.Semester).
		Msg("Curriculum structure entry created")

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(structure))
}

// UpdateStructure renames the curriculum or department on one entry
// @Summary Update a structure entry
// @Tags curriculum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param curriculumId path string true "Curriculum ID"
// @Param subjectId path string true "Required subject ID"
// @Param semester path int true "Semester (1 or 2)"
// @Param request body dto.UpdateCurriculumStructureRequest true "Replacement names"
// @Success 200 {object} dto.APIResponse{data=models.CurriculumStructure} "Entry updated"
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Router /curricula/{curriculumId}/{subjectId}/{semester} [put]
func (c *CurriculumController) UpdateStructure(ctx *gin.Context) {
	var req dto.UpdateCurriculumStructureRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	semester, err := semesterParam(ctx, "semester")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	curriculumID := ctx.Param("curriculumId")
	subjectID := ctx.Param("subjectId")

	structure := models.CurriculumStructure{
		CurriculumID:      curriculumID,
		CurriculumName:    req.CurriculumName,
		DepartmentName:    req.DepartmentName,
		RequiredSubjectID: subjectID,
		Semester:          semester,
	}

	if err := c.curriculumService.UpdateStructure(ctx.Request.Context(), curriculumID, subjectID, semester, &structure); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(structure))
}

// DeleteStructure removes one structure entry
// @Summary Delete a structure entry
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param curriculumId path string true "Curriculum ID"
// @Param subjectId path string true "Required subject ID"
// @Param semester path int true "Semester (1 or 2)"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Entry deleted"
// @Failure 404 {object} dto.APIResponse "Entry not found"
// @Router /curricula/{curriculumId}/{subjectId}/{semester} [delete]
func (c *CurriculumController) DeleteStructure(ctx *gin.Context) {
	semester, err := semesterParam(ctx, "semester")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.curriculumService.DeleteStructure(ctx.Request.Context(), ctx.Param("curriculumId"), ctx.Param("subjectId"), semester); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "structure entry deleted"}))
}
