package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/pkg/apperrors"
)

// HandleAPIError maps service-layer errors onto HTTP responses. The error
// message of the wrapped sentinel (or CustomError) becomes the response
// message so rule failures read the same over the wire as in the logs.
func HandleAPIError(c *gin.Context, err error) {
	var code dto.ErrorCode
	var status int

	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrSubjectNotFound,
		apperrors.ErrRegistrationNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrCurriculumNotFound):
		status, code = http.StatusNotFound, dto.ErrorCodeResourceNotFound

	case apperrors.Is(err, apperrors.ErrResourceAlreadyExists,
		apperrors.ErrStudentIDAlreadyExists,
		apperrors.ErrSubjectAlreadyExists,
		apperrors.ErrUsernameAlreadyExists,
		apperrors.ErrCurriculumAlreadyExists,
		apperrors.ErrAlreadyRegistered):
		status, code = http.StatusConflict, dto.ErrorCodeResourceAlreadyExists

	case apperrors.Is(err, apperrors.ErrInvalidCredentials, apperrors.ErrWrongPassword):
		status, code = http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials

	case errors.Is(err, apperrors.ErrTokenExpired):
		status, code = http.StatusUnauthorized, dto.ErrorCodeExpiredToken

	case apperrors.Is(err, apperrors.ErrTokenInvalid, apperrors.ErrInvalidFormat):
		status, code = http.StatusUnauthorized, dto.ErrorCodeInvalidToken

	case errors.Is(err, apperrors.ErrPermissionDenied):
		status, code = http.StatusForbidden, dto.ErrorCodeForbidden

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrInvalidStudentID,
		apperrors.ErrInvalidSubjectID,
		apperrors.ErrInvalidCurriculumID,
		apperrors.ErrInvalidSemester,
		apperrors.ErrInvalidCredits,
		apperrors.ErrInvalidGrade):
		status, code = http.StatusBadRequest, dto.ErrorCodeValidationFailed

	case apperrors.Is(err, apperrors.ErrBusinessRule,
		apperrors.ErrStudentNotEligible,
		apperrors.ErrPrerequisiteNotTaken,
		apperrors.ErrPrerequisiteNotPassed,
		apperrors.ErrSubjectHasDependents):
		status, code = http.StatusBadRequest, dto.ErrorCodeRuleViolation

	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewAPIErrorResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
		return
	}

	c.JSON(status, dto.NewAPIErrorResponse(dto.NewErrorDetail(code, err.Error())))
}
