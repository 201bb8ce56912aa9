// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/warit/schoolregis/internal/app/models"
	"github.com/warit/schoolregis/internal/app/models/dto"
	"github.com/warit/schoolregis/internal/app/services"
	"github.com/warit/schoolregis/internal/middleware"
	"github.com/warit/schoolregis/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService *services.AuthService
	jwtService  *auth.JWTService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, jwtService *auth.JWTService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		FullName:  user.FullName,
		StudentID: user.StudentID,
	}
}

// Login handles user authentication
// @Summary Log in
// @Description Authenticates a user by username and password and returns a signed access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Authentication successful"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login request payload")
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.authService.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Authentication failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	token, expiresIn, err := c.jwtService.GenerateToken(user)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to sign access token")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("username", user.Username).
		Str("role", string(user.Role)).
		Msg("User logged in")

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   int64(expiresIn),
		},
		User: toUserResponse(user),
	}))
}

// Me returns the authenticated account
// @Summary Current account
// @Description Returns the account information of the authenticated caller.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.UserResponse} "Account information"
// @Failure 401 {object} dto.APIResponse "Authentication required"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextUsername)

	user, err := c.authService.GetUserByUsername(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(toUserResponse(user)))
}

// ChangePassword updates the caller's password
// @Summary Change password
// @Description Replaces the caller's password after verifying the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Password changed"
// @Failure 400 {object} dto.APIResponse "Invalid request format"
// @Failure 401 {object} dto.APIResponse "Wrong current password"
// @Router /auth/password [put]
func (c *AuthController) ChangePassword(ctx *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewAPIErrorResponse(dto.HandleValidationError(err)))
		return
	}

	username := ctx.GetString(middleware.ContextUsername)

	if err := c.authService.ChangePassword(ctx.Request.Context(), username, req.OldPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("username", username).Msg("Password changed")
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "password changed"}))
}
