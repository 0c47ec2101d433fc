package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/services"
	"botic/pkg/middleware"
	"botic/pkg/utils"
)

type UserController struct {
	userService services.UserServiceInterface
}

func NewUserController(userService services.UserServiceInterface) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Signup godoc
// @Summary Register a new user
// @Description Create a user from name, email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Signup payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /signup [post]
func (u *UserController) Signup(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	user, err := u.userService.SignUp(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, user, "User created successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticate a user and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /login [post]
func (u *UserController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	token, err := u.userService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.LoginResponse{Token: token}, "Login successful")
}

// Logout godoc
// @Summary Log out
// @Description Tokens are stateless; logout is an acknowledgement for clients discarding theirs
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /logout [post]
func (u *UserController) Logout(c *gin.Context) {
	utils.RespondSuccess(c, nil, "Logged out")
}

// RequestPasswordReset godoc
// @Summary Request a password reset
// @Description Sends a reset link to the given email if it belongs to a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RequestPasswordReset true "Password reset payload"
// @Success 200 {object} utils.APIResponse
// @Router /password-reset [post]
func (u *UserController) RequestPasswordReset(c *gin.Context) {
	var req request_models.RequestPasswordReset
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	if err := u.userService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "If the email exists, a reset link has been sent")
}

// ConfirmPasswordReset godoc
// @Summary Reset the password
// @Description Consumes a single-use reset token and sets the new password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.ConfirmPasswordReset true "Reset confirmation payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /password-reset/confirm [post]
func (u *UserController) ConfirmPasswordReset(c *gin.Context) {
	var req request_models.ConfirmPasswordReset
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	if err := u.userService.ConfirmPasswordReset(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Password has been reset successfully")
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's projection
// @Tags Users
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [get]
func (u *UserController) Me(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	user, err := u.userService.GetByID(c.Request.Context(), callerID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, user, "")
}

// DeleteMe godoc
// @Summary Delete the current user
// @Description Refused with 409 while the user still owns apps
// @Tags Users
// @Produce json
// @Success 204
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /users/me [delete]
func (u *UserController) DeleteMe(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	if err := u.userService.Delete(c.Request.Context(), callerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
