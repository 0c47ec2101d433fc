package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"botic/internal/models/request_models"
	"botic/internal/services"
	"botic/pkg/middleware"
	"botic/pkg/utils"
)

type AppController struct {
	appService services.AppServiceInterface
}

func NewAppController(appService services.AppServiceInterface) *AppController {
	return &AppController{
		appService: appService,
	}
}

// List godoc
// @Summary List apps
// @Tags Apps
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app [get]
func (a *AppController) List(c *gin.Context) {
	apps, err := a.appService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, apps, "")
}

// Get godoc
// @Summary Retrieve an app
// @Tags Apps
// @Produce json
// @Param id path int true "App id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app/{id} [get]
func (a *AppController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAppNotFound)
		return
	}

	app, err := a.appService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, app, "")
}

// Create godoc
// @Summary Register an app
// @Description The authenticated caller becomes the owner regardless of payload
// @Tags Apps
// @Accept json
// @Produce json
// @Param request body request_models.CreateAppRequest true "App payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app [post]
func (a *AppController) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req request_models.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	app, err := a.appService.Create(c.Request.Context(), callerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, app, "App created successfully")
}

// Update godoc
// @Summary Update an app
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param request body request_models.CreateAppRequest true "App payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app/{id} [put]
func (a *AppController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAppNotFound)
		return
	}

	var req request_models.CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	app, err := a.appService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, app, "App updated successfully")
}

// Patch godoc
// @Summary Partially update an app
// @Tags Apps
// @Accept json
// @Produce json
// @Param id path int true "App id"
// @Param request body request_models.PatchAppRequest true "App patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app/{id} [patch]
func (a *AppController) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAppNotFound)
		return
	}

	var req request_models.PatchAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	app, err := a.appService.Patch(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, app, "App updated successfully")
}

// Delete godoc
// @Summary Delete an app
// @Tags Apps
// @Param id path int true "App id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /app/{id} [delete]
func (a *AppController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrAppNotFound)
		return
	}

	if err := a.appService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
