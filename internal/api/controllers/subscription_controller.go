package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"botic/internal/models/request_models"
	"botic/internal/services"
	"botic/pkg/middleware"
	"botic/pkg/utils"
)

type SubscriptionController struct {
	subscriptionService services.SubscriptionServiceInterface
}

func NewSubscriptionController(subscriptionService services.SubscriptionServiceInterface) *SubscriptionController {
	return &SubscriptionController{
		subscriptionService: subscriptionService,
	}
}

// List godoc
// @Summary List subscriptions
// @Tags Subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [get]
func (s *SubscriptionController) List(c *gin.Context) {
	subs, err := s.subscriptionService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, subs, "")
}

// Get godoc
// @Summary Retrieve a subscription
// @Tags Subscriptions
// @Produce json
// @Param id path int true "Subscription id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/{id} [get]
func (s *SubscriptionController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSubscriptionNotFound)
		return
	}

	sub, err := s.subscriptionService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "")
}

// Create godoc
// @Summary Subscribe to a plan
// @Description The authenticated caller becomes the owner; a plan carries at most one subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription [post]
func (s *SubscriptionController) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authorization required")
		return
	}

	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	sub, err := s.subscriptionService.Create(c.Request.Context(), callerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, sub, "Subscription created successfully")
}

// Update godoc
// @Summary Update a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription id"
// @Param request body request_models.CreateSubscriptionRequest true "Subscription payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/{id} [put]
func (s *SubscriptionController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSubscriptionNotFound)
		return
	}

	var req request_models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	sub, err := s.subscriptionService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription updated successfully")
}

// Patch godoc
// @Summary Partially update a subscription
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param id path int true "Subscription id"
// @Param request body request_models.PatchSubscriptionRequest true "Subscription patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/{id} [patch]
func (s *SubscriptionController) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSubscriptionNotFound)
		return
	}

	var req request_models.PatchSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	sub, err := s.subscriptionService.Patch(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, sub, "Subscription updated successfully")
}

// Delete godoc
// @Summary Cancel a subscription
// @Tags Subscriptions
// @Param id path int true "Subscription id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /subscription/{id} [delete]
func (s *SubscriptionController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSubscriptionNotFound)
		return
	}

	if err := s.subscriptionService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
