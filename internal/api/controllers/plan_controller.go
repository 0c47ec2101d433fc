package controllers

import (
	"github.com/gin-gonic/gin"

	"botic/internal/models/request_models"
	"botic/internal/services"
	"botic/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// List godoc
// @Summary List plans
// @Tags Plans
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /plan [get]
func (p *PlanController) List(c *gin.Context) {
	plans, err := p.planService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "")
}

// Get godoc
// @Summary Retrieve a plan
// @Tags Plans
// @Produce json
// @Param id path int true "Plan id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plan/{id} [get]
func (p *PlanController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	plan, err := p.planService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "")
}

// Create godoc
// @Summary Create a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /plan [post]
func (p *PlanController) Create(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	plan, err := p.planService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, plan, "Plan created successfully")
}

// Update godoc
// @Summary Update a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan id"
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plan/{id} [put]
func (p *PlanController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	plan, err := p.planService.Update(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// Patch godoc
// @Summary Partially update a plan
// @Tags Plans
// @Accept json
// @Produce json
// @Param id path int true "Plan id"
// @Param request body request_models.PatchPlanRequest true "Plan patch payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /plan/{id} [patch]
func (p *PlanController) Patch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	var req request_models.PatchPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	plan, err := p.planService.Patch(c.Request.Context(), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan updated successfully")
}

// Delete godoc
// @Summary Delete a plan
// @Tags Plans
// @Param id path int true "Plan id"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Router /plan/{id} [delete]
func (p *PlanController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		utils.HandleServiceError(c, utils.ErrPlanNotFound)
		return
	}

	if err := p.planService.Delete(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
