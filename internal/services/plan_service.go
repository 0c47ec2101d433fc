package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/repositories"
	"botic/pkg/utils"
)

type PlanServiceInterface interface {
	List(ctx context.Context) ([]response_models.PlanResponse, error)
	GetByID(ctx context.Context, id uint) (*response_models.PlanResponse, error)
	Create(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	Update(ctx context.Context, id uint, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error)
	Patch(ctx context.Context, id uint, request request_models.PatchPlanRequest) (*response_models.PlanResponse, error)
	Delete(ctx context.Context, id uint) error
}

type PlanService struct {
	planRepo repositories.IPlanRepository
}

func NewPlanService(planRepo repositories.IPlanRepository) PlanServiceInterface {
	return &PlanService{planRepo: planRepo}
}

func (p *PlanService) List(ctx context.Context) ([]response_models.PlanResponse, error) {
	plans, err := p.planRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		result = append(result, planResponse(&plan))
	}
	return result, nil
}

func (p *PlanService) GetByID(ctx context.Context, id uint) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	resp := planResponse(plan)
	return &resp, nil
}

func (p *PlanService) Create(ctx context.Context, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	price, err := utils.ParsePrice("price", request.Price)
	if err != nil {
		return nil, err
	}

	plan := &db_models.Plan{
		Name:        request.Name,
		Description: request.Description,
		Price:       price,
	}

	if err := p.planRepo.Insert(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := planResponse(plan)
	return &resp, nil
}

func (p *PlanService) Update(ctx context.Context, id uint, request request_models.CreatePlanRequest) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	price, err := utils.ParsePrice("price", request.Price)
	if err != nil {
		return nil, err
	}

	plan.Name = request.Name
	plan.Description = request.Description
	plan.Price = price

	if err := p.planRepo.Save(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := planResponse(plan)
	return &resp, nil
}

func (p *PlanService) Patch(ctx context.Context, id uint, request request_models.PatchPlanRequest) (*response_models.PlanResponse, error) {
	plan, err := p.planRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if plan == nil {
		return nil, utils.ErrPlanNotFound
	}

	if request.Name != nil {
		plan.Name = *request.Name
	}
	if request.Description != nil {
		plan.Description = *request.Description
	}
	if request.Price != nil {
		price, err := utils.ParsePrice("price", *request.Price)
		if err != nil {
			return nil, err
		}
		plan.Price = price
	}

	if err := p.planRepo.Save(ctx, plan); err != nil {
		return nil, utils.ErrDatabaseError
	}

	resp := planResponse(plan)
	return &resp, nil
}

func (p *PlanService) Delete(ctx context.Context, id uint) error {
	rows, err := p.planRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return utils.ErrProtectedReference
		}
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrPlanNotFound
	}
	return nil
}

func planResponse(plan *db_models.Plan) response_models.PlanResponse {
	return response_models.PlanResponse{
		ID:          plan.ID,
		Name:        plan.Name,
		Description: plan.Description,
		Price:       plan.Price.StringFixed(2),
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}
