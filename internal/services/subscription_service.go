package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/repositories"
	"botic/pkg/utils"
)

type SubscriptionServiceInterface interface {
	List(ctx context.Context) ([]response_models.SubscriptionResponse, error)
	GetByID(ctx context.Context, id uint) (*response_models.SubscriptionResponse, error)
	Create(ctx context.Context, callerID uint, request request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	Update(ctx context.Context, id uint, request request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	Patch(ctx context.Context, id uint, request request_models.PatchSubscriptionRequest) (*response_models.SubscriptionResponse, error)
	Delete(ctx context.Context, id uint) error
}

type SubscriptionService struct {
	subRepo  repositories.ISubscriptionRepository
	planRepo repositories.IPlanRepository
	appRepo  repositories.IAppRepository
}

func NewSubscriptionService(
	subRepo repositories.ISubscriptionRepository,
	planRepo repositories.IPlanRepository,
	appRepo repositories.IAppRepository,
) SubscriptionServiceInterface {
	return &SubscriptionService{
		subRepo:  subRepo,
		planRepo: planRepo,
		appRepo:  appRepo,
	}
}

func (s *SubscriptionService) List(ctx context.Context) ([]response_models.SubscriptionResponse, error) {
	subs, err := s.subRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.SubscriptionResponse, 0, len(subs))
	for i := range subs {
		result = append(result, subscriptionResponse(&subs[i]))
	}
	return result, nil
}

func (s *SubscriptionService) GetByID(ctx context.Context, id uint) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	resp := subscriptionResponse(sub)
	return &resp, nil
}

// Create binds the authenticated caller as owner. The app reference
// only has to exist, it is not restricted to the caller's own apps.
func (s *SubscriptionService) Create(ctx context.Context, callerID uint, request request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	if err := s.checkPlan(ctx, request.Plan, 0); err != nil {
		return nil, err
	}
	if err := s.checkApp(ctx, request.App); err != nil {
		return nil, err
	}

	sub := &db_models.Subscription{
		UserID: callerID,
		PlanID: request.Plan,
		AppID:  request.App,
		Active: *request.Active,
	}

	if err := s.subRepo.Insert(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlanAlreadySubscribed
		}
		return nil, utils.ErrDatabaseError
	}

	resp := subscriptionResponse(sub)
	return &resp, nil
}

// Update rewrites plan, app and active. The owner never changes, even
// when a "user" key is present in the payload.
func (s *SubscriptionService) Update(ctx context.Context, id uint, request request_models.CreateSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	if err := s.checkPlan(ctx, request.Plan, sub.ID); err != nil {
		return nil, err
	}
	if err := s.checkApp(ctx, request.App); err != nil {
		return nil, err
	}

	sub.PlanID = request.Plan
	sub.AppID = request.App
	sub.Active = *request.Active

	if err := s.subRepo.Save(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlanAlreadySubscribed
		}
		return nil, utils.ErrDatabaseError
	}

	resp := subscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) Patch(ctx context.Context, id uint, request request_models.PatchSubscriptionRequest) (*response_models.SubscriptionResponse, error) {
	sub, err := s.subRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sub == nil {
		return nil, utils.ErrSubscriptionNotFound
	}

	if request.Plan != nil {
		if err := s.checkPlan(ctx, *request.Plan, sub.ID); err != nil {
			return nil, err
		}
		sub.PlanID = *request.Plan
	}
	if request.App != nil {
		if err := s.checkApp(ctx, request.App); err != nil {
			return nil, err
		}
		sub.AppID = request.App
	}
	if request.Active != nil {
		sub.Active = *request.Active
	}

	if err := s.subRepo.Save(ctx, sub); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrPlanAlreadySubscribed
		}
		return nil, utils.ErrDatabaseError
	}

	resp := subscriptionResponse(sub)
	return &resp, nil
}

func (s *SubscriptionService) Delete(ctx context.Context, id uint) error {
	rows, err := s.subRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrSubscriptionNotFound
	}
	return nil
}

// checkPlan verifies the referenced plan exists and is not already taken
// by another subscription. ownSubID is 0 on create.
func (s *SubscriptionService) checkPlan(ctx context.Context, planID uint, ownSubID uint) error {
	plan, err := s.planRepo.FindByID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if plan == nil {
		return utils.NewValidationError("plan",
			fmt.Sprintf("Invalid pk %d - object does not exist.", planID))
	}

	existing, err := s.subRepo.FindByPlanID(ctx, planID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.ID != ownSubID {
		return utils.ErrPlanAlreadySubscribed
	}
	return nil
}

func (s *SubscriptionService) checkApp(ctx context.Context, appID *uint) error {
	if appID == nil {
		return nil
	}

	app, err := s.appRepo.FindByID(ctx, *appID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if app == nil {
		return utils.NewValidationError("app",
			fmt.Sprintf("Invalid pk %d - object does not exist.", *appID))
	}
	return nil
}

func subscriptionResponse(sub *db_models.Subscription) response_models.SubscriptionResponse {
	return response_models.SubscriptionResponse{
		ID:        sub.ID,
		User:      sub.UserID,
		Plan:      sub.PlanID,
		App:       sub.AppID,
		Active:    sub.Active,
		CreatedAt: sub.CreatedAt,
		UpdatedAt: sub.UpdatedAt,
	}
}
