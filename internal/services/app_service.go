package services

import (
	"context"

	"botic/internal/models/db_models"
	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/repositories"
	"botic/pkg/utils"
)

type AppServiceInterface interface {
	List(ctx context.Context) ([]response_models.AppResponse, error)
	GetByID(ctx context.Context, id uint) (*response_models.AppResponse, error)
	Create(ctx context.Context, callerID uint, request request_models.CreateAppRequest) (*response_models.AppResponse, error)
	Update(ctx context.Context, id uint, request request_models.CreateAppRequest) (*response_models.AppResponse, error)
	Patch(ctx context.Context, id uint, request request_models.PatchAppRequest) (*response_models.AppResponse, error)
	Delete(ctx context.Context, id uint) error
}

type AppService struct {
	appRepo repositories.IAppRepository
	subRepo repositories.ISubscriptionRepository
}

func NewAppService(appRepo repositories.IAppRepository, subRepo repositories.ISubscriptionRepository) AppServiceInterface {
	return &AppService{
		appRepo: appRepo,
		subRepo: subRepo,
	}
}

func (a *AppService) List(ctx context.Context) ([]response_models.AppResponse, error) {
	apps, err := a.appRepo.GetAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result := make([]response_models.AppResponse, 0, len(apps))
	for i := range apps {
		resp, err := a.appResponse(ctx, &apps[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

func (a *AppService) GetByID(ctx context.Context, id uint) (*response_models.AppResponse, error) {
	app, err := a.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, utils.ErrAppNotFound
	}
	return a.appResponse(ctx, app)
}

// Create always records the authenticated caller as owner, whatever the
// payload contained.
func (a *AppService) Create(ctx context.Context, callerID uint, request request_models.CreateAppRequest) (*response_models.AppResponse, error) {
	app := &db_models.App{
		Name:        request.Name,
		Description: request.Description,
		Type:        db_models.AppType(request.Type),
		Framework:   db_models.AppFramework(request.Framework),
		DomainName:  request.DomainName,
		Screenshot:  request.Screenshot,
		UserID:      callerID,
	}

	if err := a.appRepo.Insert(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.appResponse(ctx, app)
}

// Update rewrites every writable field. The owner is not writable.
func (a *AppService) Update(ctx context.Context, id uint, request request_models.CreateAppRequest) (*response_models.AppResponse, error) {
	app, err := a.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, utils.ErrAppNotFound
	}

	app.Name = request.Name
	app.Description = request.Description
	app.Type = db_models.AppType(request.Type)
	app.Framework = db_models.AppFramework(request.Framework)
	app.DomainName = request.DomainName
	app.Screenshot = request.Screenshot

	if err := a.appRepo.Save(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.appResponse(ctx, app)
}

func (a *AppService) Patch(ctx context.Context, id uint, request request_models.PatchAppRequest) (*response_models.AppResponse, error) {
	app, err := a.appRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if app == nil {
		return nil, utils.ErrAppNotFound
	}

	if request.Name != nil {
		app.Name = *request.Name
	}
	if request.Description != nil {
		app.Description = *request.Description
	}
	if request.Type != nil {
		app.Type = db_models.AppType(*request.Type)
	}
	if request.Framework != nil {
		app.Framework = db_models.AppFramework(*request.Framework)
	}
	if request.DomainName != nil {
		app.DomainName = *request.DomainName
	}
	if request.Screenshot != nil {
		app.Screenshot = request.Screenshot
	}

	if err := a.appRepo.Save(ctx, app); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return a.appResponse(ctx, app)
}

// Delete removes the app; the database clears app references on
// subscriptions rather than deleting them.
func (a *AppService) Delete(ctx context.Context, id uint) error {
	rows, err := a.appRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if rows == 0 {
		return utils.ErrAppNotFound
	}
	return nil
}

func (a *AppService) appResponse(ctx context.Context, app *db_models.App) (*response_models.AppResponse, error) {
	sub, err := a.subRepo.FindNewestByAppID(ctx, app.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	var subID *uint
	if sub != nil {
		subID = &sub.ID
	}

	return &response_models.AppResponse{
		ID:           app.ID,
		Name:         app.Name,
		Description:  app.Description,
		Type:         string(app.Type),
		Framework:    string(app.Framework),
		DomainName:   app.DomainName,
		Screenshot:   app.Screenshot,
		User:         app.UserID,
		CreatedAt:    app.CreatedAt,
		UpdatedAt:    app.UpdatedAt,
		Subscription: subID,
	}, nil
}
