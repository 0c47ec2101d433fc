package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
)

type IAppRepository interface {
	GetAll(ctx context.Context) ([]db_models.App, error)
	FindByID(ctx context.Context, id uint) (*db_models.App, error)
	Insert(ctx context.Context, app *db_models.App) error
	Save(ctx context.Context, app *db_models.App) error
	Delete(ctx context.Context, id uint) (int64, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
}

type appRepository struct {
	db *gorm.DB
}

func NewAppRepository(db *gorm.DB) IAppRepository {
	return &appRepository{db: db}
}

func (a *appRepository) GetAll(ctx context.Context) ([]db_models.App, error) {
	var apps []db_models.App
	err := a.db.WithContext(ctx).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (a *appRepository) FindByID(ctx context.Context, id uint) (*db_models.App, error) {
	var app db_models.App
	err := a.db.WithContext(ctx).First(&app, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &app, nil
}

func (a *appRepository) Insert(ctx context.Context, app *db_models.App) error {
	return a.db.WithContext(ctx).Create(app).Error
}

func (a *appRepository) Save(ctx context.Context, app *db_models.App) error {
	return a.db.WithContext(ctx).Save(app).Error
}

func (a *appRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := a.db.WithContext(ctx).Delete(&db_models.App{}, id)
	return res.RowsAffected, res.Error
}

func (a *appRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := a.db.WithContext(ctx).
		Model(&db_models.App{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
