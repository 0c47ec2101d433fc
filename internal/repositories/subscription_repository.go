package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
)

type ISubscriptionRepository interface {
	GetAll(ctx context.Context) ([]db_models.Subscription, error)
	FindByID(ctx context.Context, id uint) (*db_models.Subscription, error)
	FindByPlanID(ctx context.Context, planID uint) (*db_models.Subscription, error)
	FindNewestByAppID(ctx context.Context, appID uint) (*db_models.Subscription, error)
	Insert(ctx context.Context, sub *db_models.Subscription) error
	Save(ctx context.Context, sub *db_models.Subscription) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type subscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) ISubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (s *subscriptionRepository) GetAll(ctx context.Context) ([]db_models.Subscription, error) {
	var subs []db_models.Subscription
	err := s.db.WithContext(ctx).Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *subscriptionRepository) FindByID(ctx context.Context, id uint) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) FindByPlanID(ctx context.Context, planID uint) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).First(&sub, "plan_id = ?", planID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

// FindNewestByAppID resolves the derived subscription field on apps: the
// most recently created subscription that references the app.
func (s *subscriptionRepository) FindNewestByAppID(ctx context.Context, appID uint) (*db_models.Subscription, error) {
	var sub db_models.Subscription
	err := s.db.WithContext(ctx).
		Where("app_id = ?", appID).
		Order("created_at DESC").
		First(&sub).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &sub, nil
}

func (s *subscriptionRepository) Insert(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).Create(sub).Error
}

func (s *subscriptionRepository) Save(ctx context.Context, sub *db_models.Subscription) error {
	return s.db.WithContext(ctx).Save(sub).Error
}

func (s *subscriptionRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&db_models.Subscription{}, id)
	return res.RowsAffected, res.Error
}
