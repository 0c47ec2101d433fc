package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
)

type IPlanRepository interface {
	GetAll(ctx context.Context) ([]db_models.Plan, error)
	FindByID(ctx context.Context, id uint) (*db_models.Plan, error)
	Insert(ctx context.Context, plan *db_models.Plan) error
	Save(ctx context.Context, plan *db_models.Plan) error
	Delete(ctx context.Context, id uint) (int64, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) IPlanRepository {
	return &planRepository{db: db}
}

func (p *planRepository) GetAll(ctx context.Context) ([]db_models.Plan, error) {
	var plans []db_models.Plan
	err := p.db.WithContext(ctx).Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (p *planRepository) FindByID(ctx context.Context, id uint) (*db_models.Plan, error) {
	var plan db_models.Plan
	err := p.db.WithContext(ctx).First(&plan, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &plan, nil
}

func (p *planRepository) Insert(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Create(plan).Error
}

func (p *planRepository) Save(ctx context.Context, plan *db_models.Plan) error {
	return p.db.WithContext(ctx).Save(plan).Error
}

func (p *planRepository) Delete(ctx context.Context, id uint) (int64, error) {
	res := p.db.WithContext(ctx).Delete(&db_models.Plan{}, id)
	return res.RowsAffected, res.Error
}
