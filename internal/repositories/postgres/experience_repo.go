package postgres

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	List(ctx context.Context) ([]models.Experience, error)
	GetByID(ctx context.Context, id uint) (*models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

type experienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) ExperienceRepository {
	return &experienceRepo{db: db}
}

func (r *experienceRepo) List(ctx context.Context) ([]models.Experience, error) {
	var rows []models.Experience
	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&rows).Error
	return rows, err
}

func (r *experienceRepo) GetByID(ctx context.Context, id uint) (*models.Experience, error) {
	var e models.Experience
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *experienceRepo) Create(ctx context.Context, e *models.Experience) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *experienceRepo) Update(ctx context.Context, e *models.Experience) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *experienceRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Experience{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
