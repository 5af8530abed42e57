package postgres

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
	"gorm.io/gorm"
)

type ReviewRepository interface {
	ListPublished(ctx context.Context) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	GetByID(ctx context.Context, id uint) (*models.Review, error)
	Create(ctx context.Context, rv *models.Review) error
	SetPublished(ctx context.Context, id uint, published bool) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepo struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) ReviewRepository {
	return &reviewRepo{db: db}
}

func (r *reviewRepo) ListPublished(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Where("is_published = ? AND is_active = ?", true, true).
		Order("created_at desc").
		Find(&rows).Error
	return rows, err
}

func (r *reviewRepo) ListAll(ctx context.Context) ([]models.Review, error) {
	var rows []models.Review
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Find(&rows).Error
	return rows, err
}

func (r *reviewRepo) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	var rv models.Review
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &rv, err
}

func (r *reviewRepo) Create(ctx context.Context, rv *models.Review) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *reviewRepo) SetPublished(ctx context.Context, id uint, published bool) error {
	res := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_published", published)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
