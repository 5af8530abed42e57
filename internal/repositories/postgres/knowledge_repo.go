package postgres

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
	"gorm.io/gorm"
)

type KnowledgeRepository interface {
	List(ctx context.Context) ([]models.KnowledgeItem, error)
	GetByID(ctx context.Context, id uint) (*models.KnowledgeItem, error)
	Create(ctx context.Context, k *models.KnowledgeItem) error
	Update(ctx context.Context, k *models.KnowledgeItem) error
	Delete(ctx context.Context, id uint) error
}

type knowledgeRepo struct {
	db *gorm.DB
}

func NewKnowledgeRepo(db *gorm.DB) KnowledgeRepository {
	return &knowledgeRepo{db: db}
}

func (r *knowledgeRepo) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	var rows []models.KnowledgeItem
	err := r.db.WithContext(ctx).Order("id asc").Find(&rows).Error
	return rows, err
}

func (r *knowledgeRepo) GetByID(ctx context.Context, id uint) (*models.KnowledgeItem, error) {
	var k models.KnowledgeItem
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &k, err
}

func (r *knowledgeRepo) Create(ctx context.Context, k *models.KnowledgeItem) error {
	return r.db.WithContext(ctx).Create(k).Error
}

func (r *knowledgeRepo) Update(ctx context.Context, k *models.KnowledgeItem) error {
	return r.db.WithContext(ctx).Save(k).Error
}

func (r *knowledgeRepo) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.KnowledgeItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
