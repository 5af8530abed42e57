package postgres

import (
	"context"

	"github.com/oubasys/portfolio/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository interface {
	List(ctx context.Context) ([]models.AssistantSetting, error)
	Upsert(ctx context.Context, s *models.AssistantSetting) error
}

type settingRepo struct {
	db *gorm.DB
}

func NewSettingRepo(db *gorm.DB) SettingRepository {
	return &settingRepo{db: db}
}

func (r *settingRepo) List(ctx context.Context) ([]models.AssistantSetting, error) {
	var rows []models.AssistantSetting
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *settingRepo) Upsert(ctx context.Context, s *models.AssistantSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(s).Error
}
