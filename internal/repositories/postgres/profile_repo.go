package postgres

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	Get(ctx context.Context) (*models.Profile, error)
	Upsert(ctx context.Context, p *models.Profile) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	err := r.db.WithContext(ctx).
		Order("id asc").
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.Profile) error {
	// singleton row: the whole record is replaced on save
	if p.ID == 0 {
		p.ID = 1
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "title", "subtitle", "email", "location", "about_text", "hero_image", "cv_url", "social_links", "updated_at"}),
		}).
		Create(p).Error
}
