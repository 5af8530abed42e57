package services

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

type ExperienceService interface {
	List(ctx context.Context) ([]models.Experience, error)
	Create(ctx context.Context, e *models.Experience) error
	Update(ctx context.Context, e *models.Experience) error
	Delete(ctx context.Context, id uint) error
}

type experienceService struct {
	experiences pgrepo.ExperienceRepository
	cache       cache.Cache
}

func NewExperienceService(experiences pgrepo.ExperienceRepository, c cache.Cache) ExperienceService {
	return &experienceService{experiences: experiences, cache: c}
}

func (s *experienceService) List(ctx context.Context) ([]models.Experience, error) {
	const op = "ExperienceService.List"

	var cached []models.Experience
	if hit, _ := s.cache.GetJSON(ctx, cache.KeyExperiences, &cached); hit {
		return cached, nil
	}

	rows, err := s.experiences.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list experiences", err)
	}

	_ = s.cache.SetJSON(ctx, cache.KeyExperiences, rows, readCacheTTL)
	return rows, nil
}

func (s *experienceService) Create(ctx context.Context, e *models.Experience) error {
	const op = "ExperienceService.Create"

	if e == nil || e.Role == "" || e.Company == "" || e.Period == "" {
		return utils.E(utils.CodeInvalidArgument, op, "role, company, and period are required", nil)
	}

	if err := s.experiences.Create(ctx, e); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create experience", err)
	}

	_ = s.cache.Del(ctx, cache.KeyExperiences)
	return nil
}

func (s *experienceService) Update(ctx context.Context, e *models.Experience) error {
	const op = "ExperienceService.Update"

	if e == nil || e.ID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if e.Role == "" || e.Company == "" || e.Period == "" {
		return utils.E(utils.CodeInvalidArgument, op, "role, company, and period are required", nil)
	}

	existing, err := s.experiences.GetByID(ctx, e.ID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load experience", err)
	}

	// The type tag decides which public view the row belongs to; an edit that
	// omits it must not move the row between views.
	if e.Type == "" {
		e.Type = existing.Type
	}

	if err := s.experiences.Update(ctx, e); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update experience", err)
	}

	_ = s.cache.Del(ctx, cache.KeyExperiences)
	return nil
}

func (s *experienceService) Delete(ctx context.Context, id uint) error {
	const op = "ExperienceService.Delete"

	if err := s.experiences.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "experience not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete experience", err)
	}

	_ = s.cache.Del(ctx, cache.KeyExperiences)
	return nil
}
