package services

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

type SkillService interface {
	List(ctx context.Context) ([]models.Skill, error)
	Create(ctx context.Context, sk *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

type skillService struct {
	skills pgrepo.SkillRepository
	cache  cache.Cache
}

func NewSkillService(skills pgrepo.SkillRepository, c cache.Cache) SkillService {
	return &skillService{skills: skills, cache: c}
}

func (s *skillService) List(ctx context.Context) ([]models.Skill, error) {
	const op = "SkillService.List"

	var cached []models.Skill
	if hit, _ := s.cache.GetJSON(ctx, cache.KeySkills, &cached); hit {
		return cached, nil
	}

	rows, err := s.skills.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list skills", err)
	}

	_ = s.cache.SetJSON(ctx, cache.KeySkills, rows, readCacheTTL)
	return rows, nil
}

func (s *skillService) Create(ctx context.Context, sk *models.Skill) error {
	const op = "SkillService.Create"

	if sk == nil || sk.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if sk.Category == "" {
		sk.Category = "Other"
	}
	if sk.Icon == "" {
		sk.Icon = models.IconCode
	}

	if err := s.skills.Create(ctx, sk); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create skill", err)
	}

	_ = s.cache.Del(ctx, cache.KeySkills)
	return nil
}

func (s *skillService) Delete(ctx context.Context, id uint) error {
	const op = "SkillService.Delete"

	if err := s.skills.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "skill not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete skill", err)
	}

	_ = s.cache.Del(ctx, cache.KeySkills)
	return nil
}
