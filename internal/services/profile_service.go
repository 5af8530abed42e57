package services

import (
	"context"
	"errors"
	"time"

	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

const readCacheTTL = 5 * time.Minute

type ProfileService interface {
	Get(ctx context.Context) (*models.Profile, error)
	Save(ctx context.Context, p *models.Profile) error
}

type profileService struct {
	profiles pgrepo.ProfileRepository
	cache    cache.Cache
}

func NewProfileService(profiles pgrepo.ProfileRepository, c cache.Cache) ProfileService {
	return &profileService{profiles: profiles, cache: c}
}

func (s *profileService) Get(ctx context.Context) (*models.Profile, error) {
	const op = "ProfileService.Get"

	var cached models.Profile
	if hit, _ := s.cache.GetJSON(ctx, cache.KeyProfile, &cached); hit {
		return &cached, nil
	}

	p, err := s.profiles.Get(ctx)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
	}

	_ = s.cache.SetJSON(ctx, cache.KeyProfile, p, readCacheTTL)
	return p, nil
}

func (s *profileService) Save(ctx context.Context, p *models.Profile) error {
	const op = "ProfileService.Save"

	if p == nil || p.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}
	if err := s.profiles.Upsert(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save profile", err)
	}

	_ = s.cache.Del(ctx, cache.KeyProfile)
	return nil
}
