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

type ReviewService interface {
	ListPublished(ctx context.Context) ([]models.Review, error)
	ListAll(ctx context.Context) ([]models.Review, error)
	Create(ctx context.Context, rv *models.Review) error
	TogglePublish(ctx context.Context, id uint) (*models.Review, error)
	Delete(ctx context.Context, id uint) error
}

type reviewService struct {
	reviews pgrepo.ReviewRepository
	cache   cache.Cache
}

func NewReviewService(reviews pgrepo.ReviewRepository, c cache.Cache) ReviewService {
	return &reviewService{reviews: reviews, cache: c}
}

func (s *reviewService) ListPublished(ctx context.Context) ([]models.Review, error) {
	const op = "ReviewService.ListPublished"

	var cached []models.Review
	if hit, _ := s.cache.GetJSON(ctx, cache.KeyReviews, &cached); hit {
		return cached, nil
	}

	rows, err := s.reviews.ListPublished(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list reviews", err)
	}

	_ = s.cache.SetJSON(ctx, cache.KeyReviews, rows, readCacheTTL)
	return rows, nil
}

func (s *reviewService) ListAll(ctx context.Context) ([]models.Review, error) {
	const op = "ReviewService.ListAll"

	rows, err := s.reviews.ListAll(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list reviews", err)
	}
	return rows, nil
}

func (s *reviewService) Create(ctx context.Context, rv *models.Review) error {
	const op = "ReviewService.Create"

	if rv == nil || rv.Author == "" || rv.Content == "" {
		return utils.E(utils.CodeInvalidArgument, op, "author and content are required", nil)
	}
	if rv.Rating < 1 || rv.Rating > 5 {
		rv.Rating = 5
	}

	// Visitor submissions go live only after the admin publishes them.
	rv.IsActive = true
	rv.IsPublished = false
	if rv.CreatedAt.IsZero() {
		rv.CreatedAt = time.Now().UTC()
	}

	if err := s.reviews.Create(ctx, rv); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create review", err)
	}
	return nil
}

func (s *reviewService) TogglePublish(ctx context.Context, id uint) (*models.Review, error) {
	const op = "ReviewService.TogglePublish"

	rv, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "review not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load review", err)
	}

	if err := s.reviews.SetPublished(ctx, id, !rv.IsPublished); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to toggle publish", err)
	}
	rv.IsPublished = !rv.IsPublished

	_ = s.cache.Del(ctx, cache.KeyReviews)
	return rv, nil
}

func (s *reviewService) Delete(ctx context.Context, id uint) error {
	const op = "ReviewService.Delete"

	if err := s.reviews.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "review not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete review", err)
	}

	_ = s.cache.Del(ctx, cache.KeyReviews)
	return nil
}
