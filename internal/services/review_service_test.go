package services

import (
	"context"
	"testing"
	"time"

	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	"github.com/oubasys/portfolio/internal/utils"
)

type fakeReviewRepo struct {
	rows   map[uint]*models.Review
	nextID uint
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{rows: map[uint]*models.Review{}, nextID: 1}
}

func (f *fakeReviewRepo) ListPublished(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range f.rows {
		if rv.IsPublished && rv.IsActive {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) ListAll(ctx context.Context) ([]models.Review, error) {
	var out []models.Review
	for _, rv := range f.rows {
		out = append(out, *rv)
	}
	return out, nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id uint) (*models.Review, error) {
	rv, ok := f.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	cp := *rv
	return &cp, nil
}

func (f *fakeReviewRepo) Create(ctx context.Context, rv *models.Review) error {
	rv.ID = f.nextID
	f.nextID++
	cp := *rv
	f.rows[rv.ID] = &cp
	return nil
}

func (f *fakeReviewRepo) SetPublished(ctx context.Context, id uint, published bool) error {
	rv, ok := f.rows[id]
	if !ok {
		return utils.ErrNotFound
	}
	rv.IsPublished = published
	return nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.rows[id]; !ok {
		return utils.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func TestReviewCreateStartsUnpublished(t *testing.T) {
	repo := newFakeReviewRepo()
	svc := NewReviewService(repo, cache.NewMemoryCache())
	ctx := context.Background()

	rv := &models.Review{
		Author:      "Alice",
		Content:     "Great work",
		Rating:      0, // out of range, defaults
		IsPublished: true,
		IsActive:    false, // client cannot force flags
	}
	if err := svc.Create(ctx, rv); err != nil {
		t.Fatal(err)
	}

	stored := repo.rows[rv.ID]
	if stored.IsPublished {
		t.Error("new review created already published")
	}
	if !stored.IsActive {
		t.Error("new review created inactive")
	}
	if stored.Rating != 5 {
		t.Errorf("rating = %d, want default 5", stored.Rating)
	}
	if stored.CreatedAt.IsZero() {
		t.Error("created_at not set")
	}
}

func TestReviewCreateValidation(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), cache.NewMemoryCache())
	ctx := context.Background()

	for _, rv := range []*models.Review{
		{Content: "no author"},
		{Author: "no content"},
	} {
		if err := svc.Create(ctx, rv); !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Errorf("Create(%+v) error = %v, want INVALID_ARGUMENT", rv, err)
		}
	}
}

func TestTogglePublishFlipsAndInvalidates(t *testing.T) {
	repo := newFakeReviewRepo()
	store := cache.NewMemoryCache()
	svc := NewReviewService(repo, store)
	ctx := context.Background()

	rv := &models.Review{Author: "Bob", Content: "Nice", Rating: 4}
	if err := svc.Create(ctx, rv); err != nil {
		t.Fatal(err)
	}

	// warm the public cache
	store.SetJSON(ctx, cache.KeyReviews, []models.Review{}, time.Minute)

	out, err := svc.TogglePublish(ctx, rv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !out.IsPublished {
		t.Error("toggle did not publish")
	}
	if repo.rows[rv.ID].IsActive != true {
		t.Error("toggle touched is_active")
	}

	var cached []models.Review
	if hit, _ := store.GetJSON(ctx, cache.KeyReviews, &cached); hit {
		t.Error("published-list cache not invalidated by toggle")
	}

	out, err = svc.TogglePublish(ctx, rv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if out.IsPublished {
		t.Error("second toggle did not unpublish")
	}
}

func TestTogglePublishUnknownReview(t *testing.T) {
	svc := NewReviewService(newFakeReviewRepo(), cache.NewMemoryCache())
	if _, err := svc.TogglePublish(context.Background(), 99); !utils.IsCode(err, utils.CodeNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestListPublishedFiltersInactive(t *testing.T) {
	repo := newFakeReviewRepo()
	repo.rows[1] = &models.Review{ID: 1, Author: "A", Content: "x", IsPublished: true, IsActive: true}
	repo.rows[2] = &models.Review{ID: 2, Author: "B", Content: "y", IsPublished: true, IsActive: false}
	repo.rows[3] = &models.Review{ID: 3, Author: "C", Content: "z", IsPublished: false, IsActive: true}
	repo.nextID = 4

	svc := NewReviewService(repo, cache.NewMemoryCache())
	rows, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Errorf("published list = %+v, want only review 1", rows)
	}
}
