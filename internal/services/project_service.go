package services

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/cache"
	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

type ProjectService interface {
	List(ctx context.Context) ([]models.Project, error)
	Create(ctx context.Context, p *models.Project) error
	Update(ctx context.Context, p *models.Project) error
	Delete(ctx context.Context, id uint) error
}

type projectService struct {
	projects pgrepo.ProjectRepository
	cache    cache.Cache
}

func NewProjectService(projects pgrepo.ProjectRepository, c cache.Cache) ProjectService {
	return &projectService{projects: projects, cache: c}
}

func (s *projectService) List(ctx context.Context) ([]models.Project, error) {
	const op = "ProjectService.List"

	var cached []models.Project
	if hit, _ := s.cache.GetJSON(ctx, cache.KeyProjects, &cached); hit {
		return cached, nil
	}

	rows, err := s.projects.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list projects", err)
	}

	_ = s.cache.SetJSON(ctx, cache.KeyProjects, rows, readCacheTTL)
	return rows, nil
}

func (s *projectService) Create(ctx context.Context, p *models.Project) error {
	const op = "ProjectService.Create"

	if p == nil || p.Title == "" || p.Description == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title and description are required", nil)
	}

	if err := s.projects.Create(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create project", err)
	}

	_ = s.cache.Del(ctx, cache.KeyProjects)
	return nil
}

func (s *projectService) Update(ctx context.Context, p *models.Project) error {
	const op = "ProjectService.Update"

	if p == nil || p.ID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if p.Title == "" || p.Description == "" {
		return utils.E(utils.CodeInvalidArgument, op, "title and description are required", nil)
	}

	if _, err := s.projects.GetByID(ctx, p.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load project", err)
	}

	if err := s.projects.Update(ctx, p); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update project", err)
	}

	_ = s.cache.Del(ctx, cache.KeyProjects)
	return nil
}

func (s *projectService) Delete(ctx context.Context, id uint) error {
	const op = "ProjectService.Delete"

	if err := s.projects.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "project not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete project", err)
	}

	_ = s.cache.Del(ctx, cache.KeyProjects)
	return nil
}
