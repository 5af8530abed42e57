package services

import (
	"context"
	"errors"

	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

type KnowledgeService interface {
	List(ctx context.Context) ([]models.KnowledgeItem, error)
	Create(ctx context.Context, k *models.KnowledgeItem) error
	Update(ctx context.Context, k *models.KnowledgeItem) error
	Delete(ctx context.Context, id uint) error
}

type knowledgeService struct {
	knowledge pgrepo.KnowledgeRepository
}

func NewKnowledgeService(knowledge pgrepo.KnowledgeRepository) KnowledgeService {
	return &knowledgeService{knowledge: knowledge}
}

func (s *knowledgeService) List(ctx context.Context) ([]models.KnowledgeItem, error) {
	const op = "KnowledgeService.List"

	rows, err := s.knowledge.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list knowledge items", err)
	}
	return rows, nil
}

func (s *knowledgeService) Create(ctx context.Context, k *models.KnowledgeItem) error {
	const op = "KnowledgeService.Create"

	if k == nil || k.Question == "" || k.Answer == "" {
		return utils.E(utils.CodeInvalidArgument, op, "question and answer are required", nil)
	}
	if err := s.knowledge.Create(ctx, k); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create knowledge item", err)
	}
	return nil
}

func (s *knowledgeService) Update(ctx context.Context, k *models.KnowledgeItem) error {
	const op = "KnowledgeService.Update"

	if k == nil || k.ID == 0 {
		return utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}
	if k.Question == "" || k.Answer == "" {
		return utils.E(utils.CodeInvalidArgument, op, "question and answer are required", nil)
	}

	if _, err := s.knowledge.GetByID(ctx, k.ID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "knowledge item not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load knowledge item", err)
	}

	if err := s.knowledge.Update(ctx, k); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update knowledge item", err)
	}
	return nil
}

func (s *knowledgeService) Delete(ctx context.Context, id uint) error {
	const op = "KnowledgeService.Delete"

	if err := s.knowledge.Delete(ctx, id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "knowledge item not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete knowledge item", err)
	}
	return nil
}
