package services

import (
	"context"

	"github.com/oubasys/portfolio/internal/models"
	pgrepo "github.com/oubasys/portfolio/internal/repositories/postgres"
	"github.com/oubasys/portfolio/internal/utils"
)

type SettingsService interface {
	GetAll(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}

type settingsService struct {
	settings pgrepo.SettingRepository
}

func NewSettingsService(settings pgrepo.SettingRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) GetAll(ctx context.Context) (map[string]string, error) {
	const op = "SettingsService.GetAll"

	rows, err := s.settings.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list settings", err)
	}

	out := map[string]string{
		models.SettingSystemPrompt:  "",
		models.SettingCurrentStatus: "",
	}
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

func (s *settingsService) Set(ctx context.Context, key, value string) error {
	const op = "SettingsService.Set"

	if !models.KnownSettingKey(key) {
		return utils.E(utils.CodeInvalidArgument, op, "unknown setting key", nil)
	}

	if err := s.settings.Upsert(ctx, &models.AssistantSetting{Key: key, Value: value}); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to save setting", err)
	}
	return nil
}
