package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/repository"
	"github.com/ignatzorin/moderation-backend/internal/validation"
)

// TriggerRegistry описывает зависимости TriggerService от слоя хранилища.
type TriggerRegistry interface {
	List(ctx context.Context) ([]models.TriggerWord, error)
	Create(ctx context.Context, word *models.TriggerWord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TriggerService управляет реестром триггерных фраз.
type TriggerService struct {
	repo TriggerRegistry
}

func NewTriggerService(repo TriggerRegistry) *TriggerService {
	return &TriggerService{repo: repo}
}

// List возвращает текущий список фраз.
func (s *TriggerService) List(ctx context.Context) ([]models.TriggerWord, error) {
	return s.repo.List(ctx)
}

// Add добавляет фразу. Дубликат (без учёта регистра) — ошибка
// repository.ErrDuplicateTriggerWord.
func (s *TriggerService) Add(ctx context.Context, word, category string) (*models.TriggerWord, error) {
	word = strings.TrimSpace(word)
	category = strings.TrimSpace(category)

	if word == "" {
		return nil, fmt.Errorf("trigger service: фраза обязательна")
	}
	if err := validation.ValidateLength("word", word, 1, validation.MaxTriggerWordLength); err != nil {
		return nil, fmt.Errorf("trigger service: %w", err)
	}
	if err := validation.ValidateLength("category", category, 0, validation.MaxCategoryLength); err != nil {
		return nil, fmt.Errorf("trigger service: %w", err)
	}

	trigger := &models.TriggerWord{
		Word:     word,
		Category: category,
	}
	if err := s.repo.Create(ctx, trigger); err != nil {
		if errors.Is(err, repository.ErrDuplicateTriggerWord) {
			return nil, err
		}
		return nil, fmt.Errorf("trigger service: не удалось сохранить фразу: %w", err)
	}
	return trigger, nil
}

// Remove удаляет фразу по ID.
func (s *TriggerService) Remove(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
