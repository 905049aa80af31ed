package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/moderation-backend/internal/logger"
	"github.com/ignatzorin/moderation-backend/internal/models"
	"github.com/ignatzorin/moderation-backend/internal/moderation"
	"github.com/ignatzorin/moderation-backend/internal/pkg/apperror"
	"github.com/ignatzorin/moderation-backend/internal/repository"
)

// Политики intake: писать запись только при сработавшем флаге или всегда.
const (
	IntakePolicyRecordIfFlagged = "record-if-flagged"
	IntakePolicyRecordAlways    = "record-always"
)

// FlaggedStore описывает зависимости ModerationService от хранилища
// flagged записей.
type FlaggedStore interface {
	Create(ctx context.Context, rec *models.FlaggedContent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FlaggedContent, error)
	List(ctx context.Context, filter repository.FlaggedFilter) ([]models.FlaggedContent, error)
	SetDecision(ctx context.Context, id uuid.UUID, reviewed, visible bool) (*models.FlaggedContent, error)
}

// TriggerSource отдаёт актуальный список триггерных фраз для сканера.
type TriggerSource interface {
	List(ctx context.Context) ([]models.TriggerWord, error)
}

// Projector применяет решение о видимости к документу внешнего хранилища.
type Projector interface {
	UpdateVisibility(ctx context.Context, path string, visible, reviewed bool) error
}

// ModerationConfig — настройки workflow модерации.
type ModerationConfig struct {
	IntakePolicy      string
	ProjectionEnabled bool
}

// ModerationService оркестрирует приём контента (скан + запись) и
// применение решений ревьюера (локальная мутация + проекция во внешнее
// хранилище).
type ModerationService struct {
	flagged   FlaggedStore
	triggers  TriggerSource
	projector Projector
	cfg       ModerationConfig

	// Последовательность решений по одной записи: конкурентные
	// ApplyDecision по одному id не должны перемешивать локальную и
	// внешнюю запись.
	locksMu sync.Mutex
	locks   map[uuid.UUID]*recordLock
}

type recordLock struct {
	mu   sync.Mutex
	refs int
}

// NewModerationService создаёт workflow модерации. projector может быть
// nil — тогда проекция считается выключенной.
func NewModerationService(flagged FlaggedStore, triggers TriggerSource, projector Projector, cfg ModerationConfig) *ModerationService {
	if cfg.IntakePolicy == "" {
		cfg.IntakePolicy = IntakePolicyRecordIfFlagged
	}
	return &ModerationService{
		flagged:   flagged,
		triggers:  triggers,
		projector: projector,
		cfg:       cfg,
		locks:     make(map[uuid.UUID]*recordLock),
	}
}

// IntakeResult — итог приёма контента: результат скана и созданная
// запись (nil, если политика не потребовала записи).
type IntakeResult struct {
	Scan   moderation.ScanResult
	Record *models.FlaggedContent
}

// Intake сканирует контент по текущему снапшоту реестра и, в зависимости
// от политики, создаёт flagged запись. Сам скан побочных эффектов не имеет.
func (s *ModerationService) Intake(ctx context.Context, in moderation.FlagInput) (*IntakeResult, error) {
	words, err := s.triggers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("moderation service: не удалось прочитать реестр фраз: %w", err)
	}

	result := &IntakeResult{Scan: moderation.Scan(in.Content, words)}

	if !result.Scan.Flagged && s.cfg.IntakePolicy != IntakePolicyRecordAlways {
		return result, nil
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	rec := in.Record()
	if err := s.flagged.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("moderation service: не удалось сохранить запись: %w", err)
	}
	result.Record = rec

	return result, nil
}

// Get возвращает flagged запись по ID.
func (s *ModerationService) Get(ctx context.Context, id uuid.UUID) (*models.FlaggedContent, error) {
	return s.flagged.GetByID(ctx, id)
}

// List возвращает flagged записи по фильтру в порядке создания.
func (s *ModerationService) List(ctx context.Context, filter repository.FlaggedFilter) ([]models.FlaggedContent, error) {
	return s.flagged.List(ctx, filter)
}

// DecisionResult — итог применения решения. Record отражает состояние
// локального хранилища после мутации; Projected говорит, дошла ли
// проекция до внешнего хранилища.
type DecisionResult struct {
	Record    *models.FlaggedContent
	Path      string
	Projected bool
}

// ApplyDecision применяет решение ревьюера к записи: сначала фиксирует
// reviewed=true и видимость в локальном хранилище, затем проецирует их
// во внешнее. Локальная запись — источник истины и никогда не
// откатывается из-за сбоя проекции: при частичном успехе возвращаются
// и результат (с применённой локальной мутацией), и ошибка
// EXTERNAL_WRITE с путём и причиной для повтора или ручной сверки.
// Автоматических повторов нет.
func (s *ModerationService) ApplyDecision(ctx context.Context, id uuid.UUID, visible bool) (*DecisionResult, error) {
	unlock := s.lockRecord(id)
	defer unlock()

	if _, err := s.flagged.GetByID(ctx, id); err != nil {
		return nil, err
	}

	rec, err := s.flagged.SetDecision(ctx, id, true, visible)
	if err != nil {
		return nil, err
	}

	result := &DecisionResult{Record: rec}

	path, err := moderation.ResolvePath(rec)
	if err != nil {
		// Недостижимо при корректной валидации на создании — сигнал бага.
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"record_id":   rec.ID,
				"parent_type": rec.ParentType,
			}).Error("несогласованная цепочка идентификаторов flagged записи")
		}
		return result, apperror.Wrap(err, apperror.ErrCodeInvalidHierarchy, "не удалось построить путь документа")
	}
	result.Path = path

	if s.projector == nil || !s.cfg.ProjectionEnabled {
		return result, nil
	}

	if err := s.projector.UpdateVisibility(ctx, path, visible, true); err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(logrus.Fields{
				"record_id": rec.ID,
				"path":      path,
				"error":     err.Error(),
			}).Warn("решение применено локально, но проекция во внешнее хранилище не удалась")
		}
		return result, apperror.ExternalWrite(path, err)
	}
	result.Projected = true

	return result, nil
}

// lockRecord берёт мьютекс конкретной записи и возвращает функцию
// освобождения. Запись в карте живёт, пока на неё есть ссылки.
func (s *ModerationService) lockRecord(id uuid.UUID) func() {
	s.locksMu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &recordLock{}
		s.locks[id] = l
	}
	l.refs++
	s.locksMu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		s.locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.locksMu.Unlock()
	}
}
