package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-redemption/internal/broker"
	"github.com/denmor86/ya-redemption/internal/config"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/storage"
	"github.com/denmor86/ya-redemption/internal/throttle"
	"github.com/denmor86/ya-redemption/internal/validators"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Rules - правила создания заявок и расчёта суммы выплаты
type Rules struct {
	MinPoints  int64
	PointValue decimal.Decimal
	Currency   string
}

// NewRules - правила из настроек сервиса
func NewRules(cfg config.RedemptionConfig) (Rules, error) {
	value, err := decimal.NewFromString(cfg.PointValue)
	if err != nil {
		return Rules{}, fmt.Errorf("invalid point value %q: %w", cfg.PointValue, err)
	}
	if !value.IsPositive() {
		return Rules{}, fmt.Errorf("point value must be positive, got %s", cfg.PointValue)
	}
	return Rules{MinPoints: cfg.MinPoints, PointValue: value, Currency: cfg.Currency}, nil
}

type Redemptions struct {
	Storage   storage.RedemptionsStorage
	Ledger    LedgerService
	Publisher broker.Publisher
	Throttle  throttle.Limiter
	Rules     Rules
	Now       func() time.Time
}

// NewRedemptions - создание сервиса. throttle может быть nil.
func NewRedemptions(storage storage.RedemptionsStorage, ledger LedgerService, publisher broker.Publisher, limiter throttle.Limiter, rules Rules) *Redemptions {
	return &Redemptions{
		Storage:   storage,
		Ledger:    ledger,
		Publisher: publisher,
		Throttle:  limiter,
		Rules:     rules,
		Now:       time.Now,
	}
}

// CreateRedemption проверяет запрос, списывает баллы и создаёт заявку в статусе pending
func (s *Redemptions) CreateRedemption(ctx context.Context, earnerID string, request models.RedemptionRequest) (*models.Redemption, error) {
	if request.Points <= 0 || request.Points < s.Rules.MinPoints {
		return nil, ErrBelowMinimumPoints
	}
	if !request.Method.Valid() {
		return nil, ErrInvalidMethodForDestination
	}
	if _, ok := validators.ParseDestination(request.Method, request.Destination); !ok {
		return nil, ErrInvalidMethodForDestination
	}

	if s.Throttle != nil {
		allowed, retryAfter, err := s.Throttle.Allow(ctx, earnerID)
		if err != nil {
			// без Redis работаем без ограничения
			logger.Warn("Redemption throttle unavailable:", err)
		} else if !allowed {
			logger.Warn("Too many redemption requests", earnerID, retryAfter)
			return nil, ErrTooManyRequests
		}
	}

	earner, err := s.Ledger.GetBalance(ctx, earnerID)
	if err != nil {
		return nil, err
	}
	if earner.Available() < request.Points {
		return nil, ErrInsufficientPoints
	}

	redemption := models.Redemption{
		ID:          uuid.NewString(),
		EarnerID:    earnerID,
		Points:      request.Points,
		Method:      request.Method,
		Destination: request.Destination,
		Status:      models.RedemptionStatusPending,
		CreatedAt:   s.Now().UTC(),
	}
	redemption.UpdatedAt = redemption.CreatedAt

	// списание и вставка заявки атомарны: баланс мог измениться после проверки выше
	if err := s.Storage.AddRedemption(ctx, redemption); err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientPoints):
			return nil, ErrInsufficientPoints
		case errors.Is(err, storage.ErrEarnerNotFound):
			return nil, ErrEarnerNotFound
		}
		logger.Error("Failed to add redemption", zap.Error(err))
		return nil, err
	}

	logger.Infow("Redemption created",
		"redemption_id", redemption.ID,
		"earner_id", earnerID,
		"points", redemption.Points,
		"method", redemption.Method,
	)
	s.publish(ctx, redemption, "created", "")
	return &redemption, nil
}

// GetRedemption возвращает заявку держателя. Чужая заявка не отличается от несуществующей.
func (s *Redemptions) GetRedemption(ctx context.Context, earnerID string, id string) (*models.Redemption, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrRedemptionNotFound
	}
	redemption, err := s.Storage.GetRedemption(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrRedemptionNotFound) {
			return nil, ErrRedemptionNotFound
		}
		logger.Error("Failed to get redemption", zap.Error(err))
		return nil, err
	}
	if redemption.EarnerID != earnerID {
		return nil, ErrRedemptionNotFound
	}
	return redemption, nil
}

// GetRedemptions возвращает заявки держателя, новые первыми
func (s *Redemptions) GetRedemptions(ctx context.Context, earnerID string) ([]models.Redemption, error) {
	redemptions, err := s.Storage.GetRedemptions(ctx, earnerID)
	if err != nil {
		logger.Error("Failed to get redemptions:", zap.Error(err))
		return nil, err
	}
	return redemptions, nil
}

// ClaimPending - захват пачки заявок pending на время lease
func (s *Redemptions) ClaimPending(ctx context.Context, count int, lease time.Duration) ([]models.Redemption, error) {
	return s.Storage.ClaimPendingRedemptions(ctx, count, lease)
}

// BuildPayout - данные выплаты по заявке: реквизиты и сумма в валюте
func (s *Redemptions) BuildPayout(redemption models.Redemption) (models.Payout, error) {
	payee, ok := validators.ParseDestination(redemption.Method, redemption.Destination)
	if !ok {
		return models.Payout{}, ErrInvalidMethodForDestination
	}
	return models.Payout{
		RedemptionID: redemption.ID,
		Method:       redemption.Method,
		Payee:        payee,
		Amount:       decimal.NewFromInt(redemption.Points).Mul(s.Rules.PointValue),
		Currency:     s.Rules.Currency,
	}, nil
}

// MarkProcessed - шлюз принял выплату. Повтор с тем же идентификатором выплаты не ошибка.
func (s *Redemptions) MarkProcessed(ctx context.Context, id string, payoutID string, externalStatus string) error {
	err := s.Storage.MarkProcessed(ctx, id, payoutID, externalStatus)
	if errors.Is(err, storage.ErrTransitionConflict) {
		current, getErr := s.Storage.GetRedemption(ctx, id)
		if getErr != nil {
			return getErr
		}
		if current.Status == models.RedemptionStatusProcessed &&
			current.ExternalPayoutID != nil && *current.ExternalPayoutID == payoutID {
			return nil
		}
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, models.RedemptionStatusProcessed)
	}
	if err != nil {
		return s.mapStorageError(err)
	}

	if redemption, getErr := s.Storage.GetRedemption(ctx, id); getErr == nil {
		s.publish(ctx, *redemption, models.RedemptionStatusProcessed, "")
	}
	return nil
}

// MarkCompleted - выплата зачислена получателю
func (s *Redemptions) MarkCompleted(ctx context.Context, id string, externalStatus string) error {
	if err := s.Storage.MarkCompleted(ctx, id, externalStatus); err != nil {
		return s.mapStorageError(err)
	}
	logger.Infow("Redemption completed", "redemption_id", id, "external_status", externalStatus)
	if redemption, err := s.Storage.GetRedemption(ctx, id); err == nil {
		s.publish(ctx, *redemption, models.RedemptionStatusCompleted, "")
	}
	return nil
}

// MarkFailed - выплата не состоялась. Баллы возвращаются ровно один раз в той же транзакции.
func (s *Redemptions) MarkFailed(ctx context.Context, id string, reason string) error {
	result, err := s.Storage.MarkFailed(ctx, id, reason)
	if err != nil {
		return s.mapStorageError(err)
	}
	if result.AlreadyRefunded {
		logger.Info("Redemption already failed and refunded", id)
		return nil
	}
	reportRefund(id, result)

	logger.Infow("Redemption failed, points refunded",
		"redemption_id", id,
		"earner_id", result.EarnerID,
		"points", result.Points,
		"reason", reason,
	)
	if redemption, err := s.Storage.GetRedemption(ctx, id); err == nil {
		s.publish(ctx, *redemption, models.RedemptionStatusFailed, reason)
	}
	return nil
}

// UpdateExternalStatus - промежуточный статус шлюза для заявки в обработке
func (s *Redemptions) UpdateExternalStatus(ctx context.Context, id string, externalStatus string) error {
	if err := s.Storage.UpdateExternalStatus(ctx, id, externalStatus); err != nil {
		return s.mapStorageError(err)
	}
	return nil
}

func (s *Redemptions) mapStorageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrRedemptionNotFound):
		return ErrRedemptionNotFound
	case errors.Is(err, storage.ErrTransitionConflict):
		return ErrInvalidTransition
	case errors.Is(err, storage.ErrEarnerNotFound):
		return ErrEarnerNotFound
	}
	return err
}

func (s *Redemptions) publish(ctx context.Context, redemption models.Redemption, status string, reason string) {
	if s.Publisher == nil {
		return
	}
	event := broker.RedemptionEvent{
		RedemptionID: redemption.ID,
		EarnerID:     redemption.EarnerID,
		Points:       redemption.Points,
		Method:       string(redemption.Method),
		Status:       status,
		Reason:       reason,
		Timestamp:    s.Now().UTC(),
	}
	if redemption.ExternalPayoutID != nil {
		event.ExternalPayoutID = *redemption.ExternalPayoutID
	}
	if err := s.Publisher.PublishRedemptionEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish redemption event:", redemption.ID, status, err)
	}
}
