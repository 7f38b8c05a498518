package services

import (
	"context"
	"errors"

	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/storage"
	"go.uber.org/zap"
)

type Ledger struct {
	Storage storage.LedgerStorage
}

func NewLedger(storage storage.LedgerStorage) LedgerService {
	return &Ledger{Storage: storage}
}

// GetBalance возвращает баланс баллов держателя
func (s *Ledger) GetBalance(ctx context.Context, earnerID string) (*models.Earner, error) {
	earner, err := s.Storage.GetEarner(ctx, earnerID)
	if err != nil {
		if errors.Is(err, storage.ErrEarnerNotFound) {
			logger.Warn("Earner not found", earnerID)
			return nil, ErrEarnerNotFound
		}
		logger.Error("Failed to get earner balance", zap.Error(err))
		return nil, err
	}
	return earner, nil
}

// reportRefund фиксирует нарушение инварианта леджера: возврат больше списанного
func reportRefund(redemptionID string, result *models.RefundResult) {
	if result == nil || !result.Clamped {
		return
	}
	logger.Errorw("Refund exceeded redeemed points, clamped to zero",
		"tag", "ledger_invariant_violation",
		"redemption_id", redemptionID,
		"earner_id", result.EarnerID,
		"points", result.Points,
		"error", ErrLedgerInvariantViolation,
	)
}
