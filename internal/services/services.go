package services

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-redemption/internal/models"
)

var (
	ErrEarnerNotFound              = errors.New("earner not found")
	ErrRedemptionNotFound          = errors.New("redemption not found")
	ErrInsufficientPoints          = errors.New("insufficient points for redemption")
	ErrInvalidMethodForDestination = errors.New("destination is not valid for payout method")
	ErrBelowMinimumPoints          = errors.New("points below minimum redemption")
	ErrInvalidTransition           = errors.New("invalid redemption status transition")
	ErrTooManyRequests             = errors.New("too many redemption requests")
	ErrLedgerInvariantViolation    = errors.New("ledger invariant violation")
	// ErrStatusUnavailable - шлюз не ответил на запрос статуса, заявка не изменена
	ErrStatusUnavailable = errors.New("payout status temporarily unavailable")
)

// LedgerService - баланс баллов держателя
type LedgerService interface {
	GetBalance(ctx context.Context, earnerID string) (*models.Earner, error)
}

// RedemptionService - жизненный цикл заявки на вывод
type RedemptionService interface {
	CreateRedemption(ctx context.Context, earnerID string, request models.RedemptionRequest) (*models.Redemption, error)
	GetRedemption(ctx context.Context, earnerID string, id string) (*models.Redemption, error)
	GetRedemptions(ctx context.Context, earnerID string) ([]models.Redemption, error)
	ClaimPending(ctx context.Context, count int, lease time.Duration) ([]models.Redemption, error)
	BuildPayout(redemption models.Redemption) (models.Payout, error)
	MarkProcessed(ctx context.Context, id string, payoutID string, externalStatus string) error
	MarkCompleted(ctx context.Context, id string, externalStatus string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	UpdateExternalStatus(ctx context.Context, id string, externalStatus string) error
}

// PayoutGateway - адаптер шлюза выплат
type PayoutGateway interface {
	Submit(ctx context.Context, payout models.Payout) (*models.PayoutResult, error)
	CheckStatus(ctx context.Context, externalPayoutID string) (*models.PayoutResult, error)
}

// StatusService - выдача статуса заявки со сверкой со шлюзом
type StatusService interface {
	GetRedemptionStatus(ctx context.Context, earnerID string, id string) (*models.Redemption, error)
}
