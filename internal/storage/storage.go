package storage

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/ya-redemption/internal/models"
)

// LedgerStorage - чтение баланса. Списание и возврат баллов идут только вместе
// с изменением заявки: AddRedemption и MarkFailed.
type LedgerStorage interface {
	GetEarner(ctx context.Context, earnerID string) (*models.Earner, error)
}

// RedemptionsStorage - хранилище заявок на вывод. Все переходы статусов условные:
// обновление проходит только если текущий статус совпадает с ожидаемым.
type RedemptionsStorage interface {
	AddRedemption(ctx context.Context, redemption models.Redemption) error
	GetRedemption(ctx context.Context, id string) (*models.Redemption, error)
	GetRedemptions(ctx context.Context, earnerID string) ([]models.Redemption, error)
	ClaimPendingRedemptions(ctx context.Context, count int, lease time.Duration) ([]models.Redemption, error)
	MarkProcessed(ctx context.Context, id string, payoutID string, externalStatus string) error
	MarkCompleted(ctx context.Context, id string, externalStatus string) error
	MarkFailed(ctx context.Context, id string, reason string) (*models.RefundResult, error)
	UpdateExternalStatus(ctx context.Context, id string, externalStatus string) error
}

type IStorage interface {
	LedgerStorage
	RedemptionsStorage
	Close() error
}

var (
	ErrEarnerNotFound     = errors.New("earner not found")
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrTransitionConflict = errors.New("redemption is not in expected status")

	ErrAlreadyExists = errors.New("already exists")
)
