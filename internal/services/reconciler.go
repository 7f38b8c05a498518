package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-redemption/internal/client"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/sethvargo/go-retry"
)

// Reconciler сверяет заявку в обработке с состоянием выплаты в шлюзе при запросе статуса
type Reconciler struct {
	Redemptions RedemptionService
	Gateway     PayoutGateway
	// NewBackoff - стратегия повторов опроса шлюза (backoff хранит состояние, поэтому новый на каждый вызов)
	NewBackoff func() retry.Backoff
}

func NewReconciler(redemptions RedemptionService, gateway PayoutGateway) *Reconciler {
	return &Reconciler{
		Redemptions: redemptions,
		Gateway:     gateway,
		NewBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewFibonacci(200*time.Millisecond))
		},
	}
}

// GetRedemptionStatus возвращает заявку, предварительно сверив статус processed со шлюзом
func (r *Reconciler) GetRedemptionStatus(ctx context.Context, earnerID string, id string) (*models.Redemption, error) {
	redemption, err := r.Redemptions.GetRedemption(ctx, earnerID, id)
	if err != nil {
		return nil, err
	}
	if redemption.Status != models.RedemptionStatusProcessed || redemption.ExternalPayoutID == nil {
		return redemption, nil
	}

	changed, err := r.Reconcile(ctx, *redemption)
	if err != nil {
		return nil, err
	}
	if !changed {
		return redemption, nil
	}
	return r.Redemptions.GetRedemption(ctx, earnerID, id)
}

// Reconcile опрашивает шлюз и применяет изменение статуса. Возвращает true, если заявка изменилась.
func (r *Reconciler) Reconcile(ctx context.Context, redemption models.Redemption) (bool, error) {
	var result *models.PayoutResult
	err := retry.Do(ctx, r.NewBackoff(), func(ctx context.Context) error {
		res, err := r.Gateway.CheckStatus(ctx, *redemption.ExternalPayoutID)
		if err != nil {
			if client.KindOf(err) == client.KindUnreachable {
				return retry.RetryableError(err)
			}
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		if client.KindOf(err) == client.KindUnreachable || errors.Is(err, client.ErrNotAttempted) {
			logger.Warn("Payout status unavailable", redemption.ID, err)
			return false, fmt.Errorf("%w: %v", ErrStatusUnavailable, err)
		}
		logger.Error("Failed to check payout status", redemption.ID, err)
		return false, fmt.Errorf("failed to check payout status: %w", err)
	}

	status := result.ExternalStatus
	switch {
	case client.IsSettled(status):
		err = r.Redemptions.MarkCompleted(ctx, redemption.ID, status)
	case client.IsFailed(status):
		reason := "payout " + status
		if result.FailureReason != "" {
			reason += ": " + result.FailureReason
		}
		err = r.Redemptions.MarkFailed(ctx, redemption.ID, reason)
	default:
		if redemption.ExternalStatus != nil && *redemption.ExternalStatus == status {
			return false, nil
		}
		err = r.Redemptions.UpdateExternalStatus(ctx, redemption.ID, status)
	}

	// заявку уже перевёл параллельный запрос
	if errors.Is(err, ErrInvalidTransition) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
