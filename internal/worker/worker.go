package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/denmor86/ya-redemption/internal/broker"
	"github.com/denmor86/ya-redemption/internal/client"
	"github.com/denmor86/ya-redemption/internal/config"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/robfig/cron/v3"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/errgroup"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "payout-gateway",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 подряд выплат без ответа шлюза
			return counts.ConsecutiveFailures >= 5
		},
		// отказ шлюза - это ответ, недоступен он только без ответа
		IsSuccessful: func(err error) bool {
			return err == nil || client.KindOf(err) != client.KindUnreachable
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

type outcome int

const (
	outcomeProcessed outcome = iota
	outcomeFailed
	outcomeSkipped
)

// SettlementWorker - планировщик выплат: по расписанию или вручную обрабатывает заявки pending
type SettlementWorker struct {
	Redemptions services.RedemptionService
	Gateway     services.PayoutGateway
	Publisher   broker.Publisher
	Breaker     *gobreaker.CircuitBreaker
	Cron        *cron.Cron
	Config      config.SettlementConfig
	startOnce   sync.Once
}

// NewSettlementWorker - конструктор планировщика выплат
func NewSettlementWorker(redemptions services.RedemptionService, gateway services.PayoutGateway, publisher broker.Publisher, cfg config.SettlementConfig) *SettlementWorker {
	cronLogger := logger.CronLogger{}
	return &SettlementWorker{
		Redemptions: redemptions,
		Gateway:     gateway,
		Publisher:   publisher,
		Breaker:     InitCircuitBreaker(),
		Cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger), cron.Recover(cronLogger)),
		),
		Config: cfg,
	}
}

// Start - регистрирует проход по расписанию и запускает планировщик в фоне
func (w *SettlementWorker) Start(ctx context.Context) error {
	var err error
	w.startOnce.Do(func() {
		_, err = w.Cron.AddFunc(w.Config.Schedule, func() {
			if _, runErr := w.RunSettlement(ctx); runErr != nil {
				logger.Error("Scheduled settlement failed:", runErr)
			}
		})
		if err != nil {
			err = fmt.Errorf("invalid settlement schedule %q: %w", w.Config.Schedule, err)
			return
		}
		w.Cron.Start()
		logger.Info("Settlement worker started with schedule", w.Config.Schedule)
	})
	return err
}

// Stop - останавливает планировщик и ждёт завершения текущего прохода
func (w *SettlementWorker) Stop() {
	<-w.Cron.Stop().Done()
	logger.Info("Settlement worker stopped")
}

// RunSettlement - один проход по заявкам pending. Ошибка одной заявки не прерывает проход.
func (w *SettlementWorker) RunSettlement(ctx context.Context) (models.SettlementSummary, error) {
	// начатый вызов шлюза не отменяется: ждём ответа или таймаута клиента
	ctx = context.WithoutCancel(ctx)

	var summary models.SettlementSummary
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable, settlement postponed")
		return summary, nil
	}

	redemptions, err := w.Redemptions.ClaimPending(ctx, w.Config.BatchSize, w.Config.ClaimLease)
	if err != nil {
		logger.Error("Failed to claim pending redemptions:", err)
		return summary, err
	}
	summary.Claimed = len(redemptions)

	outcomes := make([]outcome, len(redemptions))
	var g errgroup.Group
	g.SetLimit(max(1, w.Config.Workers))
	for i, redemption := range redemptions {
		g.Go(func() error {
			outcomes[i] = w.settle(ctx, redemption)
			return nil
		})
	}
	_ = g.Wait()

	for _, o := range outcomes {
		switch o {
		case outcomeProcessed:
			summary.Processed++
		case outcomeFailed:
			summary.Failed++
		case outcomeSkipped:
			summary.Skipped++
		}
	}

	logger.Infow("Settlement run finished",
		"claimed", summary.Claimed,
		"processed", summary.Processed,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)
	if w.Publisher != nil {
		if err := w.Publisher.PublishSettlementRun(ctx, summary); err != nil {
			logger.Warn("Failed to publish settlement summary:", err)
		}
	}
	return summary, nil
}

// settle - выплата по одной заявке
func (w *SettlementWorker) settle(ctx context.Context, redemption models.Redemption) (result outcome) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("Settlement panic", "redemption_id", redemption.ID, "panic", r)
			result = outcomeSkipped
		}
	}()

	payout, err := w.Redemptions.BuildPayout(redemption)
	if err != nil {
		err = &client.GatewayError{Kind: client.KindMalformed, Message: "invalid payout destination", Err: err}
	}

	var payoutResult *models.PayoutResult
	if err == nil {
		var res interface{}
		res, err = w.Breaker.Execute(func() (interface{}, error) {
			return w.Gateway.Submit(ctx, payout)
		})
		if err == nil {
			payoutResult = res.(*models.PayoutResult)
		}
	}

	// вызова шлюза не было или шлюз просит подождать (429) - заявка остаётся pending до следующего прохода
	if isDeferred(err) {
		logger.Warnw("Settlement deferred", "redemption_id", redemption.ID, "reason", err.Error())
		return outcomeSkipped
	}

	if err != nil {
		if client.KindOf(err) == client.KindUnreachable {
			// исход выплаты неизвестен: баллы возвращаются, выплату нужно сверить вручную
			logger.Warnw("Payout outcome unknown, failing redemption",
				"redemption_id", redemption.ID,
				"earner_id", redemption.EarnerID,
				"reference_id", services.ReferenceID(redemption.ID),
				"manual_reconciliation", true,
				"error", err,
			)
		}
		if markErr := w.Redemptions.MarkFailed(ctx, redemption.ID, err.Error()); markErr != nil {
			logger.Errorw("Failed to mark redemption failed", "redemption_id", redemption.ID, "error", markErr)
			return outcomeSkipped
		}
		return outcomeFailed
	}

	if err := w.Redemptions.MarkProcessed(ctx, redemption.ID, payoutResult.ExternalPayoutID, payoutResult.ExternalStatus); err != nil {
		// шлюз принял выплату: повторная отправка после lease придёт с тем же reference id
		logger.Errorw("Failed to mark redemption processed",
			"redemption_id", redemption.ID,
			"external_payout_id", payoutResult.ExternalPayoutID,
			"manual_reconciliation", true,
			"error", err,
		)
		return outcomeSkipped
	}
	return outcomeProcessed
}

func isDeferred(err error) bool {
	if err == nil {
		return false
	}
	var rateLimitErr *client.RateLimitError
	return errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		errors.Is(err, client.ErrNotAttempted) ||
		errors.As(err, &rateLimitErr)
}
