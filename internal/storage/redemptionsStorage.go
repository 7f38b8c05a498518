package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	redemptionColumns = `id, earner_id, points, method, destination, status, external_payout_id,
						 external_status, failure_reason, refunded, attempts, created_at, updated_at, processed_at`

	InsertRedemption = `INSERT INTO REDEMPTIONS (id, earner_id, points, method, destination, status, created_at, updated_at)
						VALUES ($1, $2, $3, $4, $5, $6, $7, $7);`
	GetRedemption  = `SELECT ` + redemptionColumns + ` FROM REDEMPTIONS WHERE id=$1;`
	GetRedemptions = `SELECT ` + redemptionColumns + ` FROM REDEMPTIONS WHERE earner_id=$1 ORDER BY created_at DESC;`

	// заявка остаётся в pending, но получает аренду, чтобы параллельный проход её не взял
	ClaimPendingRedemptions = `UPDATE REDEMPTIONS
								SET claimed_until = NOW() + make_interval(secs => $2),
								    attempts = attempts + 1,
								    updated_at = NOW()
								WHERE id IN (
								    SELECT id FROM REDEMPTIONS
								    WHERE status = 'pending' AND (claimed_until IS NULL OR claimed_until < NOW())
								    ORDER BY created_at
								    LIMIT $1
								    FOR UPDATE SKIP LOCKED
								)
								RETURNING ` + redemptionColumns + `;`

	MarkRedemptionProcessed = `UPDATE REDEMPTIONS
								SET status = 'processed',
								    external_payout_id = $2,
								    external_status = $3,
								    claimed_until = NULL,
								    processed_at = NOW(),
								    updated_at = NOW()
								WHERE id = $1 AND status = 'pending';`
	MarkRedemptionCompleted = `UPDATE REDEMPTIONS
								SET status = 'completed',
								    external_status = $2,
								    processed_at = NOW(),
								    updated_at = NOW()
								WHERE id = $1 AND status = 'processed';`
	UpdateRedemptionExternalStatus = `UPDATE REDEMPTIONS
									  SET external_status = $2,
									      updated_at = NOW()
									  WHERE id = $1 AND status = 'processed';`
	LockRedemption        = `SELECT earner_id, points, status, refunded FROM REDEMPTIONS WHERE id=$1 FOR UPDATE;`
	MarkRedemptionFailed  = `UPDATE REDEMPTIONS
							  SET status = 'failed',
							      failure_reason = $2,
							      refunded = TRUE,
							      claimed_until = NULL,
							      processed_at = NOW(),
							      updated_at = NOW()
							  WHERE id = $1;`
	RedemptionExists = `SELECT EXISTS(SELECT 1 FROM REDEMPTIONS WHERE id=$1);`
)

type RedemptionDatabase struct {
	DB *Database
}

// AddRedemption - списание баллов и создание заявки в одной транзакции
func (s *RedemptionDatabase) AddRedemption(ctx context.Context, redemption models.Redemption) error {
	// Начинаем транзакцию
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("AddRedemption. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	// 1. Списываем баллы (условное обновление)
	if err = debitPoints(ctx, tx, redemption.EarnerID, redemption.Points); err != nil {
		return err
	}

	// 2. Добавляем заявку
	_, err = tx.Exec(ctx, InsertRedemption,
		redemption.ID,
		redemption.EarnerID,
		redemption.Points,
		string(redemption.Method),
		redemption.Destination,
		redemption.Status,
		redemption.CreatedAt,
	)
	if err != nil {
		// Проверяем нарушение уникальности
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrAlreadyExists
		}
		return fmt.Errorf("insert redemption: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit failed: %w", err)
	}
	return nil
}

func (s *RedemptionDatabase) GetRedemption(ctx context.Context, id string) (*models.Redemption, error) {
	redemption, err := scanRedemption(s.DB.Pool.QueryRow(ctx, GetRedemption, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRedemptionNotFound
		}
		return nil, fmt.Errorf("failed to get redemption: %w", err)
	}
	return redemption, nil
}

func (s *RedemptionDatabase) GetRedemptions(ctx context.Context, earnerID string) ([]models.Redemption, error) {
	rows, err := s.DB.Pool.Query(ctx, GetRedemptions, earnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}
	return collectRedemptions(rows)
}

// ClaimPendingRedemptions - выбирает пачку заявок в pending и выдаёт на них аренду
func (s *RedemptionDatabase) ClaimPendingRedemptions(ctx context.Context, count int, lease time.Duration) ([]models.Redemption, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimPendingRedemptions, count, lease.Seconds())
	if err != nil {
		return nil, fmt.Errorf("failed to claim pending redemptions: %w", err)
	}
	return collectRedemptions(rows)
}

func (s *RedemptionDatabase) MarkProcessed(ctx context.Context, id string, payoutID string, externalStatus string) error {
	tag, err := s.DB.Pool.Exec(ctx, MarkRedemptionProcessed, id, payoutID, externalStatus)
	if err != nil {
		return fmt.Errorf("failed to mark redemption processed: %w", err)
	}
	return s.checkTransition(ctx, id, tag)
}

func (s *RedemptionDatabase) MarkCompleted(ctx context.Context, id string, externalStatus string) error {
	tag, err := s.DB.Pool.Exec(ctx, MarkRedemptionCompleted, id, externalStatus)
	if err != nil {
		return fmt.Errorf("failed to mark redemption completed: %w", err)
	}
	return s.checkTransition(ctx, id, tag)
}

func (s *RedemptionDatabase) UpdateExternalStatus(ctx context.Context, id string, externalStatus string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdateRedemptionExternalStatus, id, externalStatus)
	if err != nil {
		return fmt.Errorf("failed to update external status: %w", err)
	}
	return s.checkTransition(ctx, id, tag)
}

// MarkFailed - перевод заявки в failed и возврат баллов в одной транзакции.
// Повторный вызов для уже возвращённой заявки ничего не меняет.
func (s *RedemptionDatabase) MarkFailed(ctx context.Context, id string, reason string) (*models.RefundResult, error) {
	tx, err := s.DB.Pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Гарантированный откат при ошибке
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				logger.Error("MarkFailed. Rollback failed:", zap.Error(rbErr))
			}
		}
	}()

	var (
		result   models.RefundResult
		status   string
		refunded bool
	)
	err = tx.QueryRow(ctx, LockRedemption, id).Scan(&result.EarnerID, &result.Points, &status, &refunded)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = ErrRedemptionNotFound
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock redemption: %w", err)
	}

	if refunded {
		result.AlreadyRefunded = true
		// транзакция только читала, фиксируем чтобы снять блокировку
		if err = tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("commit failed: %w", err)
		}
		return &result, nil
	}
	if status == models.RedemptionStatusCompleted {
		err = ErrTransitionConflict
		return nil, err
	}

	if _, err = tx.Exec(ctx, MarkRedemptionFailed, id, reason); err != nil {
		return nil, fmt.Errorf("failed to mark redemption failed: %w", err)
	}
	if result.Clamped, err = creditPoints(ctx, tx, result.EarnerID, result.Points); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit failed: %w", err)
	}
	return &result, nil
}

// checkTransition - различает "заявка не найдена" и "заявка не в ожидаемом статусе"
func (s *RedemptionDatabase) checkTransition(ctx context.Context, id string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := s.DB.Pool.QueryRow(ctx, RedemptionExists, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check redemption: %w", err)
	}
	if !exists {
		return ErrRedemptionNotFound
	}
	return ErrTransitionConflict
}

func scanRedemption(row pgx.Row) (*models.Redemption, error) {
	var (
		redemption models.Redemption
		method     string
	)
	err := row.Scan(
		&redemption.ID,
		&redemption.EarnerID,
		&redemption.Points,
		&method,
		&redemption.Destination,
		&redemption.Status,
		&redemption.ExternalPayoutID,
		&redemption.ExternalStatus,
		&redemption.FailureReason,
		&redemption.Refunded,
		&redemption.Attempts,
		&redemption.CreatedAt,
		&redemption.UpdatedAt,
		&redemption.ProcessedAt,
	)
	if err != nil {
		return nil, err
	}
	redemption.Method = models.Method(method)
	return &redemption, nil
}

func collectRedemptions(rows pgx.Rows) ([]models.Redemption, error) {
	defer rows.Close()

	var redemptions []models.Redemption
	for rows.Next() {
		redemption, err := scanRedemption(rows)
		if err != nil {
			return redemptions, fmt.Errorf("failed scan redemption data: %w", err)
		}
		redemptions = append(redemptions, *redemption)
	}
	return redemptions, rows.Err()
}
