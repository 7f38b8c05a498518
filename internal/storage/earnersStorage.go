package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetEarner = `SELECT id, total_points, redeemed_points FROM EARNERS WHERE id=$1;`
	// списание проходит только при достаточном количестве доступных баллов
	DebitEarner = `UPDATE EARNERS
					SET redeemed_points = redeemed_points + $1
					WHERE id = $2 AND total_points - redeemed_points >= $1
					RETURNING redeemed_points;`
	EarnerExists       = `SELECT EXISTS(SELECT 1 FROM EARNERS WHERE id=$1);`
	LockEarnerRedeemed = `SELECT redeemed_points FROM EARNERS WHERE id=$1 FOR UPDATE;`
	SetEarnerRedeemed  = `UPDATE EARNERS SET redeemed_points = $1 WHERE id = $2;`
)

type EarnerDatabase struct {
	DB *Database
}

func (s *EarnerDatabase) GetEarner(ctx context.Context, earnerID string) (*models.Earner, error) {
	var earner models.Earner
	err := s.DB.Pool.QueryRow(ctx, GetEarner, earnerID).Scan(
		&earner.EarnerID,
		&earner.TotalPoints,
		&earner.RedeemedPoints,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEarnerNotFound
		}
		return nil, fmt.Errorf("failed to get earner: %w", err)
	}
	return &earner, nil
}

func debitPoints(ctx context.Context, q querier, earnerID string, points int64) error {
	var redeemed int64
	err := q.QueryRow(ctx, DebitEarner, points, earnerID).Scan(&redeemed)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to debit points: %w", err)
	}
	// строка не обновлена: либо нет держателя, либо не хватает баллов
	var exists bool
	if err := q.QueryRow(ctx, EarnerExists, earnerID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check earner: %w", err)
	}
	if !exists {
		return ErrEarnerNotFound
	}
	return ErrInsufficientPoints
}

// creditPoints - уменьшает redeemed_points. Не даёт значению уйти ниже нуля,
// возвращает true, если пришлось обрезать значение.
func creditPoints(ctx context.Context, q querier, earnerID string, points int64) (bool, error) {
	var redeemed int64
	err := q.QueryRow(ctx, LockEarnerRedeemed, earnerID).Scan(&redeemed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrEarnerNotFound
		}
		return false, fmt.Errorf("failed to lock earner: %w", err)
	}

	updated := redeemed - points
	clamped := updated < 0
	if clamped {
		updated = 0
	}
	if _, err := q.Exec(ctx, SetEarnerRedeemed, updated, earnerID); err != nil {
		return false, fmt.Errorf("failed to credit points: %w", err)
	}
	return clamped, nil
}
