package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/denmor86/ya-redemption/internal/models"
)

// MemoryStorage хранит леджер и заявки в памяти. Используется без DSN и в тестах.
// Один мьютекс сериализует все операции, что даёт ту же атомарность, что и условные обновления в БД.
type MemoryStorage struct {
	mu sync.Mutex

	earners     map[string]*models.Earner
	redemptions map[string]*memoryRedemption

	// Now - источник времени (подменяется в тестах)
	Now func() time.Time
}

type memoryRedemption struct {
	models.Redemption
	claimedUntil time.Time
}

// NewMemoryStorage создаёт пустое хранилище
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		earners:     make(map[string]*models.Earner),
		redemptions: make(map[string]*memoryRedemption),
		Now:         time.Now,
	}
}

// AddEarner - регистрирует держателя баллов (начисление баллов вне этого сервиса)
func (s *MemoryStorage) AddEarner(earnerID string, totalPoints int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.earners[earnerID] = &models.Earner{EarnerID: earnerID, TotalPoints: totalPoints}
}

func (s *MemoryStorage) Close() error {
	return nil
}

func (s *MemoryStorage) GetEarner(ctx context.Context, earnerID string) (*models.Earner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	earner, ok := s.earners[earnerID]
	if !ok {
		return nil, ErrEarnerNotFound
	}
	copied := *earner
	return &copied, nil
}

func (s *MemoryStorage) debit(earnerID string, points int64) error {
	earner, ok := s.earners[earnerID]
	if !ok {
		return ErrEarnerNotFound
	}
	if earner.Available() < points {
		return ErrInsufficientPoints
	}
	earner.RedeemedPoints += points
	return nil
}

func (s *MemoryStorage) credit(earnerID string, points int64) (bool, error) {
	earner, ok := s.earners[earnerID]
	if !ok {
		return false, ErrEarnerNotFound
	}
	earner.RedeemedPoints -= points
	if earner.RedeemedPoints < 0 {
		earner.RedeemedPoints = 0
		return true, nil
	}
	return false, nil
}

func (s *MemoryStorage) AddRedemption(ctx context.Context, redemption models.Redemption) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.redemptions[redemption.ID]; ok {
		return ErrAlreadyExists
	}
	if err := s.debit(redemption.EarnerID, redemption.Points); err != nil {
		return err
	}
	redemption.UpdatedAt = redemption.CreatedAt
	s.redemptions[redemption.ID] = &memoryRedemption{Redemption: redemption}
	return nil
}

func (s *MemoryStorage) GetRedemption(ctx context.Context, id string) (*models.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.redemptions[id]
	if !ok {
		return nil, ErrRedemptionNotFound
	}
	copied := r.Redemption
	return &copied, nil
}

func (s *MemoryStorage) GetRedemptions(ctx context.Context, earnerID string) ([]models.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var redemptions []models.Redemption
	for _, r := range s.redemptions {
		if r.EarnerID == earnerID {
			redemptions = append(redemptions, r.Redemption)
		}
	}
	sort.Slice(redemptions, func(i, j int) bool {
		return redemptions[i].CreatedAt.After(redemptions[j].CreatedAt)
	})
	return redemptions, nil
}

func (s *MemoryStorage) ClaimPendingRedemptions(ctx context.Context, count int, lease time.Duration) ([]models.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.Now()

	var candidates []*memoryRedemption
	for _, r := range s.redemptions {
		if r.Status == models.RedemptionStatusPending && !r.claimedUntil.After(now) {
			candidates = append(candidates, r)
		}
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].CreatedAt.Before(candidates[j].CreatedAt)
	})
	if len(candidates) > count {
		candidates = candidates[:count]
	}

	claimed := make([]models.Redemption, 0, len(candidates))
	for _, r := range candidates {
		r.claimedUntil = now.Add(lease)
		r.Attempts++
		r.UpdatedAt = now
		claimed = append(claimed, r.Redemption)
	}
	return claimed, nil
}

func (s *MemoryStorage) MarkProcessed(ctx context.Context, id string, payoutID string, externalStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.expect(id, models.RedemptionStatusPending)
	if err != nil {
		return err
	}
	now := s.Now()
	r.Status = models.RedemptionStatusProcessed
	r.ExternalPayoutID = &payoutID
	r.ExternalStatus = &externalStatus
	r.ProcessedAt = &now
	r.UpdatedAt = now
	r.claimedUntil = time.Time{}
	return nil
}

func (s *MemoryStorage) MarkCompleted(ctx context.Context, id string, externalStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.expect(id, models.RedemptionStatusProcessed)
	if err != nil {
		return err
	}
	now := s.Now()
	r.Status = models.RedemptionStatusCompleted
	r.ExternalStatus = &externalStatus
	r.ProcessedAt = &now
	r.UpdatedAt = now
	return nil
}

func (s *MemoryStorage) UpdateExternalStatus(ctx context.Context, id string, externalStatus string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, err := s.expect(id, models.RedemptionStatusProcessed)
	if err != nil {
		return err
	}
	r.ExternalStatus = &externalStatus
	r.UpdatedAt = s.Now()
	return nil
}

func (s *MemoryStorage) MarkFailed(ctx context.Context, id string, reason string) (*models.RefundResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.redemptions[id]
	if !ok {
		return nil, ErrRedemptionNotFound
	}
	result := &models.RefundResult{EarnerID: r.EarnerID, Points: r.Points}
	if r.Refunded {
		result.AlreadyRefunded = true
		return result, nil
	}
	if r.Status == models.RedemptionStatusCompleted {
		return nil, ErrTransitionConflict
	}

	clamped, err := s.credit(r.EarnerID, r.Points)
	if err != nil {
		return nil, err
	}
	now := s.Now()
	r.Status = models.RedemptionStatusFailed
	r.FailureReason = &reason
	r.Refunded = true
	r.ProcessedAt = &now
	r.UpdatedAt = now
	r.claimedUntil = time.Time{}
	result.Clamped = clamped
	return result, nil
}

func (s *MemoryStorage) expect(id string, status string) (*memoryRedemption, error) {
	r, ok := s.redemptions[id]
	if !ok {
		return nil, ErrRedemptionNotFound
	}
	if r.Status != status {
		return nil, ErrTransitionConflict
	}
	return r, nil
}
