package worker

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/denmor86/ya-redemption/internal/client"
	"github.com/denmor86/ya-redemption/internal/config"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/services"
	"github.com/denmor86/ya-redemption/internal/storage"
	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

// fakeGateway - шлюз выплат в памяти
type fakeGateway struct {
	mu sync.Mutex
	// reject - ответ на отправку: nil - выплата принята
	reject    error
	statuses  map[string]string
	submitted map[string]int
	polls     int
	delay     time.Duration
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		statuses:  make(map[string]string),
		submitted: make(map[string]int),
	}
}

func (g *fakeGateway) Submit(ctx context.Context, payout models.Payout) (*models.PayoutResult, error) {
	if g.delay > 0 {
		time.Sleep(g.delay)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	reference := services.ReferenceID(payout.RedemptionID)
	g.submitted[reference]++
	if g.reject != nil {
		return nil, g.reject
	}
	payoutID := "pout_" + reference
	g.statuses[payoutID] = "queued"
	return &models.PayoutResult{ExternalPayoutID: payoutID, ExternalStatus: "queued"}, nil
}

func (g *fakeGateway) CheckStatus(ctx context.Context, externalPayoutID string) (*models.PayoutResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.polls++
	status, ok := g.statuses[externalPayoutID]
	if !ok {
		return nil, &client.GatewayError{Kind: client.KindRejected, StatusCode: 404}
	}
	return &models.PayoutResult{ExternalPayoutID: externalPayoutID, ExternalStatus: status}, nil
}

func (g *fakeGateway) setStatus(redemptionID string, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.statuses["pout_"+services.ReferenceID(redemptionID)] = status
}

type scenario struct {
	memory      *storage.MemoryStorage
	gateway     *fakeGateway
	redemptions *services.Redemptions
	reconciler  *services.Reconciler
	worker      *SettlementWorker
}

func newScenario(t *testing.T, totalPoints int64) *scenario {
	t.Helper()
	initLogger(t)

	memory := storage.NewMemoryStorage()
	memory.AddEarner("earner", totalPoints)
	gateway := newFakeGateway()

	rules := services.Rules{MinPoints: 100, PointValue: decimal.RequireFromString("0.10"), Currency: "INR"}
	redemptions := services.NewRedemptions(memory, services.NewLedger(memory), nil, nil, rules)
	reconciler := services.NewReconciler(redemptions, gateway)
	reconciler.NewBackoff = func() retry.Backoff {
		return retry.WithMaxRetries(1, retry.NewConstant(time.Millisecond))
	}

	return &scenario{
		memory:      memory,
		gateway:     gateway,
		redemptions: redemptions,
		reconciler:  reconciler,
		worker:      NewSettlementWorker(redemptions, gateway, nil, config.DefaultConfig().Settlement),
	}
}

func (s *scenario) create(t *testing.T, points int64) *models.Redemption {
	t.Helper()
	redemption, err := s.redemptions.CreateRedemption(context.Background(), "earner", models.RedemptionRequest{
		Points: points, Method: models.MethodUPI, Destination: "earner@okbank",
	})
	if err != nil {
		t.Fatalf("Failed to create redemption: %v", err)
	}
	return redemption
}

func (s *scenario) earner(t *testing.T) *models.Earner {
	t.Helper()
	earner, err := s.memory.GetEarner(context.Background(), "earner")
	if err != nil {
		t.Fatalf("Failed to get earner: %v", err)
	}
	return earner
}

func (s *scenario) status(t *testing.T, id string) *models.Redemption {
	t.Helper()
	redemption, err := s.reconciler.GetRedemptionStatus(context.Background(), "earner", id)
	if err != nil {
		t.Fatalf("Failed to get redemption status: %v", err)
	}
	return redemption
}

func TestScenario_HappyPath(t *testing.T) {
	s := newScenario(t, 1000)

	redemption := s.create(t, 500)
	if redemption.Status != models.RedemptionStatusPending || s.earner(t).Available() != 500 {
		t.Fatalf("Expected pending redemption with 500 available, got %s / %d", redemption.Status, s.earner(t).Available())
	}

	summary, err := s.worker.RunSettlement(context.Background())
	if err != nil || summary.Processed != 1 {
		t.Fatalf("Expected one processed redemption, got %+v (%v)", summary, err)
	}
	if got := s.status(t, redemption.ID); got.Status != models.RedemptionStatusProcessed || got.DisplayStatus() != models.DisplayStatusProcessing {
		t.Errorf("Expected processing, got %s", got.Status)
	}

	s.gateway.setStatus(redemption.ID, "settled")
	if got := s.status(t, redemption.ID); got.Status != models.RedemptionStatusCompleted {
		t.Errorf("Expected completed, got %s", got.Status)
	}

	earner := s.earner(t)
	if earner.RedeemedPoints != 500 || earner.Available() != 500 {
		t.Errorf("Expected 500 redeemed and 500 available, got %+v", earner)
	}
}

func TestScenario_GatewayRejection(t *testing.T) {
	s := newScenario(t, 1000)
	s.gateway.reject = &client.GatewayError{Kind: client.KindRejected, Code: "invalid_vpa", Message: "vpa does not exist"}

	redemption := s.create(t, 500)
	summary, err := s.worker.RunSettlement(context.Background())
	if err != nil || summary.Failed != 1 {
		t.Fatalf("Expected one failed redemption, got %+v (%v)", summary, err)
	}

	got := s.status(t, redemption.ID)
	if got.Status != models.RedemptionStatusFailed || got.FailureReason == nil || !got.Refunded {
		t.Errorf("Expected failed redemption with reason, got %+v", got)
	}
	if earner := s.earner(t); earner.RedeemedPoints != 0 || earner.Available() != 1000 {
		t.Errorf("Expected balance restored to 1000, got %+v", earner)
	}
}

func TestScenario_InsufficientBalance(t *testing.T) {
	s := newScenario(t, 1000)
	s.create(t, 800)

	_, err := s.redemptions.CreateRedemption(context.Background(), "earner", models.RedemptionRequest{
		Points: 300, Method: models.MethodUPI, Destination: "earner@okbank",
	})
	if !errors.Is(err, services.ErrInsufficientPoints) {
		t.Fatalf("Expected ErrInsufficientPoints, got: '%v'", err)
	}
	redemptions, _ := s.redemptions.GetRedemptions(context.Background(), "earner")
	if len(redemptions) != 1 {
		t.Errorf("Expected no new redemption, got %d", len(redemptions))
	}
	if earner := s.earner(t); earner.Available() != 200 {
		t.Errorf("Expected 200 available, got %d", earner.Available())
	}
}

func TestScenario_LateGatewayFailure(t *testing.T) {
	s := newScenario(t, 1000)
	redemption := s.create(t, 500)

	if _, err := s.worker.RunSettlement(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	s.gateway.setStatus(redemption.ID, "reversed")

	got := s.status(t, redemption.ID)
	if got.Status != models.RedemptionStatusFailed {
		t.Fatalf("Expected failed, got %s", got.Status)
	}
	if earner := s.earner(t); earner.Available() != 1000 {
		t.Errorf("Expected balance restored to 1000, got %d", earner.Available())
	}

	// повторный запрос не опрашивает шлюз и не возвращает баллы второй раз
	polls := s.gateway.polls
	again := s.status(t, redemption.ID)
	if again.Status != models.RedemptionStatusFailed || s.gateway.polls != polls {
		t.Errorf("Expected terminal status without polling, got %s (%d polls)", again.Status, s.gateway.polls-polls)
	}
	if earner := s.earner(t); earner.Available() != 1000 {
		t.Errorf("Expected single refund, got %d available", earner.Available())
	}
}

func TestProperty_ReconciliationIsIdempotent(t *testing.T) {
	s := newScenario(t, 1000)
	redemption := s.create(t, 500)
	if _, err := s.worker.RunSettlement(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	// неизменный статус шлюза: повторные запросы ничего не пишут
	first := s.status(t, redemption.ID)
	second := s.status(t, redemption.ID)
	if !first.UpdatedAt.Equal(second.UpdatedAt) || first.Status != second.Status {
		t.Errorf("Expected no changes, got %+v then %+v", first, second)
	}

	s.gateway.setStatus(redemption.ID, "paid")
	s.status(t, redemption.ID)
	s.status(t, redemption.ID)
	if earner := s.earner(t); earner.RedeemedPoints != 500 {
		t.Errorf("Expected 500 redeemed after repeated reconciliation, got %d", earner.RedeemedPoints)
	}
}

func TestProperty_UnreachablePollLeavesRecordUnchanged(t *testing.T) {
	s := newScenario(t, 1000)
	redemption := s.create(t, 500)
	if _, err := s.worker.RunSettlement(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	unavailable := &unreachableStatus{fakeGateway: s.gateway}
	s.reconciler.Gateway = unavailable
	_, err := s.reconciler.GetRedemptionStatus(context.Background(), "earner", redemption.ID)
	if !errors.Is(err, services.ErrStatusUnavailable) {
		t.Fatalf("Expected ErrStatusUnavailable, got: '%v'", err)
	}
	stored, _ := s.memory.GetRedemption(context.Background(), redemption.ID)
	if stored.Status != models.RedemptionStatusProcessed || *stored.ExternalStatus != "queued" {
		t.Errorf("Expected record unchanged, got %+v", stored)
	}
}

type unreachableStatus struct {
	*fakeGateway
}

func (g *unreachableStatus) CheckStatus(ctx context.Context, externalPayoutID string) (*models.PayoutResult, error) {
	return nil, &client.GatewayError{Kind: client.KindUnreachable, Message: "timeout"}
}

func TestProperty_NoDoubleSettlement(t *testing.T) {
	s := newScenario(t, 100000)
	s.gateway.delay = 5 * time.Millisecond
	for i := 0; i < 20; i++ {
		s.create(t, 100)
	}

	var wg sync.WaitGroup
	summaries := make([]models.SettlementSummary, 3)
	for i := range summaries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			summary, err := s.worker.RunSettlement(context.Background())
			if err != nil {
				t.Errorf("Run %d failed: %v", i, err)
			}
			summaries[i] = summary
		}()
	}
	wg.Wait()

	processed := 0
	for _, summary := range summaries {
		processed += summary.Processed
	}
	if processed != 20 {
		t.Errorf("Expected 20 processed across runs, got %d", processed)
	}
	for reference, count := range s.gateway.submitted {
		if count != 1 {
			t.Errorf("Reference %s submitted %d times", reference, count)
		}
	}
	if len(s.gateway.submitted) != 20 {
		t.Errorf("Expected 20 submitted payouts, got %d", len(s.gateway.submitted))
	}
}

func TestProperty_PointsConservation(t *testing.T) {
	s := newScenario(t, 10000)
	var ids []string
	for i := 0; i < 6; i++ {
		ids = append(ids, s.create(t, int64(100*(i+1))).ID)
	}
	if _, err := s.worker.RunSettlement(context.Background()); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	// часть выплат зачислена, часть отклонена шлюзом
	for i, id := range ids {
		switch i % 3 {
		case 0:
			s.gateway.setStatus(id, "settled")
		case 1:
			s.gateway.setStatus(id, "failed")
		}
		s.status(t, id)
	}

	redemptions, _ := s.redemptions.GetRedemptions(context.Background(), "earner")
	var outstanding int64
	for _, r := range redemptions {
		if r.Status != models.RedemptionStatusFailed {
			outstanding += r.Points
		}
	}
	earner := s.earner(t)
	if earner.RedeemedPoints != outstanding {
		t.Errorf("Expected redeemed %d to equal non-failed points %d", earner.RedeemedPoints, outstanding)
	}
	if earner.RedeemedPoints < 0 || earner.RedeemedPoints > earner.TotalPoints {
		t.Errorf("Ledger invariant broken: %+v", earner)
	}
	if len(redemptions) != 6 {
		t.Errorf("Expected 6 redemptions, got %d", len(redemptions))
	}
}

// Значения из описания сценариев: баланс 500, заявка на 200 через upi
func TestScenario_ReferenceValues(t *testing.T) {
	request := models.RedemptionRequest{Points: 200, Method: models.MethodUPI, Destination: "handle@bank"}

	t.Run("Success. Redemption leaves 300 available #1", func(t *testing.T) {
		s := newScenario(t, 500)
		redemption, err := s.redemptions.CreateRedemption(context.Background(), "earner", request)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if redemption.Status != models.RedemptionStatusPending {
			t.Errorf("Expected pending, got %s", redemption.Status)
		}
		if earner := s.earner(t); earner.TotalPoints != 500 || earner.RedeemedPoints != 200 || earner.Available() != 300 {
			t.Errorf("Expected 300 available, got %+v", earner)
		}
	})

	t.Run("Success. Rejection restores 500 #2", func(t *testing.T) {
		s := newScenario(t, 500)
		s.gateway.reject = &client.GatewayError{Kind: client.KindRejected, Code: "invalid_vpa"}
		redemption, err := s.redemptions.CreateRedemption(context.Background(), "earner", request)
		if err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if _, err := s.worker.RunSettlement(context.Background()); err != nil {
			t.Fatalf("Expected no error, got: '%v'", err)
		}
		if got := s.status(t, redemption.ID); got.Status != models.RedemptionStatusFailed {
			t.Errorf("Expected failed, got %s", got.Status)
		}
		if earner := s.earner(t); earner.Available() != 500 {
			t.Errorf("Expected 500 available, got %d", earner.Available())
		}
	})

	t.Run("Error. Request above balance #3", func(t *testing.T) {
		s := newScenario(t, 500)
		_, err := s.redemptions.CreateRedemption(context.Background(), "earner", models.RedemptionRequest{
			Points: 600, Method: models.MethodUPI, Destination: "handle@bank",
		})
		if !errors.Is(err, services.ErrInsufficientPoints) {
			t.Fatalf("Expected ErrInsufficientPoints, got: '%v'", err)
		}
		redemptions, _ := s.redemptions.GetRedemptions(context.Background(), "earner")
		if len(redemptions) != 0 {
			t.Errorf("Expected no redemption, got %d", len(redemptions))
		}
		if earner := s.earner(t); earner.Available() != 500 {
			t.Errorf("Expected 500 available, got %d", earner.Available())
		}
	})
}

// Ответ 429 от шлюза не отклоняет заявку: она остаётся pending, баллы не возвращаются
func TestScenario_GatewayThrottlingKeepsPending(t *testing.T) {
	s := newScenario(t, 500)

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":"rate_limited","message":"rate limit exceeded"}}`))
	}))
	defer server.Close()

	cfg := config.DefaultConfig()
	cfg.Settlement.ClaimLease = 0
	gateway := services.NewPayoutService(config.GatewayConfig{GatewayAddr: server.URL, Timeout: time.Second})
	worker := NewSettlementWorker(s.redemptions, gateway, nil, cfg.Settlement)

	redemption := s.create(t, 200)
	summary, err := worker.RunSettlement(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if diff := cmp.Diff(models.SettlementSummary{Claimed: 1, Skipped: 1}, summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}

	got, err := s.redemptions.GetRedemption(context.Background(), "earner", redemption.ID)
	if err != nil {
		t.Fatalf("Failed to get redemption: %v", err)
	}
	if got.Status != models.RedemptionStatusPending || got.Refunded || got.FailureReason != nil {
		t.Errorf("Expected untouched pending redemption, got %+v", got)
	}
	if earner := s.earner(t); earner.Available() != 300 {
		t.Errorf("Expected 300 available, got %d", earner.Available())
	}

	// до истечения Retry-After шлюз больше не вызывается
	summary, err = worker.RunSettlement(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if summary.Skipped != 1 || calls.Load() != 1 {
		t.Errorf("Expected deferred run without gateway call, got %+v and %d calls", summary, calls.Load())
	}
}
