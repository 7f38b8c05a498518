package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/denmor86/ya-redemption/internal/storage"
	"github.com/denmor86/ya-redemption/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func TestLedgerService_GetBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLedger := mocks.NewMockLedgerStorage(ctrl)
	initLogger(t)

	ledger := NewLedger(mockLedger)

	testCases := []struct {
		Name           string
		SetupMocks     func()
		ExpectedError  error
		ExpectedEarner *models.Earner
	}{
		{
			Name: "Error. Earner not found #1",
			SetupMocks: func() {
				mockLedger.EXPECT().GetEarner(gomock.Any(), "earner").Return(nil, storage.ErrEarnerNotFound)
			},
			ExpectedError: ErrEarnerNotFound,
		},
		{
			Name: "Error. Storage failure #2",
			SetupMocks: func() {
				mockLedger.EXPECT().GetEarner(gomock.Any(), "earner").Return(nil, errors.New("connection refused"))
			},
			ExpectedError: errors.New("connection refused"),
		},
		{
			Name: "Success. #3",
			SetupMocks: func() {
				mockLedger.EXPECT().GetEarner(gomock.Any(), "earner").Return(&models.Earner{EarnerID: "earner", TotalPoints: 1000, RedeemedPoints: 300}, nil)
			},
			ExpectedEarner: &models.Earner{EarnerID: "earner", TotalPoints: 1000, RedeemedPoints: 300},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			earner, err := ledger.GetBalance(context.Background(), "earner")
			if tc.ExpectedError != nil {
				if err == nil || err.Error() != tc.ExpectedError.Error() {
					t.Errorf("Expected error: '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if diff := cmp.Diff(tc.ExpectedEarner, earner); diff != "" {
				t.Errorf("Earner mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Параллельные заявки одного держателя не уводят баланс в минус
func TestRedemptionService_ConcurrentCreateKeepsBalance(t *testing.T) {
	initLogger(t)

	memory := storage.NewMemoryStorage()
	memory.AddEarner("earner", 1000)
	service := NewRedemptions(memory, NewLedger(memory), nil, nil, testRules())

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.CreateRedemption(context.Background(), "earner", models.RedemptionRequest{
				Points: 300, Method: models.MethodUPI, Destination: "user@okbank",
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, ErrInsufficientPoints) {
				t.Errorf("Unexpected error: '%v'", err)
			}
		}()
	}
	wg.Wait()

	if succeeded != 3 {
		t.Errorf("Expected 3 redemptions, got %d", succeeded)
	}
	earner, _ := memory.GetEarner(context.Background(), "earner")
	if earner.RedeemedPoints != 900 || earner.Available() != 100 {
		t.Errorf("Unexpected balance: %+v", earner)
	}

	redemptions, _ := service.GetRedemptions(context.Background(), "earner")
	if len(redemptions) != 3 {
		t.Errorf("Expected 3 stored redemptions, got %d", len(redemptions))
	}
	for _, r := range redemptions {
		if r.Status != models.RedemptionStatusPending || r.CreatedAt.After(time.Now()) {
			t.Errorf("Unexpected redemption: %+v", r)
		}
	}
}
