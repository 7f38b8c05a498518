package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/denmor86/ya-redemption/internal/client"
	"github.com/denmor86/ya-redemption/internal/config"
	"github.com/denmor86/ya-redemption/internal/logger"
	"github.com/denmor86/ya-redemption/internal/models"
	"github.com/google/uuid"
)

const referencePrefix = "rdm_"

// ReferenceID - постоянный идентификатор выплаты для шлюза, выводится из идентификатора заявки.
// По нему шлюз распознаёт повторную отправку той же заявки.
func ReferenceID(redemptionID string) string {
	return referencePrefix + strings.ReplaceAll(redemptionID, "-", "")
}

type PayoutService struct {
	Client  *client.Client
	Limiter *client.RateLimiter
	// NewToken - генератор ключа идентичности, новый на каждую попытку
	NewToken func() string
}

func NewPayoutService(cfg config.GatewayConfig) PayoutGateway {
	return &PayoutService{
		Client:   client.NewClient(strings.TrimSuffix(cfg.GatewayAddr, "/"), cfg.APIKey, &http.Client{Timeout: cfg.Timeout}),
		Limiter:  client.NewRateLimiter(cfg.RPS),
		NewToken: uuid.NewString,
	}
}

// Submit отправляет выплату в шлюз. Ошибки шлюза имеют тип *client.GatewayError.
func (s *PayoutService) Submit(ctx context.Context, payout models.Payout) (*models.PayoutResult, error) {
	if err := validatePayout(payout); err != nil {
		return nil, err
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", client.ErrNotAttempted, err)
	}

	token := s.NewToken()
	amount := payout.Amount.StringFixed(2)
	reference := ReferenceID(payout.RedemptionID)

	var (
		resp *client.PayoutResponse
		err  error
	)
	switch payout.Method {
	case models.MethodUPI:
		resp, err = s.Client.CreateBankPayout(ctx, token, client.BankPayoutRequest{
			ReferenceID: reference,
			Amount:      amount,
			Currency:    payout.Currency,
			Mode:        client.ModeUPI,
			VPA:         payout.Payee.VPA,
		})
	case models.MethodBankTransfer:
		resp, err = s.Client.CreateBankPayout(ctx, token, client.BankPayoutRequest{
			ReferenceID:   reference,
			Amount:        amount,
			Currency:      payout.Currency,
			Mode:          client.ModeIMPS,
			AccountNumber: payout.Payee.AccountNumber,
			IFSC:          payout.Payee.IFSC,
		})
	case models.MethodWallet:
		resp, err = s.Client.CreateWalletPayout(ctx, token, client.WalletPayoutRequest{
			ReferenceID: reference,
			Amount:      amount,
			Currency:    payout.Currency,
			Phone:       payout.Payee.Phone,
		})
	}
	if err != nil {
		s.checkRateLimit(err)
		return nil, err
	}
	return &models.PayoutResult{
		ExternalPayoutID: resp.ID,
		ExternalStatus:   resp.Status,
		FailureReason:    resp.FailureReason,
	}, nil
}

// CheckStatus запрашивает состояние выплаты. Только чтение.
func (s *PayoutService) CheckStatus(ctx context.Context, externalPayoutID string) (*models.PayoutResult, error) {
	if externalPayoutID == "" {
		return nil, &client.GatewayError{Kind: client.KindMalformed, Message: "empty payout id"}
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", client.ErrNotAttempted, err)
	}
	resp, err := s.Client.GetPayout(ctx, externalPayoutID)
	if err != nil {
		s.checkRateLimit(err)
		return nil, err
	}
	return &models.PayoutResult{
		ExternalPayoutID: resp.ID,
		ExternalStatus:   resp.Status,
		FailureReason:    resp.FailureReason,
	}, nil
}

func (s *PayoutService) checkRateLimit(err error) {
	var rateLimitErr *client.RateLimitError
	if errors.As(err, &rateLimitErr) {
		logger.Warn("Too many requests to payout gateway, pause for", rateLimitErr.RetryAfter)
		s.Limiter.BlockFor(rateLimitErr.RetryAfter)
	}
}

func validatePayout(payout models.Payout) error {
	malformed := func(message string) error {
		return &client.GatewayError{Kind: client.KindMalformed, Message: message}
	}
	if payout.RedemptionID == "" {
		return malformed("missing redemption id")
	}
	if !payout.Amount.IsPositive() {
		return malformed("amount must be positive")
	}
	if payout.Currency == "" {
		return malformed("missing currency")
	}
	switch payout.Method {
	case models.MethodUPI:
		if payout.Payee.VPA == "" {
			return malformed("missing vpa")
		}
	case models.MethodBankTransfer:
		if payout.Payee.AccountNumber == "" || payout.Payee.IFSC == "" {
			return malformed("missing bank account details")
		}
	case models.MethodWallet:
		if payout.Payee.Phone == "" {
			return malformed("missing wallet phone")
		}
	default:
		return malformed("unsupported payout method " + string(payout.Method))
	}
	return nil
}
