package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявок на вывод
const (
	RedemptionStatusPending   = "pending"
	RedemptionStatusProcessed = "processed"
	RedemptionStatusCompleted = "completed"
	RedemptionStatusFailed    = "failed"
)

// Статус заявки для пользователя
const (
	DisplayStatusPending    = "pending"
	DisplayStatusProcessing = "processing"
	DisplayStatusCompleted  = "completed"
	DisplayStatusFailed     = "failed"
)

// Method - способ выплаты (закрытый набор)
type Method string

const (
	MethodUPI          Method = "upi"
	MethodBankTransfer Method = "bank_transfer"
	MethodWallet       Method = "wallet"
)

// Valid проверяет, что способ выплаты входит в поддерживаемый набор
func (m Method) Valid() bool {
	switch m {
	case MethodUPI, MethodBankTransfer, MethodWallet:
		return true
	}
	return false
}

// Payee - разобранные реквизиты получателя. Заполнены только поля, относящиеся к способу выплаты.
type Payee struct {
	VPA           string
	AccountNumber string
	IFSC          string
	Phone         string
}

// Redemption - модель заявки на вывод баллов
type Redemption struct {
	ID               string
	EarnerID         string
	Points           int64
	Method           Method
	Destination      string
	Status           string
	ExternalPayoutID *string
	ExternalStatus   *string
	FailureReason    *string
	Refunded         bool
	Attempts         int
	CreatedAt        time.Time
	UpdatedAt        time.Time
	ProcessedAt      *time.Time
}

// DisplayStatus - статус заявки, который видит пользователь
func (r Redemption) DisplayStatus() string {
	switch r.Status {
	case RedemptionStatusProcessed:
		return DisplayStatusProcessing
	case RedemptionStatusCompleted:
		return DisplayStatusCompleted
	case RedemptionStatusFailed:
		return DisplayStatusFailed
	default:
		return DisplayStatusPending
	}
}

// RedemptionRequest - модель запроса на вывод баллов, приходит извне
type RedemptionRequest struct {
	Points      int64  `json:"points"`
	Method      Method `json:"method"`
	Destination string `json:"destination"`
}

// RedemptionResponse - модель заявки для выдачи
type RedemptionResponse struct {
	ID               string `json:"id"`
	Points           int64  `json:"points"`
	Method           Method `json:"method"`
	Status           string `json:"status"`
	ExternalPayoutID string `json:"external_payout_id,omitempty"`
	FailureReason    string `json:"failure_reason,omitempty"`
	CreatedAt        string `json:"created_at"`
	ProcessedAt      string `json:"processed_at,omitempty"`
}

// NewRedemptionResponse - преобразование заявки в модель выдачи
func NewRedemptionResponse(r Redemption) RedemptionResponse {
	resp := RedemptionResponse{
		ID:        r.ID,
		Points:    r.Points,
		Method:    r.Method,
		Status:    r.DisplayStatus(),
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.ExternalPayoutID != nil {
		resp.ExternalPayoutID = *r.ExternalPayoutID
	}
	if r.FailureReason != nil && r.Status == RedemptionStatusFailed {
		resp.FailureReason = *r.FailureReason
	}
	if r.ProcessedAt != nil {
		resp.ProcessedAt = r.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}

// Payout - данные для выплаты через шлюз
type Payout struct {
	RedemptionID string
	Method       Method
	Payee        Payee
	Amount       decimal.Decimal
	Currency     string
}

// PayoutResult - состояние выплаты по данным шлюза
type PayoutResult struct {
	ExternalPayoutID string
	ExternalStatus   string
	FailureReason    string
}

// RefundResult - итог возврата баллов при неуспешной выплате
type RefundResult struct {
	EarnerID        string
	Points          int64
	AlreadyRefunded bool
	Clamped         bool
}

// SettlementSummary - итог одного прохода планировщика
type SettlementSummary struct {
	Claimed   int `json:"claimed"`
	Processed int `json:"processed"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}
