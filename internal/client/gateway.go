package client

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorKind - класс ошибки шлюза выплат
type ErrorKind string

const (
	// KindRejected - шлюз однозначно отказал, выплата не исполнена
	KindRejected ErrorKind = "rejected"
	// KindUnreachable - ответа нет, исход выплаты неизвестен
	KindUnreachable ErrorKind = "unreachable"
	// KindMalformed - запрос не прошёл локальную проверку и не отправлялся
	KindMalformed ErrorKind = "malformed"
)

// GatewayError - ошибка обращения к шлюзу выплат
type GatewayError struct {
	Kind       ErrorKind
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *GatewayError) Error() string {
	var b strings.Builder
	b.WriteString("payout gateway ")
	b.WriteString(string(e.Kind))
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (http %d)", e.StatusCode)
	}
	if e.Code != "" {
		b.WriteString(" ")
		b.WriteString(e.Code)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// KindOf - класс ошибки шлюза или пустая строка, если ошибка не от шлюза
func KindOf(err error) ErrorKind {
	var gatewayErr *GatewayError
	if errors.As(err, &gatewayErr) {
		return gatewayErr.Kind
	}
	return ""
}

// ErrNotAttempted - вызов шлюза не состоялся (ограничитель не выдал разрешение до дедлайна)
var ErrNotAttempted = errors.New("payout gateway call not attempted")

// RateLimitError - шлюз ответил 429
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}

// BankPayoutRequest - выплата на счёт (UPI или перевод по реквизитам)
type BankPayoutRequest struct {
	ReferenceID   string `json:"reference_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	Mode          string `json:"mode"`
	VPA           string `json:"vpa,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
	IFSC          string `json:"ifsc,omitempty"`
	Narration     string `json:"narration,omitempty"`
}

// WalletPayoutRequest - выплата на кошелёк по номеру телефона
type WalletPayoutRequest struct {
	ReferenceID string `json:"reference_id"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Phone       string `json:"phone"`
	Narration   string `json:"narration,omitempty"`
}

// Режимы банковской выплаты
const (
	ModeUPI  = "UPI"
	ModeIMPS = "IMPS"
)

// PayoutResponse - состояние выплаты в шлюзе
type PayoutResponse struct {
	ID            string `json:"id"`
	ReferenceID   string `json:"reference_id"`
	Status        string `json:"status"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// ErrorResponse - тело ответа шлюза с ошибкой
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// IsSettled - выплата зачислена получателю
func IsSettled(status string) bool {
	switch strings.ToLower(status) {
	case "settled", "paid":
		return true
	}
	return false
}

// IsFailed - выплата окончательно не состоялась
func IsFailed(status string) bool {
	switch strings.ToLower(status) {
	case "failed", "rejected", "reversed", "cancelled":
		return true
	}
	return false
}
