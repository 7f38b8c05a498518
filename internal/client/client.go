package client

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client - http клиент шлюза выплат
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
}

func NewClient(baseURL string, apiKey string, client HTTPClient) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

// CreateBankPayout - выплата через UPI или по банковским реквизитам
func (c *Client) CreateBankPayout(ctx context.Context, idempotencyKey string, payout BankPayoutRequest) (*PayoutResponse, error) {
	return c.do(ctx, http.MethodPost, "/v1/payouts/bank", idempotencyKey, payout)
}

// CreateWalletPayout - выплата на кошелёк
func (c *Client) CreateWalletPayout(ctx context.Context, idempotencyKey string, payout WalletPayoutRequest) (*PayoutResponse, error) {
	return c.do(ctx, http.MethodPost, "/v1/payouts/wallet", idempotencyKey, payout)
}

// GetPayout - текущее состояние выплаты
func (c *Client) GetPayout(ctx context.Context, payoutID string) (*PayoutResponse, error) {
	return c.do(ctx, http.MethodGet, "/v1/payouts/"+url.PathEscape(payoutID), "", nil)
}

func (c *Client) do(ctx context.Context, method string, path string, idempotencyKey string, payload any) (*PayoutResponse, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, &GatewayError{Kind: KindMalformed, Message: "failed to encode request", Err: err}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, &GatewayError{Kind: KindMalformed, Message: "failed to build request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &GatewayError{Kind: KindUnreachable, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{Kind: KindUnreachable, StatusCode: resp.StatusCode, Message: "failed to read response", Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, HandleErrorResponse(resp, data)
	}

	var result PayoutResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &GatewayError{Kind: KindUnreachable, StatusCode: resp.StatusCode, Message: "undecodable response", Err: err}
	}
	// принятая выплата без идентификатора - исход неизвестен
	if result.ID == "" {
		return nil, &GatewayError{Kind: KindUnreachable, StatusCode: resp.StatusCode, Message: "response without payout id"}
	}
	return &result, nil
}

// HandleErrorResponse - классификация ответа шлюза с ошибкой
func HandleErrorResponse(resp *http.Response, body []byte) error {
	gatewayErr := &GatewayError{StatusCode: resp.StatusCode}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		gatewayErr.Code = errResp.Error.Code
		gatewayErr.Message = errResp.Error.Message
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		gatewayErr.Kind = KindRejected
		gatewayErr.Err = NewRateLimitError(resp.Header)
	case resp.StatusCode >= http.StatusInternalServerError:
		gatewayErr.Kind = KindUnreachable
	default:
		gatewayErr.Kind = KindRejected
	}
	return gatewayErr
}
