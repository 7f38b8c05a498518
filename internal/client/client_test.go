package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/denmor86/ya-redemption/internal/client/mocks"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/mock/gomock"
)

func newResponse(status int, body string, header http.Header) *http.Response {
	if header == nil {
		header = make(http.Header)
	}
	return &http.Response{
		StatusCode:    status,
		Body:          io.NopCloser(bytes.NewBufferString(body)),
		ContentLength: int64(len(body)),
		Header:        header,
	}
}

func TestCreateBankPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	payout := BankPayoutRequest{
		ReferenceID: "rdm_0001",
		Amount:      "50.00",
		Currency:    "INR",
		Mode:        ModeUPI,
		VPA:         "user@okbank",
	}

	testCases := []struct {
		TestName         string
		SetupMocks       func()
		ExpectedResponse *PayoutResponse
		ExpectedKind     ErrorKind
	}{
		{
			TestName: "Success. Payout accepted #1",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
					if req.Method != http.MethodPost || req.URL.String() != "http://gateway/v1/payouts/bank" {
						t.Errorf("Unexpected request: %s %s", req.Method, req.URL)
					}
					if req.Header.Get("Idempotency-Key") != "token-1" {
						t.Errorf("Expected idempotency key 'token-1', got '%s'", req.Header.Get("Idempotency-Key"))
					}
					if req.Header.Get("Authorization") != "Bearer key" {
						t.Errorf("Expected bearer authorization, got '%s'", req.Header.Get("Authorization"))
					}
					body, _ := io.ReadAll(req.Body)
					expected := `{"reference_id":"rdm_0001","amount":"50.00","currency":"INR","mode":"UPI","vpa":"user@okbank"}`
					if string(body) != expected {
						t.Errorf("Expected body %s, got %s", expected, body)
					}
					return newResponse(http.StatusCreated, `{"id":"pout_1","reference_id":"rdm_0001","status":"queued"}`, nil), nil
				})
			},
			ExpectedResponse: &PayoutResponse{ID: "pout_1", ReferenceID: "rdm_0001", Status: "queued"},
		},
		{
			TestName: "Error. Gateway rejected #2",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(
					newResponse(http.StatusUnprocessableEntity, `{"error":{"code":"invalid_vpa","message":"vpa does not exist"}}`, nil), nil)
			},
			ExpectedKind: KindRejected,
		},
		{
			TestName: "Error. Gateway 5xx #3",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusBadGateway, "", nil), nil)
			},
			ExpectedKind: KindUnreachable,
		},
		{
			TestName: "Error. Transport failure #4",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection reset by peer"))
			},
			ExpectedKind: KindUnreachable,
		},
		{
			TestName: "Error. Undecodable success body #5",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(newResponse(http.StatusOK, "<html>", nil), nil)
			},
			ExpectedKind: KindUnreachable,
		},
		{
			TestName: "Error. Too many requests #6",
			SetupMocks: func() {
				mockHTTPClient.EXPECT().Do(gomock.Any()).Return(
					newResponse(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"120"}}), nil)
			},
			ExpectedKind: KindRejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.TestName, func(t *testing.T) {
			tc.SetupMocks()
			c := NewClient("http://gateway", "key", mockHTTPClient)

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			resp, err := c.CreateBankPayout(ctx, "token-1", payout)
			if tc.ExpectedKind == "" {
				if err != nil {
					t.Fatalf("Expected no error, got: '%v'", err)
				}
				if diff := cmp.Diff(tc.ExpectedResponse, resp); diff != "" {
					t.Errorf("Response mismatch (-want +got):\n%s", diff)
				}
				return
			}
			if kind := KindOf(err); kind != tc.ExpectedKind {
				t.Errorf("Expected error kind: '%v', got: '%v' (%v)", tc.ExpectedKind, kind, err)
			}
		})
	}
}

func TestRateLimitErrorCarriesRetryAfter(t *testing.T) {
	err := HandleErrorResponse(newResponse(http.StatusTooManyRequests, "", http.Header{"Retry-After": []string{"30"}}), nil)

	var rateLimitErr *RateLimitError
	if !errors.As(err, &rateLimitErr) {
		t.Fatalf("Expected RateLimitError in chain, got: '%v'", err)
	}
	if rateLimitErr.RetryAfter != 30*time.Second {
		t.Errorf("Expected retry after 30s, got: %v", rateLimitErr.RetryAfter)
	}
}

func TestGetPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)

	mockHTTPClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet || req.URL.Path != "/v1/payouts/pout_1" {
			t.Errorf("Unexpected request: %s %s", req.Method, req.URL)
		}
		if req.Header.Get("Idempotency-Key") != "" {
			t.Errorf("Status poll must not carry idempotency key")
		}
		return newResponse(http.StatusOK, `{"id":"pout_1","reference_id":"rdm_0001","status":"failed","failure_reason":"account closed"}`, nil), nil
	})

	c := NewClient("http://gateway", "key", mockHTTPClient)
	resp, err := c.GetPayout(context.Background(), "pout_1")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	expected := &PayoutResponse{ID: "pout_1", ReferenceID: "rdm_0001", Status: "failed", FailureReason: "account closed"}
	if diff := cmp.Diff(expected, resp); diff != "" {
		t.Errorf("Response mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusVocabulary(t *testing.T) {
	testCases := []struct {
		Status  string
		Settled bool
		Failed  bool
	}{
		{Status: "settled", Settled: true},
		{Status: "PAID", Settled: true},
		{Status: "reversed", Failed: true},
		{Status: "cancelled", Failed: true},
		{Status: "processing"},
		{Status: "in_transit"},
	}
	for _, tc := range testCases {
		if IsSettled(tc.Status) != tc.Settled || IsFailed(tc.Status) != tc.Failed {
			t.Errorf("Status '%s': expected settled=%v failed=%v", tc.Status, tc.Settled, tc.Failed)
		}
	}
}
