package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/domain"
)

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/vouchers?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/vouchers?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", domain.NewValidationError("amount", "must be positive"), http.StatusBadRequest},
		{"configuration", domain.NewConfigurationError("party_name", "required"), http.StatusPreconditionFailed},
		{"voucher not found", domain.ErrVoucherNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", domain.ErrVoucherNotFound), http.StatusNotFound},
		{"no vouchers", domain.ErrNoVouchers, http.StatusUnprocessableEntity},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" || resp.Message != "detail" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}
}

func TestWriteDomainErrorNamesField(t *testing.T) {
	rr := httptest.NewRecorder()

	writeDomainError(rr, "failed", domain.NewConfigurationError("party_name", "party name is required"))

	if rr.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Field != "party_name" {
		t.Fatalf("expected field party_name, got %+v", resp)
	}
}

func TestParseCalculateQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/interest/statement?as_of=2024-03-01&grace_period=0&interest_rate=12.5", nil)

	input, err := parseCalculateQuery(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !input.AsOfDate.Equal(domain.NewDate(2024, 3, 1)) {
		t.Fatalf("expected as_of 2024-03-01, got %s", input.AsOfDate)
	}
	if input.GracePeriod == nil || *input.GracePeriod != 0 {
		t.Fatalf("expected explicit zero grace period, got %v", input.GracePeriod)
	}
	if input.InterestRate == nil || input.InterestRate.String() != "12.5" {
		t.Fatalf("expected rate 12.5, got %v", input.InterestRate)
	}

	empty, err := parseCalculateQuery(httptest.NewRequest(http.MethodGet, "/interest/statement", nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.AsOfDate.IsZero() || empty.GracePeriod != nil || empty.InterestRate != nil {
		t.Fatalf("expected empty input, got %+v", empty)
	}
}

func TestParseCalculateQueryRejectsMalformedValues(t *testing.T) {
	tests := []struct {
		query string
		field string
	}{
		{"as_of=yesterday", "as_of"},
		{"grace_period=ten", "grace_period"},
		{"interest_rate=abc", "interest_rate"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.field, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/interest/statement?"+tt.query, nil)
			_, err := parseCalculateQuery(req)

			var ve *domain.ValidationError
			if !errors.As(err, &ve) || ve.Field != tt.field {
				t.Fatalf("expected validation error on %s, got %v", tt.field, err)
			}
		})
	}
}
