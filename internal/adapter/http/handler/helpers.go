package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	writeErrorResponse(w, status, dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError writes err with the status mapDomainError picks for it,
// naming the offending field when there is one.
func writeDomainError(w http.ResponseWriter, message string, err error) {
	writeErrorResponse(w, mapDomainError(err), dto.ErrorResponse{
		Error:   message,
		Message: err.Error(),
		Field:   errorField(err),
	})
}

func writeErrorResponse(w http.ResponseWriter, status int, resp dto.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConfiguration):
		return http.StatusPreconditionFailed
	case errors.Is(err, domain.ErrVoucherNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoVouchers):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func errorField(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}

	var ce *domain.ConfigurationError
	if errors.As(err, &ce) {
		return ce.Field
	}

	return ""
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseCalculateQuery reads ?as_of=&grace_period=&interest_rate=. Absent
// parameters are left for the use case to default.
func parseCalculateQuery(r *http.Request) (usecase.CalculateInput, error) {
	var input usecase.CalculateInput
	q := r.URL.Query()

	if s := q.Get("as_of"); s != "" {
		d, err := domain.ParseDate(s)
		if err != nil {
			return input, domain.NewValidationError("as_of", err.Error())
		}
		input.AsOfDate = d
	}

	if s := q.Get("grace_period"); s != "" {
		days, err := strconv.Atoi(s)
		if err != nil {
			return input, domain.NewValidationError("grace_period", "must be a whole number of days")
		}
		input.GracePeriod = &days
	}

	if s := q.Get("interest_rate"); s != "" {
		rate, err := decimal.NewFromString(s)
		if err != nil {
			return input, domain.NewValidationError("interest_rate", "must be a number")
		}
		input.InterestRate = &rate
	}

	return input, nil
}
