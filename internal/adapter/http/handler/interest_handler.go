package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/infrastructure/metrics"
	"github.com/hstraders/interestledger/internal/interest"
	"github.com/hstraders/interestledger/internal/report"
	"github.com/hstraders/interestledger/internal/usecase"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

// InterestService defines the behavior needed by InterestHandler.
type InterestService interface {
	Calculate(ctx context.Context, input usecase.CalculateInput) (*interest.Result, error)
	Statement(ctx context.Context, input usecase.CalculateInput) (report.Statement, *interest.Result, error)
}

// InterestHandler handles interest calculation and export requests.
type InterestHandler struct {
	interestUC InterestService
	metrics    *metrics.Metrics
}

// NewInterestHandler creates a new InterestHandler. m may be nil.
func NewInterestHandler(interestUC InterestService, m *metrics.Metrics) *InterestHandler {
	return &InterestHandler{interestUC: interestUC, metrics: m}
}

// Calculate runs a calculation. Parameters come from the query string, and a
// JSON body, when present, overrides them.
func (h *InterestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	input, err := parseCalculateQuery(r)
	if err != nil {
		writeDomainError(w, "invalid calculation parameters", err)
		return
	}

	var req dto.CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if !req.AsOfDate.IsZero() {
		input.AsOfDate = req.AsOfDate
	}
	if req.GracePeriod != nil {
		input.GracePeriod = req.GracePeriod
	}
	if req.InterestRate != nil {
		input.InterestRate = req.InterestRate
	}

	res, err := h.interestUC.Calculate(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to calculate interest", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.CalculationFromResult(res))
}

// Statement returns the account statement as JSON rows.
func (h *InterestHandler) Statement(w http.ResponseWriter, r *http.Request) {
	st, ok := h.statement(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, dto.StatementFromReport(st))
}

// ExportXLSX downloads the statement as a spreadsheet.
func (h *InterestHandler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", contentTypeXLSX, report.WriteXLSX)
}

// ExportPDF downloads the statement as a printable PDF.
func (h *InterestHandler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "pdf", contentTypePDF, report.WritePDF)
}

func (h *InterestHandler) export(
	w http.ResponseWriter,
	r *http.Request,
	format, contentType string,
	write func(report.Statement, io.Writer) error,
) {
	st, ok := h.statement(w, r)
	if !ok {
		return
	}

	// render fully before any header is written
	var buf bytes.Buffer
	if err := write(st, &buf); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render "+format, err.Error())
		return
	}

	if h.metrics != nil {
		h.metrics.ExportsGenerated.WithLabelValues(format).Inc()
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+report.FileName(st.PartyName, st.To, format)+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *InterestHandler) statement(w http.ResponseWriter, r *http.Request) (report.Statement, bool) {
	input, err := parseCalculateQuery(r)
	if err != nil {
		writeDomainError(w, "invalid calculation parameters", err)
		return report.Statement{}, false
	}

	st, _, err := h.interestUC.Statement(r.Context(), input)
	if err != nil {
		writeDomainError(w, "failed to build statement", err)
		return report.Statement{}, false
	}

	return st, true
}
