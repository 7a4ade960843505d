package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/usecase"
)

const defaultVoucherPageSize = 50

// VoucherService defines the behavior needed by VoucherHandler.
type VoucherService interface {
	CreateVoucher(ctx context.Context, input usecase.CreateVoucherInput) (*domain.Voucher, error)
	GetVoucher(ctx context.Context, id string) (*domain.Voucher, error)
	UpdateVoucher(ctx context.Context, input usecase.UpdateVoucherInput) (*domain.Voucher, error)
	DeleteVoucher(ctx context.Context, id string) error
	ListVouchers(ctx context.Context, input usecase.ListVouchersInput) ([]*domain.Voucher, error)
	ImportVouchers(ctx context.Context, inputs []usecase.CreateVoucherInput) ([]*domain.Voucher, error)
}

// VoucherHandler handles voucher-related HTTP requests.
type VoucherHandler struct {
	voucherUC VoucherService
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(voucherUC VoucherService) *VoucherHandler {
	return &VoucherHandler{voucherUC: voucherUC}
}

// Create creates a new voucher.
func (h *VoucherHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.CreateVoucher(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to create voucher", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.VoucherFromDomain(voucher))
}

// Import creates a batch of vouchers in one transaction.
func (h *VoucherHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req dto.ImportVouchersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	vouchers, err := h.voucherUC.ImportVouchers(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to import vouchers", err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.VouchersFromDomain(vouchers))
}

// Get retrieves a voucher by ID.
func (h *VoucherHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	voucher, err := h.voucherUC.GetVoucher(r.Context(), id)
	if err != nil {
		writeDomainError(w, "failed to get voucher", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Update replaces a voucher's fields.
func (h *VoucherHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	var req dto.UpdateVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	voucher, err := h.voucherUC.UpdateVoucher(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, "failed to update voucher", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.VoucherFromDomain(voucher))
}

// Delete removes a voucher.
func (h *VoucherHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing voucher ID", "")
		return
	}

	if err := h.voucherUC.DeleteVoucher(r.Context(), id); err != nil {
		writeDomainError(w, "failed to delete voucher", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists vouchers, newest first unless ?sort= and ?dir= say otherwise.
func (h *VoucherHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sort, err := domain.ParseVoucherSort(q.Get("sort"), q.Get("dir"))
	if err != nil {
		writeDomainError(w, "invalid sort", err)
		return
	}

	limit := parseIntQuery(r, "limit", defaultVoucherPageSize)
	offset := parseIntQuery(r, "offset", 0)

	vouchers, err := h.voucherUC.ListVouchers(r.Context(), usecase.ListVouchersInput{
		Sort:   sort,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeDomainError(w, "failed to list vouchers", err)
		return
	}

	dir := "desc"
	if sort.Ascending {
		dir = "asc"
	}

	writeJSON(w, http.StatusOK, dto.ListVouchersResponse{
		Vouchers: dto.VouchersFromDomain(vouchers),
		Sort:     string(sort.Key),
		Dir:      dir,
		Limit:    limit,
		Offset:   offset,
	})
}
