package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hstraders/interestledger/internal/adapter/http/dto"
	"github.com/hstraders/interestledger/internal/domain"
	"github.com/hstraders/interestledger/internal/usecase"
)

// SettingsService defines the behavior needed by SettingsHandler.
type SettingsService interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, input usecase.UpdateSettingsInput) (*domain.Settings, error)
}

// SettingsHandler handles settings requests.
type SettingsHandler struct {
	settingsUC SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsUC SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsUC: settingsUC}
}

// Get returns the current settings.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsUC.GetSettings(r.Context())
	if err != nil {
		writeDomainError(w, "failed to get settings", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(settings))
}

// Update applies a partial settings update.
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	settings, err := h.settingsUC.UpdateSettings(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, "failed to update settings", err)
		return
	}

	writeJSON(w, http.StatusOK, dto.SettingsFromDomain(settings))
}
