package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domainvalidation "github.com/amarasa/lead-shield/internal/domain/validation"
	"github.com/amarasa/lead-shield/internal/service/validation"
)

// Handler serves the validation API endpoints
type Handler struct {
	logger    *zap.Logger
	service   validation.Service
	repo      validation.ResultRepository
	validator *validator.Validate
}

// NewHandler creates a new API handler
func NewHandler(logger *zap.Logger, svc validation.Service, repo validation.ResultRepository) *Handler {
	return &Handler{
		logger:    logger,
		service:   svc,
		repo:      repo,
		validator: validator.New(),
	}
}

// Validate handles POST /api/v1/validate
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var body ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_JSON", "request body is not valid JSON")
		return
	}

	if err := h.validator.Struct(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	fields := make([]domainvalidation.FieldDescriptor, 0, len(body.Fields))
	for _, f := range body.Fields {
		fields = append(fields, domainvalidation.FieldDescriptor{
			ID:    f.ID,
			Kind:  domainvalidation.ParseFieldKind(f.Kind),
			Label: f.Label,
		})
	}

	req := domainvalidation.NewRequest(
		domainvalidation.ParseFieldKind(body.FieldKind),
		body.Value,
		fields,
	)

	verdict := h.service.Validate(r.Context(), req)

	h.writeJSON(w, http.StatusOK, ValidateResponse{
		Valid:         verdict.IsValid,
		Message:       verdict.Message,
		DerivedFields: verdict.SideEffects,
		Meta: ResponseMeta{
			RequestID: req.ID.String(),
			Timestamp: time.Now().UTC(),
		},
	})
}

// ListChecks handles GET /api/v1/checks
func (h *Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	if h.repo == nil {
		h.writeError(w, http.StatusServiceUnavailable, "AUDIT_DISABLED", "no audit database is configured")
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 500 {
			h.writeError(w, http.StatusBadRequest, "INVALID_LIMIT", "limit must be between 1 and 500")
			return
		}
		limit = parsed
	}

	records, err := h.repo.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Error("failed to list verification checks", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list verification checks")
		return
	}

	h.writeJSON(w, http.StatusOK, records)
}

// Health handles GET /healthz
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string) {
	h.writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}
