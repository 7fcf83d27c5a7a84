package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"idcheck/internal/identifier"
	"idcheck/internal/identifier/models"
	"idcheck/internal/identifier/service"
	"idcheck/pkg/platform/httputil"
	"idcheck/pkg/requestcontext"
)

// Service defines the interface for identifier operations.
type Service interface {
	Validate(ctx context.Context, number string, sep byte, kind identifier.Kind) *service.ValidateResult
	Format(ctx context.Context, number string, sep byte, kind identifier.Kind, mask string) (string, error)
	CheckDigit(ctx context.Context, payload string) string
}

// Handler wires identifier endpoints to the identifier service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an identifier handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts identifier endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/identifiers/validate", h.HandleValidate)
	r.Post("/v1/identifiers/format", h.HandleFormat)
	r.Post("/v1/identifiers/check-digit", h.HandleCheckDigit)
}

// HandleValidate handles POST /v1/identifiers/validate requests. Rejected
// identifiers are a 200 with valid=false: the data failed, not the request.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[models.ValidateRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	result := h.service.Validate(ctx, req.Number, req.ParsedSeparator(), req.ParsedKind())

	h.logger.InfoContext(ctx, "identifier validated",
		"request_id", requestID,
		"kind", req.Kind,
		"outcome", result.Outcome.String(),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, models.ValidateResponse{
		Valid:        result.Valid(),
		Outcome:      result.Outcome.String(),
		Canonical:    result.Canonical.String(),
		Formatted:    result.Formatted,
		IssuingState: result.IssuingState,
	})
}

// HandleFormat handles POST /v1/identifiers/format requests.
func (h *Handler) HandleFormat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.FormatRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	formatted, err := h.service.Format(ctx, req.Number, req.ParsedSeparator(), req.ParsedKind(), req.Mask)
	if err != nil {
		h.logger.InfoContext(ctx, "format rejected",
			"request_id", requestID,
			"kind", req.Kind,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.FormatResponse{Formatted: formatted})
}

// HandleCheckDigit handles POST /v1/identifiers/check-digit requests.
func (h *Handler) HandleCheckDigit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[models.CheckDigitRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, models.CheckDigitResponse{
		CheckDigit: h.service.CheckDigit(ctx, req.Payload),
	})
}
