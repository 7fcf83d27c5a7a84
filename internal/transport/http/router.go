// Package httptransport assembles the HTTP surface: middleware chain, health
// and metrics endpoints, and the identifier routes. It holds no business
// logic.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	idhandler "idcheck/internal/identifier/handler"
	"idcheck/pkg/platform/middleware/metadata"
	"idcheck/pkg/platform/middleware/requestid"
)

// NewRouter wires all public endpoints.
func NewRouter(identifiers *idhandler.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(requestid.Middleware)
	r.Use(metadata.ClientMetadata)
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	identifiers.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
