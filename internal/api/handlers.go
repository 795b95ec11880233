package api

import (
	"net/http"

	"github.com/ignite/author-registry/internal/service/author"
)

// Handlers bundles the request handlers with their service dependencies.
type Handlers struct {
	authors *author.Service
}

// NewHandlers creates the handler set for the author registry API.
func NewHandlers(authors *author.Service) *Handlers {
	return &Handlers{authors: authors}
}

// HealthCheck reports liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
