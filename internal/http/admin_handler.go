package http

import (
	"context"
	"log/slog"
	"net/http"
)

type seeder interface {
	SeedDemoData(ctx context.Context) error
}

type AdminHandler struct {
	service   seeder
	responder responder
}

func NewAdminHandler(service seeder, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{service: service, responder: newResponder(logger)}
}

type seedResponse struct {
	Status string `json:"status"`
}

// Seed loads the demo data set. Repeating the call changes nothing.
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	if err := h.service.SeedDemoData(r.Context()); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, seedResponse{Status: "seeded"})
}
