package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

type customerService interface {
	CreateCustomer(ctx context.Context, input application.CustomerInput) (reservation.Customer, error)
	ListCustomers(ctx context.Context) []reservation.Customer
}

type CustomerHandler struct {
	service   customerService
	responder responder
	logger    *slog.Logger
}

func NewCustomerHandler(service customerService, logger *slog.Logger) *CustomerHandler {
	base := defaultLogger(logger)
	return &CustomerHandler{service: service, responder: newResponder(base), logger: base}
}

type customerRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type customerResponse struct {
	Customer customerDTO `json:"customer"`
}

type customerListResponse struct {
	Customers []customerDTO `json:"customers"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlerLogger(ctx, h.logger, "CustomerHandler", "Create", "error_kind", "bad_request").
			WarnContext(ctx, "failed to decode customer request", "error", err)
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	customer, err := h.service.CreateCustomer(ctx, application.CustomerInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	h.responder.writeJSON(ctx, w, http.StatusCreated, customerResponse{Customer: toCustomerDTO(customer)})
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers := h.service.ListCustomers(r.Context())
	out := make([]customerDTO, 0, len(customers))
	for _, customer := range customers {
		out = append(out, toCustomerDTO(customer))
	}
	h.responder.writeJSON(r.Context(), w, http.StatusOK, customerListResponse{Customers: out})
}
