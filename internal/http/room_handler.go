package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

type roomService interface {
	RegisterRoom(ctx context.Context, input application.RoomInput) (reservation.Room, error)
	FindRoom(ctx context.Context, number string) (reservation.Room, error)
	ListRooms(ctx context.Context) []reservation.Room
	SearchRooms(ctx context.Context, params application.SearchParams) ([]reservation.Room, error)
}

type RoomHandler struct {
	service   roomService
	responder responder
	logger    *slog.Logger
}

func NewRoomHandler(service roomService, logger *slog.Logger) *RoomHandler {
	base := defaultLogger(logger)
	return &RoomHandler{service: service, responder: newResponder(base), logger: base}
}

func (h *RoomHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return handlerLogger(ctx, h.logger, "RoomHandler", operation, attrs...)
}

type roomRequest struct {
	Number        string           `json:"number"`
	Price         *decimal.Decimal `json:"price"`
	Type          string           `json:"type"`
	Complimentary bool             `json:"complimentary"`
}

func (r roomRequest) toInput() application.RoomInput {
	return application.RoomInput{
		Number:        r.Number,
		Price:         r.Price,
		Type:          r.Type,
		Complimentary: r.Complimentary,
	}
}

type roomResponse struct {
	Room roomDTO `json:"room"`
}

type roomListResponse struct {
	Rooms []roomDTO `json:"rooms"`
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req roomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(ctx, "Create", "error_kind", "bad_request").WarnContext(ctx, "failed to decode room request", "error", err)
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	room, err := h.service.RegisterRoom(ctx, req.toInput())
	if err != nil {
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	h.responder.writeJSON(ctx, w, http.StatusCreated, roomResponse{Room: toRoomDTO(room)})
}

func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	room, err := h.service.FindRoom(ctx, mux.Vars(r)["number"])
	if err != nil {
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	h.responder.writeJSON(ctx, w, http.StatusOK, roomResponse{Room: toRoomDTO(room)})
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	rooms := h.service.ListRooms(r.Context())
	h.responder.writeJSON(r.Context(), w, http.StatusOK, roomListResponse{Rooms: toRoomDTOs(rooms)})
}

// Available lists the rooms that can be booked for the queried stay.
func (h *RoomHandler) Available(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stay, err := stayFromQuery(r)
	if err != nil {
		h.log(ctx, "Available", "error_kind", "bad_request").WarnContext(ctx, "invalid stay query", "error", err)
		h.responder.writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	rooms, err := h.service.SearchRooms(ctx, application.SearchParams{Stay: stay, Filter: filter})
	if err != nil {
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	h.responder.writeJSON(ctx, w, http.StatusOK, roomListResponse{Rooms: toRoomDTOs(rooms)})
}
