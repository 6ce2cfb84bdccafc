package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/example/hotel-reservations/internal/application"
	"github.com/example/hotel-reservations/internal/reservation"
)

type bookingService interface {
	Book(ctx context.Context, params application.BookParams) (reservation.Reservation, error)
	Recommend(ctx context.Context, params application.RecommendParams) reservation.Recommendations
	ReservationsOf(ctx context.Context, email string) []reservation.Reservation
	AllReservations(ctx context.Context) []reservation.Reservation
}

type ReservationHandler struct {
	service       bookingService
	defaultWindow int
	responder     responder
	logger        *slog.Logger
}

// NewReservationHandler builds the booking endpoints. defaultWindow is the
// lookahead used when a request does not name one.
func NewReservationHandler(service bookingService, defaultWindow int, logger *slog.Logger) *ReservationHandler {
	base := defaultLogger(logger)
	if defaultWindow <= 0 {
		defaultWindow = 7
	}
	return &ReservationHandler{service: service, defaultWindow: defaultWindow, responder: newResponder(base), logger: base}
}

func (h *ReservationHandler) log(ctx context.Context, operation string, attrs ...any) *slog.Logger {
	return handlerLogger(ctx, h.logger, "ReservationHandler", operation, attrs...)
}

type reservationRequest struct {
	Email      string           `json:"email"`
	RoomNumber string           `json:"room_number"`
	CheckIn    reservation.Date `json:"check_in"`
	CheckOut   reservation.Date `json:"check_out"`
	WindowDays int              `json:"window_days,omitempty"`
}

type reservationResponse struct {
	Reservation reservationDTO `json:"reservation"`
}

type reservationListResponse struct {
	Reservations []reservationDTO `json:"reservations"`
}

type conflictResponse struct {
	errorResponse
	Recommendation *stayDTO `json:"recommendation"`
}

type recommendationDTO struct {
	Room       roomDTO `json:"room"`
	Stay       stayDTO `json:"stay"`
	OffsetDays int     `json:"offset_days"`
}

type recommendationsResponse struct {
	Window          int                 `json:"window"`
	Capped          bool                `json:"capped"`
	Note            string              `json:"note,omitempty"`
	Recommendations []recommendationDTO `json:"recommendations"`
}

// Create books a room. On a conflict the response names the alternative stay
// for the same room, if the recommender finds one.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req reservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log(ctx, "Create", "error_kind", "bad_request").WarnContext(ctx, "failed to decode reservation request", "error", err)
		h.responder.writeError(ctx, w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	stay := reservation.NewStay(req.CheckIn, req.CheckOut)
	res, err := h.service.Book(ctx, application.BookParams{
		Email:      req.Email,
		RoomNumber: req.RoomNumber,
		Stay:       stay,
	})
	if err == nil {
		h.responder.writeJSON(ctx, w, http.StatusCreated, reservationResponse{Reservation: toReservationDTO(res)})
		return
	}
	if !errors.Is(err, application.ErrConflict) {
		h.responder.handleServiceError(ctx, w, err)
		return
	}

	window := req.WindowDays
	if window <= 0 {
		window = h.defaultWindow
	}
	recs := h.service.Recommend(ctx, application.RecommendParams{Stay: stay, WindowDays: window})

	body := conflictResponse{errorResponse: errorResponse{
		ErrorCode: "ALREADY_BOOKED",
		Message:   "room is already booked for these dates",
	}}
	if alt, ok := recs.For(strings.TrimSpace(req.RoomNumber)); ok {
		dto := toStayDTO(alt)
		body.Recommendation = &dto
	}
	h.log(ctx, "Create", "room_number", req.RoomNumber, "has_recommendation", body.Recommendation != nil).
		InfoContext(ctx, "booking conflict answered")
	h.responder.writeJSON(ctx, w, http.StatusConflict, body)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.service.AllReservations(r.Context())
	h.responder.writeJSON(r.Context(), w, http.StatusOK, reservationListResponse{Reservations: toReservationDTOs(list)})
}

// ListForCustomer returns one customer's bookings; unknown customers have none.
func (h *ReservationHandler) ListForCustomer(w http.ResponseWriter, r *http.Request) {
	list := h.service.ReservationsOf(r.Context(), mux.Vars(r)["email"])
	h.responder.writeJSON(r.Context(), w, http.StatusOK, reservationListResponse{Reservations: toReservationDTOs(list)})
}

func (h *ReservationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stay, err := stayFromQuery(r)
	if err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	window, err := windowFromQuery(r, h.defaultWindow)
	if err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, err)
		return
	}
	filter, err := filterFromQuery(r)
	if err != nil {
		h.responder.writeError(ctx, w, http.StatusBadRequest, err)
		return
	}

	recs := h.service.Recommend(ctx, application.RecommendParams{Stay: stay, WindowDays: window, Filter: filter})

	resp := recommendationsResponse{
		Window:          recs.Window,
		Capped:          recs.Capped,
		Note:            recs.Note(),
		Recommendations: make([]recommendationDTO, 0, recs.Len()),
	}
	for _, item := range recs.Items {
		resp.Recommendations = append(resp.Recommendations, recommendationDTO{
			Room:       toRoomDTO(item.Room),
			Stay:       toStayDTO(item.Stay),
			OffsetDays: item.Offset,
		})
	}
	h.responder.writeJSON(ctx, w, http.StatusOK, resp)
}
