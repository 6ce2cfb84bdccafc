package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/example/hotel-reservations/internal/reservation"
)

type roomDTO struct {
	Number        string           `json:"number"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	Type          string           `json:"type"`
	Free          bool             `json:"free"`
	Complimentary bool             `json:"complimentary,omitempty"`
}

func toRoomDTO(room reservation.Room) roomDTO {
	dto := roomDTO{
		Number:        room.Number,
		Type:          string(room.Type),
		Free:          room.IsFree(),
		Complimentary: room.Complimentary,
	}
	if room.Price.Valid && !room.Complimentary {
		price := room.Price.Decimal
		dto.Price = &price
	}
	return dto
}

func toRoomDTOs(rooms []reservation.Room) []roomDTO {
	out := make([]roomDTO, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, toRoomDTO(room))
	}
	return out
}

type stayDTO struct {
	CheckIn  reservation.Date `json:"check_in"`
	CheckOut reservation.Date `json:"check_out"`
	Nights   int              `json:"nights"`
}

func toStayDTO(stay reservation.Stay) stayDTO {
	return stayDTO{CheckIn: stay.CheckIn, CheckOut: stay.CheckOut, Nights: stay.Nights()}
}

type customerDTO struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func toCustomerDTO(customer reservation.Customer) customerDTO {
	return customerDTO{Email: customer.Email, FirstName: customer.FirstName, LastName: customer.LastName}
}

type reservationDTO struct {
	ID        string      `json:"id"`
	Customer  customerDTO `json:"customer"`
	Room      roomDTO     `json:"room"`
	Stay      stayDTO     `json:"stay"`
	CreatedAt time.Time   `json:"created_at"`
}

func toReservationDTO(res reservation.Reservation) reservationDTO {
	return reservationDTO{
		ID:        res.ID,
		Customer:  toCustomerDTO(res.Customer),
		Room:      toRoomDTO(res.Room),
		Stay:      toStayDTO(res.Stay),
		CreatedAt: res.CreatedAt,
	}
}

func toReservationDTOs(list []reservation.Reservation) []reservationDTO {
	out := make([]reservationDTO, 0, len(list))
	for _, res := range list {
		out = append(out, toReservationDTO(res))
	}
	return out
}

// stayFromQuery reads check_in and check_out query parameters.
func stayFromQuery(r *http.Request) (reservation.Stay, error) {
	q := r.URL.Query()
	return reservation.ParseStay(q.Get("check_in"), q.Get("check_out"))
}

func filterFromQuery(r *http.Request) (reservation.Filter, error) {
	return reservation.ParseFilter(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("filter"))))
}

// windowFromQuery reads the window parameter, falling back to fallback.
// Values above the maximum are clamped by the recommender.
func windowFromQuery(r *http.Request, fallback int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("window"))
	if raw == "" {
		return fallback, nil
	}
	window, err := strconv.Atoi(raw)
	if err != nil || window <= 0 {
		return 0, fmt.Errorf("window %q must be a positive number of days", raw)
	}
	return window, nil
}
