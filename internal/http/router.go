package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	Rooms        *RoomHandler
	Customers    *CustomerHandler
	Reservations *ReservationHandler
	Admin        *AdminHandler
	// AdminGuard verifies X-Admin-Token. A nil guard rejects every admin call.
	AdminGuard tokenVerifier
	// Metrics, when set, is served at MetricsPath and observes every route.
	Metrics     http.Handler
	MetricsPath string
	Observer    httpObserver
	Logger      *slog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.Use(Metrics(cfg.Observer))

	// Use middleware only wraps matched routes.
	responder := newResponder(cfg.Logger)
	r.NotFoundHandler = Metrics(cfg.Observer)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		responder.writeError(req.Context(), w, http.StatusNotFound, nil)
	}))
	r.MethodNotAllowedHandler = Metrics(cfg.Observer)(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		responder.writeError(req.Context(), w, http.StatusMethodNotAllowed, nil)
	}))

	admin := func(h http.HandlerFunc) http.Handler {
		return RequireAdmin(cfg.AdminGuard, cfg.Logger)(h)
	}

	if cfg.Rooms != nil {
		r.HandleFunc("/rooms", cfg.Rooms.List).Methods(http.MethodGet)
		r.Handle("/rooms", admin(cfg.Rooms.Create)).Methods(http.MethodPost)
		r.HandleFunc("/rooms/available", cfg.Rooms.Available).Methods(http.MethodGet)
		r.HandleFunc("/rooms/{number}", cfg.Rooms.Get).Methods(http.MethodGet)
	}

	if cfg.Customers != nil {
		r.HandleFunc("/customers", cfg.Customers.Create).Methods(http.MethodPost)
		r.Handle("/customers", admin(cfg.Customers.List)).Methods(http.MethodGet)
	}

	if cfg.Reservations != nil {
		r.HandleFunc("/reservations", cfg.Reservations.Create).Methods(http.MethodPost)
		r.Handle("/reservations", admin(cfg.Reservations.List)).Methods(http.MethodGet)
		r.HandleFunc("/customers/{email}/reservations", cfg.Reservations.ListForCustomer).Methods(http.MethodGet)
		r.HandleFunc("/recommendations", cfg.Reservations.Recommend).Methods(http.MethodGet)
	}

	if cfg.Admin != nil {
		r.Handle("/admin/seed", admin(cfg.Admin.Seed)).Methods(http.MethodPost)
	}

	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		r.Handle(path, cfg.Metrics).Methods(http.MethodGet)
	}

	return RequestLogger(cfg.Logger)(r)
}
