// Package http exposes the reservation engine as a JSON API routed with
// gorilla/mux.
//
// Dates travel as yyyy-mm-dd strings and prices as decimal strings.
//
//   - GET /rooms lists the catalog; GET /rooms/{number} fetches one room.
//   - POST /rooms (admin) registers a room from the `roomRequest` payload in
//     room_handler.go.
//   - GET /rooms/available?check_in=&check_out=&filter=all|free|paid lists the
//     rooms free for a stay.
//   - GET /recommendations?check_in=&check_out=&window=&filter= returns the
//     alternative stays for rooms booked over the requested one, plus
//     `capped` and `note` when the window was clamped.
//   - POST /customers registers an account; GET /customers (admin) lists them.
//   - POST /reservations books a room. A 409 response carries the
//     recommendation for that room when one exists.
//   - GET /customers/{email}/reservations lists one customer's bookings. It is
//     public like the menu's "View my reservations"; knowing the email is enough.
//   - GET /reservations (admin) lists every booking.
//   - POST /admin/seed (admin) loads the demo data set.
//
// Admin routes require the X-Admin-Token header. Request/response DTOs live
// next to their handlers.
package http
