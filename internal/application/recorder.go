package application

// Recorder receives counters for facade operations. The metrics package
// provides the Prometheus implementation.
type Recorder interface {
	ObserveBooking(outcome string)
	ObserveRecommendation(found int, capped bool)
	ObserveRoomRegistered()
}

// Booking outcomes reported to the Recorder.
const (
	OutcomeBooked   = "booked"
	OutcomeConflict = "conflict"
	OutcomeInvalid  = "invalid"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

type nopRecorder struct{}

func (nopRecorder) ObserveBooking(string) {}

func (nopRecorder) ObserveRecommendation(int, bool) {}

func (nopRecorder) ObserveRoomRegistered() {}

func defaultRecorder(recorder Recorder) Recorder {
	if recorder == nil {
		return nopRecorder{}
	}
	return recorder
}

func bookingOutcome(err error) string {
	switch ErrorKind(err) {
	case "":
		return OutcomeBooked
	case "conflict":
		return OutcomeConflict
	case "validation":
		return OutcomeInvalid
	case "not_found":
		return OutcomeNotFound
	}
	return OutcomeError
}
