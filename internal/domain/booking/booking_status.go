package booking

import "fmt"

// BookingStatus represents the current state of a booking request.
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusFulfilled BookingStatus = "fulfilled"
	StatusPostponed BookingStatus = "postponed"
	StatusCancelled BookingStatus = "cancelled"
)

// AllStatuses lists every recognized status, in display order.
func AllStatuses() []BookingStatus {
	return []BookingStatus{StatusPending, StatusFulfilled, StatusPostponed, StatusCancelled}
}

// IsValid returns true if the status is one of the four recognized values.
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusFulfilled, StatusPostponed, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error
// if it is outside the enumerated set. Any valid status may replace any
// other; the admin workflow has no enforced transition order.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}
