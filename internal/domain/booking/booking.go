package booking

import (
	"fmt"
	"time"

	"github.com/walker-cleaning/site-api/internal/apperror"
)

// BookingType distinguishes what kind of catalog item was booked.
type BookingType string

const (
	TypeService BookingType = "service"
	TypePackage BookingType = "package"
)

// IsValid returns true if the booking type is recognized.
func (t BookingType) IsValid() bool {
	return t == TypeService || t == TypePackage
}

// ParseBookingType converts a string to a BookingType.
func ParseBookingType(s string) (BookingType, error) {
	t := BookingType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid booking type: %s", s)
	}
	return t, nil
}

// Booking is the aggregate root for a customer booking request. The target
// name is stored as plain text on purpose: a booking keeps showing the name
// as it was at booking time even if the catalog item is later renamed or
// deleted.
type Booking struct {
	id               uint
	bookingType      BookingType
	serviceOrPackage string
	name             string
	email            string
	phone            string
	date             string
	timeOfDay        string
	address          string
	message          string
	status           BookingStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking creates a new booking request. Status is always pending on
// creation, whatever the caller supplied upstream. The identifier is
// store-assigned and attached after the first save.
func NewBooking(
	bookingType BookingType,
	serviceOrPackage, name, email, phone, date, timeOfDay, address, message string,
) (*Booking, error) {
	if !bookingType.IsValid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("invalid booking type: %s", bookingType))
	}
	if serviceOrPackage == "" {
		return nil, apperror.NewValidationError("service or package name is required")
	}
	if name == "" {
		return nil, apperror.NewValidationError("customer name is required")
	}
	if phone == "" {
		return nil, apperror.NewValidationError("phone number is required")
	}

	now := time.Now().UTC()
	return &Booking{
		bookingType:      bookingType,
		serviceOrPackage: serviceOrPackage,
		name:             name,
		email:            email,
		phone:            phone,
		date:             date,
		timeOfDay:        timeOfDay,
		address:          address,
		message:          message,
		status:           StatusPending,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id uint,
	bookingType BookingType,
	serviceOrPackage, name, email, phone, date, timeOfDay, address, message string,
	status BookingStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		bookingType:      bookingType,
		serviceOrPackage: serviceOrPackage,
		name:             name,
		email:            email,
		phone:            phone,
		date:             date,
		timeOfDay:        timeOfDay,
		address:          address,
		message:          message,
		status:           status,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// --- Getters ---

// ID returns the store-assigned identifier, which doubles as the public
// tracking token. Zero until the booking has been saved.
func (b *Booking) ID() uint { return b.id }

// Type returns whether a service or a package was booked.
func (b *Booking) Type() BookingType { return b.bookingType }

// ServiceOrPackage returns the booked item's display name.
func (b *Booking) ServiceOrPackage() string { return b.serviceOrPackage }

// Name returns the customer's name.
func (b *Booking) Name() string { return b.name }

// Email returns the customer's email, possibly empty.
func (b *Booking) Email() string { return b.email }

// Phone returns the customer's phone number, the tracking lookup key.
func (b *Booking) Phone() string { return b.phone }

// Date returns the requested ISO date (YYYY-MM-DD).
func (b *Booking) Date() string { return b.date }

// TimeOfDay returns the requested time (HH:MM).
func (b *Booking) TimeOfDay() string { return b.timeOfDay }

// Address returns the service address.
func (b *Booking) Address() string { return b.address }

// Message returns any additional customer notes.
func (b *Booking) Message() string { return b.message }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// CreatedAt returns the creation timestamp, the descending list sort key.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// AttachID records the store-assigned identifier after the first insert.
func (b *Booking) AttachID(id uint) { b.id = id }

// SetStatus replaces the booking status. Only values inside the enumerated
// set are ever written.
func (b *Booking) SetStatus(status BookingStatus) error {
	if !status.IsValid() {
		return apperror.NewValidationError(fmt.Sprintf("invalid booking status: %s", status))
	}
	b.status = status
	b.updatedAt = time.Now().UTC()
	return nil
}
