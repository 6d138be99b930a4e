package booking

import "context"

// BookingRepository defines the persistence contract for bookings.
type BookingRepository interface {
	// Save persists a new booking and attaches the store-assigned id.
	Save(ctx context.Context, booking *Booking) error

	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id uint) (*Booking, error)

	// List retrieves bookings ordered by created_at descending, optionally
	// filtered by status, with pagination.
	List(ctx context.Context, status *BookingStatus, page, limit int) ([]*Booking, int64, error)

	// ListAll retrieves every booking ordered by created_at descending.
	// Used by the public tracking lookup, which filters in-process.
	ListAll(ctx context.Context) ([]*Booking, error)

	// Update persists changes to an existing booking.
	Update(ctx context.Context, booking *Booking) error

	// Delete removes a booking permanently.
	Delete(ctx context.Context, id uint) error

	// CountByStatus returns booking counts grouped by status.
	CountByStatus(ctx context.Context) (map[string]int64, error)
}
