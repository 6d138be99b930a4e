package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/walker-cleaning/site-api/internal/apperror"
	bookingDomain "github.com/walker-cleaning/site-api/internal/domain/booking"
	"github.com/walker-cleaning/site-api/internal/events"
	"github.com/walker-cleaning/site-api/internal/platform/metrics"
)

// CreateBookingRequest holds the data needed to create a booking request.
// Whatever status a client might smuggle into the payload is ignored: new
// bookings are always stored pending.
type CreateBookingRequest struct {
	Type             string `json:"type" binding:"required"`
	ServiceOrPackage string `json:"service_or_package" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email"`
	Phone            string `json:"phone" binding:"required"`
	Date             string `json:"date" binding:"required"`
	Time             string `json:"time" binding:"required"`
	Address          string `json:"address" binding:"required"`
	Message          string `json:"message"`
}

// BookingDTO is the API response representation of a booking.
type BookingDTO struct {
	ID               uint      `json:"id"`
	Type             string    `json:"type"`
	ServiceOrPackage string    `json:"service_or_package"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	Address          string    `json:"address"`
	Message          string    `json:"message,omitempty"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// BookingStatsDTO holds booking counts for the admin dashboard.
type BookingStatsDTO struct {
	TotalBookings int64            `json:"total_bookings"`
	ByStatus      map[string]int64 `json:"by_status"`
}

// BookingService orchestrates booking use cases.
type BookingService struct {
	repo      bookingDomain.BookingRepository
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	repo bookingDomain.BookingRepository,
	publisher events.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		repo:      repo,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateBooking stores a new pending booking and returns it with the
// store-assigned id, which doubles as the public tracking token.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	bookingType, err := bookingDomain.ParseBookingType(req.Type)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	bk, err := bookingDomain.NewBooking(
		bookingType,
		req.ServiceOrPackage,
		req.Name,
		req.Email,
		req.Phone,
		req.Date,
		req.Time,
		req.Address,
		req.Message,
	)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, bk); err != nil {
		return nil, fmt.Errorf("failed to save booking: %w", err)
	}

	s.metrics.BookingsCreated.Inc()
	s.publishEvent(ctx, events.BookingCreated, bk.ID(), events.BookingCreatedEvent{
		BookingID:        bk.ID(),
		BookingType:      string(bk.Type()),
		ServiceOrPackage: bk.ServiceOrPackage(),
		Phone:            bk.Phone(),
		Date:             bk.Date(),
		Time:             bk.TimeOfDay(),
		OccurredAt:       time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// TrackBookings looks up bookings for the public tracking page by phone
// and/or id. A non-numeric id input is treated as no id filter. Zero matches
// is an explicit not-found, distinct from a store failure.
func (s *BookingService) TrackBookings(ctx context.Context, phone, rawID string) ([]BookingDTO, error) {
	query := bookingDomain.NewTrackingQuery(phone, rawID)
	if query.IsEmpty() {
		return nil, apperror.NewValidationError("provide a phone number or a booking id")
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for tracking: %w", err)
	}

	var matches []BookingDTO
	for _, bk := range all {
		if query.Matches(bk) {
			matches = append(matches, toBookingDTO(bk))
		}
	}
	if len(matches) == 0 {
		return nil, apperror.NewNotFoundError("booking", "matching the given phone or id")
	}
	return matches, nil
}

// ListBookings returns paginated bookings, newest first, optionally filtered
// by status (admin).
func (s *BookingService) ListBookings(ctx context.Context, statusFilter string, page, limit int) ([]BookingDTO, int64, error) {
	var status *bookingDomain.BookingStatus
	if statusFilter != "" && statusFilter != "all" {
		parsed, err := bookingDomain.ParseBookingStatus(statusFilter)
		if err != nil {
			return nil, 0, apperror.NewValidationError(err.Error())
		}
		status = &parsed
	}

	bookings, total, err := s.repo.List(ctx, status, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	dtos := make([]BookingDTO, len(bookings))
	for i, bk := range bookings {
		dtos[i] = toBookingDTO(bk)
	}
	return dtos, total, nil
}

// UpdateBookingStatus sets a booking's status to any value inside the
// enumerated set (admin).
func (s *BookingService) UpdateBookingStatus(ctx context.Context, id uint, newStatus string) (*BookingDTO, error) {
	status, err := bookingDomain.ParseBookingStatus(newStatus)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}

	bk, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := bk.Status()
	if err := bk.SetStatus(status); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, bk); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.BookingStatusChanged, bk.ID(), events.BookingStatusChangedEvent{
		BookingID:  bk.ID(),
		OldStatus:  oldStatus.String(),
		NewStatus:  status.String(),
		OccurredAt: time.Now().UTC(),
	})

	result := toBookingDTO(bk)
	return &result, nil
}

// DeleteBooking removes a booking permanently (admin).
func (s *BookingService) DeleteBooking(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, events.BookingDeleted, id, events.BookingDeletedEvent{
		BookingID:  id,
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// GetBookingStats returns aggregate booking counts (admin).
func (s *BookingService) GetBookingStats(ctx context.Context) (*BookingStatsDTO, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}

	var total int64
	for _, c := range counts {
		total += c
	}
	return &BookingStatsDTO{TotalBookings: total, ByStatus: counts}, nil
}

// --- Helpers ---

// publishEvent is fire-and-forget: a broker failure is logged and counted but
// never fails the request that triggered it.
func (s *BookingService) publishEvent(ctx context.Context, eventType string, bookingID uint, data interface{}) {
	evt, err := events.NewEnvelope("site-api", eventType, data)
	if err != nil {
		s.logger.Error("failed to build event envelope",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	key := strconv.FormatUint(uint64(bookingID), 10)
	if err := s.publisher.Publish(ctx, events.TopicBookingEvents, key, evt); err != nil {
		s.metrics.EventsPublishFailed.Inc()
	}
}

func toBookingDTO(bk *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:               bk.ID(),
		Type:             string(bk.Type()),
		ServiceOrPackage: bk.ServiceOrPackage(),
		Name:             bk.Name(),
		Email:            bk.Email(),
		Phone:            bk.Phone(),
		Date:             bk.Date(),
		Time:             bk.TimeOfDay(),
		Address:          bk.Address(),
		Message:          bk.Message(),
		Status:           bk.Status().String(),
		CreatedAt:        bk.CreatedAt(),
		UpdatedAt:        bk.UpdatedAt(),
	}
}
