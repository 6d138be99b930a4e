package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walker-cleaning/site-api/internal/apperror"
)

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		Type:             "service",
		ServiceOrPackage: "Deep Cleaning",
		Name:             "Jane Walker",
		Phone:            "+15550100",
		Date:             "2026-09-15",
		Time:             "10:00",
		Address:          "12 Main St",
	}
}

func TestCreateBooking_StartsPendingWithAssignedID(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))

	result, err := svc.CreateBooking(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotZero(t, result.ID, "response must carry the tracking id")
	assert.Equal(t, "pending", result.Status)
}

func TestCreateBooking_RejectsUnknownType(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))

	req := validCreateRequest()
	req.Type = "subscription"
	_, err := svc.CreateBooking(context.Background(), req)

	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)
}

func TestTrackBookings(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))
	ctx := context.Background()

	first, err := svc.CreateBooking(ctx, validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.Phone = "+15550199"
	second, err := svc.CreateBooking(ctx, other)
	require.NoError(t, err)

	t.Run("by phone", func(t *testing.T) {
		matches, err := svc.TrackBookings(ctx, "+15550100", "")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, first.ID, matches[0].ID)
	})

	t.Run("by id", func(t *testing.T) {
		matches, err := svc.TrackBookings(ctx, "", formatID(second.ID))
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, second.ID, matches[0].ID)
	})

	t.Run("either filter matching is enough", func(t *testing.T) {
		matches, err := svc.TrackBookings(ctx, "+15550100", formatID(second.ID))
		require.NoError(t, err)
		assert.Len(t, matches, 2)
	})

	t.Run("non-numeric id falls back to phone", func(t *testing.T) {
		matches, err := svc.TrackBookings(ctx, "+15550100", "not-a-number")
		require.NoError(t, err)
		assert.Len(t, matches, 1)
	})

	t.Run("no filters is a validation error", func(t *testing.T) {
		_, err := svc.TrackBookings(ctx, "", "")
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
	})

	t.Run("zero matches is not found", func(t *testing.T) {
		_, err := svc.TrackBookings(ctx, "+15550000", "")
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})

	t.Run("garbage id alone leaves no usable filter", func(t *testing.T) {
		_, err := svc.TrackBookings(ctx, "", "not-a-number")
		var appErr *apperror.Error
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, apperror.KindValidation, appErr.Kind)
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateBookingStatus(ctx, created.ID, "fulfilled")
	require.NoError(t, err)
	assert.Equal(t, "fulfilled", updated.Status)

	// Any enumerated status may follow any other; there is no transition order.
	updated, err = svc.UpdateBookingStatus(ctx, created.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", updated.Status)

	_, err = svc.UpdateBookingStatus(ctx, created.ID, "done")
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindValidation, appErr.Kind)

	_, err = svc.UpdateBookingStatus(ctx, 999, "fulfilled")
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestDeleteBooking(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))
	ctx := context.Background()

	created, err := svc.CreateBooking(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteBooking(ctx, created.ID))

	err = svc.DeleteBooking(ctx, created.ID)
	var appErr *apperror.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperror.KindNotFound, appErr.Kind)
}

func TestGetBookingStats(t *testing.T) {
	svc := newTestBookingService(t, newTestDB(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateBooking(ctx, validCreateRequest())
		require.NoError(t, err)
	}
	created, err := svc.CreateBooking(ctx, validCreateRequest())
	require.NoError(t, err)
	_, err = svc.UpdateBookingStatus(ctx, created.ID, "cancelled")
	require.NoError(t, err)

	stats, err := svc.GetBookingStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.ByStatus["pending"])
	assert.Equal(t, int64(1), stats.ByStatus["cancelled"])
}
