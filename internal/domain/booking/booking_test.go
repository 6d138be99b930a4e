package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBooking(t *testing.T) *Booking {
	t.Helper()
	bk, err := NewBooking(
		TypeService,
		"Deep Cleaning",
		"Jane Walker",
		"jane@example.com",
		"+15550100",
		"2026-09-15",
		"10:00",
		"12 Main St",
		"",
	)
	require.NoError(t, err)
	return bk
}

func TestNewBooking_AlwaysStartsPending(t *testing.T) {
	bk := newTestBooking(t)
	assert.Equal(t, StatusPending, bk.Status())
	assert.Zero(t, bk.ID(), "id is store-assigned, zero before save")
}

func TestNewBooking_Validation(t *testing.T) {
	tests := []struct {
		name        string
		bookingType BookingType
		target      string
		customer    string
		phone       string
	}{
		{"invalid type", BookingType("subscription"), "Deep Cleaning", "Jane", "+15550100"},
		{"missing target", TypeService, "", "Jane", "+15550100"},
		{"missing name", TypePackage, "Starter Package", "", "+15550100"},
		{"missing phone", TypeService, "Deep Cleaning", "Jane", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBooking(tt.bookingType, tt.target, tt.customer, "", tt.phone, "2026-09-15", "10:00", "12 Main St", "")
			assert.Error(t, err)
		})
	}
}

func TestSetStatus(t *testing.T) {
	bk := newTestBooking(t)

	for _, status := range AllStatuses() {
		require.NoError(t, bk.SetStatus(status))
		assert.Equal(t, status, bk.Status())
	}

	err := bk.SetStatus(BookingStatus("archived"))
	assert.Error(t, err)
}

func TestAttachID(t *testing.T) {
	bk := newTestBooking(t)
	bk.AttachID(42)
	assert.Equal(t, uint(42), bk.ID())
}

func TestParseBookingStatus(t *testing.T) {
	for _, status := range AllStatuses() {
		parsed, err := ParseBookingStatus(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := ParseBookingStatus("done")
	assert.Error(t, err)
}

func TestParseBookingType(t *testing.T) {
	for _, raw := range []string{"service", "package"} {
		parsed, err := ParseBookingType(raw)
		require.NoError(t, err)
		assert.True(t, parsed.IsValid())
	}

	_, err := ParseBookingType("Service")
	assert.Error(t, err, "type matching is case sensitive")
}
