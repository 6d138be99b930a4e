package booking

import "strconv"

// TrackingQuery is the public lookup filter: a phone number, a booking
// identifier, or both. A non-numeric identifier input is treated as "no id
// filter" rather than an error.
type TrackingQuery struct {
	phone string
	id    uint
	hasID bool
}

// NewTrackingQuery builds a TrackingQuery from raw form input.
func NewTrackingQuery(phone, rawID string) TrackingQuery {
	q := TrackingQuery{phone: phone}
	if rawID != "" {
		if id, err := strconv.ParseUint(rawID, 10, 64); err == nil {
			q.id = uint(id)
			q.hasID = true
		}
	}
	return q
}

// IsEmpty returns true when neither filter is usable.
func (q TrackingQuery) IsEmpty() bool {
	return q.phone == "" && !q.hasID
}

// Matches reports whether a booking satisfies the query: an exact phone
// match, or an exact id match when an id filter is present.
func (q TrackingQuery) Matches(b *Booking) bool {
	if q.phone != "" && b.Phone() == q.phone {
		return true
	}
	return q.hasID && b.ID() == q.id
}
