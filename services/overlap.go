package services

import (
	"time"

	"hotel-booking/models"
)

// Overlaps reports whether the requested stay [reqIn, reqOut) conflicts with
// an existing one [exIn, exOut). Half-open semantics: a checkout on day X
// never conflicts with a check-in on day X.
//
// This predicate is the single source of truth for availability. The SQL in
// RoomService.availableRoomsQuery must stay in lockstep with it.
func Overlaps(reqIn, reqOut, exIn, exOut time.Time) bool {
	return reqIn.Before(exOut) && reqOut.After(exIn)
}

// RoomIsAvailable reports whether no booking in existing overlaps the
// requested range.
func RoomIsAvailable(checkIn, checkOut time.Time, existing []models.Booking) bool {
	for _, b := range existing {
		if Overlaps(checkIn, checkOut, b.CheckInDate, b.CheckOutDate) {
			return false
		}
	}
	return true
}
