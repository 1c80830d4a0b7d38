package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CodeGenerator produces a confirmation code for a booking being attached to
// a room. Injected so tests can pin the code; uniqueness is enforced by the
// unique index on bookings.confirmation_code.
type CodeGenerator func() (string, error)

type Room struct {
	gorm.Model

	HotelName string  `json:"hotelName" gorm:"column:hotel_name;type:varchar(100);not null"`
	RoomType  string  `json:"roomType" gorm:"column:room_type;type:varchar(50);index;not null"`
	RoomPrice float64 `json:"roomPrice" gorm:"column:room_price;not null"`
	Details   string  `json:"details,omitempty" gorm:"type:text"`

	Amenities datatypes.JSON `json:"amenities,omitempty" gorm:"column:amenities"`

	// PhotoName is the blob-storage handle. The photo bytes never live on the row.
	PhotoName string `json:"photoName,omitempty" gorm:"column:photo_name;type:varchar(100)"`

	// IsBooked is derived: true iff the booking set is non-empty. It is only
	// recomputed inside AttachBooking/DetachBooking (and the matching
	// persistence-side refresh), never assigned anywhere else.
	IsBooked bool `json:"isBooked" gorm:"column:is_booked;default:false"`

	Bookings []Booking `json:"bookings" gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE"`
}

// AttachBooking adds b to the room's booking set, points b back at the room
// and assigns it a confirmation code from gen. The mutation is in-memory;
// persisting the booking and the room flag in one transaction is the
// caller's job.
func (r *Room) AttachBooking(b *Booking, gen CodeGenerator) error {
	if b == nil {
		return ErrNilBooking
	}
	code, err := gen()
	if err != nil {
		return err
	}
	b.RoomID = r.ID
	b.ConfirmationCode = code
	r.Bookings = append(r.Bookings, *b)
	r.IsBooked = true
	return nil
}

// DetachBooking removes b from the room's booking set and clears its
// back-reference. No-op when b is nil or not attached.
func (r *Room) DetachBooking(b *Booking) {
	if b == nil {
		return
	}
	for i := range r.Bookings {
		if r.Bookings[i].ID == b.ID && r.Bookings[i].ConfirmationCode == b.ConfirmationCode {
			r.Bookings = append(r.Bookings[:i], r.Bookings[i+1:]...)
			b.RoomID = 0
			r.IsBooked = len(r.Bookings) > 0
			return
		}
	}
}
