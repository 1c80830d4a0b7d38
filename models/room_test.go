package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fixedCode(code string) CodeGenerator {
	return func() (string, error) { return code, nil }
}

func testBooking() *Booking {
	return &Booking{
		CheckInDate:      time.Date(2024, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOutDate:     time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC),
		GuestFullName:    "John Doe",
		GuestEmail:       "john.doe@example.com",
		NumOfAdults:      2,
		NumOfChildren:    1,
		TotalNumOfGuests: 3,
	}
}

func TestAttachBooking(t *testing.T) {
	room := Room{Model: gorm.Model{ID: 7}}
	b := testBooking()

	require.NoError(t, room.AttachBooking(b, fixedCode("4948918860")))

	assert.True(t, room.IsBooked)
	assert.Len(t, room.Bookings, 1)
	assert.Equal(t, uint(7), b.RoomID)
	assert.Equal(t, "4948918860", b.ConfirmationCode)
}

func TestAttachBookingNil(t *testing.T) {
	room := Room{}
	err := room.AttachBooking(nil, fixedCode("123456"))
	assert.ErrorIs(t, err, ErrNilBooking)
	assert.False(t, room.IsBooked)
	assert.Empty(t, room.Bookings)
}

func TestAttachBookingGeneratorFailure(t *testing.T) {
	room := Room{Model: gorm.Model{ID: 7}}
	b := testBooking()
	genErr := errors.New("entropy exhausted")

	err := room.AttachBooking(b, func() (string, error) { return "", genErr })

	assert.ErrorIs(t, err, genErr)
	assert.False(t, room.IsBooked)
	assert.Empty(t, room.Bookings)
	assert.Zero(t, b.RoomID)
}

func TestDetachBooking(t *testing.T) {
	room := Room{Model: gorm.Model{ID: 7}}
	b := testBooking()
	require.NoError(t, room.AttachBooking(b, fixedCode("1111111111")))

	room.DetachBooking(b)

	assert.False(t, room.IsBooked, "detaching the only booking clears the flag")
	assert.Empty(t, room.Bookings)
	assert.Zero(t, b.RoomID)
}

func TestDetachBookingKeepsFlagWhileOthersRemain(t *testing.T) {
	room := Room{Model: gorm.Model{ID: 7}}
	b1 := testBooking()
	b2 := testBooking()
	b2.CheckInDate = b2.CheckInDate.AddDate(0, 1, 0)
	b2.CheckOutDate = b2.CheckOutDate.AddDate(0, 1, 0)

	require.NoError(t, room.AttachBooking(b1, fixedCode("1111111111")))
	require.NoError(t, room.AttachBooking(b2, fixedCode("2222222222")))

	room.DetachBooking(b1)

	assert.True(t, room.IsBooked)
	assert.Len(t, room.Bookings, 1)
	assert.Equal(t, "2222222222", room.Bookings[0].ConfirmationCode)
}

func TestDetachBookingNotPresent(t *testing.T) {
	room := Room{Model: gorm.Model{ID: 7}}
	b := testBooking()
	require.NoError(t, room.AttachBooking(b, fixedCode("1111111111")))

	stranger := testBooking()
	stranger.ConfirmationCode = "9999999999"
	room.DetachBooking(stranger)
	room.DetachBooking(nil)

	assert.True(t, room.IsBooked)
	assert.Len(t, room.Bookings, 1)
}
