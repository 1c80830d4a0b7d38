package models

import "errors"

// Domain errors. Services return these (wrapped or bare) and controllers map
// them to HTTP statuses with errors.Is.
var (
	ErrNilBooking       = errors.New("booking cannot be nil")
	ErrInvalidDates     = errors.New("check-out date must be after check-in date")
	ErrInvalidRoom      = errors.New("room requires a hotel name, a room type and a positive price")
	ErrRoomNotFound     = errors.New("room not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrRoomNotAvailable = errors.New("room is not available for the selected dates")
	ErrCodeExhausted    = errors.New("could not generate a unique confirmation code")
)
