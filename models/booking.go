package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// RoomID is the back-reference to the owning room. Plain foreign key;
	// navigation back to the room goes through the room service.
	RoomID uint `gorm:"column:room_id;index;not null" json:"roomId"`

	CheckInDate  time.Time `gorm:"column:check_in;type:date;not null" json:"checkInDate" validate:"required"`
	CheckOutDate time.Time `gorm:"column:check_out;type:date;not null" json:"checkOutDate" validate:"required"`

	GuestFullName string `gorm:"column:guest_full_name;type:varchar(100);not null" json:"guestFullName" validate:"required,max=100"`
	GuestEmail    string `gorm:"column:guest_email;type:varchar(100);not null" json:"guestEmail" validate:"required,email"`

	NumOfAdults      int `gorm:"column:adults;not null;default:1" json:"numOfAdults" validate:"min=1"`
	NumOfChildren    int `gorm:"column:children;not null;default:0" json:"numOfChildren" validate:"min=0"`
	TotalNumOfGuests int `gorm:"column:total_guests;not null;default:1" json:"totalNumOfGuests" validate:"min=1"`

	// Assigned by Room.AttachBooking, never by the caller.
	ConfirmationCode string `gorm:"column:confirmation_code;type:varchar(20);uniqueIndex;not null" json:"confirmationCode" validate:"omitempty,min=6,max=20"`
}
