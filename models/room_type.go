package models

import (
	"time"

	"gorm.io/gorm"
)

// RoomType is the catalog of bookable room categories. Rooms keep a free-form
// type string for substring search; this table only feeds pickers and seeds.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string `gorm:"column:type_name;type:varchar(50);uniqueIndex" json:"typeName"`
	Description string `json:"description"`
	MaxGuests   uint   `json:"maxGuests"`

	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
