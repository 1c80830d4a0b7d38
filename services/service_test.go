package services

import (
	"testing"
	"time"

	"hotel-booking/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pool connection to :memory: would get its own empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.RoomType{}, &models.Room{}, &models.Booking{}))
	return db
}

func createRoom(t *testing.T, db *gorm.DB, hotel, roomType string, price float64) *models.Room {
	t.Helper()
	room := models.Room{HotelName: hotel, RoomType: roomType, RoomPrice: price}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func bookingFor(checkIn, checkOut time.Time) *models.Booking {
	return &models.Booking{
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		GuestFullName:    "Alice Smith",
		GuestEmail:       "alice.smith@example.com",
		NumOfAdults:      2,
		NumOfChildren:    0,
		TotalNumOfGuests: 2,
	}
}

func reloadRoom(t *testing.T, db *gorm.DB, id uint) *models.Room {
	t.Helper()
	var room models.Room
	require.NoError(t, db.First(&room, id).Error)
	return &room
}
