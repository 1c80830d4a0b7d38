package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-booking/models"
	"hotel-booking/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Paginate is a reusable gorm scope for limit/offset paging, sharing its
// clamping with the response envelope.
func Paginate(page, size int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		page, size := utils.ClampPage(page, size)
		return db.Offset((page - 1) * size).Limit(size)
	}
}

type RoomService struct {
	DB      *gorm.DB
	Storage *FileStorageService
}

func NewRoomService(db *gorm.DB, storage *FileStorageService) *RoomService {
	return &RoomService{DB: db, Storage: storage}
}

// AddRoom creates a room; a non-empty photo is handed to blob storage and
// only its handle is persisted.
func (s *RoomService) AddRoom(hotelName, roomType string, price float64, details string, amenities, photo []byte) (*models.Room, error) {
	hotelName = strings.TrimSpace(hotelName)
	roomType = strings.TrimSpace(roomType)
	if hotelName == "" || roomType == "" || price <= 0 {
		return nil, models.ErrInvalidRoom
	}

	room := models.Room{
		HotelName: hotelName,
		RoomType:  roomType,
		RoomPrice: price,
		Details:   details,
	}
	if len(amenities) > 0 {
		room.Amenities = datatypes.JSON(amenities)
	}
	if len(photo) > 0 {
		name, err := s.Storage.Store(photo)
		if err != nil {
			return nil, fmt.Errorf("failed to store room photo: %w", err)
		}
		room.PhotoName = name
	}

	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("Bookings").Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetAllPaged(page, size int) ([]models.Room, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Room{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	var rooms []models.Room
	if err := s.DB.Preload("Bookings").Scopes(Paginate(page, size)).Order("id").Find(&rooms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, total, nil
}

func (s *RoomService) GetByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Bookings").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", roomID, err)
	}
	return &room, nil
}

// availableRoomsQuery builds the availability filter: rooms whose type
// contains roomType and that have no booking overlapping [checkIn, checkOut)
// under the same half-open predicate as Overlaps.
func (s *RoomService) availableRoomsQuery(checkIn, checkOut time.Time, roomType string) *gorm.DB {
	overlapping := s.DB.Model(&models.Booking{}).
		Select("room_id").
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	return s.DB.Model(&models.Room{}).
		Where("room_type LIKE ?", "%"+roomType+"%").
		Where("id NOT IN (?)", overlapping)
}

// GetAvailableRooms returns every matching room with no conflicting booking,
// ordered by id so repeated calls against unchanged data line up.
func (s *RoomService) GetAvailableRooms(checkIn, checkOut time.Time, roomType string) ([]models.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, models.ErrInvalidDates
	}
	var rooms []models.Room
	if err := s.availableRoomsQuery(checkIn, checkOut, roomType).
		Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to search available rooms: %w", err)
	}
	return rooms, nil
}

// GetAvailableRoomsPaged pages the same result set; paging never changes
// which rooms qualify.
func (s *RoomService) GetAvailableRoomsPaged(checkIn, checkOut time.Time, roomType string, page, size int) ([]models.Room, int64, error) {
	if !checkOut.After(checkIn) {
		return nil, 0, models.ErrInvalidDates
	}
	var total int64
	if err := s.availableRoomsQuery(checkIn, checkOut, roomType).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count available rooms: %w", err)
	}
	var rooms []models.Room
	if err := s.availableRoomsQuery(checkIn, checkOut, roomType).
		Scopes(Paginate(page, size)).Order("id").Find(&rooms).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search available rooms: %w", err)
	}
	return rooms, total, nil
}

// GetRoomPhoto returns the photo bytes for a room, or an empty slice when
// none was uploaded.
func (s *RoomService) GetRoomPhoto(roomID uint) ([]byte, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to retrieve room %d: %w", roomID, err)
	}
	if room.PhotoName == "" {
		return []byte{}, nil
	}
	data, err := s.Storage.Retrieve(room.PhotoName)
	if err != nil {
		return nil, fmt.Errorf("failed to load photo for room %d: %w", roomID, err)
	}
	return data, nil
}

// roomColumnForField maps the JSON field names clients send to the columns
// they may write. Identity, timestamps and the derived is_booked flag are
// deliberately absent.
var roomColumnForField = map[string]string{
	"hotelName": "hotel_name",
	"roomType":  "room_type",
	"roomPrice": "room_price",
	"details":   "details",
	"amenities": "amenities",
}

// Update applies a partial column update from client-supplied JSON fields.
// Unknown fields are dropped rather than rejected.
func (s *RoomService) Update(roomID uint, fields map[string]interface{}) error {
	cols := make(map[string]interface{}, len(fields))
	for key, val := range fields {
		col, ok := roomColumnForField[key]
		if !ok {
			continue
		}
		switch col {
		case "hotel_name", "room_type":
			s, isStr := val.(string)
			s = strings.TrimSpace(s)
			if !isStr || s == "" {
				return models.ErrInvalidRoom
			}
			cols[col] = s
		case "room_price":
			p, isNum := val.(float64)
			if !isNum || p <= 0 {
				return models.ErrInvalidRoom
			}
			cols[col] = p
		case "amenities":
			raw, err := json.Marshal(val)
			if err != nil {
				return models.ErrInvalidRoom
			}
			cols[col] = datatypes.JSON(raw)
		default:
			cols[col] = val
		}
	}
	if len(cols) == 0 {
		return models.ErrInvalidRoom
	}

	res := s.DB.Model(&models.Room{}).Where("id = ?", roomID).Updates(cols)
	if res.Error != nil {
		return fmt.Errorf("failed to update room %d: %w", roomID, res.Error)
	}
	if res.RowsAffected == 0 {
		return models.ErrRoomNotFound
	}
	return nil
}

// Delete removes the room and cascades its bookings in the same transaction;
// a booking cannot outlive its room.
func (s *RoomService) Delete(roomID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Room{}, roomID)
		if res.Error != nil {
			return fmt.Errorf("failed to delete room %d: %w", roomID, res.Error)
		}
		if res.RowsAffected == 0 {
			return models.ErrRoomNotFound
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&models.Booking{}).Error; err != nil {
			return fmt.Errorf("failed to delete bookings for room %d: %w", roomID, err)
		}
		return nil
	})
}
