package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"hotel-booking/models"
	"hotel-booking/utils"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// codeGenAttempts bounds the regenerate-on-collision loop for confirmation
// codes before giving up with ErrCodeExhausted.
const codeGenAttempts = 5

// BookingService owns the booking lifecycle: create, update, cancel and the
// read operations around them.
type BookingService struct {
	DB       *gorm.DB
	validate *validator.Validate
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, validate: validator.New()}
}

// forUpdate adds a row lock on dialects that support it. sqlite (used in
// tests) rejects FOR UPDATE; its single-writer lock already serializes the
// read-check-write sequence there.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

func (s *BookingService) validateBooking(b *models.Booking) error {
	if err := s.validate.Struct(b); err != nil {
		return err
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		return models.ErrInvalidDates
	}
	return nil
}

// SaveBooking books the room for the requested dates and returns the
// generated confirmation code. The room row is locked for the whole
// load -> overlap check -> attach -> persist sequence so two concurrent
// requests for overlapping dates cannot both succeed.
func (s *BookingService) SaveBooking(roomID uint, req *models.Booking) (string, error) {
	if req == nil {
		return "", models.ErrNilBooking
	}
	if err := s.validateBooking(req); err != nil {
		return "", err
	}

	var room models.Room
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := forUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room %d: %w", roomID, err)
		}

		var existing []models.Booking
		if err := tx.Where("room_id = ?", roomID).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to load bookings for room %d: %w", roomID, err)
		}
		if !RoomIsAvailable(req.CheckInDate, req.CheckOutDate, existing) {
			return models.ErrRoomNotAvailable
		}

		for attempt := 0; ; attempt++ {
			if err := room.AttachBooking(req, utils.GenerateConfirmationCode); err != nil {
				return err
			}
			createErr := tx.Create(req).Error
			if createErr == nil {
				break
			}
			room.DetachBooking(req)
			if !isDuplicateKey(createErr) {
				return fmt.Errorf("failed to create booking: %w", createErr)
			}
			if attempt+1 >= codeGenAttempts {
				return models.ErrCodeExhausted
			}
			log.Printf("confirmation code collision (attempt %d), regenerating", attempt+1)
		}

		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("is_booked", room.IsBooked).Error; err != nil {
			return fmt.Errorf("failed to update room %d flag: %w", room.ID, err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	// Best-effort; the booking stands even if the mail bounces.
	if mailErr := utils.SendBookingConfirmationEmail(
		req.GuestEmail,
		req.GuestFullName,
		room.HotelName,
		room.RoomType,
		req.CheckInDate.Format("2006-01-02"),
		req.CheckOutDate.Format("2006-01-02"),
		req.ConfirmationCode,
	); mailErr != nil {
		log.Printf("warning: failed to send confirmation email for %s: %v", req.ConfirmationCode, mailErr)
	}

	return req.ConfirmationCode, nil
}

// UpdateBooking replaces the mutable fields of an existing booking. It
// returns (false, nil) when the booking does not exist and also when the
// save itself fails (report, don't crash); validation and conflict failures
// come back as typed errors before anything is written.
func (s *BookingService) UpdateBooking(bookingID uint, upd *models.Booking) (bool, error) {
	if upd == nil {
		return false, models.ErrNilBooking
	}

	var existing models.Booking
	if err := s.DB.First(&existing, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("booking %d not found for update", bookingID)
			return false, nil
		}
		log.Printf("error loading booking %d: %v", bookingID, err)
		return false, nil
	}

	patched := existing
	patched.CheckInDate = upd.CheckInDate
	patched.CheckOutDate = upd.CheckOutDate
	patched.GuestFullName = upd.GuestFullName
	patched.GuestEmail = upd.GuestEmail
	patched.NumOfAdults = upd.NumOfAdults
	patched.NumOfChildren = upd.NumOfChildren
	patched.TotalNumOfGuests = upd.TotalNumOfGuests

	if err := s.validateBooking(&patched); err != nil {
		return false, err
	}

	sameRoom := upd.RoomID == 0 || upd.RoomID == existing.RoomID

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if sameRoom {
			patched.RoomID = existing.RoomID
			res := tx.Save(&patched)
			if res.Error != nil {
				return res.Error
			}
			// zero rows means a concurrent cancel removed the booking after
			// our initial read
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
			return nil
		}

		// Reassigning to another room: re-check availability against that
		// room's other bookings before accepting the move.
		var target models.Room
		if err := forUpdate(tx).First(&target, upd.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRoomNotFound
			}
			return err
		}
		var others []models.Booking
		if err := tx.Where("room_id = ? AND id <> ?", target.ID, existing.ID).Find(&others).Error; err != nil {
			return err
		}
		if !RoomIsAvailable(patched.CheckInDate, patched.CheckOutDate, others) {
			return models.ErrRoomNotAvailable
		}

		patched.RoomID = target.ID
		res := tx.Save(&patched)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		// The old room may have just emptied out.
		return refreshRoomFlags(tx, existing.RoomID, target.ID)
	})
	if txErr != nil {
		if errors.Is(txErr, models.ErrRoomNotAvailable) || errors.Is(txErr, models.ErrRoomNotFound) {
			return false, txErr
		}
		if errors.Is(txErr, gorm.ErrRecordNotFound) {
			log.Printf("booking %d was cancelled mid-update", bookingID)
			return false, nil
		}
		log.Printf("error updating booking %d: %v", bookingID, txErr)
		return false, nil
	}
	return true, nil
}

// CancelBooking deletes the booking and, in the same transaction, brings the
// owning room's is_booked flag back in line. Cancelling an unknown (or
// already cancelled) id is a safe no-op reported as false.
func (s *BookingService) CancelBooking(bookingID uint) bool {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, bookingID).Error; err != nil {
			return err
		}
		if err := forUpdate(tx).First(&models.Room{}, booking.RoomID).Error; err != nil &&
			!errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		res := tx.Delete(&models.Booking{}, bookingID)
		if res.Error != nil {
			return res.Error
		}
		// the initial read happens before the room lock; a concurrent cancel
		// may have won in between
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return refreshRoomFlags(tx, booking.RoomID)
	})
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("error cancelling booking %d: %v", bookingID, err)
		}
		return false
	}
	return true
}

// refreshRoomFlags recomputes is_booked from the live booking count for the
// given rooms.
func refreshRoomFlags(tx *gorm.DB, roomIDs ...uint) error {
	for _, id := range roomIDs {
		var n int64
		if err := tx.Model(&models.Booking{}).Where("room_id = ?", id).Count(&n).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", id).
			Update("is_booked", n > 0).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, nil
}

func (s *BookingService) GetAllBookingsPaged(page, size int) ([]models.Booking, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Booking{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	var list []models.Booking
	if err := s.DB.Scopes(Paginate(page, size)).Order("id").Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return list, total, nil
}

func (s *BookingService) GetBookingByID(bookingID uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking %d: %w", bookingID, err)
	}
	return &b, nil
}

func (s *BookingService) GetBookingsByRoomID(roomID uint) ([]models.Booking, error) {
	var list []models.Booking
	if err := s.DB.Where("room_id = ?", roomID).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for room %d: %w", roomID, err)
	}
	return list, nil
}

func (s *BookingService) GetBookingByConfirmationCode(code string) (*models.Booking, error) {
	var b models.Booking
	if err := s.DB.Where("confirmation_code = ?", code).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve booking by code: %w", err)
	}
	return &b, nil
}

func (s *BookingService) GetBookingsByGuestEmail(email string, page, size int) ([]models.Booking, int64, error) {
	var total int64
	if err := s.DB.Model(&models.Booking{}).Where("guest_email = ?", email).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings for %s: %w", email, err)
	}
	var list []models.Booking
	if err := s.DB.Where("guest_email = ?", email).Scopes(Paginate(page, size)).Order("id").Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	return list, total, nil
}
