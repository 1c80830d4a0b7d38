package services

import (
	"fmt"

	"hotel-booking/models"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var bookingExportHeader = []string{
	"Booking ID",
	"Room ID",
	"Confirmation Code",
	"Guest Name",
	"Guest Email",
	"Check-In",
	"Check-Out",
	"Adults",
	"Children",
	"Total Guests",
}

type ExportService struct {
	DB *gorm.DB
}

func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{DB: db}
}

// BookingsXLSX renders every booking into a single-sheet workbook for the
// front desk.
func (s *ExportService) BookingsXLSX() ([]byte, error) {
	var bookings []models.Booking
	if err := s.DB.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to load bookings for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Bookings"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for col, header := range bookingExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, b := range bookings {
		row := []interface{}{
			b.ID,
			b.RoomID,
			b.ConfirmationCode,
			b.GuestFullName,
			b.GuestEmail,
			b.CheckInDate.Format("2006-01-02"),
			b.CheckOutDate.Format("2006-01-02"),
			b.NumOfAdults,
			b.NumOfChildren,
			b.TotalNumOfGuests,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
