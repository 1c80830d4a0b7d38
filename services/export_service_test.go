package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestBookingsXLSX(t *testing.T) {
	db := newTestDB(t)
	bookingSvc := NewBookingService(db)
	exportSvc := NewExportService(db)

	room := createRoom(t, db, "Grand Plaza", "Deluxe", 120)
	code, err := bookingSvc.SaveBooking(room.ID, bookingFor(day(10), day(15)))
	require.NoError(t, err)

	data, err := exportSvc.BookingsXLSX()
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Bookings"}, f.GetSheetList())

	header, err := f.GetCellValue("Bookings", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Booking ID", header)

	gotCode, err := f.GetCellValue("Bookings", "C2")
	require.NoError(t, err)
	assert.Equal(t, code, gotCode)

	checkIn, err := f.GetCellValue("Bookings", "F2")
	require.NoError(t, err)
	assert.Equal(t, "2024-09-10", checkIn)
}

func TestBookingsXLSXEmpty(t *testing.T) {
	db := newTestDB(t)
	exportSvc := NewExportService(db)

	data, err := exportSvc.BookingsXLSX()
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Bookings")
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
	assert.Equal(t, bookingExportHeader, rows[0])
}
