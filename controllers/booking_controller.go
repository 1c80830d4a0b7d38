// controllers/booking_controller.go
package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"hotel-booking/models"
	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// BookingRequest carries date strings (2006-01-02) so payloads match what
// booking frontends send; parsing happens here, validation in the service.
type BookingRequest struct {
	CheckInDate      string `json:"checkInDate" binding:"required"`
	CheckOutDate     string `json:"checkOutDate" binding:"required"`
	GuestFullName    string `json:"guestFullName" binding:"required"`
	GuestEmail       string `json:"guestEmail" binding:"required,email"`
	NumOfAdults      int    `json:"numOfAdults" binding:"required,min=1"`
	NumOfChildren    int    `json:"numOfChildren" binding:"min=0"`
	TotalNumOfGuests int    `json:"totalNumOfGuests" binding:"required,min=1"`

	// RoomID is only honored on update, to move a booking to another room.
	RoomID uint `json:"roomId"`
}

func (r BookingRequest) toModel() (*models.Booking, error) {
	checkIn, err := time.Parse("2006-01-02", r.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkInDate format: %w", err)
	}
	checkOut, err := time.Parse("2006-01-02", r.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("invalid checkOutDate format: %w", err)
	}
	return &models.Booking{
		RoomID:           r.RoomID,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		GuestFullName:    r.GuestFullName,
		GuestEmail:       r.GuestEmail,
		NumOfAdults:      r.NumOfAdults,
		NumOfChildren:    r.NumOfChildren,
		TotalNumOfGuests: r.TotalNumOfGuests,
	}, nil
}

// ---------------------------
// Shared helpers
// ---------------------------

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return 0, false
	}
	return uint(id), true
}

func pagingParams(c *gin.Context) (page, size int, paged bool) {
	pageStr := c.Query("page")
	sizeStr := c.Query("size")
	if pageStr == "" && sizeStr == "" {
		return 0, 0, false
	}
	page, _ = strconv.Atoi(pageStr)
	size, _ = strconv.Atoi(sizeStr)
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 10
	}
	return page, size, true
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrRoomNotFound), errors.Is(err, models.ErrBookingNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrRoomNotAvailable):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidDates),
		errors.Is(err, models.ErrNilBooking),
		errors.Is(err, models.ErrInvalidRoom):
		return http.StatusBadRequest
	}
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	ExportSvc  *services.ExportService
}

func NewBookingController(svc *services.BookingService, export *services.ExportService) *BookingController {
	return &BookingController{BookingSvc: svc, ExportSvc: export}
}

// CreateBooking handles POST /api/bookings/room/:roomId
func (bc *BookingController) CreateBooking(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	booking, err := req.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	code, err := bc.BookingSvc.SaveBooking(roomID, booking)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":          "Room booked successfully",
		"confirmationCode": code,
	})
}

// UpdateBooking handles PUT /api/bookings/:id
func (bc *BookingController) UpdateBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	upd, err := req.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := bc.BookingSvc.UpdateBooking(bookingID, upd)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	if !updated {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking updated successfully"})
}

// CancelBooking handles DELETE /api/bookings/:id
func (bc *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if !bc.BookingSvc.CancelBooking(bookingID) {
		utils.JSONError(c, http.StatusNotFound, "booking not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Booking cancelled successfully"})
}

// GetBookings handles GET /api/bookings (optionally ?email= and/or paging)
func (bc *BookingController) GetBookings(c *gin.Context) {
	page, size, paged := pagingParams(c)

	if email := c.Query("email"); email != "" {
		if !paged {
			page, size = 1, 10
		}
		list, total, err := bc.BookingSvc.GetBookingsByGuestEmail(email, page, size)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSONPage(c, http.StatusOK, list, total, page, size)
		return
	}

	if paged {
		list, total, err := bc.BookingSvc.GetAllBookingsPaged(page, size)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSONPage(c, http.StatusOK, list, total, page, size)
		return
	}

	list, err := bc.BookingSvc.GetAllBookings()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingsByRoom handles GET /api/bookings/room/:roomId
func (bc *BookingController) GetBookingsByRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	list, err := bc.BookingSvc.GetBookingsByRoomID(roomID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetBookingByCode handles GET /api/bookings/confirmation/:code
func (bc *BookingController) GetBookingByCode(c *gin.Context) {
	code := c.Param("code")
	if !utils.IsValidConfirmationCode(code) {
		utils.JSONError(c, http.StatusBadRequest, "invalid confirmation code format")
		return
	}
	booking, err := bc.BookingSvc.GetBookingByConfirmationCode(code)
	if err != nil {
		utils.JSONError(c, statusForError(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ExportBookings handles GET /api/bookings/export
func (bc *BookingController) ExportBookings(c *gin.Context) {
	data, err := bc.ExportSvc.BookingsXLSX()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
