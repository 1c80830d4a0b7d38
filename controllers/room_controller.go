package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-booking/services"
	"hotel-booking/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// ----------------------------------------------------
// 1. Create Room (POST /api/rooms, multipart form)
// ----------------------------------------------------

func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelName := strings.TrimSpace(c.PostForm("hotelName"))
	roomType := strings.TrimSpace(c.PostForm("roomType"))
	priceStr := strings.TrimSpace(c.PostForm("roomPrice"))
	details := c.PostForm("details")

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "roomPrice must be a number",
		})
		return
	}

	var amenities []byte
	if raw := c.PostForm("amenities"); raw != "" {
		if !json.Valid([]byte(raw)) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "amenities must be valid JSON",
			})
			return
		}
		amenities = []byte(raw)
	}

	var photo []byte
	if file, err := c.FormFile("photo"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "could not read photo upload",
			})
			return
		}
		defer f.Close()
		photo, err = io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "could not read photo upload",
			})
			return
		}
	}

	room, err := rc.RoomSvc.AddRoom(hotelName, roomType, price, details, amenities, photo)
	if err != nil {
		log.Printf("❌ Failed to create room: %v", err)
		c.JSON(statusForError(err), gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, room)
}

// ----------------------------------------------------
// 2. List Rooms (GET /api/rooms, optional ?page=&size=)
// ----------------------------------------------------

func (rc *RoomController) GetRooms(c *gin.Context) {
	if page, size, paged := pagingParams(c); paged {
		rooms, total, err := rc.RoomSvc.GetAllPaged(page, size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
			return
		}
		utils.JSONPage(c, http.StatusOK, rooms, total, page, size)
		return
	}

	rooms, err := rc.RoomSvc.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 3. Room by ID / photo
// ----------------------------------------------------

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.RoomSvc.GetByID(roomID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, room)
}

func (rc *RoomController) GetRoomPhoto(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	photo, err := rc.RoomSvc.GetRoomPhoto(roomID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(photo) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.Data(http.StatusOK, "image/jpeg", photo)
}

// ----------------------------------------------------
// 4. Availability search (GET /api/rooms/available)
// ----------------------------------------------------

func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("checkInDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid checkInDate, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("checkOutDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid checkOutDate, expected YYYY-MM-DD"})
		return
	}
	roomType := strings.TrimSpace(c.Query("roomType"))
	if roomType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "roomType is required"})
		return
	}

	if page, size, paged := pagingParams(c); paged {
		rooms, total, err := rc.RoomSvc.GetAvailableRoomsPaged(checkIn, checkOut, roomType, page, size)
		if err != nil {
			c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
			return
		}
		utils.JSONPage(c, http.StatusOK, rooms, total, page, size)
		return
	}

	rooms, err := rc.RoomSvc.GetAvailableRooms(checkIn, checkOut, roomType)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
		return
	}
	if len(rooms) == 0 {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, rooms)
}

// ----------------------------------------------------
// 5. Update / Delete Room
// ----------------------------------------------------

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var updateData map[string]interface{}
	if err := c.ShouldBindJSON(&updateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	if err := rc.RoomSvc.Update(roomID, updateData); err != nil {
		log.Printf("❌ Update error for room %d: %v", roomID, err)
		c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room updated successfully",
	})
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := rc.RoomSvc.Delete(roomID); err != nil {
		c.JSON(statusForError(err), gin.H{"status": "error", "message": err.Error()})
		return
	}

	log.Printf("✅ Room %d deleted", roomID)
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Room deleted successfully",
	})
}
