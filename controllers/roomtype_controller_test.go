package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/config"
	"hotel-booking/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRoomTypeRouter(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.RoomType{}))
	config.DB = db

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/room-types", GetRoomTypes)
	r.POST("/api/room-types", CreateRoomType)
	r.DELETE("/api/room-types/:id", DeleteRoomType)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRoomTypeLifecycle(t *testing.T) {
	r := setupRoomTypeRouter(t)

	w := postJSON(r, "/api/room-types", `{"typeName":"Deluxe","description":"Deluxe Room","maxGuests":4}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/room-types", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Deluxe")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/room-types/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/room-types", nil))
	assert.NotContains(t, w.Body.String(), "Deluxe")
}

func TestCreateRoomTypeRejectsBlankName(t *testing.T) {
	r := setupRoomTypeRouter(t)

	w := postJSON(r, "/api/room-types", `{"typeName":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/room-types", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRoomTypeUnknown(t *testing.T) {
	r := setupRoomTypeRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/room-types/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/room-types/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
