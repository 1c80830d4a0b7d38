package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	page, size := ClampPage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, size)

	page, size = ClampPage(-3, 500)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, size)

	page, size = ClampPage(2, 25)
	assert.Equal(t, 2, page)
	assert.Equal(t, 25, size)
}

func TestJSONPageEchoesClampedValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	JSONPage(c, http.StatusOK, []string{}, 0, 0, 500)

	assert.Contains(t, w.Body.String(), `"page":1`)
	assert.Contains(t, w.Body.String(), `"size":100`)
}
