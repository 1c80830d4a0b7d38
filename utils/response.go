package utils

import "github.com/gin-gonic/gin"

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// ClampPage normalizes paging inputs: pages start at 1, size is bounded to
// 1-100. Both the query scope and the response metadata go through it so the
// echoed size always matches the page actually served.
func ClampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case size < 1:
		size = 10
	case size > 100:
		size = 100
	}
	return page, size
}

func JSONPage(c *gin.Context, code int, items interface{}, total int64, page, size int) {
	page, size = ClampPage(page, size)
	c.JSON(code, gin.H{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
		"size":    size,
	})
}
