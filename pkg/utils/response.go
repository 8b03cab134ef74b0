package utils

import (
	"github.com/gin-gonic/gin"
)

// Format response standar biar frontend enak bacanya
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // omitempty: kalau null, ga usah dimunculin
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// APIError adalah singkatan untuk response gagal dengan pesan dari error
func APIError(c *gin.Context, code int, message string, err error) {
	var detail interface{}
	if err != nil {
		detail = err.Error()
	}
	APIResponse(c, code, false, message, detail)
}
