package httpresp

import "github.com/gin-gonic/gin"

// Envelope is the shared success shape: {success, data?, error?}.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(200, Envelope{Success: true, Data: data})
}

func Created(c *gin.Context, data any) {
	c.JSON(201, Envelope{Success: true, Data: data})
}

// Empty acknowledges a mutation that returns no record, e.g. delete.
func Empty(c *gin.Context) {
	c.JSON(200, Envelope{Success: true})
}
