// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	defaultQRSize = 400
	maxQRSize     = 2000
)

// qrHandler returns a QR PNG for the "text" query parameter, typically a
// link to a generated PDF so a deck can be pulled up on another device.
func (s *Server) qrHandler(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing 'text' query parameter"})
		return
	}

	size := defaultQRSize
	if v, err := strconv.Atoi(c.Query("size")); err == nil && v > 0 && v <= maxQRSize {
		size = v
	}

	png, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
