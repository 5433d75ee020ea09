// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/pdiddy/flashdeck/internal/ocr"
	"github.com/pdiddy/flashdeck/internal/parse"
	"github.com/pdiddy/flashdeck/internal/render"
	"github.com/pdiddy/flashdeck/pkg/types"
)

// pastePolicy strips all markup from pasted text. Lists copied from web
// pages routinely arrive wrapped in tags.
var pastePolicy = bluemonday.StrictPolicy()

// sanitizeInput removes markup and rejects input that is empty once
// stripped.
func sanitizeInput(input string) (string, error) {
	sanitized := html.UnescapeString(pastePolicy.Sanitize(input))
	if strings.TrimSpace(sanitized) == "" {
		return "", fmt.Errorf("input is empty")
	}
	return sanitized, nil
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseRequest is the body of POST /api/parse.
type parseRequest struct {
	// Text is the pasted list.
	Text string `json:"text" binding:"required"`

	// Format is "text" (default, delimiter heuristics) or "tsv"
	// (two-column table paste).
	Format string `json:"format"`

	Name    string `json:"name"`
	Subject string `json:"subject"`
	Lesson  string `json:"lesson"`
}

func (s *Server) parseHandler(c *gin.Context) {
	var req parseRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := sanitizeInput(req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cards []types.Card
	switch req.Format {
	case "", "text":
		cards = parse.Text(text)
	case "tsv":
		cards = parse.TSV(text)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown format %q", req.Format)})
		return
	}

	deck := types.Deck{
		Name:    req.Name,
		Subject: req.Subject,
		Lesson:  req.Lesson,
		Cards:   cards,
	}
	c.JSON(http.StatusOK, gin.H{"count": len(cards), "deck": deck})
}

func (s *Server) ocrHandler(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image upload 'file'"})
		return
	}
	if file.Size > s.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("image exceeds %d byte upload limit", s.MaxUploadBytes),
		})
		return
	}

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := s.OCR.ExtractText(c.Request.Context(), data, file.Filename)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, ocr.ErrNoAPIKey) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{"text": text}
	if c.Query("parse") == "true" {
		cards := parse.Text(text)
		resp["count"] = len(cards)
		resp["cards"] = cards
	}
	c.JSON(http.StatusOK, resp)
}

// pdfRequest is the body of POST /api/pdf.
type pdfRequest struct {
	Deck    types.Deck         `json:"deck" binding:"required"`
	Options types.RenderConfig `json:"options"`
}

func (s *Server) pdfHandler(c *gin.Context) {
	var req pdfRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := render.BuildPDF(req.Deck, req.Options, &buf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := req.Deck.Name
	if name == "" {
		name = "flashcards"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
