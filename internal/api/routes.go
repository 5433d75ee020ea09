// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package api exposes the pipeline over HTTP for interactive use: parse a
// pasted list, OCR a screenshot, render a deck to PDF. It is the serving
// counterpart of the CLI subcommands.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/pdiddy/flashdeck/internal/ocr"
	"github.com/pdiddy/flashdeck/pkg/types"
)

// Server carries the handlers' dependencies.
type Server struct {
	OCR            *ocr.Client
	MaxUploadBytes int64
}

// NewServer builds a Server from the stage configurations.
func NewServer(ocrCfg types.OCRConfig, srvCfg types.ServerConfig) *Server {
	maxUpload := srvCfg.MaxUploadBytes
	if maxUpload <= 0 {
		maxUpload = 8 << 20
	}
	return &Server{
		OCR:            ocr.New(ocrCfg),
		MaxUploadBytes: maxUpload,
	}
}

// RegisterRoutes mounts the API under /api.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.POST("/parse", s.parseHandler)
		api.POST("/ocr", s.ocrHandler)
		api.POST("/pdf", s.pdfHandler)
		api.GET("/qr", s.qrHandler)
	}
}
