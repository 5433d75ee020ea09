// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "flashdeck/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OCRConfig holds settings for the OCR stage.
type OCRConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey authenticates against the OCR.space API. Required; the
	// stage fails before any network call when it is empty.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Language is the OCR.space language code (default "eng").
	Language string `json:"language" yaml:"language"`

	// MaxImageDim is the pixel bound above which uploads are downscaled
	// before submission (default 2048). The free API tier rejects large
	// files.
	MaxImageDim int `json:"max_image_dim" yaml:"max_image_dim"`

	// MaxRetries bounds retry attempts on HTTP 429 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// DuplexMode selects how back sheets register against front sheets when
// the printed stack is flipped for double-sided printing.
type DuplexMode string

const (
	// DuplexLongEdge mirrors grid columns so backs line up after a
	// long-edge flip.
	DuplexLongEdge DuplexMode = "long-edge"

	// DuplexLongEdgeNoMirror keeps back positions identical to the
	// front, for printers that mirror long-edge duplex themselves.
	DuplexLongEdgeNoMirror DuplexMode = "long-edge-no-mirror"

	// DuplexShortEdge rotates the back sheet 180 degrees about the page
	// center.
	DuplexShortEdge DuplexMode = "short-edge"
)

// FooterConfig controls the optional per-card footer line.
type FooterConfig struct {
	// Enabled turns the footer on.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Template may reference {subject}, {lesson}, {unit}, {index} and
	// {page}. A template with unknown placeholders falls back to
	// "subject lesson".
	Template string `json:"template" yaml:"template"`
}

// RenderConfig holds settings for PDF rendering.
type RenderConfig struct {
	// Duplex selects the back-sheet alignment mode.
	Duplex DuplexMode `json:"duplex" yaml:"duplex"`

	// OffsetXmm and OffsetYmm nudge back-sheet content, in millimetres,
	// to compensate for printer registration drift.
	OffsetXmm float64 `json:"offset_x_mm" yaml:"offset_x_mm"`
	OffsetYmm float64 `json:"offset_y_mm" yaml:"offset_y_mm"`

	Footer FooterConfig `json:"footer" yaml:"footer"`

	// CornerMarker draws a small registration square on back sheets.
	CornerMarker bool `json:"corner_marker" yaml:"corner_marker"`

	// SmallFront uses the smaller front typeface (12 pt instead of 14 pt).
	SmallFront bool `json:"small_front" yaml:"small_front"`
}

// LibraryConfig holds settings for the local deck library.
type LibraryConfig struct {
	// DataDir is the base directory for the library (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Port is the TCP port to listen on (default "8080").
	Port string `json:"port" yaml:"port"`

	// MaxUploadBytes bounds OCR image uploads (default 8 MiB).
	MaxUploadBytes int64 `json:"max_upload_bytes" yaml:"max_upload_bytes"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	OCR     OCRConfig     `json:"ocr" yaml:"ocr"`
	Render  RenderConfig  `json:"render" yaml:"render"`
	Library LibraryConfig `json:"library" yaml:"library"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}
