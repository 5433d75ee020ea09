// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ocr extracts text from screenshots of lists through the
// OCR.space HTTP API. The stage is gated on a user-supplied API key; the
// public test key is too rate-limited to be useful, so a missing key is a
// friendly error rather than a degraded call.
package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/flashdeck/internal/httputil"
	"github.com/pdiddy/flashdeck/pkg/types"
)

// parseEndpoint is the OCR.space image parsing endpoint. Declared as a var
// so tests can substitute an httptest server.
var parseEndpoint = "https://api.ocr.space/parse/image"

// ErrNoAPIKey is returned before any network call when no key is
// configured.
var ErrNoAPIKey = errors.New("no OCR API key configured: add ocr-space-api-key to .secrets/ or set FLASHDECK_OCR_API_KEY")

// Client calls the OCR.space API.
type Client struct {
	httpClient *http.Client
	cfg        types.OCRConfig
}

// New builds a client from the OCR stage configuration, applying the
// defaults: 60 s timeout, language "eng", 2048 px image bound.
func New(cfg types.OCRConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.MaxImageDim <= 0 {
		cfg.MaxImageDim = 2048
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
	}
}

// ocrResponse mirrors the fields of the OCR.space reply this client reads.
type ocrResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool        `json:"IsErroredOnProcessing"`
	ErrorMessage          messageList `json:"ErrorMessage"`
	OCRExitCode           int         `json:"OCRExitCode"`
}

// messageList absorbs the API's ErrorMessage field, which is sometimes a
// string and sometimes an array of strings.
type messageList []string

func (m *messageList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		if one != "" {
			*m = messageList{one}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*m = messageList(many)
	return nil
}

func (m messageList) String() string {
	return strings.Join(m, "; ")
}

// ExtractText uploads an image and returns the concatenated parsed text of
// all result pages. Oversized images are downscaled first.
func (c *Client) ExtractText(ctx context.Context, image []byte, filename string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrNoAPIKey
	}

	prepared, err := PrepareImage(image, c.cfg.MaxImageDim)
	if err != nil {
		return "", fmt.Errorf("preparing image: %w", err)
	}
	if filename == "" {
		filename = "upload.png"
	}

	body, contentType, err := encodeUpload(prepared, filename, c.cfg)
	if err != nil {
		return "", err
	}

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodPost, parseEndpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", contentType)
		if c.cfg.UserAgent != "" {
			req.Header.Set("User-Agent", c.cfg.UserAgent)
		}
		return req, nil
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, newReq, c.cfg.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("OCR API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR API returned HTTP %d", resp.StatusCode)
	}

	var or ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("parsing OCR response: %w", err)
	}

	if or.IsErroredOnProcessing {
		msg := or.ErrorMessage.String()
		if msg == "" {
			msg = "OCR processing error"
		}
		return "", fmt.Errorf("OCR failed: %s", msg)
	}

	var sb strings.Builder
	for _, r := range or.ParsedResults {
		sb.WriteString(r.ParsedText)
	}
	return sb.String(), nil
}

// encodeUpload builds the multipart form the API expects: the image file
// plus language, overlay and apikey fields.
func encodeUpload(image []byte, filename string, cfg types.OCRConfig) ([]byte, string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", fmt.Errorf("encoding upload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, "", fmt.Errorf("encoding upload: %w", err)
	}

	fields := map[string]string{
		"language":          cfg.Language,
		"isOverlayRequired": "false",
		"apikey":            cfg.APIKey,
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("encoding upload: %w", err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("encoding upload: %w", err)
	}
	return buf.Bytes(), mw.FormDataContentType(), nil
}
