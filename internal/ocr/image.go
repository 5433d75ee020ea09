// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ocr

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// PrepareImage returns the image bytes to upload. Images whose larger
// dimension exceeds maxDim are scaled down to fit maxDim x maxDim and
// re-encoded as PNG; anything else passes through untouched. The free API
// tier rejects large uploads, and screenshots rarely need full resolution
// for text recognition.
func PrepareImage(data []byte, maxDim int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDim && bounds.Dy() <= maxDim {
		return data, nil
	}

	scaled := imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, scaled, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding scaled image: %w", err)
	}
	return buf.Bytes(), nil
}
