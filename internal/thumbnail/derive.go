// Package thumbnail derives small square previews from uploaded airway
// photographs for storage alongside history items.
package thumbnail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoding

	"golang.org/x/image/draw"
)

const (
	// Side is the edge length of the derived square preview.
	Side = 60
	// jpegQuality keeps previews small enough to embed as data URLs.
	jpegQuality = 60
)

// ErrDecode reports that the input bytes are not a decodable image. Callers
// in the assessment-save flow treat this as non-fatal and persist the history
// item without a thumbnail.
var ErrDecode = errors.New("image decode failed")

// Derive decodes the source image, crops the largest centered square, scales
// it to Side x Side, and returns it as a base64 JPEG data URL.
func Derive(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return "", fmt.Errorf("%w: empty image", ErrDecode)
	}

	side := width
	if height < side {
		side = height
	}
	crop := image.Rect(
		bounds.Min.X+(width-side)/2,
		bounds.Min.Y+(height-side)/2,
		bounds.Min.X+(width-side)/2+side,
		bounds.Min.Y+(height-side)/2+side,
	)

	dst := image.NewRGBA(image.Rect(0, 0, Side, Side))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, draw.Src, nil)

	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode thumbnail: %w", err)
	}
	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
