package v1

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Register PNG decoder

	"golang.org/x/image/draw"
)

const (
	headshotMaxDimension = 1200
	headshotJPEGQuality  = 80
)

// reencodeHeadshot decodes an uploaded JPEG or PNG, downscales it to the
// max dimension preserving aspect ratio, and returns JPEG bytes. The
// generated site links the headshot as ./headshot.jpg, so whatever arrives
// must leave here as an actual JPEG.
func reencodeHeadshot(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	// Scale down only; small images keep their dimensions
	newWidth, newHeight := width, height
	if width >= height && width > headshotMaxDimension {
		newWidth = headshotMaxDimension
		newHeight = int(float64(height) * float64(headshotMaxDimension) / float64(width))
	} else if height > width && height > headshotMaxDimension {
		newHeight = headshotMaxDimension
		newWidth = int(float64(width) * float64(headshotMaxDimension) / float64(height))
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: headshotJPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
