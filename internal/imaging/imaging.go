// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging generates responsive variants of uploaded photos. The
// gallery and hero sections serve images at several breakpoints; variants
// wider than the source are skipped to avoid upscaling.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// Variant describes a single responsive image size.
type Variant struct {
	Name    string // "thumb", "sm", "md", "lg"
	Width   int    // target width in pixels
	Quality int    // JPEG quality 1-100
}

// DefaultVariants covers the storefront breakpoints: gallery thumbnails,
// mobile, tablet, and the full-width hero background.
var DefaultVariants = []Variant{
	{Name: "thumb", Width: 320, Quality: 75},
	{Name: "sm", Width: 640, Quality: 80},
	{Name: "md", Width: 1024, Quality: 80},
	{Name: "lg", Width: 1920, Quality: 80},
}

// ProcessedImage holds one generated variant ready for upload.
type ProcessedImage struct {
	Name        string
	Width       int
	Height      int
	Data        []byte // JPEG-encoded image bytes
	ContentType string // always "image/jpeg"
}

// Resizable reports whether variants can be generated for a content type.
// Animated and vector formats are passed through untouched.
func Resizable(contentType string) bool {
	return contentType == "image/jpeg" || contentType == "image/png"
}

// GenerateVariants decodes the source image and scales it to each
// configured breakpoint. Variants wider than the original collapse to
// the original width, and generation stops once the full width has been
// produced. Returns at least one variant for any decodable image.
func GenerateVariants(original []byte, variants []Variant) ([]ProcessedImage, error) {
	if len(variants) == 0 {
		variants = DefaultVariants
	}

	src, _, err := image.Decode(bytes.NewReader(original))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode failed: %w", err)
	}
	bounds := src.Bounds()
	origWidth, origHeight := bounds.Dx(), bounds.Dy()
	if origWidth == 0 || origHeight == 0 {
		return nil, fmt.Errorf("imaging: empty image")
	}

	var results []ProcessedImage

	for _, v := range variants {
		targetWidth := v.Width
		if origWidth <= targetWidth {
			targetWidth = origWidth
		}
		targetHeight := origHeight * targetWidth / origWidth
		// Extreme aspect ratios truncate to zero height, which the
		// JPEG encoder rejects.
		if targetHeight < 1 {
			targetHeight = 1
		}

		dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: v.Quality}); err != nil {
			return nil, fmt.Errorf("imaging: encode %s (%dpx): %w", v.Name, targetWidth, err)
		}

		results = append(results, ProcessedImage{
			Name:        v.Name,
			Width:       targetWidth,
			Height:      targetHeight,
			Data:        buf.Bytes(),
			ContentType: "image/jpeg",
		})

		// The full-width variant makes larger breakpoints pointless.
		if origWidth <= v.Width {
			break
		}
	}

	return results, nil
}
