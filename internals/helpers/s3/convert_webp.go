// file: internals/helpers/s3/convert_webp.go
package helper

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

const (
	webpMaxDimension = 1920
	webpQuality      = 80
)

// IsImageFilename reports whether the extension looks like a
// convertible raster image.
func IsImageFilename(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

// ConvertToWebP decodes an image payload, downscales it to fit
// 1920x1920 and re-encodes it as lossy WebP. Screenshots uploaded
// through the server go through this to keep the bucket small.
func ConvertToWebP(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("webp: decode image: %w", err)
	}

	b := img.Bounds()
	if b.Dx() > webpMaxDimension || b.Dy() > webpMaxDimension {
		img = imaging.Fit(img, webpMaxDimension, webpMaxDimension, imaging.Lanczos)
	}

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// WebPKeyName swaps a filename's extension for .webp.
func WebPKeyName(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if base == "" {
		base = "image"
	}
	return base + ".webp"
}
