// Package image loads raster images for OCR. It registers decoders for every
// format accepted by doctext.IsImage, including BMP, TIFF and WebP from
// golang.org/x/image, and normalizes images to PNG for the OCR engines.
package image

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"

	"github.com/fwojciec/doctext"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image file at path and reports its format name.
// The file is closed before Load returns.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", doctext.Errorf(doctext.EOCR, "cannot load image: %v", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", doctext.Errorf(doctext.EOCR, "cannot load image %s: %v", filepath.Base(path), err)
	}
	return img, format, nil
}

// EncodePNG encodes img as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, doctext.Errorf(doctext.EOCR, "encoding image: %v", err)
	}
	return buf.Bytes(), nil
}

// LoadPNG loads the image at path and returns it encoded as PNG.
func LoadPNG(path string) ([]byte, error) {
	img, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	return EncodePNG(img)
}
