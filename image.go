package doctext

import (
	"path/filepath"
	"slices"
	"strings"
)

// imageExtensions lists raster formats eligible for OCR fallback.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".gif":  true,
	".tiff": true,
	".webp": true,
}

// IsImage reports whether path has a common raster-image extension.
// The comparison is case-insensitive.
func IsImage(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}

// ImageExtensions returns the sorted list of extensions recognized by IsImage.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
