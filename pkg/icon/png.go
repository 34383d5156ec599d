// png.go — PNG encoding and file output.
package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// Encode writes img to w as PNG. This is useful for in-memory output.
func Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNG encodes img to a PNG file at path, overwriting any existing
// file. The parent directory must already exist; a missing directory
// surfaces as the create error.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
