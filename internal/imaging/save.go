package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// GridImage renders g as an 8-bit grayscale image, one pixel per sample.
// Hole samples are rendered white.
func GridImage(g *holefill.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Cols(), g.Rows()))
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			v := g.Value(holefill.Point{Row: r, Col: c})
			img.SetGray(c, r, color.Gray{Y: grayLevel(v)})
		}
	}
	return img
}

// SaveGrid encodes g to path. The format is chosen from the file extension.
// Hole samples are written as white; g itself is not modified.
func SaveGrid(g *holefill.Grid, path string) error {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return fmt.Errorf("unsupported output format %q: %w", filepath.Ext(path), err)
	}
	if err := imaging.Save(GridImage(g), path); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// grayLevel maps a sample to an 8-bit intensity. The sentinel maps to white.
func grayLevel(v float64) uint8 {
	if v == holefill.Sentinel {
		return 255
	}
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// encodePNG returns img as base64-encoded PNG.
func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
