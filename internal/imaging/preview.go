package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// Window is a half-open region of grid rows [Top,Bottom) and columns [Left,Right).
type Window struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Bottom int `json:"bottom"`
	Right  int `json:"right"`
}

// PreviewResult contains an enlarged crop of the grid around a hole.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Window      Window `json:"window"`
	Scale       int    `json:"scale"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// PreviewHole crops the grid to rc grown by margin pixels on every side,
// clipped to the grid, and enlarges the crop by scale with nearest-neighbour
// sampling so individual pixels stay visible. Hole samples show as white.
func PreviewHole(g *holefill.Grid, rc holefill.Rect, margin, scale int) (*PreviewResult, error) {
	if margin < 0 {
		return nil, fmt.Errorf("margin must be non-negative, got %d", margin)
	}
	if scale < 1 {
		scale = 1
	}
	for _, p := range rc.Corners() {
		if !g.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: rectangle corner %v", holefill.ErrOutOfBounds, p)
		}
	}
	if rc.Width() <= 0 || rc.Height() <= 0 {
		return nil, fmt.Errorf("%w: %v..%v", holefill.ErrInvalidRect, rc.TopLeft, rc.BottomRight)
	}

	win := Window{
		Top:    max(rc.TopLeft.Row-margin, 0),
		Left:   max(rc.TopLeft.Col-margin, 0),
		Bottom: min(rc.BottomRight.Row+margin+1, g.Rows()),
		Right:  min(rc.BottomRight.Col+margin+1, g.Cols()),
	}

	cropped := imaging.Crop(GridImage(g), image.Rect(win.Left, win.Top, win.Right, win.Bottom))
	if scale > 1 {
		b := cropped.Bounds()
		cropped = imaging.Resize(cropped, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)
	}

	encoded, err := encodePNG(cropped)
	if err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		Window:      win,
		Scale:       scale,
		ImageBase64: encoded,
		MimeType:    "image/png",
	}, nil
}
