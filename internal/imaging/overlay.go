package imaging

import (
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// Default overlay colors.
const (
	DefaultBoundaryColor = "#00ff00"
	DefaultHoleColor     = "#ff0000"
	DefaultCoverColor    = "#0080ff"
)

// OverlayOptions controls how a hole is drawn over its grid.
type OverlayOptions struct {
	// BoundaryColor, HoleColor and CoverColor are "#rrggbb" or "#rgb" strings.
	// Unparseable or empty values fall back to the defaults.
	BoundaryColor string
	HoleColor     string
	CoverColor    string

	// Opacity is the weight of the overlay color against the underlying gray
	// value, in [0,1]. Zero means 1.
	Opacity float64

	// Scale enlarges every pixel to a Scale×Scale block. Values below 1 mean 1.
	Scale int

	// ShowCover outlines the covering rectangle.
	ShowCover bool
}

// OverlayResult contains the rendered overlay.
type OverlayResult struct {
	Width          int    `json:"width"`
	Height         int    `json:"height"`
	Scale          int    `json:"scale"`
	BoundaryPixels int    `json:"boundary_pixels"`
	HolePixels     int    `json:"hole_pixels"`
	ImageBase64    string `json:"image_base64"`
	MimeType       string `json:"mime_type"`
}

// RenderOverlay draws the grid in gray and highlights hole pixels and the
// boundary of h in color. With a nil h every sentinel sample of the grid is
// highlighted and no boundary is drawn.
func RenderOverlay(g *holefill.Grid, h *holefill.Hole, opts OverlayOptions) (*OverlayResult, error) {
	boundaryColor := parseColor(opts.BoundaryColor, DefaultBoundaryColor)
	holeColor := parseColor(opts.HoleColor, DefaultHoleColor)
	coverColor := parseColor(opts.CoverColor, DefaultCoverColor)
	opacity := opts.Opacity
	if opacity <= 0 || opacity > 1 {
		opacity = 1
	}
	scale := opts.Scale
	if scale < 1 {
		scale = 1
	}

	width, height := g.Cols(), g.Rows()
	result := image.NewNRGBA(image.Rect(0, 0, width, height))

	shade := func(p holefill.Point, tint colorful.Color) {
		level := float64(grayLevel(g.Value(p))) / 255
		base := colorful.Color{R: level, G: level, B: level}
		result.Set(p.Col, p.Row, toNRGBA(base.BlendRgb(tint, opacity)))
	}

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			v := grayLevel(g.Value(holefill.Point{Row: r, Col: c}))
			result.Set(c, r, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}

	holePixels := 0
	if h == nil {
		for r := 0; r < height; r++ {
			for c := 0; c < width; c++ {
				p := holefill.Point{Row: r, Col: c}
				if g.IsSentinel(p) {
					shade(p, holeColor)
					holePixels++
				}
			}
		}
	} else {
		for _, p := range append(append([]holefill.Point{}, h.Pixels...), h.Boundary...) {
			if !g.InBounds(p.Row, p.Col) {
				return nil, fmt.Errorf("%w: hole point %v", holefill.ErrOutOfBounds, p)
			}
		}
		if opts.ShowCover {
			for _, p := range coverOutline(h.Cover) {
				if g.InBounds(p.Row, p.Col) {
					shade(p, coverColor)
				}
			}
		}
		for _, p := range h.Pixels {
			shade(p, holeColor)
		}
		holePixels = len(h.Pixels)
		for _, p := range h.Boundary {
			shade(p, boundaryColor)
		}
	}

	var out image.Image = result
	if scale > 1 {
		out = imaging.Resize(result, width*scale, height*scale, imaging.NearestNeighbor)
	}

	encoded, err := encodePNG(out)
	if err != nil {
		return nil, err
	}

	boundaryPixels := 0
	if h != nil {
		boundaryPixels = len(h.Boundary)
	}
	return &OverlayResult{
		Width:          width * scale,
		Height:         height * scale,
		Scale:          scale,
		BoundaryPixels: boundaryPixels,
		HolePixels:     holePixels,
		ImageBase64:    encoded,
		MimeType:       "image/png",
	}, nil
}

// parseColor parses hex, falling back to def when hex is empty or invalid.
func parseColor(hex, def string) colorful.Color {
	if hex != "" {
		if c, err := colorful.Hex(hex); err == nil {
			return c
		}
	}
	c, _ := colorful.Hex(def)
	return c
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// coverOutline returns the points on the edge of rc.
func coverOutline(rc holefill.Rect) []holefill.Point {
	var out []holefill.Point
	for c := rc.TopLeft.Col; c <= rc.TopRight.Col; c++ {
		out = append(out, holefill.Point{Row: rc.TopLeft.Row, Col: c})
		if rc.BottomLeft.Row != rc.TopLeft.Row {
			out = append(out, holefill.Point{Row: rc.BottomLeft.Row, Col: c})
		}
	}
	for r := rc.TopLeft.Row + 1; r < rc.BottomLeft.Row; r++ {
		out = append(out, holefill.Point{Row: r, Col: rc.TopLeft.Col})
		if rc.TopRight.Col != rc.TopLeft.Col {
			out = append(out, holefill.Point{Row: r, Col: rc.TopRight.Col})
		}
	}
	return out
}
