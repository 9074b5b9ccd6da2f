package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
	"github.com/ironsheep/hole-filling-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "hole_fill").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidArgs marks argument errors so they map to -32602.
var errInvalidArgs = errors.New("invalid arguments")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	s.debugf("tool %s %s", params.Name, params.Arguments)
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.debugf("tool %s failed: %v", params.Name, err)
		if errors.Is(err, errInvalidArgs) {
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Image lifecycle
	case "image_load":
		return s.handleImageLoad(args)
	case "image_sample_pixels":
		return s.handleImageSamplePixels(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_reset":
		return s.handleImageReset(args)
	case "image_close":
		return s.handleImageClose(args)

	// Hole pipeline
	case "hole_create":
		return s.handleHoleCreate(args)
	case "hole_find":
		return s.handleHoleFind(args)
	case "hole_fill":
		return s.handleHoleFill(args)
	case "hole_overlay":
		return s.handleHoleOverlay(args)
	case "hole_preview":
		return s.handleHolePreview(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	resp := &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
		},
	}
	if data != "" {
		resp.Error.Data = data
	}
	return resp
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments and checks that a path was given.
func decodeArgs(args json.RawMessage, v interface{ imagePath() string }) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing arguments", errInvalidArgs)
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	if v.imagePath() == "" {
		return fmt.Errorf("%w: path is required", errInvalidArgs)
	}
	return nil
}

type pathArgs struct {
	Path string `json:"path"`
}

func (a *pathArgs) imagePath() string { return a.Path }

// weightArgs are optional overrides of the weighted fill parameters.
type weightArgs struct {
	Z   *float64 `json:"z,omitempty"`
	Eps *float64 `json:"eps,omitempty"`
}

// resolve applies the overrides to base. It returns nil when none are set.
func (a weightArgs) resolve(base holefill.WeightParams) (*holefill.WeightParams, error) {
	if a.Z == nil && a.Eps == nil {
		return nil, nil
	}
	p := base
	if a.Z != nil {
		p.Z = *a.Z
	}
	if a.Eps != nil {
		p.Eps = *a.Eps
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}
	return &p, nil
}

// === Image Lifecycle Handlers ===

type imageLoadArgs struct {
	pathArgs
	weightArgs
	Reload bool `json:"reload"`
}

type imageLoadResult struct {
	*imaging.ImageInfo
	Rows   int                   `json:"rows"`
	Cols   int                   `json:"cols"`
	Weight holefill.WeightParams `json:"weight"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	params, err := a.resolve(s.config.Weight)
	if err != nil {
		return nil, err
	}

	var opts []holefill.SessionOption
	if params != nil {
		opts = append(opts, holefill.WithWeightParams(*params))
	}
	load := s.workspace.Load
	if a.Reload {
		load = s.workspace.Reload
	}
	info, err := load(a.Path, opts...)
	if err != nil {
		return nil, err
	}

	result := &imageLoadResult{ImageInfo: info}
	err = s.workspace.With(a.Path, func(e *entry) error {
		result.Rows = e.session.Grid().Rows()
		result.Cols = e.session.Grid().Cols()
		result.Weight = e.session.Weight().Params()
		return nil
	})
	return result, err
}

type imageSamplePixelsArgs struct {
	pathArgs
	Points []holefill.Point `json:"points"`
}

func (s *Server) handleImageSamplePixels(args json.RawMessage) (interface{}, error) {
	var a imageSamplePixelsArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	var samples []imaging.PixelSample
	err := s.workspace.With(a.Path, func(e *entry) error {
		var err error
		samples, err = imaging.SamplePixels(e.session.Grid(), a.Points)
		return err
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"samples": samples}, nil
}

type imageSaveArgs struct {
	pathArgs
	OutputPath string `json:"output_path"`
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.OutputPath == "" {
		return nil, fmt.Errorf("%w: output_path is required", errInvalidArgs)
	}

	result := map[string]interface{}{"output_path": a.OutputPath}
	err := s.workspace.With(a.Path, func(e *entry) error {
		g := e.session.Grid()
		if err := imaging.SaveGrid(g, a.OutputPath); err != nil {
			return err
		}
		result["rows"] = g.Rows()
		result["cols"] = g.Cols()
		result["hole_pixels_written_white"] = g.HoleCount()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Server) handleImageReset(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if err := s.workspace.Reset(a.Path); err != nil {
		return nil, err
	}
	return map[string]interface{}{"path": a.Path, "reset": true}, nil
}

func (s *Server) handleImageClose(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	s.workspace.Remove(a.Path)
	return map[string]interface{}{"path": a.Path, "closed": true}, nil
}

// === Hole Pipeline Handlers ===

type holeCreateArgs struct {
	pathArgs
	RowStart int `json:"row_start"`
	RowEnd   int `json:"row_end"`
	ColStart int `json:"col_start"`
	ColEnd   int `json:"col_end"`
}

func (s *Server) handleHoleCreate(args json.RawMessage) (interface{}, error) {
	var a holeCreateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	err := s.workspace.With(a.Path, func(e *entry) error {
		if err := e.session.CreateHole(a.RowStart, a.RowEnd, a.ColStart, a.ColEnd); err != nil {
			return err
		}
		result["erased"] = (a.RowEnd - a.RowStart) * (a.ColEnd - a.ColStart)
		result["hole_pixels"] = e.session.Grid().HoleCount()
		result["holed"] = e.session.Grid().Holed()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type holeFindArgs struct {
	pathArgs
	IncludePoints bool `json:"include_points"`
}

type holeFindResult struct {
	Found          bool             `json:"found"`
	BoundaryLength int              `json:"boundary_length"`
	HolePixels     int              `json:"hole_pixels"`
	Cover          *holefill.Rect   `json:"cover,omitempty"`
	Boundary       []holefill.Point `json:"boundary,omitempty"`
	Pixels         []holefill.Point `json:"pixels,omitempty"`
}

func (s *Server) handleHoleFind(args json.RawMessage) (interface{}, error) {
	var a holeFindArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	result := &holeFindResult{}
	err := s.workspace.With(a.Path, func(e *entry) error {
		h, err := e.session.FindHole()
		if err != nil || h == nil {
			return err
		}
		result.Found = true
		result.BoundaryLength = len(h.Boundary)
		result.HolePixels = len(h.Pixels)
		cover := h.Cover
		result.Cover = &cover
		if a.IncludePoints {
			result.Boundary = h.Boundary
			result.Pixels = h.Pixels
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type holeFillArgs struct {
	pathArgs
	weightArgs
	Strategy string `json:"strategy"`
}

type holeFillResult struct {
	Strategy    string                 `json:"strategy"`
	Weight      *holefill.WeightParams `json:"weight,omitempty"`
	FilledCount int                    `json:"filled_pixels"`
	Cover       holefill.Rect          `json:"cover"`
	Holed       bool                   `json:"holed"`
	Quality     *imaging.FillQuality   `json:"quality"`
	Seam        *imaging.SeamResult    `json:"seam"`
}

func (s *Server) handleHoleFill(args json.RawMessage) (interface{}, error) {
	var a holeFillArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Strategy == "" {
		a.Strategy = holefill.StrategyWeighted.String()
	}
	strategy, err := holefill.ParseStrategy(a.Strategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidArgs, err)
	}

	result := &holeFillResult{Strategy: strategy.String()}
	err = s.workspace.With(a.Path, func(e *entry) error {
		params, err := a.resolve(e.session.Weight().Params())
		if err != nil {
			return err
		}

		h := e.session.Hole()
		if h == nil {
			if h, err = e.session.FindHole(); err != nil {
				return err
			}
			if h == nil {
				return holefill.ErrNoHole
			}
		}

		if err := e.session.Fill(strategy, params); err != nil {
			return err
		}
		e.lastFill = h

		g := e.session.Grid()
		result.FilledCount = len(h.Pixels)
		result.Cover = h.Cover
		result.Holed = g.Holed()
		if strategy == holefill.StrategyWeighted {
			w := e.session.Weight().Params()
			if params != nil {
				w = *params
			}
			result.Weight = &w
		}
		if result.Quality, err = imaging.CompareFill(e.session.Reference(), g, h.Pixels); err != nil {
			return err
		}
		result.Seam, err = imaging.SeamStrength(g, h.Cover)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.debugf("filled %d pixels of %s with %s", result.FilledCount, a.Path, result.Strategy)
	return result, nil
}

type holeOverlayArgs struct {
	pathArgs
	BoundaryColor string  `json:"boundary_color"`
	HoleColor     string  `json:"hole_color"`
	CoverColor    string  `json:"cover_color"`
	Opacity       float64 `json:"opacity"`
	Scale         int     `json:"scale"`
	ShowCover     bool    `json:"show_cover"`
}

func (s *Server) handleHoleOverlay(args json.RawMessage) (interface{}, error) {
	var a holeOverlayArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1
	}

	var result *imaging.OverlayResult
	err := s.workspace.With(a.Path, func(e *entry) error {
		h := e.session.Hole()
		if h == nil && e.session.Grid().Holed() {
			var err error
			if h, err = e.session.FindHole(); err != nil {
				return err
			}
		}

		var err error
		result, err = imaging.RenderOverlay(e.session.Grid(), h, imaging.OverlayOptions{
			BoundaryColor: a.BoundaryColor,
			HoleColor:     a.HoleColor,
			CoverColor:    a.CoverColor,
			Opacity:       a.Opacity,
			Scale:         a.Scale,
			ShowCover:     a.ShowCover,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

type holePreviewArgs struct {
	pathArgs
	Margin *int `json:"margin,omitempty"`
	Scale  int  `json:"scale"`
}

func (s *Server) handleHolePreview(args json.RawMessage) (interface{}, error) {
	var a holePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	margin := 2
	if a.Margin != nil {
		margin = *a.Margin
	}
	if a.Scale == 0 {
		a.Scale = 8
	}

	var result *imaging.PreviewResult
	err := s.workspace.With(a.Path, func(e *entry) error {
		h := e.session.Hole()
		if h == nil {
			var err error
			if h, err = e.session.FindHole(); err != nil {
				return err
			}
		}
		// Fall back to the last filled hole to inspect the fill.
		if h == nil {
			h = e.lastFill
		}
		if h == nil {
			return holefill.ErrNoHole
		}

		var err error
		result, err = imaging.PreviewHole(e.session.Grid(), h.Cover, margin, a.Scale)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
