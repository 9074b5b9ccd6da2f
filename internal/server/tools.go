package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema of the "path" argument every tool takes.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path of the loaded image; identifies the working grid",
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func numberProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": description,
	}
}

func stringProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image lifecycle
		{
			Name:        "image_load",
			Description: "Load an image file as a normalized grayscale grid and start a hole-filling session for it. Loading an already loaded path discards its changes; the decoded file is reused unless reload is set.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"z":    numberProperty("Default distance exponent for weighted fills of this image (default from server config, 5)"),
					"eps":  numberProperty("Default epsilon for weighted fills of this image (default from server config, 1e-4)"),
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Read the file from disk again instead of reusing the cached decode (default: false)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sample_pixels",
			Description: "Read grid samples at the given points. Returns the normalized value (-1 for hole pixels), the 8-bit gray level and its hex color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"points": map[string]interface{}{
						"type":        "array",
						"description": "Points to sample",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"row": integerProperty("Row (0-based, top to bottom)"),
								"col": integerProperty("Column (0-based, left to right)"),
							},
							"required": []string{"row", "col"},
						},
					},
				},
				"required": []string{"path", "points"},
			},
		},
		{
			Name:        "image_save",
			Description: "Encode the working grid to a file. The format follows the extension (png, jpg, gif, tif, bmp). Remaining hole pixels are written white.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathProperty,
					"output_path": stringProperty("Absolute path of the file to write"),
				},
				"required": []string{"path", "output_path"},
			},
		},
		{
			Name:        "image_reset",
			Description: "Discard all holes and fills, restoring the grid as it was loaded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_close",
			Description: "Forget a loaded image and free its memory.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Hole pipeline
		{
			Name:        "hole_create",
			Description: "Erase the half-open rectangle rows [row_start,row_end) x cols [col_start,col_end), turning its pixels into a hole.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":      pathProperty,
					"row_start": integerProperty("First erased row (inclusive)"),
					"row_end":   integerProperty("Row after the last erased row (exclusive)"),
					"col_start": integerProperty("First erased column (inclusive)"),
					"col_end":   integerProperty("Column after the last erased column (exclusive)"),
				},
				"required": []string{"path", "row_start", "row_end", "col_start", "col_end"},
			},
		},
		{
			Name:        "hole_find",
			Description: "Trace the boundary of the first hole in row-major order with Moore-Neighbor tracing and report its covering rectangle and interior pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"include_points": map[string]interface{}{
						"type":        "boolean",
						"description": "Include boundary and hole pixel coordinates (default: false)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "hole_fill",
			Description: "Fill the hole and report how closely the result matches the samples as loaded. Strategies: weighted (inverse-distance over the boundary), average (boundary mean), gradient (corner blend), spiral (ring-by-ring neighbour averaging). Gradient and spiral fail when a corner of the covering rectangle is itself a hole pixel.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"strategy": map[string]interface{}{
						"type":        "string",
						"description": "Fill strategy (default: weighted)",
						"enum":        []string{"weighted", "average", "gradient", "spiral"},
						"default":     "weighted",
					},
					"z":   numberProperty("Distance exponent for the weighted strategy; overrides the image default"),
					"eps": numberProperty("Epsilon for the weighted strategy; overrides the image default"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "hole_overlay",
			Description: "Render the grid as a PNG with the hole and its boundary highlighted. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":           pathProperty,
					"boundary_color": stringProperty("Boundary color as #rrggbb (default: #00ff00)"),
					"hole_color":     stringProperty("Hole color as #rrggbb (default: #ff0000)"),
					"cover_color":    stringProperty("Covering rectangle color as #rrggbb (default: #0080ff)"),
					"opacity":        numberProperty("Highlight opacity over the gray image, 0-1 (default: 1)"),
					"scale":          integerProperty("Pixel enlargement factor (default: 1)"),
					"show_cover": map[string]interface{}{
						"type":        "boolean",
						"description": "Outline the covering rectangle (default: false)",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "hole_preview",
			Description: "Crop the grid around the hole's covering rectangle and enlarge it with nearest-neighbour sampling. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty,
					"margin": integerProperty("Pixels of context around the rectangle (default: 2)"),
					"scale":  integerProperty("Pixel enlargement factor (default: 8)"),
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
