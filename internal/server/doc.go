// Package server implements the MCP (Model Context Protocol) server for hole
// detection and inpainting on grayscale images.
//
// This package provides a JSON-RPC 2.0 server that exposes the holefill
// pipeline through the MCP protocol: load an image as a normalized grid, erase
// a rectangle, trace the hole boundary and fill it with one of four strategies.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Image lifecycle:
//   - image_load: Decode an image into a grid and start a session
//   - image_sample_pixels: Read samples at given points
//   - image_save: Encode the working grid to a file
//   - image_reset: Discard all changes since image_load
//   - image_close: Forget a loaded image
//
// Hole pipeline:
//   - hole_create: Erase a half-open rectangle to the hole sentinel
//   - hole_find: Trace the boundary and locate the hole
//   - hole_fill: Fill with weighted, average, gradient or spiral strategy
//   - hole_overlay: Render the hole and its boundary in color
//   - hole_preview: Enlarged crop around the hole
//
// # Sessions
//
// Every tool names its image by path. image_load creates a session holding the
// working grid and a reference copy of the loaded samples; hole_fill reports
// the fill error against that reference. Calls on one image are serialized;
// calls on different images may run in parallel.
//
// # Configuration
//
// LoadConfig reads HOLEFILL_MCP_LOG_LEVEL, HOLEFILL_WEIGHT_Z and
// HOLEFILL_WEIGHT_EPS from the environment.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32602 for invalid arguments, -32000 for tool execution failure
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
//	srv := server.NewWithConfig(server.LoadConfig())
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
