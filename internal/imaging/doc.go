// Package imaging connects hole-filling grids to image files and renders
// visual diagnostics for the MCP server.
//
// It decodes images into normalized grayscale grids, encodes grids back to
// disk, and produces PNG overlays and previews of located holes together with
// numeric quality measures of a fill.
//
// # Coordinate System
//
// Grid coordinates are (row, col) with (0,0) at the top-left corner. Image
// coordinates map directly: X is the column and Y is the row.
//
// # Sample Conversion
//
// Loading converts every pixel to luminance and divides by 255, so samples lie
// in [0,1] and never equal the hole sentinel. Encoding multiplies by 255 and
// rounds. A hole sample still present at encode time is written as white.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions are
// stateless, but they read the grid they are given; callers must not mutate a
// grid while it is being rendered.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Coordinates or rectangles outside the grid
//   - Grids of different dimensions passed for comparison
//   - File I/O errors during loading and saving
//   - Unsupported output formats
package imaging
