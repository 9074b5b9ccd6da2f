package imaging

import (
	"fmt"
	"image"
	"os"
	"strings"
	"sync"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
)

// ImageCache provides thread-safe caching of decoded images to avoid redundant disk reads.
//
// The cache stores decoded image.Image objects keyed by their file path. Once an image
// is loaded, subsequent Load() calls for the same path return the cached copy without
// disk I/O.
//
// # Memory Management
//
// Cached images remain in memory until explicitly removed via Evict() or Clear().
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk if not cached.
//
// Supported formats are those of github.com/disintegration/imaging (PNG, JPEG,
// GIF, TIFF and BMP). EXIF orientation is applied while decoding so the grid
// matches the image as it is displayed.
//
// The image is cached using the exact path string provided. Different paths to the
// same file (e.g., relative vs absolute) will result in separate cache entries.
func (c *ImageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path.
//
// If the path is not in the cache, this method does nothing.
// After eviction, the next Load() call for this path will read from disk.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Path is the path the image was loaded from.
	Path string `json:"path"`

	// Width is the image width in pixels, which is the number of grid columns.
	Width int `json:"width"`

	// Height is the image height in pixels, which is the number of grid rows.
	Height int `json:"height"`

	// Format is the format implied by the file extension, e.g. "png" or
	// "jpeg", or "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache (if not already cached) and
// returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}
	return describe(path, img)
}

// LoadGrid decodes the image at path into a grid of normalized luminance
// samples in [0,1].
//
// Color images are reduced to luminance with bild's Grayscale weights. The
// returned grid holds no hole samples.
func LoadGrid(cache *ImageCache, path string) (*holefill.Grid, *ImageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, nil, err
	}

	gray := effect.Grayscale(img)
	bounds := gray.Bounds()
	if bounds.Empty() {
		return nil, nil, fmt.Errorf("%s: %w", path, holefill.ErrEmptyGrid)
	}

	rows := make([][]float64, bounds.Dy())
	for y := range rows {
		rows[y] = make([]float64, bounds.Dx())
		for x := range rows[y] {
			// R, G and B carry the same luminance.
			rows[y][x] = float64(gray.Pix[gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)]) / 255
		}
	}

	g, err := holefill.NewGrid(rows)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build grid: %w", err)
	}

	info, err := describe(path, img)
	if err != nil {
		return nil, nil, err
	}
	return g, info, nil
}

func describe(path string, img image.Image) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	if f, err := imaging.FormatFromFilename(path); err == nil {
		format = strings.ToLower(f.String())
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Path:          path,
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
