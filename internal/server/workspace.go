package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ironsheep/hole-filling-mcp/internal/holefill"
	"github.com/ironsheep/hole-filling-mcp/internal/imaging"
)

// ErrNotLoaded is returned for tool calls on an image that was never loaded.
var ErrNotLoaded = errors.New("image not loaded; call image_load first")

// entry is one loaded image. mu serializes the hole pipeline on its grid.
type entry struct {
	mu      sync.Mutex
	info    *imaging.ImageInfo
	session *holefill.Session

	// lastFill is the most recently filled hole, kept for previews after the
	// session has dropped it.
	lastFill *holefill.Hole
}

// Workspace keeps one hole-filling session per loaded image path.
//
// Workspace is safe for concurrent use. Calls on different images run in
// parallel; calls on the same image are serialized.
type Workspace struct {
	mu      sync.RWMutex
	cache   *imaging.ImageCache
	weight  holefill.WeightParams
	entries map[string]*entry
}

// NewWorkspace returns an empty workspace decoding through cache. Sessions
// start with weight as their default weighting.
func NewWorkspace(cache *imaging.ImageCache, weight holefill.WeightParams) *Workspace {
	return &Workspace{
		cache:   cache,
		weight:  weight,
		entries: make(map[string]*entry),
	}
}

// Load starts a fresh session for the image at path, replacing any previous
// session. A decoded image already in the cache is reused; use Reload to read
// the file again. opts apply after the workspace defaults.
func (w *Workspace) Load(path string, opts ...holefill.SessionOption) (*imaging.ImageInfo, error) {
	g, info, err := imaging.LoadGrid(w.cache, path)
	if err != nil {
		return nil, err
	}

	e := &entry{
		info:    info,
		session: holefill.NewSession(g, append([]holefill.SessionOption{holefill.WithWeightParams(w.weight)}, opts...)...),
	}

	w.mu.Lock()
	w.entries[path] = e
	w.mu.Unlock()
	return info, nil
}

// Reload is Load after dropping the cached decode of path.
func (w *Workspace) Reload(path string, opts ...holefill.SessionOption) (*imaging.ImageInfo, error) {
	w.cache.Evict(path)
	return w.Load(path, opts...)
}

// With runs fn on the entry for path while holding the entry's lock.
func (w *Workspace) With(path string, fn func(*entry) error) error {
	w.mu.RLock()
	e, ok := w.entries[path]
	w.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNotLoaded)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e)
}

// Reset discards all changes to the image at path by restarting its session
// from the samples it was loaded with.
func (w *Workspace) Reset(path string) error {
	w.mu.RLock()
	e, ok := w.entries[path]
	w.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrNotLoaded)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	weight := e.session.Weight().Params()
	e.session = holefill.NewSession(e.session.Reference().Clone(), holefill.WithWeightParams(weight))
	e.lastFill = nil
	return nil
}

// Remove forgets the image at path.
func (w *Workspace) Remove(path string) {
	w.mu.Lock()
	delete(w.entries, path)
	w.mu.Unlock()
	w.cache.Evict(path)
}

// Len returns the number of loaded images.
func (w *Workspace) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entries)
}
