package semantic

import (
	"context"
	"log"
	"sync"

	"github.com/campushq/unidesk/internal/adapter/embedding"
)

// Registry owns the process-wide embedding indices. Each named collection is
// initialized at most once per process, guarded by a sync.Once, loading from
// the disk cache when present and building through the oracle otherwise.
type Registry struct {
	cacheDir string
	embedder embedding.Embedder

	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	once  sync.Once
	index *Index
	err   error
}

// NewRegistry creates an index registry backed by the given embedder.
func NewRegistry(cacheDir string, embedder embedding.Embedder) *Registry {
	return &Registry{
		cacheDir: cacheDir,
		embedder: embedder,
		entries:  make(map[string]*registryEntry),
	}
}

// Collection returns the index for a named collection, initializing it on
// first use with the items supplied by the loader.
func (r *Registry) Collection(ctx context.Context, name string, loader func() []Item) (*Index, error) {
	r.mu.Lock()
	entry, ok := r.entries[name]
	if !ok {
		entry = &registryEntry{}
		r.entries[name] = entry
	}
	r.mu.Unlock()

	entry.once.Do(func() {
		ix := NewIndex(name, r.cacheDir, r.embedder)
		loaded, err := ix.Load()
		if err != nil {
			log.Printf("WARN: embedding cache for %s unusable, rebuilding: %v", name, err)
		}
		if !loaded {
			if err := ix.Build(ctx, loader()); err != nil {
				entry.err = err
				return
			}
		}
		entry.index = ix
	})

	if entry.err != nil {
		// A failed build is not cached; the next caller retries.
		r.mu.Lock()
		if r.entries[name] == entry {
			delete(r.entries, name)
		}
		r.mu.Unlock()
		return nil, entry.err
	}
	return entry.index, nil
}
