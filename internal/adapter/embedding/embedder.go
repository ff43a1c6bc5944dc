// Package embedding provides the text-embedding oracle client.
package embedding

import "context"

// Embedder turns a text string into a fixed-dimension dense vector.
// Implementations must be deterministic for identical input; the index
// cache relies on that.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
