// Package semantic provides the embedding index used for similarity search
// over catalog collections. Vectors are computed once per named collection
// through the embedding oracle and cached on disk; queries are answered with
// cosine similarity against the cached table.
package semantic

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/campushq/unidesk/internal/adapter/embedding"
)

// Item is one entry in a collection: an opaque id plus the text that gets
// embedded.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Result is one similarity-search hit.
type Result struct {
	Item  Item
	Score float64
}

// Index is the vector table for one named collection.
type Index struct {
	name     string
	cacheDir string
	embedder embedding.Embedder

	items   []Item
	vectors [][]float64
}

// NewIndex creates an empty index for a named collection.
func NewIndex(name, cacheDir string, embedder embedding.Embedder) *Index {
	return &Index{name: name, cacheDir: cacheDir, embedder: embedder}
}

type cacheFile struct {
	Items   []Item      `json:"items"`
	Vectors [][]float64 `json:"vectors"`
}

func (ix *Index) cachePath() string {
	return filepath.Join(ix.cacheDir, ix.name+"_embeddings.json")
}

// Load populates the index from the cache artifact. Returns false without
// error when no cache exists; the caller must Build.
func (ix *Index) Load() (bool, error) {
	data, err := os.ReadFile(ix.cachePath())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read embedding cache %s: %w", ix.name, err)
	}

	var cached cacheFile
	if err := json.Unmarshal(data, &cached); err != nil {
		return false, fmt.Errorf("failed to parse embedding cache %s: %w", ix.name, err)
	}
	if len(cached.Items) != len(cached.Vectors) {
		return false, fmt.Errorf("embedding cache %s is inconsistent", ix.name)
	}
	ix.items = cached.Items
	ix.vectors = cached.Vectors
	return true, nil
}

// Build computes one vector per item through the embedding oracle and writes
// the cache artifact. Concurrent rebuilds race benignly: content is
// deterministic from static input, so the last write wins.
func (ix *Index) Build(ctx context.Context, items []Item) error {
	vectors := make([][]float64, 0, len(items))
	for _, item := range items {
		vec, err := ix.embedder.Embed(ctx, item.Text)
		if err != nil {
			return fmt.Errorf("failed to embed %s/%s: %w", ix.name, item.ID, err)
		}
		vectors = append(vectors, vec)
	}
	ix.items = items
	ix.vectors = vectors

	data, err := json.Marshal(cacheFile{Items: items, Vectors: vectors})
	if err != nil {
		return fmt.Errorf("failed to marshal embedding cache %s: %w", ix.name, err)
	}
	if err := os.WriteFile(ix.cachePath(), data, 0o644); err != nil {
		return fmt.Errorf("failed to write embedding cache %s: %w", ix.name, err)
	}
	return nil
}

// Search embeds the query and returns up to topK items with cosine
// similarity >= threshold, sorted by descending score. Ties keep insertion
// order. An empty result is not an error.
func (ix *Index) Search(ctx context.Context, query string, topK int, threshold float64) ([]Result, error) {
	if len(ix.items) == 0 {
		return nil, nil
	}

	queryVec, err := ix.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	var results []Result
	for i, vec := range ix.vectors {
		score := cosineSimilarity(queryVec, vec)
		if score >= threshold {
			results = append(results, Result{Item: ix.items[i], Score: score})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})
	if topK > 0 && len(results) > topK {
		results = results[:topK]
	}
	return results, nil
}

// cosineSimilarity returns the cosine of the angle between a and b, in
// [-1, 1]. Mismatched or zero-norm vectors score zero.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
