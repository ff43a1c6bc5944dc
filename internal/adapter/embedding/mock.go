package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"unicode"
)

const mockDimension = 4096

// MockEmbedder is a deterministic, offline implementation of Embedder used
// in mock mode and in tests. It hashes word tokens into a fixed-size
// bag-of-words vector, so texts sharing vocabulary get a high cosine
// similarity and unrelated texts score near zero.
type MockEmbedder struct{}

// NewMockEmbedder creates a new mock embedder.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// Ensure MockEmbedder implements Embedder.
var _ Embedder = (*MockEmbedder)(nil)

// Embed returns a token-count vector for the text.
func (m *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	vec := make([]float64, mockDimension)
	for _, token := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%mockDimension]++
	}
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
