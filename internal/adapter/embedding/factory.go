package embedding

import (
	"log"
	"os"
	"time"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "UNIDESK_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewEmbedder creates an embedder based on the UNIDESK_MODE environment
// variable. If UNIDESK_MODE=MOCK, returns a MockEmbedder; otherwise returns
// an OpenAI-compatible client.
func NewEmbedder(baseURL, apiKey, model string, timeout time.Duration) Embedder {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("UNIDESK_MODE=MOCK detected, using mock embedder")
		return NewMockEmbedder()
	}
	return NewOpenAIEmbedder(baseURL, apiKey, model, timeout)
}
