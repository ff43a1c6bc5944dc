package llm

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

// NewClient creates a completion client based on the UNIDESK_MODE
// environment variable. If UNIDESK_MODE=MOCK, returns a MockClient;
// otherwise returns an HTTP client.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	if os.Getenv(EnvMode) == ModeMock {
		log.Println("UNIDESK_MODE=MOCK detected, using mock completion client")
		return NewMockClient()
	}
	return NewHTTPClient(baseURL, apiKey, timeout)
}
