// Package ollama implements the inference backend against a local Ollama
// server. One configured model serves either strategy: a text model answers
// over decoded page text, a vision model (llava, bakllava, moondream) over
// rendered page images.
package ollama

import (
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// Config for the Ollama client.
type Config struct {
	BaseURL     string        // default http://localhost:11434
	Model       string        // text model, or a vision family for the image strategy
	Temperature float64       // sampling temperature
	NumCtx      int           // context window tokens
	Timeout     time.Duration // generate call budget
}

type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger

	mu       sync.Mutex
	resolved string // served vision variant picked by Available
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:11434"
	}
	if cfg.Model == "" {
		cfg.Model = "llama3:8b"
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = 0.1
	}
	if cfg.NumCtx <= 0 {
		cfg.NumCtx = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}
