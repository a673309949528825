// nf-extract runs a single PDF through the extraction pipeline and prints
// the resulting document as indented JSON. Logs go to stderr so stdout stays
// parseable.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "nf-extract <file.pdf>")
		os.Exit(2)
	}
	path := os.Args[1]
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error("failed to read input", "path", path, "error", err)
		os.Exit(1)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pipe := pipeline.FromConfig(cfg, logger)
	res := pipe.Process(ctx, filepath.Base(path), data, nil)

	out, err := json.MarshalIndent(res.Document, "", "  ")
	if err != nil {
		logger.Error("failed to encode document", "error", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if !res.Success() {
		os.Exit(1)
	}
}
