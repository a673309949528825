// nf-batch processes a directory, archive, or single PDF of fiscal documents
// in one shot and writes the XLSX report. No daemon or database involved.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/fiscaldata/nf-extractor/constants"
	"github.com/fiscaldata/nf-extractor/internal/batch"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/export"
	"github.com/fiscaldata/nf-extractor/internal/fiscal"
	"github.com/fiscaldata/nf-extractor/internal/ingest"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
)

func main() {
	var (
		in      = flag.String("in", "", "PDF file, ZIP archive or directory to process (required)")
		out     = flag.String("out", "", "report output directory (defaults to REPORT_DIR)")
		workers = flag.Int("workers", 0, "worker pool width (defaults to BATCH_WORKERS)")
		dpi     = flag.Int("dpi", 0, "OCR rasterization DPI (defaults to OCR_DPI)")
		useAI   = flag.Bool("ai", false, "enable the AI fallback backend")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "Error: -in is required")
		flag.Usage()
		os.Exit(2)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *out != "" {
		cfg.Export.OutputDir = *out
	}
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	if *dpi > 0 {
		cfg.OCR.DPI = *dpi
	}
	if *useAI {
		cfg.AI.Enabled = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	collector := ingest.NewCollector(logger)
	items, err := collector.CollectPaths([]string{*in})
	if err != nil {
		logger.Error("failed to collect input", "path", *in, "error", err)
		os.Exit(1)
	}
	if len(items) == 0 {
		logger.Error("no processable documents found", "path", *in)
		os.Exit(1)
	}

	proc := batch.NewProcessor(pipeline.FromConfig(cfg, logger), logger,
		batch.WithWorkers(cfg.Batch.Workers),
		batch.WithProgress(func(u fiscal.ProgressUpdate) {
			if u.Status != constants.StatusProcessing {
				logger.Info("progress",
					"file", u.Filename,
					"status", string(u.Status),
					"done", u.Current,
					"total", u.Total,
				)
			}
		}),
	)

	// Interrupt cancels the batch; in-flight documents finish their step
	// and the report covers whatever was folded.
	go func() {
		<-ctx.Done()
		proc.Cancel()
	}()

	res := proc.Run(ctx, items)

	reporter := export.NewReporter(cfg.Export.OutputDir, logger)
	path, err := reporter.WriteReport(export.FromBatch(res))
	if err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	elapsed := res.FinishedAt.Sub(res.StartedAt).Round(time.Millisecond)
	fmt.Printf("Batch complete in %s\n", elapsed)
	fmt.Printf("- Files: %d\n", res.TotalFiles)
	fmt.Printf("- Succeeded: %d\n", res.Succeeded)
	fmt.Printf("- Failed: %d\n", res.Failed)
	fmt.Printf("- Cancelled: %d\n", res.Cancelled)
	fmt.Printf("- Report: %s\n", path)

	if res.Succeeded == 0 {
		os.Exit(1)
	}
}
