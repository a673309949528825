// fiscald is the extraction daemon: it serves BatchService over gRPC and,
// when WATCH_DIR is set, turns files dropped into that directory into
// batches of their own.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/fiscaldata/nf-extractor/gen/proto/fiscal/v1"
	"github.com/fiscaldata/nf-extractor/internal/async"
	"github.com/fiscaldata/nf-extractor/internal/common"
	"github.com/fiscaldata/nf-extractor/internal/export"
	"github.com/fiscaldata/nf-extractor/internal/ingest"
	"github.com/fiscaldata/nf-extractor/internal/pipeline"
	"github.com/fiscaldata/nf-extractor/internal/repository"
	"github.com/fiscaldata/nf-extractor/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}
	if cfg.Database.DSN == "" {
		logger.Error("missing DB_URL environment variable")
		os.Exit(2)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close(logger)

	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}
	if err := db.Ping(ctx, 5*time.Second); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	pipe := pipeline.FromConfig(cfg, logger)
	runner := async.NewRunner(pipe, logger, async.WithWorkers(cfg.Batch.Workers))
	collector := ingest.NewCollector(logger)
	batches := repository.NewBatchRepository(db.Client, logger)
	records := repository.NewRecordRepository(db.Client, logger)
	reporter := export.NewReporter(cfg.Export.OutputDir, logger)

	svc := server.NewBatchService(collector, runner, batches, records, reporter, logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	v1.RegisterBatchServiceServer(grpcServer, svc)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	if cfg.Ingest.WatchDir != "" {
		events, _, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
			Roots:    []string{cfg.Ingest.WatchDir},
			Debounce: cfg.Ingest.Debounce,
			Logger:   logger,
		})
		if err != nil {
			logger.Error("failed to start inbox watcher", "dir", cfg.Ingest.WatchDir, "error", err)
			os.Exit(1)
		}
		source := fmt.Sprintf("inbox:%s", cfg.Ingest.WatchDir)
		go runInbox(ctx, svc, collector, events, source, logger)
		logger.Info("inbox watcher started", "dir", cfg.Ingest.WatchDir)
	}

	logger.Info("fiscald listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
}

// runInbox turns watched-directory drops into batches. Paths landing within
// one debounce window are submitted together.
func runInbox(ctx context.Context, svc *server.BatchService, collector *ingest.Collector, events <-chan string, source string, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, open := <-events:
			if !open {
				return
			}
			paths := []string{p}
		drain:
			for {
				select {
				case q, open := <-events:
					if !open {
						break drain
					}
					paths = append(paths, q)
				default:
					break drain
				}
			}
			items := collector.Collect(paths)
			if len(items) == 0 {
				continue
			}
			if _, err := svc.SubmitItems(ctx, source, items); err != nil {
				logger.Error("failed to submit inbox batch", "error", err)
			}
		}
	}
}
