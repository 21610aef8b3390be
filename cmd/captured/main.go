package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	capturespb "github.com/capturedesk/capturedesk/gen/proto/captures/v1"
	"github.com/capturedesk/capturedesk/internal/common"
	"github.com/capturedesk/capturedesk/internal/export"
	"github.com/capturedesk/capturedesk/internal/ingest"
	"github.com/capturedesk/capturedesk/internal/pipeline"
	"github.com/capturedesk/capturedesk/internal/providers"
	"github.com/capturedesk/capturedesk/internal/queue"
	"github.com/capturedesk/capturedesk/internal/reasoning/openai"
	"github.com/capturedesk/capturedesk/internal/repository"
	"github.com/capturedesk/capturedesk/internal/server"
	"github.com/capturedesk/capturedesk/internal/session"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig()
	if err != nil {
		logger.Error("config load failed", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("config invalid", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if err := repository.HealthCheck(ctx, pool, logger); err != nil {
		logger.Error("database health failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	items := repository.NewItemRepository(entc, logger)
	captures := repository.NewCaptureRepository(entc, logger)
	sessions := repository.NewSessionRepository(entc, logger)

	reason := openai.NewClient(openai.Config{
		APIKey:      cfg.Reasoning.APIKey,
		BaseURL:     cfg.Reasoning.BaseURL,
		Model:       cfg.Reasoning.Model,
		Temperature: cfg.Reasoning.Temperature,
		Timeout:     cfg.Reasoning.Timeout,
	}, logger)

	// place/search/weather/activity/device/media providers are host
	// integrations wired by deployment; the daemon ships with the HTTP
	// link-metadata adapter and local cover storage
	bundle := providers.Bundle{
		Link:   providers.NewHTMLLinkMetadata(cfg.Providers.LinkTimeout, logger),
		Covers: providers.NewLocalCoverStore(cfg.Pipeline.CoverImageDir, logger),
	}

	orch := pipeline.NewOrchestrator(bundle, cfg.Providers, cfg.Pipeline.HomeRadiusMeters, logger)
	proc := pipeline.NewProcessor(items, captures, sessions, orch, reason, bundle, cfg.Pipeline, cfg.Reasoning, logger)
	if home, ok := pipeline.ParseLatLng(os.Getenv("HOME_COORD")); ok {
		proc.SetHome(&home)
	}

	agg := session.NewAggregator(sessions, items, reason, cfg.Pipeline, logger)
	proc.SetSessionHandoff(agg)

	mgr := queue.NewManager(captures, items, proc, cfg.Pipeline, logger)
	inbox := ingest.NewInbox(captures, logger)
	exporter := export.NewService(items, logger)

	// crash recovery before accepting new work
	if err := mgr.ResumeInterrupted(ctx); err != nil {
		logger.Warn("startup recovery failed", "error", err)
	}

	if len(cfg.Inbox.Roots) > 0 {
		startInboxWatcher(ctx, cfg.Inbox, inbox, mgr, logger)
	}
	go consolidateLoop(ctx, agg, logger)

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	svc := server.NewCaptureService(mgr, captures, items, inbox, cfg.Inbox, exporter, logger)
	capturespb.RegisterCaptureServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	proc.Wait()
	logger.Info("stopped")
}

// startInboxWatcher feeds dropped capture files through the inbox into
// the drain queue.
func startInboxWatcher(ctx context.Context, cfg common.InboxConfig, inbox *ingest.Inbox, mgr *queue.Manager, logger *slog.Logger) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       cfg.Roots,
		InitialScan: true,
		Debounce:    cfg.Debounce,
	}, logger)
	if err != nil {
		logger.Error("inbox watcher start failed", "error", err)
		return
	}
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case path, ok := <-evCh:
				if !ok {
					return
				}
				if _, err := inbox.IngestFile(ctx, path); err != nil {
					logger.Warn("inbox ingest failed", "path", path, "error", err)
					continue
				}
				if _, err := mgr.DrainPending(ctx); err != nil && ctx.Err() == nil {
					logger.Warn("inbox drain failed", "error", err)
				}
			case err, ok := <-errCh:
				if !ok {
					return
				}
				logger.Warn("inbox watcher error", "error", err)
			}
		}
	}()
}

// consolidateLoop periodically merges fragmented sessions.
func consolidateLoop(ctx context.Context, agg *session.Aggregator, logger *slog.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := agg.Consolidate(ctx); err != nil && ctx.Err() == nil {
				logger.Warn("session consolidation failed", "error", err)
			}
		}
	}
}
