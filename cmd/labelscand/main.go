package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	labelscanv1 "labelscan/gen/proto/labelscan/v1"
	"labelscan/internal/analysis/docintel"
	"labelscan/internal/common"
	"labelscan/internal/events"
	"labelscan/internal/ingest"
	"labelscan/internal/jobs"
	"labelscan/internal/queue"
	"labelscan/internal/report"
	"labelscan/internal/repository"
	"labelscan/internal/server"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("opening store", "error", err)
		os.Exit(1)
	}
	defer store.Close(logger)

	if err := store.Migrate(ctx); err != nil {
		logger.Error("running migrations", "error", err)
		os.Exit(1)
	}
	if err := store.HealthCheck(ctx, logger); err != nil {
		logger.Error("store health check failed", "error", err)
		os.Exit(1)
	}

	// The publisher reads history through a plain repository; the repository
	// the rest of the system uses pushes committed events into the publisher.
	reader := repository.NewJobRepository(store.Client, logger)
	pub := events.NewPublisher(reader, logger)
	defer pub.Close()
	repo := repository.NewJobRepository(store.Client, logger, repository.WithEventSink(pub))

	svc, err := jobs.NewService(repo, cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("initializing job service", "error", err)
		os.Exit(1)
	}

	analyzer, err := docintel.NewClient(cfg.DocIntel, logger)
	if err != nil {
		logger.Error("initializing analyzer", "error", err)
		os.Exit(1)
	}

	worker := queue.NewWorker(repo, svc, analyzer, report.NewXLSXGenerator(logger), logger,
		queue.WithHeartbeatInterval(cfg.Queue.HeartbeatInterval),
		queue.WithMaxRetries(cfg.Queue.MaxRetries),
	)
	dispatcher := queue.NewDispatcher(repo, worker, logger,
		queue.WithMaxWorkers(cfg.Queue.MaxWorkers),
		queue.WithPollInterval(cfg.Queue.PollInterval),
	)
	monitor := queue.NewMonitor(repo, logger, cfg.Queue.PollInterval, cfg.Queue.StuckTimeout)
	sweeper := queue.NewSweeper(repo, svc, logger, cfg.Retention)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() { defer wg.Done(); dispatcher.Run(ctx) }()
	go func() { defer wg.Done(); monitor.Run(ctx) }()
	go func() { defer wg.Done(); sweeper.Run(ctx) }()

	if len(cfg.Ingest.WatchRoots) > 0 {
		watcher := ingest.NewWatcher(svc, dispatcher, logger, cfg.Ingest)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := watcher.Run(ctx); err != nil {
				logger.Error("ingest watcher stopped", "error", err)
			}
		}()
	}

	grpcServer := grpc.NewServer()
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)
	labelscanv1.RegisterJobsServiceServer(grpcServer,
		server.NewJobsService(repo, svc, pub, dispatcher, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("grpc serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
	wg.Wait()
	logger.Info("stopped")
}
