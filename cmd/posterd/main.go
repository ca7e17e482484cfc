package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	postersv1 "github.com/posters-science/poster-tracker/gen/posters/v1"
	"github.com/posters-science/poster-tracker/internal/common"
	"github.com/posters-science/poster-tracker/internal/export"
	"github.com/posters-science/poster-tracker/internal/extraction"
	"github.com/posters-science/poster-tracker/internal/publish"
	repo "github.com/posters-science/poster-tracker/internal/repository"
	svc "github.com/posters-science/poster-tracker/internal/server"
	"github.com/posters-science/poster-tracker/internal/zenodo"
)

func main() {
	// Local development reads a .env file; in deployment the variables come
	// from the environment and the file is simply absent.
	_ = godotenv.Load()

	// zap for process lifecycle, slog for the component libraries.
	zlog, _ := zap.NewProduction()
	defer func() { _ = zlog.Sync() }()
	lifecycle := zlog.Sugar()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		lifecycle.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		lifecycle.Fatalf("opening database: %v", err)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		lifecycle.Fatalf("database health check failed: %v", err)
	}

	jobsRepo := repo.NewExtractionJobRepository(entc, logger)
	postersRepo := repo.NewPosterRepository(entc, logger)
	tokensRepo := repo.NewZenodoTokenRepository(entc, logger)

	// A crash mid-extraction leaves jobs stranded in processing; fail them
	// now so pollers see a terminal state instead of waiting forever.
	if n, err := jobsRepo.ResetStuckProcessing(ctx, cfg.Extraction.Timeout); err != nil {
		lifecycle.Fatalf("resetting stuck extraction jobs: %v", err)
	} else if n > 0 {
		logger.Warn("reset stuck extraction jobs", "count", n)
	}

	extractionClient := extraction.NewClient(cfg.Extraction.BaseURL, cfg.Extraction.Timeout, logger)
	worker := extraction.NewWorker(jobsRepo, postersRepo, extractionClient, logger)
	queue := extraction.NewQueue(worker, logger,
		extraction.WithWorkers(cfg.Worker.Workers),
		extraction.WithQueueSize(cfg.Worker.QueueSize),
		extraction.WithProcessTimeout(cfg.Extraction.Timeout+time.Minute),
	)

	zenodoClient := zenodo.NewClient(cfg.Zenodo.APIEndpoint, cfg.Zenodo.CallTimeout, logger)
	oauth := zenodo.NewOAuth(cfg.Zenodo.Endpoint, cfg.Zenodo.ClientID, cfg.Zenodo.ClientSecret, cfg.Zenodo.RedirectURI, logger)
	tokenSvc := zenodo.NewTokenService(tokensRepo, zenodoClient, oauth, logger)
	orchestrator := publish.NewOrchestrator(zenodoClient, postersRepo, logger)
	exportSvc := export.NewService(postersRepo, logger)

	grpcServer := grpc.NewServer()
	posterService := svc.NewPosterService(jobsRepo, postersRepo, queue, exportSvc, tokenSvc, oauth, orchestrator, cfg, logger)
	postersv1.RegisterPostersServiceServer(grpcServer, posterService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		lifecycle.Fatalf("listen on %s: %v", cfg.Server.GRPCAddr, err)
	}

	callback := svc.NewOAuthCallbackHandler(oauth, tokensRepo, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           callback.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lifecycle.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		lifecycle.Infof("HTTP serving on %s", cfg.Server.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lifecycle.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		queue.Shutdown(shutdownCtx)
		_ = httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return nil
	})

	if err := g.Wait(); err != nil {
		lifecycle.Fatalf("server exited: %v", err)
	}
}
