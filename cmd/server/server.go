package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	gridv1alpha1 "github.com/KirkDiggler/tactics-grid/internal/api/grid/v1alpha1"
	"github.com/KirkDiggler/tactics-grid/internal/config"
	"github.com/KirkDiggler/tactics-grid/internal/engine"
	"github.com/KirkDiggler/tactics-grid/internal/errors"
	"github.com/KirkDiggler/tactics-grid/internal/handlers/grid/v1alpha1"
	"github.com/KirkDiggler/tactics-grid/internal/logger"
	"github.com/KirkDiggler/tactics-grid/internal/orchestrators/battlemap"
	"github.com/KirkDiggler/tactics-grid/internal/pkg/clock"
	"github.com/KirkDiggler/tactics-grid/internal/pkg/idgen"
	"github.com/KirkDiggler/tactics-grid/internal/redis"
	"github.com/KirkDiggler/tactics-grid/internal/repositories/maps"
)

var (
	configPath string
	grpcPort   int
	logLevel   string
	backend    string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the tactics grid gRPC server with the configured map storage.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (overrides config)")
	serverCmd.Flags().StringVar(&backend, "storage", "", "Map storage backend: memory or redis (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.Server.Port = grpcPort
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if backend != "" {
		cfg.Storage.Backend = backend
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.File)
	defer logger.Sync(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	repo, closeRepo, err := newMapRepository(cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	eng, err := engine.New(&engine.Config{Rules: &cfg.Rules})
	if err != nil {
		return errors.Wrap(err, "failed to create engine")
	}

	battleMapService, err := battlemap.NewOrchestrator(&battlemap.Config{
		Engine:      eng,
		Repository:  repo,
		IDGenerator: idgen.NewUUID("map"),
		Logger:      log,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create battle map orchestrator")
	}

	gridHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		BattleMapService: battleMapService,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create grid handler")
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	interceptorLogger := logger.InterceptorLogger(log)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	gridv1alpha1.RegisterGridServiceServer(srv, gridHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(gridv1alpha1.GridServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Info("gRPC server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("storage", cfg.Storage.Backend),
		)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newMapRepository builds the configured map storage and a function that releases it
func newMapRepository(cfg *config.Config, log *zap.Logger) (maps.Repository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client, err := redis.NewClient(cfg.Storage.RedisEndpoint, nil)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to create redis client")
		}

		repo, err := maps.NewRedis(&maps.RedisConfig{
			Client: client,
			Clock:  clock.New(),
			TTL:    cfg.Storage.MapTTL,
		})
		if err != nil {
			_ = client.Close()
			return nil, nil, errors.Wrap(err, "failed to create redis map repository")
		}

		log.Info("using redis map storage",
			zap.String("endpoint", cfg.Storage.RedisEndpoint),
			zap.Duration("map_ttl", cfg.Storage.MapTTL),
		)
		return repo, func() {
			if err := client.Close(); err != nil {
				log.Warn("failed to close redis client", zap.Error(err))
			}
		}, nil
	default:
		log.Info("using in-memory map storage")
		return maps.NewInMemory(clock.New()), func() {}, nil
	}
}
