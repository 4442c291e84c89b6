package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hiring-intel/internal/app"
	"hiring-intel/internal/config"
	"hiring-intel/internal/database/seeder"
	"hiring-intel/internal/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	seed := flag.Bool("seed", false, "seed demo data on startup")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bootstrap, cleanup, err := app.Bootstrap(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to bootstrap app", zap.Error(err))
	}
	defer func() {
		if err := cleanup(); err != nil {
			zl.Warn("cleanup error", zap.Error(err))
		}
	}()

	if *seed {
		if err := (seeder.Runner{Seeders: seeder.Defaults(), Logger: zl}).Run(ctx, bootstrap.Container.DB); err != nil {
			zl.Fatal("seed failed", zap.Error(err))
		}
		zl.Info("demo data seeded",
			zap.String("recruiter_id", seeder.DemoRecruiterID.String()),
			zap.String("job_id", seeder.DemoJobID.String()),
		)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		zl.Fatal("invalid HTTP port", zap.Error(err))
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			zl.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
			zl.Warn("shutdown error", zap.Error(err))
		}
	}
}
