// Command matchrun scores every candidate against one job from the shell and
// prints the run report as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hiring-intel/internal/app"
	"hiring-intel/internal/config"
	"hiring-intel/internal/delivery/http/dto"
	"hiring-intel/internal/pkg/logger"
	"hiring-intel/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	jobFlag := flag.String("job", "", "job id to run")
	modeFlag := flag.String("mode", "", "append or replace (default from config)")
	concurrency := flag.Int("concurrency", 0, "candidates scored in parallel (default from config)")
	flag.Parse()

	jobID, err := uuid.Parse(*jobFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -job %q: %v\n", *jobFlag, err)
		return 2
	}
	mode, err := usecase.ParseRunMode(*modeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	zl, err := logger.New(cfg.Log)
	if err != nil {
		log.Printf("failed to build logger: %v", err)
		return 1
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c, err := app.NewContainer(cfg, zl)
	if err != nil {
		zl.Error("failed to build container", zap.Error(err))
		return 1
	}
	defer func() {
		if err := c.Close(); err != nil {
			zl.Warn("cleanup error", zap.Error(err))
		}
	}()

	report, err := c.Runner.Run(ctx, jobID, usecase.RunOptions{Mode: mode, Concurrency: *concurrency})
	if err != nil && !report.Cancelled {
		if errors.Is(err, usecase.ErrJobNotFound) {
			zl.Error("job not found", zap.String("job_id", jobID.String()))
		} else {
			zl.Error("match run failed", zap.Error(err))
		}
		return 1
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(dto.NewMatchRunResponse(report)); encErr != nil {
		zl.Error("write report", zap.Error(encErr))
		return 1
	}

	if err != nil || len(report.Failures) > 0 {
		return 1
	}
	return 0
}
