// Package seeder loads the demo recruiter, candidates, skills and job used
// by the -seed flag and the integration tests. Every seeder is idempotent.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hiring-intel/internal/database"
	"hiring-intel/internal/pkg/logger"

	"go.uber.org/zap"
)

var errNilDB = errors.New("nil db")

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}

// Runner applies Seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Logger  *zap.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errNilDB
	}
	log := logger.OrNop(r.Logger).Named("seeder")

	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		start := time.Now()
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		log.Info("seeded", zap.String("seeder", s.Name()), zap.Duration("took", time.Since(start)))
	}
	return nil
}
