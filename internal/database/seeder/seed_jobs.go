package seeder

import (
	"context"

	"hiring-intel/internal/database"
	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
)

var DemoJobID = uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000301")

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "recruiter_id", "title", "description",
		"backend_weight", "consistency_weight", "collaboration_weight", "recency_weight", "impact_weight", "min_threshold"); err != nil {
		return err
	}

	w := scoring.DefaultWeights
	_, err := db.Exec(ctx,
		`INSERT INTO jobs (id, recruiter_id, title, description, backend_weight, consistency_weight, collaboration_weight, recency_weight, impact_weight, min_threshold)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (id) DO NOTHING`,
		DemoJobID, DemoRecruiterID, "Senior Backend Engineer", "Go services on Postgres and Redis.",
		w.Backend, w.Consistency, w.Collaboration, w.Recency, w.Impact, scoring.DefaultMinThreshold,
	)
	return err
}
