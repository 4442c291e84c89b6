package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hiring-intel/internal/database"
	"hiring-intel/internal/domain/job"
	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobCreate struct {
	RecruiterID  uuid.UUID
	Title        string
	Description  *string
	Weights      scoring.WeightVector
	MinThreshold float64
}

//go:generate mockgen -source=job_repository.go -destination=mocks/job_repository.mock.go -package=mocks
type JobRepository interface {
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error)
	Create(ctx context.Context, in JobCreate) (job.Job, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

var jobColumnNames = []string{
	"id", "recruiter_id", "title", "description",
	"backend_weight", "consistency_weight", "collaboration_weight", "recency_weight", "impact_weight",
	"min_threshold", "created_at",
}

var (
	jobColumns  = strings.Join(jobColumnNames, ", ")
	jobColumnsJ = "j." + strings.Join(jobColumnNames, ", j.")
)

func jobScanTargets(j *job.Job) []any {
	return []any{
		&j.ID, &j.RecruiterID, &j.Title, &j.Description,
		&j.Weights.Backend, &j.Weights.Consistency, &j.Weights.Collaboration, &j.Weights.Recency, &j.Weights.Impact,
		&j.MinThreshold, &j.CreatedAt,
	}
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(jobScanTargets(&j)...)
	return j, err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

// ListByRecruiter fills MatchCount with the number of stored match results
// per job.
func (r *PostgresJobRepository) ListByRecruiter(ctx context.Context, recruiterID uuid.UUID) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumnsJ+`, COUNT(mr.id)
		 FROM jobs j
		 LEFT JOIN match_results mr ON mr.job_id = j.id
		 WHERE j.recruiter_id = $1
		 GROUP BY j.id
		 ORDER BY j.created_at DESC`,
		recruiterID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(append(jobScanTargets(&j), &j.MatchCount)...); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Create(ctx context.Context, in JobCreate) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (
			id, recruiter_id, title, description,
			backend_weight, consistency_weight, collaboration_weight, recency_weight, impact_weight,
			min_threshold, created_at
		 ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING `+jobColumns,
		uuid.New(),
		in.RecruiterID,
		in.Title,
		in.Description,
		in.Weights.Backend,
		in.Weights.Consistency,
		in.Weights.Collaboration,
		in.Weights.Recency,
		in.Weights.Impact,
		in.MinThreshold,
		time.Now().UTC(),
	)
	return scanJob(row)
}
