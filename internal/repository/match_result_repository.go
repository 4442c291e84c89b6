package repository

import (
	"context"
	"time"

	"hiring-intel/internal/database"
	"hiring-intel/internal/domain/match"
	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
)

type MatchResultCreate struct {
	JobID       uuid.UUID
	CandidateID uuid.UUID
	FitScore    float64
	RiskLevel   scoring.RiskLevel
	GapSummary  string
}

// MatchResultRepository is the sink for scored matches. Create is a pure
// insert; Replace first removes earlier rows for the same job and candidate.
//
//go:generate mockgen -source=match_result_repository.go -destination=mocks/match_result_repository.mock.go -package=mocks
type MatchResultRepository interface {
	Create(ctx context.Context, in MatchResultCreate) (match.Result, error)
	Replace(ctx context.Context, in MatchResultCreate) (match.Result, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]match.Result, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

func (r *PostgresMatchResultRepository) Create(ctx context.Context, m MatchResultCreate) (match.Result, error) {
	return insertMatchResult(ctx, r.db, m)
}

func (r *PostgresMatchResultRepository) Replace(ctx context.Context, m MatchResultCreate) (match.Result, error) {
	var out match.Result
	err := database.WithTx(ctx, r.db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM match_results WHERE job_id = $1 AND candidate_id = $2`,
			m.JobID, m.CandidateID,
		); err != nil {
			return err
		}

		created, err := insertMatchResult(ctx, tx, m)
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	return out, err
}

func insertMatchResult(ctx context.Context, q database.Querier, m MatchResultCreate) (match.Result, error) {
	row := q.QueryRow(ctx,
		`INSERT INTO match_results (id, job_id, candidate_id, fit_score, risk_level, gap_summary, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 RETURNING id, job_id, candidate_id, fit_score, risk_level, gap_summary, created_at`,
		uuid.New(),
		m.JobID,
		m.CandidateID,
		m.FitScore,
		string(m.RiskLevel),
		m.GapSummary,
		time.Now().UTC(),
	)

	var (
		out  match.Result
		risk string
	)
	if err := row.Scan(&out.ID, &out.JobID, &out.CandidateID, &out.FitScore, &risk, &out.GapSummary, &out.CreatedAt); err != nil {
		return match.Result{}, err
	}
	out.RiskLevel = riskLevel(risk)
	return out, nil
}

func (r *PostgresMatchResultRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]match.Result, error) {
	rows, err := r.db.Query(ctx,
		`SELECT mr.id, mr.job_id, mr.candidate_id, mr.fit_score, mr.risk_level, mr.gap_summary, mr.created_at,
			u.name, u.email, cp.overall_score
		 FROM match_results mr
		 JOIN candidate_profiles cp ON cp.id = mr.candidate_id
		 JOIN users u ON u.id = cp.user_id
		 WHERE mr.job_id = $1
		 ORDER BY mr.fit_score DESC, mr.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]match.Result, 0)
	for rows.Next() {
		var (
			m    match.Result
			risk string
		)
		if err := rows.Scan(
			&m.ID, &m.JobID, &m.CandidateID, &m.FitScore, &risk, &m.GapSummary, &m.CreatedAt,
			&m.CandidateName, &m.CandidateEmail, &m.OverallScore,
		); err != nil {
			return nil, err
		}
		m.RiskLevel = riskLevel(risk)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func riskLevel(s string) scoring.RiskLevel {
	return scoring.RiskLevel(s)
}
