package repository

import (
	"context"
	"database/sql"
	"errors"

	"hiring-intel/internal/database"
	"hiring-intel/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCandidateNotFound = errors.New("candidate not found")

//go:generate mockgen -source=candidate_repository.go -destination=mocks/candidate_repository.mock.go -package=mocks
type CandidateRepository interface {
	List(ctx context.Context) ([]candidate.Profile, error)
	Top(ctx context.Context, limit int) ([]candidate.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	ListSkills(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error)
	ListSkillsWithHistory(ctx context.Context, candidateID uuid.UUID) ([]candidate.SkillWithHistory, error)
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

const profileColumns = `cp.id, cp.user_id, cp.github_username, cp.overall_score, cp.risk_score,
		cp.data_completeness, cp.last_active_date, u.name, u.email`

func scanProfile(row database.Row) (candidate.Profile, error) {
	var p candidate.Profile
	var risk string
	err := row.Scan(
		&p.ID, &p.UserID, &p.GithubUsername, &p.OverallScore, &risk,
		&p.DataCompleteness, &p.LastActiveDate, &p.Name, &p.Email,
	)
	if err != nil {
		return candidate.Profile{}, err
	}
	p.RiskScore = riskLevel(risk)
	return p, nil
}

func (r *PostgresCandidateRepository) List(ctx context.Context) ([]candidate.Profile, error) {
	return r.listProfiles(ctx, `ORDER BY cp.overall_score DESC, cp.id ASC`)
}

// Top returns the limit highest overall scores.
func (r *PostgresCandidateRepository) Top(ctx context.Context, limit int) ([]candidate.Profile, error) {
	if limit <= 0 {
		return []candidate.Profile{}, nil
	}
	return r.listProfiles(ctx, `ORDER BY cp.overall_score DESC, cp.id ASC LIMIT $1`, limit)
}

func (r *PostgresCandidateRepository) listProfiles(ctx context.Context, tail string, args ...any) ([]candidate.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+profileColumns+`
		 FROM candidate_profiles cp
		 JOIN users u ON u.id = cp.user_id
		 `+tail,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+profileColumns+`
		 FROM candidate_profiles cp
		 JOIN users u ON u.id = cp.user_id
		 WHERE cp.user_id = $1`,
		userID,
	)

	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrCandidateNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) ListSkills(ctx context.Context, candidateID uuid.UUID) ([]candidate.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.candidate_id, s.name, s.score, s.complexity_score, s.consistency_score,
			s.collaboration_score, s.recency_score, s.impact_score, s.certification_bonus
		 FROM skills s
		 WHERE s.candidate_id = $1
		 ORDER BY s.score DESC, s.id ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.Skill, 0)
	for rows.Next() {
		var s candidate.Skill
		if err := rows.Scan(
			&s.ID, &s.CandidateID, &s.Name, &s.Score, &s.ComplexityScore, &s.ConsistencyScore,
			&s.CollaborationScore, &s.RecencyScore, &s.ImpactScore, &s.CertificationBonus,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCandidateRepository) ListSkillsWithHistory(ctx context.Context, candidateID uuid.UUID) ([]candidate.SkillWithHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.candidate_id, s.name, s.score, s.complexity_score, s.consistency_score,
			s.collaboration_score, s.recency_score, s.impact_score, s.certification_bonus,
			sh.month, sh.score
		 FROM skills s
		 LEFT JOIN skill_history sh ON sh.skill_id = s.id
		 WHERE s.candidate_id = $1
		 ORDER BY s.score DESC, s.id ASC, sh.month ASC`,
		candidateID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]candidate.SkillWithHistory, 0)
	for rows.Next() {
		var (
			s     candidate.Skill
			month *string
			score *float64
		)
		if err := rows.Scan(
			&s.ID, &s.CandidateID, &s.Name, &s.Score, &s.ComplexityScore, &s.ConsistencyScore,
			&s.CollaborationScore, &s.RecencyScore, &s.ImpactScore, &s.CertificationBonus,
			&month, &score,
		); err != nil {
			return nil, err
		}

		if n := len(out); n == 0 || out[n-1].ID != s.ID {
			out = append(out, candidate.SkillWithHistory{Skill: s, History: make([]candidate.HistoryPoint, 0)})
		}
		if month != nil && score != nil {
			last := &out[len(out)-1]
			last.History = append(last.History, candidate.HistoryPoint{Month: *month, Score: *score})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
