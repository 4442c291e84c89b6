package seeder

import (
	"context"
	"fmt"

	"hiring-intel/internal/database"

	"github.com/google/uuid"
)

var (
	DemoRecruiterID = uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000001")

	demoCandidates = []struct {
		UserID       uuid.UUID
		ProfileID    uuid.UUID
		Name         string
		Email        string
		Github       string
		Overall      float64
		Risk         string
		Completeness float64
	}{
		{
			UserID:    uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000101"),
			ProfileID: uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000201"),
			Name:      "Ayu Lestari", Email: "ayu@example.com", Github: "ayu-dev",
			Overall: 82, Risk: "Low", Completeness: 92,
		},
		{
			UserID:    uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000102"),
			ProfileID: uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000202"),
			Name:      "Budi Santoso", Email: "budi@example.com", Github: "budis",
			Overall: 63, Risk: "Medium", Completeness: 71,
		},
		{
			UserID:    uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000103"),
			ProfileID: uuid.MustParse("0b5c1f3e-6a1d-4c8e-9f59-1d7e2a000203"),
			Name:      "Citra Dewi", Email: "citra@example.com",
			Overall: 0, Risk: "High", Completeness: 20,
		},
	}
)

type UsersSeeder struct{}

func (UsersSeeder) Name() string { return "users" }

func (UsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "role", "created_at"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "candidate_profiles", "id", "user_id", "github_username", "overall_score", "risk_score", "data_completeness"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		if _, err := tx.Exec(ctx,
			`INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, 'recruiter') ON CONFLICT (id) DO NOTHING`,
			DemoRecruiterID, "Rina Recruiter", "rina@example.com",
		); err != nil {
			return fmt.Errorf("recruiter: %w", err)
		}

		for _, c := range demoCandidates {
			if _, err := tx.Exec(ctx,
				`INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, 'candidate') ON CONFLICT (id) DO NOTHING`,
				c.UserID, c.Name, c.Email,
			); err != nil {
				return fmt.Errorf("user %s: %w", c.Email, err)
			}

			var github *string
			if c.Github != "" {
				github = &c.Github
			}
			if _, err := tx.Exec(ctx,
				`INSERT INTO candidate_profiles (id, user_id, github_username, overall_score, risk_score, data_completeness, last_active_date)
				 VALUES ($1, $2, $3, $4, $5, $6, CURRENT_DATE)
				 ON CONFLICT (user_id) DO NOTHING`,
				c.ProfileID, c.UserID, github, c.Overall, c.Risk, c.Completeness,
			); err != nil {
				return fmt.Errorf("profile %s: %w", c.Email, err)
			}
		}
		return nil
	})
}
