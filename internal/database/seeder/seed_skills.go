package seeder

import (
	"context"
	"fmt"

	"hiring-intel/internal/database"

	"github.com/google/uuid"
)

type demoSkill struct {
	Name                                                    string
	Score                                                   float64
	Complexity, Consistency, Collaboration, Recency, Impact float64
	History                                                 []float64
}

// Citra has no skills on purpose; match runs skip her.
var demoSkills = map[uuid.UUID][]demoSkill{
	demoCandidates[0].ProfileID: {
		{Name: "Go", Score: 86, Complexity: 88, Consistency: 84, Collaboration: 80, Recency: 90, Impact: 82, History: []float64{74, 79, 83, 86}},
		{Name: "PostgreSQL", Score: 78, Complexity: 76, Consistency: 80, Collaboration: 72, Recency: 85, Impact: 70, History: []float64{70, 74, 78}},
	},
	demoCandidates[1].ProfileID: {
		{Name: "TypeScript", Score: 66, Complexity: 64, Consistency: 58, Collaboration: 70, Recency: 48, Impact: 62, History: []float64{60, 63, 66}},
		{Name: "Docker", Score: 55, Complexity: 52, Consistency: 50, Collaboration: 60, Recency: 45, Impact: 58, History: []float64{58, 55}},
	},
}

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

// Run only seeds candidates that have no skills yet, so re-running never
// duplicates rows.
func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "candidate_id", "name", "score",
		"complexity_score", "consistency_score", "collaboration_score", "recency_score", "impact_score"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skill_history", "id", "skill_id", "month", "score"); err != nil {
		return err
	}

	return database.WithTx(ctx, db, func(tx database.Tx) error {
		for _, c := range demoCandidates {
			skills := demoSkills[c.ProfileID]
			if len(skills) == 0 {
				continue
			}

			var existing int
			if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM skills WHERE candidate_id = $1`, c.ProfileID).Scan(&existing); err != nil {
				return err
			}
			if existing > 0 {
				continue
			}

			for _, s := range skills {
				var skillID uuid.UUID
				if err := tx.QueryRow(ctx,
					`INSERT INTO skills (candidate_id, name, score, complexity_score, consistency_score, collaboration_score, recency_score, impact_score)
					 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
					c.ProfileID, s.Name, s.Score, s.Complexity, s.Consistency, s.Collaboration, s.Recency, s.Impact,
				).Scan(&skillID); err != nil {
					return fmt.Errorf("skill %s: %w", s.Name, err)
				}

				for i, score := range s.History {
					month := fmt.Sprintf("2024-%02d", i+1)
					if _, err := tx.Exec(ctx,
						`INSERT INTO skill_history (skill_id, month, score) VALUES ($1, $2, $3)`,
						skillID, month, score,
					); err != nil {
						return fmt.Errorf("history %s %s: %w", s.Name, month, err)
					}
				}
			}
		}
		return nil
	})
}
