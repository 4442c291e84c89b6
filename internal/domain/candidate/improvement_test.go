package candidate

import (
	"testing"

	"hiring-intel/internal/domain/scoring"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func skill(name string, score float64, history ...float64) SkillWithHistory {
	s := SkillWithHistory{Skill: Skill{ID: uuid.New(), Name: name, Score: score}}
	months := []string{"2024-01", "2024-02", "2024-03", "2024-04"}
	for i, v := range history {
		s.History = append(s.History, HistoryPoint{Month: months[i], Score: v})
	}
	return s
}

func titles(actions []Action) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, string(a.Priority)+": "+a.Title)
	}
	return out
}

func TestImprovementPlan(t *testing.T) {
	tests := []struct {
		name   string
		skills []SkillWithHistory
		risk   scoring.RiskLevel
		want   []string
	}{
		{
			name: "no skills low risk",
			risk: scoring.RiskLow,
			want: []string{},
		},
		{
			name: "high risk comes first",
			skills: []SkillWithHistory{
				skill("Go", 80),
				skill("SQL", 50),
			},
			risk: scoring.RiskHigh,
			want: []string{
				"high: Address Inactivity Signal",
				"high: Strengthen SQL fundamentals",
				"low: Leverage Go strength",
			},
		},
		{
			name: "70 and 75 boundaries",
			skills: []SkillWithHistory{
				skill("A", 69.9),
				skill("B", 70),
				skill("C", 74.9),
				skill("D", 75),
			},
			risk: scoring.RiskMedium,
			want: []string{
				"high: Strengthen A fundamentals",
				"low: Leverage D strength",
			},
		},
		{
			name: "declining weak skill is listed once",
			skills: []SkillWithHistory{
				skill("Rust", 60, 70, 65, 60),
				skill("Go", 72, 80, 75, 72),
			},
			risk: scoring.RiskMedium,
			want: []string{
				"high: Strengthen Rust fundamentals",
				"medium: Reverse declining trend in Go",
			},
		},
		{
			name: "declining strong skill is also leveraged",
			skills: []SkillWithHistory{
				skill("Go", 90, 95, 90),
			},
			risk: scoring.RiskLow,
			want: []string{
				"medium: Reverse declining trend in Go",
				"low: Leverage Go strength",
			},
		},
		{
			name: "short history is never a trend",
			skills: []SkillWithHistory{
				skill("Go", 72, 90),
				skill("SQL", 72),
			},
			risk: scoring.RiskMedium,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(ImprovementPlan(tt.skills, tt.risk)))
		})
	}
}

func TestDeclining_SortsByMonth(t *testing.T) {
	s := SkillWithHistory{History: []HistoryPoint{
		{Month: "2024-03", Score: 90},
		{Month: "2024-01", Score: 60},
		{Month: "2024-02", Score: 70},
	}}
	assert.False(t, s.Declining())

	s.History[0].Score = 50
	assert.True(t, s.Declining())
	assert.Equal(t, "2024-03", s.History[0].Month)
}

func TestImprovementPlan_Descriptions(t *testing.T) {
	got := ImprovementPlan([]SkillWithHistory{skill("SQL", 62.5), skill("Go", 88.4)}, scoring.RiskLow)

	assert.Equal(t, "Current score 63/100. Focus on building complexity and consistency through "+
		"open-source contributions or side projects.", got[0].Description)
	assert.Equal(t, "Score 88/100 — consider contributing to high-visibility projects or mentoring "+
		"others to boost collaboration and impact scores.", got[1].Description)
}
