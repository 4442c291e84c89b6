package candidate

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"hiring-intel/internal/domain/scoring"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	weakSkillBelow   = 70.0
	strongSkillFrom  = 75.0
	inactivityTitle  = "Address Inactivity Signal"
	inactivityDetail = "Recent commit history is sparse. Push meaningful contributions to GitHub weekly to improve recency scores."
)

type Action struct {
	Priority    Priority
	Title       string
	Description string
}

// ImprovementPlan lists actions in a fixed order: the inactivity action for
// High risk, then weak skills, then declining skills that are not weak, then
// strong skills. Within each group skills keep their input order.
func ImprovementPlan(skills []SkillWithHistory, risk scoring.RiskLevel) []Action {
	var actions []Action
	if risk == scoring.RiskHigh {
		actions = append(actions, Action{Priority: PriorityHigh, Title: inactivityTitle, Description: inactivityDetail})
	}

	for _, s := range skills {
		if s.Score < weakSkillBelow {
			actions = append(actions, Action{
				Priority: PriorityHigh,
				Title:    "Strengthen " + s.Name + " fundamentals",
				Description: fmt.Sprintf("Current score %s/100. Focus on building complexity and consistency "+
					"through open-source contributions or side projects.", wholeScore(s.Score)),
			})
		}
	}

	for _, s := range skills {
		if s.Score >= weakSkillBelow && s.Declining() {
			actions = append(actions, Action{
				Priority: PriorityMedium,
				Title:    "Reverse declining trend in " + s.Name,
				Description: "Score has been declining over recent months. Re-engage with regular practice, " +
					"code reviews, or pair programming sessions.",
			})
		}
	}

	for _, s := range skills {
		if s.Score >= strongSkillFrom {
			actions = append(actions, Action{
				Priority: PriorityLow,
				Title:    "Leverage " + s.Name + " strength",
				Description: fmt.Sprintf("Score %s/100 — consider contributing to high-visibility projects "+
					"or mentoring others to boost collaboration and impact scores.", wholeScore(s.Score)),
			})
		}
	}
	return actions
}

// Declining reports whether the latest month scores below the earliest one.
// Fewer than two points never count as a trend.
func (s SkillWithHistory) Declining() bool {
	if len(s.History) < 2 {
		return false
	}
	h := slices.SortedStableFunc(slices.Values(s.History), func(a, b HistoryPoint) int {
		return strings.Compare(a.Month, b.Month)
	})
	return h[len(h)-1].Score < h[0].Score
}

// wholeScore rounds halves away from zero.
func wholeScore(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}
