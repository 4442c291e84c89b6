// Package scoring computes how well a candidate fits a job from the candidate's
// averaged skill dimensions and the job's recruiter-supplied weights.
package scoring

import (
	"math"
	"strings"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	default:
		return false
	}
}

const (
	GapLowRecency        = "Low recency — inactivity detected."
	GapLowCollaboration  = "Collaboration score below threshold."
	GapLowComplexity     = "Complexity gap in core skills."
	GapBelowMinThreshold = "Overall fit below job minimum threshold."

	SummaryStrongFit = "Strong overall fit. Minor gaps only."
)

const (
	MaxFitScore            = 100.0
	LowRiskMinFit          = 75.0
	LowRiskMinCompleteness = 85.0
	MediumRiskMinFit       = 55.0

	recencyGapBelow       = 50.0
	collaborationGapBelow = 60.0
	complexityGapBelow    = 60.0
)

// DimensionScores holds the five 0-100 sub-scores of a skill, or their
// per-candidate averages.
type DimensionScores struct {
	Complexity    float64
	Consistency   float64
	Collaboration float64
	Recency       float64
	Impact        float64
}

type Input struct {
	Dimensions       DimensionScores
	Weights          WeightVector
	DataCompleteness float64
	MinThreshold     float64
}

type Result struct {
	RawScore   float64
	FitScore   float64
	RiskLevel  RiskLevel
	GapSummary string
	Gaps       []string
}

// Aggregate averages each dimension across skills. ok is false when skills is
// empty; such a candidate has no defined aggregate and must not be scored.
func Aggregate(skills []DimensionScores) (DimensionScores, bool) {
	if len(skills) == 0 {
		return DimensionScores{}, false
	}

	var sum DimensionScores
	for _, s := range skills {
		sum.Complexity += s.Complexity
		sum.Consistency += s.Consistency
		sum.Collaboration += s.Collaboration
		sum.Recency += s.Recency
		sum.Impact += s.Impact
	}

	n := float64(len(skills))
	return DimensionScores{
		Complexity:    sum.Complexity / n,
		Consistency:   sum.Consistency / n,
		Collaboration: sum.Collaboration / n,
		Recency:       sum.Recency / n,
		Impact:        sum.Impact / n,
	}, true
}

// WeightedSum multiplies each dimension by its weight and adds them up as-is.
// Weights are never renormalised here.
func WeightedSum(d DimensionScores, w WeightVector) float64 {
	return d.Complexity*w.Backend +
		d.Consistency*w.Consistency +
		d.Collaboration*w.Collaboration +
		d.Recency*w.Recency +
		d.Impact*w.Impact
}

// Score is total over numeric input. Risk and the threshold gap are judged on
// the raw weighted sum; only the reported FitScore is capped and rounded.
func Score(in Input) Result {
	raw := WeightedSum(in.Dimensions, in.Weights)
	fit := Round1(math.Min(MaxFitScore, raw))

	gaps := Gaps(in.Dimensions, raw, in.MinThreshold)
	return Result{
		RawScore:   raw,
		FitScore:   fit,
		RiskLevel:  Risk(raw, in.DataCompleteness),
		GapSummary: Summarize(gaps),
		Gaps:       gaps,
	}
}

func Risk(fit, dataCompleteness float64) RiskLevel {
	if fit >= LowRiskMinFit && dataCompleteness >= LowRiskMinCompleteness {
		return RiskLow
	}
	if fit >= MediumRiskMinFit {
		return RiskMedium
	}
	return RiskHigh
}

// Gaps returns the gap messages in their fixed reporting order.
func Gaps(d DimensionScores, fit, minThreshold float64) []string {
	gaps := make([]string, 0, 4)
	if d.Recency < recencyGapBelow {
		gaps = append(gaps, GapLowRecency)
	}
	if d.Collaboration < collaborationGapBelow {
		gaps = append(gaps, GapLowCollaboration)
	}
	if d.Complexity < complexityGapBelow {
		gaps = append(gaps, GapLowComplexity)
	}
	if fit < minThreshold {
		gaps = append(gaps, GapBelowMinThreshold)
	}
	return gaps
}

func Summarize(gaps []string) string {
	if len(gaps) == 0 {
		return SummaryStrongFit
	}
	return strings.Join(gaps, " ")
}

// Round1 rounds to one decimal the way the dashboard always has:
// floor(x*10 + 0.5) / 10, so halves go up (68.45 -> 68.5, 68.449999 -> 68.4).
func Round1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}
