// Package scoring maps finding severities to numeric scores and aggregates
// per-criterion results into category and overall scores with OK/NG judgments.
package scoring

import (
	"math"

	"github.com/kmatsu/story-checker/internal/types"
)

// Fixed deduction table. A criterion with multiple findings scores the
// minimum of their individual scores, so one severe finding dominates.
const (
	scoreNone     = 1.0
	scoreMinor    = 0.8
	scoreModerate = 0.5
	scoreMajor    = 0.3
)

// PassThreshold is the score at or above which a judgment is OK.
const PassThreshold = 0.8

// SeverityScore returns the deduction-table score for a severity. Unknown
// severities score as moderate.
func SeverityScore(severity types.Severity) float64 {
	switch severity {
	case types.SeverityNone:
		return scoreNone
	case types.SeverityMinor:
		return scoreMinor
	case types.SeverityMajor:
		return scoreMajor
	default:
		return scoreModerate
	}
}

// CriterionScore folds a criterion's findings into one score, taking the
// worst finding. An empty finding set scores as no issues.
func CriterionScore(findings []types.Finding) float64 {
	score := scoreNone
	for _, f := range findings {
		if s := SeverityScore(f.Severity); s < score {
			score = s
		}
	}
	return score
}

// Judge compares a score to the pass threshold.
func Judge(score float64) types.Judgment {
	if score >= PassThreshold {
		return types.JudgmentOK
	}
	return types.JudgmentNG
}

// DisplayScore converts a [0,1] score to the 0-100 integer shown in reports.
func DisplayScore(score float64) int {
	return int(math.Round(score * 100))
}

// CriterionOutcome is the resolved result of evaluating one criterion. Err is
// set when the model call failed entirely; errored outcomes are excluded from
// aggregation denominators so one failing call cannot drag down a category.
type CriterionOutcome struct {
	CriterionID string
	Score       float64
	Findings    []types.Finding
	Err         error
}

// AggregateCategory combines a category's criterion outcomes into a weighted
// average and judgment. Weights come from the catalog and are renormalized by
// the total weight actually used, so errored criteria shrink the denominator
// instead of scoring zero.
func AggregateCategory(category *types.Category, outcomes []CriterionOutcome) types.CategoryResult {
	weightedSum := 0.0
	totalWeight := 0.0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			continue
		}
		weight := category.Weight(outcome.CriterionID)
		weightedSum += outcome.Score * weight
		totalWeight += weight
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight
	}

	return types.CategoryResult{
		CategoryID:   category.ID,
		CategoryName: category.DisplayName,
		Score:        score,
		Judgment:     Judge(score),
	}
}

// AggregateOverall combines all recorded evaluation-level scores into the
// total score and judgment. The mean is flat across evaluations rather than
// weighted by category. An empty input scores zero and fails.
func AggregateOverall(scores []float64) (float64, types.Judgment) {
	if len(scores) == 0 {
		return 0.0, types.JudgmentNG
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	total := sum / float64(len(scores))
	return total, Judge(total)
}
