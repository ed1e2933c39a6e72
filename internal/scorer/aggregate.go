package scorer

import (
	"time"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

// Weights are the fixed per-factor aggregation weights. They must sum
// to exactly 1.0; WeightSum and the package tests guard the invariant.
var Weights = map[model.Factor]float64{
	model.FactorPayment:    0.4, // highest priority
	model.FactorEngagement: 0.3, // product stickiness
	model.FactorContract:   0.2, // temporal risk
	model.FactorSupport:    0.1, // reactive indicator
}

// WeightSum returns the sum of all factor weights. Accumulation runs
// smallest-first so the canonical table totals exactly 1.0 in float64.
func WeightSum() float64 {
	var sum float64
	for i := len(model.Factors) - 1; i >= 0; i-- {
		sum += Weights[model.Factors[i]]
	}
	return sum
}

// Aggregate combines the four factor scores into a HealthScoreResult:
// per-factor weighted scores, a two-decimal overall score, and the risk
// classification. Inputs are pre-validated; there are no failure modes.
func Aggregate(customerID string, scores map[model.Factor]float64, at time.Time) *model.HealthScoreResult {
	factors := make(map[model.Factor]model.FactorScore, len(model.Factors))

	var overall float64
	for _, f := range model.Factors {
		fs := model.FactorScore{
			Name:          f.DisplayName(),
			Score:         scores[f],
			Weight:        Weights[f],
			WeightedScore: scores[f] * Weights[f],
		}
		factors[f] = fs
		overall += fs.WeightedScore
	}
	overall = round2(overall)

	return &model.HealthScoreResult{
		CustomerID:   customerID,
		OverallScore: overall,
		RiskLevel:    model.RiskLevelFor(overall),
		Factors:      factors,
		CalculatedAt: at,
	}
}
