package model

import "time"

// Factor identifies one of the four scoring categories.
type Factor string

const (
	FactorPayment    Factor = "payment"
	FactorEngagement Factor = "engagement"
	FactorContract   Factor = "contract"
	FactorSupport    Factor = "support"
)

// Factors lists the categories in their canonical order. Validation and
// reporting traverse this order so output is deterministic.
var Factors = []Factor{FactorPayment, FactorEngagement, FactorContract, FactorSupport}

// DisplayName returns the human-facing label for a factor.
func (f Factor) DisplayName() string {
	switch f {
	case FactorPayment:
		return "Payment"
	case FactorEngagement:
		return "Engagement"
	case FactorContract:
		return "Contract"
	case FactorSupport:
		return "Support"
	default:
		return string(f)
	}
}

// RiskLevel is the coarse classification derived from the overall score.
type RiskLevel string

const (
	RiskHealthy  RiskLevel = "healthy"  // 71-100
	RiskWarning  RiskLevel = "warning"  // 31-70
	RiskCritical RiskLevel = "critical" // 0-30
)

// RiskLevelFor classifies an overall score. Each band is inclusive on
// its lower bound.
func RiskLevelFor(score float64) RiskLevel {
	switch {
	case score >= 71:
		return RiskHealthy
	case score >= 31:
		return RiskWarning
	default:
		return RiskCritical
	}
}

// FactorScore is one category's contribution to the overall score.
type FactorScore struct {
	Name          string  `json:"name" yaml:"name"`
	Score         float64 `json:"score" yaml:"score"`   // 0-100
	Weight        float64 `json:"weight" yaml:"weight"` // 0-1
	WeightedScore float64 `json:"weighted_score" yaml:"weighted_score"`
}

// HealthScoreResult is the full output of a calculation. It is never
// mutated after construction; cached calculations return the same value.
type HealthScoreResult struct {
	CustomerID   string                 `json:"customer_id" yaml:"customer_id"`
	OverallScore float64                `json:"overall_score" yaml:"overall_score"` // 0-100, two decimals
	RiskLevel    RiskLevel              `json:"risk_level" yaml:"risk_level"`
	Factors      map[Factor]FactorScore `json:"factors" yaml:"factors"`
	CalculatedAt time.Time              `json:"calculated_at" yaml:"calculated_at"`
}
