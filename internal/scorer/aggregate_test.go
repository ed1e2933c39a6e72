package scorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

func TestWeightSum(t *testing.T) {
	// 0.4 + 0.3 + 0.2 + 0.1 must be exactly 1.0.
	assert.Equal(t, 1.0, WeightSum())
}

func TestAggregate(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	scores := map[model.Factor]float64{
		model.FactorPayment:    80,
		model.FactorEngagement: 70,
		model.FactorContract:   60,
		model.FactorSupport:    50,
	}

	result := Aggregate("cust-42", scores, at)

	assert.Equal(t, "cust-42", result.CustomerID)
	assert.Equal(t, 70.0, result.OverallScore) // 32 + 21 + 12 + 5
	assert.Equal(t, model.RiskWarning, result.RiskLevel)
	assert.Equal(t, at, result.CalculatedAt)

	require.Len(t, result.Factors, 4)
	payment := result.Factors[model.FactorPayment]
	assert.Equal(t, "Payment", payment.Name)
	assert.Equal(t, 80.0, payment.Score)
	assert.Equal(t, 0.4, payment.Weight)
	assert.InDelta(t, 32.0, payment.WeightedScore, 0.0001)

	support := result.Factors[model.FactorSupport]
	assert.Equal(t, "Support", support.Name)
	assert.Equal(t, 0.1, support.Weight)
	assert.InDelta(t, 5.0, support.WeightedScore, 0.0001)
}

func TestAggregate_RoundsToTwoDecimals(t *testing.T) {
	scores := map[model.Factor]float64{
		model.FactorPayment:    11.111,
		model.FactorEngagement: 22.222,
		model.FactorContract:   33.333,
		model.FactorSupport:    44.444,
	}

	result := Aggregate("c", scores, time.Now())
	// 4.4444 + 6.6666 + 6.6666 + 4.4444 = 22.222 -> 22.22
	assert.Equal(t, 22.22, result.OverallScore)
}

func TestAggregate_RiskBands(t *testing.T) {
	uniform := func(score float64) map[model.Factor]float64 {
		return map[model.Factor]float64{
			model.FactorPayment:    score,
			model.FactorEngagement: score,
			model.FactorContract:   score,
			model.FactorSupport:    score,
		}
	}

	assert.Equal(t, model.RiskHealthy, Aggregate("c", uniform(100), time.Now()).RiskLevel)
	assert.Equal(t, model.RiskHealthy, Aggregate("c", uniform(71), time.Now()).RiskLevel)
	assert.Equal(t, model.RiskWarning, Aggregate("c", uniform(70.99), time.Now()).RiskLevel)
	assert.Equal(t, model.RiskWarning, Aggregate("c", uniform(31), time.Now()).RiskLevel)
	assert.Equal(t, model.RiskCritical, Aggregate("c", uniform(30.99), time.Now()).RiskLevel)
	assert.Equal(t, model.RiskCritical, Aggregate("c", uniform(0), time.Now()).RiskLevel)
}
