package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{100, RiskHealthy},
		{71, RiskHealthy},
		{70.99, RiskWarning},
		{70, RiskWarning},
		{31, RiskWarning},
		{30.99, RiskCritical},
		{30, RiskCritical},
		{0, RiskCritical},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelFor(tt.score), "score %.2f", tt.score)
	}
}

func TestFactorOrder(t *testing.T) {
	// Validation and reporting depend on this exact traversal order.
	assert.Equal(t, []Factor{FactorPayment, FactorEngagement, FactorContract, FactorSupport}, Factors)
}

func TestFactorDisplayName(t *testing.T) {
	assert.Equal(t, "Payment", FactorPayment.DisplayName())
	assert.Equal(t, "Engagement", FactorEngagement.DisplayName())
	assert.Equal(t, "Contract", FactorContract.DisplayName())
	assert.Equal(t, "Support", FactorSupport.DisplayName())
	assert.Equal(t, "unknown", Factor("unknown").DisplayName())
}
