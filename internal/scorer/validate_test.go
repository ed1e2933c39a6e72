package scorer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

func validMetrics() *model.CustomerMetrics {
	return &model.CustomerMetrics{
		Payment:    &model.PaymentData{DaysSinceLastPayment: 10, AveragePaymentDelay: 2, OutstandingBalance: 0},
		Engagement: &model.EngagementData{MonthlyLogins: 18, FeaturesUsed: 12, SupportTicketsOpened: 2},
		Contract:   &model.ContractData{DaysUntilRenewal: 200, ContractValue: 50000, HasRecentUpgrade: false},
		Support:    &model.SupportData{AverageResolutionTime: 6, SatisfactionScore: 4.5, EscalationCount: 0},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validMetrics()))
}

func TestValidate_NilMetrics(t *testing.T) {
	err := Validate(nil)
	require.Error(t, err)

	ve, ok := model.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, model.ErrCodeMissingData, ve.Code)
	assert.Empty(t, ve.Factor)
}

func TestValidate_MissingCategories(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CustomerMetrics)
		factor model.Factor
	}{
		{"payment", func(m *model.CustomerMetrics) { m.Payment = nil }, model.FactorPayment},
		{"engagement", func(m *model.CustomerMetrics) { m.Engagement = nil }, model.FactorEngagement},
		{"contract", func(m *model.CustomerMetrics) { m.Contract = nil }, model.FactorContract},
		{"support", func(m *model.CustomerMetrics) { m.Support = nil }, model.FactorSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetrics()
			tt.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			ve, ok := model.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, model.ErrCodeMissingData, ve.Code)
			assert.Equal(t, tt.factor, ve.Factor)
		})
	}
}

func TestValidate_InvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CustomerMetrics)
		factor model.Factor
	}{
		{"negative balance", func(m *model.CustomerMetrics) { m.Payment.OutstandingBalance = -1 }, model.FactorPayment},
		{"NaN delay", func(m *model.CustomerMetrics) { m.Payment.AveragePaymentDelay = math.NaN() }, model.FactorPayment},
		{"infinite logins", func(m *model.CustomerMetrics) { m.Engagement.MonthlyLogins = math.Inf(1) }, model.FactorEngagement},
		{"negative features", func(m *model.CustomerMetrics) { m.Engagement.FeaturesUsed = -2 }, model.FactorEngagement},
		{"infinite renewal days", func(m *model.CustomerMetrics) { m.Contract.DaysUntilRenewal = math.Inf(-1) }, model.FactorContract},
		{"zero contract value", func(m *model.CustomerMetrics) { m.Contract.ContractValue = 0 }, model.FactorContract},
		{"negative contract value", func(m *model.CustomerMetrics) { m.Contract.ContractValue = -500 }, model.FactorContract},
		{"satisfaction below scale", func(m *model.CustomerMetrics) { m.Support.SatisfactionScore = 0.5 }, model.FactorSupport},
		{"satisfaction above scale", func(m *model.CustomerMetrics) { m.Support.SatisfactionScore = 5.1 }, model.FactorSupport},
		{"negative escalations", func(m *model.CustomerMetrics) { m.Support.EscalationCount = -1 }, model.FactorSupport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMetrics()
			tt.mutate(m)

			err := Validate(m)
			require.Error(t, err)

			ve, ok := model.AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, model.ErrCodeInvalidInput, ve.Code)
			assert.Equal(t, tt.factor, ve.Factor)
		})
	}
}

func TestValidate_OverdueRenewalIsLegal(t *testing.T) {
	m := validMetrics()
	m.Contract.DaysUntilRenewal = -45
	require.NoError(t, Validate(m))
}

// With violations in several categories, the fixed traversal order
// means payment is always the one reported.
func TestValidate_DeterministicOrder(t *testing.T) {
	m := validMetrics()
	m.Payment.OutstandingBalance = -1
	m.Support.SatisfactionScore = 0

	err := Validate(m)
	require.Error(t, err)

	ve, ok := model.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, model.FactorPayment, ve.Factor)
}

func TestValidate_DoesNotMutate(t *testing.T) {
	m := validMetrics()
	before := *m.Payment
	require.NoError(t, Validate(m))
	assert.Equal(t, before, *m.Payment)
}
