package scorer

import (
	"math"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

// Validate checks a CustomerMetrics for structural and numeric
// well-formedness. Categories are checked in the canonical order
// (payment, engagement, contract, support) and validation stops at the
// first violation, so error reporting is deterministic. The input is
// never mutated.
func Validate(m *model.CustomerMetrics) error {
	if m == nil {
		return model.NewValidationError(model.ErrCodeMissingData, "", "metrics payload is required")
	}

	if m.Payment == nil {
		return missing(model.FactorPayment)
	}
	if m.Engagement == nil {
		return missing(model.FactorEngagement)
	}
	if m.Contract == nil {
		return missing(model.FactorContract)
	}
	if m.Support == nil {
		return missing(model.FactorSupport)
	}

	if err := validatePayment(m.Payment); err != nil {
		return err
	}
	if err := validateEngagement(m.Engagement); err != nil {
		return err
	}
	if err := validateContract(m.Contract); err != nil {
		return err
	}
	return validateSupport(m.Support)
}

func validatePayment(d *model.PaymentData) error {
	if err := nonNegative(model.FactorPayment, "days_since_last_payment", d.DaysSinceLastPayment); err != nil {
		return err
	}
	if err := nonNegative(model.FactorPayment, "average_payment_delay", d.AveragePaymentDelay); err != nil {
		return err
	}
	return nonNegative(model.FactorPayment, "outstanding_balance", d.OutstandingBalance)
}

func validateEngagement(d *model.EngagementData) error {
	if err := nonNegative(model.FactorEngagement, "monthly_logins", d.MonthlyLogins); err != nil {
		return err
	}
	if err := nonNegative(model.FactorEngagement, "features_used", d.FeaturesUsed); err != nil {
		return err
	}
	return nonNegative(model.FactorEngagement, "support_tickets_opened", d.SupportTicketsOpened)
}

func validateContract(d *model.ContractData) error {
	// Negative days_until_renewal is legal: an overdue renewal.
	if !isFinite(d.DaysUntilRenewal) {
		return invalid(model.FactorContract, "days_until_renewal must be a finite number")
	}
	if !isFinite(d.ContractValue) || d.ContractValue <= 0 {
		return invalid(model.FactorContract, "contract_value must be a positive finite number")
	}
	return nil
}

func validateSupport(d *model.SupportData) error {
	if err := nonNegative(model.FactorSupport, "average_resolution_time", d.AverageResolutionTime); err != nil {
		return err
	}
	if !isFinite(d.SatisfactionScore) || d.SatisfactionScore < 1 || d.SatisfactionScore > 5 {
		return invalid(model.FactorSupport, "satisfaction_score must be between 1 and 5")
	}
	return nonNegative(model.FactorSupport, "escalation_count", d.EscalationCount)
}

func nonNegative(factor model.Factor, field string, v float64) error {
	if !isFinite(v) || v < 0 {
		return invalid(factor, "%s must be a non-negative finite number", field)
	}
	return nil
}

func missing(factor model.Factor) error {
	return model.NewValidationError(model.ErrCodeMissingData, factor, "missing %s data", factor)
}

func invalid(factor model.Factor, format string, args ...any) error {
	return model.NewValidationError(model.ErrCodeInvalidInput, factor, format, args...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
