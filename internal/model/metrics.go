package model

// PaymentData is a billing health snapshot at calculation time.
type PaymentData struct {
	DaysSinceLastPayment float64 `json:"days_since_last_payment" yaml:"days_since_last_payment"`
	AveragePaymentDelay  float64 `json:"average_payment_delay" yaml:"average_payment_delay"` // days
	OutstandingBalance   float64 `json:"outstanding_balance" yaml:"outstanding_balance"`     // dollars
}

// EngagementData captures product usage over the trailing month.
type EngagementData struct {
	MonthlyLogins        float64 `json:"monthly_logins" yaml:"monthly_logins"`
	FeaturesUsed         float64 `json:"features_used" yaml:"features_used"`
	SupportTicketsOpened float64 `json:"support_tickets_opened" yaml:"support_tickets_opened"`
}

// ContractData captures subscription terms. DaysUntilRenewal may be
// negative for an overdue renewal.
type ContractData struct {
	DaysUntilRenewal float64 `json:"days_until_renewal" yaml:"days_until_renewal"`
	ContractValue    float64 `json:"contract_value" yaml:"contract_value"` // annual value in dollars
	HasRecentUpgrade bool    `json:"has_recent_upgrade" yaml:"has_recent_upgrade"`
}

// SupportData captures support interaction quality.
type SupportData struct {
	AverageResolutionTime float64 `json:"average_resolution_time" yaml:"average_resolution_time"` // hours
	SatisfactionScore     float64 `json:"satisfaction_score" yaml:"satisfaction_score"`           // 1-5 scale
	EscalationCount       float64 `json:"escalation_count" yaml:"escalation_count"`
}

// CustomerMetrics is the complete input to a health score calculation.
// All four categories are mandatory; a nil category is reported as
// missing data rather than substituted with defaults.
type CustomerMetrics struct {
	Payment    *PaymentData    `json:"payment" yaml:"payment"`
	Engagement *EngagementData `json:"engagement" yaml:"engagement"`
	Contract   *ContractData   `json:"contract" yaml:"contract"`
	Support    *SupportData    `json:"support" yaml:"support"`
}
