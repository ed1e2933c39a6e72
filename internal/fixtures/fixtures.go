// Package fixtures holds the demo customer set used by the workshop
// dashboard commands and the end-to-end tests.
package fixtures

import "github.com/pulsemetrics/healthscore-cli/internal/model"

// Customer pairs a demo customer's identity with its metrics snapshot.
type Customer struct {
	ID      string
	Name    string
	Metrics model.CustomerMetrics
}

// demoCustomers spans the full risk spectrum, from a model customer
// with clean billing through one with overdue payments, heavy ticket
// volume, and an imminent renewal.
var demoCustomers = []Customer{
	{
		ID:   "1",
		Name: "John Smith",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 10, AveragePaymentDelay: 2, OutstandingBalance: 0},
			Engagement: &model.EngagementData{MonthlyLogins: 18, FeaturesUsed: 12, SupportTicketsOpened: 2},
			Contract:   &model.ContractData{DaysUntilRenewal: 200, ContractValue: 50000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 6, SatisfactionScore: 4.5, EscalationCount: 0},
		},
	},
	{
		ID:   "2",
		Name: "Sarah Johnson",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 45, AveragePaymentDelay: 10, OutstandingBalance: 2500},
			Engagement: &model.EngagementData{MonthlyLogins: 8, FeaturesUsed: 5, SupportTicketsOpened: 6},
			Contract:   &model.ContractData{DaysUntilRenewal: 120, ContractValue: 25000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 15, SatisfactionScore: 3.0, EscalationCount: 2},
		},
	},
	{
		ID:   "3",
		Name: "Michael Brown",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 85, AveragePaymentDelay: 30, OutstandingBalance: 8000},
			Engagement: &model.EngagementData{MonthlyLogins: 2, FeaturesUsed: 2, SupportTicketsOpened: 12},
			Contract:   &model.ContractData{DaysUntilRenewal: 25, ContractValue: 15000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 48, SatisfactionScore: 1.5, EscalationCount: 7},
		},
	},
	{
		ID:   "4",
		Name: "Emily Davis",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 5, AveragePaymentDelay: 0, OutstandingBalance: 0},
			Engagement: &model.EngagementData{MonthlyLogins: 22, FeaturesUsed: 18, SupportTicketsOpened: 1},
			Contract:   &model.ContractData{DaysUntilRenewal: 250, ContractValue: 100000, HasRecentUpgrade: true},
			Support:    &model.SupportData{AverageResolutionTime: 3, SatisfactionScore: 5.0, EscalationCount: 0},
		},
	},
	{
		ID:   "5",
		Name: "David Wilson",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 30, AveragePaymentDelay: 7, OutstandingBalance: 1200},
			Engagement: &model.EngagementData{MonthlyLogins: 12, FeaturesUsed: 8, SupportTicketsOpened: 4},
			Contract:   &model.ContractData{DaysUntilRenewal: 150, ContractValue: 35000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 10, SatisfactionScore: 3.5, EscalationCount: 1},
		},
	},
	{
		ID:   "6",
		Name: "Lisa Anderson",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 15, AveragePaymentDelay: 3, OutstandingBalance: 500},
			Engagement: &model.EngagementData{MonthlyLogins: 16, FeaturesUsed: 10, SupportTicketsOpened: 3},
			Contract:   &model.ContractData{DaysUntilRenewal: 190, ContractValue: 45000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 8, SatisfactionScore: 4.0, EscalationCount: 1},
		},
	},
	{
		ID:   "7",
		Name: "Robert Chen",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 7, AveragePaymentDelay: 1, OutstandingBalance: 0},
			Engagement: &model.EngagementData{MonthlyLogins: 20, FeaturesUsed: 15, SupportTicketsOpened: 2},
			Contract:   &model.ContractData{DaysUntilRenewal: 220, ContractValue: 120000, HasRecentUpgrade: true},
			Support:    &model.SupportData{AverageResolutionTime: 4, SatisfactionScore: 4.8, EscalationCount: 0},
		},
	},
	{
		ID:   "8",
		Name: "Maria Rodriguez",
		Metrics: model.CustomerMetrics{
			Payment:    &model.PaymentData{DaysSinceLastPayment: 60, AveragePaymentDelay: 20, OutstandingBalance: 4500},
			Engagement: &model.EngagementData{MonthlyLogins: 5, FeaturesUsed: 4, SupportTicketsOpened: 8},
			Contract:   &model.ContractData{DaysUntilRenewal: 40, ContractValue: 20000, HasRecentUpgrade: false},
			Support:    &model.SupportData{AverageResolutionTime: 28, SatisfactionScore: 2.5, EscalationCount: 4},
		},
	},
}

// All returns the demo customers in display order.
func All() []Customer {
	out := make([]Customer, len(demoCustomers))
	copy(out, demoCustomers)
	return out
}

// Get looks up a demo customer by ID.
func Get(id string) (Customer, bool) {
	for _, c := range demoCustomers {
		if c.ID == id {
			return c, true
		}
	}
	return Customer{}, false
}
