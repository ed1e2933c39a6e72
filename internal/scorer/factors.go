// Package scorer implements the customer health score engine: four
// pure factor scorers, weighted aggregation, input validation, and a
// TTL-bounded result cache behind a single Engine facade.
package scorer

import (
	"math"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

// clamp bounds a score to [0,100]. Every factor output passes through
// this even when in-range inputs make violation unlikely; the bound is
// part of the scorer contract.
func clamp(score float64) float64 {
	return math.Min(100, math.Max(0, score))
}

// round2 rounds to two decimal places.
func round2(score float64) float64 {
	return math.Round(score*100) / 100
}

// PaymentScore rates billing health from 0-100.
//
// Components: recency (40%) decays linearly to 0 at 90+ days since the
// last payment, timeliness (40%) decays exponentially with the average
// delay, and debt (20%) applies stepped penalties by balance tier.
func PaymentScore(d model.PaymentData) float64 {
	recency := math.Max(0, 100-(d.DaysSinceLastPayment/90)*100)
	timeliness := math.Max(0, 100*math.Exp(-d.AveragePaymentDelay/15))

	var debt float64
	switch {
	case d.OutstandingBalance == 0:
		debt = 100
	case d.OutstandingBalance <= 1000:
		debt = 70
	case d.OutstandingBalance <= 5000:
		debt = 40
	default:
		debt = 0
	}

	return clamp(recency*0.4 + timeliness*0.4 + debt*0.2)
}

// EngagementScore rates product usage from 0-100.
//
// Components: login activity (40%) climbs to 100 at 15 logins/month
// then tapers mildly toward a floor of 80 (heavy usage can indicate
// automation), feature adoption (40%) grows logarithmically, and
// ticket volume (20%) applies stepped penalties past 2 tickets.
func EngagementScore(d model.EngagementData) float64 {
	var login float64
	if d.MonthlyLogins <= 15 {
		login = math.Min(100, (d.MonthlyLogins/15)*100)
	} else {
		login = math.Max(80, 100-((d.MonthlyLogins-15)/15)*20)
	}

	feature := math.Min(100, 50*math.Log10(d.FeaturesUsed+1)*2)

	var ticket float64
	switch {
	case d.SupportTicketsOpened <= 2:
		ticket = 100
	case d.SupportTicketsOpened <= 5:
		ticket = 85
	case d.SupportTicketsOpened <= 10:
		ticket = 50
	default:
		ticket = 20
	}

	return clamp(login*0.4 + feature*0.4 + ticket*0.2)
}

// ContractScore rates contract health from 0-100.
//
// Components: renewal timeline (50%) steps down as the renewal date
// nears and tapers linearly toward 20 inside the final 30 days,
// contract value (30%) scales logarithmically with annual value, and
// growth (20%) is a flat bonus for a recent upgrade.
//
// The renewal curve steps down discontinuously at the 180- and 90-day
// boundaries (100 to 80, 80 to 50); the taper inside 30 days meets the
// plateau continuously at exactly 50 and floors at 20 for overdue
// renewals.
func ContractScore(d model.ContractData) float64 {
	var renewal float64
	switch {
	case d.DaysUntilRenewal > 180:
		renewal = 100
	case d.DaysUntilRenewal > 90:
		renewal = 80
	case d.DaysUntilRenewal > 30:
		renewal = 50
	default:
		renewal = math.Max(20, 20+(d.DaysUntilRenewal/30)*30)
	}

	value := math.Min(100, 30+20*math.Log10(d.ContractValue/1000+1))

	growth := 50.0
	if d.HasRecentUpgrade {
		growth = 100
	}

	return clamp(renewal*0.5 + value*0.3 + growth*0.2)
}

// SupportScore rates support interaction quality from 0-100.
//
// Components: resolution speed (40%) decays exponentially with a floor
// of 10, satisfaction (40%) rescales the 1-5 survey score linearly,
// and escalations (20%) apply stepped penalties.
func SupportScore(d model.SupportData) float64 {
	resolution := math.Max(10, 100*math.Exp(-d.AverageResolutionTime/12))
	satisfaction := ((d.SatisfactionScore - 1) / 4) * 100

	var escalation float64
	switch {
	case d.EscalationCount == 0:
		escalation = 100
	case d.EscalationCount <= 2:
		escalation = 70
	case d.EscalationCount <= 5:
		escalation = 40
	default:
		escalation = 0
	}

	return clamp(resolution*0.4 + satisfaction*0.4 + escalation*0.2)
}
