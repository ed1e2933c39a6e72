package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/pulsemetrics/healthscore-cli/internal/fixtures"
	"github.com/pulsemetrics/healthscore-cli/internal/model"
	"github.com/pulsemetrics/healthscore-cli/internal/scorer"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Score the built-in demo customers",
	Long: `Run the full workshop demo customer set through the engine and print
the dashboard-style breakdown: one row per customer with per-factor
scores, the overall score, and the risk classification.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(os.Stdout, newEngine())
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer, engine *scorer.Engine) error {
	fmt.Fprintf(w, "%-3s %-16s %12s %8s %8s %8s %8s %9s %-9s\n",
		"ID", "Customer", "ARR", "Pay", "Eng", "Con", "Sup", "Overall", "Risk")
	fmt.Fprintln(w, strings.Repeat("-", 90))

	counts := map[model.RiskLevel]int{}
	var sum float64
	customers := fixtures.All()

	for _, c := range customers {
		m := c.Metrics
		result, err := engine.Calculate(&m, c.ID)
		if err != nil {
			return eris.Wrapf(err, "demo: customer %s", c.ID)
		}

		counts[result.RiskLevel]++
		sum += result.OverallScore

		fmt.Fprintf(w, "%-3s %-16s %12s %8.1f %8.1f %8.1f %8.1f %9.2f %-9s\n",
			c.ID, c.Name, "$"+formatMoney(m.Contract.ContractValue),
			result.Factors[model.FactorPayment].Score,
			result.Factors[model.FactorEngagement].Score,
			result.Factors[model.FactorContract].Score,
			result.Factors[model.FactorSupport].Score,
			result.OverallScore,
			result.RiskLevel,
		)
	}

	fmt.Fprintln(w, strings.Repeat("-", 90))
	fmt.Fprintf(w, "Customers: %d   Healthy: %d   Warning: %d   Critical: %d   Average: %.2f\n",
		len(customers),
		counts[model.RiskHealthy],
		counts[model.RiskWarning],
		counts[model.RiskCritical],
		sum/float64(len(customers)),
	)

	return nil
}
