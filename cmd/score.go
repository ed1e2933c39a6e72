package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pulsemetrics/healthscore-cli/internal/fixtures"
	"github.com/pulsemetrics/healthscore-cli/internal/model"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single customer's health",
	Long: `Calculate the health score for one customer from a metrics file.

The metrics file carries the four telemetry categories (payment,
engagement, contract, support) as JSON or YAML. The result is a 0-100
overall score, a risk level, and the per-factor breakdown.

Examples:
  # Score from a JSON metrics file
  score --input acme.json --customer-id acme-corp

  # Score from YAML, write the result as JSON
  score --input acme.yaml --customer-id acme-corp --format json --output result.json

  # Score one of the built-in demo customers
  score --fixture 3`,
	RunE: runScore,
}

func init() {
	f := scoreCmd.Flags()
	f.String("input", "", "metrics file path (.json, .yaml, or .yml)")
	f.String("fixture", "", "score a built-in demo customer by ID instead of a file")
	f.String("customer-id", "", "customer identifier (required with --input)")
	f.String("format", "table", "output format: table or json")
	f.String("output", "", "output file path (default: stdout)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	fixtureID, _ := cmd.Flags().GetString("fixture")
	customerID, _ := cmd.Flags().GetString("customer-id")
	format, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")

	if format != "table" && format != "json" {
		return eris.Errorf("score: --format must be table or json (got %q)", format)
	}

	metrics, customerID, name, err := resolveScoreInput(input, fixtureID, customerID)
	if err != nil {
		return err
	}

	result, err := newEngine().Calculate(metrics, customerID)
	if err != nil {
		return eris.Wrapf(err, "score: customer %s", customerID)
	}

	zap.L().Info("score calculated",
		zap.String("customer_id", customerID),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("risk_level", string(result.RiskLevel)),
	)

	w, closeFn, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer closeFn()

	if format == "json" {
		return writeResultJSON(w, result)
	}
	return writeResultTable(w, name, result)
}

// resolveScoreInput picks between a metrics file and a demo fixture.
func resolveScoreInput(input, fixtureID, customerID string) (*model.CustomerMetrics, string, string, error) {
	switch {
	case input != "" && fixtureID != "":
		return nil, "", "", eris.New("score: --input and --fixture are mutually exclusive")
	case fixtureID != "":
		c, ok := fixtures.Get(fixtureID)
		if !ok {
			return nil, "", "", eris.Errorf("score: unknown fixture %q (valid IDs: 1-8)", fixtureID)
		}
		m := c.Metrics
		return &m, c.ID, c.Name, nil
	case input != "":
		if customerID == "" {
			return nil, "", "", eris.New("score: --customer-id is required with --input")
		}
		m, err := loadMetricsFile(input)
		if err != nil {
			return nil, "", "", err
		}
		return m, customerID, customerID, nil
	default:
		return nil, "", "", eris.New("score: either --input or --fixture is required")
	}
}

// loadMetricsFile reads a CustomerMetrics from a JSON or YAML file.
func loadMetricsFile(path string) (*model.CustomerMetrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "score: read metrics file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return model.DecodeMetricsJSON(data)
	case ".yaml", ".yml":
		return model.DecodeMetricsYAML(data)
	default:
		return nil, eris.Errorf("score: unsupported metrics file extension %q (want .json, .yaml, or .yml)", filepath.Ext(path))
	}
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "score: create output file %s", path)
	}
	return f, func() { f.Close() }, nil //nolint:errcheck
}

func writeResultJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(v), "score: encode result")
}

func writeResultTable(w io.Writer, name string, result *model.HealthScoreResult) error {
	if _, err := fmt.Fprintf(w, "Customer: %s (%s)\n\n", name, result.CustomerID); err != nil {
		return eris.Wrap(err, "score: write table")
	}

	fmt.Fprintf(w, "%-12s %8s %8s %10s\n", "Factor", "Score", "Weight", "Weighted")
	fmt.Fprintln(w, strings.Repeat("-", 42))
	for _, f := range model.Factors {
		fs := result.Factors[f]
		fmt.Fprintf(w, "%-12s %8.2f %8.2f %10.2f\n", fs.Name, fs.Score, fs.Weight, fs.WeightedScore)
	}
	fmt.Fprintln(w, strings.Repeat("-", 42))
	fmt.Fprintf(w, "%-12s %8.2f\n", "Overall", result.OverallScore)
	fmt.Fprintf(w, "%-12s %8s\n", "Risk", strings.ToUpper(string(result.RiskLevel)))
	fmt.Fprintf(w, "%-12s %8s\n", "Calculated", result.CalculatedAt.Format("15:04:05"))

	return nil
}

// moneyPrinter renders dollar amounts with thousands separators.
var moneyPrinter = message.NewPrinter(language.English)

func formatMoney(amount float64) string {
	return moneyPrinter.Sprintf("%.0f", amount)
}
