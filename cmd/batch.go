package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pulsemetrics/healthscore-cli/internal/model"
	"github.com/pulsemetrics/healthscore-cli/internal/scorer"
)

var (
	batchInput       string
	batchConcurrency int
	batchFormat      string
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a file of customers concurrently",
	Long: `Score every customer in a JSON file. The file holds an array of
entries, each with a customer_id, an optional display name, and the
four metrics categories:

  [{"customer_id": "acme", "name": "Acme Corp", "metrics": {...}}, ...]

Entries that fail validation are reported and skipped; the rest are
scored. Calculations run concurrently up to --concurrency.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if batchFormat != "table" && batchFormat != "json" {
			return eris.Errorf("batch: --format must be table or json (got %q)", batchFormat)
		}

		entries, err := loadBatchFile(batchInput)
		if err != nil {
			return err
		}

		results := runBatchEntries(newEngine(), entries, batchConcurrency)

		if batchFormat == "json" {
			return writeResultJSON(os.Stdout, results)
		}
		return writeBatchTable(os.Stdout, results)
	},
}

func init() {
	f := batchCmd.Flags()
	f.StringVar(&batchInput, "input", "", "JSON file with an array of customers (required)")
	f.IntVar(&batchConcurrency, "concurrency", 4, "max concurrent calculations")
	f.StringVar(&batchFormat, "format", "table", "output format: table or json")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry is one customer row in the batch input file.
type batchEntry struct {
	CustomerID string                 `json:"customer_id"`
	Name       string                 `json:"name,omitempty"`
	Metrics    *model.CustomerMetrics `json:"metrics"`
}

// batchResult pairs an entry with its outcome.
type batchResult struct {
	CustomerID string                   `json:"customer_id"`
	Name       string                   `json:"name,omitempty"`
	Result     *model.HealthScoreResult `json:"result,omitempty"`
	Error      *model.ValidationError   `json:"error,omitempty"`
}

func loadBatchFile(path string) ([]batchEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "batch: read input file %s", path)
	}

	var entries []batchEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, eris.Wrap(err, "batch: parse input file")
	}
	if len(entries) == 0 {
		return nil, eris.New("batch: input file has no entries")
	}
	return entries, nil
}

// runBatchEntries scores all entries with bounded concurrency. Results
// keep the input order; per-entry validation failures are recorded,
// not fatal.
func runBatchEntries(engine *scorer.Engine, entries []batchEntry, concurrency int) []batchResult {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]batchResult, len(entries))
	var failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, entry := range entries {
		g.Go(func() error {
			results[i] = batchResult{CustomerID: entry.CustomerID, Name: entry.Name}

			result, err := engine.Calculate(entry.Metrics, entry.CustomerID)
			if err != nil {
				failed.Add(1)
				zap.L().Warn("batch: scoring failed",
					zap.String("customer_id", entry.CustomerID),
					zap.Error(err),
				)
				if ve, ok := model.AsValidationError(err); ok {
					results[i].Error = ve
				} else {
					results[i].Error = &model.ValidationError{
						Code:    model.ErrCodeInvalidInput,
						Message: err.Error(),
					}
				}
				return nil
			}

			results[i].Result = result
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; failures live in results

	zap.L().Info("batch complete",
		zap.Int("total", len(entries)),
		zap.Int64("failed", failed.Load()),
	)

	return results
}

func writeBatchTable(w io.Writer, results []batchResult) error {
	fmt.Fprintf(w, "%-20s %-16s %9s %-9s %s\n", "Customer ID", "Name", "Overall", "Risk", "Error")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	counts := map[model.RiskLevel]int{}
	var scored int
	var sum float64

	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(w, "%-20s %-16s %9s %-9s %s\n", r.CustomerID, r.Name, "-", "-", r.Error.Error())
			continue
		}
		scored++
		sum += r.Result.OverallScore
		counts[r.Result.RiskLevel]++
		fmt.Fprintf(w, "%-20s %-16s %9.2f %-9s\n", r.CustomerID, r.Name, r.Result.OverallScore, r.Result.RiskLevel)
	}

	fmt.Fprintln(w, strings.Repeat("-", 80))
	fmt.Fprintf(w, "Scored: %d/%d   Healthy: %d   Warning: %d   Critical: %d",
		scored, len(results),
		counts[model.RiskHealthy],
		counts[model.RiskWarning],
		counts[model.RiskCritical],
	)
	if scored > 0 {
		fmt.Fprintf(w, "   Average: %.2f", sum/float64(scored))
	}
	fmt.Fprintln(w)

	return nil
}
