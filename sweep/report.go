// Package sweep - metric summaries across completed runs.
package sweep

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Summary aggregates one named metric across a sweep's results.
// StdDev is the population standard deviation.
type Summary struct {
	Metric string
	Runs   int
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summarize collects metric from every result that reports it and
// returns its summary statistics. Results missing the metric are
// skipped; if no result carries it, ErrMetricMissing is returned.
//
// Complexity: O(R log R) for R contributing runs (median sort).
func Summarize(results []Result, metric string) (Summary, error) {
	values := make(stats.Float64Data, 0, len(results))
	for _, r := range results {
		if v, ok := r.Metrics[metric]; ok {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return Summary{}, ErrMetricMissing
	}

	s := Summary{Metric: metric, Runs: len(values)}
	var err error
	if s.Mean, err = stats.Mean(values); err != nil {
		return Summary{}, fmt.Errorf("sweep: mean of %q: %w", metric, err)
	}
	if s.Median, err = stats.Median(values); err != nil {
		return Summary{}, fmt.Errorf("sweep: median of %q: %w", metric, err)
	}
	if s.StdDev, err = stats.StandardDeviation(values); err != nil {
		return Summary{}, fmt.Errorf("sweep: stddev of %q: %w", metric, err)
	}
	if s.Min, err = stats.Min(values); err != nil {
		return Summary{}, fmt.Errorf("sweep: min of %q: %w", metric, err)
	}
	if s.Max, err = stats.Max(values); err != nil {
		return Summary{}, fmt.Errorf("sweep: max of %q: %w", metric, err)
	}
	return s, nil
}
