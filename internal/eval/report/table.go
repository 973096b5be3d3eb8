// Package report renders evaluation results as a text table or JSON.
package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"text/tabwriter"
)

// WriteTable renders the report with the metrics of every job sorted by
// metric name.
func WriteTable(r *Report, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Ranking Evaluation ===\n")

	for _, job := range r.Jobs {
		fmt.Fprintf(tw, "\n%s (%s, %d segments)\n", job.Name, job.Corpus, job.Segments)

		keys := make([]string, 0, len(job.Metrics))
		for k := range job.Metrics {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			fmt.Fprintf(tw, "  %s\t%s\n", k, formatValue(job.Metrics[k]))
		}
	}

	tw.Flush()
}

func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e12 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
