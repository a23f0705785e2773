package commands

import (
	"fmt"
	"io"
	"strings"

	"breathrate/internal/domain"
)

var rule = strings.Repeat("-", 50)

// printReport renders pipeline diagnostics for a human reader.
func printReport(w io.Writer, r domain.Report) {
	c, e, x := r.Clean, r.Extract, r.Export

	fmt.Fprintf(w, "Loaded data with %d records\n", c.Input)
	if c.Input > 0 {
		fmt.Fprintf(w, "Time range: %s to %s\n",
			c.First.Format(domain.TimeLayout), c.Last.Format(domain.TimeLayout))
	}
	fmt.Fprintf(w, "Clean data points: %d\n", c.Retained)
	fmt.Fprintf(w, "Detected %d peaks\n", e.Peaks)
	fmt.Fprintf(w, "Valid breathing intervals: %d\n", e.Valid)
	fmt.Fprintf(w, "Filtered out: %d intervals\n", e.Filtered)
	if e.Valid > 0 {
		fmt.Fprintf(w, "Average breathing rate: %.1f breaths/min\n", e.MeanBPM)
		fmt.Fprintf(w, "Range: %.1f - %.1f breaths/min\n", e.MinBPM, e.MaxBPM)
	} else {
		fmt.Fprintln(w, "No valid breathing intervals; the output holds the header only")
	}

	fmt.Fprintf(w, "\nCSV file saved: %s\n", x.Path)
	fmt.Fprintf(w, "Records in output: %d\n", x.Records)
	fmt.Fprintf(w, "Output digest: %s\n", x.Digest)

	if len(x.Preview) == 0 {
		return
	}
	fmt.Fprintf(w, "\nFirst %d rows of output:\n", len(x.Preview))
	fmt.Fprintf(w, "%-8s  %5s\n", "time", "bpm")
	for _, rec := range x.Preview {
		fmt.Fprintf(w, "%-8s  %5s\n", rec.Time, rec.BPM.StringFixed(1))
	}
}
