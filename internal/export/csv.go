package export

import (
	"encoding/csv"
	"io"
	"slices"
	"strings"

	"breathrate/internal/domain"
)

var header = []string{"time", "bpm"}

// Sort returns records ordered by Time. Equal times keep their input order.
func Sort(records []domain.BreathingRateRecord) []domain.BreathingRateRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b domain.BreathingRateRecord) int {
		return strings.Compare(a.Time, b.Time)
	})
	return sorted
}

// Encode writes the header and one row per record, in the given order.
func Encode(w io.Writer, records []domain.BreathingRateRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Time, r.BPM.StringFixed(1)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
