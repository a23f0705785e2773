package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"breathrate/internal/domain"
)

// toSamples converts a decoded document into one sample per record.
func toSamples(doc any, zone *time.Location) ([]domain.TimedSample, error) {
	records, ok := doc.([]any)
	if !ok {
		return nil, domain.ErrNotSequence
	}
	samples := make([]domain.TimedSample, 0, len(records))
	for i, r := range records {
		fields, ok := asObject(r)
		if !ok {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrNotRecord)
		}
		rawTS, ok := fields["ts"]
		if !ok || rawTS == nil {
			return nil, fmt.Errorf("record %d: %w", i, domain.ErrMissingTimestamp)
		}
		ts, err := parseEpoch(rawTS)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		mean, has, err := meanRR(fields["rr"])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		samples = append(samples, domain.TimedSample{
			Timestamp: ts.In(zone),
			RRMean:    mean,
			HasRR:     has,
		})
	}
	return samples, nil
}

// asObject accepts both JSON objects and YAML mappings with string keys.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

// parseEpoch turns epoch seconds (number or numeric string) into an instant.
// Textual values are converted exactly, so fractional seconds keep
// nanosecond precision at present-day magnitudes.
func parseEpoch(v any) (time.Time, error) {
	d, err := epochSeconds(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrBadTimestamp, v)
	}
	secs := d.Truncate(0)
	nanos := d.Sub(secs).Shift(9).Round(0)
	return time.Unix(secs.IntPart(), nanos.IntPart()).UTC(), nil
}

func epochSeconds(v any) (decimal.Decimal, error) {
	switch t := v.(type) {
	case string:
		return decimal.NewFromString(strings.TrimSpace(t))
	case json.Number:
		return decimal.NewFromString(t.String())
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return decimal.Decimal{}, errNotNumber
		}
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case int64:
		return decimal.NewFromInt(t), nil
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(t), 0), nil
	}
	return decimal.Decimal{}, errNotNumber
}

var errNotNumber = errors.New("not a number")

// meanRR averages an rr list. Anything other than a non-empty list means the
// record has no measurement; a non-numeric element is an error.
func meanRR(v any) (float64, bool, error) {
	list, ok := v.([]any)
	if !ok || len(list) == 0 {
		return 0, false, nil
	}
	sum := 0.0
	for j, e := range list {
		f, ok := number(e)
		if !ok {
			return 0, false, fmt.Errorf("%w: rr[%d] = %v", domain.ErrBadInterval, j, e)
		}
		sum += f
	}
	return sum / float64(len(list)), true, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
