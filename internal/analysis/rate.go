package analysis

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"breathrate/internal/domain"
)

// Extractor derives breathing rates from a clean RR series.
type Extractor struct {
	params Params
}

func NewExtractor(p Params) *Extractor {
	return &Extractor{params: p}
}

// Params returns the parameters the extractor runs with.
func (e *Extractor) Params() Params { return e.params }

// DetectPeaks returns the accepted peaks of clean and the height threshold
// they were held to. The threshold is NaN for an empty series.
func (e *Extractor) DetectPeaks(clean []domain.CleanSample) ([]domain.Peak, float64) {
	if len(clean) == 0 {
		return nil, math.NaN()
	}
	values := make([]float64, len(clean))
	for i, s := range clean {
		values[i] = s.RRMean
	}
	threshold := Percentile(values, e.params.HeightPercentile)

	idx := FindPeaks(values, threshold, e.params.MinPeakDistance)
	peaks := make([]domain.Peak, 0, len(idx))
	for _, i := range idx {
		peaks = append(peaks, domain.Peak{
			Index:     i,
			Timestamp: clean[i].Timestamp,
			RRMean:    clean[i].RRMean,
		})
	}
	return peaks, threshold
}

// Extract returns one record per consecutive peak pair whose spacing lies in
// [MinInterval, MaxInterval], in detection order. Each record carries the
// time of the later peak. Degenerate input yields no records, not an error.
func (e *Extractor) Extract(clean []domain.CleanSample) ([]domain.BreathingRateRecord, domain.ExtractStats) {
	peaks, threshold := e.DetectPeaks(clean)
	stats := domain.ExtractStats{Threshold: threshold, Peaks: len(peaks)}
	if len(peaks) < 2 {
		return nil, stats
	}
	stats.Intervals = len(peaks) - 1

	var (
		records []domain.BreathingRateRecord
		sum     float64
	)
	for i := 1; i < len(peaks); i++ {
		end := peaks[i].Timestamp
		interval := end.Sub(peaks[i-1].Timestamp)
		if !e.plausible(interval) {
			stats.Filtered++
			continue
		}

		bpm := 60 / interval.Seconds()
		records = append(records, domain.BreathingRateRecord{
			Time: end.Format(domain.TimeLayout),
			BPM:  decimal.NewFromFloat(bpm).RoundBank(1),
			At:   end,
		})

		if stats.Valid == 0 || bpm < stats.MinBPM {
			stats.MinBPM = bpm
		}
		if stats.Valid == 0 || bpm > stats.MaxBPM {
			stats.MaxBPM = bpm
		}
		sum += bpm
		stats.Valid++
	}
	if stats.Valid > 0 {
		stats.MeanBPM = sum / float64(stats.Valid)
	}
	return records, stats
}

func (e *Extractor) plausible(d time.Duration) bool {
	return d >= e.params.MinInterval && d <= e.params.MaxInterval
}
