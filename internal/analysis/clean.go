package analysis

import "breathrate/internal/domain"

// Clean keeps the samples with a present, positive RR mean, in input order.
// The stats cover the whole input so an empty result can be explained.
func Clean(samples []domain.TimedSample) ([]domain.CleanSample, domain.CleanStats) {
	stats := domain.CleanStats{Input: len(samples)}
	if len(samples) > 0 {
		stats.First = samples[0].Timestamp
		stats.Last = samples[len(samples)-1].Timestamp
	}

	clean := make([]domain.CleanSample, 0, len(samples))
	for i, s := range samples {
		if i > 0 && s.Timestamp.Before(samples[i-1].Timestamp) {
			stats.OutOfOrder++
		}
		// NaN fails the comparison too.
		if !s.HasRR || !(s.RRMean > 0) {
			continue
		}
		clean = append(clean, domain.CleanSample{Timestamp: s.Timestamp, RRMean: s.RRMean})
	}
	stats.Retained = len(clean)
	return clean, stats
}
