// Package analysis turns a cleaned RR-interval series into breathing-rate
// estimates.
//
// # Pipeline
//
//   - Clean drops samples without a usable RR mean.
//   - Extractor.DetectPeaks finds local maxima of the RR signal that reach a
//     global height percentile and are far enough apart in sample index.
//   - Extractor.Extract pairs consecutive peaks, keeps the intervals inside
//     the plausible breathing band and converts each to breaths per minute,
//     stamped with the later peak of the pair.
//
// # Known limitation
//
// The height threshold is one percentile over the whole session. Sessions
// whose RR drifts strongly will see peaks concentrated where RR is highest.
package analysis
