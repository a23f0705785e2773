// Package domain defines the data models shared across the breathing-rate
// pipeline: timed and clean RR samples, detected peaks, output rows, the
// diagnostic counts each stage returns and the error taxonomy.
// It contains plain types and contracts (interfaces) only.
package domain
