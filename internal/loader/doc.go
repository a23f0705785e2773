// Package loader reads heart-rate sensor logs into timed RR samples.
//
// A log is a sequence of records, each with an epoch-seconds "ts" and an
// optional "rr" list of RR-interval measurements. JSON is the native format;
// files ending in .yaml or .yml are read with the same schema. Every record
// yields exactly one domain.TimedSample, in document order; records without
// measurements are kept with HasRR unset so the cleaner can account for them.
package loader
