// Package commands defines the breathrate CLI.
//
// Usage
//
//	breathrate [input] [output]
//
// input defaults to H10_log_20250611_2133.json and output to
// breathing_rate_output.csv. The command loads the log, estimates breathing
// rate from the RR-interval signal and writes a time,bpm table, printing
// progress and a short summary to stdout.
//
// # Exit status
//
//   - 0  success, including a header-only table for degenerate data
//   - 2  input file does not exist
//   - 3  input could not be parsed into records
//   - 1  anything else
package commands
