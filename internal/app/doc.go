// Package app wires the breathing-rate pipeline for the CLI.
//
// It builds the loader, extractor and CSV writer from Config, exposing them
// via the Wire struct, and App runs them in order: load, clean, extract,
// export. Each stage hands back structured diagnostics collected into a
// domain.Report; formatting them is left to the caller.
package app
