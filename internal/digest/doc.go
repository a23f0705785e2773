// Package digest fingerprints output files so repeated runs can be compared
// at a glance.
package digest
