// SPDX-License-Identifier: MIT

// Package export persists decomposition results.
//
// A Record carries the shift operator, its eigenpairs, the coefficient
// spectrum of every signal with its summary, the run settings, a random run
// id and a content fingerprint. Records encode to JSON, YAML or msgpack and
// decode back from any of them.
//
// The fingerprint is an xxhash-64 of the operator entries and the signal
// values (in signal-name order), so two runs over the same graph and signals
// share it regardless of run id or time.
package export
