// Package store provides read access to the flight-delay dataset.
//
// The dataset is a single SQLite file with three tables (flights, airlines,
// airports). The store exposes one method per query intent; each method
// binds named parameters into a fixed SQL template and returns the matching
// flights. Execution failures are returned as errors, never folded into an
// empty result: an empty slice always means the query ran and matched
// nothing.
package store
