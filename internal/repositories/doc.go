// Package repositories implements SQLite persistence for import history.
//
// Key Implementations:
//   - [ImportRunRepository] : append-only log of written import documents
//
// Sequence numbers provide stable, human-readable ordering (run #1, run #2, ...) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence counters in dedicated sequence tables.
package repositories
