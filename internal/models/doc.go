// Package models defines the import document produced by secid-import and the entities it persists.
//
// The package contains two categories of types:
//
// 1. Output types: the JSON shape handed to the document database import
//   - [Record] : One normalized member, joined with its account number
//   - [Priorities] : Sparse per-initiative ratings
//   - [Document] : Summary counters plus the ordered record array
//   - [Classification] : The four role/status fields derived from one decision
//
// 2. Persistent Entities: Database-backed models
//   - [ImportRun] : One successful run, kept as append-only history
//
// Optional fields are pointers. A nil pointer is "absent" and serializes as null;
// the empty string is never used to mean absent.
package models
