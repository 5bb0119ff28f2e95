// Package tasks turns the member and account spreadsheets into an import document.
//
// # Pipeline
//
// [ImportEngine.Prepare] runs the stages in order, failing fast on the first error:
//
//  1. Load both tables and check their required columns
//  2. [ExcludeMembers] : drop test accounts by normalized email
//  3. [BuildAccountMap] : index account numbers by normalized email (last row wins)
//  4. [BuildRecord] : one record per remaining row, in file order
//  5. [BuildDocument] : counters and exclusion list
//  6. Validate the document against the embedded JSON schema
//
// Nothing is written here; the caller writes the returned document.
//
// # Progress Reporting
//
// Stages report a [ProgressUpdate] on an optional channel. Sends never block,
// so a nil or full channel only loses updates.
package tasks
