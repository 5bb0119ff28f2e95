// Package ui holds the lipgloss styles used for console output.
//
// Styles degrade to plain text when the output is not a terminal, so summaries
// written to files or pipes carry no escape codes.
package ui
