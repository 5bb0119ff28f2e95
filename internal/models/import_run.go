package models

import (
	"fmt"
	"time"
)

// ImportRun records one successful import: where it read from, where it wrote, and the counters it produced.
type ImportRun struct {
	id           string
	sequence     int
	generatedAt  string
	membersPath  string
	accountsPath string
	outputPath   string
	counts       RunCounts
	createdAt    time.Time
}

// RunCounts are the summary counters of an import run.
type RunCounts struct {
	Total         int
	Members       int
	Collaborators int
	WithAccount   int
	Excluded      int
}

// RunPaths are the files an import run touched.
type RunPaths struct {
	Members  string
	Accounts string
	Output   string
}

// NewImportRun creates an [ImportRun] for a written document.
func NewImportRun(sequence int, generatedAt string, paths RunPaths, counts RunCounts) *ImportRun {
	return &ImportRun{
		sequence:     sequence,
		generatedAt:  generatedAt,
		membersPath:  paths.Members,
		accountsPath: paths.Accounts,
		outputPath:   paths.Output,
		counts:       counts,
		createdAt:    time.Now(),
	}
}

func (r *ImportRun) ID() string           { return r.id }
func (r *ImportRun) Sequence() int        { return r.sequence }
func (r *ImportRun) GeneratedAt() string  { return r.generatedAt }
func (r *ImportRun) CreatedAt() time.Time { return r.createdAt }
func (r *ImportRun) Counts() RunCounts    { return r.counts }

func (r *ImportRun) Paths() RunPaths {
	return RunPaths{Members: r.membersPath, Accounts: r.accountsPath, Output: r.outputPath}
}

func (r *ImportRun) SetID(id string)           { r.id = id }
func (r *ImportRun) SetSequence(seq int)       { r.sequence = seq }
func (r *ImportRun) SetCreatedAt(at time.Time) { r.createdAt = at }

// Validate checks the counters agree with each other and the paths are set.
func (r *ImportRun) Validate() error {
	if r.outputPath == "" {
		return fmt.Errorf("output path is required")
	}
	if r.generatedAt == "" {
		return fmt.Errorf("generatedAt is required")
	}
	c := r.counts
	if c.Total < 0 || c.Members < 0 || c.Collaborators < 0 || c.WithAccount < 0 || c.Excluded < 0 {
		return fmt.Errorf("counts must not be negative")
	}
	if c.Members+c.Collaborators != c.Total {
		return fmt.Errorf("member (%d) and collaborator (%d) counts do not add up to total %d", c.Members, c.Collaborators, c.Total)
	}
	if c.WithAccount > c.Total {
		return fmt.Errorf("with-account count %d exceeds total %d", c.WithAccount, c.Total)
	}
	return nil
}
