package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/shared"
)

const importRunColumns = `
	id, sequence, generated_at, members_path, accounts_path, output_path,
	total_members, member_count, collaborator_count, with_account, excluded_count, created_at
`

// ImportRunRepository implements [models.Repository] for [models.ImportRun] persistence.
type ImportRunRepository struct {
	db *sql.DB
}

// NewImportRunRepository creates a new [ImportRunRepository] with the given database connection
func NewImportRunRepository(db *sql.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

// Create inserts a run with a generated ID and the next sequence number
func (r *ImportRunRepository) Create(run *models.ImportRun) error {
	if err := run.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	sequence, err := NextSequence(r.db, "import_runs")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	id := shared.GenerateID()
	paths, counts := run.Paths(), run.Counts()

	query := `INSERT INTO import_runs (` + importRunColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = r.db.Exec(query,
		id, sequence, run.GeneratedAt(), paths.Members, paths.Accounts, paths.Output,
		counts.Total, counts.Members, counts.Collaborators, counts.WithAccount, counts.Excluded,
		run.CreatedAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert import run: %w", err)
	}

	run.SetID(id)
	run.SetSequence(sequence)
	return nil
}

// Get retrieves a run by ID
func (r *ImportRunRepository) Get(id string) (*models.ImportRun, error) {
	query := `SELECT ` + importRunColumns + ` FROM import_runs WHERE id = ?`

	run, err := scanImportRun(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", shared.ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query import run: %w", err)
	}
	return run, nil
}

// List retrieves runs newest first.
//
// Supported criteria:
//   - "output" (string): only runs that wrote this path
//   - "limit" (int): maximum number of runs returned
func (r *ImportRunRepository) List(criteria map[string]any) ([]*models.ImportRun, error) {
	query := `SELECT ` + importRunColumns + ` FROM import_runs`
	args := []any{}

	if output, ok := criteria["output"].(string); ok && output != "" {
		query += " WHERE output_path = ?"
		args = append(args, output)
	}

	query += " ORDER BY sequence DESC"

	if limit, ok := criteria["limit"].(int); ok && limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query import runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.ImportRun
	for rows.Next() {
		run, err := scanImportRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan import run: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanImportRun(row rowScanner) (*models.ImportRun, error) {
	var (
		id          string
		sequence    int
		generatedAt string
		paths       models.RunPaths
		counts      models.RunCounts
		createdAt   time.Time
	)

	err := row.Scan(
		&id, &sequence, &generatedAt, &paths.Members, &paths.Accounts, &paths.Output,
		&counts.Total, &counts.Members, &counts.Collaborators, &counts.WithAccount, &counts.Excluded,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	run := models.NewImportRun(sequence, generatedAt, paths, counts)
	run.SetID(id)
	run.SetCreatedAt(createdAt)
	return run, nil
}
