package main

import (
	"context"
	"fmt"
	"time"

	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/repositories"
	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/urfave/cli/v3"
)

// historyEntry is the JSON shape of one listed run.
type historyEntry struct {
	ID            string    `json:"id"`
	Sequence      int       `json:"sequence"`
	GeneratedAt   string    `json:"generatedAt"`
	CreatedAt     time.Time `json:"createdAt"`
	MembersPath   string    `json:"membersPath"`
	AccountsPath  string    `json:"accountsPath"`
	OutputPath    string    `json:"outputPath"`
	Total         int       `json:"totalMembers"`
	Members       int       `json:"memberCount"`
	Collaborators int       `json:"collaboratorCount"`
	WithAccount   int       `json:"withAccount"`
	Excluded      int       `json:"excluded"`
}

func newHistoryEntry(run *models.ImportRun) historyEntry {
	paths, counts := run.Paths(), run.Counts()
	return historyEntry{
		ID:            run.ID(),
		Sequence:      run.Sequence(),
		GeneratedAt:   run.GeneratedAt(),
		CreatedAt:     run.CreatedAt(),
		MembersPath:   paths.Members,
		AccountsPath:  paths.Accounts,
		OutputPath:    paths.Output,
		Total:         counts.Total,
		Members:       counts.Members,
		Collaborators: counts.Collaborators,
		WithAccount:   counts.WithAccount,
		Excluded:      counts.Excluded,
	}
}

// History lists recorded import runs, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if !config.HistoryEnabled() {
		return fmt.Errorf("%w: set database.path to record import history", shared.ErrMissingConfig)
	}

	db, err := r.openDB(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := repositories.NewImportRunRepository(db).List(map[string]any{
		"limit":  cmd.Int("limit"),
		"output": cmd.String("output"),
	})
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		entries := make([]historyEntry, 0, len(runs))
		for _, run := range runs {
			entries = append(entries, newHistoryEntry(run))
		}
		return r.writeJSON(entries)
	}

	if len(runs) == 0 {
		return r.writePlain("%s\n", r.palette.Help("No import runs recorded"))
	}

	for _, run := range runs {
		c := run.Counts()
		line := fmt.Sprintf("%s %s  %d records (%d members, %d collaborators, %d with account, %d excluded) -> %s\n",
			r.palette.Title(fmt.Sprintf("#%d", run.Sequence())),
			run.GeneratedAt(),
			c.Total, c.Members, c.Collaborators, c.WithAccount, c.Excluded,
			run.Paths().Output,
		)
		if err := r.writePlain("%s", line); err != nil {
			return err
		}
	}
	return nil
}
