package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/secid-import/internal/formatter"
	"github.com/desertthunder/secid-import/internal/models"
	"github.com/desertthunder/secid-import/internal/repositories"
	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/desertthunder/secid-import/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Prepare runs the full pipeline: load, exclude, join, build, validate, write.
func (r *Runner) Prepare(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	applyPrepareFlags(config, cmd)
	if err := config.Validate(); err != nil {
		return err
	}

	r.logger.Info("preparing import",
		"members", config.Input.Members, "accounts", config.Input.Accounts, "output", config.Output.Path)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			r.logger.Debug(update.Message, "phase", update.Phase, "step", update.Step, "total", update.Total)
		}
	}()

	result, err := r.engine.Prepare(ctx, progressCh, tasks.PrepareOpts{
		MembersPath:    config.Input.Members,
		AccountsPath:   config.Input.Accounts,
		ExcludedEmails: config.Import.ExcludedEmails,
	})
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	doc := result.Document
	if err := formatter.WriteImportDocument(doc, config.Output.Path); err != nil {
		return err
	}
	r.logger.Info("wrote import document", "path", config.Output.Path, "records", doc.TotalMembers)

	if config.Output.CSVPath != "" {
		if err := formatter.WriteCSVExport(doc, config.Output.CSVPath); err != nil {
			return err
		}
		r.logger.Info("wrote CSV export", "path", config.Output.CSVPath)
	}

	if err := formatter.WriteSummary(r.output, formatter.NewSummary(doc, config.Output.Path), r.palette); err != nil {
		return err
	}

	if config.HistoryEnabled() {
		if err := r.recordRun(config, result); err != nil {
			r.logger.Warn("failed to record import run", "error", err)
			if err := r.writePlain("%s\n", r.palette.Warn("Import history not updated: "+err.Error())); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyPrepareFlags overrides config values with the flags given on the command line.
func applyPrepareFlags(config *shared.Config, cmd *cli.Command) {
	if cmd.IsSet("members") {
		config.Input.Members = cmd.String("members")
	}
	if cmd.IsSet("accounts") {
		config.Input.Accounts = cmd.String("accounts")
	}
	if cmd.IsSet("output") {
		config.Output.Path = cmd.String("output")
	}
	if cmd.IsSet("csv") {
		config.Output.CSVPath = cmd.String("csv")
	}
	if cmd.IsSet("exclude") {
		config.Import.ExcludedEmails = cmd.StringSlice("exclude")
	}
}

func (r *Runner) recordRun(config *shared.Config, result *tasks.PrepareResult) error {
	db, err := r.openDB(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	doc := result.Document
	run := models.NewImportRun(0, doc.GeneratedAt,
		models.RunPaths{
			Members:  config.Input.Members,
			Accounts: config.Input.Accounts,
			Output:   config.Output.Path,
		},
		models.RunCounts{
			Total:         doc.TotalMembers,
			Members:       doc.MemberCount,
			Collaborators: doc.CollaboratorCount,
			WithAccount:   doc.WithAccount(),
			Excluded:      result.Excluded,
		},
	)

	if err := repositories.NewImportRunRepository(db).Create(run); err != nil {
		return fmt.Errorf("failed to save import run: %w", err)
	}
	r.logger.Debug("recorded import run", "id", run.ID(), "sequence", run.Sequence())
	return nil
}
