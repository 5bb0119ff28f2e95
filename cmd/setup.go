package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to --config.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", configPath)
	return r.writePlain("%s Config written to %s\n", r.palette.OK("✓"), configPath)
}

// SetupDatabase initializes the history database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if !config.HistoryEnabled() {
		return fmt.Errorf("%w: database.path is not set in %s", shared.ErrMissingConfig, cmd.String("config"))
	}

	r.logger.Info("initializing database", "path", config.Database.Path)
	db, err := r.openDB(config.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return r.writePlain("%s Database ready at %s\n", r.palette.OK("✓"), config.Database.Path)
}
