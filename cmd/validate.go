package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/secid-import/internal/schemas"
	"github.com/desertthunder/secid-import/internal/shared"
	"github.com/urfave/cli/v3"
)

// Validate checks an import document on disk. Without a path argument the configured output path is used.
func (r *Runner) Validate(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		config, err := r.loadConfig(cmd)
		if err != nil {
			return err
		}
		path = config.Output.Path
	}
	if path == "" {
		return fmt.Errorf("%w: path to an import document", shared.ErrMissingArgument)
	}

	r.logger.Debug("validating import document", "path", path)
	if err := schemas.ValidateFile(path); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	return r.writePlain("%s %s\n", r.palette.OK("✓"), fmt.Sprintf("%s is a valid import document", path))
}
