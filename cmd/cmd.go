// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Local:   true,
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

// prepareFlags returns fresh flag instances, so the root command and
// the prepare subcommand never share flag state.
func prepareFlags() []cli.Flag {
	return []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:  "members",
			Local: true,
			Usage: "Member survey spreadsheet (.xlsx or .csv)",
		},
		&cli.StringFlag{
			Name:  "accounts",
			Local: true,
			Usage: "Account number spreadsheet (.xlsx or .csv)",
		},
		&cli.StringFlag{
			Name:    "output",
			Local:   true,
			Aliases: []string{"o"},
			Usage:   "Path of the import document",
		},
		&cli.StringFlag{
			Name:  "csv",
			Local: true,
			Usage: "Also write a flattened CSV of the records to this path",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Local: true,
			Usage: "Email never imported (repeatable, replaces the configured list)",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Local: true,
			Usage: "Log every pipeline step",
		},
	}
}

// prepareCommand builds the import document
func prepareCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "prepare",
		Usage:  "Merge the member and account spreadsheets into the import document",
		Flags:  prepareFlags(),
		Action: r.Prepare,
	}
}

// validateCommand checks an existing import document
func validateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Validate an import document against the embedded schema",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "path"},
		},
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: r.Validate,
	}
}

// historyCommand lists recorded import runs
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List past import runs, newest first",
		Flags: []cli.Flag{
			configFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Only show runs that wrote this path",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.History,
	}
}

// setupCommand initializes configuration and the history database
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file or the history database",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupConfig,
			},
			{
				Name:   "database",
				Usage:  "Initialize the history database and run migrations",
				Flags:  []cli.Flag{configFlag()},
				Action: r.SetupDatabase,
			},
		},
	}
}
