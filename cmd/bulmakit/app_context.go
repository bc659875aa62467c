package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bulmakit/internal/components"
	"github.com/alexisbeaulieu97/bulmakit/internal/config"
	"github.com/alexisbeaulieu97/bulmakit/internal/logger"
)

type appContext struct {
	log     *logger.Logger
	config  *config.Holder
	catalog *components.Catalog
}

// newAppContext loads the configuration, then builds the logger it describes
// and the component catalog on top of it.
func newAppContext(cmd *cobra.Command, flags *rootFlags) (*appContext, error) {
	holder, err := config.NewHolder(flags.configPath, nil)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, "Fix the configuration file or omit --config to use the defaults.")
	}

	settings := holder.Get().Logging
	level := settings.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: settings.HumanReadable,
		Writer:        cmd.ErrOrStderr(),
		Component:     cmd.Name(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Use one of trace, debug, info, warn or error for logging.level.")
	}

	holder.SetLogger(log)

	catalog, err := components.New(holder, log)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "building component catalog", err, "This is a bug; please report it.")
	}

	return &appContext{log: log, config: holder, catalog: catalog}, nil
}
