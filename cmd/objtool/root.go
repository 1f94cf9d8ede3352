package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/internal/logger"
	"github.com/Faultbox/wavefront/pkg/obj"
)

// app carries state shared by all subcommands.
type app struct {
	flags  config.Flags
	cfg    *config.Config
	parser *obj.Parser
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "objtool",
		Short: "Wavefront OBJ parsing utility",
		Long: `objtool parses Wavefront OBJ geometry (v, vn, vt, f records).

Commands:
  parse <file.obj>...   Parse files and report counts and timings
  dump <file.obj>       Print every record in source order
  info <file.obj>       Show record counts and bounding box
  config init [path]    Write a default config file
  config show           Print the effective configuration`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	a.flags.Register(root.PersistentFlags())

	root.AddCommand(
		newParseCmd(a),
		newDumpCmd(a),
		newInfoCmd(a),
		newConfigCmd(a),
	)
	return root
}

// setup loads the config and initializes logging before any subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(&a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return err
	}
	a.parser = obj.NewParser(logger.Log, obj.WithRemainderLimit(cfg.Parse.RemainderLimit))

	logger.Debug("config loaded",
		zap.String("mode", cfg.Parse.Mode),
		zap.String("format", cfg.Output.Format),
	)
	return nil
}

// setupLogging initializes logging from flags alone. It reads no config
// file, so it works while the existing one is broken.
func (a *app) setupLogging(cmd *cobra.Command, args []string) error {
	level := config.Default().Logging.Level
	if a.flags.Debug {
		level = "debug"
	}
	return logger.Init(level, a.flags.LogFile)
}
