package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/pkg/obj"
)

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file.obj>...",
		Short: "Parse OBJ files and report counts and timings",
		Long: `Parses each file in the configured mode (variant, aggregate or both)
and prints record counts and parse time. With --full every record is printed.

Examples:
  objtool parse model.obj
  objtool parse -m variant --full model.obj
  objtool parse a.obj b.obj c.obj`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			var errs error
			for _, path := range args {
				errs = multierr.Append(errs, a.parseFile(out, path))
			}
			return errs
		},
	}
}

func (a *app) parseFile(out io.Writer, path string) error {
	data, err := obj.ReadFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "File: %s (%d bytes)\n", path, len(data))

	mode := a.cfg.Parse.Mode
	if mode == config.ModeVariant || mode == config.ModeBoth {
		start := time.Now()
		records, err := a.parser.ParseVariant(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		printSuccess(out, "VARIANT", time.Since(start))
		a.printVariant(out, records)
	}
	if mode == config.ModeAggregate || mode == config.ModeBoth {
		start := time.Now()
		agg, err := a.parser.ParseAggregate(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		printSuccess(out, "AGGREGATE", time.Since(start))
		a.printAggregate(out, agg)
	}
	return nil
}

func printSuccess(out io.Writer, mode string, elapsed time.Duration) {
	fmt.Fprintf(out, "%s parsing succeeded in %.3fms\n", mode, float64(elapsed.Microseconds())/1000)
}

func (a *app) printVariant(out io.Writer, records []obj.Record) {
	fmt.Fprintf(out, "VARIANT: parsed %d entries\n", len(records))
	if !a.cfg.Output.Full {
		return
	}
	for _, r := range records {
		fmt.Fprintf(out, "  %v\n", r)
	}
}

func (a *app) printAggregate(out io.Writer, agg *obj.Aggregate) {
	fmt.Fprintf(out, "AGGREGATE: parsed %s\n", agg.Stats())
	if !a.cfg.Output.Full {
		return
	}
	for _, p := range agg.Positions {
		fmt.Fprintf(out, "  %v\n", p)
	}
	for _, n := range agg.Normals {
		fmt.Fprintf(out, "  %v\n", n)
	}
	for _, t := range agg.TexCoords {
		fmt.Fprintf(out, "  %v\n", t)
	}
	for _, f := range agg.Faces {
		fmt.Fprintf(out, "  %v\n", f)
	}
}
