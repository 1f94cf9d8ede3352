package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.obj>",
		Short: "Show record counts and bounding box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agg, err := a.parser.LoadAggregate(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			s := agg.Stats()
			fmt.Fprintf(out, "File:       %s\n", args[0])
			fmt.Fprintf(out, "Positions:  %d\n", s.Positions)
			fmt.Fprintf(out, "Normals:    %d\n", s.Normals)
			fmt.Fprintf(out, "TexCoords:  %d\n", s.TexCoords)
			fmt.Fprintf(out, "Faces:      %d (%d corners)\n", s.Faces, s.Corners)

			if min, max, ok := agg.Bounds(); ok {
				size := max.Sub(min)
				fmt.Fprintf(out, "Bounds min: %g %g %g\n", min.X(), min.Y(), min.Z())
				fmt.Fprintf(out, "Bounds max: %g %g %g\n", max.X(), max.Y(), max.Z())
				fmt.Fprintf(out, "Size:       %g %g %g\n", size.X(), size.Y(), size.Z())
			}
			return nil
		},
	}
}
