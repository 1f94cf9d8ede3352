package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/wavefront/internal/config"
	"github.com/Faultbox/wavefront/pkg/encoding"
	"github.com/Faultbox/wavefront/pkg/obj"
)

// dumpRecord is the YAML form of one record.
type dumpRecord struct {
	Kind    string    `yaml:"kind"`
	Values  []float32 `yaml:"values,flow,omitempty"`
	Corners [][3]int  `yaml:"corners,flow,omitempty"`
}

func newDumpCmd(a *app) *cobra.Command {
	var enc string

	cmd := &cobra.Command{
		Use:   "dump <file.obj>",
		Short: "Print every record in source order",
		Long: `Prints the records of an OBJ file in source order, one per line,
or as a YAML list with --format yaml. --encoding utf16 writes UTF-16LE
with a byte order mark, the form some Windows exporters expect.

Examples:
  objtool dump model.obj
  objtool dump -f yaml model.obj > model.yaml
  objtool dump --encoding utf16 model.obj > model16.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if enc != encodingUTF8 && enc != encodingUTF16 {
				return fmt.Errorf("invalid encoding %q", enc)
			}
			records, err := a.parser.LoadVariant(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if a.cfg.Output.Format == config.FormatYAML {
				if err := dumpYAML(&buf, records); err != nil {
					return err
				}
			} else {
				for _, r := range records {
					fmt.Fprintln(&buf, r)
				}
			}
			return writeEncoded(cmd.OutOrStdout(), buf.Bytes(), enc)
		},
	}
	cmd.Flags().StringVar(&enc, "encoding", encodingUTF8, "Output encoding: utf8 or utf16")
	return cmd
}

// Output encodings.
const (
	encodingUTF8  = "utf8"
	encodingUTF16 = "utf16"
)

func writeEncoded(out io.Writer, data []byte, enc string) error {
	if enc == encodingUTF16 {
		var err error
		if data, err = encoding.UTF8ToUTF16LE(string(data)); err != nil {
			return err
		}
	}
	_, err := out.Write(data)
	return err
}

func toDumpRecord(r obj.Record) dumpRecord {
	d := dumpRecord{Kind: r.Kind().String()}
	switch r := r.(type) {
	case obj.VertexPosition:
		d.Values = []float32{r.X, r.Y, r.Z, r.W}
	case obj.VertexNormal:
		d.Values = []float32{r.I, r.J, r.K}
	case obj.VertexTextureCoordinate:
		d.Values = []float32{r.U, r.V, r.W}
	case obj.Face:
		for _, t := range r {
			d.Corners = append(d.Corners, [3]int{t.VertexIndex, t.UVIndex, t.NormalIndex})
		}
	}
	return d
}

func dumpYAML(out io.Writer, records []obj.Record) error {
	docs := make([]dumpRecord, 0, len(records))
	for _, r := range records {
		docs = append(docs, toDumpRecord(r))
	}
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(docs); err != nil {
		return err
	}
	return enc.Close()
}
