package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/furniture-catalog/internal/importer"
)

func newTemplateCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the example CSV import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTo(cmd, out, func(w io.Writer) error {
				_, err := io.WriteString(w, importer.Template())
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	return cmd
}
