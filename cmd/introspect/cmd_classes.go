package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/introspect/format"
)

func newClassesCmd(flags *globalFlags) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the loaded classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, _, err := openCodebase(flags)
			if err != nil {
				return err
			}
			enc, err := format.NewEncoder(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			return enc.EncodeClasses(cb.AllClasses())
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")

	return cmd
}
