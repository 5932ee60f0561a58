package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/introspect/bean"
	"github.com/dhamidi/introspect/format"
	"github.com/dhamidi/introspect/java/codebase"
)

func newPropertiesCmd(flags *globalFlags) *cobra.Command {
	var (
		outputFormat string
		visibility   string
		includes     []string
		excludes     []string
		watch        bool
	)

	cmd := &cobra.Command{
		Use:   "properties <class>",
		Short: "Resolve the bean properties of a class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cb, cfg, err := openCodebase(flags)
			if err != nil {
				return err
			}
			policy := cfg.BeanConfig()
			if cmd.Flags().Changed("visibility") {
				if policy.Visibility, err = bean.ParseVisibility(visibility); err != nil {
					return err
				}
			}
			if len(includes) > 0 {
				policy.Includes = includes
			}
			policy.Excludes = append(policy.Excludes, excludes...)

			enc, err := format.NewEncoder(outputFormat, os.Stdout)
			if err != nil {
				return err
			}
			render := func() error {
				props, err := cb.PropertiesWith(args[0], policy)
				if err != nil {
					return err
				}
				return enc.EncodeProperties(props)
			}
			if !watch {
				return render()
			}

			w := codebase.NewFileWatcher(cb, codebase.OnChange(func() {
				if err := render(); err != nil {
					fmt.Fprintln(os.Stderr, err)
				}
			}))
			w.Start()
			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt)
			<-interrupt
			w.Stop()
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (line, json)")
	cmd.Flags().StringVar(&visibility, "visibility", "default", "field visibility threshold (default, public, any)")
	cmd.Flags().StringSliceVar(&includes, "include", nil, "only keep these property names")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "drop these property names")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "print again whenever a model file changes")

	return cmd
}
