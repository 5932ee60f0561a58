package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/introspect/config"
	"github.com/dhamidi/introspect/java/codebase"
)

type globalFlags struct {
	configPath string
	modelsDir  string
	verbose    int
}

func main() {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:          "introspect",
		Short:        "Resolve members and bean properties of a Java class model",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(flags.verbose, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default introspect.yaml in the models directory)")
	rootCmd.PersistentFlags().StringVar(&flags.modelsDir, "models", ".", "directory holding .json/.yaml class models")
	rootCmd.PersistentFlags().CountVarP(&flags.verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newClassesCmd(&flags))
	rootCmd.AddCommand(newMembersCmd(&flags))
	rootCmd.AddCommand(newPropertiesCmd(&flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openCodebase loads configuration and scans the models directory.
func openCodebase(flags *globalFlags) (*codebase.Codebase, *config.Config, error) {
	cfg, err := config.Load(flags.configPath, flags.modelsDir)
	if err != nil {
		return nil, nil, err
	}
	cb, err := codebase.New(flags.modelsDir, cfg.Settings())
	if err != nil {
		return nil, nil, err
	}
	if err := cb.ScanAll(); err != nil {
		return nil, nil, err
	}
	return cb, cfg, nil
}
