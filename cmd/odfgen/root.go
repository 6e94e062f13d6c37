package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
)

var (
	version = "dev"
	commit  = "none"
)

// options holds the persistent flags shared by all commands
type options struct {
	verbose bool
	strict  bool
}

// config returns the environment configuration with the command line
// flags applied on top
func (o *options) config() *odfgen.Config {
	cfg := odfgen.ConfigFromEnvironment()
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if o.strict {
		cfg.StrictMode = true
	}
	return cfg
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "odfgen",
		Short:         "odfgen builds synthetic OpenDocument packages",
		Long:          `odfgen assembles minimal ODF documents (odt, ods, odp, odg, ...) from XML fragments, for use as test fixtures.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := newLogger(cmd.ErrOrStderr(), odfgen.ParseLogLevel(opts.config().LogLevel))
			odfgen.SetLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("odfgen %s\ncommit: %s\n", version, commit))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().BoolVar(&opts.strict, "strict", false, "fail on fragments that cannot be merged")

	root.AddCommand(newBuildCmd(opts))
	root.AddCommand(newSuiteCmd(opts))
	root.AddCommand(newFlavorsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "odfgen %s (commit %s)\n", version, commit)
		},
	}
}
