package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/suite"
)

// errSuiteFailed is returned after the summary when an input failed; the
// individual errors were already printed
var errSuiteFailed = errors.New("suite failed")

func newSuiteCmd(root *options) *cobra.Command {
	return &cobra.Command{
		Use:   "suite <descriptor.toml>",
		Short: "Build every package listed in a suite descriptor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			s, err := suite.Load(args[0])
			if err != nil {
				return err
			}

			runner := suite.NewRunner(root.config(), logger)
			report, err := runner.Run(cmd.Context(), s)
			if report != nil {
				printReport(cmd.OutOrStdout(), report)
			}
			if err != nil {
				if ctxErr := cmd.Context().Err(); ctxErr != nil {
					return ctxErr
				}
				if report == nil || len(report.Results) == 0 {
					return err
				}
				return fmt.Errorf("%w: %d of %d inputs", errSuiteFailed, report.Failed(), len(report.Results))
			}
			return nil
		},
	}
}
