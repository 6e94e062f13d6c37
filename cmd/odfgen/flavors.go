package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
)

func newFlavorsCmd() *cobra.Command {
	var family string

	cmd := &cobra.Command{
		Use:   "flavors",
		Short: "List the known flavor identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flavors []odfgen.Flavor
			for _, id := range odfgen.KnownFlavors() {
				f := odfgen.MustResolveFlavor(id)
				if family != "" && !strings.EqualFold(string(f.Family), family) {
					continue
				}
				flavors = append(flavors, f)
			}
			printFlavors(cmd.OutOrStdout(), flavors)
			return nil
		},
	}

	cmd.Flags().StringVar(&family, "family", "", "only list flavors of this family, e.g. spreadsheet")
	return cmd
}
