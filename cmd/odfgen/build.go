package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

type buildOpts struct {
	flavor string
	out    string
}

func newBuildCmd(root *options) *cobra.Command {
	opts := buildOpts{}

	cmd := &cobra.Command{
		Use:   "build [fragment.xml...]",
		Short: "Build one package from fragment files",
		Long: `Build resolves the flavor, merges the fragments of every file in the order
given and writes the package. Without --out the package is written to
out.<tag> in the current directory.`,
		Example: `  odfgen build --flavor odt1.2 --out hello.odt body.xml styles.xml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, root, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.flavor, "flavor", "f", "", "flavor identifier, e.g. odt1.2 (see 'odfgen flavors')")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output file")
	cmd.MarkFlagRequired("flavor")

	return cmd
}

func runBuild(cmd *cobra.Command, root *options, opts buildOpts, files []string) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	flavor, err := odfgen.ResolveFlavor(opts.flavor)
	if err != nil {
		return err
	}
	out := opts.out
	if out == "" {
		out = "out." + flavor.Extension()
	}

	cfg := root.config()
	assembler, err := odfgen.NewWithConfig(cfg)
	if err != nil {
		return err
	}
	assembler = assembler.WithLogger(logger)

	// each file is read once per invocation
	cfg.CacheMaxSize = len(files)
	cache := odfgen.NewFragmentCache(cfg)

	var fragments []*xml.Element
	for _, path := range files {
		elems, err := cache.Load(path)
		if err != nil {
			return err
		}
		logger.Debug("loaded fragments", "file", path, "count", len(elems))
		fragments = append(fragments, elems...)
	}

	p, err := assembler.Generate(out, flavor.ID, fragments)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	printSuccess(w, "Built %s", flavor.ID)
	printFile(w, out)
	for _, warning := range p.Warnings() {
		printWarning(w, "%v", warning)
	}
	prog.done(fmt.Sprintf("Wrote %s", out))
	return nil
}
