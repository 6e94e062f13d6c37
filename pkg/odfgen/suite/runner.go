package suite

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// Result is the outcome of one input
type Result struct {
	Name     string
	Flavor   string
	Path     string
	Warnings int
	Duration time.Duration
	Err      error
}

// OK reports whether the package was written
func (r Result) OK() bool {
	return r.Err == nil
}

// Report summarizes a run
type Report struct {
	RunID    string
	Results  []Result
	Duration time.Duration
	// Skipped counts inputs not attempted because the run was cancelled
	Skipped int
}

// Succeeded returns the number of inputs that were written
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of inputs that failed
func (r *Report) Failed() int {
	return len(r.Results) - r.Succeeded()
}

// Warnings returns the number of skipped fragments over all inputs
func (r *Report) Warnings() int {
	n := 0
	for _, res := range r.Results {
		n += res.Warnings
	}
	return n
}

// Runner builds the inputs of a suite one after another
type Runner struct {
	config *odfgen.Config
	cache  *odfgen.FragmentCache
	logger *log.Logger
}

// NewRunner creates a runner. Fragment files are cached across runs
// according to config.
func NewRunner(config *odfgen.Config, logger *log.Logger) *Runner {
	config = odfgen.NewConfigWithDefaults(config)
	if logger == nil {
		logger = odfgen.GetLogger()
	}
	return &Runner{
		config: config,
		cache:  odfgen.NewFragmentCache(config),
		logger: logger,
	}
}

// Run builds every input of s. A failing input does not stop the run; all
// failures are returned together as an *odfgen.MultiError. When ctx is
// cancelled the current input completes, the rest are skipped and the
// context error is part of the returned error.
func (r *Runner) Run(ctx context.Context, s *Suite) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.New().String()}
	logger := r.logger.With("run", report.RunID)

	cfg := *r.config
	if s.Strict {
		cfg.StrictMode = true
	}
	assembler, err := odfgen.NewWithConfig(&cfg)
	if err != nil {
		return report, err
	}
	assembler = assembler.WithLogger(logger)

	outDir := s.OutputPath()
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return report, odfgen.NewDocumentError("create", outDir, err)
	}

	logger.Info("running suite", "inputs", len(s.Inputs), "output", outDir)

	errs := odfgen.NewMultiError()
	for i, in := range s.Inputs {
		if err := ctx.Err(); err != nil {
			report.Skipped = len(s.Inputs) - i
			logger.Warn("suite cancelled", "skipped", report.Skipped)
			errs.Add(err)
			break
		}

		res := r.runInput(assembler, s, in)
		if res.Err != nil {
			logger.Error("input failed", "input", in.Name, "err", res.Err)
			errs.Add(odfgen.WithContext(res.Err, "build input", map[string]interface{}{"input": in.Name}))
		}
		report.Results = append(report.Results, res)
	}

	report.Duration = time.Since(start)
	logger.Info("suite finished",
		"succeeded", report.Succeeded(),
		"failed", report.Failed(),
		"elapsed", report.Duration.Round(time.Millisecond),
	)
	return report, errs.Err()
}

func (r *Runner) runInput(a *odfgen.Assembler, s *Suite, in Input) (res Result) {
	start := time.Now()
	res = Result{Name: in.Name, Flavor: in.Flavor, Path: s.PackagePath(in)}

	defer func() {
		if rec := recover(); rec != nil {
			res.Err = odfgen.RecoverError(rec)
		}
		res.Duration = time.Since(start)
	}()

	fragments, err := r.fragments(s, in)
	if err != nil {
		res.Err = err
		return res
	}

	p, err := a.Generate(res.Path, in.Flavor, fragments)
	if err != nil {
		res.Err = err
		return res
	}
	res.Warnings = len(p.Warnings())
	return res
}

// fragments loads the fragment files of in, then parses its inline XML
func (r *Runner) fragments(s *Suite, in Input) ([]*xml.Element, error) {
	var out []*xml.Element
	for _, name := range in.Fragments {
		elems, err := r.cache.Load(s.FragmentPath(name))
		if err != nil {
			return nil, err
		}
		out = append(out, elems...)
	}
	for i, text := range in.XML {
		elems, err := xml.ParseElements(strings.NewReader(text))
		if err != nil {
			return nil, odfgen.WithContext(err, "parse inline xml", map[string]interface{}{"index": i})
		}
		out = append(out, elems...)
	}
	return out, nil
}

// CacheSize returns the number of fragment files currently cached
func (r *Runner) CacheSize() int {
	return r.cache.Size()
}
