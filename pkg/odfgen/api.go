package odfgen

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen/xml"
)

// Assembler builds ODF packages from a flavor and a list of fragments.
// It holds configuration only; every build gets its own Package, so one
// Assembler may serve concurrent builds that write to different paths.
type Assembler struct {
	config *Config
	logger *log.Logger
}

// New creates an assembler configured from the environment
func New() *Assembler {
	return &Assembler{
		config: NewConfigWithDefaults(ConfigFromEnvironment()),
		logger: GetLogger(),
	}
}

// NewWithConfig creates an assembler with a custom configuration.
// Unset fields take their default values.
func NewWithConfig(config *Config) (*Assembler, error) {
	config = NewConfigWithDefaults(config)
	if err := config.Validate(); err != nil {
		return nil, NewDocumentError("configure", "", err)
	}
	logger := GetLogger().With()
	logger.SetLevel(ParseLogLevel(config.LogLevel))
	return &Assembler{
		config: config,
		logger: logger,
	}, nil
}

// WithLogger returns a copy of the assembler that logs to logger
func (a *Assembler) WithLogger(logger *log.Logger) *Assembler {
	c := *a
	c.logger = logger
	return &c
}

// Config returns a copy of the assembler configuration
func (a *Assembler) Config() Config {
	return *a.config
}

// Build resolves the flavor, builds the skeleton, merges the fragments in
// order and finishes the package. Unsupported fragments are skipped unless
// the assembler runs in strict mode.
func (a *Assembler) Build(flavorID string, fragments []*xml.Element) (*Package, error) {
	flavor, err := ResolveFlavor(flavorID)
	if err != nil {
		return nil, err
	}

	p := BuildSkeleton(flavor, a.config)
	p.logger = a.logger.With("flavor", flavor.ID)

	if err := p.MergeAll(fragments); err != nil {
		return nil, err
	}
	p.Finish()
	return p, nil
}

// Generate builds a package and writes it to path
func (a *Assembler) Generate(path, flavorID string, fragments []*xml.Element) (*Package, error) {
	start := time.Now()

	p, err := a.Build(flavorID, fragments)
	if err != nil {
		return nil, err
	}
	if err := WritePackage(path, p); err != nil {
		return nil, err
	}

	a.logger.Info("generated package",
		"path", path,
		"mimetype", p.Flavor.MimeType(),
		"fragments", len(fragments),
		"warnings", len(p.Warnings()),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return p, nil
}

// Generate builds a package with a default assembler and writes it to path
func Generate(path, flavorID string, fragments ...*xml.Element) error {
	_, err := New().Generate(path, flavorID, fragments)
	return err
}
