// Package suite runs batches of package builds described by a TOML file.
//
// A descriptor names an output directory and a list of inputs. Each input
// is built into <output_dir>/<name>.<tag>, where tag is the document-type
// tag of its flavor:
//
//	output_dir = "out"
//	strict = false
//
//	[[input]]
//	name = "bold"
//	flavor = "odt1.2"
//	fragments = ["fragments/bold.xml"]
//	xml = ['''<office:text xmlns:office="urn:oasis:names:tc:opendocument:xmlns:office:1.0"/>''']
//
// Fragment files are resolved relative to the descriptor. Fragments from
// files come before inline ones.
package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/benjaminschreck/go-odfgen/pkg/odfgen"
)

// Suite is a parsed descriptor
type Suite struct {
	OutputDir string  `toml:"output_dir"`
	Strict    bool    `toml:"strict"`
	Inputs    []Input `toml:"input"`

	baseDir string
}

// Input describes one package to build
type Input struct {
	Name      string   `toml:"name"`
	Flavor    string   `toml:"flavor"`
	Fragments []string `toml:"fragments"`
	XML       []string `toml:"xml"`
}

// Load reads and validates the descriptor at path
func Load(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, odfgen.NewDocumentError("open", path, err)
	}
	s, err := Parse(data, filepath.Dir(path))
	if err != nil {
		return nil, odfgen.WithContext(err, "load suite", map[string]interface{}{"path": path})
	}
	return s, nil
}

// Parse decodes and validates a descriptor. Relative paths inside it are
// resolved against baseDir.
func Parse(data []byte, baseDir string) (*Suite, error) {
	var s Suite
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode suite: %w", err)
	}
	s.baseDir = baseDir

	ve := &odfgen.ValidationError{}
	for _, key := range md.Undecoded() {
		ve.Add(key.String(), "unknown key")
	}
	s.validate(ve)
	if err := ve.Err(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Suite) validate(ve *odfgen.ValidationError) {
	if len(s.Inputs) == 0 {
		ve.Add("input", "suite has no inputs")
	}

	seen := make(map[string]int)
	for i, in := range s.Inputs {
		field := fmt.Sprintf("input[%d]", i)

		switch {
		case strings.TrimSpace(in.Name) == "":
			ve.Add(field+".name", "is required")
		case strings.ContainsAny(in.Name, `/\`) || in.Name == "." || in.Name == "..":
			ve.Add(field+".name", "must be a plain file name")
		default:
			if j, dup := seen[in.Name]; dup {
				ve.Add(field+".name", fmt.Sprintf("duplicates input[%d]", j))
			}
			seen[in.Name] = i
		}

		if in.Flavor == "" {
			ve.Add(field+".flavor", "is required")
		} else if _, err := odfgen.ResolveFlavor(in.Flavor); err != nil {
			ve.Add(field+".flavor", err.Error())
		}

		for k, frag := range in.Fragments {
			if strings.TrimSpace(frag) == "" {
				ve.Add(fmt.Sprintf("%s.fragments[%d]", field, k), "is empty")
			}
		}
	}
}

// Dir returns the directory relative paths are resolved against
func (s *Suite) Dir() string {
	return s.baseDir
}

// OutputPath returns the directory packages are written to
func (s *Suite) OutputPath() string {
	return s.resolve(s.OutputDir)
}

// FragmentPath resolves a fragment file name from the descriptor
func (s *Suite) FragmentPath(name string) string {
	return s.resolve(name)
}

// PackagePath returns where the package for in is written
func (s *Suite) PackagePath(in Input) string {
	ext := "bin"
	if f, err := odfgen.ResolveFlavor(in.Flavor); err == nil {
		ext = f.Extension()
	}
	return filepath.Join(s.OutputPath(), in.Name+"."+ext)
}

func (s *Suite) resolve(p string) string {
	if p == "" {
		p = "."
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.baseDir, p)
}
