package fixture

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/carelink/pkg/sanitizer"
)

//go:embed suites/*.yaml
var embedded embed.FS

// Default returns the suites shipped with the package, sorted by name.
func Default() ([]Suite, error) {
	sub, err := fs.Sub(embedded, "suites")
	if err != nil {
		return nil, err
	}
	return Load(sub, "*.yaml")
}

// Load decodes every file in fsys matching pattern. Suite names must be unique.
func Load(fsys fs.FS, pattern string) ([]Suite, error) {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	suites := make([]Suite, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, name := range files {
		s, err := loadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[s.Name]; ok {
			return nil, fmt.Errorf("%w: suite %q defined in %s and %s", ErrInvalidSuite, s.Name, prev, name)
		}
		seen[s.Name] = name
		suites = append(suites, s)
	}

	slices.SortFunc(suites, func(a, b Suite) int {
		return strings.Compare(a.Name, b.Name)
	})
	return suites, nil
}

func loadFile(fsys fs.FS, name string) (Suite, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return Suite{}, err
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return Suite{}, fmt.Errorf("%s: %w", path.Base(name), err)
	}
	return s, nil
}

// Decode reads a single suite document. Unknown keys are rejected.
func Decode(r io.Reader) (Suite, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Suite
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Suite{}, fmt.Errorf("%w: empty document", ErrInvalidSuite)
		}
		return Suite{}, errors.Join(ErrInvalidSuite, err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}
	return s, nil
}

// Find returns the suite with the given name. Names are matched case-insensitively.
func Find(suites []Suite, name string) (Suite, error) {
	name = sanitizer.TrimToLower(name)
	for _, s := range suites {
		if strings.ToLower(s.Name) == name {
			return s, nil
		}
	}
	return Suite{}, fmt.Errorf("%w: %q", ErrSuiteNotFound, name)
}

// Names returns the names of the given suites.
func Names(suites []Suite) []string {
	names := make([]string, 0, len(suites))
	for _, s := range suites {
		names = append(names, s.Name)
	}
	return names
}
