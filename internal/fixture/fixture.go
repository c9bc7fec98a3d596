// Package fixture loads the named path fixtures used by the tests.
//
// A fixture is a YAML document holding two paths in their textual form, the
// options to compare them with and the expected results.
package fixture

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/valentinradu/Pathcut"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var files embed.FS

// Fixture is a pair of paths together with the expected outcome of
// intersecting them.
type Fixture struct {
	Name string `yaml:"name"`
	// Paths holds the paths in their textual form.
	Paths   []string        `yaml:"paths"`
	Options pathcut.Options `yaml:"options,omitempty"`
	// Crossings is the number of distinct points at which the first path
	// crosses the second.
	Crossings int `yaml:"crossings"`
	// Fragments is the number of paths the first path is cut into.
	Fragments int `yaml:"fragments"`
	// Points optionally lists the crossing points in the first path's
	// traversal order.
	Points [][]float64 `yaml:"points,omitempty"`
}

// Load reads the fixture with the given name.
func Load(name string) (*Fixture, error) {
	data, err := files.ReadFile(path.Join("testdata", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %q: %w", name, err)
	}

	var f Fixture
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %q: %w", name, err)
	}
	if f.Name == "" {
		f.Name = name
	}
	if len(f.Paths) != 2 {
		return nil, fmt.Errorf("fixture %q: want 2 paths, got %d", name, len(f.Paths))
	}
	for i, xy := range f.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("fixture %q: point %d has %d coordinates", name, i, len(xy))
		}
	}
	return &f, nil
}

// Names returns the names of all fixtures, sorted.
func Names() []string {
	entries, err := files.ReadDir("testdata")
	if err != nil {
		panic(err)
	}
	var names []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// ParsePaths parses the fixture's paths.
func (f *Fixture) ParsePaths() (pathcut.Path, pathcut.Path, error) {
	p, err := pathcut.ParsePath(f.Paths[0])
	if err != nil {
		return nil, nil, fmt.Errorf("fixture %q: first path: %w", f.Name, err)
	}
	q, err := pathcut.ParsePath(f.Paths[1])
	if err != nil {
		return nil, nil, fmt.Errorf("fixture %q: second path: %w", f.Name, err)
	}
	return p, q, nil
}

// CrossingPoints returns Points as pathcut points.
func (f *Fixture) CrossingPoints() []pathcut.Point {
	if len(f.Points) == 0 {
		return nil
	}
	out := make([]pathcut.Point, len(f.Points))
	for i, xy := range f.Points {
		out[i] = pathcut.Pt(xy[0], xy[1])
	}
	return out
}
