// Package catalog holds the immutable feature and board registries consumed
// by the generation pipeline. Both catalogs are constructed once at startup
// and are read-only afterwards, so they are safe for concurrent readers.
package catalog

import (
	"github.com/picoforge/picoforge/internal/errors"
)

// Fragment is the example code a feature contributes to the generated entry
// point: file-scope defines and statements placed inside main().
type Fragment struct {
	Defines      []string `yaml:"defines"`
	Initialisers []string `yaml:"initialisers"`
}

// Empty reports whether the fragment contributes no code at all.
func (f Fragment) Empty() bool {
	return len(f.Defines) == 0 && len(f.Initialisers) == 0
}

// Feature is a selectable SDK capability. Immutable after catalog
// construction.
type Feature struct {
	// ID is the unique identifier used on the command line.
	ID string `yaml:"id"`
	// Label is the human-readable name shown by list output.
	Label string `yaml:"label"`
	// Header is the SDK include path added to the generated source file.
	Header string `yaml:"header"`
	// Libraries are the CMake link libraries the feature contributes,
	// in declaration order.
	Libraries []string `yaml:"libraries"`
	// Fragment is the example code emitted into the entry point.
	Fragment Fragment `yaml:",inline"`
	// Ancillary names an extra file the feature needs in the project root,
	// e.g. the lwipopts.h the lwIP link libraries cannot compile without.
	Ancillary string `yaml:"ancillary"`
	// Conflicts lists feature ids that cannot be selected together with
	// this one. Conflict pairs are symmetric by convention but validation
	// checks both directions.
	Conflicts []string `yaml:"conflicts"`
	// RequiresConsole marks features whose example output is useless
	// without a stdio console, making console mode "none" illegal.
	RequiresConsole bool `yaml:"requires_console"`
	// StdlibExample marks features pulled in by the --examples flag.
	StdlibExample bool `yaml:"stdlib_example"`
}

// ConflictsWith reports whether id appears in the feature's conflict set.
func (f Feature) ConflictsWith(id string) bool {
	for _, c := range f.Conflicts {
		if c == id {
			return true
		}
	}

	return false
}

// FeatureCatalog is the ordered, immutable feature registry. The declaration
// order of All is the tie-break used for deterministic dependency ordering
// downstream, so it is part of the catalog's contract.
type FeatureCatalog struct {
	features []Feature
	index    map[string]int
}

// NewFeatureCatalog builds a catalog from features in declaration order.
// A duplicate id keeps the first declaration's position but takes the later
// definition, which is what overlay files rely on.
func NewFeatureCatalog(features ...Feature) *FeatureCatalog {
	c := &FeatureCatalog{
		index: make(map[string]int, len(features)),
	}
	for _, f := range features {
		if pos, ok := c.index[f.ID]; ok {
			c.features[pos] = f
			continue
		}
		c.index[f.ID] = len(c.features)
		c.features = append(c.features, f)
	}

	return c
}

// Lookup returns the feature for id.
func (c *FeatureCatalog) Lookup(id string) (Feature, error) {
	pos, ok := c.index[id]
	if !ok {
		return Feature{}, errors.NewUnknownFeature(id)
	}

	return c.features[pos], nil
}

// Contains reports whether id is registered.
func (c *FeatureCatalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// All returns every feature in catalog declaration order. The returned slice
// is a copy; the catalog itself is never mutated after construction.
func (c *FeatureCatalog) All() []Feature {
	out := make([]Feature, len(c.features))
	copy(out, c.features)
	return out
}

// StdlibExamples returns the ids of features marked as standard library
// examples, in catalog order.
func (c *FeatureCatalog) StdlibExamples() []string {
	var ids []string
	for _, f := range c.features {
		if f.StdlibExample {
			ids = append(ids, f.ID)
		}
	}

	return ids
}

// Len returns the number of registered features.
func (c *FeatureCatalog) Len() int {
	return len(c.features)
}
