//go:build property
// +build property

package generator

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/picoforge/picoforge/internal/catalog"
)

// conflictFreeIDs is the pool of built-in features with no conflict
// relations, so any subset of them validates.
var conflictFreeIDs = []string{"spi", "i2c", "dma", "pio", "interp", "timer", "watchdog", "clocks", "uart", "gpio"}

func pickFeatures(indices []int) []string {
	var ids []string
	for _, i := range indices {
		ids = append(ids, conflictFreeIDs[i%len(conflictFreeIDs)])
	}
	return ids
}

// TestResolveProperties checks the resolution invariants over random feature
// selections.
func TestResolveProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	features := catalog.DefaultFeatures()
	boards := testBoardsForProps()

	// Property: resolution is deterministic for a fixed validated config.
	properties.Property("resolve is deterministic", prop.ForAll(
		func(indices []int) bool {
			cfg := propConfig(pickFeatures(indices))
			v, err := Validate(cfg, features, boards)
			if err != nil {
				return false
			}

			first := Resolve(v)
			second := Resolve(v)

			if len(first.Libraries) != len(second.Libraries) {
				return false
			}
			for i := range first.Libraries {
				if first.Libraries[i] != second.Libraries[i] {
					return false
				}
			}
			return len(first.Fragments) == len(second.Fragments)
		},
		gen.SliceOf(gen.IntRange(0, 63)),
	))

	// Property: no library appears twice, however features are selected.
	properties.Property("libraries are deduplicated", prop.ForAll(
		func(indices []int) bool {
			cfg := propConfig(pickFeatures(indices))
			v, err := Validate(cfg, features, boards)
			if err != nil {
				return false
			}

			seen := make(map[string]bool)
			for _, lib := range Resolve(v).Libraries {
				if seen[lib] {
					return false
				}
				seen[lib] = true
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 63)),
	))

	// Property: selection order never changes the resolved library order.
	properties.Property("selection order is irrelevant", prop.ForAll(
		func(indices []int) bool {
			ids := pickFeatures(indices)
			reversed := make([]string, len(ids))
			for i, id := range ids {
				reversed[len(ids)-1-i] = id
			}

			a, errA := Validate(propConfig(ids), features, boards)
			b, errB := Validate(propConfig(reversed), features, boards)
			if errA != nil || errB != nil {
				return false
			}

			libsA := Resolve(a).Libraries
			libsB := Resolve(b).Libraries
			if len(libsA) != len(libsB) {
				return false
			}
			for i := range libsA {
				if libsA[i] != libsB[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 63)),
	))

	// Property: every selected feature's libraries appear in the plan.
	properties.Property("dependency completeness", prop.ForAll(
		func(indices []int) bool {
			ids := pickFeatures(indices)
			v, err := Validate(propConfig(ids), features, boards)
			if err != nil {
				return false
			}

			plan := Resolve(v)
			have := make(map[string]bool)
			for _, lib := range plan.Libraries {
				have[lib] = true
			}

			for _, id := range ids {
				f, err := features.Lookup(id)
				if err != nil {
					return false
				}
				for _, lib := range f.Libraries {
					if !have[lib] {
						return false
					}
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 63)),
	))

	properties.TestingRun(t)
}

func propConfig(ids []string) ProjectConfig {
	return ProjectConfig{
		Name:     "propproj",
		Board:    "pico",
		Console:  ConsoleUART,
		Dialect:  DialectC,
		Features: ids,
	}
}

func testBoardsForProps() *catalog.BoardCatalog {
	return catalog.NewBoardCatalog(
		catalog.Board{ID: "pico", Platform: catalog.PlatformRP2040},
	)
}
