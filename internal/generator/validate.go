package generator

import (
	"github.com/picoforge/picoforge/internal/catalog"
	"github.com/picoforge/picoforge/internal/errors"
)

// ValidatedConfig wraps a ProjectConfig that passed validation. Resolution
// only accepts a ValidatedConfig, so an unchecked configuration cannot reach
// the resolver by construction. The selected features are stored in catalog
// order, which fixes the dependency ordering downstream.
type ValidatedConfig struct {
	cfg      ProjectConfig
	board    catalog.Board
	selected []catalog.Feature
}

// Config returns the wrapped project configuration.
func (v ValidatedConfig) Config() ProjectConfig { return v.cfg }

// Board returns the resolved board metadata.
func (v ValidatedConfig) Board() catalog.Board { return v.board }

// Selected returns the selected features in catalog order.
func (v ValidatedConfig) Selected() []catalog.Feature {
	out := make([]catalog.Feature, len(v.selected))
	copy(out, v.selected)
	return out
}

// Validate checks cfg against the catalogs. Rules run in a fixed order and
// the first violation is reported, so error output is deterministic for a
// given configuration:
//
//  1. the board must exist
//  2. every selected feature must exist
//  3. no two selected features may conflict (first pair in catalog order)
//  4. console mode none is illegal if a selected feature needs a console
//  5. C++ sub-options require the C++ dialect
func Validate(cfg ProjectConfig, features *catalog.FeatureCatalog, boards *catalog.BoardCatalog) (ValidatedConfig, error) {
	board, err := boards.Lookup(cfg.Board)
	if err != nil {
		return ValidatedConfig{}, err
	}

	selectedIDs := make(map[string]bool, len(cfg.Features))
	for _, id := range cfg.Features {
		if !features.Contains(id) {
			return ValidatedConfig{}, errors.NewUnknownFeature(id)
		}
		selectedIDs[id] = true
	}

	// Selection is a set: duplicates collapse, and iteration below runs in
	// catalog order regardless of the order features were requested in.
	var selected []catalog.Feature
	for _, f := range features.All() {
		if selectedIDs[f.ID] {
			selected = append(selected, f)
		}
	}

	for i, a := range selected {
		for _, b := range selected[i+1:] {
			if a.ConflictsWith(b.ID) || b.ConflictsWith(a.ID) {
				return ValidatedConfig{}, errors.NewConflictingFeatures(a.ID, b.ID)
			}
		}
	}

	if cfg.Console == ConsoleNone {
		for _, f := range selected {
			if f.RequiresConsole {
				return ValidatedConfig{}, errors.NewConsoleRequired(f.ID)
			}
		}
	}

	if cfg.Dialect != DialectCPP {
		if cfg.CppRTTI {
			return ValidatedConfig{}, errors.NewInvalidOption("cpprtti", "RTTI requires the C++ dialect")
		}
		if cfg.CppExceptions {
			return ValidatedConfig{}, errors.NewInvalidOption("cppexceptions", "exceptions require the C++ dialect")
		}
	}

	return ValidatedConfig{cfg: cfg, board: board, selected: selected}, nil
}
