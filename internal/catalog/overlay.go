package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the on-disk shape of a catalog overlay.
type overlayFile struct {
	Features []Feature `yaml:"features"`
}

// LoadOverlay reads a YAML catalog overlay and merges it over base. Entries
// whose id already exists replace the built-in definition but keep its
// catalog position; new entries are appended in file order, so overlays stay
// deterministic across runs.
func LoadOverlay(base *FeatureCatalog, path string) (*FeatureCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog overlay %s: %w", path, err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing catalog overlay %s: %w", path, err)
	}

	merged := base.All()
	for _, f := range overlay.Features {
		if f.ID == "" {
			return nil, fmt.Errorf("catalog overlay %s: feature entry without id", path)
		}
		merged = append(merged, f)
	}

	// NewFeatureCatalog resolves duplicate ids in favour of the overlay
	// definition while preserving the original position.
	return NewFeatureCatalog(merged...), nil
}
