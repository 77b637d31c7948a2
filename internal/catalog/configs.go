package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ConfigItem is one tunable PICO_CONFIG entry from the SDK's configuration
// table. The generator only lists these; applying them is done by hand in
// the generated CMakeLists.txt.
type ConfigItem struct {
	Name        string
	Location    string
	Description string
	Type        string
	Default     string
	Min         string
	Max         string
}

// LoadConfigItems parses the tab-separated configuration table shipped with
// the SDK (pico_configs.tsv). Missing trailing columns are tolerated since
// the table format has grown over SDK releases.
func LoadConfigItems(path string) ([]ConfigItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config table %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing config table %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// First row is the header.
	items := make([]ConfigItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		item := ConfigItem{Name: field(row, 0), Location: field(row, 1), Description: field(row, 2),
			Type: field(row, 3), Default: field(row, 5), Min: field(row, 7), Max: field(row, 8)}
		if item.Name == "" {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func field(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
