package document

import (
	"fmt"
	"sort"

	"github.com/MKhiriev/go-utils/merge"
)

// LoadStrategies reads a per-path strategy table from path, decoding by
// the file's extension.
//
// Both flat dotted keys ({"theme.colors.primary": "replace"}) and nested
// tables are accepted; nested keys are flattened into dotted paths. The
// values must be strings.
//
// Entries whose tag is not a recognized strategy are kept in the table
// (the engine treats them as no-match) and their paths are returned
// sorted in unknown, so the caller can warn about probable typos.
func LoadStrategies(path string) (table merge.StrategyTable, unknown []string, err error) {
	doc, err := Load(path)
	if err != nil {
		return nil, nil, err
	}

	table = merge.StrategyTable{}
	if err := flattenStrategies(doc, "", table); err != nil {
		return nil, nil, err
	}

	for p, s := range table {
		if !s.Valid() {
			unknown = append(unknown, p)
		}
	}
	sort.Strings(unknown)

	return table, unknown, nil
}

// flattenStrategies walks nested maps, joining keys with dots, and records
// every string leaf as a strategy entry.
func flattenStrategies(node map[string]any, prefix string, table merge.StrategyTable) error {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			table[path] = merge.Strategy(v)
		case map[string]any:
			if err := flattenStrategies(v, path, table); err != nil {
				return err
			}
		default:
			return fmt.Errorf("strategy entry %q: expected a strategy name, got %T", path, value)
		}
	}

	return nil
}
