package pipeline

import (
	"sort"

	"rompdb/internal"
	"rompdb/internal/database"
)

// Build assembles the canonical table from the given workbook paths.
// Sources are processed in lexicographic path order; a SchemaError from
// any source aborts the build so a partial table is never returned.
func Build(paths []string) (*database.Table, internal.BuildStats, error) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	stats := internal.BuildStats{Dropped: map[string]int{}}
	all := []internal.ShipmentRecord{}
	for _, path := range sorted {
		raw, err := LoadXLSX(path)
		if err != nil {
			return nil, internal.BuildStats{}, err
		}
		records, dropped, err := Normalize(raw)
		if err != nil {
			return nil, internal.BuildStats{}, err
		}
		stats.Files++
		if dropped > 0 {
			stats.Dropped[path] += dropped
		}
		all = append(all, records...)
	}

	all = dedupeRecords(all)
	stats.Rows = len(all)
	return database.New(all), stats, nil
}

// BuildDir discovers every workbook under dir and builds from those.
// An empty directory yields an empty table, not an error.
func BuildDir(dir string) (*database.Table, internal.BuildStats, error) {
	paths, err := DiscoverSources(dir)
	if err != nil {
		return nil, internal.BuildStats{}, err
	}
	return Build(paths)
}
