package pipeline

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawTable is one workbook's first sheet: a header plus rows keyed by
// column name, values still in their raw string form.
type RawTable struct {
	Source  string
	Columns []string
	Rows    []map[string]string
}

func LoadXLSX(path string) (RawTable, error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return RawTable{}, err
	}
	return parseWorkbook(filepath.Base(path), blob)
}

func parseWorkbook(source string, content []byte) (RawTable, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return RawTable{}, fmt.Errorf("%s: %w", source, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return RawTable{Source: source}, nil
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return RawTable{}, fmt.Errorf("%s: %w", source, err)
	}
	if len(rows) == 0 {
		return RawTable{Source: source}, nil
	}

	columns := make([]string, 0, len(rows[0]))
	for _, cell := range rows[0] {
		columns = append(columns, normalizeSpaces(cell))
	}

	out := RawTable{Source: source, Columns: columns}
	for _, row := range rows[1:] {
		record := make(map[string]string, len(columns))
		empty := true
		for i, col := range columns {
			if col == "" {
				continue
			}
			value := ""
			if i < len(row) {
				value = row[i]
			}
			record[col] = value
			if strings.TrimSpace(value) != "" {
				empty = false
			}
		}
		if empty {
			continue
		}
		out.Rows = append(out.Rows, record)
	}
	return out, nil
}

// DiscoverSources lists the workbook files under dir in sorted filename
// order so rebuilds are reproducible.
func DiscoverSources(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func normalizeSpaces(input string) string {
	return strings.TrimSpace(regexp.MustCompile(`\s+`).ReplaceAllString(input, " "))
}
