package internal

import (
	"fmt"
	"strings"
	"time"
)

// RompOptions is the canonical set of project codes, used by the
// presentation layer to populate its ROMP select control.
var RompOptions = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}

// ShipmentRecord is comparable (ship dates are date-only UTC values),
// so exact-duplicate identity is struct equality over all six fields.
type ShipmentRecord struct {
	SAP        int
	Romp       string
	Catalog    string
	ShippedQty string
	ShipDate   time.Time
	Carrier    string
}

type BuildStats struct {
	Files   int
	Rows    int
	Dropped map[string]int
}

func (s BuildStats) TotalDropped() int {
	total := 0
	for _, n := range s.Dropped {
		total += n
	}
	return total
}

// SchemaError is the only fatal build condition: a source workbook is
// missing one or more required columns.
type SchemaError struct {
	Source  string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s is missing columns: [%s]", e.Source, strings.Join(e.Missing, ", "))
}
