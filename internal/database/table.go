package database

import (
	"sort"
	"strings"
	"time"

	"rompdb/internal"
)

// Table is the canonical in-memory shipment collection. It is immutable
// after construction; every query returns a fresh slice and reads need
// no locking.
type Table struct {
	records []internal.ShipmentRecord
}

func New(records []internal.ShipmentRecord) *Table {
	return &Table{records: records}
}

func (t *Table) Len() int {
	return len(t.records)
}

func (t *Table) Records() []internal.ShipmentRecord {
	out := make([]internal.ShipmentRecord, len(t.records))
	copy(out, t.records)
	return out
}

func (t *Table) FilterByRomp(romp string) []internal.ShipmentRecord {
	return t.filter(func(r internal.ShipmentRecord) bool {
		return r.Romp == romp
	})
}

func (t *Table) FilterByRompAndSAP(romp string, sap int) []internal.ShipmentRecord {
	return t.filter(func(r internal.ShipmentRecord) bool {
		return r.Romp == romp && r.SAP == sap
	})
}

func (t *Table) FilterByRompAndCarrier(romp, carrier string) []internal.ShipmentRecord {
	want := strings.TrimSpace(carrier)
	return t.filter(func(r internal.ShipmentRecord) bool {
		return r.Romp == romp && strings.TrimSpace(r.Carrier) == want
	})
}

func (t *Table) FilterByRompAndDate(romp string, day time.Time) []internal.ShipmentRecord {
	y, m, d := day.Date()
	return t.filter(func(r internal.ShipmentRecord) bool {
		ry, rm, rd := r.ShipDate.Date()
		return r.Romp == romp && ry == y && rm == m && rd == d
	})
}

// DistinctCarriers lists the non-empty carriers seen for one ROMP,
// sorted for use in a selection control.
func (t *Table) DistinctCarriers(romp string) []string {
	seen := map[string]struct{}{}
	for _, r := range t.records {
		if r.Romp != romp {
			continue
		}
		carrier := strings.TrimSpace(r.Carrier)
		if carrier == "" {
			continue
		}
		seen[carrier] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for carrier := range seen {
		out = append(out, carrier)
	}
	sort.Strings(out)
	return out
}

// DateRange reports the earliest and latest ship dates for one ROMP.
// ok is false when the ROMP has no dated rows.
func (t *Table) DateRange(romp string) (min, max time.Time, ok bool) {
	for _, r := range t.records {
		if r.Romp != romp || r.ShipDate.IsZero() {
			continue
		}
		if !ok {
			min, max, ok = r.ShipDate, r.ShipDate, true
			continue
		}
		if r.ShipDate.Before(min) {
			min = r.ShipDate
		}
		if r.ShipDate.After(max) {
			max = r.ShipDate
		}
	}
	return min, max, ok
}

// SortForListing orders records by Ship Date, then SAP, then Catalog,
// all ascending, with undated records last. The input is not modified.
func SortForListing(records []internal.ShipmentRecord) []internal.ShipmentRecord {
	out := make([]internal.ShipmentRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.ShipDate.IsZero() != b.ShipDate.IsZero() {
			return !a.ShipDate.IsZero()
		}
		if !a.ShipDate.Equal(b.ShipDate) {
			return a.ShipDate.Before(b.ShipDate)
		}
		if a.SAP != b.SAP {
			return a.SAP < b.SAP
		}
		return a.Catalog < b.Catalog
	})
	return out
}

func (t *Table) filter(keep func(internal.ShipmentRecord) bool) []internal.ShipmentRecord {
	out := []internal.ShipmentRecord{}
	for _, r := range t.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
