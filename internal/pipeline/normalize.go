package pipeline

import (
	"strings"

	"rompdb/internal"
	"rompdb/internal/util"
)

var RequiredColumns = []string{"SAP", "ROMP", "Catalog", "Shipped Qty", "Ship Date", "Carrier"}

// Normalize turns one raw sheet into validated shipment records. Rows
// with a blank Shipped Qty or Ship Date are removed before coercion;
// rows whose ROMP, SAP, or Ship Date fail to coerce are removed after.
// The second return value is how many rows were dropped either way.
// A missing required column is fatal for the whole source.
func Normalize(raw RawTable) ([]internal.ShipmentRecord, int, error) {
	missing := missingColumns(raw.Columns)
	if len(missing) > 0 {
		return nil, 0, &internal.SchemaError{Source: raw.Source, Missing: missing}
	}

	records := make([]internal.ShipmentRecord, 0, len(raw.Rows))
	dropped := 0
	for _, row := range raw.Rows {
		if util.IsBlank(row["Shipped Qty"]) || util.IsBlank(row["Ship Date"]) {
			dropped++
			continue
		}

		romp, rompOK := util.NormalizeRomp(row["ROMP"])
		sap, sapOK := util.NormalizeSAP(row["SAP"])
		shipDate, dateOK := util.ParseShipDate(row["Ship Date"])
		if !rompOK || !sapOK || !dateOK {
			dropped++
			continue
		}

		records = append(records, internal.ShipmentRecord{
			SAP:        sap,
			Romp:       romp,
			Catalog:    strings.TrimSpace(row["Catalog"]),
			ShippedQty: strings.TrimSpace(row["Shipped Qty"]),
			ShipDate:   shipDate,
			Carrier:    strings.TrimSpace(row["Carrier"]),
		})
	}

	return dedupeRecords(records), dropped, nil
}

func missingColumns(columns []string) []string {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}
	missing := []string{}
	for _, required := range RequiredColumns {
		if _, ok := present[required]; !ok {
			missing = append(missing, required)
		}
	}
	return missing
}

func dedupeRecords(records []internal.ShipmentRecord) []internal.ShipmentRecord {
	seen := map[internal.ShipmentRecord]struct{}{}
	out := make([]internal.ShipmentRecord, 0, len(records))
	for _, r := range records {
		if _, exists := seen[r]; exists {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
