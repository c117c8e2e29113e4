package util

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	digitRun     = regexp.MustCompile(`(\d+)`)
	floatySuffix = regexp.MustCompile(`^\d+\.0$`)
)

func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// NormalizeRomp extracts the first digit run and zero-pads it to two
// characters, so "ROMP3" and "03" both come out as "03".
func NormalizeRomp(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return "", false
	}
	m := digitRun.FindString(s)
	if m == "" {
		return "", false
	}
	if len(m) < 2 {
		m = strings.Repeat("0", 2-len(m)) + m
	}
	return m, true
}

// NormalizeSAP coerces the mixed encodings seen in exported workbooks
// ("40", "40.0", "000010") to one integer identifier.
func NormalizeSAP(value string) (int, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return 0, false
	}
	if floatySuffix.MatchString(s) {
		s = s[:len(s)-2]
	}
	num, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return int(num), true
}

// Date layouts tried in order. Ambiguous slash/dash dates are read
// month-first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"02-Jan-2006",
	"2-Jan-06",
}

// excelEpoch is day zero of the 1900 date system used by xlsx cells
// that reach us as raw serial numbers.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

func ParseShipDate(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return dateOnly(t), true
		}
	}

	// Unformatted date cells surface as serial numbers.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= 1 && serial < 300000 {
			return dateOnly(excelEpoch.AddDate(0, 0, int(serial))), true
		}
	}

	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
