package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a raw cell value plus its canonical ISO form. ISO stays empty when
// the raw value was unrecognized, which the validator turns into an error for
// provided-but-unparseable dates.
type Date struct {
	Raw string
	ISO string
}

func (d Date) Provided() bool { return strings.TrimSpace(d.Raw) != "" }
func (d Date) Parsed() bool   { return d.ISO != "" }

// excelEpoch is the zero serial of the 1900 date system (serial 1 is
// 1900-01-01, with the historical Lotus leap-year quirk baked in).
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"2-1-2006",
}

// ParseDate accepts ISO dates, dd/mm/yyyy, dd-mm-yyyy and numeric spreadsheet
// serials. Total: unrecognized input yields an unparsed Date, never an error.
func ParseDate(raw string) Date {
	d := Date{Raw: raw}
	v := strings.TrimSpace(raw)
	if v == "" {
		return d
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			d.ISO = t.Format("2006-01-02")
			return d
		}
	}

	// Spreadsheet serial: days since the 1900-system epoch.
	if serial, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64); err == nil {
		if serial > 0 && serial < 200000 {
			t := excelEpoch.AddDate(0, 0, int(serial))
			d.ISO = t.Format("2006-01-02")
			return d
		}
	}

	return d
}

// FormatISO renders a time as the canonical ISO date string.
func FormatISO(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}
