package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"
)

const isoLayout = "2006-01-02T15:04:05"

// maxSerial is 9999-12-31 in the 1900 date system.
const maxSerial = 2958465

// offsetZone is a location no naive text can be read in without moving its instant.
var offsetZone = time.FixedZone("", 90*60)

// ToISO converts a date-like cell to an ISO-8601 timestamp.
//
// Numbers are spreadsheet serial dates. Text goes through dateparse, month first
// and then day first when the month is out of range. Anything else is nil.
func ToISO(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || f <= 0 || f > maxSerial {
			return nil
		}
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return nil
		}
		iso := FormatISO(t.Round(time.Second), false)
		return &iso
	}

	t, err := parseText(s, time.UTC)
	if err != nil {
		return nil
	}
	// Text carrying a zone names the same instant whatever location it is read in.
	shifted, err := parseText(s, offsetZone)
	zoned := err == nil && shifted.Equal(t)

	iso := FormatISO(t, zoned)
	return &iso
}

func parseText(s string, loc *time.Location) (time.Time, error) {
	t, err := dateparse.ParseIn(s, loc, dateparse.PreferMonthFirst(true))
	if err != nil && strings.Contains(err.Error(), "month out of range") {
		return dateparse.ParseIn(s, loc, dateparse.PreferMonthFirst(false))
	}
	return t, err
}

// FormatISO renders t as "2006-01-02T15:04:05", adding microseconds when non-zero
// and the zone offset when zoned is set.
func FormatISO(t time.Time, zoned bool) string {
	out := t.Format(isoLayout)
	if micros := t.Nanosecond() / 1000; micros != 0 {
		out += fmt.Sprintf(".%06d", micros)
	}
	if zoned {
		out += t.Format("-07:00")
	}
	return out
}
