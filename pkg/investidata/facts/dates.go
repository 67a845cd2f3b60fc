package facts

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/xuri/excelize/v2"
)

// Excel serial day numbers accepted as dates (1900-01-01 .. 9999-12-31).
const (
	minExcelSerial = 1
	maxExcelSerial = 2958465
)

// UFED exports append the zone as "(UTC-5)" or "(UTC+0)".
var zoneSuffixRE = regexp.MustCompile(`\s*\(UTC[^)]*\)\s*$`)

// DateParser parses cell values into timestamps on a best-effort basis.
type DateParser struct {
	// Layouts are tried in order before the generic parser.
	Layouts []string
	// Location interprets timestamps without a zone. Nil means UTC.
	Location *time.Location
}

// Parse converts a cell value to a time. Date cells carry their wall
// clock, read in Location. Numbers are read as Excel serial dates, Unix
// seconds or Unix milliseconds depending on magnitude; strings go through
// Layouts, then dateparse, always day first.
func (p DateParser) Parse(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return p.wallClock(x), true
	case int64:
		return p.parseNumber(float64(x))
	case float64:
		return p.parseNumber(x)
	case string:
		return p.parseString(x)
	default:
		return time.Time{}, false
	}
}

func (p DateParser) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// wallClock keeps the clock reading of t and places it in Location.
func (p DateParser) wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), p.location())
}

func (p DateParser) parseNumber(f float64) (time.Time, bool) {
	switch {
	case f >= minExcelSerial && f <= maxExcelSerial:
		t, err := excelize.ExcelDateToTime(f, false)
		if err != nil {
			return time.Time{}, false
		}
		return p.wallClock(t), true
	case f >= 1e9 && f < 1e10:
		return time.Unix(int64(f), 0).In(p.location()), true
	case f >= 1e12 && f < 1e13:
		return time.UnixMilli(int64(f)).In(p.location()), true
	}
	return time.Time{}, false
}

func (p DateParser) parseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(zoneSuffixRE.ReplaceAllString(s, ""))
	if s == "" {
		return time.Time{}, false
	}
	loc := p.location()
	for _, layout := range p.Layouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	t, err := dateparse.ParseIn(s, loc, dateparse.PreferMonthFirst(false))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
