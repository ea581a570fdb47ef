package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DayLayout is the calendar-date format used across the backend API.
const DayLayout = "2006-01-02"

// ParseAmount parses a decimal value from a JSON-ish scalar: a bare number,
// a quoted decimal string, or null. It is the single place that defines the
// lenient numeric policy: anything unparseable yields a zero value and
// ok=false so a bad row contributes nothing instead of aborting a whole
// aggregation.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, `"`)
	if s == "" || s == "null" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// Amount is a decimal that tolerates both string and numeric JSON encodings
// and never fails to unmarshal; malformed values decode to zero.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implements json.Unmarshaler with the ParseAmount policy.
func (a *Amount) UnmarshalJSON(data []byte) error {
	d, ok := ParseAmount(string(data))
	if !ok {
		a.Decimal = decimal.Decimal{}
		return nil
	}
	a.Decimal = d
	return nil
}

// ParseDay parses a calendar date in DayLayout. Longer values (timestamps)
// are truncated to their date part first.
func ParseDay(value string) (time.Time, bool) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, false
	}
	if len(s) > len(DayLayout) {
		s = s[:len(DayLayout)]
	}
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
