package gristsync

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmdatafocus/payroll_sync/utils"
)

// fieldChanged reports whether an incoming value differs from the stored
// one. ok is false when the two could not be compared (unparseable
// number or date); such fields must be left alone.
func fieldChanged(kind FieldKind, incoming any, stored any) (changed bool, ok bool) {
	incomingAbsent := isAbsent(incoming)
	storedAbsent := isAbsent(stored)
	if incomingAbsent && storedAbsent {
		return false, true
	}
	if incomingAbsent != storedAbsent {
		return true, true
	}

	switch kind {
	case KindNumber:
		a, aok := decimalValue(incoming)
		b, bok := decimalValue(stored)
		if !aok || !bok {
			return false, false
		}
		return !a.Equal(b), true
	case KindDate:
		a, aok := dateValue(incoming)
		b, bok := dateValue(stored)
		if !aok || !bok {
			return false, false
		}
		return !a.Equal(b), true
	}

	return strings.TrimSpace(stringValue(incoming)) != strings.TrimSpace(stringValue(stored)), true
}

// isAbsent treats nil, blank strings and pandas-style "nan" artifacts as
// missing values.
func isAbsent(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(t)
		return s == "" || strings.EqualFold(s, "nan")
	}
	return false
}

func decimalValue(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case decimal.Decimal:
		return t, true
	case float64:
		return decimal.NewFromFloat(t), true
	case float32:
		return decimal.NewFromFloat32(t), true
	case int:
		return decimal.NewFromInt(int64(t)), true
	case int64:
		return decimal.NewFromInt(t), true
	case string:
		d, err := utils.ParseDecimal(t)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	}
	return decimal.Zero, false
}

var storedDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// dateValue normalizes either side to a calendar date. Grist serves date
// columns as Unix seconds; sheet-side values arrive as formatted strings.
func dateValue(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return dateOnly(t), true
	case float64:
		return dateOnly(time.Unix(int64(t), 0).UTC()), true
	case int:
		return dateOnly(time.Unix(int64(t), 0).UTC()), true
	case int64:
		return dateOnly(time.Unix(t, 0).UTC()), true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range storedDateLayouts {
			parsed, err := time.Parse(layout, s)
			if err == nil {
				return dateOnly(parsed), true
			}
		}
	}
	return time.Time{}, false
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case decimal.Decimal:
		return t.String()
	}
	return fmt.Sprintf("%v", v)
}
