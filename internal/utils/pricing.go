package utils

import (
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate accepts the remote API's yyyy-mm-dd dates, with or without a
// time part
func ParseDate(dateStr string) (time.Time, error) {
	s := strings.TrimSpace(dateStr)
	if len(s) >= len(dateLayout) {
		if t, err := time.Parse(dateLayout, s[:len(dateLayout)]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %q", dateStr)
}

// FormatDate renders a remote date for display, falling back to the raw text
func FormatDate(dateStr string) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("02 Jan 2006")
}

// FormatOptionalDate renders a nullable date, using "-" when absent
func FormatOptionalDate(dateStr *string) string {
	if dateStr == nil || *dateStr == "" {
		return "-"
	}
	return FormatDate(*dateStr)
}

// FormatPrice renders an amount in euros with two decimals
func FormatPrice(amount float64) string {
	return fmt.Sprintf("%.2f €", amount)
}

// LineTotal is the provisional price of a cart line: the base daily price
// times the number of days. Tiered daily prices are applied remotely.
func LineTotal(basePrice float64, days int) float64 {
	return basePrice * float64(days)
}
