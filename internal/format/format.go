// Package format renders model quantities for narrative text and console
// output. Workbook cells keep raw numbers and rely on Excel number formats.
package format

import (
	"fmt"
	"math"
)

// Int formats an integer with thousands separators.
func Int(n int) string {
	if n < 0 {
		return "-" + Int(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", Int(n/1000), n%1000)
}

// Money formats a rupee amount rounded to whole units, e.g. "₹1,755,000".
func Money(v float64) string {
	n := int(math.Round(v))
	if n < 0 {
		return "-₹" + Int(-n)
	}
	return "₹" + Int(n)
}

// Pct formats a percentage with two decimals, e.g. "17.59%".
func Pct(v float64) string {
	return fmt.Sprintf("%.2f%%", v)
}
