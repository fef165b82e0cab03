package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// Round2 rounds to two decimals; used for occupancy percentages and
// revenue totals so JSON output stays stable.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
