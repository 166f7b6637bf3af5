package formatting

import (
	"fmt"
	"math"
	"strconv"
)

// FormatPrice renders an amount in dollars rounded to cents.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPriceShort drops the cents when they are zero.
func FormatPriceShort(amount float64) string {
	cents := math.Round(amount * 100)
	if math.Mod(cents, 100) == 0 {
		return fmt.Sprintf("$%.0f", cents/100)
	}
	return fmt.Sprintf("$%.2f", cents/100)
}

// FormatPercent renders a fill percentage without trailing zeros: 25%, 33.33%.
func FormatPercent(value float64) string {
	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + "%"
}
