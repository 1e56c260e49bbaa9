// Package currency formats Vietnamese dong amounts the way the shop's
// screens display them: dot thousands separators and a VND suffix.
package currency

import (
	"github.com/dustin/go-humanize"
)

// FormatVND formats an amount as Vietnamese dong.
func FormatVND(amount float64) string {
	return FormatNumber(amount) + " VND"
}

// FormatNumber formats a number with vi-VN thousands separators and no
// currency suffix.
func FormatNumber(amount float64) string {
	return humanize.FormatFloat("#.###,", amount)
}
