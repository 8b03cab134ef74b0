package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// PriceToAmount mengubah label harga ("₹1200", "₹1,500") menjadi angka
// Return 0 jika tidak ada digit sama sekali
func PriceToAmount(price string) int64 {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		if r == '.' {
			return r
		}
		return -1
	}, price)

	if i := strings.IndexByte(digits, '.'); i >= 0 {
		digits = digits[:i] // Paisa dibuang
	}

	val, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0 // Return 0 jika gagal parsing
	}
	return val
}

// SlotFromNextAvailable mengambil jam dari label "Today, 4:15 PM"
func SlotFromNextAvailable(nextAvailable string) string {
	parts := strings.SplitN(nextAvailable, ", ", 2)
	if len(parts) == 2 && parts[1] != "" {
		return parts[1]
	}
	return "10:00 AM"
}
