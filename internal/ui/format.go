// Package ui renders account snapshots and session state into plain-text
// screens. All functions are pure: same inputs, same output, no mutation.
//
// Formatting follows es-CL conventions: CLP amounts with dot thousand
// separators and no decimals, long dates as "2 de enero de 2026".
package ui

import (
	"strconv"
	"strings"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// FormatCLP renders an integer peso amount, e.g. 1234567 -> "$1.234.567".
func FormatCLP(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.WriteString(sign)
	b.WriteByte('$')
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatLongDate renders t as an es-CL long date, e.g. "29 de febrero de 2024".
func FormatLongDate(t time.Time) string {
	return strconv.Itoa(t.Day()) + " de " + spanishMonths[t.Month()-1] + " de " + strconv.Itoa(t.Year())
}
