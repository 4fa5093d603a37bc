package main

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// maxFractionDigits keeps conversion results readable without hiding the
// digits of exact constants such as 1.609344.
const maxFractionDigits = 9

// numberPrinter formats values with the grouping and decimal separators of a
// locale.
type numberPrinter struct {
	p *message.Printer
}

func newNumberPrinter(tag language.Tag) *numberPrinter {
	return &numberPrinter{p: message.NewPrinter(tag)}
}

// Value formats a single measurement.
func (np *numberPrinter) Value(v float64) string {
	return np.p.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
}

// Count formats an integer count.
func (np *numberPrinter) Count(n int) string {
	return np.p.Sprint(number.Decimal(n))
}

// Percent formats a ratio in [0, 1] as a percentage.
func (np *numberPrinter) Percent(ratio float64) string {
	return np.p.Sprint(number.Percent(ratio, number.MaxFractionDigits(1)))
}
