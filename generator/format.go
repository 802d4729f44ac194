package generator

import (
	"math"
	"strconv"
	"time"

	"github.com/AnTengye/contratos/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateLayout      = "2006-01-02"
	datePlaceholder = "[FECHA]"
)

var pesos = message.NewPrinter(language.MustParse("es-AR"))

var monthNames = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// MaxAmount is the largest magnitude Spell writes out
const MaxAmount = model.MaxAmount

// FormatCurrency renders an ARS amount without decimals, e.g. "$ 150.000".
// Amounts beyond MaxAmount render as "$ [MONTO]".
func FormatCurrency(amount float64) string {
	n, ok := roundAmount(amount)
	if !ok {
		return "$ " + PlaceholderAmount
	}
	return "$ " + pesos.Sprintf("%d", n)
}

// SpellAmount spells the rounded amount, or [MONTO] when it cannot be spelled
func SpellAmount(amount float64) string {
	n, ok := roundAmount(amount)
	if !ok {
		return PlaceholderAmount
	}
	return Spell(n)
}

// FormatDate turns a YYYY-MM-DD date into DD/MM/YYYY, or a visible
// placeholder when the date is missing or malformed.
func FormatDate(date string) string {
	t, ok := parseDate(date)
	if !ok {
		return datePlaceholder
	}
	return t.Format("02/01/2006")
}

// MonthName returns the lowercase Spanish month name
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}

func parseDate(date string) (time.Time, bool) {
	if date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// monthsBetween uses the 30-day average month of the printed contracts
func monthsBetween(start, end string) (int64, bool) {
	s, ok := parseDate(start)
	if !ok {
		return 0, false
	}
	e, ok := parseDate(end)
	if !ok {
		return 0, false
	}
	days := e.Sub(s).Hours() / 24
	return int64(math.Round(days / 30)), true
}

func roundAmount(amount float64) (int64, bool) {
	r := math.Round(amount)
	if math.IsNaN(r) || math.Abs(r) > MaxAmount {
		return 0, false
	}
	return int64(r), true
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
