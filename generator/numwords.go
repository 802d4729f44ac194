package generator

import "strings"

var (
	unitWords    = [...]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	teenWords    = [...]string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISÉIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	tenWords     = [...]string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	hundredWords = [...]string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// Spell writes n out in uppercase Spanish as used in lease amounts
// ("CIENTO CINCUENTA MIL"). Negative values are spelled by magnitude.
// Magnitudes above MaxAmount return PlaceholderAmount.
func Spell(n int64) string {
	if n > MaxAmount || n < -MaxAmount {
		return PlaceholderAmount
	}
	if n < 0 {
		n = -n
	}
	switch n {
	case 0:
		return "CERO"
	case 100:
		return "CIEN"
	}

	var parts []string

	if n >= 1_000_000 {
		millions := n / 1_000_000
		if millions == 1 {
			parts = append(parts, "UN MILLÓN")
		} else {
			parts = append(parts, Spell(millions)+" MILLONES")
		}
		n %= 1_000_000
	}

	if n >= 1000 {
		thousands := n / 1000
		if thousands == 1 {
			parts = append(parts, "MIL")
		} else {
			parts = append(parts, Spell(thousands)+" MIL")
		}
		n %= 1000
	}

	switch {
	case n == 100:
		parts = append(parts, "CIEN")
		n = 0
	case n > 100:
		parts = append(parts, hundredWords[n/100])
		n %= 100
	}

	switch {
	case n >= 20:
		if unit := n % 10; unit == 0 {
			parts = append(parts, tenWords[n/10])
		} else {
			parts = append(parts, tenWords[n/10]+" Y "+unitWords[unit])
		}
	case n >= 10:
		parts = append(parts, teenWords[n-10])
	case n > 0:
		parts = append(parts, unitWords[n])
	}

	return strings.Join(parts, " ")
}
