package generator

import (
	"strings"
	"unicode"

	"github.com/AnTengye/contratos/model"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxAddressInFilename = 30

// SuggestFilename derives the download name of a contract PDF:
// Contrato_<address>_<First_Last>_<YYYYMMDD>.pdf. Accents are folded and
// any other non-alphanumeric character becomes an underscore.
func SuggestFilename(agg *model.ContractAggregate) string {
	if agg == nil {
		agg = &model.ContractAggregate{}
	}
	address := sanitize(PropertyAddress(agg.Property))
	if len(address) > maxAddressInFilename {
		address = address[:maxAddressInFilename]
	}

	tenant := "Inquilino"
	if titular := ResolveParties(agg).Titular; titular != nil {
		tenant = sanitize(titular.FirstName + "_" + titular.LastName)
	}

	return "Contrato_" + address + "_" + tenant + "_" + strings.ReplaceAll(agg.StartDate, "-", "") + ".pdf"
}

func sanitize(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err != nil {
		folded = s
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, folded)
}
