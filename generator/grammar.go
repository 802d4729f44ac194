package generator

// Grammar carries the singular or plural wording for the tenant side.
// One value is chosen per document so no clause mixes both forms.
type Grammar struct {
	Plural bool

	Tenant      string // EL LOCATARIO
	TenantLower string // el locatario
	OfTenant    string // del locatario
	Designated  string // denominado
	Who         string // quien
	Binds       string // se obliga
	Must        string // deberá
	May         string // podrá
	Inhabits    string // habitará
	Receives    string // recibe
	Received    string // recibió
	Their       string // su
	Household   string // su grupo conviviente
	Pays        string // abona
	Them        string // le
	Regularizes string // regularice
	Returns     string // restituyere
}

var (
	singularGrammar = Grammar{
		Tenant:      "EL LOCATARIO",
		TenantLower: "el locatario",
		OfTenant:    "del locatario",
		Designated:  "denominado",
		Who:         "quien",
		Binds:       "se obliga",
		Must:        "deberá",
		May:         "podrá",
		Inhabits:    "habitará",
		Receives:    "recibe",
		Received:    "recibió",
		Their:       "su",
		Household:   "su grupo conviviente",
		Pays:        "abona",
		Them:        "le",
		Regularizes: "regularice",
		Returns:     "restituyere",
	}
	pluralGrammar = Grammar{
		Plural:      true,
		Tenant:      "LOS LOCATARIOS",
		TenantLower: "los locatarios",
		OfTenant:    "de los locatarios",
		Designated:  "denominados",
		Who:         "quienes",
		Binds:       "se obligan",
		Must:        "deberán",
		May:         "podrán",
		Inhabits:    "habitarán",
		Receives:    "reciben",
		Received:    "recibieron",
		Their:       "sus",
		Household:   "sus grupos convivientes",
		Pays:        "abonan",
		Them:        "les",
		Regularizes: "regularicen",
		Returns:     "restituyeren",
	}
)

// GrammarFor returns the plural forms when plural is set
func GrammarFor(plural bool) Grammar {
	if plural {
		return pluralGrammar
	}
	return singularGrammar
}
