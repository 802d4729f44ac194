package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AnTengye/contratos/model"
)

// StandardClauses is the number of fixed clauses in every contract
const StandardClauses = 24

const landlord = "EL LOCADOR"

var ordinals = [...]string{
	"PRIMERO", "SEGUNDO", "TERCERA", "CUARTA", "QUINTA", "SEXTA", "SÉPTIMA", "OCTAVA",
	"NOVENA", "DÉCIMA", "UNDÉCIMA", "DUODÉCIMA", "DECIMOTERCERA", "DECIMOCUARTA",
	"DECIMOQUINTA", "DECIMOSEXTA", "DECIMOSÉPTIMA", "DECIMOCTAVA", "DECIMONOVENA",
	"VIGÉSIMA", "VIGÉSIMA PRIMERA", "VIGÉSIMA SEGUNDA", "VIGÉSIMA TERCERA",
	"VIGÉSIMA CUARTA", "VIGÉSIMA QUINTA", "VIGÉSIMA SEXTA", "VIGÉSIMA SÉPTIMA",
	"VIGÉSIMA OCTAVA", "VIGÉSIMA NOVENA", "TRIGÉSIMA",
}

var adjustmentLabels = map[model.AdjustmentPeriod]string{
	model.AdjustmentQuarterly:  "trimestralmente",
	model.AdjustmentSemiannual: "semestralmente",
	model.AdjustmentAnnual:     "anualmente",
}

// ClauseDefinition is one slot of the standard catalog
type ClauseDefinition struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	body   func(*clauseContext) string
}

// clauseContext is everything a clause body may read
type clauseContext struct {
	agg      *model.ContractAggregate
	parties  Parties
	g        Grammar
	opts     Options
	property string
}

var catalog = [StandardClauses]ClauseDefinition{
	{Number: 1, Label: "PRIMERO", Title: "OBJETO", body: objectClause},
	{Number: 2, Label: "SEGUNDO", Title: "DESTINO", body: func(c *clauseContext) string {
		return fmt.Sprintf("El inmueble objeto de la presente locación será destinado exclusivamente a vivienda familiar de %s y %s, quedando prohibida su utilización para cualquier otro destino distinto al pactado. Queda expresamente prohibido el subalquiler total o parcial del inmueble.",
			c.g.TenantLower, c.g.Household)
	}},
	{Number: 3, Label: "TERCERA", Title: "PRECIO-AJUSTES", body: priceClause},
	{Number: 4, Label: "CUARTA", Title: "PLAZO", body: termClause},
	{Number: 5, Label: "QUINTA", Title: "ENTREGA", body: func(c *clauseContext) string {
		return fmt.Sprintf("%s hace entrega del inmueble a %s en este acto, encontrándose el mismo en perfecto estado de conservación, higiene y funcionamiento de todas sus instalaciones, según consta en el inventario que se adjunta como anexo al presente contrato y que forma parte integrante del mismo.",
			landlord, c.g.TenantLower)
	}},
	{Number: 6, Label: "SEXTA", Title: "PAGO", body: depositClause},
	{Number: 7, Label: "SÉPTIMA", Title: "SERVICIOS", body: func(c *clauseContext) string {
		return fmt.Sprintf("Serán a cargo de %s los gastos correspondientes a consumos de luz, gas, agua, teléfono, internet, cable y cualquier otro servicio domiciliario que se contraten durante la vigencia de la locación. %s %s a mantener dichos servicios al día y a presentar los comprobantes de pago cuando %s lo requiera.",
			c.g.TenantLower, c.g.Tenant, c.g.Binds, landlord)
	}},
	{Number: 8, Label: "OCTAVA", Title: "EXPENSAS", body: func(c *clauseContext) string {
		return fmt.Sprintf("Las expensas ordinarias del consorcio serán a cargo de %s, %s %s abonarlas mensualmente dentro de los plazos establecidos por la administración del edificio. Las expensas extraordinarias serán a cargo de %s. %s %s presentar los comprobantes de pago cuando %s sean requeridos.",
			c.g.TenantLower, c.g.Who, c.g.Must, landlord, c.g.Tenant, c.g.Must, c.g.Them)
	}},
	{Number: 9, Label: "NOVENA", Title: "MEJORAS", body: func(c *clauseContext) string {
		return fmt.Sprintf("%s no %s realizar mejoras, modificaciones o refacciones en el inmueble sin previa autorización escrita de %s. En caso de autorizarse, las mismas quedarán en beneficio del inmueble sin derecho a indemnización alguna. Las mejoras realizadas sin autorización deberán ser removidas al finalizar el contrato a costa de %s.",
			c.g.Tenant, c.g.May, landlord, c.g.TenantLower)
	}},
	{Number: 10, Label: "DÉCIMA", Title: "ESTADO DEL INMUEBLE", body: func(c *clauseContext) string {
		return fmt.Sprintf("%s %s el inmueble en perfecto estado de conservación y funcionamiento, conforme al inventario adjunto, obligándose a mantenerlo en las mismas condiciones y a efectuar a %s cargo las reparaciones menores y locativas que fueren necesarias durante la vigencia del contrato.",
			c.g.Tenant, c.g.Receives, c.g.Their)
	}},
	{Number: 11, Label: "UNDÉCIMA", Title: "DEVOLUCIÓN", body: func(c *clauseContext) string {
		return fmt.Sprintf("Al vencimiento del plazo contractual o ante cualquier causa de rescisión, %s %s restituir el inmueble libre de ocupantes y de cualquier efecto personal, en el mismo estado en que lo %s, salvo el deterioro normal por el uso. La entrega se efectuará mediante acta con verificación del inventario.",
			c.g.Tenant, c.g.Must, c.g.Received)
	}},
	{Number: 12, Label: "DUODÉCIMA", Title: "INTIMACIÓN", body: func(c *clauseContext) string {
		return fmt.Sprintf("La falta de pago de un período mensual de alquiler, expensas o servicios, o el incumplimiento de cualquier obligación del presente contrato, facultará a %s a intimar fehacientemente a %s para que %s %s situación en el plazo de diez (10) días, bajo apercibimiento de resolver el contrato.",
			landlord, c.g.TenantLower, c.g.Regularizes, c.g.Their)
	}},
	{Number: 13, Label: "DECIMOTERCERA", Title: "RESCISIÓN ANTICIPADA", body: earlyTerminationClause},
	{Number: 14, Label: "DECIMOCUARTA", Title: "PROHIBICIONES", body: func(*clauseContext) string {
		return "Queda expresamente prohibido: a) subalquilar o ceder el contrato total o parcialmente; b) introducir en el inmueble materiales inflamables, explosivos o peligrosos; c) tener animales domésticos sin autorización expresa del locador; d) realizar actividades que molesten a los vecinos o contravengan las normas del consorcio; e) modificar la estructura del inmueble."
	}},
	{Number: 15, Label: "DECIMOQUINTA", Title: "DOMICILIOS", body: func(c *clauseContext) string {
		titularAddress := PlaceholderTenantAddress
		if c.parties.Titular != nil {
			titularAddress = firstNonEmpty(c.parties.Titular.Address, PlaceholderTenantAddress)
		}
		return fmt.Sprintf("Las partes constituyen los siguientes domicilios especiales a todos los efectos legales: %s: %s. %s: %s y el inmueble objeto de la locación. Todos los domicilios se consideran válidos para notificaciones judiciales y extrajudiciales.",
			landlord, c.parties.Owner.Address, c.g.Tenant, titularAddress)
	}},
	{Number: 16, Label: "DECIMOSEXTA", Title: "JURISDICCIÓN", body: func(c *clauseContext) string {
		return fmt.Sprintf("Para cualquier divergencia que surja del presente contrato, las partes se someten a la jurisdicción de los %s, renunciando expresamente a cualquier otro fuero o jurisdicción que pudiera corresponderles.",
			c.opts.jurisdiction())
	}},
	{Number: 17, Label: "DECIMOSÉPTIMA", Title: "GASTOS", body: func(c *clauseContext) string {
		return fmt.Sprintf("Los gastos de sellado del presente contrato, honorarios y comisiones inmobiliarias serán abonados por mitades iguales entre %s y %s, salvo acuerdo expreso en contrario. Los gastos de informes, certificaciones y gestiones serán a cargo de quien los solicite.",
			landlord, c.g.Tenant)
	}},
	{Number: 18, Label: "DECIMOCTAVA", Title: "ADMINISTRACIÓN", body: func(c *clauseContext) string {
		name, address := c.opts.agency()
		return fmt.Sprintf("La administración del presente contrato estará a cargo de %s, con domicilio en %s, quien actuará como mandataria del locador para la percepción de los alquileres y el cumplimiento de las obligaciones derivadas del contrato.",
			name, address)
	}},
	{Number: 19, Label: "DECIMONOVENA", Title: "OBLIGACIONES DEL LOCATARIO", body: func(c *clauseContext) string {
		return fmt.Sprintf("%s %s a: a) habitar el inmueble personalmente; b) mantener el inmueble en buen estado de conservación; c) permitir el acceso para reparaciones urgentes; d) notificar inmediatamente cualquier desperfecto; e) cumplir con las normas del consorcio; f) abonar puntualmente todas las obligaciones a %s cargo.",
			c.g.Tenant, c.g.Binds, c.g.Their)
	}},
	{Number: 20, Label: "VIGÉSIMA", Title: "SEGURO", body: insuranceClause},
	{Number: 21, Label: "VIGÉSIMA PRIMERA", Title: "GARANTÍAS", body: func(c *clauseContext) string {
		return GuarantorRenderer{Grammar: c.g}.Render(c.agg.Guarantors)
	}},
	{Number: 22, Label: "VIGÉSIMA SEGUNDA", Title: "MORA", body: interestClause},
	{Number: 23, Label: "VIGÉSIMA TERCERA", Title: "PENALIDADES", body: penaltyClause},
	{Number: 24, Label: "VIGÉSIMA CUARTA", Title: "DISPOSICIONES FINALES", body: func(c *clauseContext) string {
		month, year := "[MES]", "[AÑO]"
		if !c.opts.Today.IsZero() {
			month = MonthName(c.opts.Today.Month())
			year = strconv.Itoa(c.opts.Today.Year())
		}
		return fmt.Sprintf("El presente contrato se celebra de conformidad con lo dispuesto por el Código Civil y Comercial de la Nación y la Ley de Alquileres vigente. Las partes declaran conocer y aceptar todas las cláusulas del presente, firmando tres ejemplares de un mismo tenor y a un solo efecto, en la Ciudad de Buenos Aires, a los días del mes de %s de %s.",
			month, year)
	}},
}

// Catalog returns the 24 standard clause definitions in order
func Catalog() []ClauseDefinition {
	return append([]ClauseDefinition(nil), catalog[:]...)
}

// Ordinal returns the canonical label for clause n, e.g. "PRIMERO".
// Numbers past the ordinal table get "CLÁUSULA n".
func Ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return "CLÁUSULA " + strconv.Itoa(n)
}

// IsStandardLabel reports whether label keys one of the 24 standard clauses
func IsStandardLabel(label string) bool {
	for _, def := range catalog {
		if def.Label == label {
			return true
		}
	}
	return false
}

// Heading returns "LABEL (TITLE):"
func (d ClauseDefinition) Heading() string {
	return d.Label + " (" + d.Title + "):"
}

// Library renders clauses for one contract. Parties and grammar are resolved
// once so every clause uses the same singular or plural forms.
type Library struct {
	ctx clauseContext
}

// NewLibrary prepares clause rendering for agg
func NewLibrary(agg *model.ContractAggregate, opts Options) *Library {
	parties := ResolveParties(agg)
	return &Library{ctx: clauseContext{
		agg:      agg,
		parties:  parties,
		g:        GrammarFor(parties.Plural),
		opts:     opts,
		property: PropertyAddress(agg.Property),
	}}
}

// Parties returns the resolved parties
func (l *Library) Parties() Parties {
	return l.ctx.parties
}

// Grammar returns the wording chosen for this contract
func (l *Library) Grammar() Grammar {
	return l.ctx.g
}

// Render returns the text of clause n: the override stored under the clause
// label when it has visible text, the generated default otherwise.
func (l *Library) Render(n int, overrides map[string]string) string {
	label := Ordinal(n)
	if text := overrides[label]; strings.TrimSpace(text) != "" {
		return text
	}
	if n < 1 || n > StandardClauses {
		return fallbackClause(n)
	}
	def := catalog[n-1]
	return def.Heading() + " " + def.body(&l.ctx)
}

// RenderClause renders a single clause for agg
func RenderClause(n int, agg *model.ContractAggregate, overrides map[string]string, opts Options) string {
	return NewLibrary(agg, opts).Render(n, overrides)
}

func objectClause(c *clauseContext) string {
	description := c.agg.PropertyDescription
	if strings.TrimSpace(description) == "" {
		description = "El inmueble se entrega en las condiciones que se detallan en el inventario anexo."
	}
	return fmt.Sprintf("%s, %s, CUIT %s, da en locación a %s, %s, %s %s el inmueble ubicado en %s. %s",
		landlord, c.parties.Owner.Name, c.parties.Owner.CUIT, c.g.TenantLower, c.parties.TenantNames(),
		c.g.Who, c.g.Inhabits, c.property, description)
}

func priceClause(c *clauseContext) string {
	rent := c.agg.BaseRentAmount
	frequency, ok := adjustmentLabels[c.agg.AdjustmentPeriod]
	if !ok {
		frequency = "según lo acordado"
	}
	index := firstNonEmpty(c.agg.AdjustmentType, "índice acordado")
	dueDay := c.agg.PaymentDueDay
	if dueDay <= 0 {
		dueDay = 10
	}
	location := firstNonEmpty(c.agg.PaymentLocation, "el domicilio designado por el locador")
	hours := firstNonEmpty(c.agg.PaymentHours, "9:00 a 18:00 horas")

	return fmt.Sprintf("El canon locativo mensual inicial es de PESOS %s (%s). El ajuste del precio del alquiler se realizará %s aplicando el índice %s publicado por el Banco Central de la República Argentina. El alquiler deberá ser abonado por adelantado, del 1 al %d de cada mes, en días hábiles, en %s en horario de %s.",
		SpellAmount(rent), FormatCurrency(rent), frequency, index, dueDay, location, hours)
}

func termClause(c *clauseContext) string {
	duration := PlaceholderDuration + " meses"
	if months, ok := monthsBetween(c.agg.StartDate, c.agg.EndDate); ok {
		duration = fmt.Sprintf("%d (%s) meses", months, Spell(months))
	}
	return fmt.Sprintf("El plazo de la presente locación es de %s, comenzando a regir el día %s y finalizando indefectiblemente el día %s, fecha en la cual %s %s restituir el inmueble libre de personas y cosas.",
		duration, FormatDate(c.agg.StartDate), FormatDate(c.agg.EndDate), c.g.Tenant, c.g.Must)
}

func depositClause(c *clauseContext) string {
	deposit := c.agg.DepositAmount
	if deposit <= 0 {
		deposit = c.agg.BaseRentAmount
	}
	return fmt.Sprintf("%s %s en este acto en concepto de depósito en garantía la suma de PESOS %s (%s), equivalente a un mes de alquiler, el cual será devuelto al finalizar el contrato una vez verificado el correcto estado del inmueble y canceladas todas las obligaciones pendientes.",
		c.g.Tenant, c.g.Pays, SpellAmount(deposit), FormatCurrency(deposit))
}

func earlyTerminationClause(c *clauseContext) string {
	months := c.agg.EarlyTerminationPenaltyMonths
	if months <= 0 {
		months = 2
	}
	return fmt.Sprintf("%s %s rescindir anticipadamente el presente contrato debiendo notificar %s decisión en forma fehaciente con un mínimo de treinta (30) días de anticipación. Si la rescisión se produce durante el primer año de vigencia, %s abonar como indemnización una suma equivalente a %d (%s) meses de alquiler.",
		c.g.Tenant, c.g.May, c.g.Their, c.g.Must, months, Spell(int64(months)))
}

func insuranceClause(c *clauseContext) string {
	var text string
	if c.agg.InsuranceRequired {
		text = fmt.Sprintf("%s %s a contratar un seguro de responsabilidad civil e incendio del inmueble, debiendo presentar la póliza correspondiente dentro de los treinta (30) días de celebrado el presente contrato.",
			c.g.Tenant, c.g.Binds)
	} else {
		text = fmt.Sprintf("%s %s contratar un seguro de responsabilidad civil e incendio del inmueble, lo cual es recomendado pero no obligatorio en el presente contrato.",
			c.g.Tenant, c.g.May)
	}
	return text + " El seguro deberá mantenerse vigente durante toda la duración del contrato."
}

func interestClause(c *clauseContext) string {
	rate := firstPositive(c.agg.DailyInterestRate, c.agg.LatePaymentInterestRate, 0.5)
	hundredths := strings.ToLower(SpellAmount(rate * 100))
	return fmt.Sprintf("La mora en el pago del alquiler o cualquier otra obligación dineraria se producirá de pleno derecho, sin necesidad de interpelación alguna. El monto adeudado devengará un interés punitorio del %s%% (%s centésimos por ciento) diario sobre el capital adeudado.",
		formatRate(rate), hundredths)
}

func penaltyClause(c *clauseContext) string {
	rate := firstPositive(c.agg.DailyPenaltyRate, c.agg.NonReturnPenaltyRate, 10)
	return fmt.Sprintf("En caso de que %s no %s el inmueble al vencimiento del contrato o de cualquier prórroga, %s abonar una penalidad equivalente al %s%% (%s por ciento) diario del valor del último alquiler, sin perjuicio de las acciones legales que correspondan para obtener el desalojo.",
		c.g.Tenant, c.g.Returns, c.g.Must, formatRate(rate), SpellAmount(rate))
}

func firstPositive(values ...float64) float64 {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// Options carries the inputs of a generation call that are not part of the
// contract record.
type Options struct {
	// Today dates the closing clause. A zero value renders placeholders.
	Today time.Time

	AgencyName    string
	AgencyAddress string
	Jurisdiction  string
	DefaultCity   string
}

func (o Options) agency() (string, string) {
	return firstNonEmpty(o.AgencyName, "Olivera de Schwab Propiedades"),
		firstNonEmpty(o.AgencyAddress, "Lincoln 3598, San Martín, Provincia de Buenos Aires")
}

func (o Options) jurisdiction() string {
	return firstNonEmpty(o.Jurisdiction, "Tribunales Ordinarios de la Ciudad de Buenos Aires")
}

func (o Options) city() string {
	return firstNonEmpty(o.DefaultCity, "Buenos Aires")
}
