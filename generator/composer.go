package generator

import (
	"fmt"
	"strings"

	"github.com/AnTengye/contratos/model"
)

// Footer closes every generated document
const Footer = "Documento generado automáticamente por el Sistema de Gestión Inmobiliaria"

// Compose builds the full contract for agg. It never fails: missing data is
// rendered as bracketed placeholders. The only non-contract input is
// opts.Today, used by the closing clause.
func Compose(agg *model.ContractAggregate, opts Options) *Document {
	if agg == nil {
		agg = &model.ContractAggregate{}
	}
	lib := NewLibrary(agg, opts)
	parties := lib.Parties()
	g := lib.Grammar()

	doc := &Document{Title: DocumentTitle}
	add := func(blocks ...Block) { doc.Blocks = append(doc.Blocks, blocks...) }
	rule := func(heavy bool) Block { return Block{Kind: BlockRule, Heavy: heavy} }
	spacer := Block{Kind: BlockSpacer}

	add(Block{Kind: BlockTitle, Text: DocumentTitle}, spacer, rule(true), spacer)
	add(Block{Kind: BlockParagraph, Text: fmt.Sprintf(
		"Entre %s, CUIT %s, con domicilio en %s, en adelante denominado \"EL LOCADOR\", y %s, en adelante %s \"%s\", se celebra el presente contrato de locación sujeto a las siguientes cláusulas:",
		parties.Owner.Name, parties.Owner.CUIT, parties.Owner.Address, parties.TenantNames(), g.Designated, g.Tenant)}, spacer)
	add(rule(false), spacer)

	for n := 1; n <= StandardClauses; n++ {
		text := lib.Render(n, agg.ClauseOverrides)
		add(Block{Kind: BlockClause, Text: text, Clause: n, Lead: leadLength(text, Ordinal(n))}, spacer)
	}

	if len(agg.CustomClauses) > 0 {
		add(rule(false), Block{Kind: BlockHeading, Text: "CLÁUSULAS ADICIONALES"}, rule(false), spacer)
		for _, cc := range agg.CustomClauses {
			label := Ordinal(cc.Number)
			text := fallbackClause(cc.Number)
			if strings.TrimSpace(cc.Content) != "" {
				text = fmt.Sprintf("%s (%s): %s", label, cc.Title, cc.Content)
			}
			add(Block{Kind: BlockClause, Text: text, Clause: cc.Number, Custom: true, Lead: leadLength(text, label)}, spacer)
		}
	}

	city := opts.city()
	if agg.Property != nil && agg.Property.AddressCity != "" {
		city = agg.Property.AddressCity
	}
	add(spacer, rule(true), spacer)
	add(Block{Kind: BlockParagraph, Text: fmt.Sprintf(
		"En prueba de conformidad, las partes firman el presente contrato en tres ejemplares de un mismo tenor y a un solo efecto en %s, a los %s.",
		city, FormatDate(agg.StartDate))}, spacer, spacer)

	add(Block{Kind: BlockSignatures, Signatures: []Signature{ownerSignature(parties), titularSignature(parties)}})

	if len(parties.CoTitulares) > 0 {
		add(spacer, Block{Kind: BlockHeading, Text: "CO-LOCATARIOS:"})
		for _, ct := range parties.CoTitulares {
			add(spacer, Block{Kind: BlockSignatures, Signatures: []Signature{{
				Lines: []string{firstNonEmpty(ct.FullName(), notAvailable), "DNI: " + firstNonEmpty(ct.DNI, notAvailable)},
			}}})
		}
	}

	var guarantors []model.Guarantor
	for _, gr := range agg.Guarantors {
		if gr != nil {
			guarantors = append(guarantors, gr)
		}
	}
	if len(guarantors) > 0 {
		add(spacer, rule(false), Block{Kind: BlockHeading, Text: "GARANTES:"}, rule(false), spacer)
		for i, gr := range guarantors {
			d := DisplayGuarantor(gr)
			add(Block{Kind: BlockSignatures, Signatures: []Signature{{
				Lines: []string{fmt.Sprintf("GARANTE %d: %s", i+1, d.Name), d.ID, "Tipo: " + d.Label},
			}}}, spacer)
		}
	}

	add(spacer, rule(true), Block{Kind: BlockParagraph, Text: Footer})
	return doc
}

func ownerSignature(p Parties) Signature {
	name := p.Owner.Name
	if name == PlaceholderOwnerName {
		name = notAvailable
	}
	cuit := p.Owner.CUIT
	if cuit == PlaceholderOwnerCUIT {
		cuit = notAvailable
	}
	return Signature{Role: "EL LOCADOR", Lines: []string{name, "CUIT: " + cuit}}
}

func titularSignature(p Parties) Signature {
	role := "EL LOCATARIO"
	if p.Plural {
		role = "LOCATARIO TITULAR"
	}
	name, dni := notAvailable, notAvailable
	if p.Titular != nil {
		name = firstNonEmpty(p.Titular.FullName(), notAvailable)
		dni = firstNonEmpty(p.Titular.DNI, notAvailable)
	}
	return Signature{Role: role, Lines: []string{name, "DNI: " + dni}}
}

// leadLength returns how many bytes of a clause text form its bold heading:
// up to the first colon when the text starts with its label.
func leadLength(text, label string) int {
	if !strings.HasPrefix(text, label) {
		return 0
	}
	head := text
	if nl := strings.IndexByte(head, '\n'); nl >= 0 {
		head = head[:nl]
	}
	if i := strings.IndexByte(head, ':'); i >= 0 {
		return i + 1
	}
	return len(label)
}

func fallbackClause(n int) string {
	return fmt.Sprintf("%s: [Contenido de la cláusula %d]", Ordinal(n), n)
}
