package generator

import (
	"fmt"
	"strings"

	"github.com/AnTengye/contratos/model"
)

const notAvailable = "N/A"

// GuarantorRenderer writes the body of the guarantees clause
type GuarantorRenderer struct {
	Grammar Grammar
}

// Render returns one numbered paragraph per guarantor, separated by blank
// lines. An empty list yields the deposit-only paragraph.
func (r GuarantorRenderer) Render(guarantors []model.Guarantor) string {
	g := r.Grammar
	if g.Tenant == "" {
		g = singularGrammar
	}

	var paragraphs []string
	for _, item := range guarantors {
		if item == nil {
			continue
		}
		n := len(paragraphs) + 1
		switch v := item.(type) {
		case model.IndividualGuarantor:
			paragraphs = append(paragraphs, fmt.Sprintf("%d. GARANTÍA PERSONAL: El/La Sr/a. %s, DNI %s, CUIL %s, con domicilio en %s, teléfono %s, se constituye en GARANTE solidario, liso, llano y principal pagador de todas las obligaciones asumidas por %s en el presente contrato, renunciando expresamente a los beneficios de excusión y división previstos en el Código Civil y Comercial de la Nación. Esta garantía se extiende hasta la total restitución del inmueble y cancelación de cualquier deuda pendiente.",
				n, v.FullName, v.DNI, v.CUIL, v.Address, firstNonEmpty(v.Phone, PlaceholderPhone), g.TenantLower))
		case model.AgencyGuarantor:
			paragraphs = append(paragraphs, fmt.Sprintf("%d. GARANTÍA FINAER: Se presenta como garantía el aval otorgado por %s, CUIT %s, mediante CÓDIGO DE GARANTÍA N° %s. Actúa como representante el/la Sr/a. %s, DNI %s. Esta garantía cubre las obligaciones %s conforme a los términos y condiciones establecidos por SISTEMA FINAER S.A.",
				n, v.CompanyName, v.CUIT, v.GuaranteeCode, v.RepresentativeName, v.RepresentativeDNI, g.OfTenant))
		case model.PropertyGuarantor:
			var details string
			if strings.TrimSpace(v.CadastralDetails) != "" {
				details = "Detalles adicionales: " + v.CadastralDetails + ". "
			}
			paragraphs = append(paragraphs, fmt.Sprintf("%d. GARANTÍA PROPIETARIA: El/La Sr/a. %s, DNI %s, CUIL %s, avala el presente contrato con el inmueble de su propiedad ubicado en %s. NOMENCLATURA CATASTRAL: %s. %sEl garante se obliga solidariamente con %s por el cumplimiento de todas las obligaciones del presente contrato.",
				n, v.GuarantorName, v.GuarantorDNI, firstNonEmpty(v.GuarantorCUIL, PlaceholderCUIL), v.PropertyAddress, v.CadastralData, details, g.TenantLower))
		}
	}

	if len(paragraphs) == 0 {
		return fmt.Sprintf("El presente contrato se celebra sin garantía personal o real adicional, siendo el depósito establecido en la cláusula SEXTA la única garantía del cumplimiento de las obligaciones %s.", g.OfTenant)
	}
	return "A los efectos de garantizar el fiel cumplimiento de todas las obligaciones emergentes del presente contrato, se constituyen las siguientes garantías:\n\n" +
		strings.Join(paragraphs, "\n\n")
}

// GuarantorDisplay is what a guarantor's signature blank shows
type GuarantorDisplay struct {
	Name  string
	ID    string
	Label string
}

// DisplayGuarantor resolves the signature caption of g
func DisplayGuarantor(g model.Guarantor) GuarantorDisplay {
	switch v := g.(type) {
	case model.IndividualGuarantor:
		return GuarantorDisplay{
			Name:  firstNonEmpty(v.FullName, notAvailable),
			ID:    "DNI: " + firstNonEmpty(v.DNI, notAvailable) + " - CUIL: " + firstNonEmpty(v.CUIL, notAvailable),
			Label: "Persona Física",
		}
	case model.AgencyGuarantor:
		return GuarantorDisplay{
			Name:  firstNonEmpty(v.CompanyName, notAvailable),
			ID:    "CUIT: " + firstNonEmpty(v.CUIT, notAvailable) + " - Código: " + firstNonEmpty(v.GuaranteeCode, notAvailable),
			Label: "FINAER",
		}
	case model.PropertyGuarantor:
		return GuarantorDisplay{
			Name:  firstNonEmpty(v.GuarantorName, notAvailable),
			ID:    "DNI: " + firstNonEmpty(v.GuarantorDNI, notAvailable) + " - CUIL: " + firstNonEmpty(v.GuarantorCUIL, notAvailable),
			Label: "Propiedad en Garantía",
		}
	}
	return GuarantorDisplay{Name: notAvailable, ID: notAvailable, Label: notAvailable}
}
