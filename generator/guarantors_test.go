package generator

import (
	"strings"
	"testing"

	"github.com/AnTengye/contratos/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarantorRendererEmpty(t *testing.T) {
	text := GuarantorRenderer{Grammar: GrammarFor(false)}.Render(nil)
	assert.Equal(t, "El presente contrato se celebra sin garantía personal o real adicional, siendo el depósito establecido en la cláusula SEXTA la única garantía del cumplimiento de las obligaciones del locatario.", text)

	text = GuarantorRenderer{Grammar: GrammarFor(true)}.Render([]model.Guarantor{})
	assert.True(t, strings.HasSuffix(text, "las obligaciones de los locatarios."))
}

func TestGuarantorRendererAllKinds(t *testing.T) {
	guarantors := []model.Guarantor{
		model.IndividualGuarantor{FullName: "Pedro Gómez", DNI: "25000111", CUIL: "20-25000111-2", Address: "Belgrano 55"},
		model.AgencyGuarantor{CompanyName: "FINAER S.A.", CUIT: "30-71000000-1", GuaranteeCode: "FN-778", RepresentativeName: "Laura Paz", RepresentativeDNI: "28999000"},
		model.PropertyGuarantor{GuarantorName: "Rosa Díaz", GuarantorDNI: "20111000", PropertyAddress: "San Juan 300", CadastralData: "Circ. 1 Secc. 2"},
	}
	text := GuarantorRenderer{Grammar: GrammarFor(false)}.Render(guarantors)

	parts := strings.Split(text, "\n\n")
	require.Len(t, parts, 4)
	assert.True(t, strings.HasPrefix(parts[0], "A los efectos de garantizar el fiel cumplimiento"))

	assert.True(t, strings.HasPrefix(parts[1], "1. GARANTÍA PERSONAL: El/La Sr/a. Pedro Gómez, DNI 25000111, CUIL 20-25000111-2, con domicilio en Belgrano 55, teléfono [TELÉFONO],"))
	assert.Contains(t, parts[1], "renunciando expresamente a los beneficios de excusión y división")

	assert.True(t, strings.HasPrefix(parts[2], "2. GARANTÍA FINAER: "))
	assert.Contains(t, parts[2], "FINAER S.A., CUIT 30-71000000-1, mediante CÓDIGO DE GARANTÍA N° FN-778")
	assert.Contains(t, parts[2], "el/la Sr/a. Laura Paz, DNI 28999000")

	assert.True(t, strings.HasPrefix(parts[3], "3. GARANTÍA PROPIETARIA: "))
	assert.Contains(t, parts[3], "CUIL [CUIL]")
	assert.Contains(t, parts[3], "NOMENCLATURA CATASTRAL: Circ. 1 Secc. 2. El garante")
	assert.NotContains(t, parts[3], "Detalles adicionales")
}

func TestGuarantorRendererCadastralDetails(t *testing.T) {
	text := GuarantorRenderer{}.Render([]model.Guarantor{
		model.PropertyGuarantor{GuarantorName: "Rosa Díaz", CadastralData: "X", CadastralDetails: "Partida 123"},
	})
	assert.Contains(t, text, "NOMENCLATURA CATASTRAL: X. Detalles adicionales: Partida 123. El garante")
	assert.Contains(t, text, "solidariamente con el locatario")
}

func TestGuarantorRendererPlural(t *testing.T) {
	text := GuarantorRenderer{Grammar: GrammarFor(true)}.Render([]model.Guarantor{
		model.IndividualGuarantor{FullName: "Pedro Gómez"},
		model.AgencyGuarantor{CompanyName: "FINAER"},
	})
	assert.Contains(t, text, "asumidas por los locatarios")
	assert.Contains(t, text, "las obligaciones de los locatarios conforme")
}

func TestGuarantorRendererSkipsNil(t *testing.T) {
	text := GuarantorRenderer{}.Render([]model.Guarantor{nil, model.IndividualGuarantor{FullName: "Pedro Gómez"}})
	assert.Contains(t, text, "1. GARANTÍA PERSONAL")
	assert.NotContains(t, text, "2. ")

	text = GuarantorRenderer{}.Render([]model.Guarantor{nil})
	assert.Contains(t, text, "sin garantía personal o real adicional")
}

func TestDisplayGuarantor(t *testing.T) {
	tests := []struct {
		name string
		g    model.Guarantor
		want GuarantorDisplay
	}{
		{
			"individual",
			model.IndividualGuarantor{FullName: "Pedro Gómez", DNI: "25000111"},
			GuarantorDisplay{Name: "Pedro Gómez", ID: "DNI: 25000111 - CUIL: N/A", Label: "Persona Física"},
		},
		{
			"agency",
			model.AgencyGuarantor{CompanyName: "FINAER S.A.", CUIT: "30-1", GuaranteeCode: "FN-1"},
			GuarantorDisplay{Name: "FINAER S.A.", ID: "CUIT: 30-1 - Código: FN-1", Label: "FINAER"},
		},
		{
			"property",
			model.PropertyGuarantor{GuarantorName: "Rosa Díaz", GuarantorDNI: "2", GuarantorCUIL: "3"},
			GuarantorDisplay{Name: "Rosa Díaz", ID: "DNI: 2 - CUIL: 3", Label: "Propiedad en Garantía"},
		},
		{
			"empty property",
			model.PropertyGuarantor{},
			GuarantorDisplay{Name: "N/A", ID: "DNI: N/A - CUIL: N/A", Label: "Propiedad en Garantía"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayGuarantor(tt.g))
		})
	}
}
