package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// GuarantorKind is the discriminant stored in the "type" field
type GuarantorKind string

const (
	GuarantorIndividual GuarantorKind = "persona_fisica"
	GuarantorAgency     GuarantorKind = "finaer"
	GuarantorProperty   GuarantorKind = "propiedad"
)

// ErrUnknownGuarantorKind is returned when decoding a guarantor with an unsupported type
var ErrUnknownGuarantorKind = errors.New("unknown guarantor type")

// Guarantor is one of IndividualGuarantor, AgencyGuarantor or PropertyGuarantor.
// The set is closed: only types in this package implement it.
type Guarantor interface {
	Kind() GuarantorKind
	isGuarantor()
}

// IndividualGuarantor is a natural person acting as solidary guarantor
type IndividualGuarantor struct {
	FullName string `json:"full_name"`
	DNI      string `json:"dni"`
	CUIL     string `json:"cuil"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// AgencyGuarantor is a guarantee underwritten by a company (FINAER)
type AgencyGuarantor struct {
	CompanyName        string `json:"company_name"`
	CUIT               string `json:"cuit"`
	GuaranteeCode      string `json:"guarantee_code"`
	RepresentativeName string `json:"representative_name"`
	RepresentativeDNI  string `json:"representative_dni"`
}

// PropertyGuarantor backs the lease with real estate
type PropertyGuarantor struct {
	GuarantorName    string `json:"guarantor_name"`
	GuarantorDNI     string `json:"guarantor_dni"`
	GuarantorCUIL    string `json:"guarantor_cuil"`
	PropertyAddress  string `json:"property_address"`
	CadastralData    string `json:"cadastral_data"`
	CadastralDetails string `json:"cadastral_details,omitempty"`
}

func (IndividualGuarantor) Kind() GuarantorKind { return GuarantorIndividual }
func (AgencyGuarantor) Kind() GuarantorKind     { return GuarantorAgency }
func (PropertyGuarantor) Kind() GuarantorKind   { return GuarantorProperty }

func (IndividualGuarantor) isGuarantor() {}
func (AgencyGuarantor) isGuarantor()     {}
func (PropertyGuarantor) isGuarantor()   {}

// Guarantors is a JSON-aware list of guarantor variants
type Guarantors []Guarantor

// MarshalJSON writes each guarantor as a flat object tagged with "type"
func (g Guarantors) MarshalJSON() ([]byte, error) {
	out := make([]any, 0, len(g))
	for _, item := range g {
		switch v := item.(type) {
		case IndividualGuarantor:
			out = append(out, struct {
				Type GuarantorKind `json:"type"`
				IndividualGuarantor
			}{v.Kind(), v})
		case AgencyGuarantor:
			out = append(out, struct {
				Type GuarantorKind `json:"type"`
				AgencyGuarantor
			}{v.Kind(), v})
		case PropertyGuarantor:
			out = append(out, struct {
				Type GuarantorKind `json:"type"`
				PropertyGuarantor
			}{v.Kind(), v})
		default:
			return nil, fmt.Errorf("marshal guarantor: %w: %T", ErrUnknownGuarantorKind, item)
		}
	}
	return json.Marshal(out)
}

// UnmarshalJSON dispatches on the "type" field and rejects unknown kinds
func (g *Guarantors) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*g = nil
		return nil
	}

	list := make(Guarantors, 0, len(raw))
	for i, item := range raw {
		var head struct {
			Type GuarantorKind `json:"type"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			return fmt.Errorf("guarantor %d: %w", i, err)
		}

		var (
			parsed Guarantor
			err    error
		)
		switch head.Type {
		case GuarantorIndividual:
			var v IndividualGuarantor
			err = json.Unmarshal(item, &v)
			parsed = v
		case GuarantorAgency:
			var v AgencyGuarantor
			err = json.Unmarshal(item, &v)
			parsed = v
		case GuarantorProperty:
			var v PropertyGuarantor
			err = json.Unmarshal(item, &v)
			parsed = v
		default:
			return fmt.Errorf("guarantor %d: %w: %q", i, ErrUnknownGuarantorKind, head.Type)
		}
		if err != nil {
			return fmt.Errorf("guarantor %d: %w", i, err)
		}
		list = append(list, parsed)
	}

	*g = list
	return nil
}
