package model

import "strings"

// ContractEdits is the set of document edits a user can persist on a contract.
// A nil field leaves the stored value untouched.
type ContractEdits struct {
	PropertyDescription *string            `json:"property_description,omitempty"`
	CustomClauses       *[]CustomClause    `json:"custom_clauses,omitempty"`
	ClauseOverrides     *map[string]string `json:"clause_overrides,omitempty"`
	OwnerLegalAddress   *string            `json:"owner_legal_address,omitempty"`
	OwnerCUIT           *string            `json:"owner_cuit,omitempty"`
	DailyPenaltyRate    *float64           `json:"daily_penalty_rate,omitempty"`
	DailyInterestRate   *float64           `json:"daily_interest_rate,omitempty"`
	PaymentLocation     *string            `json:"payment_location,omitempty"`
	PaymentHours        *string            `json:"payment_hours,omitempty"`
}

// IsEmpty reports whether the edit set changes nothing
func (e ContractEdits) IsEmpty() bool {
	return e.PropertyDescription == nil &&
		e.CustomClauses == nil &&
		e.ClauseOverrides == nil &&
		e.OwnerLegalAddress == nil &&
		e.OwnerCUIT == nil &&
		e.DailyPenaltyRate == nil &&
		e.DailyInterestRate == nil &&
		e.PaymentLocation == nil &&
		e.PaymentHours == nil
}

// Apply merges the edits into c. Override entries with blank text are dropped
// so the clause falls back to its generated body.
func (e ContractEdits) Apply(c *Contract) {
	if e.PropertyDescription != nil {
		c.PropertyDescription = *e.PropertyDescription
	}
	if e.CustomClauses != nil {
		c.CustomClauses = append([]CustomClause(nil), (*e.CustomClauses)...)
	}
	if e.ClauseOverrides != nil {
		overrides := make(map[string]string, len(*e.ClauseOverrides))
		for k, v := range *e.ClauseOverrides {
			if strings.TrimSpace(v) != "" {
				overrides[k] = v
			}
		}
		c.ClauseOverrides = overrides
	}
	if e.OwnerLegalAddress != nil {
		c.OwnerLegalAddress = *e.OwnerLegalAddress
	}
	if e.OwnerCUIT != nil {
		c.OwnerCUIT = *e.OwnerCUIT
	}
	if e.DailyPenaltyRate != nil {
		c.DailyPenaltyRate = *e.DailyPenaltyRate
	}
	if e.DailyInterestRate != nil {
		c.DailyInterestRate = *e.DailyInterestRate
	}
	if e.PaymentLocation != nil {
		c.PaymentLocation = *e.PaymentLocation
	}
	if e.PaymentHours != nil {
		c.PaymentHours = *e.PaymentHours
	}
}
