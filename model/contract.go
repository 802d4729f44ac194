package model

import (
	"time"
)

// Owner is the landlord of a property
type Owner struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	CUITCUIL string `json:"cuit_cuil,omitempty"`
}

// Property is the leased real estate
type Property struct {
	ID               string `json:"id"`
	OwnerID          string `json:"owner_id,omitempty"`
	Name             string `json:"name,omitempty"`
	PropertyType     string `json:"property_type,omitempty"`
	AddressStreet    string `json:"address_street"`
	AddressNumber    string `json:"address_number,omitempty"`
	AddressFloor     string `json:"address_floor,omitempty"`
	AddressApartment string `json:"address_apartment,omitempty"`
	AddressCity      string `json:"address_city,omitempty"`
	AddressState     string `json:"address_state,omitempty"`
	AddressZipCode   string `json:"address_zip_code,omitempty"`
	Owner            *Owner `json:"owner,omitempty"`
}

// Tenant is a person who signs the lease
type Tenant struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	DNI       string `json:"dni,omitempty"`
	CUITCUIL  string `json:"cuit_cuil,omitempty"`
	Address   string `json:"address,omitempty"`
}

// FullName returns "first last"
func (t Tenant) FullName() string {
	switch {
	case t.FirstName == "":
		return t.LastName
	case t.LastName == "":
		return t.FirstName
	}
	return t.FirstName + " " + t.LastName
}

// TenantRole tags a tenant association on a contract
type TenantRole string

const (
	RoleTitular   TenantRole = "titular"
	RoleCoTitular TenantRole = "co_titular"
)

// ContractTenant links a tenant to a contract with a role
type ContractTenant struct {
	TenantID string     `json:"tenant_id,omitempty"`
	Role     TenantRole `json:"role"`
	Tenant   *Tenant    `json:"tenant"`
}

// AdjustmentPeriod is the rent re-indexing frequency
type AdjustmentPeriod string

const (
	AdjustmentQuarterly  AdjustmentPeriod = "trimestral"
	AdjustmentSemiannual AdjustmentPeriod = "semestral"
	AdjustmentAnnual     AdjustmentPeriod = "anual"
)

// ContractStatus constants
type ContractStatus string

const (
	StatusDraft      ContractStatus = "borrador"
	StatusActive     ContractStatus = "activo"
	StatusExpired    ContractStatus = "vencido"
	StatusTerminated ContractStatus = "rescindido"
	StatusRenewed    ContractStatus = "renovado"
)

// CustomClause is a user-authored clause appended after the standard ones
type CustomClause struct {
	Number  int    `json:"number"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Contract holds the lease terms plus the document edits persisted for it.
// Dates are calendar dates in YYYY-MM-DD form.
type Contract struct {
	ID                            string           `json:"id"`
	PropertyID                    string           `json:"property_id,omitempty"`
	ContractType                  string           `json:"contract_type,omitempty"`
	BaseRentAmount                float64          `json:"base_rent_amount"`
	CurrentRentAmount             float64          `json:"current_rent_amount,omitempty"`
	DepositAmount                 float64          `json:"deposit_amount,omitempty"`
	StartDate                     string           `json:"start_date"`
	EndDate                       string           `json:"end_date"`
	PaymentDueDay                 int              `json:"payment_due_day,omitempty"`
	AdjustmentType                string           `json:"adjustment_type,omitempty"`
	AdjustmentPeriod              AdjustmentPeriod `json:"adjustment_period,omitempty"`
	LatePaymentInterestRate       float64          `json:"late_payment_interest_rate,omitempty"`
	EarlyTerminationPenaltyMonths int              `json:"early_termination_penalty_months,omitempty"`
	NonReturnPenaltyRate          float64          `json:"non_return_penalty_rate,omitempty"`
	InsuranceRequired             bool             `json:"insurance_required"`
	Status                        ContractStatus   `json:"status,omitempty"`
	Guarantors                    Guarantors       `json:"guarantors"`
	Notes                         string           `json:"notes,omitempty"`

	PropertyDescription string            `json:"property_description,omitempty"`
	ClauseOverrides     map[string]string `json:"clause_overrides,omitempty"`
	CustomClauses       []CustomClause    `json:"custom_clauses,omitempty"`
	OwnerLegalAddress   string            `json:"owner_legal_address,omitempty"`
	OwnerCUIT           string            `json:"owner_cuit,omitempty"`
	DailyPenaltyRate    float64           `json:"daily_penalty_rate,omitempty"`
	DailyInterestRate   float64           `json:"daily_interest_rate,omitempty"`
	PaymentLocation     string            `json:"payment_location,omitempty"`
	PaymentHours        string            `json:"payment_hours,omitempty"`

	Document  *GeneratedDocument `json:"document,omitempty"`
	DeletedAt *time.Time         `json:"deleted_at,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ContractAggregate is a contract joined with its property, owner and tenants.
type ContractAggregate struct {
	Contract
	Property *Property       `json:"property"`
	Tenants  []ContractTenant `json:"tenants"`
}

// Clone returns a copy that shares no slices, maps or pointers with a.
func (a *ContractAggregate) Clone() *ContractAggregate {
	if a == nil {
		return nil
	}
	c := *a
	if a.Property != nil {
		p := *a.Property
		if p.Owner != nil {
			o := *p.Owner
			p.Owner = &o
		}
		c.Property = &p
	}
	if a.Tenants != nil {
		c.Tenants = make([]ContractTenant, len(a.Tenants))
		for i, ct := range a.Tenants {
			if ct.Tenant != nil {
				t := *ct.Tenant
				ct.Tenant = &t
			}
			c.Tenants[i] = ct
		}
	}
	if a.Guarantors != nil {
		c.Guarantors = append(Guarantors(nil), a.Guarantors...)
	}
	if a.ClauseOverrides != nil {
		c.ClauseOverrides = make(map[string]string, len(a.ClauseOverrides))
		for k, v := range a.ClauseOverrides {
			c.ClauseOverrides[k] = v
		}
	}
	if a.CustomClauses != nil {
		c.CustomClauses = append([]CustomClause(nil), a.CustomClauses...)
	}
	if a.Document != nil {
		d := *a.Document
		c.Document = &d
	}
	if a.DeletedAt != nil {
		t := *a.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}

// GeneratedDocument records a PDF published for a contract
type GeneratedDocument struct {
	Filename    string    `json:"filename"`
	ObjectName  string    `json:"object_name"`
	URL         string    `json:"url"`
	Pages       int       `json:"pages"`
	Size        int64     `json:"size"`
	GeneratedAt time.Time `json:"generated_at"`
}
