package generator

import (
	"strings"

	"github.com/AnTengye/contratos/model"
)

// Placeholders rendered in place of missing data
const (
	PlaceholderOwnerName       = "[NOMBRE DEL PROPIETARIO]"
	PlaceholderOwnerCUIT       = "[CUIT DEL PROPIETARIO]"
	PlaceholderOwnerAddress    = "[DOMICILIO DEL PROPIETARIO]"
	PlaceholderTenantName      = "[NOMBRE DEL LOCATARIO]"
	PlaceholderTenantAddress   = "[DOMICILIO DEL LOCATARIO]"
	PlaceholderPropertyAddress = "[DIRECCIÓN DE LA PROPIEDAD]"
	PlaceholderDNI             = "[DNI]"
	PlaceholderCUIL            = "[CUIL]"
	PlaceholderPhone           = "[TELÉFONO]"
	PlaceholderDuration        = "[DURACIÓN]"
	PlaceholderAmount          = "[MONTO]"
)

// OwnerInfo is the landlord identity printed on the contract
type OwnerInfo struct {
	Name    string
	CUIT    string
	Address string
}

// Parties is the resolved cast of a contract
type Parties struct {
	Titular     *model.Tenant
	CoTitulares []model.Tenant
	Owner       OwnerInfo
	Plural      bool
}

// ResolveParties extracts the titular, co-titulares and owner identity.
// Owner fields fall back from the contract override to the owner record to a
// bracketed placeholder.
func ResolveParties(agg *model.ContractAggregate) Parties {
	var p Parties
	for _, ct := range agg.Tenants {
		if ct.Tenant == nil {
			continue
		}
		switch ct.Role {
		case model.RoleTitular:
			if p.Titular == nil {
				t := *ct.Tenant
				p.Titular = &t
			}
		case model.RoleCoTitular:
			p.CoTitulares = append(p.CoTitulares, *ct.Tenant)
		}
	}
	p.Plural = len(p.CoTitulares) > 0

	var owner *model.Owner
	if agg.Property != nil {
		owner = agg.Property.Owner
	}
	p.Owner = OwnerInfo{
		Name:    PlaceholderOwnerName,
		CUIT:    firstNonEmpty(agg.OwnerCUIT, PlaceholderOwnerCUIT),
		Address: firstNonEmpty(agg.OwnerLegalAddress, PlaceholderOwnerAddress),
	}
	if owner != nil {
		p.Owner.Name = firstNonEmpty(owner.FullName, PlaceholderOwnerName)
		p.Owner.CUIT = firstNonEmpty(agg.OwnerCUIT, owner.CUITCUIL, PlaceholderOwnerCUIT)
		p.Owner.Address = firstNonEmpty(agg.OwnerLegalAddress, owner.Address, PlaceholderOwnerAddress)
	}
	return p
}

// Tenants returns the titular followed by the co-titulares
func (p Parties) Tenants() []model.Tenant {
	out := make([]model.Tenant, 0, 1+len(p.CoTitulares))
	if p.Titular != nil {
		out = append(out, *p.Titular)
	}
	return append(out, p.CoTitulares...)
}

// TenantNames joins every tenant with DNI and CUIL/CUIT, Spanish style:
// "A", "A y B", "A, B y C".
func (p Parties) TenantNames() string {
	tenants := p.Tenants()
	names := make([]string, len(tenants))
	for i, t := range tenants {
		names[i] = t.FullName() + ", DNI " + firstNonEmpty(t.DNI, PlaceholderDNI) +
			", CUIL/CUIT " + firstNonEmpty(t.CUITCUIL, PlaceholderCUIL)
	}
	if len(names) == 0 {
		return PlaceholderTenantName
	}
	return joinSpanish(names)
}

// TitularName returns the titular's full name or a placeholder
func (p Parties) TitularName() string {
	if p.Titular == nil || p.Titular.FullName() == "" {
		return PlaceholderTenantName
	}
	return p.Titular.FullName()
}

// PropertyAddress builds the one-line address of the leased property
func PropertyAddress(prop *model.Property) string {
	if prop == nil || prop.AddressStreet == "" {
		return PlaceholderPropertyAddress
	}
	var b strings.Builder
	b.WriteString(prop.AddressStreet)
	if prop.AddressNumber != "" {
		b.WriteString(" " + prop.AddressNumber)
	}
	if prop.AddressFloor != "" {
		b.WriteString(", Piso " + prop.AddressFloor)
	}
	if prop.AddressApartment != "" {
		b.WriteString(", Depto " + prop.AddressApartment)
	}
	if prop.AddressCity != "" {
		b.WriteString(", " + prop.AddressCity)
	}
	if prop.AddressState != "" {
		b.WriteString(", " + prop.AddressState)
	}
	return b.String()
}

func joinSpanish(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " y " + items[len(items)-1]
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
