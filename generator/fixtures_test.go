package generator

import (
	"regexp"
	"strings"
	"time"

	"github.com/AnTengye/contratos/model"
)

var fixedToday = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

var coTenantPool = []model.Tenant{
	{ID: "t2", FirstName: "Lucía", LastName: "Fernández", DNI: "31222333", CUITCUIL: "27-31222333-4"},
	{ID: "t3", FirstName: "Martín", LastName: "Sosa", DNI: "32333444", CUITCUIL: "20-32333444-5"},
	{ID: "t4", FirstName: "Ana", LastName: "Ruiz", DNI: "33444555"},
}

// sampleAggregate returns a complete contract with one titular, the given
// number of co-titulares and guarantors.
func sampleAggregate(coTitulares int, guarantors ...model.Guarantor) *model.ContractAggregate {
	agg := &model.ContractAggregate{
		Contract: model.Contract{
			ID:               "c1",
			BaseRentAmount:   150000,
			StartDate:        "2024-03-01",
			EndDate:          "2026-03-01",
			PaymentDueDay:    10,
			AdjustmentType:   "ICL",
			AdjustmentPeriod: model.AdjustmentQuarterly,
			Status:           model.StatusActive,
			Guarantors:       guarantors,
		},
		Property: &model.Property{
			ID:               "p1",
			AddressStreet:    "Av. Corrientes",
			AddressNumber:    "1500",
			AddressFloor:     "3",
			AddressApartment: "B",
			AddressCity:      "Buenos Aires",
			Owner: &model.Owner{
				ID:       "o1",
				FullName: "María González",
				CUITCUIL: "27-12345678-9",
				Address:  "Lavalle 900, CABA",
			},
		},
		Tenants: []model.ContractTenant{{
			Role: model.RoleTitular,
			Tenant: &model.Tenant{
				ID: "t1", FirstName: "Juan", LastName: "Pérez",
				DNI: "30111222", CUITCUIL: "20-30111222-3", Address: "Av. Rivadavia 1234",
			},
		}},
	}
	for i := 0; i < coTitulares && i < len(coTenantPool); i++ {
		t := coTenantPool[i]
		agg.Tenants = append(agg.Tenants, model.ContractTenant{Role: model.RoleCoTitular, Tenant: &t})
	}
	return agg
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}]+`)

// containsWords reports whether phrase occurs in text as a whole-word sequence
func containsWords(text, phrase string) bool {
	words := wordRe.FindAllString(text, -1)
	want := strings.Fields(phrase)
	for i := 0; i+len(want) <= len(words); i++ {
		match := true
		for j, w := range want {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
