package model

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAggregate() *ContractAggregate {
	return &ContractAggregate{
		Contract: Contract{
			BaseRentAmount:   100000,
			StartDate:        "2024-03-01",
			EndDate:          "2026-03-01",
			PaymentDueDay:    10,
			AdjustmentPeriod: AdjustmentQuarterly,
			Status:           StatusActive,
		},
		Tenants: []ContractTenant{
			{Role: RoleTitular, Tenant: &Tenant{FirstName: "Juan"}},
			{Role: RoleCoTitular, Tenant: &Tenant{FirstName: "Ana"}},
		},
	}
}

func TestAggregateValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *ContractAggregate)
		field  string
	}{
		{"negative rent", func(a *ContractAggregate) { a.BaseRentAmount = -1 }, "base_rent_amount"},
		{"rent beyond spelled range", func(a *ContractAggregate) { a.BaseRentAmount = 1e20 }, "base_rent_amount"},
		{"deposit beyond spelled range", func(a *ContractAggregate) { a.DepositAmount = MaxAmount + 1 }, "deposit_amount"},
		{"interest rate above 100", func(a *ContractAggregate) { a.LatePaymentInterestRate = 150 }, "late_payment_interest_rate"},
		{"penalty rate above 100", func(a *ContractAggregate) { a.NonReturnPenaltyRate = 1e9 }, "non_return_penalty_rate"},
		{"missing start", func(a *ContractAggregate) { a.StartDate = "" }, "start_date"},
		{"malformed end", func(a *ContractAggregate) { a.EndDate = "2026/03/01" }, "end_date"},
		{"due day out of range", func(a *ContractAggregate) { a.PaymentDueDay = 32 }, "payment_due_day"},
		{"unknown period", func(a *ContractAggregate) { a.AdjustmentPeriod = "mensual" }, "adjustment_period"},
		{"unknown status", func(a *ContractAggregate) { a.Status = "archivado" }, "status"},
		{"custom clause without title", func(a *ContractAggregate) {
			a.CustomClauses = []CustomClause{{Number: 25}}
		}, "custom_clauses"},
		{"no titular", func(a *ContractAggregate) { a.Tenants = a.Tenants[1:] }, "tenants"},
		{"two titulares", func(a *ContractAggregate) { a.Tenants[1].Role = RoleTitular }, "tenants"},
		{"unknown role", func(a *ContractAggregate) { a.Tenants[1].Role = "garante" }, "tenants"},
		{"tenant without data", func(a *ContractAggregate) { a.Tenants[1].Tenant = nil }, "tenants"},
	}

	require.NoError(t, validAggregate().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agg := validAggregate()
			tt.mutate(agg)

			err := agg.Validate()
			require.Error(t, err)
			errs, ok := err.(validation.Errors)
			require.True(t, ok, "expected validation.Errors, got %T", err)
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestEditsValidate(t *testing.T) {
	negative := -0.1
	ok := 0.2
	bad := []CustomClause{{Number: 0, Title: "X"}}
	good := []CustomClause{{Number: 25, Title: "MASCOTAS"}}

	assert.NoError(t, ContractEdits{DailyPenaltyRate: &ok, CustomClauses: &good}.Validate())
	assert.Error(t, ContractEdits{DailyInterestRate: &negative}.Validate())
	huge := 1e20
	assert.Error(t, ContractEdits{DailyPenaltyRate: &huge}.Validate())

	err := ContractEdits{CustomClauses: &bad}.Validate()
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "custom_clauses"))
}

func TestValidateOverrideKeys(t *testing.T) {
	known := func(label string) bool { return label == "PRIMERO" || label == "SEGUNDO" }

	assert.NoError(t, ValidateOverrideKeys(nil, known))
	assert.NoError(t, ValidateOverrideKeys(map[string]string{"PRIMERO": "x"}, known))

	err := ValidateOverrideKeys(map[string]string{"PRIMERO": "x", "QUINCUAGÉSIMA": "y"}, known)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUINCUAGÉSIMA")
}
