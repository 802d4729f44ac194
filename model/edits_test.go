package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditsApply(t *testing.T) {
	c := Contract{
		PropertyDescription: "viejo",
		PaymentLocation:     "Oficina",
		ClauseOverrides:     map[string]string{"PRIMERO": "a"},
	}

	var edits ContractEdits
	require.NoError(t, json.Unmarshal([]byte(`{
		"property_description": "Dos ambientes",
		"clause_overrides": {"SEGUNDO": "b", "TERCERA": "", "CUARTA": "  \n\t "},
		"daily_interest_rate": 0.3,
		"owner_cuit": "27-1-9"
	}`), &edits))
	require.False(t, edits.IsEmpty())

	edits.Apply(&c)

	assert.Equal(t, "Dos ambientes", c.PropertyDescription)
	assert.Equal(t, map[string]string{"SEGUNDO": "b"}, c.ClauseOverrides)
	assert.Equal(t, 0.3, c.DailyInterestRate)
	assert.Equal(t, "27-1-9", c.OwnerCUIT)
	// fields absent from the edit set are untouched
	assert.Equal(t, "Oficina", c.PaymentLocation)
}

func TestEditsClearValues(t *testing.T) {
	c := Contract{
		PropertyDescription: "viejo",
		CustomClauses:       []CustomClause{{Number: 25, Title: "A"}},
	}

	var edits ContractEdits
	require.NoError(t, json.Unmarshal([]byte(`{"property_description": "", "custom_clauses": []}`), &edits))
	edits.Apply(&c)

	assert.Empty(t, c.PropertyDescription)
	assert.Empty(t, c.CustomClauses)
}

func TestEditsIsEmpty(t *testing.T) {
	assert.True(t, ContractEdits{}.IsEmpty())
	hours := "9 a 18"
	assert.False(t, ContractEdits{PaymentHours: &hours}.IsEmpty())
}
