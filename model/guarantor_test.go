package model

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarantorsUnmarshal(t *testing.T) {
	data := `[
		{"type": "persona_fisica", "full_name": "Luis Díaz", "dni": "20111222", "cuil": "20-20111222-3"},
		{"type": "finaer", "company_name": "FINAER S.A.", "guarantee_code": "F-1"},
		{"type": "propiedad", "guarantor_name": "Rosa Gil", "property_address": "Mitre 10", "cadastral_data": "C1"}
	]`

	var list Guarantors
	require.NoError(t, json.Unmarshal([]byte(data), &list))
	require.Len(t, list, 3)

	individual, ok := list[0].(IndividualGuarantor)
	require.True(t, ok)
	assert.Equal(t, "Luis Díaz", individual.FullName)
	assert.Equal(t, "20-20111222-3", individual.CUIL)

	agency, ok := list[1].(AgencyGuarantor)
	require.True(t, ok)
	assert.Equal(t, "F-1", agency.GuaranteeCode)

	property, ok := list[2].(PropertyGuarantor)
	require.True(t, ok)
	assert.Equal(t, "C1", property.CadastralData)
}

func TestGuarantorsUnmarshalRejectsUnknownKind(t *testing.T) {
	var list Guarantors
	err := json.Unmarshal([]byte(`[{"type": "seguro_caucion"}]`), &list)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownGuarantorKind))

	err = json.Unmarshal([]byte(`[{"full_name": "sin tipo"}]`), &list)
	assert.ErrorIs(t, err, ErrUnknownGuarantorKind)
}

func TestGuarantorsNull(t *testing.T) {
	var agg ContractAggregate
	require.NoError(t, json.Unmarshal([]byte(`{"guarantors": null}`), &agg))
	assert.Nil(t, agg.Guarantors)
}

func TestGuarantorsMarshalTagsType(t *testing.T) {
	list := Guarantors{
		IndividualGuarantor{FullName: "Luis"},
		PropertyGuarantor{GuarantorName: "Rosa"},
	}
	data, err := json.Marshal(list)
	require.NoError(t, err)

	out := string(data)
	assert.True(t, strings.HasPrefix(out, `[{"type":"persona_fisica","full_name":"Luis"`))
	assert.Contains(t, out, `{"type":"propiedad","guarantor_name":"Rosa"`)

	var back Guarantors
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, list, back)
}

func TestGuarantorsMarshalRejectsNil(t *testing.T) {
	_, err := json.Marshal(Guarantors{nil})
	assert.ErrorIs(t, err, ErrUnknownGuarantorKind)
}
