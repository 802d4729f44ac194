package generator

import (
	"testing"

	"github.com/AnTengye/contratos/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveParties(t *testing.T) {
	p := ResolveParties(sampleAggregate(2))

	require.NotNil(t, p.Titular)
	assert.Equal(t, "Juan Pérez", p.Titular.FullName())
	assert.Len(t, p.CoTitulares, 2)
	assert.True(t, p.Plural)
	assert.Equal(t, OwnerInfo{Name: "María González", CUIT: "27-12345678-9", Address: "Lavalle 900, CABA"}, p.Owner)
}

func TestResolvePartiesSingular(t *testing.T) {
	p := ResolveParties(sampleAggregate(0))
	assert.False(t, p.Plural)
	assert.Empty(t, p.CoTitulares)
}

func TestResolvePartiesOwnerFallback(t *testing.T) {
	t.Run("contract override wins", func(t *testing.T) {
		agg := sampleAggregate(0)
		agg.OwnerCUIT = "30-99999999-1"
		agg.OwnerLegalAddress = "Florida 100"
		p := ResolveParties(agg)
		assert.Equal(t, "30-99999999-1", p.Owner.CUIT)
		assert.Equal(t, "Florida 100", p.Owner.Address)
	})

	t.Run("owner record fields", func(t *testing.T) {
		agg := sampleAggregate(0)
		agg.Property.Owner.CUITCUIL = ""
		p := ResolveParties(agg)
		assert.Equal(t, PlaceholderOwnerCUIT, p.Owner.CUIT)
		assert.Equal(t, "Lavalle 900, CABA", p.Owner.Address)
	})

	t.Run("no owner", func(t *testing.T) {
		agg := sampleAggregate(0)
		agg.Property.Owner = nil
		p := ResolveParties(agg)
		assert.Equal(t, OwnerInfo{
			Name:    PlaceholderOwnerName,
			CUIT:    PlaceholderOwnerCUIT,
			Address: PlaceholderOwnerAddress,
		}, p.Owner)
	})

	t.Run("override without owner", func(t *testing.T) {
		agg := sampleAggregate(0)
		agg.Property = nil
		agg.OwnerCUIT = "30-1"
		p := ResolveParties(agg)
		assert.Equal(t, PlaceholderOwnerName, p.Owner.Name)
		assert.Equal(t, "30-1", p.Owner.CUIT)
	})
}

func TestTenantNames(t *testing.T) {
	tests := []struct {
		name        string
		coTitulares int
		want        string
	}{
		{"single", 0, "Juan Pérez, DNI 30111222, CUIL/CUIT 20-30111222-3"},
		{"two", 1, "Juan Pérez, DNI 30111222, CUIL/CUIT 20-30111222-3 y Lucía Fernández, DNI 31222333, CUIL/CUIT 27-31222333-4"},
		{"three", 2, "Juan Pérez, DNI 30111222, CUIL/CUIT 20-30111222-3, Lucía Fernández, DNI 31222333, CUIL/CUIT 27-31222333-4 y Martín Sosa, DNI 32333444, CUIL/CUIT 20-32333444-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveParties(sampleAggregate(tt.coTitulares)).TenantNames())
		})
	}
}

func TestTenantNamesPlaceholders(t *testing.T) {
	agg := sampleAggregate(3)
	assert.Contains(t, ResolveParties(agg).TenantNames(), "Ana Ruiz, DNI 33444555, CUIL/CUIT [CUIL]")

	agg.Tenants = nil
	p := ResolveParties(agg)
	assert.Equal(t, PlaceholderTenantName, p.TenantNames())
	assert.Equal(t, PlaceholderTenantName, p.TitularName())
}

func TestResolvePartiesSkipsNilTenants(t *testing.T) {
	agg := sampleAggregate(0)
	agg.Tenants = append(agg.Tenants, model.ContractTenant{Role: model.RoleCoTitular})
	p := ResolveParties(agg)
	assert.False(t, p.Plural)
}

func TestPropertyAddress(t *testing.T) {
	assert.Equal(t, "Av. Corrientes 1500, Piso 3, Depto B, Buenos Aires", PropertyAddress(sampleAggregate(0).Property))
	assert.Equal(t, PlaceholderPropertyAddress, PropertyAddress(nil))
	assert.Equal(t, PlaceholderPropertyAddress, PropertyAddress(&model.Property{AddressCity: "Rosario"}))
}
