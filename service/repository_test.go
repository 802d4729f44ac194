package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// repositories runs fn against every ContractRepository implementation
func repositories(t *testing.T, fn func(t *testing.T, repo ContractRepository)) {
	t.Run("memory", func(t *testing.T) {
		fn(t, newTestStore(0))
	})
	t.Run("sqlite", func(t *testing.T) {
		repo, err := NewRepository(&config.StoreConfig{
			Driver: config.DriverSQLite,
			Path:   filepath.Join(t.TempDir(), "contratos.db"),
		})
		require.NoError(t, err)
		t.Cleanup(func() { repo.Close() })
		fn(t, repo)
	})
}

func TestRepositoryRoundTrip(t *testing.T) {
	repositories(t, func(t *testing.T, repo ContractRepository) {
		ctx := context.Background()
		agg := newAggregate("rt", "Corrientes", "Juan", "Pérez")
		agg.Guarantors = append(agg.Guarantors,
			model.AgencyGuarantor{CompanyName: "FINAER S.A.", GuaranteeCode: "G-1"},
			model.PropertyGuarantor{GuarantorName: "Luis Díaz", PropertyAddress: "Mitre 10"},
		)
		agg.ClauseOverrides = map[string]string{"PRIMERO": "Texto propio."}
		require.NoError(t, repo.Save(ctx, agg))

		got, err := repo.Get(ctx, "rt")
		require.NoError(t, err)
		assert.Equal(t, "Corrientes", got.Property.AddressStreet)
		assert.Equal(t, "Juan", got.Tenants[0].Tenant.FirstName)
		require.Len(t, got.Guarantors, 3)
		assert.Equal(t, model.GuarantorIndividual, got.Guarantors[0].Kind())
		assert.Equal(t, model.GuarantorAgency, got.Guarantors[1].Kind())
		assert.Equal(t, model.GuarantorProperty, got.Guarantors[2].Kind())
		assert.Equal(t, "Texto propio.", got.ClauseOverrides["PRIMERO"])

		_, err = repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepositoryList(t *testing.T) {
	repositories(t, func(t *testing.T, repo ContractRepository) {
		ctx := context.Background()
		base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

		seed := []*model.ContractAggregate{
			newAggregate("a", "Corrientes", "Juan", "Pérez"),
			newAggregate("b", "Santa Fe", "Lucía", "Martínez"),
			newAggregate("c", "Corrientes", "Pedro", "Sosa"),
		}
		seed[1].Status = model.StatusDraft
		for i, agg := range seed {
			agg.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			require.NoError(t, repo.Save(ctx, agg))
		}

		all, err := repo.List(ctx, ListFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, []string{"c", "b", "a"}, ids(all))

		drafts, err := repo.List(ctx, ListFilter{Status: model.StatusDraft})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, ids(drafts))

		byAddress, err := repo.List(ctx, ListFilter{Search: "corrientes"})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a"}, ids(byAddress))

		byTenant, err := repo.List(ctx, ListFilter{Search: "MARTÍNEZ"})
		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, ids(byTenant))

		byProperty, err := repo.List(ctx, ListFilter{PropertyID: "prop-a"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, ids(byProperty))

		require.NoError(t, repo.Delete(ctx, "a"))
		remaining, err := repo.List(ctx, ListFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b"}, ids(remaining))
	})
}

func TestRepositoryDelete(t *testing.T) {
	repositories(t, func(t *testing.T, repo ContractRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, newAggregate("d", "Corrientes", "Juan", "Pérez")))

		require.NoError(t, repo.Delete(ctx, "d"))
		_, err := repo.Get(ctx, "d")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, "d"), ErrNotFound)

		cancelled, err := repo.List(ctx, ListFilter{Status: model.StatusTerminated})
		require.NoError(t, err)
		assert.Empty(t, cancelled)
	})
}

func TestRepositoryApplyEdits(t *testing.T) {
	repositories(t, func(t *testing.T, repo ContractRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, newAggregate("e", "Corrientes", "Juan", "Pérez")))

		desc := "Departamento de dos ambientes"
		rate := 0.5
		custom := []model.CustomClause{{Number: 25, Title: "MASCOTAS", Content: "Se permiten mascotas."}}
		overrides := map[string]string{"SEGUNDO": "Plazo acordado.", "TERCERA": ""}

		updated, err := repo.ApplyEdits(ctx, "e", model.ContractEdits{
			PropertyDescription: &desc,
			DailyPenaltyRate:    &rate,
			CustomClauses:       &custom,
			ClauseOverrides:     &overrides,
		})
		require.NoError(t, err)
		assert.Equal(t, desc, updated.PropertyDescription)

		got, err := repo.Get(ctx, "e")
		require.NoError(t, err)
		assert.Equal(t, desc, got.PropertyDescription)
		assert.Equal(t, 0.5, got.DailyPenaltyRate)
		assert.Equal(t, custom, got.CustomClauses)
		assert.Equal(t, map[string]string{"SEGUNDO": "Plazo acordado."}, got.ClauseOverrides)
		// untouched fields survive
		assert.Equal(t, "Corrientes", got.Property.AddressStreet)

		_, err = repo.ApplyEdits(ctx, "missing", model.ContractEdits{PropertyDescription: &desc})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepositoryRecordDocument(t *testing.T) {
	repositories(t, func(t *testing.T, repo ContractRepository) {
		ctx := context.Background()
		require.NoError(t, repo.Save(ctx, newAggregate("r", "Corrientes", "Juan", "Pérez")))

		doc := model.GeneratedDocument{Filename: "Contrato.pdf", ObjectName: "contracts/r/Contrato.pdf", Pages: 4}
		require.NoError(t, repo.RecordDocument(ctx, "r", doc))

		got, err := repo.Get(ctx, "r")
		require.NoError(t, err)
		require.NotNil(t, got.Document)
		assert.Equal(t, "contracts/r/Contrato.pdf", got.Document.ObjectName)
		assert.Equal(t, 4, got.Document.Pages)

		assert.ErrorIs(t, repo.RecordDocument(ctx, "missing", doc), ErrNotFound)
	})
}

func TestSQLiteStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contratos.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, newAggregate("persist", "Corrientes", "Juan", "Pérez")))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(ctx, "persist")
	require.NoError(t, err)
	assert.Equal(t, "Juan", got.Tenants[0].Tenant.FirstName)
}

func ids(list []*model.ContractAggregate) []string {
	out := make([]string, 0, len(list))
	for _, agg := range list {
		out = append(out, agg.ID)
	}
	return out
}
