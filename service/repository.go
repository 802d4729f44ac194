package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/AnTengye/contratos/config"
	"github.com/AnTengye/contratos/generator"
	"github.com/AnTengye/contratos/model"
)

var (
	// ErrNotFound is returned for unknown or deleted contracts
	ErrNotFound = errors.New("contract not found")
	// ErrStorageDisabled is returned when publishing without object storage
	ErrStorageDisabled = errors.New("object storage not configured")
)

// ContractRepository persists contract aggregates and the document edits made on them
type ContractRepository interface {
	Save(ctx context.Context, agg *model.ContractAggregate) error
	Get(ctx context.Context, id string) (*model.ContractAggregate, error)
	List(ctx context.Context, filter ListFilter) ([]*model.ContractAggregate, error)
	// Delete cancels a contract: status rescindido and deleted_at set.
	// Deleted contracts are hidden from Get and List.
	Delete(ctx context.Context, id string) error
	ApplyEdits(ctx context.Context, id string, edits model.ContractEdits) (*model.ContractAggregate, error)
	RecordDocument(ctx context.Context, id string, doc model.GeneratedDocument) error
	Close() error
}

// ListFilter narrows List results. Zero fields match everything.
type ListFilter struct {
	Status     model.ContractStatus
	PropertyID string
	// Search matches the property address or any tenant name, case-insensitively
	Search string
}

func (f ListFilter) matches(agg *model.ContractAggregate) bool {
	if f.Status != "" && agg.Status != f.Status {
		return false
	}
	if f.PropertyID != "" && agg.PropertyID != f.PropertyID {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	if agg.Property != nil && strings.Contains(strings.ToLower(generator.PropertyAddress(agg.Property)), needle) {
		return true
	}
	for _, ct := range agg.Tenants {
		if ct.Tenant != nil && strings.Contains(strings.ToLower(ct.Tenant.FullName()), needle) {
			return true
		}
	}
	return false
}

// newestFirst orders contracts by creation time, most recent first
func newestFirst(list []*model.ContractAggregate) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

// NewRepository opens the store selected by cfg.Driver
func NewRepository(cfg *config.StoreConfig) (ContractRepository, error) {
	switch cfg.Driver {
	case "", config.DriverMemory:
		return NewContractStore(cfg), nil
	case config.DriverSQLite:
		return NewSQLiteStore(cfg.Path)
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
