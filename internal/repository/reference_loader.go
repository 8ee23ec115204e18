package repository

import (
	"context"

	"github.com/piddash/pidgen/internal/model"
)

// ReferenceLoader bundles the four active-row listings the reference cache
// refreshes from. It satisfies refcache.Loader.
type ReferenceLoader struct {
	r *Repository
}

func NewReferenceLoader(r *Repository) *ReferenceLoader {
	return &ReferenceLoader{r: r}
}

func (l ReferenceLoader) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return l.r.Customer.ListActive(ctx, nil)
}

func (l ReferenceLoader) ListBusinessUnits(ctx context.Context) ([]model.BusinessUnit, error) {
	return l.r.BusinessUnit.ListActive(ctx, nil)
}

func (l ReferenceLoader) ListBillingTypes(ctx context.Context) ([]model.BillingType, error) {
	return l.r.BillingType.ListActive(ctx, nil)
}

func (l ReferenceLoader) ListSegments(ctx context.Context) ([]model.Segment, error) {
	return l.r.Segment.ListActive(ctx, nil)
}
