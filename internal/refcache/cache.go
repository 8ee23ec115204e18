package refcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/workflow"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Redis keys for the cached reference collections. Each key holds the full
// collection as one JSON array; the collections are small and always read
// together, so per-row keys would buy nothing.
const (
	customersKey     = "ref:customers"
	businessUnitsKey = "ref:business_units"
	billingTypesKey  = "ref:billing_types"
	segmentsKey      = "ref:segments"
)

// Loader is the database side of the cache, implemented by the reference
// repositories. Only active rows are loaded; inactive rows stay selectable
// nowhere but remain joinable through records that already point at them.
type Loader interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	ListBusinessUnits(ctx context.Context) ([]model.BusinessUnit, error)
	ListBillingTypes(ctx context.Context) ([]model.BillingType, error)
	ListSegments(ctx context.Context) ([]model.Segment, error)
}

// Cache is a read-through redis cache for the four reference collections the
// enrichment pipeline joins against. A cron job calls Refresh periodically;
// Snapshot repopulates on a cold cache so the dashboard never waits for the
// next cron tick.
type Cache struct {
	client *redis.Client
	loader Loader
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewCache(client *redis.Client, loader Loader, ttl time.Duration, logger *zap.SugaredLogger) *Cache {
	return &Cache{
		client: client,
		loader: loader,
		ttl:    ttl,
		logger: logger,
	}
}

// Refresh reloads all four collections from the database and overwrites the
// cached blobs in one pipeline. Partial failures abort before any write so
// the cache never holds collections from two different loads.
func (c *Cache) Refresh(ctx context.Context) error {
	customers, err := c.loader.ListCustomers(ctx)
	if err != nil {
		return fmt.Errorf("refcache: load customers: %w", err)
	}
	businessUnits, err := c.loader.ListBusinessUnits(ctx)
	if err != nil {
		return fmt.Errorf("refcache: load business units: %w", err)
	}
	billingTypes, err := c.loader.ListBillingTypes(ctx)
	if err != nil {
		return fmt.Errorf("refcache: load billing types: %w", err)
	}
	segments, err := c.loader.ListSegments(ctx)
	if err != nil {
		return fmt.Errorf("refcache: load segments: %w", err)
	}

	pipe := c.client.Pipeline()
	for key, collection := range map[string]any{
		customersKey:     customers,
		businessUnitsKey: businessUnits,
		billingTypesKey:  billingTypes,
		segmentsKey:      segments,
	} {
		blob, err := json.Marshal(collection)
		if err != nil {
			return fmt.Errorf("refcache: marshal %s: %w", key, err)
		}
		pipe.Set(ctx, key, blob, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("refcache: write cache: %w", err)
	}

	c.logger.Debugw("reference cache refreshed",
		"customers", len(customers),
		"businessUnits", len(businessUnits),
		"billingTypes", len(billingTypes),
		"segments", len(segments),
	)
	return nil
}

// Snapshot returns the reference data keyed for enrichment. A cold cache (any
// key missing or expired) triggers a synchronous Refresh first.
func (c *Cache) Snapshot(ctx context.Context) (workflow.ReferenceData, error) {
	refs, missing, err := c.read(ctx)
	if err != nil {
		return workflow.ReferenceData{}, err
	}
	if !missing {
		return refs, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return workflow.ReferenceData{}, err
	}
	refs, _, err = c.read(ctx)
	return refs, err
}

func (c *Cache) read(ctx context.Context) (workflow.ReferenceData, bool, error) {
	blobs, err := c.client.MGet(ctx, customersKey, businessUnitsKey, billingTypesKey, segmentsKey).Result()
	if err != nil {
		return workflow.ReferenceData{}, false, fmt.Errorf("refcache: read cache: %w", err)
	}
	for _, b := range blobs {
		if b == nil {
			return workflow.ReferenceData{}, true, nil
		}
	}

	var (
		customers     []model.Customer
		businessUnits []model.BusinessUnit
		billingTypes  []model.BillingType
		segments      []model.Segment
	)
	if err := unmarshalBlob(blobs[0], customersKey, &customers); err != nil {
		return workflow.ReferenceData{}, false, err
	}
	if err := unmarshalBlob(blobs[1], businessUnitsKey, &businessUnits); err != nil {
		return workflow.ReferenceData{}, false, err
	}
	if err := unmarshalBlob(blobs[2], billingTypesKey, &billingTypes); err != nil {
		return workflow.ReferenceData{}, false, err
	}
	if err := unmarshalBlob(blobs[3], segmentsKey, &segments); err != nil {
		return workflow.ReferenceData{}, false, err
	}

	refs := workflow.ReferenceData{
		Customers:     make(map[int64]model.Customer, len(customers)),
		BusinessUnits: make(map[int64]model.BusinessUnit, len(businessUnits)),
		BillingTypes:  make(map[int64]model.BillingType, len(billingTypes)),
		Segments:      make(map[int64]model.Segment, len(segments)),
	}
	for _, cu := range customers {
		refs.Customers[cu.CustomerID] = cu
	}
	for _, bu := range businessUnits {
		refs.BusinessUnits[bu.BUID] = bu
	}
	for _, bt := range billingTypes {
		refs.BillingTypes[bt.BillingTypeID] = bt
	}
	for _, s := range segments {
		refs.Segments[s.SegmentID] = s
	}
	return refs, false, nil
}

func unmarshalBlob(blob any, key string, dst any) error {
	s, ok := blob.(string)
	if !ok {
		return fmt.Errorf("refcache: unexpected value type for %s", key)
	}
	if err := json.Unmarshal([]byte(s), dst); err != nil {
		return fmt.Errorf("refcache: unmarshal %s: %w", key, err)
	}
	return nil
}
