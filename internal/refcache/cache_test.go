package refcache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/piddash/pidgen/internal/model"
	"github.com/piddash/pidgen/internal/util"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLoader struct {
	calls int
	err   error
}

func (f *fakeLoader) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []model.Customer{
		{CustomerID: 10, CustomerName: "Acme Corp", CustomerCode: "C100", BUID: 5},
	}, nil
}

func (f *fakeLoader) ListBusinessUnits(ctx context.Context) ([]model.BusinessUnit, error) {
	return []model.BusinessUnit{{BUID: 5, BUName: "Digital Services", BUCode: "DS"}}, f.err
}

func (f *fakeLoader) ListBillingTypes(ctx context.Context) ([]model.BillingType, error) {
	return []model.BillingType{{BillingTypeID: 3, BillingTypeName: "Fixed Price"}}, f.err
}

func (f *fakeLoader) ListSegments(ctx context.Context) ([]model.Segment, error) {
	return []model.Segment{{SegmentID: 7, SegmentName: "Banking"}}, f.err
}

func newTestCache(t *testing.T) (*Cache, *fakeLoader, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	loader := &fakeLoader{}
	return NewCache(client, loader, time.Hour, util.NewLogger("development")), loader, mr
}

func TestRefreshWritesAllCollectionsWithTTL(t *testing.T) {
	cache, _, mr := newTestCache(t)

	require.NoError(t, cache.Refresh(context.Background()))

	for _, key := range []string{customersKey, businessUnitsKey, billingTypesKey, segmentsKey} {
		assert.True(t, mr.Exists(key), "missing key %s", key)
		assert.Equal(t, time.Hour, mr.TTL(key))
	}
}

func TestSnapshotReadsCachedBlobs(t *testing.T) {
	cache, loader, _ := newTestCache(t)
	require.NoError(t, cache.Refresh(context.Background()))
	loader.calls = 0

	refs, err := cache.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, refs.Ready())
	assert.Equal(t, "Acme Corp", refs.Customers[10].CustomerName)
	assert.Equal(t, "DS", refs.BusinessUnits[5].BUCode)
	assert.Equal(t, "Fixed Price", refs.BillingTypes[3].BillingTypeName)
	assert.Equal(t, "Banking", refs.Segments[7].SegmentName)
	assert.Zero(t, loader.calls, "warm cache must not hit the database")
}

func TestSnapshotRepopulatesColdCache(t *testing.T) {
	cache, loader, mr := newTestCache(t)

	refs, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, refs.Ready())
	assert.Equal(t, 1, loader.calls)
	assert.True(t, mr.Exists(customersKey))
}

func TestSnapshotRepopulatesAfterPartialExpiry(t *testing.T) {
	cache, loader, mr := newTestCache(t)
	require.NoError(t, cache.Refresh(context.Background()))
	loader.calls = 0

	// one expired collection makes the whole snapshot reload
	mr.Del(segmentsKey)

	refs, err := cache.Snapshot(context.Background())
	require.NoError(t, err)
	assert.True(t, refs.Ready())
	assert.Equal(t, 1, loader.calls)
}

func TestRefreshPropagatesLoaderErrors(t *testing.T) {
	cache, loader, mr := newTestCache(t)
	loader.err = errors.New("db down")

	err := cache.Refresh(context.Background())
	require.Error(t, err)
	assert.False(t, mr.Exists(customersKey), "failed refresh must not write partial data")
}
