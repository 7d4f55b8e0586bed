package listquery

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name string
}

func rows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{Name: fmt.Sprintf("row-%02d", i+1)}
	}
	return out
}

func customerSchema() Schema {
	return Schema{
		Entity:        "customers",
		FilterKeys:    []string{"risk_tier", "kyc_status", "jurisdiction"},
		DefaultSortBy: "customer_id",
	}
}

func staticFetch(results []row) FetchFunc[row] {
	return func(ctx context.Context, query url.Values) ([]row, error) {
		return results, nil
	}
}

func TestQuerySerialization(t *testing.T) {
	var captured url.Values
	fetch := func(ctx context.Context, query url.Values) ([]row, error) {
		captured = query
		return nil, nil
	}
	c := NewController(customerSchema(), fetch)

	require.NoError(t, c.SetSearch(context.Background(), "Acme"))
	require.NoError(t, c.ToggleFilter(context.Background(), "risk_tier", "High"))
	require.NoError(t, c.SortBy(context.Background(), "legal_name"))

	assert.Equal(t, "Acme", captured.Get("search"))
	assert.Equal(t, "High", captured.Get("risk_tier"))
	assert.Equal(t, "legal_name", captured.Get("sort_by"))
	assert.Equal(t, "asc", captured.Get("sort_order"))
}

func TestQueryOmitsEmptyParameters(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(nil))

	query := c.Query()
	_, hasSearch := query["search"]
	_, hasTier := query["risk_tier"]

	assert.False(t, hasSearch)
	assert.False(t, hasTier)
	assert.Equal(t, "customer_id", query.Get("sort_by"))
	assert.Equal(t, "asc", query.Get("sort_order"))
}

func TestQueryReflectsCurrentStateOnly(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(nil))
	ctx := context.Background()

	require.NoError(t, c.ToggleFilter(ctx, "risk_tier", "High"))
	require.NoError(t, c.ToggleFilter(ctx, "risk_tier", "Medium"))
	assert.Equal(t, "High,Medium", c.Query().Get("risk_tier"))

	// Toggling an already selected value removes it.
	require.NoError(t, c.ToggleFilter(ctx, "risk_tier", "High"))
	assert.Equal(t, "Medium", c.Query().Get("risk_tier"))

	require.NoError(t, c.ClearFilters(ctx))
	_, hasTier := c.Query()["risk_tier"]
	assert.False(t, hasTier)
}

func TestSortToggle(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(nil))
	ctx := context.Background()

	require.NoError(t, c.SortBy(ctx, "legal_name"))
	assert.Equal(t, Sort{Column: "legal_name", Order: "asc"}, c.Sort())

	require.NoError(t, c.SortBy(ctx, "legal_name"))
	assert.Equal(t, Sort{Column: "legal_name", Order: "desc"}, c.Sort())

	require.NoError(t, c.SortBy(ctx, "legal_name"))
	assert.Equal(t, Sort{Column: "legal_name", Order: "asc"}, c.Sort())

	// A new column always starts ascending, even from desc.
	require.NoError(t, c.SortBy(ctx, "legal_name"))
	require.NoError(t, c.SortBy(ctx, "risk_tier"))
	assert.Equal(t, Sort{Column: "risk_tier", Order: "asc"}, c.Sort())
}

func TestPaginationInvariant(t *testing.T) {
	tests := []struct {
		total     int
		wantPages int
		lastPage  int
	}{
		{0, 1, 0},
		{1, 1, 1},
		{15, 1, 15},
		{16, 2, 1},
		{40, 3, 10},
		{45, 3, 15},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d results", tt.total), func(t *testing.T) {
			c := NewController(customerSchema(), staticFetch(rows(tt.total)))
			require.NoError(t, c.Refresh(context.Background()))

			assert.Equal(t, tt.wantPages, c.TotalPages())
			assert.Equal(t, tt.total, c.TotalCount())

			c.SetPage(c.TotalPages())
			assert.Len(t, c.Page(), tt.lastPage)
		})
	}
}

func TestPageSlice(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(rows(40)))
	require.NoError(t, c.Refresh(context.Background()))

	first := c.Page()
	require.Len(t, first, PageSize)
	assert.Equal(t, "row-01", first[0].Name)

	c.SetPage(2)
	second := c.Page()
	require.Len(t, second, PageSize)
	assert.Equal(t, "row-16", second[0].Name)

	c.SetPage(3)
	assert.Len(t, c.Page(), 10)
}

func TestSetPageClamps(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(rows(40)))
	require.NoError(t, c.Refresh(context.Background()))

	c.SetPage(99)
	assert.Equal(t, 3, c.PageNumber())

	c.SetPage(-1)
	assert.Equal(t, 1, c.PageNumber())
}

func TestSearchResetsPage(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(rows(40)))
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))

	c.SetPage(3)
	require.NoError(t, c.SetSearch(ctx, "row"))
	assert.Equal(t, 1, c.PageNumber())
}

func TestPageClampsWhenResultsShrink(t *testing.T) {
	results := rows(40)
	fetch := func(ctx context.Context, query url.Values) ([]row, error) {
		return results, nil
	}
	c := NewController(customerSchema(), fetch)
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))
	c.SetPage(3)

	// The same query can legitimately return fewer rows on a later refresh.
	results = rows(5)
	require.NoError(t, c.Refresh(ctx))

	assert.Equal(t, 1, c.PageNumber())
	assert.Len(t, c.Page(), 5)
}

func TestStaleResponseDiscarded(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	fetch := func(ctx context.Context, query url.Values) ([]row, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
			return []row{{Name: "stale"}}, nil
		}
		return []row{{Name: "fresh"}}, nil
	}
	c := NewController(customerSchema(), fetch)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		_ = c.Refresh(ctx)
		close(done)
	}()

	// Wait for the first request to be in flight, then supersede it.
	<-started
	require.NoError(t, c.Refresh(ctx))
	close(release)
	<-done

	page := c.Page()
	require.Len(t, page, 1)
	assert.Equal(t, "fresh", page[0].Name)
}

func TestFetchErrorReplacesResults(t *testing.T) {
	fail := false
	fetch := func(ctx context.Context, query url.Values) ([]row, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return rows(3), nil
	}
	c := NewController(customerSchema(), fetch)
	ctx := context.Background()
	require.NoError(t, c.Refresh(ctx))
	require.Len(t, c.Page(), 3)

	fail = true
	require.Error(t, c.Refresh(ctx))
	assert.Error(t, c.Err())
	assert.Empty(t, c.Page())

	fail = false
	require.NoError(t, c.Retry(ctx))
	assert.NoError(t, c.Err())
	assert.Len(t, c.Page(), 3)
}

func TestIdempotentRefresh(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(rows(20)))
	ctx := context.Background()

	require.NoError(t, c.Refresh(ctx))
	first := c.Page()
	require.NoError(t, c.Refresh(ctx))

	assert.Equal(t, first, c.Page())
	assert.Equal(t, 1, c.PageNumber())
}

func TestWithSearchSeedsDeepLink(t *testing.T) {
	c := NewController(customerSchema(), staticFetch(nil), WithSearch[row]("CUS-10004"))
	assert.Equal(t, "CUS-10004", c.SearchTerm())
	assert.Equal(t, "CUS-10004", c.Query().Get("search"))
}
