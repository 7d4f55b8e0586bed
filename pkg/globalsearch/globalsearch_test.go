package globalsearch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler captures scheduled fires so tests control when the debounce
// window elapses.
type manualScheduler struct {
	pending []func()
}

func (m *manualScheduler) schedule(delay time.Duration, fire func()) CancelFunc {
	idx := len(m.pending)
	m.pending = append(m.pending, fire)
	return func() bool {
		if m.pending[idx] == nil {
			return false
		}
		m.pending[idx] = nil
		return true
	}
}

// elapse fires every timer that has not been cancelled.
func (m *manualScheduler) elapse() {
	for i, fire := range m.pending {
		if fire != nil {
			m.pending[i] = nil
			fire()
		}
	}
}

func oneCustomer() *Results {
	return &Results{
		Customers: []Hit{{Id: "1", Code: "CUS-10001", Label: "Meridian Capital Holdings Ltd", Badge: "High"}},
	}
}

func TestShortQueryIssuesNoRequest(t *testing.T) {
	sched := &manualScheduler{}
	calls := 0
	search := func(ctx context.Context, query string) (*Results, error) {
		calls++
		return oneCustomer(), nil
	}
	a := New(search, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "A")
	sched.elapse()

	assert.Zero(t, calls)
	assert.False(t, a.Open())
	assert.Nil(t, a.Groups())
}

func TestShortQueryClearsPriorResults(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return oneCustomer(), nil
	}, WithScheduler(sched.schedule))
	ctx := context.Background()

	a.SetQuery(ctx, "Meridian")
	sched.elapse()
	require.True(t, a.Open())

	a.SetQuery(ctx, "M")

	assert.False(t, a.Open())
	assert.Nil(t, a.Groups())
	assert.False(t, a.NoResults())
}

func TestDebounceFiresOnceForFinalValue(t *testing.T) {
	sched := &manualScheduler{}
	var queries []string
	search := func(ctx context.Context, query string) (*Results, error) {
		queries = append(queries, query)
		return oneCustomer(), nil
	}
	a := New(search, WithScheduler(sched.schedule))
	ctx := context.Background()

	// Five keystrokes inside the debounce window.
	for _, q := range []string{"M", "Me", "Mer", "Meri", "Merid"} {
		a.SetQuery(ctx, q)
	}
	sched.elapse()

	require.Len(t, queries, 1)
	assert.Equal(t, "Merid", queries[0])
}

func TestGroupsKeepFixedOrderAndSkipEmpty(t *testing.T) {
	sched := &manualScheduler{}
	search := func(ctx context.Context, query string) (*Results, error) {
		return &Results{
			Documents: []Hit{{Code: "DOC-00001"}},
			Customers: []Hit{{Code: "CUS-10001"}},
		}, nil
	}
	a := New(search, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "10001")
	sched.elapse()

	groups := a.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Customers", groups[0].Title)
	assert.Equal(t, "Documents", groups[1].Title)
	assert.False(t, a.NoResults())
}

func TestSingleGroupRendered(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return oneCustomer(), nil
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "AB")
	sched.elapse()

	groups := a.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Customers", groups[0].Title)
	assert.Len(t, groups[0].Hits, 1)
}

func TestEmptyResultsSetNoResults(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return &Results{}, nil
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "zzzz")
	sched.elapse()

	assert.True(t, a.Open())
	assert.True(t, a.NoResults())
	assert.Nil(t, a.Groups())
}

func TestFailedSearchFoldsIntoNoResults(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return nil, errors.New("connection refused")
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "Meridian")
	sched.elapse()

	assert.True(t, a.Open())
	assert.True(t, a.NoResults())
	assert.False(t, a.Loading())
}

func TestSelectClearsAndReturnsDeepLink(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return oneCustomer(), nil
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "Meridian")
	sched.elapse()
	require.True(t, a.Open())

	sel := a.Select("customers", a.Groups()[0].Hits[0])

	assert.Equal(t, Selection{Kind: "customers", Code: "CUS-10001"}, sel)
	assert.False(t, a.Open())
	assert.Empty(t, a.Query())
	assert.Nil(t, a.Groups())
}

func TestDismissClearsTransientState(t *testing.T) {
	sched := &manualScheduler{}
	a := New(func(ctx context.Context, query string) (*Results, error) {
		return &Results{}, nil
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "zzzz")
	sched.elapse()
	require.True(t, a.NoResults())

	a.Dismiss()

	assert.False(t, a.Open())
	assert.False(t, a.NoResults())
	assert.Empty(t, a.Query())
}

func TestDismissCancelsPendingTimer(t *testing.T) {
	sched := &manualScheduler{}
	calls := 0
	a := New(func(ctx context.Context, query string) (*Results, error) {
		calls++
		return oneCustomer(), nil
	}, WithScheduler(sched.schedule))

	a.SetQuery(context.Background(), "Meridian")
	a.Dismiss()
	sched.elapse()

	assert.Zero(t, calls)
	assert.False(t, a.Open())
}

func TestStaleResponseDiscarded(t *testing.T) {
	sched := &manualScheduler{}
	release := make(chan struct{})
	search := func(ctx context.Context, query string) (*Results, error) {
		if query == "slow" {
			<-release
			return &Results{Alerts: []Hit{{Code: "ALT-00001"}}}, nil
		}
		return oneCustomer(), nil
	}
	a := New(search, WithScheduler(sched.schedule))
	ctx := context.Background()

	a.SetQuery(ctx, "slow")
	// Fire the slow request on its own goroutine so it sits in flight.
	fire := sched.pending[0]
	sched.pending[0] = nil
	done := make(chan struct{})
	go func() {
		fire()
		close(done)
	}()

	a.SetQuery(ctx, "fresh")
	sched.elapse()
	require.Len(t, a.Groups(), 1)
	require.Equal(t, "Customers", a.Groups()[0].Title)

	close(release)
	<-done

	// The slow response resolved last but must not overwrite the newer one.
	groups := a.Groups()
	require.Len(t, groups, 1)
	assert.Equal(t, "Customers", groups[0].Title)
}
