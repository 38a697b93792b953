package marketdata

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFeed(opts ...FeedOption) *Feed {
	base := []FeedOption{WithLatency(0, 0), WithSeed(42), WithTickInterval(5 * time.Millisecond)}
	return NewFeed(append(base, opts...)...)
}

func TestFetchPrices_KnownAndSynthesized(t *testing.T) {
	feed := newTestFeed()

	data, err := feed.FetchPrices(context.Background(), []string{"PETR4", "NOTREAL3"})
	require.NoError(t, err)
	require.Len(t, data, 2)

	petr := data["PETR4"]
	assert.Equal(t, "38.15", petr.Price.StringFixed(2))
	assert.Equal(t, "0.50", petr.Change.StringFixed(2))
	assert.Equal(t, domain.Hold, petr.Signal)

	synthetic := data["NOTREAL3"]
	assert.True(t, synthetic.Price.GreaterThanOrEqual(decimal.NewFromInt(10)))
	assert.True(t, synthetic.Price.LessThanOrEqual(decimal.NewFromInt(210)))
	assert.True(t, synthetic.Change.Abs().LessThanOrEqual(decimal.NewFromInt(5)))
	assert.Equal(t, synthetic.Price, synthetic.Price.Round(2))
	assert.Contains(t, []domain.Signal{domain.Buy, domain.Sell, domain.Hold}, synthetic.Signal)
}

func TestFetchPrices_HonoursContext(t *testing.T) {
	feed := NewFeed(WithLatency(time.Hour, time.Hour))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := feed.FetchPrices(ctx, []string{"PETR4"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = feed.TopMovers(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopMovers_ReturnsReferenceTable(t *testing.T) {
	feed := newTestFeed()

	data, err := feed.TopMovers(context.Background())
	require.NoError(t, err)
	assert.Len(t, data, len(referenceQuotes))
	assert.Equal(t, "68500.00", data["BTC"].Price.StringFixed(2))
}

func TestTick_PerturbsWithinOnePercent(t *testing.T) {
	feed := newTestFeed()
	before := newReferenceTable()

	for i := 0; i < 50; i++ {
		prev := make(map[string]decimal.Decimal, len(feed.table))
		for ticker, info := range feed.table {
			prev[ticker] = info.Price
		}

		patch := feed.tick()

		require.Len(t, patch, len(before))
		for ticker, info := range patch {
			bound := prev[ticker].Mul(decimal.RequireFromString("0.01")).Add(decimal.RequireFromString("0.005"))
			assert.True(t, info.Change.Abs().LessThanOrEqual(bound), "%s moved %s from %s", ticker, info.Change, prev[ticker])
			assert.Equal(t, domain.SignalFor(feed.table[ticker].Price, feed.table[ticker].Change), info.Signal)
			assert.True(t, info.Price.Equal(info.Price.Round(2)))
		}
	}
}

func TestSubscribe_DeliversPatchesUntilUnsubscribed(t *testing.T) {
	feed := newTestFeed()
	var calls atomic.Int32

	unsubscribe := feed.Subscribe([]string{"PETR4"}, func(patch domain.MarketData) {
		calls.Add(1)
	})
	require.True(t, feed.Active())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)

	unsubscribe()
	assert.False(t, feed.Active())
	after := calls.Load()

	assert.NotPanics(t, unsubscribe, "unsubscribe is idempotent")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no callback fires after unsubscribe")
}

func TestSubscribe_ReplacesPreviousSubscription(t *testing.T) {
	feed := newTestFeed()
	var first, second atomic.Int32

	unsubFirst := feed.Subscribe(nil, func(domain.MarketData) { first.Add(1) })
	require.Eventually(t, func() bool { return first.Load() >= 1 }, time.Second, time.Millisecond)

	unsubSecond := feed.Subscribe(nil, func(domain.MarketData) { second.Add(1) })
	frozen := first.Load()
	require.Eventually(t, func() bool { return second.Load() >= 2 }, time.Second, time.Millisecond)
	assert.Equal(t, frozen, first.Load(), "the replaced subscription is stopped")

	// Cancelling the stale handle must not stop the new subscription.
	unsubFirst()
	assert.True(t, feed.Active())

	unsubSecond()
	assert.False(t, feed.Active())
}

func TestClose_StopsSubscription(t *testing.T) {
	feed := newTestFeed()
	var mu sync.Mutex
	received := domain.MarketData{}

	unsubscribe := feed.Subscribe(nil, func(patch domain.MarketData) {
		mu.Lock()
		received.Merge(patch)
		mu.Unlock()
	})
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(received) == len(referenceQuotes)
	}, time.Second, time.Millisecond)

	feed.Close()
	assert.False(t, feed.Active())
	assert.NotPanics(t, unsubscribe)
	assert.NotPanics(t, feed.Close)
}
