// Package marketdata simulates a quote provider: a fixed reference table that drifts on a
// timer, plus synthesized quotes for tickers it does not know.
package marketdata

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	defaultTickInterval  = 3 * time.Second
	defaultFetchLatency  = 500 * time.Millisecond
	defaultMoversLatency = 300 * time.Millisecond

	displayPlaces  = 2
	internalPlaces = 8
)

const (
	maxStep          = 0.01 // ±1% per tick
	syntheticMin     = 10.0
	syntheticSpan    = 200.0
	syntheticMaxMove = 5.0
)

// Feed is an owned market-data handle. It runs at most one subscription at a time; the
// component that creates it is responsible for calling Close.
type Feed struct {
	tickInterval  time.Duration
	fetchLatency  time.Duration
	moversLatency time.Duration
	logger        *slog.Logger

	mu    sync.Mutex // guards table and rng
	table map[string]domain.MarketInfo
	rng   *rand.Rand

	subMu  sync.Mutex
	active *subscription
}

// FeedOption configures a Feed.
type FeedOption func(*Feed)

// WithTickInterval sets the period between price updates.
func WithTickInterval(d time.Duration) FeedOption {
	return func(f *Feed) { f.tickInterval = d }
}

// WithLatency sets the simulated latency of FetchPrices and TopMovers.
func WithLatency(fetch, movers time.Duration) FeedOption {
	return func(f *Feed) {
		f.fetchLatency = fetch
		f.moversLatency = movers
	}
}

// WithSeed makes the random walk reproducible. Zero keeps a time-based seed.
func WithSeed(seed uint64) FeedOption {
	return func(f *Feed) {
		if seed != 0 {
			f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		}
	}
}

// WithLogger sets the logger used by the ticking goroutine.
func WithLogger(logger *slog.Logger) FeedOption {
	return func(f *Feed) { f.logger = logger }
}

// NewFeed creates an idle feed over a fresh copy of the reference table.
func NewFeed(opts ...FeedOption) *Feed {
	now := uint64(time.Now().UnixNano())
	f := &Feed{
		tickInterval:  defaultTickInterval,
		fetchLatency:  defaultFetchLatency,
		moversLatency: defaultMoversLatency,
		logger:        slog.Default(),
		table:         newReferenceTable(),
		rng:           rand.New(rand.NewPCG(now, now>>1)),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ portssvc.MarketDataFeed = (*Feed)(nil)

func round(info domain.MarketInfo) domain.MarketInfo {
	return domain.MarketInfo{
		Price:  info.Price.Round(displayPlaces),
		Change: info.Change.Round(displayPlaces),
		Signal: info.Signal,
	}
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// FetchPrices returns the current quote of every known ticker and a synthesized one for
// the others. Synthesized quotes are not remembered and never move.
func (f *Feed) FetchPrices(ctx context.Context, tickers []string) (domain.MarketData, error) {
	if err := wait(ctx, f.fetchLatency); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(domain.MarketData, len(tickers))
	for _, ticker := range tickers {
		if info, ok := f.table[ticker]; ok {
			result[ticker] = round(info)
			continue
		}
		result[ticker] = f.synthesize()
	}
	return result, nil
}

// synthesize draws a price in [10, 210) and a change in [-5, 5). Callers hold f.mu.
func (f *Feed) synthesize() domain.MarketInfo {
	price := decimal.NewFromFloat(f.rng.Float64()*syntheticSpan + syntheticMin)
	change := decimal.NewFromFloat(f.rng.Float64()*2*syntheticMaxMove - syntheticMaxMove)
	return round(domain.MarketInfo{
		Price:  price,
		Change: change,
		Signal: domain.SignalFor(price, change),
	})
}

// TopMovers returns a copy of the whole reference table.
func (f *Feed) TopMovers(ctx context.Context) (domain.MarketData, error) {
	if err := wait(ctx, f.moversLatency); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	result := make(domain.MarketData, len(f.table))
	for ticker, info := range f.table {
		result[ticker] = round(info)
	}
	return result, nil
}

// tick moves every reference ticker by a uniform factor in [-1%, +1%) and returns the
// rounded patch.
func (f *Feed) tick() domain.MarketData {
	f.mu.Lock()
	defer f.mu.Unlock()

	patch := make(domain.MarketData, len(f.table))
	for ticker, info := range f.table {
		factor := decimal.NewFromFloat((f.rng.Float64() - 0.5) * 2 * maxStep)
		delta := info.Price.Mul(factor).Round(internalPlaces)
		price := info.Price.Add(delta)
		next := domain.MarketInfo{
			Price:  price,
			Change: delta,
			Signal: domain.SignalFor(price, delta),
		}
		f.table[ticker] = next
		patch[ticker] = round(next)
	}
	return patch
}

type subscription struct {
	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// cancel stops the ticking goroutine and waits until it has exited, so no callback runs
// after it returns. It must not be called from inside the callback.
func (s *subscription) cancel() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// Subscribe starts delivering patches to callback every tick interval, replacing any
// previous subscription of this feed. The tickers are informational: every reference
// ticker moves on each tick.
func (f *Feed) Subscribe(tickers []string, callback func(domain.MarketData)) func() {
	sub := &subscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	f.subMu.Lock()
	previous := f.active
	f.active = sub
	f.subMu.Unlock()

	if previous != nil {
		previous.cancel()
	}

	f.logger.Debug("Market feed subscription started", slog.Int("tickers", len(tickers)), slog.Duration("interval", f.tickInterval))
	go f.run(sub, callback)

	return func() {
		sub.cancel()
		f.subMu.Lock()
		if f.active == sub {
			f.active = nil
		}
		f.subMu.Unlock()
	}
}

func (f *Feed) run(sub *subscription, callback func(domain.MarketData)) {
	defer close(sub.done)

	ticker := time.NewTicker(f.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-sub.stop:
			return
		case <-ticker.C:
			patch := f.tick()
			select {
			case <-sub.stop:
				return
			default:
			}
			callback(patch)
		}
	}
}

// Active reports whether a subscription is running.
func (f *Feed) Active() bool {
	f.subMu.Lock()
	defer f.subMu.Unlock()
	return f.active != nil
}

// Close stops the running subscription, if any.
func (f *Feed) Close() {
	f.subMu.Lock()
	sub := f.active
	f.active = nil
	f.subMu.Unlock()

	if sub != nil {
		sub.cancel()
		f.logger.Debug("Market feed closed")
	}
}
