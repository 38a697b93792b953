package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/utils/accounting"
)

const defaultTopMoversLimit = 10

// MarketOption is a functional option for configuring the MarketService
type MarketOption func(*MarketService)

// WithTopMoversLimit sets how many movers are returned when the caller asks for none.
func WithTopMoversLimit(limit int) MarketOption {
	return func(s *MarketService) {
		if limit > 0 {
			s.moversLimit = limit
		}
	}
}

// WithMarketLogger sets the logger used by the background refresher.
func WithMarketLogger(logger *slog.Logger) MarketOption {
	return func(s *MarketService) { s.logger = logger }
}

// MarketService caches the quotes for the current holdings. It fetches them once on Start,
// merges every feed patch while active, and re-fetches and re-subscribes whenever the
// ticker set of the holdings changes.
type MarketService struct {
	BaseService
	feed        portssvc.MarketDataFeed
	ledger      portssvc.LedgerSvcFacade
	moversLimit int
	logger      *slog.Logger

	mu      sync.Mutex
	prices  domain.MarketData
	version uint64
	tickers []string
	synced  bool // prices were fetched for tickers at least once
	active  bool

	// lifecycle, guarded by mu
	unsubscribeFeed   func()
	unsubscribeLedger func()
	cancelRefresher   context.CancelFunc
	refresherDone     chan struct{}
	refresh           chan struct{}
}

// Ensure MarketService implements the MarketSvcFacade interface
var _ portssvc.MarketSvcFacade = (*MarketService)(nil)

// NewMarketService creates an idle MarketService.
func NewMarketService(feed portssvc.MarketDataFeed, ledger portssvc.LedgerSvcFacade, opts ...MarketOption) *MarketService {
	s := &MarketService{
		feed:        feed,
		ledger:      ledger,
		moversLimit: defaultTopMoversLimit,
		logger:      slog.Default(),
		prices:      domain.MarketData{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to holding changes, fetches the initial prices and subscribes to
// updates. When the initial fetch fails the service stays started, and the next
// investment change retries it. Calling Start on a started service is a no-op.
func (s *MarketService) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	refresh := make(chan struct{}, 1)

	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		cancel()
		return nil
	}
	s.active = true
	s.synced = false
	s.cancelRefresher = cancel
	s.refresherDone = done
	s.refresh = refresh
	s.mu.Unlock()

	unsubscribeLedger := s.ledger.Subscribe(func(change domain.LedgerChange) {
		if change.Entity != domain.InvestmentEntity {
			return
		}
		select {
		case refresh <- struct{}{}:
		default:
		}
	})

	// The initial sync runs before the refresher so that the two never subscribe
	// concurrently. Changes made meanwhile stay queued in refresh.
	syncErr := s.resync(ctx)
	go s.runRefresher(runCtx, refresh, done)

	s.mu.Lock()
	if !s.active {
		// Stopped while starting.
		s.mu.Unlock()
		unsubscribeLedger()
		return nil
	}
	s.unsubscribeLedger = unsubscribeLedger
	s.mu.Unlock()

	if syncErr != nil {
		s.LogError(ctx, syncErr, "Failed to fetch initial prices")
		return fmt.Errorf("failed to start market data: %w", syncErr)
	}
	s.LogInfo(ctx, "Market data started")
	return nil
}

// apply merges a feed patch into the cache. Patches arriving after Stop are dropped.
func (s *MarketService) apply(patch domain.MarketData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.prices.Merge(patch)
	s.version++
}

func (s *MarketService) runRefresher(ctx context.Context, refresh <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case <-refresh:
			if err := s.resync(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("Failed to refresh market subscription", slog.String("error", err.Error()))
			}
		}
	}
}

// resync re-fetches prices and re-subscribes when the ticker set of the holdings changed,
// or when no fetch has succeeded yet.
func (s *MarketService) resync(ctx context.Context) error {
	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read holdings: %w", err)
	}
	tickers := snap.Tickers()

	s.mu.Lock()
	unchanged := s.synced && slices.Equal(tickers, s.tickers)
	s.mu.Unlock()
	if unchanged {
		return nil
	}

	prices, err := s.feed.FetchPrices(ctx, tickers)
	if err != nil {
		return fmt.Errorf("failed to fetch prices: %w", err)
	}

	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return nil
	}
	s.prices = prices.Clone()
	s.version++
	s.tickers = tickers
	s.synced = true
	s.mu.Unlock()

	unsubscribe := s.feed.Subscribe(tickers, s.apply)

	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		unsubscribe()
		return nil
	}
	s.unsubscribeFeed = unsubscribe
	s.mu.Unlock()

	s.logger.Debug("Market subscription refreshed", slog.Int("tickers", len(tickers)))
	return nil
}

// Stop unsubscribes from the feed and the ledger and waits for the refresher to exit.
// Cached prices stay readable.
func (s *MarketService) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	unsubscribeFeed := s.unsubscribeFeed
	unsubscribeLedger := s.unsubscribeLedger
	cancel := s.cancelRefresher
	done := s.refresherDone
	s.unsubscribeFeed, s.unsubscribeLedger, s.cancelRefresher = nil, nil, nil
	s.mu.Unlock()

	if unsubscribeLedger != nil {
		unsubscribeLedger()
	}
	cancel()
	<-done
	if unsubscribeFeed != nil {
		unsubscribeFeed()
	}
	s.logger.Info("Market data stopped")
}

// Prices returns a copy of the cached quotes and the version they were read at.
func (s *MarketService) Prices() (domain.MarketData, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prices.Clone(), s.version
}

// TopMovers ranks the reference quotes by percentage change. A non-positive limit uses
// the configured default.
func (s *MarketService) TopMovers(ctx context.Context, limit int) ([]domain.Mover, error) {
	if limit <= 0 {
		limit = s.moversLimit
	}
	data, err := s.feed.TopMovers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch top movers")
		return nil, fmt.Errorf("failed to fetch top movers: %w", err)
	}
	return accounting.RankMovers(data, limit), nil
}
