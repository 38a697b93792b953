package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/utils/accounting"
)

// DashboardOption is a functional option for configuring the DashboardService
type DashboardOption func(*DashboardService)

// WithDashboardClock overrides the clock that decides the current day and month.
func WithDashboardClock(now func() time.Time) DashboardOption {
	return func(s *DashboardService) { s.now = now }
}

// WithLocation sets the time zone that days and months are cut in. Defaults to UTC.
func WithLocation(loc *time.Location) DashboardOption {
	return func(s *DashboardService) {
		if loc != nil {
			s.location = loc
		}
	}
}

// priceSource is the part of the market service the dashboard reads.
type priceSource interface {
	Prices() (domain.MarketData, uint64)
}

type viewKey struct {
	ledgerVersion uint64
	marketVersion uint64
	day           time.Time
}

type dashboardViews struct {
	key       viewKey
	summary   *domain.DashboardSummary
	monthly   *domain.MonthlyOverview
	cashFlow  []domain.CashFlowDay
	portfolio *domain.PortfolioView
}

// DashboardService assembles the read-only views. All views are rebuilt together when the
// ledger version, the market version or the calendar day changes, and shared until then;
// callers must not modify what they receive.
type DashboardService struct {
	BaseService
	ledger   portssvc.LedgerReaderSvc
	market   priceSource
	now      func() time.Time
	location *time.Location

	mu    sync.Mutex
	views *dashboardViews
}

// Ensure DashboardService implements the DashboardSvcFacade interface
var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService.
func NewDashboardService(ledger portssvc.LedgerReaderSvc, market portssvc.MarketSvcFacade, opts ...DashboardOption) *DashboardService {
	s := &DashboardService{
		ledger:   ledger,
		market:   market,
		now:      time.Now,
		location: time.UTC,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *DashboardService) current(ctx context.Context) (*dashboardViews, error) {
	now := s.now().In(s.location)
	prices, marketVersion := s.market.Prices()
	key := viewKey{
		ledgerVersion: s.ledger.Version(),
		marketVersion: marketVersion,
		day:           time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.views != nil && s.views.key == key {
		return s.views, nil
	}

	snap, err := s.ledger.Snapshot(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to snapshot ledger for dashboard")
		return nil, fmt.Errorf("failed to snapshot ledger: %w", err)
	}
	key.ledgerVersion = snap.Version

	views := buildViews(snap, prices, now)
	views.key = key
	views.summary.MarketVersion = marketVersion
	s.views = views

	s.LogDebug(ctx, "Dashboard views rebuilt",
		slog.Uint64("ledger_version", key.ledgerVersion),
		slog.Uint64("market_version", key.marketVersion))
	return views, nil
}

func buildViews(snap domain.LedgerSnapshot, prices domain.MarketData, now time.Time) *dashboardViews {
	balances := accounting.AccountBalances(snap.Accounts, snap.Transactions)
	total := accounting.TotalBalance(balances)
	portfolio := accounting.Summarize(snap.Investments, snap.FixedIncome, prices)
	monthly := accounting.MonthlyOverview(snap.Transactions, now)

	return &dashboardViews{
		summary: &domain.DashboardSummary{
			LedgerVersion:   snap.Version,
			Accounts:        accounting.WithBalances(snap.Accounts, balances),
			AccountBalances: balances,
			TotalBalance:    total,
			Portfolio:       portfolio,
		},
		monthly:  &monthly,
		cashFlow: accounting.CashFlowDays(snap.Transactions, total),
		portfolio: &domain.PortfolioView{
			Summary: portfolio,
			Groups:  accounting.GroupHoldings(portfolio.Holdings, portfolio.FixedIncome),
		},
	}
}

// Summary returns balances and portfolio totals.
func (s *DashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	views, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return views.summary, nil
}

// MonthlyOverview returns the month-to-date income and expense overview.
func (s *DashboardService) MonthlyOverview(ctx context.Context) (*domain.MonthlyOverview, error) {
	views, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return views.monthly, nil
}

// CashFlow returns transactions grouped by day with the closing total of each day.
func (s *DashboardService) CashFlow(ctx context.Context) ([]domain.CashFlowDay, error) {
	views, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return views.cashFlow, nil
}

// Portfolio returns the valued holdings grouped for display.
func (s *DashboardService) Portfolio(ctx context.Context) (*domain.PortfolioView, error) {
	views, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return views.portfolio, nil
}
