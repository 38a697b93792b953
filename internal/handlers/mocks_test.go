package handlers_test

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/stretchr/testify/mock"
)

// --- Mock MarketService ---
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMarketService) Stop() {
	m.Called()
}

func (m *MockMarketService) Prices() (domain.MarketData, uint64) {
	args := m.Called()
	return args.Get(0).(domain.MarketData), args.Get(1).(uint64)
}

func (m *MockMarketService) TopMovers(ctx context.Context, limit int) ([]domain.Mover, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mover), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.MarketSvcFacade = (*MockMarketService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockDashboardService) MonthlyOverview(ctx context.Context) (*domain.MonthlyOverview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyOverview), args.Error(1)
}

func (m *MockDashboardService) CashFlow(ctx context.Context) ([]domain.CashFlowDay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CashFlowDay), args.Error(1)
}

func (m *MockDashboardService) Portfolio(ctx context.Context) (*domain.PortfolioView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PortfolioView), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.DashboardSvcFacade = (*MockDashboardService)(nil)
