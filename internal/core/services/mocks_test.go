package services_test

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsPage(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var token *string
	if t := args.Get(1); t != nil {
		token = t.(*string)
	}
	if args.Get(0) == nil {
		return nil, token, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), token, args.Error(2)
}

func (m *MockTransactionRepository) MaxSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// MockMarketDataFeed is a mock type for the MarketDataFeed interface. Subscribe records
// the callback so tests can push patches by hand.
type MockMarketDataFeed struct {
	mock.Mock
	mu         sync.Mutex
	callbacks  []func(domain.MarketData)
	fetches    atomic.Int32
	subscribes atomic.Int32
}

func (m *MockMarketDataFeed) FetchPrices(ctx context.Context, tickers []string) (domain.MarketData, error) {
	m.fetches.Add(1)
	args := m.Called(ctx, tickers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MarketData), args.Error(1)
}

func (m *MockMarketDataFeed) TopMovers(ctx context.Context) (domain.MarketData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MarketData), args.Error(1)
}

func (m *MockMarketDataFeed) Subscribe(tickers []string, callback func(domain.MarketData)) func() {
	m.Called(tickers)
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callback)
	m.mu.Unlock()
	m.subscribes.Add(1)
	return func() { m.MethodCalled("Unsubscribe") }
}

// Push delivers patch through the most recent subscription.
func (m *MockMarketDataFeed) Push(patch domain.MarketData) {
	m.mu.Lock()
	callback := m.callbacks[len(m.callbacks)-1]
	m.mu.Unlock()
	callback(patch)
}

// MockPriceSource is a mock type for the MarketSvcFacade interface
type MockPriceSource struct {
	mock.Mock
}

func (m *MockPriceSource) Start(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPriceSource) Stop() {
	m.Called()
}

func (m *MockPriceSource) Prices() (domain.MarketData, uint64) {
	args := m.Called()
	return args.Get(0).(domain.MarketData), args.Get(1).(uint64)
}

func (m *MockPriceSource) TopMovers(ctx context.Context, limit int) ([]domain.Mover, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Mover), args.Error(1)
}
