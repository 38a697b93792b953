package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/database/memory"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func quote(price, change string) domain.MarketInfo {
	return domain.MarketInfo{Price: dec(price), Change: dec(change), Signal: domain.SignalFor(dec(price), dec(change))}
}

type MarketServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	feed    *MockMarketDataFeed
	ledger  *services.LedgerService
	service *services.MarketService
}

func (suite *MarketServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.feed = new(MockMarketDataFeed)
	suite.feed.On("Unsubscribe").Maybe()
	suite.ledger = services.NewLedgerService(memory.NewRepositoryProvider(memory.NewStore()))
	suite.service = services.NewMarketService(suite.feed, suite.ledger, services.WithTopMoversLimit(3))

	for _, ticker := range []string{"PETR4", "AAPL"} {
		_, err := suite.ledger.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
			AssetType: domain.Stock, Ticker: ticker, Quantity: dec("1"), PurchasePrice: dec("10"), PurchaseDate: fixedNow,
		})
		suite.Require().NoError(err)
	}
}

func (suite *MarketServiceTestSuite) TearDownTest() {
	suite.service.Stop()
}

func TestMarketServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MarketServiceTestSuite))
}

func (suite *MarketServiceTestSuite) expectStart() {
	initial := domain.MarketData{"PETR4": quote("38.50", "0.20"), "AAPL": quote("175.20", "-1.50")}
	suite.feed.On("FetchPrices", mock.Anything, []string{"PETR4", "AAPL"}).Return(initial, nil).Once()
	suite.feed.On("Subscribe", []string{"PETR4", "AAPL"}).Once()
}

func (suite *MarketServiceTestSuite) TestStart_FetchesAndSubscribes() {
	suite.expectStart()

	suite.Require().NoError(suite.service.Start(suite.ctx))
	suite.Require().NoError(suite.service.Start(suite.ctx), "second start is a no-op")

	prices, version := suite.service.Prices()
	suite.Equal(uint64(1), version)
	suite.Len(prices, 2)
	suite.True(dec("38.50").Equal(prices["PETR4"].Price))
	suite.feed.AssertExpectations(suite.T())
}

func (suite *MarketServiceTestSuite) TestPatchesMergeIntoCache() {
	suite.expectStart()
	suite.Require().NoError(suite.service.Start(suite.ctx))

	suite.feed.Push(domain.MarketData{"PETR4": quote("38.60", "0.10"), "BTC": quote("340000", "1500")})

	prices, version := suite.service.Prices()
	suite.Equal(uint64(2), version)
	suite.True(dec("38.60").Equal(prices["PETR4"].Price))
	suite.True(dec("175.20").Equal(prices["AAPL"].Price), "tickers missing from the patch keep their quote")
	suite.Contains(prices, "BTC")
}

func (suite *MarketServiceTestSuite) TestPatchesAfterStopAreDropped() {
	suite.expectStart()
	suite.Require().NoError(suite.service.Start(suite.ctx))

	suite.service.Stop()
	suite.service.Stop()
	suite.feed.Push(domain.MarketData{"PETR4": quote("1", "1")})

	prices, version := suite.service.Prices()
	suite.Equal(uint64(1), version)
	suite.True(dec("38.50").Equal(prices["PETR4"].Price))
	suite.feed.AssertCalled(suite.T(), "Unsubscribe")
}

func (suite *MarketServiceTestSuite) TestPricesReturnsCopy() {
	suite.expectStart()
	suite.Require().NoError(suite.service.Start(suite.ctx))

	prices, _ := suite.service.Prices()
	delete(prices, "PETR4")

	again, _ := suite.service.Prices()
	suite.Contains(again, "PETR4")
}

func (suite *MarketServiceTestSuite) TestStart_FetchFailure() {
	suite.feed.On("FetchPrices", mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded).Once()

	err := suite.service.Start(suite.ctx)

	suite.ErrorIs(err, context.DeadlineExceeded)
	prices, version := suite.service.Prices()
	suite.Empty(prices)
	suite.Zero(version)
	suite.feed.AssertNotCalled(suite.T(), "Subscribe", mock.Anything)
}

func (suite *MarketServiceTestSuite) TestStart_FetchFailureRecoversOnHoldingChange() {
	suite.feed.On("FetchPrices", mock.Anything, mock.Anything).Return(nil, errors.New("feed unavailable")).Once()
	suite.Require().Error(suite.service.Start(suite.ctx))

	recovered := domain.MarketData{
		"PETR4": quote("38.50", "0.20"),
		"AAPL":  quote("175.20", "-1.50"),
		"BTC":   quote("340000", "1500"),
	}
	suite.feed.On("FetchPrices", mock.Anything, []string{"PETR4", "AAPL", "BTC"}).Return(recovered, nil).Once()
	suite.feed.On("Subscribe", []string{"PETR4", "AAPL", "BTC"}).Once()

	_, err := suite.ledger.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
		AssetType: domain.Crypto, Ticker: "BTC", Quantity: dec("0.1"), PurchasePrice: dec("300000"), PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		prices, _ := suite.service.Prices()
		return len(prices) == 3
	}, 2*time.Second, 10*time.Millisecond)
	suite.Eventually(func() bool {
		return suite.feed.subscribes.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
	suite.Equal(int32(2), suite.feed.fetches.Load())
}

func (suite *MarketServiceTestSuite) TestStart_RetriesWithUnchangedTickers() {
	suite.feed.On("FetchPrices", mock.Anything, mock.Anything).Return(nil, errors.New("feed unavailable")).Once()
	suite.Require().Error(suite.service.Start(suite.ctx))

	suite.expectStart()
	// A second lot of a held ticker leaves the ticker set as it was.
	_, err := suite.ledger.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
		AssetType: domain.Stock, Ticker: "AAPL", Quantity: dec("2"), PurchasePrice: dec("12"), PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		prices, _ := suite.service.Prices()
		return len(prices) == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func (suite *MarketServiceTestSuite) TestHoldingChangeResubscribes() {
	suite.expectStart()
	suite.Require().NoError(suite.service.Start(suite.ctx))

	refreshed := domain.MarketData{
		"PETR4": quote("38.50", "0.20"),
		"AAPL":  quote("175.20", "-1.50"),
		"BTC":   quote("340000", "1500"),
	}
	suite.feed.On("FetchPrices", mock.Anything, []string{"PETR4", "AAPL", "BTC"}).Return(refreshed, nil).Once()
	suite.feed.On("Subscribe", []string{"PETR4", "AAPL", "BTC"}).Once()

	_, err := suite.ledger.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
		AssetType: domain.Crypto, Ticker: "BTC", Quantity: dec("0.1"), PurchasePrice: dec("300000"), PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)

	suite.Eventually(func() bool {
		prices, _ := suite.service.Prices()
		_, ok := prices["BTC"]
		return ok
	}, 2*time.Second, 10*time.Millisecond)
	suite.Eventually(func() bool {
		return suite.feed.subscribes.Load() == 2
	}, 2*time.Second, 10*time.Millisecond)
}

func (suite *MarketServiceTestSuite) TestNonInvestmentChangesDoNotRefetch() {
	suite.expectStart()
	suite.Require().NoError(suite.service.Start(suite.ctx))

	_, err := suite.ledger.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking"})
	suite.Require().NoError(err)

	suite.Never(func() bool {
		return suite.feed.fetches.Load() > 1
	}, 100*time.Millisecond, 10*time.Millisecond)
}

func (suite *MarketServiceTestSuite) TestTopMovers() {
	table := domain.MarketData{
		"A": quote("102", "2"),
		"B": quote("99", "-1"),
		"C": quote("110", "10"),
		"D": quote("50", "0"),
	}
	suite.feed.On("TopMovers", mock.Anything).Return(table, nil)

	defaulted, err := suite.service.TopMovers(suite.ctx, 0)
	suite.Require().NoError(err)
	suite.Len(defaulted, 3)
	suite.Equal("C", defaulted[0].Ticker)

	one, err := suite.service.TopMovers(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Len(one, 1)
}

func (suite *MarketServiceTestSuite) TestTopMovers_Failure() {
	suite.feed.On("TopMovers", mock.Anything).Return(nil, errors.New("boom"))

	_, err := suite.service.TopMovers(suite.ctx, 5)

	suite.Error(err)
}
