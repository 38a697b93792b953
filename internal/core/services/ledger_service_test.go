package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/adapters/database/memory"
	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/core/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func ptr[T any](v T) *T { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// --- Test Suite Setup ---

type LedgerServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service *services.LedgerService
	changes []domain.LedgerChange
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.changes = nil
	suite.service = services.NewLedgerService(
		memory.NewRepositoryProvider(memory.NewStore()),
		services.WithClock(func() time.Time { return fixedNow }),
		services.WithIDGenerator(sequentialIDs()),
	)
	suite.service.Subscribe(func(c domain.LedgerChange) { suite.changes = append(suite.changes, c) })
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (suite *LedgerServiceTestSuite) createExpense(day int, amount string) *domain.Transaction {
	txn, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Date:            fixedNow.AddDate(0, 0, day),
		AccountID:       "acc-1",
		TransactionType: domain.Expense,
		Category:        "Food",
		Amount:          dec(amount),
	})
	suite.Require().NoError(err)
	return txn
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestCreateAccount_Success() {
	account, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{
		Name:           "Checking",
		Bank:           "Itaú",
		InitialBalance: dec("-20.5"),
	})

	suite.Require().NoError(err)
	suite.Equal("id-1", account.AccountID)
	suite.Equal(fixedNow, account.CreatedAt)
	suite.True(dec("-20.5").Equal(account.InitialBalance))
	suite.Equal(uint64(1), suite.service.Version())
	suite.Require().Len(suite.changes, 1)
	suite.Equal(domain.LedgerChange{Entity: domain.AccountEntity, Op: domain.OpCreate, ID: "id-1", Version: 1}, suite.changes[0])
}

func (suite *LedgerServiceTestSuite) TestCreateAccount_MissingName() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Bank: "Itaú"})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(suite.service.Version())
	suite.Empty(suite.changes)
}

func (suite *LedgerServiceTestSuite) TestUpdateAccount_MergesProvidedFields() {
	account, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking", Bank: "Itaú"})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateAccount(suite.ctx, account.AccountID, dto.UpdateAccountRequest{InitialBalance: ptr(dec("100"))})

	suite.Require().NoError(err)
	suite.Equal("Checking", updated.Name)
	suite.Equal("Itaú", updated.Bank)
	suite.True(dec("100").Equal(updated.InitialBalance))
	suite.Equal(uint64(2), suite.service.Version())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_AssignsIncreasingSequence() {
	first := suite.createExpense(0, "10")
	second := suite.createExpense(0, "20")

	suite.Equal(int64(1), first.Sequence)
	suite.Equal(int64(2), second.Sequence)
	suite.Equal(uint64(2), suite.service.Version())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_Rejections() {
	testCases := []struct {
		name string
		req  dto.CreateTransactionRequest
	}{
		{"zero amount", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Income, Amount: dec("0")}},
		{"negative amount", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Expense, Amount: dec("-1")}},
		{"transfer without destination", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Transfer, Amount: dec("1")}},
		{"transfer to itself", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Transfer, Amount: dec("1"), ToAccountID: ptr("a")}},
		{"destination on income", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Income, Amount: dec("1"), ToAccountID: ptr("b")}},
		{"unknown type", dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: "REFUND", Amount: dec("1")}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.CreateTransaction(suite.ctx, tc.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.Zero(suite.service.Version())
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_EmptyDestinationIsIgnored() {
	txn, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Date: fixedNow, AccountID: "a", TransactionType: domain.Income, Amount: dec("5"), ToAccountID: ptr(""),
	})

	suite.Require().NoError(err)
	suite.Nil(txn.ToAccountID)
}

func (suite *LedgerServiceTestSuite) TestCreateTransaction_DanglingAccountIsAccepted() {
	txn, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Date: fixedNow, AccountID: "nobody", TransactionType: domain.Transfer, Amount: dec("5"), ToAccountID: ptr("ghost"),
	})

	suite.Require().NoError(err)
	suite.Equal("ghost", *txn.ToAccountID)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_ShallowMerge() {
	txn := suite.createExpense(0, "10")

	updated, err := suite.service.UpdateTransaction(suite.ctx, txn.TransactionID, dto.UpdateTransactionRequest{
		Description: ptr("Groceries"),
		Amount:      ptr(dec("12.5")),
	})

	suite.Require().NoError(err)
	suite.Equal("Groceries", updated.Description)
	suite.Equal("Food", updated.Category)
	suite.True(dec("12.5").Equal(updated.Amount))
	suite.Equal(txn.Sequence, updated.Sequence)

	stored, err := suite.service.GetTransaction(suite.ctx, txn.TransactionID)
	suite.Require().NoError(err)
	suite.Equal("Groceries", stored.Description)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_TransferBecomesExpense() {
	txn, err := suite.service.CreateTransaction(suite.ctx, dto.CreateTransactionRequest{
		Date: fixedNow, AccountID: "a", TransactionType: domain.Transfer, Amount: dec("5"), ToAccountID: ptr("b"),
	})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateTransaction(suite.ctx, txn.TransactionID, dto.UpdateTransactionRequest{
		TransactionType: ptr(domain.Expense),
	})

	suite.Require().NoError(err)
	suite.Nil(updated.ToAccountID)
}

func (suite *LedgerServiceTestSuite) TestUpdateTransaction_RevalidatesMergedEntity() {
	txn := suite.createExpense(0, "10")
	before := suite.service.Version()

	_, err := suite.service.UpdateTransaction(suite.ctx, txn.TransactionID, dto.UpdateTransactionRequest{
		TransactionType: ptr(domain.Transfer),
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(before, suite.service.Version())
}

func (suite *LedgerServiceTestSuite) TestUpdate_UnknownIDs() {
	_, err := suite.service.UpdateAccount(suite.ctx, "missing", dto.UpdateAccountRequest{Name: ptr("x")})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.UpdateTransaction(suite.ctx, "missing", dto.UpdateTransactionRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.UpdateInvestment(suite.ctx, "missing", dto.UpdateInvestmentRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.UpdateFixedIncome(suite.ctx, "missing", dto.UpdateFixedIncomeRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.service.UpdateCategory(suite.ctx, "missing", dto.UpdateCategoryRequest{})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.Zero(suite.service.Version())
}

func (suite *LedgerServiceTestSuite) TestDeleteTransaction_Idempotent() {
	txn := suite.createExpense(0, "10")

	suite.NoError(suite.service.DeleteTransaction(suite.ctx, txn.TransactionID))
	suite.NoError(suite.service.DeleteTransaction(suite.ctx, txn.TransactionID))
	suite.NoError(suite.service.DeleteTransaction(suite.ctx, "never-existed"))

	suite.Equal(uint64(2), suite.service.Version(), "only the effective delete bumps the version")
	_, err := suite.service.GetTransaction(suite.ctx, txn.TransactionID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestInvestmentLifecycle() {
	inv, err := suite.service.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
		AssetType: domain.Stock, Ticker: "PETR4", Quantity: dec("100"), PurchasePrice: dec("30.5"), PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)

	updated, err := suite.service.UpdateInvestment(suite.ctx, inv.InvestmentID, dto.UpdateInvestmentRequest{Quantity: ptr(dec("150"))})
	suite.Require().NoError(err)
	suite.True(dec("150").Equal(updated.Quantity))
	suite.Equal("PETR4", updated.Ticker)

	_, err = suite.service.UpdateInvestment(suite.ctx, inv.InvestmentID, dto.UpdateInvestmentRequest{AssetType: ptr(domain.FixedIncome)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Require().NoError(suite.service.DeleteInvestment(suite.ctx, inv.InvestmentID))
	list, err := suite.service.ListInvestments(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(list)

	ops := make([]domain.LedgerOp, 0, len(suite.changes))
	for _, c := range suite.changes {
		suite.Equal(domain.InvestmentEntity, c.Entity)
		ops = append(ops, c.Op)
	}
	suite.Equal([]domain.LedgerOp{domain.OpCreate, domain.OpUpdate, domain.OpDelete}, ops)
}

func (suite *LedgerServiceTestSuite) TestFixedIncome_AlwaysFixedIncomeType() {
	fi, err := suite.service.CreateFixedIncome(suite.ctx, dto.CreateFixedIncomeRequest{
		Name: "CDB", Issuer: "Banco Inter", AmountInvested: dec("1000"), YieldRate: "110% CDI", PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)
	suite.Equal(domain.FixedIncome, fi.AssetType)

	_, err = suite.service.CreateFixedIncome(suite.ctx, dto.CreateFixedIncomeRequest{Name: "LCI", AmountInvested: dec("0")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	got, err := suite.service.GetFixedIncome(suite.ctx, fi.InvestmentID)
	suite.Require().NoError(err)
	suite.Equal("110% CDI", got.YieldRate)
}

func (suite *LedgerServiceTestSuite) TestCategories_FilterAndRename() {
	salary, err := suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Salary", CategoryType: domain.IncomeCategory})
	suite.Require().NoError(err)
	_, err = suite.service.CreateCategory(suite.ctx, dto.CreateCategoryRequest{Name: "Rent", CategoryType: domain.ExpenseCategory})
	suite.Require().NoError(err)

	income, err := suite.service.ListCategories(suite.ctx, ptr(domain.IncomeCategory))
	suite.Require().NoError(err)
	suite.Require().Len(income, 1)
	suite.Equal("Salary", income[0].Name)

	all, err := suite.service.ListCategories(suite.ctx, nil)
	suite.Require().NoError(err)
	suite.Len(all, 2)

	renamed, err := suite.service.UpdateCategory(suite.ctx, salary.CategoryID, dto.UpdateCategoryRequest{Name: ptr("Wages")})
	suite.Require().NoError(err)
	suite.Equal(domain.IncomeCategory, renamed.CategoryType)

	suite.NoError(suite.service.DeleteCategory(suite.ctx, salary.CategoryID))
	suite.NoError(suite.service.DeleteCategory(suite.ctx, salary.CategoryID))
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Pages() {
	suite.createExpense(0, "1")
	suite.createExpense(2, "2")
	suite.createExpense(1, "3")

	page, token, err := suite.service.ListTransactions(suite.ctx, 2, nil)
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Require().NotNil(token)
	suite.True(dec("2").Equal(page[0].Amount))
	suite.True(dec("3").Equal(page[1].Amount))

	rest, token, err := suite.service.ListTransactions(suite.ctx, 2, token)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Nil(token)

	_, _, err = suite.service.ListTransactions(suite.ctx, 2, ptr("%%%"))
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestSnapshot() {
	_, err := suite.service.CreateAccount(suite.ctx, dto.CreateAccountRequest{Name: "Checking"})
	suite.Require().NoError(err)
	suite.createExpense(0, "10")
	_, err = suite.service.CreateInvestment(suite.ctx, dto.CreateInvestmentRequest{
		AssetType: domain.Crypto, Ticker: "BTC", Quantity: dec("0.1"), PurchasePrice: dec("100"), PurchaseDate: fixedNow,
	})
	suite.Require().NoError(err)

	snap, err := suite.service.Snapshot(suite.ctx)

	suite.Require().NoError(err)
	suite.Equal(uint64(3), snap.Version)
	suite.Len(snap.Accounts, 1)
	suite.Len(snap.Transactions, 1)
	suite.Equal([]string{"BTC"}, snap.Tickers())
	suite.Empty(snap.FixedIncome)
}

func (suite *LedgerServiceTestSuite) TestSubscribe_CancelStopsNotifications() {
	var seen int
	cancel := suite.service.Subscribe(func(domain.LedgerChange) { seen++ })

	suite.createExpense(0, "1")
	cancel()
	cancel()
	suite.createExpense(0, "2")

	suite.Equal(1, seen)
	suite.Len(suite.changes, 2, "other listeners are unaffected")
}

// --- Repository failures ---

func newLedgerWithTransactions(repo *MockTransactionRepository) *services.LedgerService {
	repos := memory.NewRepositoryProvider(memory.NewStore())
	repos.TransactionRepo = repo
	return services.NewLedgerService(repos, services.WithClock(func() time.Time { return fixedNow }))
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func TestLedgerService_SequenceContinuesFromStore(t *testing.T) {
	repo := new(MockTransactionRepository)
	repo.On("MaxSequence", mock.Anything).Return(int64(41), nil).Once()
	repo.On("SaveTransaction", mock.Anything, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Sequence == 42 || txn.Sequence == 43
	})).Return(nil).Twice()

	svc := newLedgerWithTransactions(repo)
	req := dto.CreateTransactionRequest{Date: fixedNow, AccountID: "a", TransactionType: domain.Income, Amount: dec("1")}

	first, err := svc.CreateTransaction(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.CreateTransaction(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(42), first.Sequence)
	assert.Equal(t, int64(43), second.Sequence)
	repo.AssertExpectations(t)
}

func TestLedgerService_SaveFailureLeavesVersion(t *testing.T) {
	repo := new(MockTransactionRepository)
	dbErr := errors.New("connection reset")
	repo.On("MaxSequence", mock.Anything).Return(int64(0), nil)
	repo.On("SaveTransaction", mock.Anything, mock.AnythingOfType("domain.Transaction")).Return(dbErr)

	svc := newLedgerWithTransactions(repo)
	notified := false
	svc.Subscribe(func(domain.LedgerChange) { notified = true })

	_, err := svc.CreateTransaction(context.Background(), dto.CreateTransactionRequest{
		Date: fixedNow, AccountID: "a", TransactionType: domain.Expense, Amount: dec("3"),
	})

	assert.ErrorIs(t, err, dbErr)
	assert.Zero(t, svc.Version())
	assert.False(t, notified)
}

func TestLedgerService_DeleteLookupFailure(t *testing.T) {
	repo := new(MockTransactionRepository)
	dbErr := errors.New("timeout")
	repo.On("FindTransactionByID", mock.Anything, "t-1").Return(nil, dbErr)

	svc := newLedgerWithTransactions(repo)

	err := svc.DeleteTransaction(context.Background(), "t-1")

	assert.ErrorIs(t, err, dbErr)
	repo.AssertNotCalled(t, "DeleteTransaction", mock.Anything, mock.Anything)
}
