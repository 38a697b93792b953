package memory

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	repos portsrepo.RepositoryProvider
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = NewRepositoryProvider(NewStore())
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

var base = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func txnAt(id string, day int, seq int64) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Date:            base.AddDate(0, 0, day),
		AccountID:       "acc",
		TransactionType: domain.Expense,
		Amount:          decimal.NewFromInt(1),
		Sequence:        seq,
	}
}

func (s *StoreTestSuite) TestAccounts_SaveFindUpdate() {
	repo := s.repos.AccountRepo
	acc := domain.Account{AccountID: "a1", Name: "Checking", InitialBalance: decimal.NewFromInt(100)}

	s.Require().NoError(repo.SaveAccount(s.ctx, acc))
	s.ErrorIs(repo.SaveAccount(s.ctx, acc), apperrors.ErrDuplicate)

	found, err := repo.FindAccountByID(s.ctx, "a1")
	s.Require().NoError(err)
	s.Equal("Checking", found.Name)

	// Returned values are copies
	found.Name = "mutated"
	again, _ := repo.FindAccountByID(s.ctx, "a1")
	s.Equal("Checking", again.Name)

	acc.Name = "Savings"
	s.Require().NoError(repo.UpdateAccount(s.ctx, acc))
	list, err := repo.ListAccounts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Savings", list[0].Name)

	s.ErrorIs(repo.UpdateAccount(s.ctx, domain.Account{AccountID: "missing"}), apperrors.ErrNotFound)
	_, err = repo.FindAccountByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *StoreTestSuite) TestTransactions_DisplayOrderAndDelete() {
	repo := s.repos.TransactionRepo
	for _, txn := range []domain.Transaction{
		txnAt("old", 0, 1),
		txnAt("new", 3, 2),
		txnAt("tieA", 1, 3),
		txnAt("tieB", 1, 4),
	} {
		s.Require().NoError(repo.SaveTransaction(s.ctx, txn))
	}

	list, err := repo.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"new", "tieA", "tieB", "old"}, ids(list))

	maxSeq, err := repo.MaxSequence(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(4), maxSeq)

	s.Require().NoError(repo.DeleteTransaction(s.ctx, "tieA"))
	s.Require().NoError(repo.DeleteTransaction(s.ctx, "tieA"), "deleting twice is a no-op")
	list, _ = repo.ListTransactions(s.ctx)
	s.Equal([]string{"new", "tieB", "old"}, ids(list))
}

func (s *StoreTestSuite) TestTransactions_Pagination() {
	repo := s.repos.TransactionRepo
	for i := 0; i < 5; i++ {
		s.Require().NoError(repo.SaveTransaction(s.ctx, txnAt(string(rune('a'+i)), i%2, int64(i+1))))
	}
	// Display order: b(day1,seq2) d(day1,seq4) a(day0,seq1) c(day0,seq3) e(day0,seq5)

	page, next, err := repo.ListTransactionsPage(s.ctx, 2, nil)
	s.Require().NoError(err)
	s.Equal([]string{"b", "d"}, ids(page))
	s.Require().NotNil(next)

	page, next, err = repo.ListTransactionsPage(s.ctx, 2, next)
	s.Require().NoError(err)
	s.Equal([]string{"a", "c"}, ids(page))
	s.Require().NotNil(next)

	page, next, err = repo.ListTransactionsPage(s.ctx, 2, next)
	s.Require().NoError(err)
	s.Equal([]string{"e"}, ids(page))
	s.Nil(next)

	bad := "%%%"
	_, _, err = repo.ListTransactionsPage(s.ctx, 2, &bad)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *StoreTestSuite) TestCategories_FilterByType() {
	repo := s.repos.CategoryRepo
	s.Require().NoError(repo.SaveCategory(s.ctx, domain.Category{CategoryID: "1", Name: "Salary", CategoryType: domain.IncomeCategory}))
	s.Require().NoError(repo.SaveCategory(s.ctx, domain.Category{CategoryID: "2", Name: "Food", CategoryType: domain.ExpenseCategory}))

	expense := domain.ExpenseCategory
	list, err := repo.ListCategories(s.ctx, &expense)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal("Food", list[0].Name)

	all, _ := repo.ListCategories(s.ctx, nil)
	s.Len(all, 2)

	s.Require().NoError(repo.DeleteCategory(s.ctx, "1"))
	s.Require().NoError(repo.DeleteCategory(s.ctx, "1"))
	all, _ = repo.ListCategories(s.ctx, nil)
	s.Len(all, 1)
}

func TestInvestmentsAndFixedIncome(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositoryProvider(NewStore())

	inv := domain.Investment{InvestmentID: "i1", AssetType: domain.Stock, Ticker: "PETR4"}
	require.NoError(t, repos.InvestmentRepo.SaveInvestment(ctx, inv))
	inv.Ticker = "VALE3"
	require.NoError(t, repos.InvestmentRepo.UpdateInvestment(ctx, inv))
	got, err := repos.InvestmentRepo.FindInvestmentByID(ctx, "i1")
	require.NoError(t, err)
	assert.Equal(t, "VALE3", got.Ticker)
	require.NoError(t, repos.InvestmentRepo.DeleteInvestment(ctx, "i1"))
	_, err = repos.InvestmentRepo.FindInvestmentByID(ctx, "i1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	fi := domain.FixedIncomeInvestment{InvestmentID: "f1", AssetType: domain.FixedIncome, Name: "CDB"}
	require.NoError(t, repos.FixedIncomeRepo.SaveFixedIncome(ctx, fi))
	assert.ErrorIs(t, repos.FixedIncomeRepo.SaveFixedIncome(ctx, fi), apperrors.ErrDuplicate)
	assert.ErrorIs(t, repos.FixedIncomeRepo.UpdateFixedIncome(ctx, domain.FixedIncomeInvestment{InvestmentID: "nope"}), apperrors.ErrNotFound)
	list, err := repos.FixedIncomeRepo.ListFixedIncome(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}
