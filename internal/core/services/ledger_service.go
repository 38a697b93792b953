package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/google/uuid"
)

// LedgerOption is a functional option for configuring the LedgerService
type LedgerOption func(*LedgerService)

// WithClock overrides the clock used for audit fields.
func WithClock(now func() time.Time) LedgerOption {
	return func(s *LedgerService) { s.now = now }
}

// WithIDGenerator overrides how entity ids are generated.
func WithIDGenerator(newID func() string) LedgerOption {
	return func(s *LedgerService) { s.newID = newID }
}

type ledgerListener struct {
	id uint64
	fn func(domain.LedgerChange)
}

// LedgerService owns the collections of the dashboard. Every mutation runs under a single
// writer lock, bumps the version and is then announced to the listeners.
type LedgerService struct {
	BaseService
	repos portsrepo.RepositoryProvider
	now   func() time.Time
	newID func() string

	mu             sync.RWMutex // write: mutations, read: Snapshot
	version        atomic.Uint64
	sequence       int64
	sequenceLoaded bool

	listenersMu  sync.Mutex
	listeners    []ledgerListener
	nextListener uint64
}

// Ensure LedgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*LedgerService)(nil)

// NewLedgerService creates a new LedgerService over the given repositories.
func NewLedgerService(repos portsrepo.RepositoryProvider, opts ...LedgerOption) *LedgerService {
	s := &LedgerService{
		repos: repos,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// --- Change notification ---

// Subscribe registers listener for every future change.
func (s *LedgerService) Subscribe(listener func(domain.LedgerChange)) func() {
	s.listenersMu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners = append(s.listeners, ledgerListener{id: id, fn: listener})
	s.listenersMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.listenersMu.Lock()
			defer s.listenersMu.Unlock()
			for i, l := range s.listeners {
				if l.id == id {
					s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *LedgerService) notify(change domain.LedgerChange) {
	s.listenersMu.Lock()
	listeners := make([]ledgerListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, l := range listeners {
		l.fn(change)
	}
}

// mutate runs apply under the writer lock. When apply reports a change the version is
// bumped and listeners are notified once the lock is released.
func (s *LedgerService) mutate(entity domain.LedgerEntity, op domain.LedgerOp, id string, apply func() (bool, error)) error {
	s.mu.Lock()
	changed, err := apply()
	if err != nil || !changed {
		s.mu.Unlock()
		return err
	}
	change := domain.LedgerChange{Entity: entity, Op: op, ID: id, Version: s.version.Add(1)}
	s.mu.Unlock()

	s.notify(change)
	return nil
}

// Version returns the counter bumped by every successful mutation.
func (s *LedgerService) Version() uint64 {
	return s.version.Load()
}

// Snapshot returns a consistent copy of every collection.
func (s *LedgerService) Snapshot(ctx context.Context) (domain.LedgerSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := domain.LedgerSnapshot{Version: s.version.Load()}
	var err error
	if snap.Accounts, err = s.repos.AccountRepo.ListAccounts(ctx); err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("failed to list accounts: %w", err)
	}
	if snap.Transactions, err = s.repos.TransactionRepo.ListTransactions(ctx); err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	if snap.Investments, err = s.repos.InvestmentRepo.ListInvestments(ctx); err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("failed to list investments: %w", err)
	}
	if snap.FixedIncome, err = s.repos.FixedIncomeRepo.ListFixedIncome(ctx); err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("failed to list fixed income: %w", err)
	}
	if snap.Categories, err = s.repos.CategoryRepo.ListCategories(ctx, nil); err != nil {
		return domain.LedgerSnapshot{}, fmt.Errorf("failed to list categories: %w", err)
	}
	return snap, nil
}

func (s *LedgerService) audit() domain.AuditFields {
	now := s.now()
	return domain.AuditFields{CreatedAt: now, LastUpdatedAt: now}
}

// --- Accounts ---

// CreateAccount stores a new account.
func (s *LedgerService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		AccountID:      s.newID(),
		Name:           req.Name,
		Bank:           req.Bank,
		InitialBalance: req.InitialBalance,
		AuditFields:    s.audit(),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(domain.AccountEntity, domain.OpCreate, account.AccountID, func() (bool, error) {
		return true, s.repos.AccountRepo.SaveAccount(ctx, account)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", account.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// UpdateAccount merges the provided fields into an existing account.
func (s *LedgerService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	var updated domain.Account
	err := s.mutate(domain.AccountEntity, domain.OpUpdate, accountID, func() (bool, error) {
		existing, err := s.repos.AccountRepo.FindAccountByID(ctx, accountID)
		if err != nil {
			return false, err
		}
		updated = *existing
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.Bank != nil {
			updated.Bank = *req.Bank
		}
		if req.InitialBalance != nil {
			updated.InitialBalance = *req.InitialBalance
		}
		updated.LastUpdatedAt = s.now()
		if err := updated.Validate(); err != nil {
			return false, err
		}
		return true, s.repos.AccountRepo.UpdateAccount(ctx, updated)
	})
	if err != nil {
		return nil, s.wrapMutationError(ctx, err, "account", accountID)
	}
	return &updated, nil
}

// ListAccounts returns the stored accounts without derived balances.
func (s *LedgerService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.repos.AccountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// GetAccount returns a single account.
func (s *LedgerService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.repos.AccountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, s.wrapReadError(ctx, err, "account", accountID)
	}
	return account, nil
}

// --- Transactions ---

// nextSequence hands out insertion ordinals. Callers hold s.mu.
func (s *LedgerService) nextSequence(ctx context.Context) (int64, error) {
	if !s.sequenceLoaded {
		latest, err := s.repos.TransactionRepo.MaxSequence(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to load transaction sequence: %w", err)
		}
		s.sequence = latest
		s.sequenceLoaded = true
	}
	s.sequence++
	return s.sequence, nil
}

func normalizeDestination(to *string) *string {
	if to == nil || *to == "" {
		return nil
	}
	dest := *to
	return &dest
}

// CreateTransaction records a cash movement. Account ids are not checked against the
// stored accounts; the balance engine skips dangling references.
func (s *LedgerService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	txn := domain.Transaction{
		TransactionID:   s.newID(),
		Date:            req.Date,
		AccountID:       req.AccountID,
		TransactionType: req.TransactionType,
		Category:        req.Category,
		Description:     req.Description,
		Amount:          req.Amount,
		PaymentMethod:   req.PaymentMethod,
		ToAccountID:     normalizeDestination(req.ToAccountID),
		AuditFields:     s.audit(),
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(domain.TransactionEntity, domain.OpCreate, txn.TransactionID, func() (bool, error) {
		seq, err := s.nextSequence(ctx)
		if err != nil {
			return false, err
		}
		txn.Sequence = seq
		return true, s.repos.TransactionRepo.SaveTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("account_id", txn.AccountID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.TransactionType)),
		slog.Int64("sequence", txn.Sequence))
	return &txn, nil
}

// UpdateTransaction merges the provided fields into an existing transaction. A transaction
// that stops being a transfer loses its destination unless the request sets one, in which
// case validation rejects it.
func (s *LedgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	var updated domain.Transaction
	err := s.mutate(domain.TransactionEntity, domain.OpUpdate, transactionID, func() (bool, error) {
		existing, err := s.repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
		if err != nil {
			return false, err
		}
		updated = *existing
		if req.Date != nil {
			updated.Date = *req.Date
		}
		if req.AccountID != nil {
			updated.AccountID = *req.AccountID
		}
		if req.TransactionType != nil {
			updated.TransactionType = *req.TransactionType
		}
		if req.Category != nil {
			updated.Category = *req.Category
		}
		if req.Description != nil {
			updated.Description = *req.Description
		}
		if req.Amount != nil {
			updated.Amount = *req.Amount
		}
		if req.PaymentMethod != nil {
			updated.PaymentMethod = *req.PaymentMethod
		}
		if req.ToAccountID != nil {
			updated.ToAccountID = normalizeDestination(req.ToAccountID)
		} else if !updated.IsTransfer() {
			updated.ToAccountID = nil
		}
		updated.LastUpdatedAt = s.now()
		if err := updated.Validate(); err != nil {
			return false, err
		}
		return true, s.repos.TransactionRepo.UpdateTransaction(ctx, updated)
	})
	if err != nil {
		return nil, s.wrapMutationError(ctx, err, "transaction", transactionID)
	}
	return &updated, nil
}

// DeleteTransaction removes a transaction. Unknown ids are ignored.
func (s *LedgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	err := s.mutate(domain.TransactionEntity, domain.OpDelete, transactionID, func() (bool, error) {
		if _, err := s.repos.TransactionRepo.FindTransactionByID(ctx, transactionID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, s.repos.TransactionRepo.DeleteTransaction(ctx, transactionID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	return nil
}

// ListTransactions returns a page of transactions in display order.
func (s *LedgerService) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	txns, token, err := s.repos.TransactionRepo.ListTransactionsPage(ctx, limit, nextToken)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to list transactions", slog.Int("limit", limit))
		}
		return nil, nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, token, nil
}

// GetTransaction returns a single transaction.
func (s *LedgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.repos.TransactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, s.wrapReadError(ctx, err, "transaction", transactionID)
	}
	return txn, nil
}

// --- Investments ---

// CreateInvestment stores a new variable-income position.
func (s *LedgerService) CreateInvestment(ctx context.Context, req dto.CreateInvestmentRequest) (*domain.Investment, error) {
	inv := domain.Investment{
		InvestmentID:  s.newID(),
		AssetType:     req.AssetType,
		Ticker:        req.Ticker,
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  req.PurchaseDate,
		AuditFields:   s.audit(),
	}
	if err := inv.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(domain.InvestmentEntity, domain.OpCreate, inv.InvestmentID, func() (bool, error) {
		return true, s.repos.InvestmentRepo.SaveInvestment(ctx, inv)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save investment", slog.String("ticker", inv.Ticker))
		return nil, fmt.Errorf("failed to create investment: %w", err)
	}

	s.LogInfo(ctx, "Investment created", slog.String("investment_id", inv.InvestmentID), slog.String("ticker", inv.Ticker))
	return &inv, nil
}

// UpdateInvestment merges the provided fields into an existing position.
func (s *LedgerService) UpdateInvestment(ctx context.Context, investmentID string, req dto.UpdateInvestmentRequest) (*domain.Investment, error) {
	var updated domain.Investment
	err := s.mutate(domain.InvestmentEntity, domain.OpUpdate, investmentID, func() (bool, error) {
		existing, err := s.repos.InvestmentRepo.FindInvestmentByID(ctx, investmentID)
		if err != nil {
			return false, err
		}
		updated = *existing
		if req.AssetType != nil {
			updated.AssetType = *req.AssetType
		}
		if req.Ticker != nil {
			updated.Ticker = *req.Ticker
		}
		if req.Quantity != nil {
			updated.Quantity = *req.Quantity
		}
		if req.PurchasePrice != nil {
			updated.PurchasePrice = *req.PurchasePrice
		}
		if req.PurchaseDate != nil {
			updated.PurchaseDate = *req.PurchaseDate
		}
		updated.LastUpdatedAt = s.now()
		if err := updated.Validate(); err != nil {
			return false, err
		}
		return true, s.repos.InvestmentRepo.UpdateInvestment(ctx, updated)
	})
	if err != nil {
		return nil, s.wrapMutationError(ctx, err, "investment", investmentID)
	}
	return &updated, nil
}

// DeleteInvestment removes a position. Unknown ids are ignored.
func (s *LedgerService) DeleteInvestment(ctx context.Context, investmentID string) error {
	err := s.mutate(domain.InvestmentEntity, domain.OpDelete, investmentID, func() (bool, error) {
		if _, err := s.repos.InvestmentRepo.FindInvestmentByID(ctx, investmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, s.repos.InvestmentRepo.DeleteInvestment(ctx, investmentID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete investment", slog.String("investment_id", investmentID))
		return fmt.Errorf("failed to delete investment %s: %w", investmentID, err)
	}
	return nil
}

// ListInvestments returns every variable-income position.
func (s *LedgerService) ListInvestments(ctx context.Context) ([]domain.Investment, error) {
	investments, err := s.repos.InvestmentRepo.ListInvestments(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list investments")
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	return investments, nil
}

// GetInvestment returns a single position.
func (s *LedgerService) GetInvestment(ctx context.Context, investmentID string) (*domain.Investment, error) {
	inv, err := s.repos.InvestmentRepo.FindInvestmentByID(ctx, investmentID)
	if err != nil {
		return nil, s.wrapReadError(ctx, err, "investment", investmentID)
	}
	return inv, nil
}

// --- Fixed income ---

// CreateFixedIncome stores a new fixed-income holding.
func (s *LedgerService) CreateFixedIncome(ctx context.Context, req dto.CreateFixedIncomeRequest) (*domain.FixedIncomeInvestment, error) {
	fi := domain.FixedIncomeInvestment{
		InvestmentID:   s.newID(),
		AssetType:      domain.FixedIncome,
		Name:           req.Name,
		Issuer:         req.Issuer,
		AmountInvested: req.AmountInvested,
		YieldRate:      req.YieldRate,
		PurchaseDate:   req.PurchaseDate,
		MaturityDate:   req.MaturityDate,
		AuditFields:    s.audit(),
	}
	if err := fi.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(domain.FixedIncomeEntity, domain.OpCreate, fi.InvestmentID, func() (bool, error) {
		return true, s.repos.FixedIncomeRepo.SaveFixedIncome(ctx, fi)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save fixed income", slog.String("name", fi.Name))
		return nil, fmt.Errorf("failed to create fixed income: %w", err)
	}

	s.LogInfo(ctx, "Fixed income created", slog.String("investment_id", fi.InvestmentID))
	return &fi, nil
}

// UpdateFixedIncome merges the provided fields into an existing holding.
func (s *LedgerService) UpdateFixedIncome(ctx context.Context, investmentID string, req dto.UpdateFixedIncomeRequest) (*domain.FixedIncomeInvestment, error) {
	var updated domain.FixedIncomeInvestment
	err := s.mutate(domain.FixedIncomeEntity, domain.OpUpdate, investmentID, func() (bool, error) {
		existing, err := s.repos.FixedIncomeRepo.FindFixedIncomeByID(ctx, investmentID)
		if err != nil {
			return false, err
		}
		updated = *existing
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.Issuer != nil {
			updated.Issuer = *req.Issuer
		}
		if req.AmountInvested != nil {
			updated.AmountInvested = *req.AmountInvested
		}
		if req.YieldRate != nil {
			updated.YieldRate = *req.YieldRate
		}
		if req.PurchaseDate != nil {
			updated.PurchaseDate = *req.PurchaseDate
		}
		if req.MaturityDate != nil {
			updated.MaturityDate = *req.MaturityDate
		}
		updated.LastUpdatedAt = s.now()
		if err := updated.Validate(); err != nil {
			return false, err
		}
		return true, s.repos.FixedIncomeRepo.UpdateFixedIncome(ctx, updated)
	})
	if err != nil {
		return nil, s.wrapMutationError(ctx, err, "fixed income", investmentID)
	}
	return &updated, nil
}

// DeleteFixedIncome removes a holding. Unknown ids are ignored.
func (s *LedgerService) DeleteFixedIncome(ctx context.Context, investmentID string) error {
	err := s.mutate(domain.FixedIncomeEntity, domain.OpDelete, investmentID, func() (bool, error) {
		if _, err := s.repos.FixedIncomeRepo.FindFixedIncomeByID(ctx, investmentID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, s.repos.FixedIncomeRepo.DeleteFixedIncome(ctx, investmentID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete fixed income", slog.String("investment_id", investmentID))
		return fmt.Errorf("failed to delete fixed income %s: %w", investmentID, err)
	}
	return nil
}

// ListFixedIncome returns every fixed-income holding.
func (s *LedgerService) ListFixedIncome(ctx context.Context) ([]domain.FixedIncomeInvestment, error) {
	holdings, err := s.repos.FixedIncomeRepo.ListFixedIncome(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fixed income")
		return nil, fmt.Errorf("failed to list fixed income: %w", err)
	}
	return holdings, nil
}

// GetFixedIncome returns a single holding.
func (s *LedgerService) GetFixedIncome(ctx context.Context, investmentID string) (*domain.FixedIncomeInvestment, error) {
	fi, err := s.repos.FixedIncomeRepo.FindFixedIncomeByID(ctx, investmentID)
	if err != nil {
		return nil, s.wrapReadError(ctx, err, "fixed income", investmentID)
	}
	return fi, nil
}

// --- Categories ---

// CreateCategory stores a new category.
func (s *LedgerService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:   s.newID(),
		Name:         req.Name,
		CategoryType: req.CategoryType,
		AuditFields:  s.audit(),
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}

	err := s.mutate(domain.CategoryEntity, domain.OpCreate, category.CategoryID, func() (bool, error) {
		return true, s.repos.CategoryRepo.SaveCategory(ctx, category)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("name", category.Name))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory merges the provided fields into an existing category. Transactions keep
// the label they were recorded with.
func (s *LedgerService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	var updated domain.Category
	err := s.mutate(domain.CategoryEntity, domain.OpUpdate, categoryID, func() (bool, error) {
		existing, err := s.repos.CategoryRepo.FindCategoryByID(ctx, categoryID)
		if err != nil {
			return false, err
		}
		updated = *existing
		if req.Name != nil {
			updated.Name = *req.Name
		}
		if req.CategoryType != nil {
			updated.CategoryType = *req.CategoryType
		}
		updated.LastUpdatedAt = s.now()
		if err := updated.Validate(); err != nil {
			return false, err
		}
		return true, s.repos.CategoryRepo.UpdateCategory(ctx, updated)
	})
	if err != nil {
		return nil, s.wrapMutationError(ctx, err, "category", categoryID)
	}
	return &updated, nil
}

// DeleteCategory removes a category. Unknown ids are ignored.
func (s *LedgerService) DeleteCategory(ctx context.Context, categoryID string) error {
	err := s.mutate(domain.CategoryEntity, domain.OpDelete, categoryID, func() (bool, error) {
		if _, err := s.repos.CategoryRepo.FindCategoryByID(ctx, categoryID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		return true, s.repos.CategoryRepo.DeleteCategory(ctx, categoryID)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	return nil
}

// ListCategories returns the categories, filtered by type when categoryType is non-nil.
func (s *LedgerService) ListCategories(ctx context.Context, categoryType *domain.CategoryType) ([]domain.Category, error) {
	categories, err := s.repos.CategoryRepo.ListCategories(ctx, categoryType)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// --- Error helpers ---

func (s *LedgerService) wrapReadError(ctx context.Context, err error, entity, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}
	s.LogError(ctx, err, "Failed to load "+entity, slog.String("id", id))
	return fmt.Errorf("failed to get %s %s: %w", entity, id, err)
}

func (s *LedgerService) wrapMutationError(ctx context.Context, err error, entity, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrValidation) {
		s.LogDebug(ctx, "Rejected "+entity+" update", slog.String("id", id), slog.String("reason", err.Error()))
		return fmt.Errorf("failed to update %s %s: %w", entity, id, err)
	}
	s.LogError(ctx, err, "Failed to update "+entity, slog.String("id", id))
	return fmt.Errorf("failed to update %s %s: %w", entity, id, err)
}
