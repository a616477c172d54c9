// file: service/ledger_service.go

package service

import (
	"sync"

	"go-ledger/common"
	"go-ledger/logger"
	"go-ledger/model"
	"go-ledger/repository"

	"github.com/sirupsen/logrus"
)

// LedgerService owns a set of accounts and routes deposits and withdrawals to
// them by id. All methods are safe for concurrent use: each one holds mu for
// its whole lookup-then-mutate sequence.
type LedgerService struct {
	mu   sync.Mutex
	repo repository.IAccountRepository
	ids  model.IDGenerator

	strictWithdrawals bool
}

// Option configures a LedgerService.
type Option func(*LedgerService)

// WithStrictWithdrawals makes Withdraw reject negative amounts and overdrafts.
func WithStrictWithdrawals(strict bool) Option {
	return func(s *LedgerService) {
		s.strictWithdrawals = strict
	}
}

// NewLedgerService creates a ledger over repo. New accounts take their ids
// from ids, which is first moved past every id repo already holds.
func NewLedgerService(repo repository.IAccountRepository, ids model.IDGenerator, opts ...Option) *LedgerService {
	s := &LedgerService{
		repo: repo,
		ids:  ids,
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, account := range repo.List() {
		ids.Observe(account.ID)
	}
	return s
}

// OpenNewBankAccount creates an account holding initialBalance and returns its id.
func (s *LedgerService) OpenNewBankAccount(initialBalance float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Skip ids held by accounts added to the repository directly.
	account := model.NewAccountWithBalance(s.ids, initialBalance)
	for {
		if _, taken := s.repo.FindByID(account.ID); !taken {
			break
		}
		account = model.NewAccountWithBalance(s.ids, initialBalance)
	}
	s.repo.Add(account)

	logger.Log.WithFields(logrus.Fields{
		"account_id":      account.ID,
		"initial_balance": initialBalance,
		"accounts":        s.repo.Len(),
	}).Info("Opened new bank account")
	return account.ID
}

// Deposit adds amount to the account with the given id.
func (s *LedgerService) Deposit(accountID int, amount float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount,
	})
	log.Debug("Deposit request received")

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		log.WithFields(err.Fields()).Warn(err.Message)
		return err
	}
	if err := account.Deposit(amount); err != nil {
		log.WithError(err).Warn("Deposit rejected")
		return err
	}

	log.WithField("balance", account.Balance).Info("Deposit completed")
	return nil
}

// Withdraw subtracts amount from the account with the given id. Unless the
// ledger was built WithStrictWithdrawals, the amount is not validated.
func (s *LedgerService) Withdraw(accountID int, amount float64) error {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": accountID,
		"amount":     amount,
	})
	log.Debug("Withdraw request received")

	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		log.WithFields(err.Fields()).Warn(err.Message)
		return err
	}

	if s.strictWithdrawals {
		if err := account.WithdrawChecked(amount); err != nil {
			log.WithError(err).Warn("Withdraw rejected")
			return err
		}
	} else {
		account.Withdraw(amount)
	}

	log.WithField("balance", account.Balance).Info("Withdraw completed")
	return nil
}

// Balance returns the current balance of the account with the given id.
func (s *LedgerService) Balance(accountID int) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, err := s.find(accountID)
	if err != nil {
		return 0, err
	}
	return account.Balance, nil
}

// Accounts returns a copy of every account in the order they were added.
func (s *LedgerService) Accounts() []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := s.repo.List()
	out := make([]model.Account, 0, len(stored))
	for _, account := range stored {
		out = append(out, *account)
	}
	return out
}

// Seed adds pre-built accounts as they are, keeping their ids and balances.
// Accounts opened afterwards get ids above every seeded one.
func (s *LedgerService) Seed(accounts ...*model.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, account := range accounts {
		s.repo.Add(account)
		s.ids.Observe(account.ID)
	}
	logger.Log.WithFields(logrus.Fields{
		"count":    len(accounts),
		"accounts": s.repo.Len(),
	}).Info("Seeded accounts")
}

func (s *LedgerService) find(accountID int) (*model.Account, *common.AppError) {
	account, ok := s.repo.FindByID(accountID)
	if !ok {
		logger.Log.WithField("account_id", accountID).Debug("Account not found")
		return nil, common.NotFound(accountID)
	}
	return account, nil
}
