package repository

import (
	"go-ledger/logger"
	"go-ledger/model"

	"github.com/sirupsen/logrus"
)

// IAccountRepository defines the contract for account storage.
type IAccountRepository interface {
	Add(account *model.Account)
	FindByID(id int) (*model.Account, bool)
	List() []*model.Account
	Len() int
}

// AccountRepository keeps accounts in memory in insertion order.
// It is not safe for concurrent use; callers serialize access.
type AccountRepository struct {
	accounts []*model.Account
	byID     map[int]*model.Account
}

// NewAccountRepository creates a repository holding accounts, in the given order.
func NewAccountRepository(accounts ...*model.Account) *AccountRepository {
	r := &AccountRepository{
		accounts: make([]*model.Account, 0, len(accounts)),
		byID:     make(map[int]*model.Account, len(accounts)),
	}
	for _, account := range accounts {
		r.Add(account)
	}
	return r
}

// Add appends account. If an account with the same id is already stored,
// lookups keep returning the earlier one.
func (r *AccountRepository) Add(account *model.Account) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_id": account.ID,
		"balance":    account.Balance,
	})
	log.Debug("Storing account")

	r.accounts = append(r.accounts, account)
	if _, exists := r.byID[account.ID]; exists {
		log.Warn("Duplicate account id, lookups resolve to the first account stored")
		return
	}
	r.byID[account.ID] = account
}

// FindByID returns the account with the given id.
func (r *AccountRepository) FindByID(id int) (*model.Account, bool) {
	account, ok := r.byID[id]
	return account, ok
}

// List returns the stored accounts in insertion order. The slice is a copy;
// the accounts are not.
func (r *AccountRepository) List() []*model.Account {
	out := make([]*model.Account, len(r.accounts))
	copy(out, r.accounts)
	return out
}

func (r *AccountRepository) Len() int {
	return len(r.accounts)
}
