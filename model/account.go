package model

import "go-ledger/common"

// Account is a single balance-holding entry of the ledger. Only Deposit
// validates its input; Withdraw is unchecked, see WithdrawChecked.
type Account struct {
	ID      int     `json:"id"`
	Balance float64 `json:"balance"`
}

// NewAccount creates an account with a fresh id from ids and a zero balance.
func NewAccount(ids IDGenerator) *Account {
	return NewAccountWithBalance(ids, 0)
}

// NewAccountWithBalance creates an account with a fresh id from ids.
// The initial balance is taken as is.
func NewAccountWithBalance(ids IDGenerator, initialBalance float64) *Account {
	return &Account{
		ID:      ids.NextID(),
		Balance: initialBalance,
	}
}

func (a *Account) GetID() int {
	return a.ID
}

func (a *Account) GetBalance() float64 {
	return a.Balance
}

// SetBalance overwrites the balance. Meant for fixtures.
func (a *Account) SetBalance(balance float64) {
	a.Balance = balance
}

// Deposit adds amount to the balance. A negative amount is rejected and the
// balance is left untouched.
func (a *Account) Deposit(amount float64) error {
	if amount < 0 {
		return common.NegativeAmount(amount)
	}
	a.Balance += amount
	return nil
}

// Withdraw subtracts amount from the balance without any check.
func (a *Account) Withdraw(amount float64) {
	a.Balance -= amount
}

// WithdrawChecked is Withdraw with the guards Deposit has, plus an
// overdraft check.
func (a *Account) WithdrawChecked(amount float64) error {
	if amount < 0 {
		return common.NegativeAmount(amount)
	}
	if amount > a.Balance {
		return common.InsufficientFunds(a.Balance, amount)
	}
	a.Balance -= amount
	return nil
}
