package model

import (
	"errors"
	"testing"

	"go-ledger/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	amount         = 7.0
	initialBalance = 10.0
)

func TestNewAccount_AssignsPositiveID(t *testing.T) {
	account := NewAccount(NewSequence())

	assert.Greater(t, account.GetID(), 0)
	assert.Zero(t, account.GetBalance())
}

func TestNewAccountWithBalance(t *testing.T) {
	ids := NewSequence()

	first := NewAccountWithBalance(ids, initialBalance)
	second := NewAccountWithBalance(ids, -3)

	assert.Equal(t, initialBalance, first.GetBalance())
	// The initial balance is not validated.
	assert.Equal(t, -3.0, second.GetBalance())
	assert.NotEqual(t, first.GetID(), second.GetID())
}

func TestAccount_Deposit(t *testing.T) {
	t.Run("negative amount", func(t *testing.T) {
		account := NewAccount(NewSequence())

		err := account.Deposit(-1.0)

		require.Error(t, err)
		assert.Equal(t, "Negative amount: -1.0", err.Error())
		assert.True(t, errors.Is(err, common.ErrInvalidArgument))
		assert.Equal(t, common.CodeInvalidArgument, common.CodeOf(err))
		assert.Zero(t, account.GetBalance())
	})

	t.Run("correct amount", func(t *testing.T) {
		account := NewAccount(NewSequence())
		account.SetBalance(initialBalance)

		err := account.Deposit(amount)

		assert.NoError(t, err)
		assert.Equal(t, initialBalance+amount, account.GetBalance())
	})

	t.Run("zero amount", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		assert.NoError(t, account.Deposit(0))
		assert.Equal(t, initialBalance, account.GetBalance())
	})
}

func TestAccount_Withdraw(t *testing.T) {
	t.Run("decrements balance", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		account.Withdraw(amount)

		assert.Equal(t, initialBalance-amount, account.GetBalance())
	})

	t.Run("no validation", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		account.Withdraw(-5)
		assert.Equal(t, 15.0, account.GetBalance())

		account.Withdraw(100)
		assert.Equal(t, -85.0, account.GetBalance())
	})
}

func TestAccount_WithdrawChecked(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		assert.NoError(t, account.WithdrawChecked(amount))
		assert.Equal(t, initialBalance-amount, account.GetBalance())
	})

	t.Run("whole balance", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		assert.NoError(t, account.WithdrawChecked(initialBalance))
		assert.Zero(t, account.GetBalance())
	})

	t.Run("negative amount", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		err := account.WithdrawChecked(-1.0)

		require.Error(t, err)
		assert.Equal(t, "Negative amount: -1.0", err.Error())
		assert.Equal(t, initialBalance, account.GetBalance())
	})

	t.Run("insufficient funds", func(t *testing.T) {
		account := NewAccountWithBalance(NewSequence(), initialBalance)

		err := account.WithdrawChecked(10.5)

		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInsufficientFunds))
		assert.Equal(t, "Insufficient funds: balance 10.0, requested 10.5", err.Error())
		assert.Equal(t, initialBalance, account.GetBalance())
	})
}
