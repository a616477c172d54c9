package repository

import (
	"testing"

	"go-ledger/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepository_AddAndFind(t *testing.T) {
	ids := model.NewSequence()
	repo := NewAccountRepository()

	first := model.NewAccountWithBalance(ids, 10)
	second := model.NewAccountWithBalance(ids, 20)
	repo.Add(first)
	repo.Add(second)

	assert.Equal(t, 2, repo.Len())

	found, ok := repo.FindByID(second.ID)
	require.True(t, ok)
	assert.Same(t, second, found)

	_, ok = repo.FindByID(99)
	assert.False(t, ok)
}

func TestAccountRepository_ListKeepsInsertionOrder(t *testing.T) {
	a := &model.Account{ID: 3}
	b := &model.Account{ID: 1}
	c := &model.Account{ID: 2}
	repo := NewAccountRepository(a, b, c)

	list := repo.List()

	require.Len(t, list, 3)
	assert.Equal(t, []int{3, 1, 2}, []int{list[0].ID, list[1].ID, list[2].ID})
}

func TestAccountRepository_ListIsACopy(t *testing.T) {
	repo := NewAccountRepository(&model.Account{ID: 1})

	list := repo.List()
	list[0] = &model.Account{ID: 42}

	found, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, 1, found.ID)
	assert.Equal(t, 1, repo.List()[0].ID)
}

func TestAccountRepository_DuplicateIDResolvesToFirst(t *testing.T) {
	first := &model.Account{ID: 5, Balance: 1}
	second := &model.Account{ID: 5, Balance: 2}
	repo := NewAccountRepository(first, second)

	found, ok := repo.FindByID(5)

	require.True(t, ok)
	assert.Same(t, first, found)
	assert.Equal(t, 2, repo.Len())
}
