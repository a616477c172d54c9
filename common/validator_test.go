package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openRequest struct {
	InitialBalance float64 `validate:"gte=0"`
	Currency       string  `validate:"required,oneof=TRY USD EUR"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(openRequest{InitialBalance: 1, Currency: "USD"}))
	})

	t.Run("invalid", func(t *testing.T) {
		err := ValidateStruct(openRequest{InitialBalance: -1, Currency: "GBP"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "openRequest.InitialBalance")
		assert.Contains(t, err.Error(), "openRequest.Currency")
	})
}
