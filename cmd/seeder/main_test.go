package main

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/payments-api/internal/payment/domain"
)

func TestGenerateIsDeterministicAndValid(t *testing.T) {
	a := generate(50, rand.New(rand.NewSource(7)))
	b := generate(50, rand.New(rand.NewSource(7)))
	require.Len(t, a, 50)
	assert.Equal(t, a, b)

	for _, p := range a {
		amount, err := decimal.NewFromString(p.amount)
		require.NoError(t, err)
		assert.True(t, amount.IsPositive())
		assert.True(t, amount.LessThan(decimal.New(1, 8)))
		assert.Len(t, p.currency, 3)

		_, err = domain.ParseDate(p.scheduled)
		assert.NoError(t, err)
		assert.NotEmpty(t, p.recipient)
	}
}
