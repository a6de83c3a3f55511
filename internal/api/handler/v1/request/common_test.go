package request

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidMobile(t *testing.T) {
	assert.NoError(t, validMobile("9876543210"))
	assert.Error(t, validMobile("987654321"))
	assert.Error(t, validMobile("98765432101"))
	assert.Error(t, validMobile("98765abc10"))
	assert.Error(t, validMobile(""))
}

func TestPositiveAmount(t *testing.T) {
	assert.NoError(t, positiveAmount(decimal.NewFromInt(1)))
	assert.Error(t, positiveAmount(decimal.Zero))
	assert.Error(t, positiveAmount(decimal.NewFromInt(-5)))
	assert.Error(t, positiveAmount("not a decimal"))
}

func TestNonNegativeAmount(t *testing.T) {
	assert.NoError(t, nonNegativeAmount(decimal.Zero))
	assert.NoError(t, nonNegativeAmount(decimal.NewFromInt(10)))
	assert.Error(t, nonNegativeAmount(decimal.NewFromInt(-1)))
}
