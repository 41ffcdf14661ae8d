package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dannykalklus-wq/invoice-app/internal/money"
)

func TestFormat_UnknownCode(t *testing.T) {
	assert.Equal(t, "12.50 ZZZZ", money.Format(12.5, "ZZZZ"))
	assert.Equal(t, "12.50", money.Format(12.5, ""))
}

func TestFormat_CoercesAmount(t *testing.T) {
	assert.Equal(t, "0.00 ZZZZ", money.Format("abc", "ZZZZ"))
	assert.Equal(t, "1234.50 ZZZZ", money.Format("1,234.5", "ZZZZ"))
}

func TestFormat_KnownCode(t *testing.T) {
	got := money.Format(12.5, "USD")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "12.5")

	got = money.Format(12.5, "EUR")
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "12.5")
}
