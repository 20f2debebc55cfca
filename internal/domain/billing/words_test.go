package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vyapari/billing-api/internal/domain/billing"
)

func TestWords_Zero(t *testing.T) {
	assert.Equal(t, "Zero", billing.Words(0))
}

func TestWords_Vectors(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{1, "One"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{45, "Forty Five"},
		{100, "One Hundred"},
		{105, "One Hundred Five"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1500, "One Thousand Five Hundred"},
		{55000, "Fifty Five Thousand"},
		{100000, "One Lakh"},
		{250750, "Two Lakh Fifty Thousand Seven Hundred Fifty"},
		{10000000, "One Crore"},
		{12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight"},
		{250000000, "Twenty Five Crore"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, billing.Words(c.n), "Words(%d)", c.n)
	}
}

func TestWords_ContainsSpecPhrase(t *testing.T) {
	assert.Contains(t, billing.Words(1500), "One Thousand Five Hundred")
}

func TestAmountInWords_WholeRupees(t *testing.T) {
	got := billing.AmountInWords(d("1500"))
	assert.Equal(t, "Rupees One Thousand Five Hundred Only", got)
}

func TestAmountInWords_WithPaise(t *testing.T) {
	got := billing.AmountInWords(d("99.50"))
	assert.Equal(t, "Rupees Ninety Nine and Fifty Paise Only", got)
}
