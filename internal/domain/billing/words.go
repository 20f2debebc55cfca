package billing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Indian-numbering units above thousand: lakh = 10^5, crore = 10^7.

var wordsOnes = [...]string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordsTens = [...]string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Words renders n in the Indian numbering system (crore/lakh/thousand/hundred).
// Words(0) == "Zero".
func Words(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + Words(-n)
	}

	var parts []string
	if crore := n / 1e7; crore > 0 {
		parts = append(parts, Words(crore), "Crore")
		n %= 1e7
	}
	if lakh := n / 1e5; lakh > 0 {
		parts = append(parts, belowHundred(int(lakh)), "Lakh")
		n %= 1e5
	}
	if thousand := n / 1000; thousand > 0 {
		parts = append(parts, belowHundred(int(thousand)), "Thousand")
		n %= 1000
	}
	if h := n / 100; h > 0 {
		parts = append(parts, wordsOnes[h], "Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, belowHundred(int(n)))
	}
	return strings.Join(parts, " ")
}

func belowHundred(n int) string {
	if n < 20 {
		return wordsOnes[n]
	}
	s := wordsTens[n/10]
	if n%10 > 0 {
		s += " " + wordsOnes[n%10]
	}
	return s
}

// AmountInWords renders a rupee amount for the printed legal text, e.g.
// "Rupees One Thousand Five Hundred Only" or
// "Rupees Ninety Nine and Fifty Paise Only". Negative amounts are not expected
// on an invoice and render through Words' Minus prefix.
func AmountInWords(amount decimal.Decimal) string {
	rupees := amount.IntPart()
	paise := amount.Sub(decimal.NewFromInt(rupees)).Mul(hundred).Round(0).IntPart()

	s := "Rupees " + Words(rupees)
	if paise > 0 {
		s += " and " + Words(paise) + " Paise"
	}
	return s + " Only"
}
