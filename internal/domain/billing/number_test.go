package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vyapari/billing-api/internal/domain/billing"
)

func TestNumberPrefix(t *testing.T) {
	day := time.Date(2024, 5, 1, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "240501", billing.NumberPrefix(day))
}

func TestNextNumber_IncrementsDailySequence(t *testing.T) {
	existing := []string{"2405010001", "2405010002"}
	assert.Equal(t, "2405010003", billing.NextNumber("240501", existing))
}

func TestNextNumber_FirstOfTheDay(t *testing.T) {
	assert.Equal(t, "2405010001", billing.NextNumber("240501", nil))
}

func TestNextNumber_IgnoresOtherPrefixes(t *testing.T) {
	existing := []string{"2404300009", "2405010001", "2404309999"}
	assert.Equal(t, "2405010002", billing.NextNumber("240501", existing))
}

func TestNextNumber_IgnoresMalformedSuffixes(t *testing.T) {
	existing := []string{"240501ABCD", "240501", "2405010004"}
	assert.Equal(t, "2405010005", billing.NextNumber("240501", existing))
}

func TestNextNumber_TakesMaxNotCount(t *testing.T) {
	// Gaps in the sequence (deleted or failed invoices) must not cause reuse.
	existing := []string{"2405010001", "2405010007"}
	assert.Equal(t, "2405010008", billing.NextNumber("240501", existing))
}

func TestNextNumber_GrowsPastPadding(t *testing.T) {
	existing := []string{"2405019999"}
	assert.Equal(t, "24050110000", billing.NextNumber("240501", existing))
}
