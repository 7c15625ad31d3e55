package stats

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatReport(t *testing.T) {
	records := []AmountAt{
		{Amount: decimal.RequireFromString("1000.00"), Date: date(2026, time.February, 10)},
	}
	report := BuildReport(CollectAmounts(records, 2026, 1), 2026)

	out := FormatReport("downtown saving accounts", report)

	assert.True(t, strings.HasPrefix(out, "=== downtown saving accounts ===\n"))
	assert.Contains(t, out, "2026")
	assert.Contains(t, out, "Q1")
	assert.Contains(t, out, "Feb")
	assert.Contains(t, out, "1000")
	assert.Contains(t, out, "(1 records)")
}
