package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitClientIDs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"spaces", "c1 c2 c3", []string{"c1", "c2", "c3"}},
		{"commas", "c1,c2,c3", []string{"c1", "c2", "c3"}},
		{"semicolons", "c1;c2", []string{"c1", "c2"}},
		{"mixed with extra whitespace", "  c1, c2 ;c3  ", []string{"c1", "c2", "c3"}},
		{"duplicates kept", "c1 c1", []string{"c1", "c1"}},
		{"empty", "", nil},
		{"only separators", " ,; ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitClientIDs(tt.input)
			if tt.want == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseSavingSubmission(t *testing.T) {
	acct, err := savingSubmission("c1 c2").Parse(DefaultRestriction())
	require.NoError(t, err)

	assert.Equal(t, KindSaving, acct.Kind)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, "downtown", acct.SubbranchName)
	assert.Equal(t, []string{"c1", "c2"}, acct.ClientIDs)
	assert.Equal(t, 0.03, acct.Saving.Interest)
	assert.Equal(t, "USD", acct.Saving.CurrencyType)
}

func TestParseCheckingSubmission(t *testing.T) {
	acct, err := checkingSubmission("c1").Parse(DefaultRestriction())
	require.NoError(t, err)

	assert.Equal(t, KindChecking, acct.Kind)
	assert.True(t, acct.Checking.Overdraft.Equal(decimal.RequireFromString("100")))
}

func TestParseRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AccountSubmission)
		field  string
	}{
		{"unknown account type", func(s *AccountSubmission) { s.AccountType = "moneyMarket" }, "accountType"},
		{"non-numeric balance", func(s *AccountSubmission) { s.Balance = "lots" }, "balance"},
		{"negative balance", func(s *AccountSubmission) { s.Balance = "-1" }, "balance"},
		{"non-numeric interest", func(s *AccountSubmission) { s.Interest = "high" }, "interest"},
		{"interest above one", func(s *AccountSubmission) { s.Interest = "1.5" }, "interest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := savingSubmission("c1")
			tt.mutate(&sub)

			_, err := sub.Parse(DefaultRestriction())

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParseCurrencyAllowList(t *testing.T) {
	rules := DefaultRestriction()
	rules.Currencies = []string{"USD", "JPY"}

	_, err := savingSubmission("c1").Parse(rules)
	require.NoError(t, err)

	sub := savingSubmission("c1")
	sub.CurrencyType = "EUR"
	_, err = sub.Parse(rules)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "currencyType", verr.Field)
}

func TestParseCheckingOverdraftRejections(t *testing.T) {
	sub := checkingSubmission("c1")
	sub.Overdraft = "-5"

	_, err := sub.Parse(DefaultRestriction())

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "overdraft", verr.Field)
}
