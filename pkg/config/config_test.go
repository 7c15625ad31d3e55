package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearBankEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BANK_DATA_ROOT", "BANK_DB_PATH", "BANK_REPORTS_DIR",
		"BANK_RESTRICTION_PATH", "BANK_STAT_WINDOW_YEARS", "DEBUG", "NODE_ENV",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearBankEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "./bank-data", cfg.Bank.DataRoot)
	assert.Empty(t, cfg.Bank.DBPath)
	assert.Equal(t, 5, cfg.Bank.StatWindowYears)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "development", cfg.NodeEnv)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearBankEnv(t)
	t.Setenv("BANK_DATA_ROOT", "/data/bank")
	t.Setenv("BANK_STAT_WINDOW_YEARS", "3")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/bank", cfg.Bank.DataRoot)
	assert.Equal(t, 3, cfg.Bank.StatWindowYears)
	assert.True(t, cfg.Debug)
}

func TestLoadFromEnvFile(t *testing.T) {
	clearBankEnv(t)

	envPath := filepath.Join(t.TempDir(), ".env")
	content := "BANK_DATA_ROOT=/from/file\nBANK_REPORTS_DIR=/from/file/reports\n"
	require.NoError(t, os.WriteFile(envPath, []byte(content), 0644))

	cfg, err := Load(envPath)
	require.NoError(t, err)

	assert.Equal(t, "/from/file", cfg.Bank.DataRoot)
	assert.Equal(t, "/from/file/reports", cfg.Bank.ReportsDir)
}

func TestLoadMissingEnvFile(t *testing.T) {
	clearBankEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoadRejectsBadWindowYears(t *testing.T) {
	clearBankEnv(t)

	t.Setenv("BANK_STAT_WINDOW_YEARS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("BANK_STAT_WINDOW_YEARS", "0")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Bank: BankConfig{DataRoot: "/data/bank"}}

	assert.NoError(t, cfg.Validate([]string{"bank", "dataRoot"}))

	err := cfg.Validate([]string{"bank", "dbPath"}, []string{"bank", "restrictionPath"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bank.dbPath")
	assert.Contains(t, err.Error(), "bank.restrictionPath")
}
