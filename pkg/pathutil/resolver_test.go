package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	resolver := New(Config{DataRoot: "/data/bank"})

	assert.Equal(t, "/data/bank", resolver.GetDataRoot())
	assert.Equal(t, filepath.Join("/data/bank", ".bank", "bank.db"), resolver.GetDatabasePath())
	assert.Equal(t, filepath.Join("/data/bank", "reports"), resolver.GetReportsDir())
}

func TestNewExplicitPaths(t *testing.T) {
	resolver := New(Config{
		DataRoot:     "/data/bank",
		DatabasePath: "/var/db/bank.db",
		ReportsDir:   "/srv/reports",
	})

	assert.Equal(t, "/var/db/bank.db", resolver.GetDatabasePath())
	assert.Equal(t, "/srv/reports", resolver.GetReportsDir())
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BANK_DATA_ROOT", "/data/bank")
	t.Setenv("BANK_DB_PATH", "")
	t.Setenv("BANK_REPORTS_DIR", "/srv/reports")

	resolver, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/data/bank", resolver.GetDataRoot())
	assert.Equal(t, "/srv/reports", resolver.GetReportsDir())
}

func TestFromEnvRequiresDataRoot(t *testing.T) {
	t.Setenv("BANK_DATA_ROOT", "")

	_, err := FromEnv()
	assert.Error(t, err)
}

func TestGetReportFilePath(t *testing.T) {
	resolver := New(Config{DataRoot: "/data/bank"})

	path, err := resolver.GetReportFilePath("downtown", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data/bank", "reports", "2026", "downtown_2026-09-01.txt"), path)
}

func TestGetReportFilePathSanitizesName(t *testing.T) {
	resolver := New(Config{DataRoot: "/data/bank"})

	path, err := resolver.GetReportFilePath("east side", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, "east-side_2026-09-01.txt", filepath.Base(path))
}

func TestGetReportFilePathRejectsBadDate(t *testing.T) {
	resolver := New(Config{DataRoot: "/data/bank"})

	for _, date := range []string{"", "2026", "01-09-2026", "Sept 1 2026"} {
		_, err := resolver.GetReportFilePath("downtown", date)
		assert.Error(t, err, "date %q should be rejected", date)
	}
}

func TestEnsureDirAndFileExists(t *testing.T) {
	root := t.TempDir()
	resolver := New(Config{DataRoot: root})

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, resolver.EnsureDir(nested))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	file := filepath.Join(nested, "f.txt")
	assert.False(t, resolver.FileExists(file))
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.True(t, resolver.FileExists(file))
}
