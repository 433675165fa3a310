package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/etfmon/journal"
)

func TestRootSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "etfmon - daily ETF signal monitoring", cmd.Short)

	want := []string{"analyze", "monitor", "history", "import", "version"}
	for _, name := range want {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.NotEqual(t, cmd, sub, name)
	}
}

func TestUnknownCommand(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetArgs([]string{"frobnicate"})
	assert.Error(t, cmd.Execute())
}

func TestImportCommand(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "hist.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(
		"Date,Close\n2026-02-02,100.5\n2026-02-03,101.0\n2026-02-04,102.25\n"), 0o644))

	dbPath := filepath.Join(dir, "test.db")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"import", "vwce.de", csvPath, "--db", dbPath})
	require.NoError(t, cmd.Execute())

	jrnl, err := journal.NewSQLite(dbPath)
	require.NoError(t, err)
	defer jrnl.Close()

	series, err := jrnl.Prices("vwce.de")
	require.NoError(t, err)
	require.Len(t, series, 3)
	assert.Equal(t, 102.25, series[2].Close)
}

func TestImportCommandHeaderOnlyFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "empty.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Date,Close\n"), 0o644))

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"import", "empty.de", csvPath, "--db", filepath.Join(dir, "test.db")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data")
}

func TestHistoryCommandEmptyJournal(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	cmd := NewRootCmd()
	cmd.SetArgs([]string{"history", "--db", dbPath})
	assert.NoError(t, cmd.Execute())
}
