package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlog-dev/spendlog/internal/config"
)

// chdir stands in for t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrack_ExitImmediately(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCurrency, "")
	chdir(t, t.TempDir())

	out, err := execute(t, "9\n", "track")
	require.NoError(t, err)
	assert.Contains(t, out, "Expense Tracker Menu")
	assert.Contains(t, out, "Goodbye!")
}

func TestTrack_SampleSeedsData(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCurrency, "")
	chdir(t, t.TempDir())

	out, err := execute(t, "2\n9\n", "track", "--sample")
	require.NoError(t, err)
	assert.Contains(t, out, "Lunch at Subway")
	assert.Contains(t, out, "Total: $971.50 (6 expenses)")
}

func TestTrack_ConfigCurrency(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCurrency, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "spendlog.yaml")
	require.NoError(t, config.Save(path, &config.Config{Currency: "€"}))

	out, err := execute(t, "2\n9\n", "track", "--sample", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "€800.00")
}

func TestTrack_MissingExplicitConfig(t *testing.T) {
	_, err := execute(t, "", "track", "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestCategories_ListsDefaults(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCurrency, "")
	chdir(t, t.TempDir())

	out, err := execute(t, "", "categories")
	require.NoError(t, err)
	assert.Contains(t, out, "food")
	assert.Contains(t, out, "Food & Dining")
	assert.Contains(t, out, "other")
}

func TestCategories_ConfigAdds(t *testing.T) {
	t.Setenv(config.EnvConfig, "")
	t.Setenv(config.EnvCurrency, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "spendlog.yaml")
	require.NoError(t, config.Save(path, &config.Config{
		Categories: []config.CategoryConfig{{Key: "rent", Name: "Rent & Housing"}},
	}))

	out, err := execute(t, "", "categories", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rent & Housing")
}
