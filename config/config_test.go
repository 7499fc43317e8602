package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "struck.yaml")
	contents := "svm_c: 2.5\nsvm_budget_size: 100\nprocess_old: false\nloss: distance\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2.5, cfg.SVMC)
	assert.Equal(t, 100, cfg.SVMBudgetSize)
	assert.False(t, cfg.ProcessOld)
	assert.Equal(t, "distance", cfg.Loss)
	// unspecified fields keep their defaults
	assert.Equal(t, 30.0, cfg.SearchRadius)
	assert.Equal(t, "standard", cfg.SVMVariant)
}

func TestLoadLegacy(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "struck.conf")
	contents := "" +
		"# a comment\n" +
		"seed = 7\n" +
		"searchRadius = 45\n" +
		"svmC = 100\n" +
		"svmBudgetSize = 50\n" +
		"processOld = off\n" +
		"optimizeAll = on\n" +
		"svm = fuzzy\n" +
		"feature = haar gaussian 0.2\n" +
		"feature = raw linear\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadLegacy(path)
	require.NoError(t, err)

	assert.EqualValues(t, 7, cfg.Seed)
	assert.Equal(t, 45.0, cfg.SearchRadius)
	assert.Equal(t, 100.0, cfg.SVMC)
	assert.Equal(t, 50, cfg.SVMBudgetSize)
	assert.False(t, cfg.ProcessOld)
	assert.True(t, cfg.OptimizeAll)
	assert.Equal(t, "fuzzy", cfg.SVMVariant)
	require.Len(t, cfg.Features, 2)
	assert.Equal(t, FeatureKernelPair{Feature: "haar", Kernel: "gaussian", Param: 0.2}, cfg.Features[0])
	assert.Equal(t, FeatureKernelPair{Feature: "raw", Kernel: "linear", Param: 0}, cfg.Features[1])
}

func TestLoadLegacySkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "struck.conf")
	contents := "not a valid line\nsvmC 1.0\nsvmC = 3.0\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := LoadLegacy(path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.SVMC)
}
