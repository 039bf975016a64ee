package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(Te *testing.T) {
	c, err := Load("")
	require.NoError(Te, err)
	assert.Equal(Te, 1e-5, c.Symmetry.Precision)
	assert.False(Te, c.Symmetry.PartialOccupancies)
	assert.Equal(Te, 4, c.Batch.Workers)
	assert.Equal(Te, "info", c.Log.Level)
	assert.Equal(Te, "console", c.Log.Format)
	assert.Equal(Te, "", c.Metrics.Addr)
}

func TestFileAndEnv(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "gospg.yaml")
	yaml := "symmetry:\n  precision: 0.001\n  overlapping_types: true\nbatch:\n  workers: 2\nlog:\n  format: json\n"
	require.NoError(Te, os.WriteFile(name, []byte(yaml), 0o644))
	Te.Setenv("GOSPG_BATCH_WORKERS", "8")
	c, err := Load(name)
	require.NoError(Te, err)
	assert.Equal(Te, 0.001, c.Symmetry.Precision)
	assert.True(Te, c.Symmetry.OverlappingTypes)
	assert.Equal(Te, 8, c.Batch.Workers)
	assert.Equal(Te, "json", c.Log.Format)

	_, err = Load(filepath.Join(Te.TempDir(), "missing.yaml"))
	assert.Error(Te, err)
}

func TestValidate(Te *testing.T) {
	v := New()
	v.Set("symmetry.precision", -1)
	_, err := FromViper(v)
	assert.Error(Te, err)
	v = New()
	v.Set("batch.workers", 0)
	_, err = FromViper(v)
	assert.Error(Te, err)
	v = New()
	v.Set("log.format", "xml")
	_, err = FromViper(v)
	assert.Error(Te, err)
}
