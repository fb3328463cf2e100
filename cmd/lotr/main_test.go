package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunDefaults(t *testing.T) {
	conf, err := loadConfig("")
	require.NoError(t, err)
	conf.Log.Level = "error"

	var out bytes.Buffer
	require.NoError(t, run(&out, conf))
	got := out.String()
	assert.Contains(t, got, "length: 9 (set 11 times)\n")
	assert.Contains(t, got, "capacity: 24\n")
	assert.Contains(t, got, "Maiar: Sauron\n")
	assert.Contains(t, got, "Hobbit: Frodo\n")
	assert.Contains(t, got, "resizes: 1\n")
}

func TestRunConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lotr.toml")
	logFile := filepath.Join(dir, "lotr.log")
	data := "[map]\ninitial_capacity = 32\nhash = \"xxhash\"\n\n[log]\nlevel = \"debug\"\nfile = \"" +
		filepath.ToSlash(logFile) + "\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	conf, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, conf.Map.InitialCapacity)
	assert.Equal(t, "xxhash", conf.Map.Hash)

	var out bytes.Buffer
	require.NoError(t, run(&out, conf))
	got := out.String()
	assert.Contains(t, got, "length: 9 (set 11 times)\n")
	assert.Contains(t, got, "capacity: 32\n")
	assert.Contains(t, got, "resizes: 0\n")
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.toml")
}
