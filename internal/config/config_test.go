package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempConfig(t, `{"resume": "resume.txt", "job_url": "https://example.com/job", "verbose": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", cfg.Resume)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.True(t, cfg.Verbose)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeTempConfig(t, `{not json`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidateMutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com/job"}
	assert.Error(t, cfg.Validate())
}

func TestValidateMissingFiles(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())

	resume := writeTempConfig(t, "resume body")
	cfg = &Config{Resume: resume}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Resume: "mine.txt"}
	defaults := Config{Resume: "default.txt", Model: "gemini-2.5-flash", ListenAddr: ":8080"}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "mine.txt", merged.Resume)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, ":8080", merged.ListenAddr)
}
