package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepgen/internal/db"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(orig) })
	return dir
}

func runInit(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunInit(&buf))
	return buf.String()
}

func TestInit_CreatesStepgenDirectory(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	info, err := os.Stat(filepath.Join(dir, ".stepgen"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Contains(t, out, ".stepgen/ created")
}

func TestInit_DirectoryAlreadyExists(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".stepgen"), 0o755))

	out := runInit(t)

	assert.Contains(t, out, ".stepgen/ already exists")
}

func TestInit_InitializesSQLiteDatabase(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	path := filepath.Join(dir, ".stepgen", "steps.db")
	_, err := os.Stat(path)
	require.NoError(t, err)

	sqlDB, err := db.Open(path)
	require.NoError(t, err)
	defer sqlDB.Close()

	var mode string
	require.NoError(t, sqlDB.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
	assert.Contains(t, out, ".stepgen/steps.db created")
}

func TestInit_DatabaseAlreadyExists(t *testing.T) {
	inTempDir(t)
	runInit(t)

	out := runInit(t)
	assert.Contains(t, out, ".stepgen/steps.db already exists")
}

func TestInit_AppliesMigrations(t *testing.T) {
	inTempDir(t)
	runInit(t)

	sqlDB, err := db.Open(dbPath)
	require.NoError(t, err)
	defer sqlDB.Close()

	var version int
	require.NoError(t, sqlDB.QueryRow("SELECT version FROM schema_version").Scan(&version))
	assert.Equal(t, 2, version)
}

func TestInit_AddsToGitignore(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("bin\n"), 0o644))

	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), ".stepgen/steps.db\n")
	assert.Contains(t, string(data), "bin\n")
	assert.Contains(t, out, ".stepgen/steps.db added to .gitignore")
}

func TestInit_GitignoreAlreadyHasEntry(t *testing.T) {
	dir := inTempDir(t)
	original := "bin\n.stepgen/steps.db\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(original), 0o644))

	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
	assert.Contains(t, out, ".stepgen/steps.db already in .gitignore")
}

func TestInit_NoGitignoreExists(t *testing.T) {
	dir := inTempDir(t)
	out := runInit(t)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, ".stepgen/steps.db\n", string(data))
	assert.Contains(t, out, ".gitignore created")
}
