package cmd

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runFeature(t *testing.T, path string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, RunFeature(&buf, path))
	return buf.String()
}

func TestFeature_GeneratesStubPerStepLine(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("login.feature", []byte(`Feature: Login

# steps below
Scenario: User logs in
  Given a user "bob"
  When they log in
  And they wait
  Then the dashboard appears
`), 0o644))

	out := runFeature(t, "login.feature")

	assert.Contains(t, out, `[Given(@"a user ""([^""]*)""")]`)
	assert.Contains(t, out, "public bool Whentheylogin()")
	assert.Contains(t, out, "public bool Thenthedashboardappears()")
	assert.Contains(t, out, "generated 3 stubs, skipped 3 lines")
}

func TestFeature_SkipsBlankAndCommentLinesSilently(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("steps.feature", []byte(`
# only a comment

Given a user
`), 0o644))

	out := runFeature(t, "steps.feature")

	assert.Contains(t, out, "generated 1 stubs, skipped 0 lines")
	assert.NotContains(t, out, "skip line")
}

func TestFeature_ReportsSkippedLines(t *testing.T) {
	inTempDir(t)
	require.NoError(t, os.WriteFile("steps.feature", []byte(`And first
Given a user
`), 0o644))

	out := runFeature(t, "steps.feature")

	assert.Contains(t, out, "skip line 1: a step cannot start with And or Or")
}

func TestFeature_RecordsIntoWorkspace(t *testing.T) {
	inTempDir(t)
	runInit(t)
	require.NoError(t, os.WriteFile("steps.feature", []byte(`Given a user
When they log in
`), 0o644))

	out := runFeature(t, "steps.feature")

	assert.Contains(t, out, "Givenauser")
	assert.Contains(t, out, "Whentheylogin")

	listed := runList(t, "")
	assert.Contains(t, listed, "#1")
	assert.Contains(t, listed, "#2")
}

func TestFeature_MissingFile(t *testing.T) {
	inTempDir(t)
	var buf bytes.Buffer
	err := RunFeature(&buf, "nope.feature")
	assert.Error(t, err)
}
