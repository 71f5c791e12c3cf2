package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCommand_AllValid(t *testing.T) {
	cmd := newTestRoot(newCheckCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "foo", "bar//baz"})

	require.NoError(t, cmd.Execute())

	got := stripANSI(out.String())
	assert.Contains(t, got, "ok foo -> ./foo")
	assert.Contains(t, got, "ok bar//baz -> ./bar/baz")
}

func TestCheckCommand_ReportsInvalid(t *testing.T) {
	cmd := newTestRoot(newCheckCmd())
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "foo", "/etc/shadow"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 paths invalid")
	assert.Contains(t, stripANSI(out.String()), "invalid")
}

func TestCheckCommand_Quiet(t *testing.T) {
	cmd := newTestRoot(newCheckCmd())
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "--quiet", "..", "ok"})

	require.Error(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestCheckCommand_JSON(t *testing.T) {
	cmd := newTestRoot(newCheckCmd())
	cmd.SilenceErrors = true

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", "--json", "a/./b", ""})

	require.Error(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first, second checkResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, checkResult{Input: "a/./b", Valid: true, Canonical: "./a/b"}, first)
	assert.False(t, second.Valid)
	assert.Contains(t, second.Error, "empty")
}
