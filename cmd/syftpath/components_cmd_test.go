package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentsCommand_PrintsOnePerLine(t *testing.T) {
	cmd := newTestRoot(newComponentsCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"components", ".//datasets/./census/"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "datasets\ncensus\n", out.String())
}

func TestComponentsCommand_CurrentDirectoryIsEmpty(t *testing.T) {
	cmd := newTestRoot(newComponentsCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"components", "."})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, out.String())
}

func TestComponentsCommand_JSON(t *testing.T) {
	cmd := newTestRoot(newComponentsCmd())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"components", "--json", "a/b", "."})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)

	var first, second componentsResult
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))

	assert.Equal(t, []string{"a", "b"}, first.Components)
	assert.Empty(t, second.Components)
	assert.Empty(t, second.Error)
}
