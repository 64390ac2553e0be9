package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.palette]",
		"[browser]",
		"[database]",
		"[logging]",
		"[notifications]",
		"[omnibox]",
	}, sectionHeaders(string(content)))
	assert.Contains(t, string(content), "max_suggestions = 3")
	assert.Contains(t, string(content), "backend = 'cdp'")
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	assert.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "config.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	input := `[omnibox]
host = 'localhost'

[browser]
backend = 'cdp'

[appearance.palette]
accent = '#000000'

[appearance]
`

	result := sortTOMLSections(input)

	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.palette]",
		"[browser]",
		"[omnibox]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "\n"))
	assert.False(t, strings.HasSuffix(result, "\n\n"))
}
