package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"windows line endings", "line1\r\nline2\r", "line1\nline2"},
		{"collapses inner whitespace", "Ada    Lovelace   Engineer", "Ada Lovelace Engineer"},
		{"trims trailing spaces", "line1   \nline2\t", "line1\nline2"},
		{"heading loses leading spaces", "   ## Skills", "## Skills"},
		{"bullet keeps indentation", "  - Go\n  - SQL", "  - Go\n  - SQL"},
		{"excessive blank lines reduced", "a\n\n\n\n\nb", "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}

func TestIngestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	content := "Ada Lovelace\r\n\r\nAnalytical   engines engineer.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\n\nAnalytical engines engineer.", text)

	require.NotNil(t, meta)
	assert.Empty(t, meta.URL)
	assert.Equal(t, 5, meta.Words)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestIngestFromFile_NotFound(t *testing.T) {
	_, _, err := IngestFromFile("/nonexistent/resume.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestMetadata_HashIsStable(t *testing.T) {
	a := NewMetadata("same content", "")
	b := NewMetadata("same content", "https://example.com")
	c := NewMetadata("different", "")

	assert.Equal(t, a.Hash, b.Hash)
	assert.NotEqual(t, a.Hash, c.Hash)
}

func TestMetadata_ToJSON(t *testing.T) {
	meta := NewMetadata("hello world", "https://example.com/profile")
	out, err := meta.ToJSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"url": "https://example.com/profile"`)
	assert.Contains(t, string(out), `"words": 2`)
}
