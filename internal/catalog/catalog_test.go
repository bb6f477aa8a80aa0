package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedCatalog(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	entries := c.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "percent-change", entries[0].ID)

	for _, entry := range entries {
		doc, err := c.Doc(entry)
		require.NoError(t, err, "doc for %s", entry.ID)
		assert.Contains(t, doc, "# ", "doc for %s should have a heading", entry.ID)
	}
}

func TestLookup(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	entry, err := c.Lookup("percent-of")
	require.NoError(t, err)
	assert.Equal(t, "Percent Of", entry.Name)
	assert.Equal(t, 1, c.Index("percent-of"))

	_, err = c.Lookup("mortgage")
	assert.True(t, errors.Is(err, ErrUnknownCalculator))
	assert.Equal(t, -1, c.Index("mortgage"))
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	docs := fstest.MapFS{"a.md": {Data: []byte("# A\n")}}

	tests := []struct {
		name string
		yaml string
	}{
		{name: "malformed", yaml: "calculators: [\n"},
		{name: "empty", yaml: "calculators: []\n"},
		{name: "missing id", yaml: "calculators:\n  - name: A\n"},
		{name: "duplicate id", yaml: "calculators:\n  - {id: a, name: A}\n  - {id: a, name: B}\n"},
		{name: "missing doc", yaml: "calculators:\n  - {id: a, name: A, file: b.md}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), docs)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalog))
		})
	}
}

func TestDocWithoutFileUsesName(t *testing.T) {
	c, err := Parse([]byte("calculators:\n  - {id: a, name: Alpha}\n"), fstest.MapFS{})
	require.NoError(t, err)

	entry, err := c.Lookup("a")
	require.NoError(t, err)
	doc, err := c.Doc(entry)
	require.NoError(t, err)
	assert.Equal(t, "# Alpha\n", doc)
}
