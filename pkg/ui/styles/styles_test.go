package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStyles(t *testing.T) {
	expected := []string{
		"Header", "Name", "IconClass", "ColorClass", "Fallback", "Missing",
		"Label", "Pattern", "Error", "Info", "Indent",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			assert.True(t, Has(name), "style %s should be defined", name)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.True(t, GetStyle("Name").GetBold())
	assert.Equal(t, 12, GetStyle("Label").GetWidth())

	missing := GetStyle("NoSuchStyle")
	assert.False(t, missing.GetBold())
	assert.Equal(t, "text", missing.Render("text"))
}

func TestMergeStyles(t *testing.T) {
	merged := MergeStyles("Missing", "Name")
	assert.True(t, merged.GetItalic())
	assert.True(t, merged.GetBold())
}

func TestLoadStyles(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStylesFromData(embeddedStyles))
	})

	path := filepath.Join(t.TempDir(), "styles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
colors:
  red:
    light: "#FF0000"
    dark: "#FF0000"
styles:
  Only:
    underline: true
    foreground: red
`), 0644))

	require.NoError(t, LoadStyles(path))
	assert.True(t, Has("Only"))
	assert.False(t, Has("Header"))
	assert.True(t, GetStyle("Only").GetUnderline())

	assert.Error(t, LoadStyles(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, LoadStylesFromData([]byte("styles: [not, a, map]")))
}
