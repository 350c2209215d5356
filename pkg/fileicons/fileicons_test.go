package fileicons_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fileicons/pkg/fileicons"
	"github.com/arthur-debert/fileicons/pkg/icons"
	"github.com/arthur-debert/fileicons/pkg/icontables"
	"github.com/arthur-debert/fileicons/pkg/testutil"
)

const jsOnlyDB = `[
  ` + testutil.EmptyRecord + `,
  [
    [
      ["js-icon",["js-light","js-dark"],"/\\.js$/"],
      ["text-icon",[null,"text-dark"],"/\\.txt$/"]
    ],
    [[],[],[],[],[]]
  ]
]`

func useTables(t *testing.T, raw string) *icontables.IconTables {
	t.Helper()
	tables := testutil.NewTables(t, raw)
	fileicons.SetDB(tables)
	t.Cleanup(func() { fileicons.SetDB(nil) })
	return tables
}

func TestGetIconClass(t *testing.T) {
	useTables(t, jsOnlyDB)

	tests := []struct {
		name   string
		input  string
		opts   fileicons.Options
		want   string
		wantOk bool
	}{
		{"default is light", "app.js", fileicons.Options{}, "js-icon js-light", true},
		{"dark", "app.js", fileicons.Options{ColorMode: icons.ColorModeDark}, "js-icon js-dark", true},
		{"mono drops color", "app.js", fileicons.Options{ColorMode: icons.ColorModeMono}, "js-icon", true},
		{"unknown mode is light", "app.js", fileicons.Options{ColorMode: "sepia"}, "js-icon js-light", true},
		{"empty color slot", "notes.txt", fileicons.Options{}, "text-icon", true},
		{"filled color slot", "notes.txt", fileicons.Options{ColorMode: icons.ColorModeDark}, "text-icon text-dark", true},
		{"file fallback", "app.md", fileicons.Options{}, fileicons.FallbackFileClass, true},
		{"directory fallback", "src", fileicons.Options{IsDir: true}, fileicons.FallbackDirectoryClass, true},
		{"dir flag skips file rules", "app.js", fileicons.Options{IsDir: true}, fileicons.FallbackDirectoryClass, true},
		{"skip fallback", "app.md", fileicons.Options{SkipFallback: true}, "", false},
		{"skip fallback dir", "src", fileicons.Options{IsDir: true, SkipFallback: true}, "", false},
		{"skip fallback with a match", "app.js", fileicons.Options{SkipFallback: true}, "js-icon js-light", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := fileicons.GetIconClass(tt.input, tt.opts)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetIconClassList(t *testing.T) {
	useTables(t, jsOnlyDB)

	got, ok := fileicons.GetIconClassList("app.js", fileicons.Options{ColorMode: icons.ColorModeDark})
	require.True(t, ok)
	assert.Equal(t, []string{"js-icon", "js-dark"}, got)

	got, ok = fileicons.GetIconClassList("app.js", fileicons.Options{ColorMode: icons.ColorModeMono})
	require.True(t, ok)
	assert.Equal(t, []string{"js-icon"}, got)

	got, ok = fileicons.GetIconClassList("app.txt.bak", fileicons.Options{})
	require.True(t, ok)
	assert.Equal(t, []string{fileicons.FallbackFileClass}, got)

	got, ok = fileicons.GetIconClassList("app.txt.bak", fileicons.Options{SkipFallback: true})
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSharedCache(t *testing.T) {
	tables := useTables(t, jsOnlyDB)

	_, _ = fileicons.GetIconClass("app.js", fileicons.Options{})
	_, _ = fileicons.GetIconClass("nothing.here", fileicons.Options{})
	assert.Equal(t, 1, tables.CacheStats()["file_name"])

	fileicons.ResetCache()
	assert.Zero(t, tables.CacheStats()["file_name"])
}

func TestDB_EmbeddedDefault(t *testing.T) {
	fileicons.SetDB(nil)
	t.Cleanup(func() { fileicons.SetDB(nil) })

	first := fileicons.DB()
	require.NotNil(t, first)
	assert.Same(t, first, fileicons.DB())

	tests := []struct {
		input string
		opts  fileicons.Options
		want  string
	}{
		{"app.js", fileicons.Options{}, "js-icon medium-yellow"},
		{"app.js", fileicons.Options{ColorMode: icons.ColorModeDark}, "js-icon dark-yellow"},
		{"go.mod", fileicons.Options{}, fileicons.FallbackFileClass},
		{"node_modules", fileicons.Options{IsDir: true}, "node-icon medium-green"},
		{".github", fileicons.Options{IsDir: true, ColorMode: icons.ColorModeDark}, "github-icon"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := fileicons.GetIconClass(tt.input, tt.opts)
			assert.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
