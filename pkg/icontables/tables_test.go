package icontables

import (
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icondb"
)

// fixtureDB is ordered so that name order, dimension order and priority
// disagree, which lets tests tell which one decided a match.
const fixtureDB = `[
  [
    [
      ["src-icon",["src-light",null],"/^src$/"],
      ["lang-dir-icon",null,"/^never-matches$/",1,false,null,null,"/^go$/i"],
      ["cache-dir-icon",null,"/[\\\\/]\\.cache$/",1,true]
    ],
    [[],[1],[2],[],[]]
  ],
  [
    [
      ["js-icon",["js-light","js-dark"],"/\\.js$/",1,false,"/^node$/","/^source\\.js$/","/^javascript$/i"],
      ["test-js-icon",["test-light","test-dark"],"/\\.test\\.js$/"],
      ["sh-icon",null,"/\\.sh$/",1,false,"/^(?:ba)?sh$/","/^source\\.shell$/","/^shell$/i","/^#!.*\\bsh\\b/"],
      ["asm-icon",null,"/\\.asm$/",5,false,null,"/^source\\.asm$/"],
      ["workflow-icon",null,"/[\\\\/]workflows[\\\\/][^\\\\/]+\\.yml$/",1,true],
      ["any-script-icon",null,"/\\.(?:js|sh)$/",9,false,"/sh$/","/^source\\.(?:js|shell)$/",null,"/^#!/"]
    ],
    [[2,0,5],[0,2],[4],[5,0,2,3],[2,5]]
  ]
]`

func decodeFixture(t *testing.T, raw string) *icondb.Database {
	t.Helper()
	db, err := icondb.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	return db
}

func newFixtureTables(t *testing.T) *IconTables {
	t.Helper()
	tables, err := New(decodeFixture(t, fixtureDB))
	require.NoError(t, err)
	tables.ResetCache()
	return tables
}

func TestNew_BuildsTables(t *testing.T) {
	tables := newFixtureTables(t)

	dirs := tables.Directories()
	files := tables.Files()
	require.Len(t, dirs.ByName, 3)
	require.Len(t, files.ByName, 6)

	for i, icon := range files.ByName {
		assert.Equal(t, i, icon.Index())
	}

	// Dimension slices reference the ByName pool, in offset order
	require.Len(t, files.ByScope, 4)
	assert.Same(t, files.ByName[5], files.ByScope[0])
	assert.Same(t, files.ByName[0], files.ByScope[1])
	assert.Same(t, files.ByName[2], files.ByInterpreter[0])
	assert.Same(t, files.ByName[4], files.ByPath[0])
	assert.Same(t, dirs.ByName[2], dirs.ByPath[0])
	assert.Empty(t, dirs.ByScope)
}

func TestNew_ConvenienceIcons(t *testing.T) {
	tables := newFixtureTables(t)

	require.NotNil(t, tables.BinaryIcon())
	assert.Equal(t, "asm-icon", tables.BinaryIcon().Class())
	require.NotNil(t, tables.ExecutableIcon())
	assert.Equal(t, "sh-icon", tables.ExecutableIcon().Class())
}

func TestNew_CorruptDatabase(t *testing.T) {
	tests := []struct {
		name     string
		db       string
		wantCode errors.ErrorCode
	}{
		{
			name:     "offset past end",
			db:       `[[[],[[],[],[],[],[]]],[[["a",null,"/a/"]],[[],[],[1],[],[]]]]`,
			wantCode: errors.ErrOffsetRange,
		},
		{
			name:     "negative offset",
			db:       `[[[["a",null,"/a/"]],[[-1],[],[],[],[]]],[[],[[],[],[],[],[]]]]`,
			wantCode: errors.ErrOffsetRange,
		},
		{
			name:     "bad match pattern",
			db:       `[[[],[[],[],[],[],[]]],[[["a",null,"/(a/"]],[[],[],[],[],[]]]]`,
			wantCode: errors.ErrPatternInvalid,
		},
		{
			name:     "bad optional pattern",
			db:       `[[[["a",null,"/a/",1,false,"not-a-literal"]],[[],[],[],[],[]]],[[],[[],[],[],[],[]]]]`,
			wantCode: errors.ErrPatternInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tables, err := New(decodeFixture(t, tt.db))
			require.Error(t, err)
			assert.Nil(t, tables)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
			assert.NotEmpty(t, errors.GetErrorDetails(err)["table"])
		})
	}
}

func TestNew_NilDatabase(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestNew_DefaultDatabase(t *testing.T) {
	db, err := icondb.Default()
	require.NoError(t, err)

	tables, err := New(db)
	require.NoError(t, err)

	require.NotNil(t, tables.BinaryIcon())
	require.NotNil(t, tables.ExecutableIcon())
	assert.Equal(t, "terminal-icon", tables.ExecutableIcon().Class())

	tests := []struct {
		name string
		dir  bool
		want string
	}{
		{"main.go", false, "go-icon"},
		{"README.md", false, "book-icon"},
		{"notes.md", false, "markdown-icon"},
		{"index.ts", false, "ts-icon"},
		{"index.d.ts", false, "tsd-icon"},
		{"Dockerfile", false, "docker-icon"},
		{"package.json", false, "npm-icon"},
		{"tsconfig.json", false, "json-icon"},
		{"node_modules", true, "node-icon"},
		{".github", true, "github-icon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			icon := tables.MatchName(tt.name, tt.dir)
			require.NotNil(t, icon)
			assert.Equal(t, tt.want, icon.Class())
		})
	}

	workflow := tables.MatchPath("/repo/.github/workflows/ci.yml", false)
	require.NotNil(t, workflow)
	assert.Equal(t, "github-icon", workflow.Class())
}

func TestMatchName_FirstMatchWins(t *testing.T) {
	tables := newFixtureTables(t)

	// js-icon precedes test-js-icon and any-script-icon, whatever their priority
	icon := tables.MatchName("app.test.js", false)
	require.NotNil(t, icon)
	assert.Equal(t, "js-icon", icon.Class())

	icon = tables.MatchName("run.sh", false)
	require.NotNil(t, icon)
	assert.Equal(t, "sh-icon", icon.Class())
	assert.Less(t, icon.Priority(), tables.Files().ByName[5].Priority())
}

func TestMatchName_DirectoryFlag(t *testing.T) {
	tables := newFixtureTables(t)

	dir := tables.MatchName("src", true)
	require.NotNil(t, dir)
	assert.Equal(t, "src-icon", dir.Class())

	assert.Nil(t, tables.MatchName("src", false))
	assert.Nil(t, tables.MatchName("app.js", true))
}

func TestMatchScope_UsesDimensionOrder(t *testing.T) {
	tables := newFixtureTables(t)

	// any-script-icon is last by name but first in the scope index
	icon := tables.MatchScope("source.js")
	require.NotNil(t, icon)
	assert.Equal(t, "any-script-icon", icon.Class())

	icon = tables.MatchInterpreter("node")
	require.NotNil(t, icon)
	assert.Equal(t, "js-icon", icon.Class())
}

func TestMatchPath(t *testing.T) {
	tables := newFixtureTables(t)

	icon := tables.MatchPath("repo/.github/workflows/ci.yml", false)
	require.NotNil(t, icon)
	assert.Equal(t, "workflow-icon", icon.Class())

	dir := tables.MatchPath("/home/me/.cache", true)
	require.NotNil(t, dir)
	assert.Equal(t, "cache-dir-icon", dir.Class())

	// ByPath only holds path rules, so a plain basename rule never answers
	assert.Nil(t, tables.MatchPath("app.js", false))
}

func TestPathAndNameCachesAreSeparate(t *testing.T) {
	tables := newFixtureTables(t)

	require.NotNil(t, tables.MatchName("app.js", false))
	assert.Equal(t, 1, tables.cache.Len(SlotFileName))

	assert.Nil(t, tables.MatchPath("app.js", false), "a name hit must not answer a path query")
	assert.Equal(t, 0, tables.cache.Len(SlotFilePath))
}

func TestDimensionIsolation(t *testing.T) {
	tables := newFixtureTables(t)

	// lang-dir-icon sits in the directory language index; it must be ignored
	assert.Nil(t, tables.MatchLanguage("go"))

	icon := tables.MatchLanguage("JavaScript")
	require.NotNil(t, icon)
	assert.Equal(t, "js-icon", icon.Class())
}

func TestMatchSignature(t *testing.T) {
	tables := newFixtureTables(t)

	icon := tables.MatchSignature("#!/bin/sh -e")
	require.NotNil(t, icon)
	assert.Equal(t, "sh-icon", icon.Class())

	icon = tables.MatchSignature("#!/usr/bin/env zx")
	require.NotNil(t, icon)
	assert.Equal(t, "any-script-icon", icon.Class())

	assert.Nil(t, tables.MatchSignature("plain text"))
}

func TestCache_DeterministicHits(t *testing.T) {
	tables := newFixtureTables(t)

	first := tables.MatchName("app.js", false)
	require.NotNil(t, first)

	hitsBefore := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultHit))
	second := tables.MatchName("app.js", false)
	hitsAfter := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultHit))

	assert.Same(t, first, second)
	assert.Equal(t, hitsBefore+1, hitsAfter)
}

func TestCache_MissesAreNotCached(t *testing.T) {
	tables := newFixtureTables(t)

	missesBefore := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultMiss))
	assert.Nil(t, tables.MatchName("notes.txt", false))
	assert.Nil(t, tables.MatchName("notes.txt", false))
	missesAfter := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultMiss))

	assert.Equal(t, missesBefore+2, missesAfter, "every miss rescans")
	for slot, n := range tables.CacheStats() {
		assert.Zero(t, n, "slot %s", slot)
	}
}

func TestResetCache(t *testing.T) {
	tables := newFixtureTables(t)

	tables.MatchName("app.js", false)
	tables.MatchScope("source.shell")
	tables.MatchLanguage("shell")
	stats := tables.CacheStats()
	assert.Equal(t, 1, stats["file_name"])
	assert.Equal(t, 1, stats["scope"])
	assert.Equal(t, 1, stats["language"])

	tables.ResetCache()
	for slot, n := range tables.CacheStats() {
		assert.Zero(t, n, "slot %s", slot)
	}

	matchesBefore := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultMatch))
	tables.MatchName("app.js", false)
	matchesAfter := testutil.ToFloat64(lookupTotal.WithLabelValues(SlotFileName.String(), resultMatch))
	assert.Equal(t, matchesBefore+1, matchesAfter, "lookup after reset rescans")
}

func TestMatch_Dispatch(t *testing.T) {
	tables := newFixtureTables(t)

	tests := []struct {
		dim  Dimension
		key  string
		dir  bool
		want string
	}{
		{DimensionName, "app.js", false, "js-icon"},
		{DimensionName, "src", true, "src-icon"},
		{DimensionPath, "a/workflows/b.yml", false, "workflow-icon"},
		{DimensionInterpreter, "bash", false, "sh-icon"},
		{DimensionLanguage, "javascript", false, "js-icon"},
		{DimensionScope, "source.asm", false, "asm-icon"},
		{DimensionSignature, "#!/bin/sh", false, "sh-icon"},
	}

	for _, tt := range tests {
		t.Run(tt.dim.String()+"/"+tt.key, func(t *testing.T) {
			icon, err := tables.Match(tt.dim, tt.key, tt.dir)
			require.NoError(t, err)
			require.NotNil(t, icon)
			assert.Equal(t, tt.want, icon.Class())
		})
	}

	_, err := tables.Match(DimensionScope, "source.js", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = tables.Match(Dimension(42), "x", false)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestConcurrentLookups(t *testing.T) {
	tables := newFixtureTables(t)

	var wg sync.WaitGroup
	results := make([]string, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if icon := tables.MatchName("app.js", false); icon != nil {
				results[i] = icon.Class()
			}
			tables.MatchName("missing.txt", false)
		}(i)
	}
	wg.Wait()

	for _, class := range results {
		assert.Equal(t, "js-icon", class)
	}
	assert.Equal(t, 1, tables.cache.Len(SlotFileName))
}
