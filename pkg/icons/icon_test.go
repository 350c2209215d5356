package icons

import (
	"testing"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icondb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustIcon(t *testing.T, raw icondb.RawIcon) *Icon {
	t.Helper()
	icon, err := New(0, raw)
	require.NoError(t, err)
	return icon
}

func TestNew(t *testing.T) {
	icon, err := New(7, icondb.RawIcon{
		Class:       "python-icon",
		Colors:      [2]string{"dark-blue", "dark-blue"},
		Match:       `/\.py$/i`,
		Priority:    3,
		MatchPath:   true,
		Interpreter: `/^python[\d.]*$/`,
		Scope:       `/^source\.python$/`,
		Language:    `/^python$/i`,
		Signature:   `/^#!.*\bpython/`,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, icon.Index())
	assert.Equal(t, "python-icon", icon.Class())
	assert.Equal(t, [2]string{"dark-blue", "dark-blue"}, icon.Colors())
	assert.Equal(t, 3.0, icon.Priority())
	assert.True(t, icon.MatchesFullPath())
	assert.True(t, icon.Match().MatchString("setup.PY"))
	assert.True(t, icon.Interpreter().MatchString("python3.12"))
	assert.True(t, icon.Scope().MatchString("source.python"))
	assert.True(t, icon.Language().MatchString("Python"))
	assert.True(t, icon.Signature().MatchString("#!/usr/bin/env python3"))
}

func TestNew_OptionalPatternsAbsent(t *testing.T) {
	icon := mustIcon(t, icondb.RawIcon{Class: "image-icon", Match: `/\.png$/`})

	assert.Nil(t, icon.Interpreter())
	assert.Nil(t, icon.Scope())
	assert.Nil(t, icon.Language())
	assert.Nil(t, icon.Signature())
	assert.Equal(t, float64(icondb.DefaultPriority), icon.Priority())
	assert.False(t, icon.MatchesFullPath())
}

func TestNew_InvalidPattern(t *testing.T) {
	_, err := New(4, icondb.RawIcon{Class: "broken-icon", Match: `/\.x$/`, Scope: `/(unclosed/`})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))

	details := errors.GetErrorDetails(err)
	assert.Equal(t, 4, details["index"])
	assert.Equal(t, "broken-icon", details["class"])
	assert.Equal(t, "scope", details["field"])
}

func TestIcon_ClassName(t *testing.T) {
	js := mustIcon(t, icondb.RawIcon{Class: "js-icon", Colors: [2]string{"js-light", "js-dark"}, Match: `/\.js$/`})
	darkOnly := mustIcon(t, icondb.RawIcon{Class: "tmp-icon", Colors: [2]string{"", "dark-purple"}, Match: `/tmp/`})
	plain := mustIcon(t, icondb.RawIcon{Class: "icon-file-zip", Match: `/\.zip$/`})

	tests := []struct {
		name     string
		icon     *Icon
		idx      ColorIndex
		wantStr  string
		wantList []string
	}{
		{"light", js, ColorLight, "js-icon js-light", []string{"js-icon", "js-light"}},
		{"dark", js, ColorDark, "js-icon js-dark", []string{"js-icon", "js-dark"}},
		{"none", js, ColorNone, "js-icon", []string{"js-icon"}},
		{"mono index", js, ColorModeMono.Index(), "js-icon", []string{"js-icon"}},
		{"out of range", js, ColorIndex(5), "js-icon", []string{"js-icon"}},
		{"empty light slot", darkOnly, ColorLight, "tmp-icon", []string{"tmp-icon"}},
		{"filled dark slot", darkOnly, ColorDark, "tmp-icon dark-purple", []string{"tmp-icon", "dark-purple"}},
		{"no colors", plain, ColorDark, "icon-file-zip", []string{"icon-file-zip"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStr, tt.icon.ClassName(tt.idx))
			assert.Equal(t, tt.wantList, tt.icon.ClassList(tt.idx))
		})
	}
}
