package icons

import (
	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/icondb"
)

// Icon is a single matching rule plus its display attributes
type Icon struct {
	index     int
	class     string
	colors    [2]string
	match     *Pattern
	priority  float64
	matchPath bool

	interpreter *Pattern
	scope       *Pattern
	language    *Pattern
	signature   *Pattern
}

// New builds an Icon from its raw tuple, compiling every pattern it carries.
// index is the tuple's position in its table's name-ordered list.
func New(index int, raw icondb.RawIcon) (*Icon, error) {
	match, err := ParsePattern(raw.Match)
	if err != nil {
		return nil, withIcon(err, index, raw.Class, "match")
	}

	icon := &Icon{
		index:     index,
		class:     raw.Class,
		colors:    raw.Colors,
		match:     match,
		priority:  raw.Priority,
		matchPath: raw.MatchPath,
	}
	if icon.priority == 0 {
		icon.priority = icondb.DefaultPriority
	}

	optional := []struct {
		field   string
		literal string
		dst     **Pattern
	}{
		{"interpreter", raw.Interpreter, &icon.interpreter},
		{"scope", raw.Scope, &icon.scope},
		{"language", raw.Language, &icon.language},
		{"signature", raw.Signature, &icon.signature},
	}
	for _, o := range optional {
		if o.literal == "" {
			continue
		}
		p, err := ParsePattern(o.literal)
		if err != nil {
			return nil, withIcon(err, index, raw.Class, o.field)
		}
		*o.dst = p
	}

	return icon, nil
}

func withIcon(err error, index int, class, field string) error {
	if fiErr, ok := err.(*errors.FileIconsError); ok {
		return fiErr.
			WithDetail("index", index).
			WithDetail("class", class).
			WithDetail("field", field)
	}
	return err
}

// Index is the icon's position in its table's name-ordered sequence
func (i *Icon) Index() int { return i.index }

// Class is the bare icon CSS class, e.g. "js-icon"
func (i *Icon) Class() string { return i.class }

// Colors returns the light and dark color classes. Empty means none.
func (i *Icon) Colors() [2]string { return i.colors }

// Match is the basename or full-path pattern
func (i *Icon) Match() *Pattern { return i.match }

// Priority is carried from the database. Lookups never consult it;
// table order alone decides precedence.
func (i *Icon) Priority() float64 { return i.priority }

// MatchesFullPath reports whether the rule targets full paths. Routing is
// done by which table holds the rule, not by this flag.
func (i *Icon) MatchesFullPath() bool { return i.matchPath }

// Interpreter returns the hashbang interpreter pattern, or nil
func (i *Icon) Interpreter() *Pattern { return i.interpreter }

// Scope returns the grammar scope pattern, or nil
func (i *Icon) Scope() *Pattern { return i.scope }

// Language returns the language alias pattern, or nil
func (i *Icon) Language() *Pattern { return i.language }

// Signature returns the content signature pattern, or nil
func (i *Icon) Signature() *Pattern { return i.signature }

// ColorClass returns the color class for idx, or "" when there is none
func (i *Icon) ColorClass(idx ColorIndex) string {
	if idx < 0 || int(idx) >= len(i.colors) {
		return ""
	}
	return i.colors[idx]
}

// ClassName returns the CSS classes for the icon as one string: the icon
// class alone, or "<class> <color>" when idx selects a non-empty color.
func (i *Icon) ClassName(idx ColorIndex) string {
	if color := i.ColorClass(idx); color != "" {
		return i.class + " " + color
	}
	return i.class
}

// ClassList returns the same classes as ClassName as separate tokens
func (i *Icon) ClassList(idx ColorIndex) []string {
	classes := []string{i.class}
	if color := i.ColorClass(idx); color != "" {
		classes = append(classes, color)
	}
	return classes
}
