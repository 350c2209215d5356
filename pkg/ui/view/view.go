// Package view holds the result types commands hand to renderers
package view

import (
	"strconv"

	"github.com/arthur-debert/fileicons/pkg/icons"
)

// Classification is the outcome of classifying one name
type Classification struct {
	Name     string   `json:"name"`
	Classes  []string `json:"classes"`
	Found    bool     `json:"found"`
	Fallback bool     `json:"fallback,omitempty"`
}

// Class joins Classes the way they appear in a class attribute
func (c Classification) Class() string {
	switch len(c.Classes) {
	case 0:
		return ""
	case 1:
		return c.Classes[0]
	default:
		return c.Classes[0] + " " + c.Classes[1]
	}
}

// ClassificationList is the result of the class command
type ClassificationList struct {
	ColorMode string           `json:"colorMode"`
	Directory bool             `json:"directory"`
	Items     []Classification `json:"items"`
	// Tokens prints each class on its own line in text output
	Tokens bool `json:"-"`
}

// Rule describes one database rule
type Rule struct {
	Table       string  `json:"table"`
	Index       int     `json:"index"`
	Class       string  `json:"class"`
	LightColor  string  `json:"lightColor,omitempty"`
	DarkColor   string  `json:"darkColor,omitempty"`
	Priority    float64 `json:"priority"`
	MatchPath   bool    `json:"matchPath"`
	Match       string  `json:"match"`
	Interpreter string  `json:"interpreter,omitempty"`
	Scope       string  `json:"scope,omitempty"`
	Language    string  `json:"language,omitempty"`
	Signature   string  `json:"signature,omitempty"`
}

// NewRule describes icon, which belongs to table ("files" or "directories")
func NewRule(table string, icon *icons.Icon) Rule {
	colors := icon.Colors()
	return Rule{
		Table:       table,
		Index:       icon.Index(),
		Class:       icon.Class(),
		LightColor:  colors[icons.ColorLight],
		DarkColor:   colors[icons.ColorDark],
		Priority:    icon.Priority(),
		MatchPath:   icon.MatchesFullPath(),
		Match:       icon.Match().String(),
		Interpreter: icon.Interpreter().String(),
		Scope:       icon.Scope().String(),
		Language:    icon.Language().String(),
		Signature:   icon.Signature().String(),
	}
}

// Fields returns the rule as label/value pairs, skipping empty patterns
func (r Rule) Fields() [][2]string {
	fields := [][2]string{
		{"table", r.Table},
		{"index", strconv.Itoa(r.Index)},
		{"class", r.Class},
	}
	optional := [][2]string{
		{"light", r.LightColor},
		{"dark", r.DarkColor},
	}
	for _, f := range optional {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	fields = append(fields,
		[2]string{"priority", strconv.FormatFloat(r.Priority, 'g', -1, 64)},
		[2]string{"match path", strconv.FormatBool(r.MatchPath)},
		[2]string{"match", r.Match},
	)
	patterns := [][2]string{
		{"interpreter", r.Interpreter},
		{"scope", r.Scope},
		{"language", r.Language},
		{"signature", r.Signature},
	}
	for _, f := range patterns {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Match is the result of looking a key up along one dimension
type Match struct {
	Dimension string `json:"dimension"`
	Key       string `json:"key"`
	Rule      Rule   `json:"rule"`
}

// RuleList is every rule of one table, in precedence order
type RuleList struct {
	Table string `json:"table"`
	Rules []Rule `json:"rules"`
}

// SpecialIcons are the icons resolved when the tables were built
type SpecialIcons struct {
	Binary     *Rule `json:"binary"`
	Executable *Rule `json:"executable"`
}
