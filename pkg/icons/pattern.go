package icons

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/logging"
)

// Pattern is a compiled rule expression that remembers its literal form.
//
// Rule databases are written for JavaScript engines, so expressions are
// compiled with regexp2 in ECMAScript mode. Lookarounds are supported.
type Pattern struct {
	literal string
	re      *regexp2.Regexp
}

// ParsePattern compiles a JavaScript regex literal such as "/\.js$/i".
//
// Flags i, m and s are honored. g, u, y and d change nothing for a single
// test against a string and are ignored. Anything else is rejected.
func ParsePattern(literal string) (*Pattern, error) {
	if len(literal) < 2 || literal[0] != '/' {
		return nil, errors.Newf(errors.ErrPatternInvalid, "pattern %q is not a regex literal", literal)
	}
	end := strings.LastIndexByte(literal, '/')
	if end == 0 {
		return nil, errors.Newf(errors.ErrPatternInvalid, "pattern %q has no closing delimiter", literal)
	}

	source, flags := literal[1:end], literal[end+1:]
	var opts regexp2.RegexOptions = regexp2.ECMAScript
	for _, flag := range flags {
		switch flag {
		case 'i':
			opts |= regexp2.IgnoreCase
		case 'm':
			opts |= regexp2.Multiline
		case 's':
			source = dotAll(source)
		case 'g', 'u', 'y', 'd':
		default:
			return nil, errors.Newf(errors.ErrPatternInvalid, "pattern %q has unsupported flag %q", literal, flag)
		}
	}

	re, err := regexp2.Compile(source, opts)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrPatternInvalid, "cannot compile pattern %q", literal)
	}

	return &Pattern{literal: literal, re: re}, nil
}

// dotAll rewrites every unescaped "." outside a character class to
// [\s\S]. regexp2 does not accept Singleline together with ECMAScript.
func dotAll(source string) string {
	var b strings.Builder
	b.Grow(len(source))
	inClass := false
	for i := 0; i < len(source); i++ {
		c := source[i]
		switch {
		case c == '\\' && i+1 < len(source):
			b.WriteByte(c)
			i++
			b.WriteByte(source[i])
		case inClass:
			if c == ']' {
				inClass = false
			}
			b.WriteByte(c)
		case c == '[':
			inClass = true
			b.WriteByte(c)
		case c == '.':
			b.WriteString(`[\s\S]`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// MatchString reports whether s contains a match. Engine errors, such as a
// match timeout, count as no match.
func (p *Pattern) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	if err != nil {
		logger := logging.GetLogger("icons.pattern")
		logger.Debug().Err(err).Str("pattern", p.literal).Str("input", s).Msg("pattern evaluation failed")
		return false
	}
	return ok
}

// String returns the pattern in its original literal form
func (p *Pattern) String() string {
	if p == nil {
		return ""
	}
	return p.literal
}
