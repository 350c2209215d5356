// Package icons defines the Icon rule value and its presentation helpers.
//
// An Icon pairs the patterns that select it (basename or path, plus the
// optional interpreter, scope, language and signature patterns) with its
// display attributes: a CSS icon class and one color class per color mode.
// Icons are immutable once built and are shared by reference across every
// lookup table that orders them.
package icons
