package icontables

import (
	"fmt"
	"strings"
)

// Dimension is an axis a name can be classified along
type Dimension int

const (
	DimensionName Dimension = iota
	DimensionPath
	DimensionInterpreter
	DimensionLanguage
	DimensionScope
	DimensionSignature
)

var dimensionNames = map[Dimension]string{
	DimensionName:        "name",
	DimensionPath:        "path",
	DimensionInterpreter: "interpreter",
	DimensionLanguage:    "language",
	DimensionScope:       "scope",
	DimensionSignature:   "signature",
}

// String returns the dimension's lowercase name
func (d Dimension) String() string {
	if name, ok := dimensionNames[d]; ok {
		return name
	}
	return "unknown"
}

// SupportsDirectories reports whether directory rules exist for d.
// Directories have no language, scope, interpreter or signature.
func (d Dimension) SupportsDirectories() bool {
	return d == DimensionName || d == DimensionPath
}

// Dimensions lists every dimension in declaration order
func Dimensions() []Dimension {
	return []Dimension{
		DimensionName,
		DimensionPath,
		DimensionInterpreter,
		DimensionLanguage,
		DimensionScope,
		DimensionSignature,
	}
}

// ParseDimension maps a name such as "scope" to its Dimension
func ParseDimension(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range dimensionNames {
		if name == s {
			return d, nil
		}
	}
	return DimensionName, fmt.Errorf("unknown dimension: %s", s)
}
