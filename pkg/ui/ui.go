// Package ui provides a unified interface for rendering output in different formats.
// It supports terminal (rich), text (plain), JSON and table output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/fileicons/pkg/ui/json"
	"github.com/arthur-debert/fileicons/pkg/ui/table"
	"github.com/arthur-debert/fileicons/pkg/ui/terminal"
	"github.com/arthur-debert/fileicons/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// It provides methods for rendering different types of data and messages.
type Renderer interface {
	// RenderResult renders a result from the view package
	RenderResult(result interface{}) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		// Buffers and pipes wrapped in other writers get plain text
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatTable:
		return table.New(output)
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
