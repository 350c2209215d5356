// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/fileicons/pkg/errors"
	"github.com/arthur-debert/fileicons/pkg/ui/styles"
	"github.com/arthur-debert/fileicons/pkg/ui/view"
)

// Renderer provides styled output for interactive terminals
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *view.ClassificationList:
		return r.renderClassifications(v)
	case *view.Match:
		header := fmt.Sprintf("%s %q", v.Dimension, v.Key)
		return r.write(styles.GetStyle("Header").Render(header), r.fields(v.Rule))
	case *view.RuleList:
		return r.renderRules(v)
	case *view.SpecialIcons:
		return r.write(
			r.special("binary", v.Binary),
			r.special("executable", v.Executable),
		)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderClassifications(list *view.ClassificationList) error {
	name := styles.GetStyle("Name")
	lines := make([]string, 0, len(list.Items))
	for _, item := range list.Items {
		lines = append(lines, name.Render(item.Name)+"  "+r.classes(item))
	}
	return r.write(lines...)
}

func (r *Renderer) classes(item view.Classification) string {
	if !item.Found {
		return styles.GetStyle("Missing").Render("no icon")
	}

	iconStyle := styles.GetStyle("IconClass")
	if item.Fallback {
		iconStyle = styles.GetStyle("Fallback")
	}
	parts := []string{iconStyle.Render(item.Classes[0])}
	for _, color := range item.Classes[1:] {
		parts = append(parts, styles.GetStyle("ColorClass").Render(color))
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) renderRules(list *view.RuleList) error {
	lines := []string{styles.GetStyle("Header").Render(fmt.Sprintf("%s (%d rules)", list.Table, len(list.Rules)))}
	for _, rule := range list.Rules {
		lines = append(lines, fmt.Sprintf("%4d  %s  %s",
			rule.Index,
			styles.GetStyle("IconClass").Render(rule.Class),
			styles.GetStyle("Pattern").Render(rule.Match)))
	}
	return r.write(lines...)
}

func (r *Renderer) fields(rule view.Rule) string {
	label := styles.GetStyle("Label")
	lines := make([]string, 0, 12)
	for _, f := range rule.Fields() {
		lines = append(lines, label.Render(f[0])+f[1])
	}
	return styles.GetStyle("Indent").Render(strings.Join(lines, "\n"))
}

func (r *Renderer) special(kind string, rule *view.Rule) string {
	label := styles.GetStyle("Label").Render(kind)
	if rule == nil {
		return label + styles.GetStyle("Missing").Render("none")
	}
	return label + styles.GetStyle("IconClass").Render(rule.Class)
}

func (r *Renderer) write(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.output, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	prefix := "Error"
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		prefix = fmt.Sprintf("Error [%s]", code)
	}
	return r.write(styles.GetStyle("Error").Render(prefix+":") + " " + err.Error())
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(styles.GetStyle("Info").Render(msg))
}
