// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/fileicons/pkg/ui/view"
)

// Renderer provides plain text output suited to scripts and pipes
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *view.ClassificationList:
		return r.renderClassifications(v)
	case *view.Match:
		return r.renderFields(v.Rule)
	case *view.RuleList:
		for _, rule := range v.Rules {
			if _, err := fmt.Fprintf(r.output, "%d\t%s\t%s\n", rule.Index, rule.Class, rule.Match); err != nil {
				return err
			}
		}
		return nil
	case *view.SpecialIcons:
		if err := r.renderSpecial("binary", v.Binary); err != nil {
			return err
		}
		return r.renderSpecial("executable", v.Executable)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

// A single name prints just its class; several print one "name<TAB>class"
// line each. Unmatched names print nothing on their own and "-" in a list.
func (r *Renderer) renderClassifications(list *view.ClassificationList) error {
	for _, item := range list.Items {
		var err error
		switch {
		case list.Tokens:
			for _, class := range item.Classes {
				if _, err = fmt.Fprintln(r.output, class); err != nil {
					return err
				}
			}
		case len(list.Items) == 1:
			if item.Found {
				_, err = fmt.Fprintln(r.output, item.Class())
			}
		case item.Found:
			_, err = fmt.Fprintf(r.output, "%s\t%s\n", item.Name, item.Class())
		default:
			_, err = fmt.Fprintf(r.output, "%s\t-\n", item.Name)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderFields(rule view.Rule) error {
	for _, f := range rule.Fields() {
		if _, err := fmt.Fprintf(r.output, "%s: %s\n", f[0], f[1]); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderSpecial(label string, rule *view.Rule) error {
	class := "-"
	if rule != nil {
		class = rule.Class
	}
	_, err := fmt.Fprintf(r.output, "%s\t%s\n", label, class)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
