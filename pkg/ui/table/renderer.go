// Package table renders results as aligned pterm tables
package table

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/fileicons/pkg/ui/view"
)

// Renderer provides tabular output
type Renderer struct {
	output io.Writer
}

// New creates a new table renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as a table
func (r *Renderer) RenderResult(result interface{}) error {
	switch v := result.(type) {
	case *view.ClassificationList:
		data := pterm.TableData{{"Name", "Class", "Color", "Fallback"}}
		for _, item := range v.Items {
			class, color := "-", ""
			if len(item.Classes) > 0 {
				class = item.Classes[0]
			}
			if len(item.Classes) > 1 {
				color = item.Classes[1]
			}
			data = append(data, []string{item.Name, class, color, strconv.FormatBool(item.Fallback)})
		}
		return r.render(data)
	case *view.Match:
		return r.renderFields(v.Rule)
	case *view.RuleList:
		data := pterm.TableData{{"#", "Class", "Match", "Light", "Dark", "Priority"}}
		for _, rule := range v.Rules {
			data = append(data, []string{
				strconv.Itoa(rule.Index),
				rule.Class,
				rule.Match,
				rule.LightColor,
				rule.DarkColor,
				strconv.FormatFloat(rule.Priority, 'g', -1, 64),
			})
		}
		return r.render(data)
	case *view.SpecialIcons:
		data := pterm.TableData{{"Kind", "Class", "Match"}}
		for _, row := range []struct {
			kind string
			rule *view.Rule
		}{{"binary", v.Binary}, {"executable", v.Executable}} {
			if row.rule == nil {
				data = append(data, []string{row.kind, "-", ""})
				continue
			}
			data = append(data, []string{row.kind, row.rule.Class, row.rule.Match})
		}
		return r.render(data)
	default:
		_, err := fmt.Fprintf(r.output, "%+v\n", result)
		return err
	}
}

func (r *Renderer) renderFields(rule view.Rule) error {
	data := pterm.TableData{{"Field", "Value"}}
	for _, f := range rule.Fields() {
		data = append(data, []string{f[0], f[1]})
	}
	return r.render(data)
}

func (r *Renderer) render(data pterm.TableData) error {
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.output, out)
	return err
}

// RenderError renders an error as a one-line message
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
