// Package widget connects the calculation core to the catalog. Each widget
// reads raw field text, runs it through calc.ToNumber, applies its formula,
// and formats the result. The TUI and the one-shot commands both evaluate
// calculators through this package and never touch calc directly.
package widget

import (
	"errors"
	"fmt"

	"github.com/treykane/cli-calc/internal/calc"
	"github.com/treykane/cli-calc/internal/catalog"
)

var ErrNoImplementation = errors.New("no widget implements calculator")

// Field describes one input of a widget.
type Field struct {
	Key         string
	Label       string
	Placeholder string
}

// Outcome is the result of one evaluation. Display is always set: either
// the formatted result or calc.Placeholder. Err wraps calc.ErrInvalidOperand
// and names the field or condition at fault.
type Outcome struct {
	Value     calc.Value
	Direction calc.Direction
	Display   string
	Err       error
}

// OK reports whether the evaluation produced a number.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Widget is one calculator.
type Widget interface {
	ID() string
	Fields() []Field
	// Evaluate computes the result for inputs, matched to Fields by
	// position. Missing inputs count as empty.
	Evaluate(inputs []string, opts calc.FormatOptions) Outcome
}

// Tool pairs a catalog entry with the widget that implements it.
type Tool struct {
	Entry  catalog.Entry
	Widget Widget
}

// Registry lists the tools of a catalog in catalog order.
type Registry struct {
	tools []Tool
	byID  map[string]int
}

var builtins = map[string]func() Widget{
	"percent-change":   func() Widget { return percentChange{} },
	"percent-of":       func() Widget { return percentOf{} },
	"percent-of-value": func() Widget { return percentOfValue{} },
	"arithmetic":       func() Widget { return arithmetic{} },
}

// NewRegistry binds every catalog entry to its built-in widget.
func NewRegistry(cat *catalog.Catalog) (*Registry, error) {
	entries := cat.Entries()
	r := &Registry{
		tools: make([]Tool, 0, len(entries)),
		byID:  make(map[string]int, len(entries)),
	}
	for _, entry := range entries {
		build, ok := builtins[entry.ID]
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrNoImplementation, entry.ID)
		}
		r.byID[entry.ID] = len(r.tools)
		r.tools = append(r.tools, Tool{Entry: entry, Widget: build()})
	}
	return r, nil
}

// Tools returns the tools in catalog order.
func (r *Registry) Tools() []Tool {
	return append([]Tool(nil), r.tools...)
}

// Lookup finds a tool by catalog ID.
func (r *Registry) Lookup(id string) (Tool, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Evaluate runs the tool with the given ID.
func (r *Registry) Evaluate(id string, inputs []string, opts calc.FormatOptions) (Outcome, error) {
	tool, ok := r.Lookup(id)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", catalog.ErrUnknownCalculator, id)
	}
	return tool.Widget.Evaluate(inputs, opts), nil
}

func input(inputs []string, i int) string {
	if i < len(inputs) {
		return inputs[i]
	}
	return ""
}

// operands parses every field, stopping at the first one that is not a
// number.
func operands(fields []Field, inputs []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		n, ok := calc.ToNumber(input(inputs, i)).Float()
		if !ok {
			return nil, invalid("%s is not a number", f.Label)
		}
		out[i] = n
	}
	return out, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{calc.ErrInvalidOperand}, args...)...)
}

func failed(err error) Outcome {
	return Outcome{Display: calc.Placeholder, Err: err}
}
