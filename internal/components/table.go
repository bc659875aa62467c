package components

import (
	"fmt"
	"html/template"
	"reflect"

	"github.com/alexisbeaulieu97/bulmakit/pkg/datafield"
	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Table renders rows through a list of data field definitions.
type Table struct {
	in     *options.Instance
	opts   *tableOptions
	cat    *Catalog
	fields []datafield.Definition
}

type tableOptions struct {
	fields    options.Accessor[any]
	rows      options.Accessor[any]
	striped   options.BoolAccessor
	hoverable options.BoolAccessor
	bordered  options.BoolAccessor
	fullwidth options.BoolAccessor
	narrow    options.BoolAccessor
}

type cell struct {
	Class, Text string
}

func registerTable(c *Catalog) error {
	schema := c.schema("Table")
	if err := schema.Include(c.classNames.set, c.data.set); err != nil {
		return err
	}

	opts := &tableOptions{
		fields: options.MustDeclare[any](schema, "fields",
			options.Required(),
			options.Validate(options.Array(options.Func(checkField))),
		),
		rows:      options.MustDeclare[any](schema, "rows", options.Validate(options.Array(options.Presence()))),
		striped:   options.MustDeclareBool(schema, "striped?"),
		hoverable: options.MustDeclareBool(schema, "hoverable?"),
		bordered:  options.MustDeclareBool(schema, "bordered?"),
		fullwidth: options.MustDeclareBool(schema, "fullwidth?"),
		narrow:    options.MustDeclareBool(schema, "narrow?"),
	}

	return c.Register(schema, func(in *options.Instance) (Component, error) {
		var fields []datafield.Definition
		for _, item := range items(opts.fields.Get(in)) {
			def, err := datafield.From(item)
			if err != nil {
				return nil, err
			}
			fields = append(fields, def)
		}
		return &Table{in: in, opts: opts, cat: c, fields: fields}, nil
	})
}

func checkField(value any, name string) error {
	if _, err := datafield.From(value); err != nil {
		return fmt.Errorf("%s %w", name, err)
	}
	return nil
}

// Fields returns the parsed column definitions.
func (t *Table) Fields() []datafield.Definition { return t.fields }

// Instance returns the validated options.
func (t *Table) Instance() *options.Instance { return t.in }

// Render returns the table markup.
func (t *Table) Render() (template.HTML, error) {
	o := t.opts

	headings := make([]cell, 0, len(t.fields))
	for _, field := range t.fields {
		headings = append(headings, cell{Class: field.AlignClass(), Text: field.Heading()})
	}

	var rows [][]cell
	for _, row := range items(o.rows.Get(t.in)) {
		cells := make([]cell, 0, len(t.fields))
		for _, field := range t.fields {
			cells = append(cells, cell{Class: field.AlignClass(), Text: field.Format(row)})
		}
		rows = append(rows, cells)
	}

	return render("table", struct {
		Class    string
		Attrs    template.HTMLAttr
		Headings []cell
		Rows     [][]cell
	}{
		Class: t.cat.classes(t.in, "table",
			flag(o.striped.Is(t.in), "is-striped"),
			flag(o.hoverable.Is(t.in), "is-hoverable"),
			flag(o.bordered.Is(t.in), "is-bordered"),
			flag(o.fullwidth.Is(t.in), "is-fullwidth"),
			flag(o.narrow.Is(t.in), "is-narrow"),
		),
		Attrs:    t.cat.attrs(t.in),
		Headings: headings,
		Rows:     rows,
	})
}

// items flattens any slice or array into its elements.
func items(v any) []any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
