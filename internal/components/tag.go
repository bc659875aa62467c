package components

import (
	"html/template"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Tag renders a Bulma tag.
type Tag struct {
	in   *options.Instance
	opts *tagOptions
	cat  *Catalog
}

type tagOptions struct {
	label     options.Accessor[string]
	color     options.Accessor[string]
	size      options.Accessor[string]
	light     options.BoolAccessor
	rounded   options.BoolAccessor
	deletable options.BoolAccessor
}

func registerTag(c *Catalog) error {
	schema := c.schema("Tag")
	if err := schema.Include(c.classNames.set, c.data.set); err != nil {
		return err
	}

	opts := &tagOptions{
		label:     options.MustDeclare[string](schema, "label", options.Required()),
		color:     options.MustDeclare[string](schema, "color", options.Validate(options.Self())),
		size:      options.MustDeclare[string](schema, "size", options.Validate(options.Self())),
		light:     options.MustDeclareBool(schema, "light?"),
		rounded:   options.MustDeclareBool(schema, "rounded?"),
		deletable: options.MustDeclareBool(schema, "deletable?"),
	}

	return c.Register(schema, func(in *options.Instance) (Component, error) {
		return &Tag{in: in, opts: opts, cat: c}, nil
	})
}

// Instance returns the validated options.
func (t *Tag) Instance() *options.Instance { return t.in }

// Render returns the tag markup.
func (t *Tag) Render() (template.HTML, error) {
	o := t.opts
	return render("tag", struct {
		Class, Label string
		Attrs        template.HTMLAttr
		Delete       bool
	}{
		Class: t.cat.classes(t.in, "tag",
			modifier("is-", o.color.Get(t.in)),
			modifier("is-", o.size.Get(t.in)),
			flag(o.light.Is(t.in), "is-light"),
			flag(o.rounded.Is(t.in), "is-rounded"),
		),
		Label:  o.label.Get(t.in),
		Attrs:  t.cat.attrs(t.in),
		Delete: o.deletable.Is(t.in),
	})
}
