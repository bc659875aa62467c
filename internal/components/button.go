package components

import (
	"html/template"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Button renders a Bulma button, or a link styled as one when href is set.
type Button struct {
	in   *options.Instance
	opts *buttonOptions
	cat  *Catalog
}

type buttonOptions struct {
	label    options.Accessor[string]
	color    options.Accessor[string]
	size     options.Accessor[string]
	kind     options.Accessor[string]
	href     options.Accessor[string]
	icon     options.Accessor[string]
	disabled options.BoolAccessor
	outlined options.BoolAccessor
	rounded  options.BoolAccessor
}

func registerButton(c *Catalog) error {
	schema := c.schema("Button")
	if err := schema.Include(c.classNames.set, c.data.set); err != nil {
		return err
	}

	opts := &buttonOptions{
		label: options.MustDeclare[string](schema, "label", options.Required()),
		color: options.MustDeclare[string](schema, "color", options.Validate(options.Self())),
		size:  options.MustDeclare[string](schema, "size", options.Validate(options.Self())),
		kind: options.MustDeclare[string](schema, "type",
			options.Default("button"),
			options.Validate(options.All(options.Inclusion("button", "submit", "reset"))),
		),
		href: options.MustDeclare[string](schema, "href", options.Validate(options.Satisfies("uri"))),
		icon: options.MustDeclare[string](schema, "icon", options.Validate(options.Matches(`^[a-z0-9-]+$`))),
		disabled: options.MustDeclareBool(schema, "disabled?"),
		outlined: options.MustDeclareBool(schema, "outlined?"),
		rounded:  options.MustDeclareBool(schema, "rounded?"),
	}

	return c.Register(schema, func(in *options.Instance) (Component, error) {
		return &Button{in: in, opts: opts, cat: c}, nil
	})
}

// Instance returns the validated options.
func (b *Button) Instance() *options.Instance { return b.in }

// Render returns the button markup.
func (b *Button) Render() (template.HTML, error) {
	o := b.opts
	data := struct {
		Class, Type, Href, Label string
		Attrs                    template.HTMLAttr
		Icon                     template.HTML
	}{
		Class: b.cat.classes(b.in, "button",
			modifier("is-", o.color.Get(b.in)),
			modifier("is-", o.size.Get(b.in)),
			flag(o.outlined.Is(b.in), "is-outlined"),
			flag(o.rounded.Is(b.in), "is-rounded"),
		),
		Type:  o.kind.Get(b.in),
		Href:  o.href.Get(b.in),
		Label: o.label.Get(b.in),
		Attrs: b.cat.attrs(b.in),
	}
	if o.disabled.Is(b.in) {
		data.Attrs += " disabled"
	}

	if name := o.icon.Get(b.in); name != "" {
		raw := map[string]any{"name": name}
		if size := o.size.Get(b.in); size != "" {
			raw["size"] = size
		}
		icon, err := b.cat.Build("Icon", raw)
		if err != nil {
			return "", err
		}
		if data.Icon, err = icon.Render(); err != nil {
			return "", err
		}
	}

	if data.Href != "" {
		return render("link", data)
	}
	return render("button", data)
}
