package components

import (
	"html/template"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Icon renders a Font Awesome glyph in a Bulma icon container.
type Icon struct {
	in   *options.Instance
	opts *iconOptions
	cat  *Catalog
}

type iconOptions struct {
	name   options.Accessor[string]
	family options.Accessor[string]
	size   options.Accessor[string]
}

func registerIcon(c *Catalog) error {
	schema := c.schema("Icon")
	if err := schema.Include(c.classNames.set, c.data.set); err != nil {
		return err
	}

	opts := &iconOptions{
		name: options.MustDeclare[string](schema, "name",
			options.Required(),
			options.Validate(options.Matches(`^[a-z0-9-]+$`)),
		),
		family: options.MustDeclare[string](schema, "family",
			options.Default(options.DefaultFunc(func(*options.Instance) any {
				return c.src.Get().DefaultIconFamily
			})),
			options.Validate(options.Use("icon_family")),
		),
		size: options.MustDeclare[string](schema, "size", options.Validate(options.Self())),
	}

	return c.Register(schema, func(in *options.Instance) (Component, error) {
		return &Icon{in: in, opts: opts, cat: c}, nil
	})
}

// Instance returns the validated options.
func (i *Icon) Instance() *options.Instance { return i.in }

// Render returns the icon markup.
func (i *Icon) Render() (template.HTML, error) {
	o := i.opts
	return render("icon", struct {
		Class, Glyph string
		Attrs        template.HTMLAttr
	}{
		Class: i.cat.classes(i.in, "icon", modifier("is-", o.size.Get(i.in))),
		Glyph: o.family.Get(i.in) + " fa-" + o.name.Get(i.in),
		Attrs: i.cat.attrs(i.in),
	})
}
