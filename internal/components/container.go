package components

import (
	"html/template"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Container wraps a single child component. Options the container does not
// declare are forwarded to the child, so a container accepts everything its
// child does.
type Container struct {
	in    *options.Instance
	opts  *containerOptions
	cat   *Catalog
	child Component
}

type containerOptions struct {
	child      options.Accessor[string]
	breakpoint options.Accessor[string]
	fluid      options.BoolAccessor
}

func registerContainer(c *Catalog) error {
	schema := c.schema("Container", options.AllowExtra())
	if err := schema.Include(c.classNames.set, c.data.set); err != nil {
		return err
	}

	opts := &containerOptions{
		child: options.MustDeclare[string](schema, "child",
			options.Required(),
			options.Validate(options.Use("component")),
		),
		breakpoint: options.MustDeclare[string](schema, "breakpoint",
			options.Validate(options.All(options.Inclusion("tablet", "desktop", "widescreen", "fullhd"))),
		),
		fluid: options.MustDeclareBool(schema, "fluid?"),
	}

	return c.Register(schema, func(in *options.Instance) (Component, error) {
		// Every key the container does not own goes to the child, which
		// rejects the ones it does not declare either.
		forwarded := in.Options()
		for _, own := range schema.Resolved().Names() {
			delete(forwarded, own)
		}

		child, err := c.Build(opts.child.Get(in), forwarded)
		if err != nil {
			return nil, err
		}
		return &Container{in: in, opts: opts, cat: c, child: child}, nil
	})
}

// Child returns the wrapped component.
func (ct *Container) Child() Component { return ct.child }

// Instance returns the validated options.
func (ct *Container) Instance() *options.Instance { return ct.in }

// Render returns the container markup around the child's.
func (ct *Container) Render() (template.HTML, error) {
	body, err := ct.child.Render()
	if err != nil {
		return "", err
	}

	o := ct.opts
	return render("container", struct {
		Class string
		Attrs template.HTMLAttr
		Body  template.HTML
	}{
		Class: ct.cat.classes(ct.in, "container",
			modifier("is-", o.breakpoint.Get(ct.in)),
			flag(o.fluid.Is(ct.in), "is-fluid"),
		),
		Attrs: ct.cat.attrs(ct.in),
		Body:  body,
	})
}
