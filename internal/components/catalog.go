package components

import (
	"fmt"
	"html/template"
	"slices"
	"sort"

	"github.com/alexisbeaulieu97/bulmakit/internal/config"
	"github.com/alexisbeaulieu97/bulmakit/internal/logger"
	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Component is a constructed, validated component.
type Component interface {
	Instance() *options.Instance
	Render() (template.HTML, error)
}

// Constructor turns a validated instance into a Component.
type Constructor func(in *options.Instance) (Component, error)

type entry struct {
	schema *options.Schema
	build  Constructor
}

// Catalog maps component names to their schemas and constructors.
type Catalog struct {
	src      config.Source
	log      *logger.Logger
	registry *options.Registry
	base     *options.Schema
	entries  map[string]entry

	classNames *classNames
	data       *dataAttributes
}

// New builds the stock catalog. Named validators read src on every check, so
// a reloading config.Holder takes effect without rebuilding the catalog.
func New(src config.Source, log *logger.Logger) (*Catalog, error) {
	if src == nil {
		src = config.Static{}
	}

	registry := options.NewRegistry()
	if err := config.RegisterValidators(registry, src); err != nil {
		return nil, err
	}

	c := &Catalog{
		src:      src,
		log:      log,
		registry: registry,
		base:     options.NewSchema("Component", options.Abstract(), options.WithValidators(registry)),
		entries:  make(map[string]entry),
	}

	if err := registry.Register("component", c.checkComponent); err != nil {
		return nil, err
	}

	c.classNames = newClassNames()
	c.data = newDataAttributes()

	for _, register := range []func(*Catalog) error{
		registerButton,
		registerIcon,
		registerTag,
		registerTable,
		registerContainer,
	} {
		if err := register(c); err != nil {
			return nil, err
		}
	}

	if err := c.Verify(); err != nil {
		return nil, fmt.Errorf("verify catalog: %w", err)
	}
	return c, nil
}

// Base returns the abstract root every catalog component extends.
func (c *Catalog) Base() *options.Schema { return c.base }

// Validators returns the named validator registry shared by the catalog's schemas.
func (c *Catalog) Validators() *options.Registry { return c.registry }

// Register adds a component. The schema name is the component name.
func (c *Catalog) Register(schema *options.Schema, build Constructor) error {
	if schema == nil || build == nil {
		return fmt.Errorf("register component: schema and constructor are required")
	}
	if schema.IsAbstract() {
		return fmt.Errorf("register component %s: abstract components cannot be built", schema.Name())
	}
	if _, exists := c.entries[schema.Name()]; exists {
		return fmt.Errorf("register component %s: already registered", schema.Name())
	}

	c.entries[schema.Name()] = entry{schema: schema, build: build}
	c.log.WithFields(map[string]any{
		"component": schema.Name(),
		"options":   schema.Resolved().Len(),
	}).Debug("registered component")
	return nil
}

// Names returns the registered component names, sorted.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Schema returns the schema registered under name.
func (c *Catalog) Schema(name string) (*options.Schema, bool) {
	e, ok := c.entries[name]
	return e.schema, ok
}

// Build validates raw against the named component and constructs it.
func (c *Catalog) Build(name string, raw map[string]any) (Component, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}

	log := c.log.WithFields(map[string]any{"component": name})
	in, err := e.schema.New(raw)
	if err != nil {
		log.Debug("options rejected")
		return nil, err
	}

	component, err := e.build(in)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", name, err)
	}
	log.Debug("component built")
	return component, nil
}

// Verify checks every registered schema for unresolvable named validators.
func (c *Catalog) Verify() error {
	for _, name := range c.Names() {
		if err := c.entries[name].schema.Verify(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Catalog) checkComponent(value any, name string) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("%s is not a component name", name)
	}
	if _, ok := c.entries[s]; !ok {
		return fmt.Errorf("%s is not a known component", name)
	}
	return nil
}

// schema returns a new component schema extending the catalog root.
func (c *Catalog) schema(name string, opts ...options.SchemaOption) *options.Schema {
	return options.NewSchema(name, slices.Concat([]options.SchemaOption{options.Extends(c.base)}, opts)...)
}
