package options

import "maps"

// Instance is a constructed component's validated option bag. The bag is
// never modified after construction, so instances may be shared freely.
type Instance struct {
	schema *Schema
	bag    map[string]any
}

// New validates raw against the schema and returns the constructed instance.
// Construction either fully succeeds or returns an error; raw is not retained.
func (s *Schema) New(raw map[string]any) (*Instance, error) {
	bag, err := s.Validate(raw)
	if err != nil {
		return nil, err
	}
	return &Instance{schema: s, bag: bag}, nil
}

// MustNew is like New but panics on error.
func (s *Schema) MustNew(raw map[string]any) *Instance {
	in, err := s.New(raw)
	if err != nil {
		panic(err)
	}
	return in
}

// Schema returns the schema the instance was built from.
func (in *Instance) Schema() *Schema { return in.schema }

// Options returns a copy of the option bag, including any extra options.
func (in *Instance) Options() map[string]any {
	return maps.Clone(in.bag)
}

// Has reports whether a value was supplied or eagerly defaulted for name.
func (in *Instance) Has(name string) bool {
	_, ok := in.bag[name]
	return ok
}

// Raw returns the value stored for name without applying defaults.
func (in *Instance) Raw(name string) (any, bool) {
	v, ok := in.bag[name]
	return v, ok
}

// Value returns the stored value for name, or the declared default when none
// was stored. Undeclared, unsupplied names yield nil.
func (in *Instance) Value(name string) any {
	if v, ok := in.bag[name]; ok {
		return v
	}
	if opt, ok := in.schema.Resolved().Lookup(name); ok {
		return opt.Default(in)
	}
	return nil
}

// Slice returns the stored values for the given names only.
func (in *Instance) Slice(names ...string) map[string]any {
	out := make(map[string]any, len(names))
	for _, name := range names {
		if v, ok := in.bag[name]; ok {
			out[name] = v
		}
	}
	return out
}

// Forward returns the stored values that target declares, for handing options
// down to a child component.
func (in *Instance) Forward(target *Schema) map[string]any {
	return in.Slice(target.Resolved().Names()...)
}

func (in *Instance) resolve(opt *Option) any {
	if v, ok := in.bag[opt.name]; ok {
		return v
	}
	return opt.Default(in)
}
