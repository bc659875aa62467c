package options

// Accessor reads one declared option from an instance as a T.
type Accessor[T any] struct {
	opt *Option
}

// Declare declares an option on d and returns its typed accessor.
func Declare[T any](d Declarer, name string, opts ...DeclareOption) (Accessor[T], error) {
	opt, err := newOption(name, false, opts)
	if err != nil {
		return Accessor[T]{}, err
	}
	if err := d.declare(opt); err != nil {
		return Accessor[T]{}, err
	}
	return Accessor[T]{opt: opt}, nil
}

// MustDeclare is like Declare but panics on error. It is meant for
// package-level component declarations.
func MustDeclare[T any](d Declarer, name string, opts ...DeclareOption) Accessor[T] {
	a, err := Declare[T](d, name, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the accessor name.
func (a Accessor[T]) Name() string { return a.opt.AccessorName() }

// Option returns the underlying option.
func (a Accessor[T]) Option() *Option { return a.opt }

// Value returns the supplied value or the default, untyped.
func (a Accessor[T]) Value(in *Instance) any {
	return in.resolve(a.opt)
}

// Get returns the supplied value or the default. Values of another type read
// as the zero T.
func (a Accessor[T]) Get(in *Instance) T {
	v, _ := a.Value(in).(T)
	return v
}

// BoolAccessor is the predicate reader of a boolean option.
type BoolAccessor struct {
	opt *Option
}

// DeclareBool declares a boolean option. A trailing "?" on name is dropped.
func DeclareBool(d Declarer, name string, opts ...DeclareOption) (BoolAccessor, error) {
	opt, err := newOption(name, true, opts)
	if err != nil {
		return BoolAccessor{}, err
	}
	if err := d.declare(opt); err != nil {
		return BoolAccessor{}, err
	}
	return BoolAccessor{opt: opt}, nil
}

// MustDeclareBool is like DeclareBool but panics on error.
func MustDeclareBool(d Declarer, name string, opts ...DeclareOption) BoolAccessor {
	a, err := DeclareBool(d, name, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the accessor name, with its "?" suffix.
func (a BoolAccessor) Name() string { return a.opt.AccessorName() }

// Option returns the underlying option.
func (a BoolAccessor) Option() *Option { return a.opt }

// Is reports the truthiness of the supplied value or the default.
func (a BoolAccessor) Is(in *Instance) bool {
	return truthy(in.resolve(a.opt))
}

func truthy(v any) bool {
	switch b := v.(type) {
	case nil:
		return false
	case bool:
		return b
	}
	return !isNil(v)
}
