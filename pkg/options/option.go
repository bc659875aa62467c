package options

import (
	"fmt"
	"strings"
)

// DefaultFunc computes a default in the context of the instance being built,
// so it may read other options.
type DefaultFunc func(in *Instance) any

// Option describes one declared option. It is immutable once declared.
type Option struct {
	name      string
	boolean   bool
	value     any
	thunk     DefaultFunc
	required  bool
	validator Validator
	owner     string
}

// DeclareOption configures an option at declaration time.
type DeclareOption func(*Option)

// Default sets the value used when the option is not supplied. A DefaultFunc
// (or a plain func(*Instance) any) is evaluated each time it is needed.
func Default(v any) DeclareOption {
	return func(o *Option) {
		switch fn := v.(type) {
		case DefaultFunc:
			o.thunk, o.value = fn, nil
		case func(*Instance) any:
			o.thunk, o.value = fn, nil
		default:
			o.thunk, o.value = nil, v
		}
	}
}

// Required marks the option as mandatory; blank values fail validation.
func Required() DeclareOption {
	return func(o *Option) { o.required = true }
}

// Validate attaches a validator to the option.
func Validate(v Validator) DeclareOption {
	return func(o *Option) { o.validator = v }
}

func newOption(name string, boolean bool, opts []DeclareOption) (*Option, error) {
	name = strings.TrimSpace(name)
	if boolean {
		name = strings.TrimSuffix(name, "?")
	}
	if name == "" {
		return nil, fmt.Errorf("option name cannot be empty")
	}

	opt := &Option{name: name, boolean: boolean}
	for _, apply := range opts {
		apply(opt)
	}
	if opt.boolean && opt.thunk == nil && opt.value == nil {
		opt.value = false
	}
	return opt, nil
}

// Name returns the normalized option name used as the key in option bags.
func (o *Option) Name() string { return o.name }

// AccessorName returns the reader name: the option name, with a "?" suffix
// for boolean options.
func (o *Option) AccessorName() string {
	if o.boolean {
		return o.name + "?"
	}
	return o.name
}

// IsBoolean reports whether the option is read through a predicate.
func (o *Option) IsBoolean() bool { return o.boolean }

// IsRequired reports whether the option must be present and not blank.
func (o *Option) IsRequired() bool { return o.required }

// HasValidator reports whether a validator is attached.
func (o *Option) HasValidator() bool { return o.validator != nil }

// Validator returns the attached validator, or nil.
func (o *Option) Validator() Validator { return o.validator }

// Owner returns the name of the schema or option set that declared the option.
func (o *Option) Owner() string { return o.owner }

// HasDefaultFunc reports whether the default is computed rather than literal.
func (o *Option) HasDefaultFunc() bool { return o.thunk != nil }

// Default evaluates the default for the given instance.
func (o *Option) Default(in *Instance) any {
	if o.thunk != nil {
		v := o.thunk(in)
		if o.boolean && v == nil {
			return false
		}
		return v
	}
	return o.value
}

// eager reports whether the default is materialized at construction time.
func (o *Option) eager() bool {
	return o.required || o.validator != nil
}
