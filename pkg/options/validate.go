package options

import (
	"errors"
	"sort"

	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

// Validate checks raw against the schema and returns the option bag to store:
// the raw values plus the defaults of required and validated options that
// were not supplied.
//
// Every failure is collected before returning a single *InvalidOptionsError.
// A named validator missing from the registry is a configuration problem and
// is returned as *UnknownValidatorError instead.
func (s *Schema) Validate(raw map[string]any) (map[string]any, error) {
	resolved := s.Resolved()

	bag := make(map[string]any, len(raw)+resolved.Len())
	for k, v := range raw {
		bag[k] = v
	}

	// Defaults of other options stay lazy; thunks see the bag as built so far.
	probe := &Instance{schema: s, bag: bag}
	for _, opt := range resolved.order {
		if !opt.eager() {
			continue
		}
		if _, ok := bag[opt.name]; !ok {
			bag[opt.name] = opt.Default(probe)
		}
	}

	failures := &Aggregator{}

	if !s.ExtraOptionsAllowed() {
		extra := make([]string, 0)
		for key := range raw {
			if _, ok := resolved.Lookup(key); !ok {
				extra = append(extra, key)
			}
		}
		sort.Strings(extra)
		for _, key := range extra {
			failures.Addf("%s is not a valid option", key)
		}
	}

	ctx := &checkContext{schema: s, registry: s.Validators(), failures: failures}
	for _, opt := range resolved.order {
		value, present := bag[opt.name]
		if opt.required && (!present || IsBlank(value)) {
			failures.Addf("%s can't be blank", opt.name)
			continue
		}
		if opt.validator == nil || isNil(value) {
			continue
		}

		ctx.option = opt.name
		opt.validator.check(ctx, opt.name, value)
		if ctx.err != nil {
			return nil, ctx.err
		}
	}

	if !failures.Empty() {
		return nil, bulmaerrors.NewInvalidOptionsError(s.name, failures.Messages(), resolved.Names())
	}
	return bag, nil
}

// Verify reports every named validator the schema's options refer to that is
// missing from its registry. Call it at startup to catch missing glue code.
func (s *Schema) Verify() error {
	registry := s.Validators()

	var errs []error
	for _, opt := range s.Resolved().order {
		if opt.validator == nil {
			continue
		}
		for _, token := range opt.validator.tokens(opt.name) {
			if _, ok := registry.Lookup(token); !ok {
				errs = append(errs, bulmaerrors.NewUnknownValidatorError(s.name, opt.name, token))
			}
		}
		for _, tag := range satisfiesTags(opt.validator) {
			if !knownTag(tag) {
				errs = append(errs, bulmaerrors.NewUnknownValidatorError(s.name, opt.name, tag))
			}
		}
	}
	return errors.Join(errs...)
}
