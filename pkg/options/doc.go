// Package options declares, validates and reads the keyword options of UI
// components.
//
// # Declaring
//
// A component type owns a Schema. Options are declared on it (or on a reusable
// OptionSet the schema includes) once, at package initialization:
//
//	var (
//		Button   = options.NewSchema("Button", options.Extends(Base))
//		color    = options.MustDeclare[string](Button, "color", options.Validate(options.Self()))
//		label    = options.MustDeclare[string](Button, "label", options.Required())
//		disabled = options.MustDeclareBool(Button, "disabled?")
//	)
//
// Names are unique across a schema's parents and included sets; redeclaring
// one fails with *errors.DuplicateOptionError. Abstract schemas refuse
// declarations with *errors.AbstractComponentError.
//
// # Validating
//
// Schema.New validates a raw option bag and returns an immutable Instance.
// All failures (unknown keys, blank required options, validator failures) are
// reported together in one *errors.InvalidOptionsError:
//
//	in, err := Button.New(map[string]any{"colour": "red"})
//	// colour is not a valid option, label can't be blank - valid options for Button are ...
//
// Validators form a small closed set: Self and Use resolve named checks from a
// Registry, TypeOf checks the dynamic type, Func wraps a CheckFunc, and All
// combines InstanceOf, Inclusion, Array, Presence, Matches, Satisfies and Use
// rules, running every one of them.
//
// # Reading
//
// Accessors returned by Declare read the supplied value or fall back to the
// default. Defaults of required or validated options are stored at
// construction; other defaults are computed on every read.
package options
