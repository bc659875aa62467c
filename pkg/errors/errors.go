package errors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/bulmakit/internal/humanize"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

var yamlLine = regexp.MustCompile(`line (\d+)`)

// NewYAMLError wraps a yaml decoding failure, recovering the line number from
// the decoder's message when it carries one.
func NewYAMLError(path string, err error) error {
	line := 0
	if err != nil {
		if m := yamlLine.FindStringSubmatch(err.Error()); len(m) == 2 {
			line, _ = strconv.Atoi(m[1])
		}
	}
	return NewParseError(path, line, err)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DuplicateOptionError is raised when an option name is declared twice in
// one component's chain of schemas and option sets.
type DuplicateOptionError struct {
	// Option is the accessor form of the name, with a "?" suffix for booleans.
	Option    string
	Component string
	Owner     string
}

// NewDuplicateOptionError constructs a DuplicateOptionError.
func NewDuplicateOptionError(option, component, owner string) error {
	return &DuplicateOptionError{Option: option, Component: component, Owner: owner}
}

func (e *DuplicateOptionError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cannot declare option %s on %s: already defined on %s", e.Option, e.Component, e.Owner)
}

// AbstractComponentError is raised when an abstract component declares options.
type AbstractComponentError struct {
	Option    string
	Component string
}

// NewAbstractComponentError constructs an AbstractComponentError.
func NewAbstractComponentError(option, component string) error {
	return &AbstractComponentError{Option: option, Component: component}
}

func (e *AbstractComponentError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("cannot declare option %s on abstract component %s", e.Option, e.Component)
}

// InvalidOptionsError carries every failure found while constructing a component.
type InvalidOptionsError struct {
	Component    string
	Failures     []string
	ValidOptions []string
}

// NewInvalidOptionsError constructs an InvalidOptionsError.
func NewInvalidOptionsError(component string, failures, validOptions []string) error {
	return &InvalidOptionsError{
		Component:    component,
		Failures:     append([]string(nil), failures...),
		ValidOptions: append([]string(nil), validOptions...),
	}
}

func (e *InvalidOptionsError) Error() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.Join(e.Failures, ", "))
	if len(e.ValidOptions) == 0 {
		fmt.Fprintf(&b, " - %s does not define any valid options", e.Component)
	} else {
		fmt.Fprintf(&b, " - valid options for %s are %s", e.Component, humanize.And(e.ValidOptions))
	}
	return b.String()
}

// UnknownValidatorError reports a named validator with no registered implementation.
type UnknownValidatorError struct {
	Component string
	Option    string
	Validator string
}

// NewUnknownValidatorError constructs an UnknownValidatorError.
func NewUnknownValidatorError(component, option, validator string) error {
	return &UnknownValidatorError{Component: component, Option: option, Validator: validator}
}

func (e *UnknownValidatorError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no such validator %q for option %s on %s", e.Validator, e.Option, e.Component)
}

// DefinitionError reports a malformed nested definition, such as a data field.
type DefinitionError struct {
	Kind     string
	Failures []string
}

// NewDefinitionError constructs a DefinitionError.
func NewDefinitionError(kind string, failures []string) error {
	return &DefinitionError{Kind: kind, Failures: append([]string(nil), failures...)}
}

func (e *DefinitionError) Error() string {
	if e == nil {
		return ""
	}
	return strings.Join(e.Failures, ", ")
}
