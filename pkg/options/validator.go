package options

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/bulmakit/internal/humanize"
	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

// CheckFunc is the single signature shared by custom and named validators. It
// receives the value and the name to report it under, and returns a failure
// whose message is used verbatim.
type CheckFunc func(value any, name string) error

// Validator is one of the validator kinds built by this package: Self, Use,
// TypeOf, Func, All and the rules All accepts.
type Validator interface {
	fmt.Stringer
	check(c *checkContext, name string, value any)
	tokens(option string) []string
}

type checkContext struct {
	schema   *Schema
	option   string
	registry *Registry
	failures *Aggregator
	err      error
}

func (c *checkContext) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *checkContext) call(token, name string, value any) {
	fn, ok := c.registry.Lookup(token)
	if !ok {
		c.fail(bulmaerrors.NewUnknownValidatorError(c.schema.name, c.option, token))
		return
	}
	if err := fn(value, name); err != nil {
		c.failures.Add(err.Error())
	}
}

// Self validates with the registered validator named after the option.
func Self() Validator { return selfValidator{} }

type selfValidator struct{}

func (selfValidator) String() string { return "self" }

func (selfValidator) check(c *checkContext, name string, value any) {
	c.call(c.option, name, value)
}

func (selfValidator) tokens(option string) []string { return []string{option} }

// Use validates with the registered validator called token.
func Use(token string) Validator { return namedValidator{token: token} }

type namedValidator struct {
	token string
}

func (v namedValidator) String() string { return "use:" + v.token }

func (v namedValidator) check(c *checkContext, name string, value any) {
	c.call(v.token, name, value)
}

func (v namedValidator) tokens(string) []string { return []string{v.token} }

// Func validates with fn.
func Func(fn CheckFunc) Validator { return funcValidator{fn: fn} }

type funcValidator struct {
	fn CheckFunc
}

func (funcValidator) String() string { return "func" }

func (v funcValidator) check(c *checkContext, name string, value any) {
	if err := v.fn(value, name); err != nil {
		c.failures.Add(err.Error())
	}
}

func (funcValidator) tokens(string) []string { return nil }

// TypeOf requires the value to be a T, reporting "<name> is not a <T>".
func TypeOf[T any]() Validator {
	return typeValidator{
		typeName: typeName(reflect.TypeFor[T]()),
		match:    func(v any) bool { _, ok := v.(T); return ok },
		format:   "%s is not a %s",
		label:    "type",
	}
}

// InstanceOf requires the value to be a T, reporting "<name> is not an instance of <T>".
func InstanceOf[T any]() Validator {
	return typeValidator{
		typeName: typeName(reflect.TypeFor[T]()),
		match:    func(v any) bool { _, ok := v.(T); return ok },
		format:   "%s is not an instance of %s",
		label:    "instance_of",
	}
}

type typeValidator struct {
	typeName string
	match    func(any) bool
	format   string
	label    string
}

func (v typeValidator) String() string { return v.label + ":" + v.typeName }

func (v typeValidator) check(c *checkContext, name string, value any) {
	if !v.match(value) {
		c.failures.Addf(v.format, name, v.typeName)
	}
}

func (typeValidator) tokens(string) []string { return nil }

func typeName(t reflect.Type) string {
	return strings.ReplaceAll(t.String(), "interface {}", "any")
}

// All runs every rule and reports every failure; it never stops at the first.
func All(rules ...Validator) Validator { return allValidator{rules: rules} }

type allValidator struct {
	rules []Validator
}

func (v allValidator) String() string {
	parts := make([]string, 0, len(v.rules))
	for _, rule := range v.rules {
		parts = append(parts, rule.String())
	}
	return "all(" + strings.Join(parts, ", ") + ")"
}

func (v allValidator) check(c *checkContext, name string, value any) {
	for _, rule := range v.rules {
		rule.check(c, name, value)
	}
}

func (v allValidator) tokens(option string) []string {
	var out []string
	for _, rule := range v.rules {
		out = append(out, rule.tokens(option)...)
	}
	return out
}

// Inclusion requires the value to equal one of values.
func Inclusion(values ...any) Validator { return inclusionValidator{values: values} }

type inclusionValidator struct {
	values []any
}

func (v inclusionValidator) String() string {
	return "inclusion:" + strings.Join(v.words(), "|")
}

func (v inclusionValidator) words() []string {
	words := make([]string, 0, len(v.values))
	for _, allowed := range v.values {
		words = append(words, fmt.Sprint(allowed))
	}
	return words
}

func (v inclusionValidator) check(c *checkContext, name string, value any) {
	for _, allowed := range v.values {
		if reflect.DeepEqual(allowed, value) {
			return
		}
	}
	c.failures.Addf("%s is not one of %s", name, humanize.Or(v.words()))
}

func (inclusionValidator) tokens(string) []string { return nil }

// Array requires a slice or array and validates every item with item. Items
// are reported as "<name> item <index>", counting from 0.
func Array(item Validator) Validator { return arrayValidator{item: item} }

type arrayValidator struct {
	item Validator
}

func (v arrayValidator) String() string { return "array(" + v.item.String() + ")" }

func (v arrayValidator) check(c *checkContext, name string, value any) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		c.failures.Addf("%s is not a list", name)
		return
	}
	for i := 0; i < rv.Len(); i++ {
		v.item.check(c, fmt.Sprintf("%s item %d", name, i), rv.Index(i).Interface())
	}
}

func (v arrayValidator) tokens(option string) []string { return v.item.tokens(option) }

// Presence requires a value that is not blank.
func Presence() Validator { return presenceValidator{} }

type presenceValidator struct{}

func (presenceValidator) String() string { return "presence" }

func (presenceValidator) check(c *checkContext, name string, value any) {
	if IsBlank(value) {
		c.failures.Addf("%s can't be blank", name)
	}
}

func (presenceValidator) tokens(string) []string { return nil }

// Matches requires a string matching pattern. It panics if pattern does not compile.
func Matches(pattern string) Validator {
	return matchesValidator{re: regexp.MustCompile(pattern)}
}

type matchesValidator struct {
	re *regexp.Regexp
}

func (v matchesValidator) String() string { return "matches:" + v.re.String() }

func (v matchesValidator) check(c *checkContext, name string, value any) {
	s, ok := value.(string)
	if !ok {
		c.failures.Addf("%s is not a string", name)
		return
	}
	if !v.re.MatchString(s) {
		c.failures.Addf("%s does not match %s", name, v.re.String())
	}
}

func (matchesValidator) tokens(string) []string { return nil }

var (
	tagValidatorOnce sync.Once
	tagValidatorInst *validator.Validate
)

func tagValidator() *validator.Validate {
	tagValidatorOnce.Do(func() {
		tagValidatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return tagValidatorInst
}

// RegisterTag adds a custom tag usable by Satisfies.
func RegisterTag(tag string, fn validator.Func) error {
	return tagValidator().RegisterValidation(tag, fn)
}

// Satisfies checks the value against a go-playground/validator tag such as
// "email", "hexcolor" or "min=1,max=6".
func Satisfies(tag string) Validator { return satisfiesValidator{tag: tag} }

type satisfiesValidator struct {
	tag string
}

func (v satisfiesValidator) String() string { return "satisfies:" + v.tag }

func (v satisfiesValidator) check(c *checkContext, name string, value any) {
	defer func() {
		r := recover()
		switch {
		case r == nil:
		case isUndefinedTag(r):
			c.fail(bulmaerrors.NewUnknownValidatorError(c.schema.name, c.option, v.tag))
		default:
			// validator panics when the tag does not apply to the value's kind.
			c.failures.Addf("%s failed the '%s' check", name, v.tag)
		}
	}()

	err := tagValidator().Var(value, v.tag)
	if err == nil {
		return
	}
	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		c.failures.Addf("%s failed the '%s' check", name, v.tag)
		return
	}
	c.fail(fmt.Errorf("option %s on %s: %w", c.option, c.schema.name, err))
}

// knownTag reports whether validator can parse tag.
func knownTag(tag string) (known bool) {
	defer func() {
		if r := recover(); r != nil {
			known = !isUndefinedTag(r)
		}
	}()
	_ = tagValidator().Var("", tag)
	return true
}

func isUndefinedTag(r any) bool {
	return strings.Contains(fmt.Sprint(r), "Undefined validation function")
}

// satisfiesTags lists the validator tags used by v and its nested rules.
func satisfiesTags(v Validator) []string {
	switch v := v.(type) {
	case satisfiesValidator:
		return []string{v.tag}
	case allValidator:
		var out []string
		for _, rule := range v.rules {
			out = append(out, satisfiesTags(rule)...)
		}
		return out
	case arrayValidator:
		return satisfiesTags(v.item)
	}
	return nil
}

func (satisfiesValidator) tokens(string) []string { return nil }
