// Package datafield describes the columns of data tables and the fields of
// description lists: which key to read from a row, how to label, align,
// transform and truncate it.
package datafield

import (
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/alexisbeaulieu97/bulmakit/internal/humanize"
	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Align is the horizontal alignment of a field's content.
type Align string

const (
	AlignLeft     Align = "left"
	AlignCentered Align = "centered"
	AlignRight    Align = "right"
)

// Type is the kind of data a field holds; it drives formatting and the
// default alignment.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeDate    Type = "date"
	TypeBoolean Type = "boolean"
)

// DateLayout formats TypeDate values.
const DateLayout = "2006-01-02"

var (
	aligns = []Align{AlignLeft, AlignCentered, AlignRight}
	types  = []Type{TypeString, TypeNumber, TypeDate, TypeBoolean}

	// keys lists every key a raw definition may carry.
	keys = map[string]struct{}{
		"key": {}, "align": {}, "label": {}, "transform": {}, "truncate": {}, "type": {}, "value": {},
	}
)

// Definition describes one field.
type Definition struct {
	Key       string
	Align     Align
	Label     string
	Transform func(any) any
	Truncate  int
	Type      Type
	// Path, when set, is a dotted path read from the row instead of Key.
	Path string
	// Value, when set, computes the raw value from the row.
	Value func(row any) any
}

// Parse builds a Definition from its raw form. Every problem is reported in a
// single *errors.DefinitionError.
func Parse(raw map[string]any) (Definition, error) {
	var def Definition
	failures := &options.Aggregator{}

	extra := make([]string, 0)
	for k := range raw {
		if _, ok := keys[k]; !ok {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		failures.Addf("%s is not a valid data field key", k)
	}

	switch key := raw["key"].(type) {
	case string:
		if strings.TrimSpace(key) == "" {
			failures.Add("key is missing")
		}
		def.Key = key
	case nil:
		failures.Add("key is missing")
	default:
		failures.Add("key is not a string")
	}

	if v, ok := raw["align"]; ok && v != nil {
		align, isString := v.(string)
		if !isString || !slices.Contains(aligns, Align(align)) {
			failures.Addf("align is not one of %s", humanize.Or(alignWords()))
		}
		def.Align = Align(align)
	}

	if v, ok := raw["label"]; ok && v != nil {
		label, isString := v.(string)
		if !isString {
			failures.Add("label is not a string")
		}
		def.Label = label
	}

	if v, ok := raw["transform"]; ok && v != nil {
		fn, isFunc := v.(func(any) any)
		if !isFunc {
			failures.Add("transform is not a function")
		}
		def.Transform = fn
	}

	if v, ok := raw["truncate"]; ok && v != nil {
		n, isInt := v.(int)
		if !isInt || n < 0 {
			failures.Add(truncateFailure)
		}
		def.Truncate = n
	}

	if v, ok := raw["type"]; ok && v != nil {
		typ, isString := v.(string)
		if !isString || !slices.Contains(types, Type(typ)) {
			failures.Addf("type is not one of %s", humanize.Or(typeWords()))
		}
		def.Type = Type(typ)
	}

	if v, ok := raw["value"]; ok && v != nil {
		switch value := v.(type) {
		case string:
			def.Path = value
		case func(any) any:
			def.Value = value
		default:
			failures.Add("value is not a path or a function")
		}
	}

	if !failures.Empty() {
		return Definition{}, bulmaerrors.NewDefinitionError("data field", failures.Messages())
	}
	return def, nil
}

// From accepts a key string, a raw map, or a Definition.
func From(v any) (Definition, error) {
	switch def := v.(type) {
	case Definition:
		return def, def.Validate()
	case *Definition:
		if def == nil {
			return Definition{}, bulmaerrors.NewDefinitionError("data field", []string{"key is missing"})
		}
		return *def, def.Validate()
	case string:
		return Parse(map[string]any{"key": def})
	case map[string]any:
		return Parse(def)
	}
	return Definition{}, bulmaerrors.NewDefinitionError("data field", []string{
		fmt.Sprintf("%T is not a data field definition", v),
	})
}

// Zero truncate means no truncation.
const truncateFailure = "truncate is not zero or a positive integer"

// Validate checks a Definition built in code.
func (d Definition) Validate() error {
	failures := &options.Aggregator{}
	if strings.TrimSpace(d.Key) == "" {
		failures.Add("key is missing")
	}
	if d.Align != "" && !slices.Contains(aligns, d.Align) {
		failures.Addf("align is not one of %s", humanize.Or(alignWords()))
	}
	if d.Truncate < 0 {
		failures.Add(truncateFailure)
	}
	if d.Type != "" && !slices.Contains(types, d.Type) {
		failures.Addf("type is not one of %s", humanize.Or(typeWords()))
	}
	if !failures.Empty() {
		return bulmaerrors.NewDefinitionError("data field", failures.Messages())
	}
	return nil
}

// Heading returns the label, defaulting to the humanized key.
func (d Definition) Heading() string {
	if d.Label != "" {
		return d.Label
	}
	return humanize.Label(d.Key)
}

// Alignment returns the alignment; numbers default to the right, everything
// else to the left.
func (d Definition) Alignment() Align {
	if d.Align != "" {
		return d.Align
	}
	if d.Type == TypeNumber {
		return AlignRight
	}
	return AlignLeft
}

// AlignClass returns the Bulma text-alignment class.
func (d Definition) AlignClass() string {
	return "has-text-" + string(d.Alignment())
}

// Raw reads the field's value from row, applying Value or Path and then Transform.
func (d Definition) Raw(row any) any {
	var v any
	switch {
	case d.Value != nil:
		v = d.Value(row)
	case d.Path != "":
		v = dig(row, strings.Split(d.Path, "."))
	default:
		v = dig(row, []string{d.Key})
	}
	if d.Transform != nil {
		v = d.Transform(v)
	}
	return v
}

// Format renders the field's value from row as display text.
func (d Definition) Format(row any) string {
	text := d.text(d.Raw(row))
	if d.Truncate > 0 && utf8.RuneCountInString(text) > d.Truncate {
		runes := []rune(text)
		text = string(runes[:d.Truncate]) + "…"
	}
	return text
}

func (d Definition) text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		if d.Type == TypeDate {
			return t.Format(DateLayout)
		}
		return t.Format(time.RFC3339)
	case bool:
		if d.Type == TypeBoolean {
			if t {
				return "Yes"
			}
			return "No"
		}
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}

// dig follows path through nested maps and structs.
func dig(row any, path []string) any {
	cur := row
	for _, part := range path {
		if cur == nil {
			return nil
		}
		rv := reflect.ValueOf(cur)
		for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
			if rv.IsNil() {
				return nil
			}
			rv = rv.Elem()
		}

		switch rv.Kind() {
		case reflect.Map:
			if rv.Type().Key().Kind() != reflect.String {
				return nil
			}
			val := rv.MapIndex(reflect.ValueOf(part).Convert(rv.Type().Key()))
			if !val.IsValid() {
				return nil
			}
			cur = val.Interface()
		case reflect.Struct:
			field := rv.FieldByNameFunc(func(name string) bool {
				return strings.EqualFold(name, strings.ReplaceAll(part, "_", ""))
			})
			if !field.IsValid() || !field.CanInterface() {
				return nil
			}
			cur = field.Interface()
		default:
			return nil
		}
	}
	return cur
}

func alignWords() []string {
	words := make([]string, 0, len(aligns))
	for _, a := range aligns {
		words = append(words, string(a))
	}
	return words
}

func typeWords() []string {
	words := make([]string, 0, len(types))
	for _, t := range types {
		words = append(words, string(t))
	}
	return words
}
