package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	check := func(any, string) error { return nil }

	require.NoError(t, registry.Register("size", check))
	require.NoError(t, registry.Register("color", check))
	require.EqualError(t, registry.Register("color", check), `validator "color" already registered`)
	require.Error(t, registry.Register("nil", nil))

	_, ok := registry.Lookup("color")
	assert.True(t, ok)
	_, ok = registry.Lookup("icon")
	assert.False(t, ok)

	assert.Equal(t, []string{"color", "size"}, registry.Names())
	assert.Panics(t, func() { registry.MustRegister("size", check) })
}

func TestAggregator(t *testing.T) {
	t.Parallel()

	agg := &Aggregator{}
	assert.True(t, agg.Empty())

	agg.Add("a is not a valid option")
	agg.Addf("%s can't be blank", "label")

	other := &Aggregator{}
	other.Add("size is not one of small or large")
	agg.Merge(other)
	agg.Merge(nil)

	assert.False(t, agg.Empty())
	assert.Equal(t, 3, agg.Len())
	assert.Equal(t, "a is not a valid option, label can't be blank, size is not one of small or large", agg.Join())

	messages := agg.Messages()
	messages[0] = "changed"
	assert.Equal(t, "a is not a valid option", agg.Messages()[0])
}

func TestIsBlank(t *testing.T) {
	t.Parallel()

	var nilMap map[string]any
	var nilPtr *int
	zero := 0

	blank := []any{nil, "", "  \n", false, []any{}, map[string]any{}, nilMap, nilPtr, [0]int{}}
	for _, v := range blank {
		assert.True(t, IsBlank(v), "%#v should be blank", v)
	}

	present := []any{"x", true, 0, 1.5, []string{"a"}, map[string]int{"a": 1}, &zero, errors.New("e")}
	for _, v := range present {
		assert.False(t, IsBlank(v), "%#v should not be blank", v)
	}
}

func TestValidatorStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "self", Self().String())
	assert.Equal(t, "use:color", Use("color").String())
	assert.Equal(t, "type:string", TypeOf[string]().String())
	assert.Equal(t, "func", Func(func(any, string) error { return nil }).String())
	assert.Equal(t,
		"all(instance_of:[]any, array(inclusion:a|b), presence, matches:^x$, satisfies:email)",
		All(InstanceOf[[]any](), Array(Inclusion("a", "b")), Presence(), Matches("^x$"), Satisfies("email")).String(),
	)
}
