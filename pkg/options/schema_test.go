package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

func TestDeclareReturnsAccessorName(t *testing.T) {
	t.Parallel()

	widget := NewSchema("Widget")

	color, err := Declare[string](widget, "color")
	require.NoError(t, err)
	assert.Equal(t, "color", color.Name())

	checked, err := DeclareBool(widget, "checked?")
	require.NoError(t, err)
	assert.Equal(t, "checked?", checked.Name())
	assert.Equal(t, "checked", checked.Option().Name())

	plain, err := DeclareBool(widget, "open")
	require.NoError(t, err)
	assert.Equal(t, "open?", plain.Name())
}

func TestDeclareRejectsEmptyName(t *testing.T) {
	t.Parallel()

	widget := NewSchema("Widget")

	_, err := Declare[string](widget, "  ")
	require.Error(t, err)

	_, err = DeclareBool(widget, "?")
	require.Error(t, err)
}

func TestDuplicateDeclarations(t *testing.T) {
	t.Parallel()

	t.Run("same schema", func(t *testing.T) {
		t.Parallel()
		widget := NewSchema("Widget")
		MustDeclare[string](widget, "color")

		_, err := Declare[string](widget, "color")
		var dupErr *bulmaerrors.DuplicateOptionError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "Widget", dupErr.Owner)
	})

	t.Run("child redeclares parent option", func(t *testing.T) {
		t.Parallel()
		control := NewSchema("FormControl")
		MustDeclareBool(control, "checked")
		checkbox := NewSchema("Checkbox", Extends(control))

		_, err := DeclareBool(checkbox, "checked?")
		require.EqualError(t, err, "cannot declare option checked? on Checkbox: already defined on FormControl")
	})

	t.Run("grandchild names the owning ancestor", func(t *testing.T) {
		t.Parallel()
		base := NewSchema("Control")
		MustDeclare[string](base, "name")
		middle := NewSchema("Input", Extends(base))
		leaf := NewSchema("EmailInput", Extends(middle))

		_, err := Declare[int](leaf, "name")
		var dupErr *bulmaerrors.DuplicateOptionError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "Control", dupErr.Owner)
		assert.Equal(t, "EmailInput", dupErr.Component)
	})

	t.Run("parent declares a name a child already owns", func(t *testing.T) {
		t.Parallel()
		parent := NewSchema("Parent")
		child := NewSchema("Child", Extends(parent))
		size := MustDeclare[string](child, "size", Default("small"))

		_, err := Declare[string](parent, "size", Default("large"))
		var dupErr *bulmaerrors.DuplicateOptionError
		require.ErrorAs(t, err, &dupErr)
		assert.Equal(t, "Parent", dupErr.Component)
		assert.Equal(t, "Child", dupErr.Owner)

		assert.Empty(t, parent.Resolved().Names())
		assert.Equal(t, []string{"size"}, child.Resolved().Names())
		in, err := child.New(map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "small", size.Get(in))
	})

	t.Run("ancestor sees grandchild options and includes", func(t *testing.T) {
		t.Parallel()
		root := NewSchema("Root")
		middle := NewSchema("Middle", Extends(root))
		leaf := NewSchema("Leaf", Extends(middle))
		extras := NewOptionSet("Extras")
		MustDeclare[string](extras, "tone")
		leaf.MustInclude(extras)

		_, err := Declare[string](root, "tone")
		require.EqualError(t, err, "cannot declare option tone on Root: already defined on Extras")
	})

	t.Run("set declaration checks includer descendants", func(t *testing.T) {
		t.Parallel()
		shared := NewOptionSet("Shared")
		parent := NewSchema("Parent")
		parent.MustInclude(shared)
		child := NewSchema("Child", Extends(parent))
		MustDeclare[string](child, "rel")

		_, err := Declare[string](shared, "rel")
		require.EqualError(t, err, "cannot declare option rel on Shared: already defined on Child")
	})

	t.Run("siblings and unrelated schemas do not conflict", func(t *testing.T) {
		t.Parallel()
		parent := NewSchema("Parent")
		child := NewSchema("Child", Extends(parent))
		sibling := NewSchema("Sibling", Extends(parent))
		stranger := NewSchema("Stranger")

		MustDeclare[string](child, "size")
		_, err := Declare[string](sibling, "size")
		require.NoError(t, err)
		_, err = Declare[string](stranger, "size")
		require.NoError(t, err)
	})

	t.Run("boolean and plain share a namespace", func(t *testing.T) {
		t.Parallel()
		widget := NewSchema("Widget")
		MustDeclare[string](widget, "active")

		_, err := DeclareBool(widget, "active?")
		require.EqualError(t, err, "cannot declare option active? on Widget: already defined on Widget")
	})
}

func TestAbstractSchemaRefusesDeclarations(t *testing.T) {
	t.Parallel()

	base := NewSchema("Base", Abstract())

	_, err := DeclareBool(base, "hidden")
	var abstractErr *bulmaerrors.AbstractComponentError
	require.ErrorAs(t, err, &abstractErr)
	require.EqualError(t, err, "cannot declare option hidden? on abstract component Base")

	child := NewSchema("Child", Extends(base))
	_, err = Declare[string](child, "color")
	require.NoError(t, err)
}

func TestAbstractGuardRunsBeforeDuplicateGuard(t *testing.T) {
	t.Parallel()

	root := NewSchema("Root")
	MustDeclare[string](root, "color")
	base := NewSchema("Base", Extends(root), Abstract())

	_, err := Declare[string](base, "color")
	var abstractErr *bulmaerrors.AbstractComponentError
	require.ErrorAs(t, err, &abstractErr)

	var dupErr *bulmaerrors.DuplicateOptionError
	require.False(t, errors.As(err, &dupErr))
}

func TestIncludeOptionSets(t *testing.T) {
	t.Parallel()

	classes := NewOptionSet("ClassNames")
	MustDeclare[string](classes, "class")
	MustDeclare[string](classes, "id")

	widget := NewSchema("Widget")
	MustDeclare[string](widget, "color")
	require.NoError(t, widget.Include(classes))

	assert.Equal(t, []string{"class", "id", "color"}, widget.Resolved().Names())

	t.Run("declaring a name the set provides fails", func(t *testing.T) {
		_, err := Declare[string](widget, "class")
		require.EqualError(t, err, "cannot declare option class on Widget: already defined on ClassNames")
	})

	t.Run("including a colliding set fails", func(t *testing.T) {
		other := NewOptionSet("Colors")
		MustDeclare[string](other, "color")
		err := widget.Include(other)
		require.EqualError(t, err, "cannot declare option color on Widget: already defined on Widget")
	})

	t.Run("declaring on an included set checks includers", func(t *testing.T) {
		_, err := Declare[string](classes, "color")
		require.EqualError(t, err, "cannot declare option color on ClassNames: already defined on Widget")
	})

	t.Run("a colliding set leaves earlier sets out", func(t *testing.T) {
		links := NewOptionSet("Links")
		MustDeclare[string](links, "href")
		clash := NewOptionSet("Clash")
		MustDeclare[string](clash, "id")

		before := widget.Resolved().Names()
		err := widget.Include(links, clash)
		require.EqualError(t, err, "cannot declare option id on Widget: already defined on ClassNames")
		assert.Equal(t, before, widget.Resolved().Names())

		_, err = Declare[string](links, "color")
		require.NoError(t, err)
	})

	t.Run("sets included together must not overlap", func(t *testing.T) {
		left := NewOptionSet("Left")
		MustDeclare[string](left, "align")
		right := NewOptionSet("Right")
		MustDeclare[string](right, "align")

		target := NewSchema("Target")
		err := target.Include(left, right)
		require.EqualError(t, err, "cannot declare option align on Target: already defined on Left")
		assert.Empty(t, target.Resolved().Names())
	})

	t.Run("abstract schemas refuse sets", func(t *testing.T) {
		base := NewSchema("Base", Abstract())
		err := base.Include(classes)
		var abstractErr *bulmaerrors.AbstractComponentError
		require.ErrorAs(t, err, &abstractErr)
	})
}

func TestResolvedMergesChainRootFirst(t *testing.T) {
	t.Parallel()

	data := NewOptionSet("DataAttributes")
	MustDeclare[map[string]any](data, "data")

	base := NewSchema("Base")
	MustDeclare[string](base, "class")
	button := NewSchema("Button", Extends(base))
	button.MustInclude(data)
	MustDeclare[string](button, "label")
	MustDeclareBool(button, "disabled")

	resolved := button.Resolved()
	assert.Equal(t, []string{"class", "data", "label", "disabled"}, resolved.Names())
	assert.Equal(t, 4, resolved.Len())

	opt, ok := resolved.Lookup("disabled")
	require.True(t, ok)
	assert.True(t, opt.IsBoolean())
	assert.Equal(t, "Button", opt.Owner())

	_, ok = resolved.Lookup("disabled?")
	assert.False(t, ok)
}

func TestResolvedIsMemoized(t *testing.T) {
	t.Parallel()

	parent := NewSchema("Parent")
	MustDeclare[string](parent, "a")
	child := NewSchema("Child", Extends(parent))
	MustDeclare[string](child, "b")

	first := child.Resolved()
	second := child.Resolved()
	assert.Same(t, first, second)
	assert.Equal(t, first.Names(), second.Names())

	MustDeclare[string](parent, "c")
	third := child.Resolved()
	assert.NotSame(t, first, third)
	assert.Equal(t, []string{"a", "c", "b"}, third.Names())
}

func TestAllowExtraOptionsIsInherited(t *testing.T) {
	t.Parallel()

	container := NewSchema("Container")
	assert.False(t, container.ExtraOptionsAllowed())
	container.AllowExtraOptions()
	assert.True(t, container.ExtraOptionsAllowed())

	section := NewSchema("Section", Extends(container))
	assert.True(t, section.ExtraOptionsAllowed())

	assert.True(t, NewSchema("Level", AllowExtra()).ExtraOptionsAllowed())
}

func TestValidatorsRegistryIsInherited(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	base := NewSchema("Base", WithValidators(registry))
	child := NewSchema("Child", Extends(base))

	assert.Same(t, registry, child.Validators())
	assert.Same(t, DefaultValidators, NewSchema("Other").Validators())
}
