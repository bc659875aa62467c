package components

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bulmakit/internal/config"
	"github.com/alexisbeaulieu97/bulmakit/internal/logger"
	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

func newCatalog(t *testing.T) *Catalog {
	t.Helper()

	c, err := New(config.Static{}, logger.Nop())
	require.NoError(t, err)
	return c
}

func renderHTML(t *testing.T, c *Catalog, name string, raw map[string]any) string {
	t.Helper()

	component, err := c.Build(name, raw)
	require.NoError(t, err)
	out, err := component.Render()
	require.NoError(t, err)
	return string(out)
}

func TestCatalogNames(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	assert.Equal(t, []string{"Button", "Container", "Icon", "Table", "Tag"}, c.Names())
	assert.Equal(t, []string{"color", "component", "icon_family", "size"}, c.Validators().Names())
	require.NoError(t, c.Verify())
}

func TestCatalogUnknownComponent(t *testing.T) {
	t.Parallel()

	_, err := newCatalog(t).Build("Hero", nil)
	require.EqualError(t, err, `unknown component "Hero"`)
}

func TestCatalogBaseIsAbstract(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	_, err := options.Declare[string](c.Base(), "title")

	var abstractErr *bulmaerrors.AbstractComponentError
	require.ErrorAs(t, err, &abstractErr)
	assert.Equal(t, "Component", abstractErr.Component)

	require.Error(t, c.Register(c.Base(), func(*options.Instance) (Component, error) { return nil, nil }))
}

func TestCatalogRejectsDuplicateRegistration(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	schema := c.schema("Tag")
	err := c.Register(schema, func(*options.Instance) (Component, error) { return nil, nil })
	require.EqualError(t, err, "register component Tag: already registered")
}

func TestCatalogRejectsRedeclaredSharedOption(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	schema, ok := c.Schema("Button")
	require.True(t, ok)

	_, err := options.Declare[string](schema, "class")
	var dupErr *bulmaerrors.DuplicateOptionError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "ClassNames", dupErr.Owner)
}

func TestCatalogCustomComponent(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	schema := c.schema("Notification")
	require.NoError(t, schema.Include(c.classNames.set))
	color := options.MustDeclare[string](schema, "color", options.Validate(options.Self()))

	var built *options.Instance
	require.NoError(t, c.Register(schema, func(in *options.Instance) (Component, error) {
		built = in
		return &Tag{in: in}, nil
	}))

	_, err := c.Build("Notification", map[string]any{"color": "danger"})
	require.NoError(t, err)
	assert.Equal(t, "danger", color.Get(built))
}

func TestSharedOptionValidation(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "id pattern",
			raw:  map[string]any{"label": "New", "id": "9lives"},
			want: `id does not match ^[A-Za-z][\w-]*$`,
		},
		{
			name: "class type",
			raw:  map[string]any{"label": "New", "class": 3},
			want: "class is not a string",
		},
		{
			name: "data type",
			raw:  map[string]any{"label": "New", "data": "x"},
			want: "data is not an instance of map[string]any",
		},
		{
			name: "data attribute name",
			raw:  map[string]any{"label": "New", "data": map[string]any{"Bad Key": 1}},
			want: `data has an invalid attribute name "Bad Key"`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := c.Build("Tag", tc.raw)
			var invalid *bulmaerrors.InvalidOptionsError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, []string{tc.want}, invalid.Failures)
		})
	}
}

func TestSharedAttributesRender(t *testing.T) {
	t.Parallel()

	out := renderHTML(t, newCatalog(t), "Tag", map[string]any{
		"label": "New",
		"id":    "badge",
		"class": "ml-2",
		"data":  map[string]any{"user-id": 7, "kind": `"quoted"`},
	})
	assert.Equal(t, `<span class="tag ml-2" id="badge" data-kind="&#34;quoted&#34;" data-user-id="7">New</span>`, out)
}

func TestCatalogFollowsConfigSource(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Colors = []string{"brand"}
	c, err := New(config.Static{Config: cfg}, nil)
	require.NoError(t, err)

	_, err = c.Build("Tag", map[string]any{"label": "x", "color": "primary"})
	require.EqualError(t, err, "color is not a valid color name - valid options for Tag are class, id, data, label, color, size, light, rounded, and deletable")

	out := renderHTML(t, c, "Tag", map[string]any{"label": "x", "color": "brand"})
	assert.Equal(t, `<span class="tag is-brand">x</span>`, out)
}
