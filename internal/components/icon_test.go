package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bulmakit/internal/config"
)

func TestIconRender(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	assert.Equal(t, `<span class="icon"><i class="fas fa-home"></i></span>`,
		renderHTML(t, c, "Icon", map[string]any{"name": "home"}))
	assert.Equal(t, `<span class="icon is-medium"><i class="fab fa-github"></i></span>`,
		renderHTML(t, c, "Icon", map[string]any{"name": "github", "family": "fab", "size": "medium"}))
}

func TestIconFamilyDefaultsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.DefaultIconFamily = "far"
	c, err := New(config.Static{Config: cfg}, nil)
	require.NoError(t, err)

	component, err := c.Build("Icon", map[string]any{"name": "bell"})
	require.NoError(t, err)

	family, ok := component.Instance().Raw("family")
	require.True(t, ok)
	assert.Equal(t, "far", family)
}

func TestIconValidation(t *testing.T) {
	t.Parallel()

	_, err := newCatalog(t).Build("Icon", map[string]any{"name": "Home!", "family": "mdi"})
	require.EqualError(t, err, "name does not match ^[a-z0-9-]+$, family is not a valid icon family"+
		" - valid options for Icon are class, id, data, name, family, and size")
}
