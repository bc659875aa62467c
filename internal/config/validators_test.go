package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

func TestRegisterValidators(t *testing.T) {
	t.Parallel()

	registry := options.NewRegistry()
	require.NoError(t, RegisterValidators(registry, Static{}))
	assert.Equal(t, []string{"color", "icon_family", "size"}, registry.Names())

	color, ok := registry.Lookup("color")
	require.True(t, ok)
	require.NoError(t, color("danger", "color"))
	require.EqualError(t, color("chartreuse", "color"), "color is not a valid color name")
	require.EqualError(t, color(3, "background"), "background is not a valid color name")

	size, _ := registry.Lookup("size")
	require.EqualError(t, size("huge", "size"), "size is not a valid size")

	family, _ := registry.Lookup("icon_family")
	require.NoError(t, family("fab", "family"))
	require.EqualError(t, family("mdi", "family"), "family is not a valid icon family")

	require.Error(t, RegisterValidators(registry, Static{}))
}

func TestValidatorsReadTheCurrentConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	registry := options.NewRegistry()
	require.NoError(t, RegisterValidators(registry, Static{Config: cfg}))

	color, _ := registry.Lookup("color")
	require.Error(t, color("brand", "color"))

	cfg.Colors = append(cfg.Colors, "brand")
	require.NoError(t, color("brand", "color"))
}

func TestSchemaUsesConfigValidators(t *testing.T) {
	t.Parallel()

	registry := options.NewRegistry()
	require.NoError(t, RegisterValidators(registry, Static{}))

	widget := options.NewSchema("Widget", options.WithValidators(registry))
	options.MustDeclare[string](widget, "color", options.Validate(options.Self()))
	require.NoError(t, widget.Verify())

	_, err := widget.New(map[string]any{"color": "chartreuse"})
	require.EqualError(t, err, "color is not a valid color name - valid options for Widget are color")
}
