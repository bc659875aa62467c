package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

func TestButtonRender(t *testing.T) {
	t.Parallel()

	c := newCatalog(t)
	cases := []struct {
		name string
		raw  map[string]any
		want string
	}{
		{
			name: "plain",
			raw:  map[string]any{"label": "Save"},
			want: `<button class="button" type="button">Save</button>`,
		},
		{
			name: "modifiers",
			raw: map[string]any{
				"label": "Save", "color": "primary", "size": "small",
				"outlined": true, "rounded": true,
			},
			want: `<button class="button is-primary is-small is-outlined is-rounded" type="button">Save</button>`,
		},
		{
			name: "disabled submit",
			raw:  map[string]any{"label": "Send", "type": "submit", "disabled": true},
			want: `<button class="button" type="submit" disabled>Send</button>`,
		},
		{
			name: "link",
			raw: map[string]any{
				"label": "Docs", "href": "https://bulma.io", "id": "cta",
				"data": map[string]any{"track": "hero"},
			},
			want: `<a class="button" href="https://bulma.io" id="cta" data-track="hero">Docs</a>`,
		},
		{
			name: "icon",
			raw:  map[string]any{"label": "Done", "icon": "check", "size": "large"},
			want: `<button class="button is-large" type="button"><span class="icon is-large"><i class="fas fa-check"></i></span><span>Done</span></button>`,
		},
		{
			name: "escaped label",
			raw:  map[string]any{"label": "<b>Bold</b>"},
			want: `<button class="button" type="button">&lt;b&gt;Bold&lt;/b&gt;</button>`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, renderHTML(t, c, "Button", tc.raw))
		})
	}
}

func TestButtonDefaultsTypeAtConstruction(t *testing.T) {
	t.Parallel()

	component, err := newCatalog(t).Build("Button", map[string]any{"label": "Save"})
	require.NoError(t, err)

	raw, ok := component.Instance().Raw("type")
	require.True(t, ok)
	assert.Equal(t, "button", raw)
	assert.False(t, component.Instance().Has("disabled"))
}

func TestButtonRejectsEveryProblem(t *testing.T) {
	t.Parallel()

	_, err := newCatalog(t).Build("Button", map[string]any{
		"color": "chartreuse",
		"size":  "huge",
		"type":  "link",
		"href":  "not a uri",
		"bogus": 1,
	})
	require.EqualError(t, err, "bogus is not a valid option, "+
		"label can't be blank, "+
		"color is not a valid color name, "+
		"size is not a valid size, "+
		"type is not one of button, submit, or reset, "+
		"href failed the 'uri' check"+
		" - valid options for Button are class, id, data, label, color, size, type, href, icon, disabled, outlined, and rounded")
}

func TestButtonNonStringHrefIsAFailure(t *testing.T) {
	t.Parallel()

	_, err := newCatalog(t).Build("Button", map[string]any{"label": "Go", "href": 5})
	var invalid *bulmaerrors.InvalidOptionsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, []string{"href failed the 'uri' check"}, invalid.Failures)
}
