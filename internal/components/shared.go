package components

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

var attributeName = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// classNames is the option set every component includes for its outer element.
type classNames struct {
	set   *options.OptionSet
	class options.Accessor[string]
	id    options.Accessor[string]
}

func newClassNames() *classNames {
	set := options.NewOptionSet("ClassNames")
	return &classNames{
		set:   set,
		class: options.MustDeclare[string](set, "class", options.Validate(options.TypeOf[string]())),
		id:    options.MustDeclare[string](set, "id", options.Validate(options.Matches(`^[A-Za-z][\w-]*$`))),
	}
}

// dataAttributes adds a "data" option rendered as data-* attributes.
type dataAttributes struct {
	set  *options.OptionSet
	data options.Accessor[map[string]any]
}

func newDataAttributes() *dataAttributes {
	set := options.NewOptionSet("DataAttributes")
	return &dataAttributes{
		set: set,
		data: options.MustDeclare[map[string]any](set, "data", options.Validate(options.All(
			options.InstanceOf[map[string]any](),
			options.Func(checkAttributeNames),
		))),
	}
}

func checkAttributeNames(value any, name string) error {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range sortedKeys(m) {
		if !attributeName.MatchString(key) {
			return fmt.Errorf("%s has an invalid attribute name %q", name, key)
		}
	}
	return nil
}

// attrs renders the id and data-* attributes of in, each with a leading space.
func (c *Catalog) attrs(in *options.Instance) template.HTMLAttr {
	var b strings.Builder
	if id := c.classNames.id.Get(in); id != "" {
		fmt.Fprintf(&b, ` id="%s"`, html.EscapeString(id))
	}
	data := c.data.data.Get(in)
	for _, key := range sortedKeys(data) {
		fmt.Fprintf(&b, ` data-%s="%s"`, key, html.EscapeString(fmt.Sprint(data[key])))
	}
	return template.HTMLAttr(b.String())
}

// classes joins the non-empty class names, appending the user's "class" option.
func (c *Catalog) classes(in *options.Instance, names ...string) string {
	parts := make([]string, 0, len(names)+1)
	for _, name := range names {
		if name != "" {
			parts = append(parts, name)
		}
	}
	if extra := strings.TrimSpace(c.classNames.class.Get(in)); extra != "" {
		parts = append(parts, extra)
	}
	return strings.Join(parts, " ")
}

func modifier(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}

func flag(on bool, class string) string {
	if on {
		return class
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var templates = template.Must(template.New("components").Parse(`
{{define "button"}}<button class="{{.Class}}" type="{{.Type}}"{{.Attrs}}>{{template "button-body" .}}</button>{{end}}
{{define "link"}}<a class="{{.Class}}" href="{{.Href}}"{{.Attrs}}>{{template "button-body" .}}</a>{{end}}
{{define "button-body"}}{{with .Icon}}{{.}}<span>{{$.Label}}</span>{{else}}{{.Label}}{{end}}{{end}}
{{define "icon"}}<span class="{{.Class}}"{{.Attrs}}><i class="{{.Glyph}}"></i></span>{{end}}
{{define "tag"}}<span class="{{.Class}}"{{.Attrs}}>{{.Label}}{{if .Delete}}<button class="delete is-small"></button>{{end}}</span>{{end}}
{{define "table"}}<table class="{{.Class}}"{{.Attrs}}><thead><tr>{{range .Headings}}<th class="{{.Class}}">{{.Text}}</th>{{end}}</tr></thead><tbody>{{range .Rows}}<tr>{{range .}}<td class="{{.Class}}">{{.Text}}</td>{{end}}</tr>{{end}}</tbody></table>{{end}}
{{define "container"}}<div class="{{.Class}}"{{.Attrs}}>{{.Body}}</div>{{end}}
`))

func render(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}
