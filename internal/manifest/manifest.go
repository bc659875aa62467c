// Package manifest reads YAML lists of component invocations and checks them
// against a component catalog.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/bulmakit/internal/components"
	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

// Entry is one component invocation.
type Entry struct {
	Component string
	Options   map[string]any
	// Line is the 1-based line the entry starts on.
	Line int
}

// Manifest is an ordered list of entries read from Path.
type Manifest struct {
	Path    string
	Entries []Entry
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bulmaerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse parses manifest data. path is used in error messages only.
func Parse(path string, data []byte) (*Manifest, error) {
	m := &Manifest{Path: path}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, bulmaerrors.NewYAMLError(path, err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return m, nil
	}

	list := root.Content[0]
	if list.Kind != yaml.SequenceNode {
		return nil, bulmaerrors.NewParseError(path, list.Line, fmt.Errorf("manifest must be a list of components"))
	}

	for _, item := range list.Content {
		entry, err := parseEntry(item)
		if err != nil {
			return nil, bulmaerrors.NewParseError(path, item.Line, err)
		}
		m.Entries = append(m.Entries, entry)
	}
	return m, nil
}

func parseEntry(node *yaml.Node) (Entry, error) {
	entry := Entry{Line: node.Line}
	if node.Kind != yaml.MappingNode {
		return entry, fmt.Errorf("entry must be a mapping")
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		switch key.Value {
		case "component":
			if value.Kind != yaml.ScalarNode || value.Value == "" {
				return entry, fmt.Errorf("component must be a name")
			}
			entry.Component = value.Value
		case "options":
			if value.Kind != yaml.MappingNode {
				return entry, fmt.Errorf("options must be a mapping")
			}
			if err := value.Decode(&entry.Options); err != nil {
				return entry, fmt.Errorf("decode options: %w", err)
			}
		default:
			return entry, fmt.Errorf("unknown entry key %q", key.Value)
		}
	}

	if entry.Component == "" {
		return entry, fmt.Errorf("entry is missing component")
	}
	if entry.Options == nil {
		entry.Options = map[string]any{}
	}
	return entry, nil
}

// Builder constructs components by name. *components.Catalog is a Builder.
type Builder interface {
	Build(name string, raw map[string]any) (components.Component, error)
}

// Result is the outcome of building one entry.
type Result struct {
	Entry     Entry
	Component components.Component
	Err       error
}

// Report holds the results of checking every entry of a manifest.
type Report struct {
	Path    string
	Results []Result
}

// Check builds every entry, collecting failures instead of stopping at the first.
func (m *Manifest) Check(b Builder) Report {
	report := Report{Path: m.Path, Results: make([]Result, 0, len(m.Entries))}
	for _, entry := range m.Entries {
		component, err := b.Build(entry.Component, entry.Options)
		report.Results = append(report.Results, Result{Entry: entry, Component: component, Err: err})
	}
	return report
}

// Failed returns the results whose entry could not be built.
func (r Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every entry was built.
func (r Report) OK() bool { return len(r.Failed()) == 0 }
