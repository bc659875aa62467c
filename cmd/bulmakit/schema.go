package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

type schemaOptions struct {
	JSON bool
}

func newSchemaCmd(root *rootFlags) *cobra.Command {
	opts := schemaOptions{}

	cmd := &cobra.Command{
		Use:   "schema [component]",
		Short: "List components, or the resolved options of one component",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return runSchemaList(cmd, app, opts)
			}
			return runSchemaShow(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output in JSON format")

	return cmd
}

type schemaJSONOption struct {
	Name      string `json:"name"`
	Accessor  string `json:"accessor"`
	Boolean   bool   `json:"boolean"`
	Required  bool   `json:"required"`
	Validator string `json:"validator,omitempty"`
	Default   any    `json:"default,omitempty"`
	Computed  bool   `json:"computed_default,omitempty"`
	Owner     string `json:"owner"`
}

type schemaJSONComponent struct {
	Name         string             `json:"name"`
	Parent       string             `json:"parent,omitempty"`
	ExtraAllowed bool               `json:"extra_options_allowed"`
	Options      []schemaJSONOption `json:"options"`
}

func describeSchema(schema *options.Schema) schemaJSONComponent {
	component := schemaJSONComponent{
		Name:         schema.Name(),
		ExtraAllowed: schema.ExtraOptionsAllowed(),
	}
	if parent := schema.Parent(); parent != nil {
		component.Parent = parent.Name()
	}

	for _, opt := range schema.Resolved().Options() {
		desc := schemaJSONOption{
			Name:     opt.Name(),
			Accessor: opt.AccessorName(),
			Boolean:  opt.IsBoolean(),
			Required: opt.IsRequired(),
			Computed: opt.HasDefaultFunc(),
			Owner:    opt.Owner(),
		}
		if opt.HasValidator() {
			desc.Validator = opt.Validator().String()
		}
		if !opt.HasDefaultFunc() {
			desc.Default = opt.Default(nil)
		}
		component.Options = append(component.Options, desc)
	}
	return component
}

func runSchemaList(cmd *cobra.Command, app *appContext, opts schemaOptions) error {
	names := app.catalog.Names()
	if opts.JSON {
		descs := make([]schemaJSONComponent, 0, len(names))
		for _, name := range names {
			schema, _ := app.catalog.Schema(name)
			descs = append(descs, describeSchema(schema))
		}
		return writeJSON(cmd.OutOrStdout(), descs)
	}

	st := newStyles(cmd.OutOrStdout())
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, st.title.Render("COMPONENT")+"\t"+st.title.Render("OPTIONS"))
	for _, name := range names {
		schema, _ := app.catalog.Schema(name)
		fmt.Fprintf(writer, "%s\t%s\n", st.key.Render(name), strings.Join(schema.Resolved().Names(), ", "))
	}
	return writer.Flush()
}

func runSchemaShow(cmd *cobra.Command, app *appContext, name string, opts schemaOptions) error {
	schema, ok := app.catalog.Schema(name)
	if !ok {
		return &exitError{
			code: exitUsage,
			err:  fmt.Errorf("unknown component %q; known components are %s", name, strings.Join(app.catalog.Names(), ", ")),
		}
	}

	desc := describeSchema(schema)
	if opts.JSON {
		return writeJSON(cmd.OutOrStdout(), desc)
	}

	out := cmd.OutOrStdout()
	st := newStyles(out)
	fmt.Fprintf(out, "%s extends %s", st.title.Render(desc.Name), desc.Parent)
	if desc.ExtraAllowed {
		fmt.Fprint(out, " (extra options allowed)")
	}
	fmt.Fprintln(out)

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "OPTION\tREQUIRED\tVALIDATOR\tDEFAULT\tFROM")
	for _, opt := range desc.Options {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			st.key.Render(opt.Accessor),
			yesNo(opt.Required),
			valueOrFallback(opt.Validator, "-"),
			formatDefault(opt),
			opt.Owner,
		)
	}
	return writer.Flush()
}

func formatDefault(opt schemaJSONOption) string {
	switch {
	case opt.Computed:
		return "(computed)"
	case opt.Default == nil:
		return "-"
	}
	return fmt.Sprint(opt.Default)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func valueOrFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
