package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bulmakit/internal/manifest"
	"github.com/alexisbeaulieu97/bulmakit/pkg/diff"
)

const bulmaStylesheet = "https://cdn.jsdelivr.net/npm/bulma@1.0.2/css/bulma.min.css"

type renderOptions struct {
	ManifestPath string
	Page         bool
	Title        string
	Expect       string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render the components of a manifest as Bulma markup",
		Long: `Render builds every component listed in the manifest and prints its markup,
one component per line. Nothing is printed when any component is invalid;
the failures are reported as by check. With --expect the markup is compared
against a golden file instead of printed, and a unified diff is shown when
they differ.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ManifestPath = args[0]

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			return runRender(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Page, "page", false, "Wrap the markup in a standalone HTML page")
	cmd.Flags().StringVar(&opts.Title, "title", "bulmakit", "Page title used with --page")
	cmd.Flags().StringVar(&opts.Expect, "expect", "", "Compare the markup with this golden file instead of printing it")

	return cmd
}

func runRender(cmd *cobra.Command, app *appContext, opts renderOptions) error {
	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return newCommandError("render", "reading manifest", err, "A manifest is a YAML list of entries with component and options keys.")
	}

	report := m.Check(app.catalog)
	if !report.OK() {
		writeCheckText(cmd.ErrOrStderr(), report, newStyles(cmd.ErrOrStderr()))
		return &exitError{code: exitInvalid}
	}

	fragments := make([]template.HTML, 0, len(report.Results))
	for _, res := range report.Results {
		html, err := res.Component.Render()
		if err != nil {
			return fmt.Errorf("render %s (line %d): %w", res.Entry.Component, res.Entry.Line, err)
		}
		fragments = append(fragments, html)
	}

	app.log.WithFields(map[string]any{
		"manifest":   opts.ManifestPath,
		"components": len(fragments),
	}).Debug("rendered manifest")

	var out bytes.Buffer
	if opts.Page {
		if err := writePage(&out, opts.Title, fragments); err != nil {
			return err
		}
	} else {
		for _, fragment := range fragments {
			fmt.Fprintln(&out, fragment)
		}
	}

	if opts.Expect == "" {
		_, err = cmd.OutOrStdout().Write(out.Bytes())
		return err
	}
	return compareGolden(cmd, opts.Expect, out.Bytes())
}

func compareGolden(cmd *cobra.Command, path string, rendered []byte) error {
	golden, err := os.ReadFile(path)
	if err != nil {
		return newCommandError("render", "reading golden file", err, "Create it with 'bulmakit render <manifest> > "+path+"'.")
	}

	if d := diff.Unified(golden, rendered, path, "rendered"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return &exitError{code: exitInvalid}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s matches\n", path)
	return nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
<section class="section">
{{range .Fragments}}{{.}}
{{end}}</section>
</body>
</html>
`))

func writePage(w io.Writer, title string, fragments []template.HTML) error {
	return pageTemplate.Execute(w, struct {
		Title      string
		Stylesheet string
		Fragments  []template.HTML
	}{Title: title, Stylesheet: bulmaStylesheet, Fragments: fragments})
}
