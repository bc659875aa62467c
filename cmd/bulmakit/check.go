package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bulmakit/internal/config"
	"github.com/alexisbeaulieu97/bulmakit/internal/manifest"
	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

type checkOptions struct {
	ManifestPath string
	JSON         bool
	Watch        bool
}

func newCheckCmd(root *rootFlags) *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check <manifest>",
		Short: "Validate every component invocation in a manifest",
		Long: `Check builds every component listed in the manifest and reports all invalid
options at once. Returns exit code 0 when every component is valid and exit
code 1 when any is not.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ManifestPath = args[0]

			app, err := newAppContext(cmd, root)
			if err != nil {
				return err
			}
			if opts.Watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return watchCheck(ctx, cmd, app, opts)
			}
			return runCheck(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-check when the manifest or configuration changes")

	return cmd
}

func runCheck(cmd *cobra.Command, app *appContext, opts checkOptions) error {
	m, err := manifest.Load(opts.ManifestPath)
	if err != nil {
		return newCommandError("check", "reading manifest", err, "A manifest is a YAML list of entries with component and options keys.")
	}

	report := m.Check(app.catalog)
	app.log.WithFields(map[string]any{
		"manifest": opts.ManifestPath,
		"total":    len(report.Results),
		"invalid":  len(report.Failed()),
	}).Debug("check complete")

	out := cmd.OutOrStdout()
	if opts.JSON {
		err = writeCheckJSON(out, report)
	} else {
		writeCheckText(out, report, newStyles(out))
	}
	if err != nil {
		return err
	}

	if !report.OK() {
		return &exitError{code: exitInvalid}
	}
	return nil
}

func writeCheckText(w io.Writer, report manifest.Report, st styles) {
	failed := len(report.Failed())
	summary := fmt.Sprintf("%d components, %d invalid", len(report.Results), failed)
	if failed > 0 {
		summary = st.failed.Render(summary)
	} else {
		summary = st.ok.Render(summary)
	}
	fmt.Fprintf(w, "%s %s: %s\n", st.title.Render("Checked"), report.Path, summary)

	for _, res := range report.Results {
		location := st.muted.Render(fmt.Sprintf("(line %d)", res.Entry.Line))
		if res.Err == nil {
			fmt.Fprintf(w, "  %s %s %s\n", st.okMark(), res.Entry.Component, location)
			continue
		}

		fmt.Fprintf(w, "  %s %s %s\n", st.failMark(), res.Entry.Component, location)
		failures, validOptions := describeFailure(res.Err)
		for _, failure := range failures {
			fmt.Fprintf(w, "      %s\n", failure)
		}
		if len(validOptions) > 0 {
			fmt.Fprintf(w, "      %s %s\n", st.muted.Render("valid options:"), strings.Join(validOptions, ", "))
		}
	}
}

// describeFailure splits an invalid-options error into its individual
// failures; other errors are reported whole.
func describeFailure(err error) ([]string, []string) {
	var invalid *bulmaerrors.InvalidOptionsError
	if errors.As(err, &invalid) {
		return invalid.Failures, invalid.ValidOptions
	}
	return []string{err.Error()}, nil
}

type checkJSONResult struct {
	Index        int      `json:"index"`
	Line         int      `json:"line"`
	Component    string   `json:"component"`
	Valid        bool     `json:"valid"`
	Errors       []string `json:"errors,omitempty"`
	ValidOptions []string `json:"valid_options,omitempty"`
}

type checkJSONPayload struct {
	Manifest string            `json:"manifest"`
	Total    int               `json:"total"`
	Invalid  int               `json:"invalid"`
	Results  []checkJSONResult `json:"results"`
}

func writeCheckJSON(w io.Writer, report manifest.Report) error {
	payload := checkJSONPayload{
		Manifest: report.Path,
		Total:    len(report.Results),
		Invalid:  len(report.Failed()),
		Results:  make([]checkJSONResult, len(report.Results)),
	}

	for i, res := range report.Results {
		result := checkJSONResult{
			Index:     i,
			Line:      res.Entry.Line,
			Component: res.Entry.Component,
			Valid:     res.Err == nil,
		}
		if res.Err != nil {
			result.Errors, result.ValidOptions = describeFailure(res.Err)
		}
		payload.Results[i] = result
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

// watchCheck runs the check, then again whenever the manifest or the
// configuration file changes, until ctx is done.
func watchCheck(ctx context.Context, cmd *cobra.Command, app *appContext, opts checkOptions) error {
	manifestPath, err := filepath.Abs(opts.ManifestPath)
	if err != nil {
		return newCommandError("check", "resolving manifest path", err, "Pass a readable manifest path.")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("check", "creating file watcher", err, "Check the system's inotify limits.")
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (rename over the file) are seen.
	if err := watcher.Add(filepath.Dir(manifestPath)); err != nil {
		return newCommandError("check", "watching manifest", err, "Make sure the manifest directory exists.")
	}

	rerun := make(chan struct{}, 1)
	trigger := func() {
		select {
		case rerun <- struct{}{}:
		default:
		}
	}

	if app.config.Path() != "" {
		app.config.OnChange(func(*config.Config) { trigger() })
		if err := app.config.WatchFile(); err != nil {
			return newCommandError("check", "watching configuration", err, "Make sure the configuration directory exists.")
		}
		defer app.config.Stop()
	}

	check := func() {
		err := runCheck(cmd, app, opts)
		var exitErr *exitError
		if errors.As(err, &exitErr) && exitErr.code == exitInvalid {
			return
		}
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}

	check()
	app.log.WithFields(map[string]any{"manifest": manifestPath}).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) == manifestPath && event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				trigger()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			app.log.Error(err, "manifest watcher error")

		case <-rerun:
			fmt.Fprintln(cmd.OutOrStdout())
			check()
		}
	}
}
