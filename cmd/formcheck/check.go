package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formcheck/pkg/form"
	"github.com/goliatone/go-formcheck/pkg/render"
	"github.com/goliatone/go-formcheck/pkg/renderers/report"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
	"github.com/goliatone/go-formcheck/pkg/rules"
)

func newCheckCmd(flags *globalFlags) *cobra.Command {
	var (
		file   string
		format string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Submit values from a YAML or JSON file and print the report",
		Long: `check reads the five field values from a YAML (or JSON) file, submits
them and prints the resulting report. The exit status is 1 when the form is
rejected.

  name: Ada Lovelace
  email: ada@example.com
  phone: "9876543210"
  password: Secret1!
  confirmPassword: Secret1!`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, flags)
			if err != nil {
				return err
			}
			values, err := readValues(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			out, accepted, err := rt.check(cmd, values, format)
			if err != nil {
				return err
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
			if !accepted {
				return errRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "values file, - reads stdin")
	cmd.Flags().StringVar(&format, "format", "text", "report format (text, json, vanilla)")
	return cmd
}

func readValues(stdin io.Reader, file string) (rules.Values, error) {
	var (
		raw []byte
		err error
	)
	if file == "" || file == "-" {
		raw, err = io.ReadAll(stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return rules.Values{}, fmt.Errorf("read values: %w", err)
	}

	var values rules.Values
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&values); err != nil && err != io.EOF {
		return rules.Values{}, fmt.Errorf("decode values: %w", err)
	}
	return values, nil
}

func (rt *runtime) check(cmd *cobra.Command, values rules.Values, format string) ([]byte, bool, error) {
	pages, err := rt.pages()
	if err != nil {
		return nil, false, err
	}
	registry, err := render.NewRegistry(report.JSONRenderer{Indent: "  "}, report.TextRenderer{}, pages)
	if err != nil {
		return nil, false, err
	}
	renderer, err := registry.Get(format)
	if err != nil {
		return nil, false, err
	}

	page, err := rt.page()
	if err != nil {
		return nil, false, err
	}
	doc, err := pages.Document(page)
	if err != nil {
		return nil, false, err
	}

	notes := &form.RecordingNotifier{}
	controller, err := form.New(doc,
		form.WithConfig(page.Form),
		form.WithLogger(rt.logger),
		form.WithNotifier(form.Notifiers{notes, vanilla.StatusNotifier{Doc: doc, ID: page.StatusID}}),
	)
	if err != nil {
		return nil, false, err
	}
	outcome, err := controller.Submit(cmd.Context(), values)
	if err != nil {
		return nil, false, err
	}

	rep := render.Report{
		Outcome:       &outcome,
		Snapshot:      controller.Snapshot(),
		Notifications: notes.Messages(),
	}
	if renderer.Name() == pages.Name() {
		if rep.Document, err = controller.HTML(); err != nil {
			return nil, false, err
		}
	}
	out, err := renderer.Render(cmd.Context(), rep)
	if err != nil {
		return nil, false, err
	}
	return out, outcome.Accepted, nil
}
