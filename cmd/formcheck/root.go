package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formcheck/internal/config"
	"github.com/goliatone/go-formcheck/internal/logging"
	"github.com/goliatone/go-formcheck/pkg/renderers/vanilla"
)

// errRejected makes the process exit non-zero without printing an error;
// the report already explains the rejection.
var errRejected = errors.New("form rejected")

type globalFlags struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:   "formcheck",
		Short: "Validate a sign-up form in the browser, over HTTP or in the terminal",
		Long: `formcheck validates a five field sign-up form (full name, email, phone,
password and confirmation) and renders inline feedback.

  formcheck serve                     Serve the form with live validation
  formcheck prompt                    Fill the form in the terminal
  formcheck check --file values.yml   Validate values from a file

Settings are read from .formcheck.yml and FORMCHECK_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default is .formcheck.yml)")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	pf.String("log-format", "", "log format (text, json)")
	pf.String("submit-mode", "", "submit validation mode (all, short-circuit)")
	pf.Bool("recheck-confirm", false, "re-validate the confirmation when the password changes")

	cmd.AddCommand(
		newServeCmd(flags),
		newPromptCmd(flags),
		newCheckCmd(flags),
	)
	return cmd
}

type runtime struct {
	cfg    config.Config
	logger *slog.Logger
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"log-format":      "log.format",
	"submit-mode":     "form.submit_mode",
	"recheck-confirm": "form.recheck_confirm",
	"addr":            "server.addr",
	"templates":       "templates.dir",
	"watch":           "templates.watch",
}

func loadRuntime(cmd *cobra.Command, flags *globalFlags) (*runtime, error) {
	v, err := config.NewViper(flags.configFile)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, logger: logger}, nil
}

// bindFlags binds only flags the user set so file and environment values
// are not shadowed by flag defaults.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			bindErr = fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func (rt *runtime) pages() (*vanilla.Renderer, error) {
	var opts []vanilla.Option
	if dir := rt.cfg.Templates.Dir; dir != "" {
		opts = append(opts, vanilla.WithTemplatesDir(dir))
	}
	return vanilla.New(opts...)
}

func (rt *runtime) page() (vanilla.Page, error) {
	formCfg, err := rt.cfg.FormConfig()
	if err != nil {
		return vanilla.Page{}, err
	}
	page := vanilla.DefaultPage()
	page.Form = formCfg
	if rt.cfg.Page.Title != "" {
		page.Title = rt.cfg.Page.Title
	}
	if rt.cfg.Page.SubmitLabel != "" {
		page.SubmitLabel = rt.cfg.Page.SubmitLabel
	}
	return page, nil
}
