// Package config loads runtime settings for the formcheck CLI using Viper.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional .formcheck.yml file, FORMCHECK_* environment variables
// (FORMCHECK_SERVER_ADDR, FORMCHECK_FORM_SUBMIT_MODE, ...) and command-line
// flags bound by the caller.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/goliatone/go-formcheck/pkg/form"
)

const (
	EnvPrefix         = "FORMCHECK"
	DefaultConfigName = ".formcheck"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server" yaml:"server"`
	Form      FormConfig      `mapstructure:"form" yaml:"form"`
	Page      PageConfig      `mapstructure:"page" yaml:"page"`
	Log       LogConfig       `mapstructure:"log" yaml:"log"`
	Templates TemplatesConfig `mapstructure:"templates" yaml:"templates"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr" yaml:"addr"`
	Live bool   `mapstructure:"live" yaml:"live"`
}

type FormConfig struct {
	ID             string       `mapstructure:"id" yaml:"id"`
	Fields         FieldsConfig `mapstructure:"fields" yaml:"fields"`
	SubmitMode     string       `mapstructure:"submit_mode" yaml:"submit_mode"`
	RecheckConfirm bool         `mapstructure:"recheck_confirm" yaml:"recheck_confirm"`
	SuccessMessage string       `mapstructure:"success_message" yaml:"success_message"`
}

type FieldsConfig struct {
	Name            string `mapstructure:"name" yaml:"name"`
	Email           string `mapstructure:"email" yaml:"email"`
	Phone           string `mapstructure:"phone" yaml:"phone"`
	Password        string `mapstructure:"password" yaml:"password"`
	ConfirmPassword string `mapstructure:"confirm_password" yaml:"confirm_password"`
}

type PageConfig struct {
	Title       string `mapstructure:"title" yaml:"title"`
	SubmitLabel string `mapstructure:"submit_label" yaml:"submit_label"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type TemplatesConfig struct {
	// Dir overrides the embedded page templates with files on disk.
	Dir   string `mapstructure:"dir" yaml:"dir"`
	Watch bool   `mapstructure:"watch" yaml:"watch"`
}

// Default returns the built-in settings.
func Default() Config {
	def := form.DefaultConfig()
	return Config{
		Server: ServerConfig{Addr: ":8080", Live: true},
		Form: FormConfig{
			ID: def.FormID,
			Fields: FieldsConfig{
				Name:            def.Fields.Name,
				Email:           def.Fields.Email,
				Phone:           def.Fields.Phone,
				Password:        def.Fields.Password,
				ConfirmPassword: def.Fields.ConfirmPassword,
			},
			SubmitMode:     string(def.SubmitMode),
			SuccessMessage: def.SuccessMessage,
		},
		Page: PageConfig{Title: "Create your account", SubmitLabel: "Register"},
		Log:  LogConfig{Level: "info", Format: "text"},
	}
}

// NewViper returns a Viper instance seeded with defaults and environment
// bindings. An explicit file must exist; otherwise .formcheck.yml is read
// from the working directory when present.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
		return v, nil
	}

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %s.yml: %w", DefaultConfigName, err)
		}
	}
	return v, nil
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if _, err := cfg.FormConfig(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FormConfig converts the form section into controller configuration.
func (c Config) FormConfig() (form.Config, error) {
	mode, err := form.ParseSubmitMode(c.Form.SubmitMode)
	if err != nil {
		return form.Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := form.DefaultConfig()
	cfg.FormID = c.Form.ID
	cfg.Fields = form.FieldIDs{
		Name:            c.Form.Fields.Name,
		Email:           c.Form.Fields.Email,
		Phone:           c.Form.Fields.Phone,
		Password:        c.Form.Fields.Password,
		ConfirmPassword: c.Form.Fields.ConfirmPassword,
	}
	cfg.SubmitMode = mode
	cfg.RecheckConfirmOnPasswordInput = c.Form.RecheckConfirm
	if c.Form.SuccessMessage != "" {
		cfg.SuccessMessage = c.Form.SuccessMessage
	}
	if err := cfg.Validate(); err != nil {
		return form.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// keys are registered as defaults so AutomaticEnv can resolve every one.
func setDefaults(v *viper.Viper, def Config) {
	v.SetDefault("server.addr", def.Server.Addr)
	v.SetDefault("server.live", def.Server.Live)
	v.SetDefault("form.id", def.Form.ID)
	v.SetDefault("form.fields.name", def.Form.Fields.Name)
	v.SetDefault("form.fields.email", def.Form.Fields.Email)
	v.SetDefault("form.fields.phone", def.Form.Fields.Phone)
	v.SetDefault("form.fields.password", def.Form.Fields.Password)
	v.SetDefault("form.fields.confirm_password", def.Form.Fields.ConfirmPassword)
	v.SetDefault("form.submit_mode", def.Form.SubmitMode)
	v.SetDefault("form.recheck_confirm", def.Form.RecheckConfirm)
	v.SetDefault("form.success_message", def.Form.SuccessMessage)
	v.SetDefault("page.title", def.Page.Title)
	v.SetDefault("page.submit_label", def.Page.SubmitLabel)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("templates.dir", def.Templates.Dir)
	v.SetDefault("templates.watch", def.Templates.Watch)
}
