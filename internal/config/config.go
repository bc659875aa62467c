// Package config holds the component library configuration: the palette,
// sizes and icon families that named validators accept.
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	bulmaerrors "github.com/alexisbeaulieu97/bulmakit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identifierPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)
)

// Config is the configuration document.
type Config struct {
	Colors            []string `yaml:"colors" validate:"required,min=1,dive,css_identifier"`
	Sizes             []string `yaml:"sizes" validate:"required,min=1,dive,css_identifier"`
	IconFamilies      []string `yaml:"icon_families" validate:"required,min=1,dive,css_identifier"`
	DefaultIconFamily string   `yaml:"default_icon_family" validate:"required,css_identifier"`
	Logging           Logging  `yaml:"logging,omitempty"`
}

// Logging configures the CLI logger.
type Logging struct {
	Level         string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	HumanReadable bool   `yaml:"human_readable,omitempty"`
}

// Default returns the stock Bulma configuration.
func Default() *Config {
	return &Config{
		Colors: []string{
			"white", "black", "light", "dark", "text", "ghost",
			"primary", "link", "info", "success", "warning", "danger",
		},
		Sizes:             []string{"small", "normal", "medium", "large"},
		IconFamilies:      []string{"fas", "far", "fab", "fal", "fad"},
		DefaultIconFamily: "fas",
		Logging:           Logging{Level: "info", HumanReadable: true},
	}
}

// HasColor reports whether name is a configured color.
func (c *Config) HasColor(name string) bool { return slices.Contains(c.Colors, name) }

// HasSize reports whether name is a configured size.
func (c *Config) HasSize(name string) bool { return slices.Contains(c.Sizes, name) }

// HasIconFamily reports whether name is a configured icon family.
func (c *Config) HasIconFamily(name string) bool { return slices.Contains(c.IconFamilies, name) }

// ParseConfig loads a configuration file on top of the defaults and validates it.
func ParseConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, bulmaerrors.NewParseError(path, 0, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, bulmaerrors.NewYAMLError(path, err)
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("css_identifier", func(fl validator.FieldLevel) bool {
			return identifierPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation, reporting every
// problem at once.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return bulmaerrors.NewDefinitionError("config", []string{"configuration is nil"})
	}

	var failures []string
	if err := validatorInstance().Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if !errors.As(err, &ves) {
			return bulmaerrors.NewDefinitionError("config", []string{err.Error()})
		}
		for _, fe := range ves {
			failures = append(failures, fmt.Sprintf("%s failed validation for tag '%s'", yamlishFieldName(fe), fe.Tag()))
		}
	}

	if cfg.DefaultIconFamily != "" && !cfg.HasIconFamily(cfg.DefaultIconFamily) {
		failures = append(failures, fmt.Sprintf("default_icon_family %q is not one of the icon families", cfg.DefaultIconFamily))
	}

	if len(failures) > 0 {
		return bulmaerrors.NewDefinitionError("config", failures)
	}
	return nil
}

// yamlishFieldName turns "Config.IconFamilies[0]" into "icon_families[0]".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snake(part)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 && s[i-1] != '[' {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
