package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/bulmakit/pkg/options"
)

// Source supplies the current configuration. *Holder is a Source; so is Static.
type Source interface {
	Get() *Config
}

// Static is a Source that never changes.
type Static struct {
	Config *Config
}

// Get returns the wrapped configuration, or the defaults when it is nil.
func (s Static) Get() *Config {
	if s.Config == nil {
		return Default()
	}
	return s.Config
}

// RegisterValidators adds the configuration-backed named validators to
// registry. Each check reads src on every call, so reloads take effect
// without re-registering.
func RegisterValidators(registry *options.Registry, src Source) error {
	checks := map[string]options.CheckFunc{
		"color": func(value any, name string) error {
			if s, ok := value.(string); !ok || !src.Get().HasColor(s) {
				return fmt.Errorf("%s is not a valid color name", name)
			}
			return nil
		},
		"size": func(value any, name string) error {
			if s, ok := value.(string); !ok || !src.Get().HasSize(s) {
				return fmt.Errorf("%s is not a valid size", name)
			}
			return nil
		},
		"icon_family": func(value any, name string) error {
			if s, ok := value.(string); !ok || !src.Get().HasIconFamily(s) {
				return fmt.Errorf("%s is not a valid icon family", name)
			}
			return nil
		},
	}

	for _, name := range []string{"color", "size", "icon_family"} {
		if err := registry.Register(name, checks[name]); err != nil {
			return fmt.Errorf("register config validators: %w", err)
		}
	}
	return nil
}
