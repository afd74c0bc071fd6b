// Package prefs loads kerbid user preferences.
//
// Preferences live in an optional YAML file
// ($XDG_CONFIG_HOME/kerbid/config.yaml, falling back to
// ~/.config/kerbid/config.yaml) and every key can be overridden
// through KERBID_-prefixed environment variables, e.g.
// KERBID_SSO_METHOD=keytab. A missing file is not an error; defaults
// apply.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerbid/kerbid/pkg/principal"
	"github.com/spf13/viper"
)

// SSO method names. Method "file" reads the user's credential cache;
// "keytab" logs in with a keytab and a configured principal.
const (
	MethodFile   = "file"
	MethodKeytab = "keytab"
)

// Preferences holds the resolved preference values.
type Preferences struct {
	// Debug enables low-level Kerberos protocol tracing.
	Debug bool

	// SSOMethod selects how the generic resolver obtains credentials.
	// Empty or unset means "file".
	SSOMethod string

	// SSOPrincipal is the client principal to log in as when the
	// keytab method is selected.
	SSOPrincipal string

	// KeytabPath is the keytab file for the keytab method.
	KeytabPath string

	// CCachePath explicitly locates a credential cache for the file
	// method. Empty means KRB5CCNAME, then the platform default.
	CCachePath string

	// Krb5ConfPath locates krb5.conf. Empty means /etc/krb5.conf.
	Krb5ConfPath string

	// RealmSeparator and ComponentSeparator override the parser
	// separators. Environment variables still take final precedence
	// via principal.SeparatorsFromEnv.
	RealmSeparator     string
	ComponentSeparator string
}

// Load reads preferences. An explicit path (from --config) must exist;
// the default location may be absent, in which case defaults are
// returned.
func Load(path string) (*Preferences, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("debug", false)
	v.SetDefault("sso.method", MethodFile)
	v.SetDefault("sso.principal", "")
	v.SetDefault("sso.keytab", "")
	v.SetDefault("sso.ccache", "")
	v.SetDefault("sso.krb5conf", "")
	v.SetDefault("separators.realm", "")
	v.SetDefault("separators.component", "")

	v.SetEnvPrefix("KERBID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(defaultConfigDir())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	p := &Preferences{
		Debug:              v.GetBool("debug"),
		SSOMethod:          v.GetString("sso.method"),
		SSOPrincipal:       v.GetString("sso.principal"),
		KeytabPath:         v.GetString("sso.keytab"),
		CCachePath:         v.GetString("sso.ccache"),
		Krb5ConfPath:       v.GetString("sso.krb5conf"),
		RealmSeparator:     v.GetString("separators.realm"),
		ComponentSeparator: v.GetString("separators.component"),
	}
	if p.SSOMethod == "" {
		p.SSOMethod = MethodFile
	}
	return p, nil
}

// Separators builds the parser configuration: defaults, then the
// preference overrides, then the environment overrides on top.
func (p *Preferences) Separators() principal.Separators {
	seps := principal.DefaultSeparators()
	if p.RealmSeparator != "" {
		seps.Realm = p.RealmSeparator
	}
	if p.ComponentSeparator != "" {
		seps.Component = p.ComponentSeparator
	}
	return principal.SeparatorsFromEnv(seps)
}

// defaultConfigDir resolves the kerbid config directory, honoring
// XDG_CONFIG_HOME.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kerbid")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "kerbid")
}
