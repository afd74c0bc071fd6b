package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kerbid/kerbid/pkg/principal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every KERBID variable the tests touch so ambient
// environment doesn't leak between runs.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"KERBID_DEBUG", "KERBID_SSO_METHOD", "KERBID_SSO_PRINCIPAL",
		"KERBID_SSO_KEYTAB", "KERBID_SSO_CCACHE", "KERBID_SSO_KRB5CONF",
		"KERBID_SEPARATORS_REALM", "KERBID_SEPARATORS_COMPONENT",
		principal.EnvRealmSeparator, principal.EnvComponentSeparator,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	p, err := Load("")
	require.NoError(t, err)

	assert.False(t, p.Debug)
	assert.Equal(t, MethodFile, p.SSOMethod)
	assert.Empty(t, p.SSOPrincipal)
	assert.Empty(t, p.KeytabPath)
	assert.Equal(t, principal.DefaultSeparators(), p.Separators())
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
debug: true
sso:
  method: keytab
  principal: host/daffodil.mit.edu@EXAMPLE.COM
  keytab: /etc/krb5.keytab
separators:
  realm: "#"
  component: ":"
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	p, err := Load(path)
	require.NoError(t, err)

	assert.True(t, p.Debug)
	assert.Equal(t, MethodKeytab, p.SSOMethod)
	assert.Equal(t, "host/daffodil.mit.edu@EXAMPLE.COM", p.SSOPrincipal)
	assert.Equal(t, "/etc/krb5.keytab", p.KeytabPath)
	assert.Equal(t, principal.Separators{Realm: "#", Component: ":"}, p.Separators())
}

func TestLoadXDGConfigDir(t *testing.T) {
	clearEnv(t)

	xdg := t.TempDir()
	dir := filepath.Join(xdg, "kerbid")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := []byte("sso:\n  method: keytab\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o600))
	t.Setenv("XDG_CONFIG_HOME", xdg)

	p, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MethodKeytab, p.SSOMethod)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KERBID_DEBUG", "true")
	t.Setenv("KERBID_SSO_METHOD", "keytab")

	p, err := Load("")
	require.NoError(t, err)

	assert.True(t, p.Debug)
	assert.Equal(t, MethodKeytab, p.SSOMethod)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestEmptyMethodDefaultsToFile(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`sso: {method: ""}`), 0o600))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, MethodFile, p.SSOMethod)
}

func TestSeparatorsEnvBeatsPrefs(t *testing.T) {
	clearEnv(t)
	t.Setenv(principal.EnvRealmSeparator, "%")

	p := &Preferences{RealmSeparator: "#", ComponentSeparator: ":"}
	seps := p.Separators()
	assert.Equal(t, "%", seps.Realm)
	assert.Equal(t, ":", seps.Component)
}
