package sso

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKrb5Conf = `[libdefaults]
  default_realm = EXAMPLE.COM

[realms]
  EXAMPLE.COM = {
    kdc = kdc1.example.com:88
  }
`

func TestLoadKrb5ConfigExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krb5.conf")
	require.NoError(t, os.WriteFile(path, []byte(testKrb5Conf), 0o600))

	cfg, err := loadKrb5Config(context.Background(), path, "")
	require.NoError(t, err)
	assert.Equal(t, "EXAMPLE.COM", cfg.LibDefaults.DefaultRealm)
}

func TestLoadKrb5ConfigExplicitPathMissing(t *testing.T) {
	_, err := loadKrb5Config(context.Background(), filepath.Join(t.TempDir(), "nope.conf"), "EXAMPLE.COM")
	assert.Error(t, err)
}

func TestLoadKrb5ConfigRealmFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krb5.conf")
	require.NoError(t, os.WriteFile(path, []byte("[libdefaults]\n"), 0o600))

	cfg, err := loadKrb5Config(context.Background(), path, "ATHENA.MIT.EDU")
	require.NoError(t, err)
	assert.Equal(t, "ATHENA.MIT.EDU", cfg.LibDefaults.DefaultRealm)
}

func TestSynthesizeKrb5ConfigNeedsRealm(t *testing.T) {
	_, err := synthesizeKrb5Config(context.Background(), "")
	assert.Error(t, err)
}
