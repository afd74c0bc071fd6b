//go:build !windows
// +build !windows

package sso

import (
	"context"
	"fmt"
	"log"

	"github.com/jcmturner/gokrb5/v8/client"
	"github.com/jcmturner/gokrb5/v8/credentials"
	"github.com/jcmturner/gokrb5/v8/keytab"
	"github.com/kerbid/kerbid/pkg/prefs"
	"github.com/rs/zerolog"
)

// defaultKeytab is the conventional system keytab path.
const defaultKeytab = "/etc/krb5.keytab"

// loginResolver is the generic variant: a single gokrb5 login attempt
// from either the user's credential cache or a keytab.
type loginResolver struct {
	cfg Config
}

// NewResolver returns the login-based resolver for this platform.
func NewResolver(cfg Config) Resolver {
	return &loginResolver{cfg: cfg}
}

// ResolveName performs one login attempt and returns the authenticated
// client principal. Login failure is an absent result, not an error.
func (r *loginResolver) ResolveName(ctx context.Context) (string, bool, error) {
	switch r.cfg.Method {
	case "", prefs.MethodFile:
		return r.resolveFromCCache(ctx)
	case prefs.MethodKeytab:
		return r.resolveFromKeytab(ctx)
	default:
		return "", false, fmt.Errorf("unknown sso method %q", r.cfg.Method)
	}
}

// resolveFromCCache builds a client from the user's credential cache,
// the moral equivalent of whatever kinit last produced.
func (r *loginResolver) resolveFromCCache(ctx context.Context) (string, bool, error) {
	path, err := CCachePath(r.cfg.CCachePath)
	if err != nil {
		r.cfg.Logger.Debug().Err(err).Msg("credential cache unavailable")
		return "", false, nil
	}

	cc, err := credentials.LoadCCache(path)
	if err != nil {
		if r.cfg.CCachePath != "" {
			// An explicitly configured cache that can't be read is a
			// configuration problem, not a plain "not logged in".
			return "", false, fmt.Errorf("load credential cache %s: %w", path, err)
		}
		r.cfg.Logger.Debug().Err(err).Str("path", path).Msg("no readable credential cache")
		return "", false, nil
	}

	krbCfg, err := loadKrb5Config(ctx, r.cfg.Krb5ConfPath, cc.GetClientRealm())
	if err != nil {
		return "", false, err
	}

	cl, err := client.NewFromCCache(cc, krbCfg, r.clientSettings()...)
	if err != nil {
		r.cfg.Logger.Debug().Err(err).Msg("credential cache login failed")
		return "", false, nil
	}
	defer cl.Destroy()

	return r.pickPrincipal(fullName(cl.Credentials.CName().PrincipalNameString(), cl.Credentials.Realm(), r.cfg.Separators.Realm))
}

// resolveFromKeytab logs in with the configured client principal and
// keytab.
func (r *loginResolver) resolveFromKeytab(ctx context.Context) (string, bool, error) {
	if r.cfg.Principal == "" {
		r.cfg.Logger.Debug().Msg("keytab method selected but no client principal configured")
		return "", false, nil
	}

	ktPath := r.cfg.KeytabPath
	if ktPath == "" {
		ktPath = defaultKeytab
	}
	kt, err := keytab.Load(ktPath)
	if err != nil {
		return "", false, fmt.Errorf("load keytab %s: %w", ktPath, err)
	}

	user, realm := splitPrincipal(r.cfg.Principal, r.cfg.Separators.Realm)
	krbCfg, err := loadKrb5Config(ctx, r.cfg.Krb5ConfPath, realm)
	if err != nil {
		return "", false, err
	}
	if realm == "" {
		realm = krbCfg.LibDefaults.DefaultRealm
	}

	cl := client.NewWithKeytab(user, realm, kt, krbCfg, r.clientSettings()...)
	if err := cl.Login(); err != nil {
		r.cfg.Logger.Debug().Err(err).Str("principal", r.cfg.Principal).Msg("keytab login failed")
		return "", false, nil
	}
	defer cl.Destroy()

	return r.pickPrincipal(fullName(cl.Credentials.CName().PrincipalNameString(), cl.Credentials.Realm(), r.cfg.Separators.Realm))
}

// pickPrincipal applies the candidate scan: the first identity whose
// name carries a realm component wins, otherwise the result is absent.
func (r *loginResolver) pickPrincipal(candidates ...string) (string, bool, error) {
	name, ok := firstWithRealm(candidates, r.cfg.Separators.Realm)
	if !ok {
		r.cfg.Logger.Debug().Strs("candidates", candidates).Msg("no identity with a realm component")
		return "", false, nil
	}
	return name, true, nil
}

// clientSettings wires debug tracing into the gokrb5 client when the
// preference asks for it.
func (r *loginResolver) clientSettings() []func(*client.Settings) {
	if !r.cfg.Debug {
		return nil
	}
	trace := r.cfg.Logger.Level(zerolog.DebugLevel)
	return []func(*client.Settings){client.Logger(log.New(trace, "", 0))}
}
