package sso

import (
	"context"
	"strings"

	"github.com/kerbid/kerbid/pkg/prefs"
	"github.com/kerbid/kerbid/pkg/principal"
	"github.com/rs/zerolog"
)

// Resolver yields the current user's full Kerberos principal name.
//
// The boolean reports presence: (_, false, nil) means no principal is
// available right now, which callers must treat as a normal outcome.
// A non-nil error indicates misconfiguration or a platform API
// failure, never a plain "not logged in".
type Resolver interface {
	ResolveName(ctx context.Context) (string, bool, error)
}

// Config carries everything a resolver needs. Resolution never
// mutates process-wide state; debug tracing and credential selection
// are scoped here.
type Config struct {
	// Debug wires a protocol trace logger into the Kerberos client.
	Debug bool

	// Method is prefs.MethodFile or prefs.MethodKeytab. Ignored by
	// the Windows resolver.
	Method string

	// Principal is the client principal for the keytab method, e.g.
	// "host/daffodil.mit.edu@EXAMPLE.COM".
	Principal string

	// KeytabPath, CCachePath, and Krb5ConfPath locate credential
	// material. Empty values fall back to the platform defaults.
	KeytabPath   string
	CCachePath   string
	Krb5ConfPath string

	// Separators configures the realm separator used when scanning
	// candidate identities.
	Separators principal.Separators

	// Logger receives expected-absence causes at debug level.
	Logger zerolog.Logger
}

// ConfigFromPrefs builds a resolver Config from loaded preferences.
func ConfigFromPrefs(p *prefs.Preferences, logger zerolog.Logger) Config {
	return Config{
		Debug:        p.Debug,
		Method:       p.SSOMethod,
		Principal:    p.SSOPrincipal,
		KeytabPath:   p.KeytabPath,
		CCachePath:   p.CCachePath,
		Krb5ConfPath: p.Krb5ConfPath,
		Separators:   p.Separators(),
		Logger:       logger,
	}
}

// firstWithRealm returns the first candidate name containing the
// realm separator. Identities without a realm part are skipped; if
// none qualifies the result is absent.
func firstWithRealm(names []string, realmSep string) (string, bool) {
	for _, name := range names {
		if strings.Contains(name, realmSep) {
			return name, true
		}
	}
	return "", false
}

// fullName joins a client name and realm into a principal name. An
// empty realm leaves the name realm-less so the candidate scan can
// reject it.
func fullName(cname, realm, realmSep string) string {
	if realm == "" {
		return cname
	}
	return cname + realmSep + realm
}

// splitPrincipal separates the name-part from the realm at the first
// realm separator. No separator means no realm.
func splitPrincipal(name, realmSep string) (user, realm string) {
	if i := strings.Index(name, realmSep); i != -1 {
		return name[:i], name[i+len(realmSep):]
	}
	return name, ""
}

// Identity binds a Resolver to a separator configuration and exposes
// the decomposed principal components. Every accessor re-resolves the
// name; nothing is cached.
type Identity struct {
	resolver Resolver
	seps     principal.Separators
}

// NewIdentity returns an Identity backed by r.
func NewIdentity(r Resolver, seps principal.Separators) *Identity {
	return &Identity{resolver: r, seps: seps}
}

// Name resolves and returns the full principal name.
func (id *Identity) Name(ctx context.Context) (string, bool, error) {
	return id.resolver.ResolveName(ctx)
}

// Decompose resolves the name and parses it. The boolean reports
// whether a name was resolved at all.
func (id *Identity) Decompose(ctx context.Context) (principal.Principal, bool, error) {
	name, ok, err := id.resolver.ResolveName(ctx)
	if err != nil || !ok {
		return principal.Principal{}, false, err
	}
	return principal.Parse(name, id.seps), true, nil
}

// Primary resolves the name and returns its primary component.
func (id *Identity) Primary(ctx context.Context) (string, bool, error) {
	p, ok, err := id.Decompose(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	primary, ok := p.Primary()
	return primary, ok, nil
}

// Instance resolves the name and returns its instance component.
func (id *Identity) Instance(ctx context.Context) (string, bool, error) {
	p, ok, err := id.Decompose(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	instance, ok := p.Instance()
	return instance, ok, nil
}

// Realm resolves the name and returns its realm component.
func (id *Identity) Realm(ctx context.Context) (string, bool, error) {
	p, ok, err := id.Decompose(ctx)
	if err != nil || !ok {
		return "", false, err
	}
	realm, ok := p.Realm()
	return realm, ok, nil
}
