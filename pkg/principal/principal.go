package principal

import (
	"os"
	"strings"
)

// Environment overrides for the separator characters.
const (
	EnvRealmSeparator     = "KERBID_REALM_SEPARATOR"
	EnvComponentSeparator = "KERBID_COMPONENT_SEPARATOR"
)

// Separators configures the two separator tokens used when slicing a
// principal name. The zero value is not usable; start from
// DefaultSeparators.
type Separators struct {
	// Realm separates the realm from the rest of the name. Default "@".
	Realm string
	// Component separates the primary from the instance. Default "/".
	Component string
}

// DefaultSeparators returns the standard Kerberos V5 separators.
func DefaultSeparators() Separators {
	return Separators{Realm: "@", Component: "/"}
}

// SeparatorsFromEnv applies the KERBID_REALM_SEPARATOR and
// KERBID_COMPONENT_SEPARATOR environment overrides on top of base.
// Unset or empty variables leave the base value untouched.
func SeparatorsFromEnv(base Separators) Separators {
	if v := os.Getenv(EnvRealmSeparator); v != "" {
		base.Realm = v
	}
	if v := os.Getenv(EnvComponentSeparator); v != "" {
		base.Component = v
	}
	return base
}

// Principal is the decomposition of a single principal name. It is
// immutable; each accessor returns the component and whether it is
// present. Absence is a normal outcome, not an error: a name without
// a realm separator has no primary and no instance.
type Principal struct {
	name string

	primary  string
	instance string
	realm    string

	hasPrimary  bool
	hasInstance bool
	hasRealm    bool
}

// Parse decomposes name using the given separators.
//
// The rules are deliberately literal:
//
//  1. Find the first realm separator at index r. If there is none,
//     the entire name is treated as a realm only.
//  2. Find the first component separator at index c, searching only
//     the substring before r.
//  3. primary is name[:c] if c was found, else name[:r].
//     instance is name[c+1:r] if c was found, else absent. Further
//     component separators stay inside the instance.
//     realm is name[r+1:].
//
// Degenerate separator configurations (identical tokens, component
// separator only after the realm separator) follow the same index
// comparison with no special-casing.
func Parse(name string, seps Separators) Principal {
	p := Principal{name: name}

	r := strings.Index(name, seps.Realm)
	if r == -1 {
		// The entire name is a realm.
		p.realm = name
		p.hasRealm = true
		return p
	}

	p.realm = name[r+len(seps.Realm):]
	p.hasRealm = true

	c := strings.Index(name[:r], seps.Component)
	if c == -1 {
		// There's only a primary.
		p.primary = name[:r]
		p.hasPrimary = true
		return p
	}

	p.primary = name[:c]
	p.hasPrimary = true
	p.instance = name[c+len(seps.Component) : r]
	p.hasInstance = true
	return p
}

// Name returns the full principal name the decomposition was built
// from.
func (p Principal) Name() string { return p.name }

// Primary returns the primary component (typically a username, or a
// service type such as "host").
func (p Principal) Primary() (string, bool) { return p.primary, p.hasPrimary }

// Instance returns the instance component (a role such as "admin" or
// a fully qualified hostname). If the name carries multiple components
// before the realm, all of them are returned as a single instance
// string, separators included.
func (p Principal) Instance() (string, bool) { return p.instance, p.hasInstance }

// Realm returns the realm component (commonly an upper-cased DNS
// domain).
func (p Principal) Realm() (string, bool) { return p.realm, p.hasRealm }

// String implements fmt.Stringer.
func (p Principal) String() string { return p.name }
