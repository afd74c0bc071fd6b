package sso

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"

	krb5config "github.com/jcmturner/gokrb5/v8/config"
	"github.com/kerbid/kerbid/internal/network"
)

// defaultKrb5Conf is the conventional library configuration path.
const defaultKrb5Conf = "/etc/krb5.conf"

// loadKrb5Config loads the Kerberos library configuration. An
// explicitly configured path must parse. Without one, /etc/krb5.conf
// is used when present; otherwise a minimal configuration is
// synthesized for realm, with KDCs taken from DNS SRV discovery.
func loadKrb5Config(ctx context.Context, path, realm string) (*krb5config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultKrb5Conf
		if _, err := os.Stat(path); err != nil {
			return synthesizeKrb5Config(ctx, realm)
		}
	}

	cfg, err := krb5config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("parse krb5.conf %s: %w", path, err)
	}
	if cfg.LibDefaults.DefaultRealm == "" && realm != "" {
		cfg.LibDefaults.DefaultRealm = realm
	}
	return cfg, nil
}

// synthesizeKrb5Config builds a configuration from scratch when no
// krb5.conf exists. DNSLookupKDC is left on so the client can follow
// SRV records for cross-realm referrals too.
func synthesizeKrb5Config(ctx context.Context, realm string) (*krb5config.Config, error) {
	if realm == "" {
		return nil, fmt.Errorf("no krb5.conf at %s and no realm to discover KDCs for", defaultKrb5Conf)
	}

	cfg := krb5config.New()
	cfg.LibDefaults.DefaultRealm = realm
	cfg.LibDefaults.DNSLookupKDC = true

	kdcs, err := network.DiscoverKDC(ctx, realm)
	if err != nil {
		return nil, fmt.Errorf("discover KDCs for %s: %w", realm, err)
	}

	realmCfg := krb5config.Realm{Realm: realm}
	for _, kdc := range kdcs {
		realmCfg.KDC = append(realmCfg.KDC, net.JoinHostPort(kdc.Host, strconv.Itoa(kdc.Port)))
	}
	cfg.Realms = append(cfg.Realms, realmCfg)
	return cfg, nil
}
