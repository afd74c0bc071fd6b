package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kerbid/kerbid/internal/network"
	"github.com/kerbid/kerbid/pkg/prefs"
	"github.com/kerbid/kerbid/pkg/principal"
	"github.com/kerbid/kerbid/pkg/sso"
	"github.com/rs/zerolog"
)

// role selects which part of the resolved name a command prints.
type role int

const (
	roleName role = iota
	rolePrimary
	roleInstance
	roleRealm
)

// buildConfig loads preferences, applies flag overrides, and wires the
// logger.
func buildConfig() (sso.Config, *prefs.Preferences, error) {
	p, err := prefs.Load(flags.config)
	if err != nil {
		return sso.Config{}, nil, err
	}

	// Flags beat preferences.
	if flags.debug {
		p.Debug = true
	}
	if flags.method != "" {
		p.SSOMethod = flags.method
	}
	if flags.realmSep != "" {
		p.RealmSeparator = flags.realmSep
	}
	if flags.componentSep != "" {
		p.ComponentSeparator = flags.componentSep
	}

	return sso.ConfigFromPrefs(p, newLogger(p.Debug)), p, nil
}

// newLogger builds the console logger. Expected-absence causes are
// logged at debug, so tracing only shows up when asked for.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if flags.verbose {
		level = zerolog.InfoLevel
	}
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// cmdRole resolves the principal name and prints one component.
// Absence prints nothing and exits clean: not being logged in is a
// normal outcome, not a failure.
func cmdRole(r role) error {
	cfg, _, err := buildConfig()
	if err != nil {
		return err
	}

	id := sso.NewIdentity(sso.NewResolver(cfg), cfg.Separators)
	ctx := context.Background()

	var lookup func(context.Context) (string, bool, error)
	switch r {
	case roleName:
		lookup = id.Name
	case rolePrimary:
		lookup = id.Primary
	case roleInstance:
		lookup = id.Instance
	case roleRealm:
		lookup = id.Realm
	}

	value, ok, err := lookup(ctx)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println(value)
	}
	return nil
}

// cmdParse decomposes an explicit name without resolving anything.
func cmdParse(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("principal name required (e.g. jennifer/admin@ATHENA.MIT.EDU)")
	}

	cfg, _, err := buildConfig()
	if err != nil {
		return err
	}

	p := principal.Parse(args[0], cfg.Separators)
	fmt.Printf("name:     %s\n", p.Name())
	fmt.Printf("primary:  %s\n", orDash(p.Primary()))
	fmt.Printf("instance: %s\n", orDash(p.Instance()))
	fmt.Printf("realm:    %s\n", orDash(p.Realm()))
	return nil
}

// cmdCheck diagnoses the SSO setup: preferences, credential material,
// resolution, and KDC reachability for the resolved realm.
func cmdCheck(args []string) error {
	cfg, p, err := buildConfig()
	if err != nil {
		return err
	}
	ctx := context.Background()

	fmt.Printf("[*] sso method: %s\n", p.SSOMethod)
	checkCredentialMaterial(p)

	id := sso.NewIdentity(sso.NewResolver(cfg), cfg.Separators)
	name, ok, err := id.Name(ctx)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("[!] no principal resolved (not logged in, or SSO not configured)")
		return nil
	}
	fmt.Printf("[+] principal: %s\n", name)

	realm, ok := principal.Parse(name, cfg.Separators).Realm()
	if !ok || realm == "" {
		fmt.Println("[!] resolved name carries no realm, skipping KDC checks")
		return nil
	}

	kdcs, err := network.DiscoverKDC(ctx, realm)
	if err != nil {
		fmt.Printf("[!] KDC discovery failed: %v\n", err)
		return nil
	}
	for _, kdc := range kdcs {
		fmt.Printf("[*] discovered KDC: %s (priority %d)\n", kdc.Addr(), kdc.Priority)
	}

	kdc, err := network.ProbeAny(ctx, kdcs)
	if err != nil {
		fmt.Printf("[!] no KDC reachable: %v\n", err)
		return nil
	}
	fmt.Printf("[+] KDC reachable: %s\n", kdc.Addr())
	return nil
}

// checkCredentialMaterial reports whether the files the selected
// method depends on exist.
func checkCredentialMaterial(p *prefs.Preferences) {
	switch p.SSOMethod {
	case prefs.MethodFile:
		path, err := sso.CCachePath(p.CCachePath)
		if err != nil {
			fmt.Printf("[!] %v\n", err)
			return
		}
		reportFile("credential cache", path)
	case prefs.MethodKeytab:
		if p.SSOPrincipal == "" {
			fmt.Println("[!] keytab method needs sso.principal")
		}
		path := p.KeytabPath
		if path == "" {
			path = "/etc/krb5.keytab"
		}
		reportFile("keytab", path)
	}
}

func reportFile(kind, path string) {
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("[!] %s missing: %s\n", kind, path)
		return
	}
	fmt.Printf("[+] %s: %s\n", kind, path)
}

// orDash renders an absent component as "-".
func orDash(value string, ok bool) string {
	if !ok {
		return "-"
	}
	return value
}
