package main

import (
	"fmt"
	"os"

	"github.com/mjwhitta/cli"
)

// Version info
var version = "0.1.0"

// Exit codes
const (
	ExitSuccess = iota
	ExitError
	ExitMissingArg
)

// Global flags
var flags struct {
	config       string
	debug        bool
	method       string
	realmSep     string
	componentSep string
	verbose      bool
}

// Command to run
var command string
var cmdArgs []string

func init() {
	// Configure cli
	cli.Align = true
	cli.Authors = []string{"kerbid authors"}
	cli.Banner = fmt.Sprintf("%s [OPTIONS] <command> [args...]", os.Args[0])
	cli.Info(
		"Kerbid - Kerberos SSO identity helper",
		"",
		"Resolves the current user's Kerberos principal name via",
		"single sign-on (SSPI on Windows, a credential cache or",
		"keytab login elsewhere) and decomposes it into primary,",
		"instance, and realm.",
	)
	cli.ExitStatus(
		"0 - Success",
		"1 - Error",
	)

	// Define flags (short, long, default, description)
	cli.Flag(&flags.config, "c", "config", "", "Preferences file (YAML)")
	cli.Flag(&flags.debug, "d", "debug", false, "Enable Kerberos protocol tracing")
	cli.Flag(&flags.method, "m", "method", "", "SSO method: file or keytab")
	cli.Flag(&flags.realmSep, "r", "realm-sep", "", "Realm separator override")
	cli.Flag(&flags.componentSep, "s", "component-sep", "", "Component separator override")
	cli.Flag(&flags.verbose, "v", "verbose", false, "Verbose logging")

	// Commands section
	cli.Section("Commands",
		"  name      Resolve and print the full principal name\n",
		"  primary   Resolve and print the primary component\n",
		"  instance  Resolve and print the instance component\n",
		"  realm     Resolve and print the realm component\n",
		"  parse     Decompose an explicit name without resolving\n",
		"  check     Diagnose the SSO configuration",
	)

	cli.Parse()

	// Get command from args
	if cli.NArg() == 0 {
		cli.Usage(ExitMissingArg)
	}

	command = cli.Arg(0)
	if cli.NArg() > 1 {
		cmdArgs = cli.Args()[1:]
	}
}

func main() {
	var err error
	switch command {
	case "name":
		err = cmdRole(roleName)
	case "primary":
		err = cmdRole(rolePrimary)
	case "instance":
		err = cmdRole(roleInstance)
	case "realm":
		err = cmdRole(roleRealm)
	case "parse":
		err = cmdParse(cmdArgs)
	case "check":
		err = cmdCheck(cmdArgs)
	case "version":
		fmt.Println(version)
	case "help":
		cli.Usage(ExitSuccess)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.Usage(ExitError)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
