// Package principal decomposes Kerberos V5 principal names.
//
// # Overview
//
// A Kerberos principal name follows the grammar:
//
//	principal-name := primary [ "/" instance ] [ "@" realm ]
//
// Examples:
//
//	jennifer@ATHENA.MIT.EDU            primary=jennifer, realm=ATHENA.MIT.EDU
//	jennifer/admin@ATHENA.MIT.EDU      primary=jennifer, instance=admin
//	host/daffodil.mit.edu@EXAMPLE.COM  primary=host, instance=daffodil.mit.edu
//
// Parsing is a pure string-slicing operation. Separators are
// configurable (some deployments use non-standard characters) and can
// be overridden through the environment; see Separators.
package principal
