// Package network locates and probes Kerberos KDCs.
//
// It backs two things: synthesizing a library configuration when no
// krb5.conf exists, and the CLI's SSO diagnostics. Discovery follows
// the standard _kerberos._tcp.<realm> (and _udp fallback) DNS SRV
// records.
package network
