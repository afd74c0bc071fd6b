// Package sso resolves the current user's Kerberos principal name via
// single sign-on.
//
// # Overview
//
// Two resolver variants exist, selected by build tag:
//
//   - Windows: SSPI. The current logon's Kerberos credentials are
//     acquired through the Negotiate package and the account's user
//     principal name is returned. No configuration required.
//   - Everywhere else: gokrb5. A single login attempt is made from
//     either the user's credential cache (method "file", the default)
//     or a keytab (method "keytab"), and the authenticated client
//     principal is returned.
//
// Both variants share one result shape: (name, ok, err). A missing
// principal — login failed, SSO not configured, no identity carrying
// a realm — is ok=false with a nil error, because absence is a normal
// outcome. Errors are reserved for misconfiguration and platform API
// failures.
//
// Identity layers the principal decomposer on top of a Resolver; each
// accessor re-resolves, so callers always observe the live SSO state.
package sso
