//go:build windows
// +build windows

package sso

import (
	"context"
	"fmt"

	"github.com/alexbrainman/sspi/negotiate"
	"golang.org/x/sys/windows"
)

// nativeResolver is the Windows variant: the logon session already
// holds Kerberos credentials, so resolution is an SSPI handshake plus
// a UPN lookup. No preferences are consulted.
type nativeResolver struct {
	cfg Config
}

// NewResolver returns the SSPI-backed resolver for Windows.
func NewResolver(cfg Config) Resolver {
	return &nativeResolver{cfg: cfg}
}

// ResolveName acquires the current user's security package
// credentials, initializes a client context against the account's own
// principal name, and returns that name. Unlike the generic variant,
// failures here mean the platform security API itself misbehaved, so
// they surface as errors.
func (r *nativeResolver) ResolveName(ctx context.Context) (string, bool, error) {
	cred, err := negotiate.AcquireCurrentUserCredentials()
	if err != nil {
		return "", false, fmt.Errorf("acquire SSPI credentials: %w", err)
	}
	defer cred.Release()

	upn, err := currentUserPrincipalName()
	if err != nil {
		return "", false, err
	}

	secCtx, _, err := negotiate.NewClientContext(cred, upn)
	if err != nil {
		return "", false, fmt.Errorf("initialize SSPI context for %s: %w", upn, err)
	}
	defer secCtx.Release()

	return upn, true, nil
}

// currentUserPrincipalName asks the OS for the logon account's UPN
// (user@DOMAIN form).
func currentUserPrincipalName() (string, error) {
	n := uint32(256)
	for {
		buf := make([]uint16, n)
		err := windows.GetUserNameEx(windows.NameUserPrincipal, &buf[0], &n)
		if err == nil {
			return windows.UTF16ToString(buf), nil
		}
		if err != windows.ERROR_MORE_DATA {
			return "", fmt.Errorf("query user principal name: %w", err)
		}
	}
}
