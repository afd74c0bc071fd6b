package network

import (
	"context"
	"fmt"
	"net"
	"time"
)

// DefaultProbeTimeout bounds a single KDC reachability check.
const DefaultProbeTimeout = 5 * time.Second

// Probe checks that a KDC answers on its TCP port. It dials and
// immediately closes; no Kerberos message is exchanged.
func Probe(ctx context.Context, addr string) error {
	dialer := &net.Dialer{Timeout: DefaultProbeTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("KDC %s unreachable: %w", addr, err)
	}
	return conn.Close()
}

// ProbeAny probes the given KDCs in order and returns the first one
// that answers.
func ProbeAny(ctx context.Context, kdcs []KDCInfo) (KDCInfo, error) {
	var lastErr error
	for _, kdc := range kdcs {
		if err := Probe(ctx, kdc.Addr()); err != nil {
			lastErr = err
			continue
		}
		return kdc, nil
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no KDCs to probe")
	}
	return KDCInfo{}, lastErr
}
