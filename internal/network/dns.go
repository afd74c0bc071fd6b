package network

import (
	"context"
	"fmt"
	"net"
	"sort"
	"strings"
)

// KDCInfo describes one KDC advertised for a realm.
//
// SRV records carry a priority (lower is preferred) and a weight
// (load balancing within a priority), e.g.:
//
//	_kerberos._tcp.example.com. 600 IN SRV 0 100 88 kdc1.example.com.
type KDCInfo struct {
	Host     string
	Port     int
	Priority int
	Weight   int
}

// Addr returns the host:port form of the KDC.
func (k KDCInfo) Addr() string {
	return fmt.Sprintf("%s:%d", k.Host, k.Port)
}

// DiscoverKDC finds the KDCs for a realm via DNS SRV, TCP records
// first with a UDP fallback, sorted by priority then weight.
func DiscoverKDC(ctx context.Context, realm string) ([]KDCInfo, error) {
	domain := strings.ToLower(realm)

	_, addrs, err := net.DefaultResolver.LookupSRV(ctx, "kerberos", "tcp", domain)
	if err != nil {
		_, addrs, err = net.DefaultResolver.LookupSRV(ctx, "kerberos", "udp", domain)
		if err != nil {
			return nil, fmt.Errorf("no _kerberos SRV records for %s: %w", realm, err)
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no KDCs advertised for %s", realm)
	}

	kdcs := make([]KDCInfo, len(addrs))
	for i, addr := range addrs {
		kdcs[i] = KDCInfo{
			Host:     strings.TrimSuffix(addr.Target, "."),
			Port:     int(addr.Port),
			Priority: int(addr.Priority),
			Weight:   int(addr.Weight),
		}
	}
	sortKDCs(kdcs)
	return kdcs, nil
}

// sortKDCs orders by priority ascending, then weight descending.
func sortKDCs(kdcs []KDCInfo) {
	sort.SliceStable(kdcs, func(i, j int) bool {
		if kdcs[i].Priority != kdcs[j].Priority {
			return kdcs[i].Priority < kdcs[j].Priority
		}
		return kdcs[i].Weight > kdcs[j].Weight
	})
}
