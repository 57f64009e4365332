package netmon

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/nvoronin/calcsync/internal/syncerr"
)

//go:generate go tool moq -out prober_mock.go . Prober

// Prober performs one active reachability check. Implementations must
// respect the context deadline.
type Prober interface {
	Probe(ctx context.Context) error
}

// probeTimeout bounds a single reachability attempt against one host.
const probeTimeout = 5 * time.Second

// HTTPProber validates reachability with HEAD requests against a set of
// known-reliable endpoints. One reachable host is enough.
type HTTPProber struct {
	client *http.Client
	urls   []string
}

func NewHTTPProber(urls []string) *HTTPProber {
	return &HTTPProber{
		urls:   urls,
		client: &http.Client{Timeout: probeTimeout},
	}
}

func (p *HTTPProber) Probe(ctx context.Context) error {
	var lastErr error
	for _, u := range p.urls {
		req, err := http.NewRequestWithContext(ctx, http.MethodHead, u, nil)
		if err != nil {
			lastErr = err
			continue
		}

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		_ = resp.Body.Close()

		// Any response proves the network path works; the status code
		// belongs to the endpoint, not to reachability.
		return nil
	}

	return syncerr.Wrap(syncerr.KindNetwork, "no probe endpoint reachable", lastErr)
}

// DNSProber validates reachability by resolving a set of well-known names.
type DNSProber struct {
	resolver *net.Resolver
	hosts    []string
}

func NewDNSProber(hosts []string) *DNSProber {
	return &DNSProber{
		hosts:    hosts,
		resolver: net.DefaultResolver,
	}
}

func (p *DNSProber) Probe(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	var lastErr error
	for _, host := range p.hosts {
		if _, err := p.resolver.LookupHost(ctx, host); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return syncerr.Wrap(syncerr.KindNetwork, fmt.Sprintf("dns probe failed for all %d hosts", len(p.hosts)), lastErr)
}
