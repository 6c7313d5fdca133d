// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package keydns

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"golang.org/x/time/rate"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

const (
	// defaultTimeout is the default DNS query timeout.
	defaultTimeout = 5 * time.Second

	// defaultDNSPort is the standard DNS port.
	defaultDNSPort = "53"

	// defaultDoTPort is the standard DNS-over-TLS port.
	defaultDoTPort = "853"
)

// resolvConfPath is read when no server is configured.
var resolvConfPath = "/etc/resolv.conf"

// ResolverConfig configures a key record Resolver.
type ResolverConfig struct {
	// Server is the DNS server address (host or host:port). If empty,
	// the first nameserver in /etc/resolv.conf is used.
	Server string

	// Timeout is the per-query timeout. Zero selects 5 seconds.
	Timeout time.Duration

	// UseTLS enables DNS-over-TLS (port 853 by default).
	UseTLS bool

	// TLSServerName overrides the TLS server name for DNS-over-TLS.
	TLSServerName string

	// RequireAD rejects responses without the DNSSEC Authenticated Data
	// flag.
	RequireAD bool

	// QueryRate limits queries per second issued by the Resolver. Zero
	// disables limiting.
	QueryRate float64

	// QueryBurst is the token-bucket burst for QueryRate. Values below 1
	// are treated as 1.
	QueryBurst int

	// Logger receives debug output about skipped records. If nil,
	// slog.Default() is used.
	Logger *slog.Logger
}

// Resolver looks up published public keys. It is safe for concurrent use.
type Resolver struct {
	config  *ResolverConfig
	client  *dns.Client
	server  string
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewResolver creates a Resolver from cfg, applying defaults for unset
// fields.
func NewResolver(cfg *ResolverConfig) (*Resolver, error) {
	if cfg == nil {
		return nil, ErrResolverConfig
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client := &dns.Client{
		Timeout: timeout,
	}

	server := cfg.Server
	port := defaultDNSPort
	if cfg.UseTLS {
		client.Net = "tcp-tls"
		tlsCfg := &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
		if cfg.TLSServerName != "" {
			tlsCfg.ServerName = cfg.TLSServerName
		}
		client.TLSConfig = tlsCfg
		port = defaultDoTPort
	} else {
		client.Net = "udp"
	}

	if server == "" {
		systemCfg, err := dns.ClientConfigFromFile(resolvConfPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrResolverConfig, err)
		}
		if len(systemCfg.Servers) == 0 {
			return nil, fmt.Errorf("%w: no nameservers in %s", ErrResolverConfig, resolvConfPath)
		}
		// resolv.conf describes plain DNS; its port does not apply to DoT.
		if !cfg.UseTLS && systemCfg.Port != "" {
			port = systemCfg.Port
		}
		server = systemCfg.Servers[0]
	}
	server = withPort(server, port)

	var limiter *rate.Limiter
	if cfg.QueryRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.QueryRate), max(cfg.QueryBurst, 1))
	}

	return &Resolver{
		config:  cfg,
		client:  client,
		server:  server,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// LookupPublicKeys returns every valid public key published for host.
// Malformed records are skipped; if none remain, ErrNoKeyRecords is
// returned.
func (r *Resolver) LookupPublicKeys(ctx context.Context, host string) ([]tunnelkey.PublicKey, error) {
	qname, err := RecordName(host)
	if err != nil {
		return nil, err
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
		}
	}

	msg := new(dns.Msg)
	msg.SetQuestion(qname, dns.TypeTXT)
	msg.SetEdns0(4096, true)
	msg.RecursionDesired = true

	resp, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDNSLookupFailed, err)
	}
	if resp == nil {
		return nil, ErrDNSLookupFailed
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: rcode %s", ErrDNSLookupFailed, dns.RcodeToString[resp.Rcode])
	}
	if r.config.RequireAD && !resp.AuthenticatedData {
		return nil, ErrDNSSECRequired
	}

	keys := make([]tunnelkey.PublicKey, 0, len(resp.Answer))
	for _, rr := range resp.Answer {
		txt, ok := rr.(*dns.TXT)
		if !ok {
			continue
		}
		// Character strings of one record are concatenated (RFC 7208 3.3).
		pub, err := ParseValue(strings.Join(txt.Txt, ""))
		if err != nil {
			r.logger.Debug("skipping TXT record", "name", txt.Hdr.Name, "error", err)
			continue
		}
		keys = append(keys, pub)
	}

	if len(keys) == 0 {
		return nil, ErrNoKeyRecords
	}
	return keys, nil
}

// VerifyPublicKey checks that want is among the keys published for host.
// Keys are compared in constant time.
func (r *Resolver) VerifyPublicKey(ctx context.Context, host string, want tunnelkey.PublicKey) error {
	keys, err := r.LookupPublicKeys(ctx, host)
	if err != nil {
		return err
	}

	found := false
	for _, k := range keys {
		if k.Equal(want) {
			found = true
		}
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrKeyMismatch, host)
	}
	return nil
}

// withPort returns addr with port appended unless addr already names one.
// IPv6 literals, bracketed or not, are bracketed in the result.
func withPort(addr, port string) string {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr
	}
	return net.JoinHostPort(strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]"), port)
}
