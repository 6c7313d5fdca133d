// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package keydns

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

const (
	// RecordLabel is the label prepended to a hostname to form the owner
	// name of its key records.
	RecordLabel = "_tunnelkey"

	// RecordVersion is the version tag written into every record.
	RecordVersion = "tk1"

	// DefaultTTL is the TTL used by FormatRecord when ttl is zero.
	DefaultTTL = 3600
)

// RecordName returns the absolute owner name for host's key records.
func RecordName(host string) (string, error) {
	if host == "" || strings.ContainsRune(host, 0) || len(host) > 253 {
		return "", ErrInvalidHostname
	}
	name := dns.Fqdn(RecordLabel + "." + strings.TrimSuffix(host, "."))
	if _, ok := dns.IsDomainName(name); !ok {
		return "", ErrInvalidHostname
	}
	return name, nil
}

// FormatValue returns the TXT content for pub.
func FormatValue(pub tunnelkey.PublicKey) string {
	return fmt.Sprintf("v=%s; k=%s", RecordVersion, pub.Base64String())
}

// FormatRecord builds the TXT resource record publishing pub for host.
// A zero ttl selects DefaultTTL.
func FormatRecord(host string, pub tunnelkey.PublicKey, ttl uint32) (*dns.TXT, error) {
	name, err := RecordName(host)
	if err != nil {
		return nil, err
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &dns.TXT{
		Hdr: dns.RR_Header{
			Name:   name,
			Rrtype: dns.TypeTXT,
			Class:  dns.ClassINET,
			Ttl:    ttl,
		},
		Txt: []string{FormatValue(pub)},
	}, nil
}

// ParseValue parses TXT content produced by FormatValue. Tags are
// separated by ';' and may appear in any order; unknown tags are ignored.
func ParseValue(value string) (tunnelkey.PublicKey, error) {
	var version, key string
	for _, field := range strings.Split(value, ";") {
		tag, val, ok := strings.Cut(strings.TrimSpace(field), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(tag) {
		case "v":
			version = strings.TrimSpace(val)
		case "k":
			key = strings.TrimSpace(val)
		}
	}

	if version == "" || key == "" {
		return tunnelkey.PublicKey{}, ErrInvalidRecord
	}
	if version != RecordVersion {
		return tunnelkey.PublicKey{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	pub, err := tunnelkey.PublicKeyFromBase64(key)
	if err != nil {
		return tunnelkey.PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}
	return pub, nil
}
