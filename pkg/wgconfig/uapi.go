// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package wgconfig

import (
	"bufio"
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// MarshalUAPI renders c as a UAPI "set" body. The terminating blank line
// is not included.
func (c *Config) MarshalUAPI() (string, error) {
	var b strings.Builder

	if c.PrivateKey != nil {
		fmt.Fprintf(&b, "private_key=%s\n", c.PrivateKey.HexString())
	}
	if c.ListenPort != 0 {
		fmt.Fprintf(&b, "listen_port=%d\n", c.ListenPort)
	}
	if c.FirewallMark != 0 {
		fmt.Fprintf(&b, "fwmark=%d\n", c.FirewallMark)
	}
	if c.ReplacePeers {
		b.WriteString("replace_peers=true\n")
	}

	for i, p := range c.Peers {
		for _, prev := range c.Peers[:i] {
			if prev.PublicKey.Equal(p.PublicKey) {
				return "", fmt.Errorf("%w: %s", ErrDuplicatePeer, p.PublicKey)
			}
		}
		if err := p.marshal(&b); err != nil {
			return "", err
		}
	}

	return b.String(), nil
}

func (p *Peer) marshal(b *strings.Builder) error {
	fmt.Fprintf(b, "public_key=%s\n", p.PublicKey.HexString())
	if p.Remove {
		b.WriteString("remove=true\n")
		return nil
	}
	if p.PresharedKey != nil {
		fmt.Fprintf(b, "preshared_key=%s\n", p.PresharedKey.HexString())
	}
	if p.Endpoint.IsValid() {
		fmt.Fprintf(b, "endpoint=%s\n", p.Endpoint)
	}
	if p.PersistentKeepalive != 0 {
		fmt.Fprintf(b, "persistent_keepalive_interval=%d\n", p.PersistentKeepalive)
	}
	if p.ReplaceAllowedIPs {
		b.WriteString("replace_allowed_ips=true\n")
	}
	for _, prefix := range p.AllowedIPs {
		if !prefix.IsValid() {
			return fmt.Errorf("%w: peer %s has an invalid allowed IP", ErrInvalidConfig, p.PublicKey)
		}
		fmt.Fprintf(b, "allowed_ip=%s\n", prefix.Masked())
	}
	return nil
}

// ParseUAPI parses a UAPI "get" response. Statistics such as rx_bytes are
// skipped. A trailing errno line is honored: a non-zero value fails with
// ErrDeviceErrno.
func ParseUAPI(r io.Reader) (*Config, error) {
	cfg := &Config{}
	var peer *Peer

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			break
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d", ErrInvalidLine, lineNo)
		}

		if key == "public_key" {
			pub, err := tunnelkey.PublicKeyFromHex(value)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: public_key: %w", ErrInvalidValue, lineNo, err)
			}
			cfg.Peers = append(cfg.Peers, Peer{PublicKey: pub})
			peer = &cfg.Peers[len(cfg.Peers)-1]
			continue
		}

		var err error
		if peer == nil {
			err = cfg.parseInterfaceKey(key, value)
		} else {
			err = peer.parseKey(key, value)
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLine, err)
	}

	return cfg, nil
}

func (c *Config) parseInterfaceKey(key, value string) error {
	switch key {
	case "private_key":
		priv, err := tunnelkey.PrivateKeyFromHex(value)
		if err != nil {
			return fmt.Errorf("%w: private_key: %w", ErrInvalidValue, err)
		}
		if !priv.IsZero() {
			c.PrivateKey = &priv
		}
	case "listen_port":
		port, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return fmt.Errorf("%w: listen_port: %w", ErrInvalidValue, err)
		}
		c.ListenPort = uint16(port)
	case "fwmark":
		mark, err := strconv.ParseUint(value, 10, 32)
		if err != nil {
			return fmt.Errorf("%w: fwmark: %w", ErrInvalidValue, err)
		}
		c.FirewallMark = uint32(mark)
	case "replace_peers":
		c.ReplacePeers = value == "true"
	case "errno":
		return parseErrno(value)
	case "protocol_version", "preshared_key", "endpoint", "allowed_ip",
		"persistent_keepalive_interval", "last_handshake_time_sec",
		"last_handshake_time_nsec", "rx_bytes", "tx_bytes":
		return fmt.Errorf("%w: %s", ErrUnexpectedKey, key)
	}
	return nil
}

func (p *Peer) parseKey(key, value string) error {
	switch key {
	case "preshared_key":
		psk, err := tunnelkey.PreSharedKeyFromHex(value)
		if err != nil {
			return fmt.Errorf("%w: preshared_key: %w", ErrInvalidValue, err)
		}
		// Devices report an all-zero key for peers without one.
		if !psk.IsZero() {
			p.PresharedKey = &psk
		}
	case "endpoint":
		ep, err := netip.ParseAddrPort(value)
		if err != nil {
			return fmt.Errorf("%w: endpoint: %w", ErrInvalidValue, err)
		}
		p.Endpoint = ep
	case "persistent_keepalive_interval":
		secs, err := strconv.ParseUint(value, 10, 16)
		if err != nil {
			return fmt.Errorf("%w: persistent_keepalive_interval: %w", ErrInvalidValue, err)
		}
		p.PersistentKeepalive = uint16(secs)
	case "allowed_ip":
		prefix, err := netip.ParsePrefix(value)
		if err != nil {
			return fmt.Errorf("%w: allowed_ip: %w", ErrInvalidValue, err)
		}
		p.AllowedIPs = append(p.AllowedIPs, prefix)
	case "replace_allowed_ips":
		p.ReplaceAllowedIPs = value == "true"
	case "remove":
		p.Remove = value == "true"
	case "errno":
		return parseErrno(value)
	}
	return nil
}

func parseErrno(value string) error {
	errno, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: errno: %w", ErrInvalidValue, err)
	}
	if errno != 0 {
		return fmt.Errorf("%w: errno=%d", ErrDeviceErrno, errno)
	}
	return nil
}
