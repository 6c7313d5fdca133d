// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package wgconfig

import (
	"net/netip"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// Config is the interface-level UAPI configuration.
type Config struct {
	// PrivateKey is the interface private key. Nil leaves it unchanged.
	PrivateKey *tunnelkey.PrivateKey

	// ListenPort is the UDP listen port. Zero leaves it unchanged.
	ListenPort uint16

	// FirewallMark is the fwmark applied to outgoing packets. Zero leaves
	// it unchanged.
	FirewallMark uint32

	// ReplacePeers removes all existing peers before adding Peers.
	ReplacePeers bool

	// Peers are added or updated in order.
	Peers []Peer
}

// Peer is a single peer section of a UAPI configuration.
type Peer struct {
	// PublicKey identifies the peer.
	PublicKey tunnelkey.PublicKey

	// PresharedKey is an optional symmetric key mixed into the handshake.
	PresharedKey *tunnelkey.PreSharedKey

	// Endpoint is the peer's UDP address. The zero value leaves it unset.
	Endpoint netip.AddrPort

	// PersistentKeepalive is the keepalive interval in seconds. Zero
	// disables keepalives.
	PersistentKeepalive uint16

	// ReplaceAllowedIPs removes the peer's existing allowed IPs before
	// adding AllowedIPs.
	ReplaceAllowedIPs bool

	// AllowedIPs are the prefixes routed to this peer.
	AllowedIPs []netip.Prefix

	// Remove deletes the peer instead of configuring it.
	Remove bool
}

// FindPeer returns the peer with the given public key, comparing keys in
// constant time.
func (c *Config) FindPeer(pub tunnelkey.PublicKey) (*Peer, bool) {
	for i := range c.Peers {
		if c.Peers[i].PublicKey.Equal(pub) {
			return &c.Peers[i], true
		}
	}
	return nil, false
}
