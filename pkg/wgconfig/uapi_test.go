// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package wgconfig

import (
	"net/netip"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

const (
	privateHex = "e84b5a6d2717c1003a13b431570353dbaca9146cf150c5f8575680feba52027a"
	peerHex    = "b85996fecc9c7f1fc6d2572a76eda11d59bcd20be8e543b15ce4bd85a8e75a33"
	pskHex     = "188515093e952f5f22e865cef3012e72f8b5f0b598ac0309d5dacce3b70fcf52"
	peer2Hex   = "58402e695ba1772b1cc9309755f043251ea77fdcf10fbe63989ceb7e19321376"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	priv, err := tunnelkey.PrivateKeyFromHex(privateHex)
	require.NoError(t, err)
	peer, err := tunnelkey.PublicKeyFromHex(peerHex)
	require.NoError(t, err)
	psk, err := tunnelkey.PreSharedKeyFromHex(pskHex)
	require.NoError(t, err)
	peer2, err := tunnelkey.PublicKeyFromHex(peer2Hex)
	require.NoError(t, err)

	return &Config{
		PrivateKey:   &priv,
		ListenPort:   12912,
		ReplacePeers: true,
		Peers: []Peer{
			{
				PublicKey:           peer,
				PresharedKey:        &psk,
				Endpoint:            netip.MustParseAddrPort("[abcd:23::33%2]:51820"),
				PersistentKeepalive: 25,
				ReplaceAllowedIPs:   true,
				AllowedIPs: []netip.Prefix{
					netip.MustParsePrefix("192.168.4.4/32"),
					netip.MustParsePrefix("10.0.0.0/8"),
				},
			},
			{
				PublicKey: peer2,
				Endpoint:  netip.MustParseAddrPort("182.122.22.19:3233"),
				AllowedIPs: []netip.Prefix{
					netip.MustParsePrefix("192.168.4.6/32"),
				},
			},
		},
	}
}

func TestMarshalUAPI(t *testing.T) {
	got, err := testConfig(t).MarshalUAPI()
	require.NoError(t, err)

	want := strings.Join([]string{
		"private_key=" + privateHex,
		"listen_port=12912",
		"replace_peers=true",
		"public_key=" + peerHex,
		"preshared_key=" + pskHex,
		"endpoint=[abcd:23::33%2]:51820",
		"persistent_keepalive_interval=25",
		"replace_allowed_ips=true",
		"allowed_ip=192.168.4.4/32",
		"allowed_ip=10.0.0.0/8",
		"public_key=" + peer2Hex,
		"endpoint=182.122.22.19:3233",
		"allowed_ip=192.168.4.6/32",
	}, "\n") + "\n"
	assert.Equal(t, want, got)
}

func TestMarshalUAPI_MasksPrefixes(t *testing.T) {
	cfg := testConfig(t)
	cfg.Peers = cfg.Peers[1:]
	cfg.Peers[0].AllowedIPs = []netip.Prefix{netip.MustParsePrefix("10.1.2.3/16")}

	got, err := cfg.MarshalUAPI()
	require.NoError(t, err)
	assert.Contains(t, got, "allowed_ip=10.1.0.0/16\n")
}

func TestMarshalUAPI_RemovePeer(t *testing.T) {
	cfg := testConfig(t)
	cfg.PrivateKey = nil
	cfg.ListenPort = 0
	cfg.ReplacePeers = false
	cfg.Peers = cfg.Peers[1:]
	cfg.Peers[0].Remove = true

	got, err := cfg.MarshalUAPI()
	require.NoError(t, err)
	assert.Equal(t, "public_key="+peer2Hex+"\nremove=true\n", got)
}

func TestMarshalUAPI_DuplicatePeer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Peers = append(cfg.Peers, Peer{PublicKey: cfg.Peers[0].PublicKey})

	_, err := cfg.MarshalUAPI()
	assert.ErrorIs(t, err, ErrDuplicatePeer)
}

func TestMarshalUAPI_InvalidPrefix(t *testing.T) {
	cfg := testConfig(t)
	cfg.Peers[0].AllowedIPs = append(cfg.Peers[0].AllowedIPs, netip.Prefix{})

	_, err := cfg.MarshalUAPI()
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestParseUAPI_RoundTrip(t *testing.T) {
	cfg := testConfig(t)
	text, err := cfg.MarshalUAPI()
	require.NoError(t, err)

	parsed, err := ParseUAPI(strings.NewReader(text))
	require.NoError(t, err)

	require.NotNil(t, parsed.PrivateKey)
	assert.True(t, cfg.PrivateKey.Equal(*parsed.PrivateKey))
	assert.Equal(t, cfg.ListenPort, parsed.ListenPort)
	require.Len(t, parsed.Peers, 2)

	for _, want := range cfg.Peers {
		got, ok := parsed.FindPeer(want.PublicKey)
		require.True(t, ok)
		assert.Equal(t, want.Endpoint, got.Endpoint)
		assert.Equal(t, want.PersistentKeepalive, got.PersistentKeepalive)
		assert.Equal(t, want.AllowedIPs, got.AllowedIPs)
		if want.PresharedKey != nil {
			require.NotNil(t, got.PresharedKey)
			assert.True(t, want.PresharedKey.Equal(*got.PresharedKey))
		}
	}
}

func TestParseUAPI_GetResponse(t *testing.T) {
	get := strings.Join([]string{
		"private_key=" + strings.ToUpper(privateHex),
		"listen_port=51820",
		"fwmark=51820",
		"public_key=" + peerHex,
		"preshared_key=0000000000000000000000000000000000000000000000000000000000000000",
		"protocol_version=1",
		"endpoint=10.0.0.1:51820",
		"last_handshake_time_sec=1700000000",
		"last_handshake_time_nsec=0",
		"tx_bytes=1024",
		"rx_bytes=2048",
		"persistent_keepalive_interval=0",
		"allowed_ip=10.10.0.0/24",
		"errno=0",
		"",
	}, "\n")

	cfg, err := ParseUAPI(strings.NewReader(get))
	require.NoError(t, err)

	require.NotNil(t, cfg.PrivateKey)
	assert.Equal(t, privateHex, cfg.PrivateKey.HexString())
	assert.Equal(t, uint16(51820), cfg.ListenPort)
	assert.Equal(t, uint32(51820), cfg.FirewallMark)
	require.Len(t, cfg.Peers, 1)
	assert.Nil(t, cfg.Peers[0].PresharedKey, "all-zero preshared key means none")
	assert.Equal(t, netip.MustParseAddrPort("10.0.0.1:51820"), cfg.Peers[0].Endpoint)
	assert.Equal(t, []netip.Prefix{netip.MustParsePrefix("10.10.0.0/24")}, cfg.Peers[0].AllowedIPs)
}

func TestParseUAPI_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"not key value", "garbage\n", ErrInvalidLine},
		{"bad public key length", "public_key=abcd\n", tunnelkey.ErrInvalidInputLength},
		{"bad public key digits", "public_key=" + strings.Repeat("zz", 32) + "\n", tunnelkey.ErrFailed},
		{"bad private key", "private_key=1234\n", ErrInvalidValue},
		{"bad listen port", "listen_port=70000\n", ErrInvalidValue},
		{"bad endpoint", "public_key=" + peerHex + "\nendpoint=nowhere\n", ErrInvalidValue},
		{"bad allowed ip", "public_key=" + peerHex + "\nallowed_ip=10.0.0.0/33\n", ErrInvalidValue},
		{"bad keepalive", "public_key=" + peerHex + "\npersistent_keepalive_interval=-1\n", ErrInvalidValue},
		{"peer attribute first", "endpoint=10.0.0.1:1\n", ErrUnexpectedKey},
		{"device errno", "listen_port=1\nerrno=22\n", ErrDeviceErrno},
		{"bad errno", "errno=x\n", ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseUAPI(strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseUAPI_StopsAtBlankLine(t *testing.T) {
	cfg, err := ParseUAPI(strings.NewReader("listen_port=1\n\nlisten_port=2\n"))
	require.NoError(t, err)
	assert.Equal(t, uint16(1), cfg.ListenPort)
}
