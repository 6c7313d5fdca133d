// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"net/netip"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
	"github.com/jeremyhahn/go-tunnelkey/pkg/wgconfig"
)

// uapiCmd renders a WireGuard UAPI set body for one interface and peer.
var uapiCmd = &cobra.Command{
	Use:   "uapi",
	Short: "Render a WireGuard UAPI configuration",
	Long: `Render a WireGuard cross-platform userspace API "set" body for an
interface private key and, optionally, one peer. Keys are accepted in base64
or hex form and written in hex, as the UAPI requires. The output can be
piped into a wireguard-go control socket.`,
	Args: cobra.NoArgs,
	RunE: runUAPI,
}

func init() {
	uapiCmd.Flags().String("private-key-file", "", "path to a file containing the interface private key")
	uapiCmd.Flags().Uint16("listen-port", 0, "UDP listen port (0 leaves it unchanged)")
	uapiCmd.Flags().Bool("replace-peers", false, "remove existing peers before adding")
	uapiCmd.Flags().String("peer", "", "peer public key")
	uapiCmd.Flags().String("peer-psk-file", "", "path to a file containing the peer pre-shared key")
	uapiCmd.Flags().String("endpoint", "", "peer endpoint (ip:port)")
	uapiCmd.Flags().StringSlice("allowed-ips", nil, "comma-separated prefixes routed to the peer")
	uapiCmd.Flags().Uint16("keepalive", 0, "persistent keepalive interval in seconds")
}

// runUAPI builds a wgconfig.Config from flags and prints its UAPI form.
func runUAPI(cmd *cobra.Command, args []string) error {
	privFile, _ := cmd.Flags().GetString("private-key-file")
	listenPort, _ := cmd.Flags().GetUint16("listen-port")
	replacePeers, _ := cmd.Flags().GetBool("replace-peers")
	peerText, _ := cmd.Flags().GetString("peer")
	pskFile, _ := cmd.Flags().GetString("peer-psk-file")
	endpoint, _ := cmd.Flags().GetString("endpoint")
	allowedIPs, _ := cmd.Flags().GetStringSlice("allowed-ips")
	keepalive, _ := cmd.Flags().GetUint16("keepalive")

	cfg := &wgconfig.Config{
		ListenPort:   listenPort,
		ReplacePeers: replacePeers,
	}

	if privFile != "" {
		raw, err := readKeyFile(privFile)
		if err != nil {
			return err
		}
		priv, err := tunnelkey.NewPrivateKey(raw)
		tunnelkey.WipeBytes(raw)
		if err != nil {
			return fmt.Errorf("%w: private key: %w", ErrInvalidInput, err)
		}
		defer priv.Wipe()
		cfg.PrivateKey = &priv
	}

	if peerText == "" {
		if pskFile != "" || endpoint != "" || len(allowedIPs) > 0 || keepalive != 0 {
			return fmt.Errorf("%w: peer options require --peer", ErrInvalidInput)
		}
	} else {
		peer, err := buildPeer(peerText, pskFile, endpoint, allowedIPs, keepalive)
		if err != nil {
			return err
		}
		if peer.PresharedKey != nil {
			defer peer.PresharedKey.Wipe()
		}
		cfg.Peers = append(cfg.Peers, *peer)
	}

	body, err := cfg.MarshalUAPI()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return writeOutput(cmd, []byte(body))
}

// buildPeer assembles a peer from flag values.
func buildPeer(pubText, pskFile, endpoint string, allowedIPs []string, keepalive uint16) (*wgconfig.Peer, error) {
	raw, _, err := decodeKeyText(strings.TrimSpace(pubText))
	if err != nil {
		return nil, fmt.Errorf("peer: %w", err)
	}
	pub, err := tunnelkey.NewPublicKey(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: peer: %w", ErrInvalidInput, err)
	}

	peer := &wgconfig.Peer{
		PublicKey:           pub,
		PersistentKeepalive: keepalive,
	}

	if pskFile != "" {
		raw, err := readKeyFile(pskFile)
		if err != nil {
			return nil, err
		}
		psk, err := tunnelkey.NewPreSharedKey(raw)
		tunnelkey.WipeBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: pre-shared key: %w", ErrInvalidInput, err)
		}
		peer.PresharedKey = &psk
	}

	if endpoint != "" {
		ep, err := netip.ParseAddrPort(endpoint)
		if err != nil {
			return nil, fmt.Errorf("%w: endpoint: %w", ErrInvalidInput, err)
		}
		peer.Endpoint = ep
	}

	for _, s := range allowedIPs {
		prefix, err := netip.ParsePrefix(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("%w: allowed IP: %w", ErrInvalidInput, err)
		}
		peer.AllowedIPs = append(peer.AllowedIPs, prefix)
	}

	return peer, nil
}

// readKeyFile reads a key in either text form from path.
func readKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading key file %s: %w", ErrFileOperation, path, err)
	}
	raw, _, err := decodeKeyText(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return raw, nil
}
