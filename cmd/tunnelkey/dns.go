// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-tunnelkey/pkg/keydns"
	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// defaultLookupTimeout bounds the lookup.
const defaultLookupTimeout = 10 * time.Second

// dnsCmd is the parent command for DNS key record operations.
var dnsCmd = &cobra.Command{
	Use:   "dns",
	Short: "DNS key record operations",
	Long: `Publish and discover public keys through DNS TXT records at
_tunnelkey.<host>.

Subcommands:
  record - print the TXT record that publishes a public key
  lookup - look up the public keys published for a host`,
}

// dnsRecordCmd prints a zone-file TXT record for a public key.
var dnsRecordCmd = &cobra.Command{
	Use:   "record [public-key]",
	Short: "Print the TXT record for a public key",
	Long: `Print a zone-file TXT record publishing a public key for --host. The key
is read from the argument, --key-file, or stdin, in base64 or hex form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDNSRecord,
}

// dnsLookupCmd looks up the public keys published for a host.
var dnsLookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Look up the public keys published for a host",
	Long: `Query the _tunnelkey TXT records of --host and print every valid public
key. With --verify, exit non-zero unless the given key is published.`,
	Args: cobra.NoArgs,
	RunE: runDNSLookup,
}

func init() {
	dnsCmd.AddCommand(dnsRecordCmd)
	dnsCmd.AddCommand(dnsLookupCmd)

	dnsRecordCmd.Flags().String("host", "", "hostname the key belongs to (required)")
	dnsRecordCmd.Flags().String("key-file", "", "path to a file containing the public key")
	dnsRecordCmd.Flags().Uint32("ttl", keydns.DefaultTTL, "record TTL in seconds")

	dnsLookupCmd.Flags().String("host", "", "hostname to query (required)")
	dnsLookupCmd.Flags().String("server", "", "DNS server address (default: from /etc/resolv.conf)")
	dnsLookupCmd.Flags().Bool("tls", false, "use DNS-over-TLS")
	dnsLookupCmd.Flags().Bool("require-ad", false, "require the DNSSEC AD flag")
	dnsLookupCmd.Flags().Duration("timeout", 5*time.Second, "per-query timeout")
	dnsLookupCmd.Flags().String("verify", "", "public key that must be published")
}

// runDNSRecord prints the TXT record for a public key.
func runDNSRecord(cmd *cobra.Command, args []string) error {
	host, _ := cmd.Flags().GetString("host")
	ttl, _ := cmd.Flags().GetUint32("ttl")

	if host == "" {
		return fmt.Errorf("%w: --host is required", ErrInvalidInput)
	}

	text, err := readKeyText(cmd, args)
	if err != nil {
		return err
	}
	pub, err := parsePublicKey(text)
	if err != nil {
		return err
	}

	rr, err := keydns.FormatRecord(host, pub, ttl)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return writeOutput(cmd, []byte(rr.String()+"\n"))
}

// runDNSLookup queries and prints the public keys of a host.
func runDNSLookup(cmd *cobra.Command, args []string) error {
	host, _ := cmd.Flags().GetString("host")
	server, _ := cmd.Flags().GetString("server")
	useTLS, _ := cmd.Flags().GetBool("tls")
	requireAD, _ := cmd.Flags().GetBool("require-ad")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	verify, _ := cmd.Flags().GetString("verify")

	if host == "" {
		return fmt.Errorf("%w: --host is required", ErrInvalidInput)
	}

	resolver, err := keydns.NewResolver(&keydns.ResolverConfig{
		Server:    server,
		Timeout:   timeout,
		UseTLS:    useTLS,
		RequireAD: requireAD,
		Logger:    slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	sigCtx, sigStop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer sigStop()

	ctx, cancel := context.WithTimeout(sigCtx, defaultLookupTimeout)
	defer cancel()

	if verify != "" {
		want, err := parsePublicKey(verify)
		if err != nil {
			return err
		}
		if err := resolver.VerifyPublicKey(ctx, host, want); err != nil {
			return fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
		slog.Info("public key verified", "host", host, "public_key", want)
		fmt.Fprintln(cmd.OutOrStdout(), "verified")
		return nil
	}

	keys, err := resolver.LookupPublicKeys(ctx, host)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	slog.Debug("public keys found", "host", host, "count", len(keys))

	var b strings.Builder
	for _, k := range keys {
		line, err := formatKey(k)
		if err != nil {
			return err
		}
		b.Write(line)
	}
	return writeOutput(cmd, []byte(b.String()))
}

// parsePublicKey decodes a public key in either text form.
func parsePublicKey(text string) (tunnelkey.PublicKey, error) {
	raw, _, err := decodeKeyText(strings.TrimSpace(text))
	if err != nil {
		return tunnelkey.PublicKey{}, err
	}
	pub, err := tunnelkey.NewPublicKey(raw)
	if err != nil {
		return tunnelkey.PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return pub, nil
}
