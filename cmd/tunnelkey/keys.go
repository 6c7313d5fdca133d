// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// genkeyCmd generates a new private key.
var genkeyCmd = &cobra.Command{
	Use:   "genkey",
	Short: "Generate a private key",
	Long: `Generate a new clamped Curve25519 private key from the system random
source and print it in the selected --format. Use --output to write it to a
file with mode 0600.`,
	Args: cobra.NoArgs,
	RunE: runGenkey,
}

// genpskCmd generates a new pre-shared key.
var genpskCmd = &cobra.Command{
	Use:   "genpsk",
	Short: "Generate a pre-shared key",
	Long:  "Generate a new random 32-byte pre-shared key and print it in the selected --format.",
	Args:  cobra.NoArgs,
	RunE:  runGenpsk,
}

// pubkeyCmd derives a public key.
var pubkeyCmd = &cobra.Command{
	Use:   "pubkey [private-key]",
	Short: "Derive the public key of a private key",
	Long: `Read a private key in base64 or hex form from the argument, --key-file,
or the first line of stdin, and print the corresponding public key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPubkey,
}

// convertCmd converts a key between its text forms.
var convertCmd = &cobra.Command{
	Use:   "convert [key]",
	Short: "Convert a key between base64 and hex",
	Long: `Read a key in either form from the argument, --key-file, or stdin and
print it in the selected --format. The input form is detected from its
length: 44 characters for base64, 64 for hex.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

// compareCmd compares two keys in constant time.
var compareCmd = &cobra.Command{
	Use:   "compare <key> <key>",
	Short: "Compare two keys in constant time",
	Long: `Compare two keys, each in base64 or hex form. Prints "equal" and exits 0
when they hold the same bytes, otherwise prints "different" and exits 3.`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	pubkeyCmd.Flags().String("key-file", "", "path to a file containing the private key")
	convertCmd.Flags().String("key-file", "", "path to a file containing the key")
}

// runGenkey generates and prints a private key.
func runGenkey(cmd *cobra.Command, args []string) error {
	slog.Debug("generating Curve25519 private key")

	priv, err := tunnelkey.GeneratePrivateKey()
	if err != nil {
		return fmt.Errorf("%w: generating private key: %w", ErrKeyOperation, err)
	}
	defer priv.Wipe()

	out, err := formatKey(priv)
	if err != nil {
		return err
	}
	slog.Debug("private key generated", "public_key", priv.PublicKey())
	return writeOutput(cmd, out)
}

// runGenpsk generates and prints a pre-shared key.
func runGenpsk(cmd *cobra.Command, args []string) error {
	psk, err := tunnelkey.GeneratePreSharedKey()
	if err != nil {
		return fmt.Errorf("%w: generating pre-shared key: %w", ErrKeyOperation, err)
	}
	defer psk.Wipe()

	out, err := formatKey(psk)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// runPubkey derives and prints the public key of a private key.
func runPubkey(cmd *cobra.Command, args []string) error {
	text, err := readKeyText(cmd, args)
	if err != nil {
		return err
	}

	raw, enc, err := decodeKeyText(text)
	if err != nil {
		return err
	}
	defer tunnelkey.WipeBytes(raw)

	priv, err := tunnelkey.NewPrivateKey(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer priv.Wipe()

	pub := priv.PublicKey()
	slog.Debug("derived public key", "input_format", enc, "public_key", pub)

	out, err := formatKey(pub)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// runConvert re-encodes a key in the selected format. The key's role is
// unknown, so it is handled as a secret.
func runConvert(cmd *cobra.Command, args []string) error {
	text, err := readKeyText(cmd, args)
	if err != nil {
		return err
	}

	raw, enc, err := decodeKeyText(text)
	if err != nil {
		return err
	}
	defer tunnelkey.WipeBytes(raw)

	key, err := tunnelkey.NewPreSharedKey(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	defer key.Wipe()

	slog.Debug("converting key", "from", enc, "to", format)

	out, err := formatKey(key)
	if err != nil {
		return err
	}
	return writeOutput(cmd, out)
}

// runCompare decodes two keys and compares them in constant time.
func runCompare(cmd *cobra.Command, args []string) error {
	a, _, err := decodeKeyText(args[0])
	if err != nil {
		return fmt.Errorf("first key: %w", err)
	}
	defer tunnelkey.WipeBytes(a)

	b, _, err := decodeKeyText(args[1])
	if err != nil {
		return fmt.Errorf("second key: %w", err)
	}
	defer tunnelkey.WipeBytes(b)

	if !tunnelkey.Equal(a, b) {
		fmt.Fprintln(cmd.OutOrStdout(), "different")
		return ErrKeysDiffer
	}
	fmt.Fprintln(cmd.OutOrStdout(), "equal")
	return nil
}
