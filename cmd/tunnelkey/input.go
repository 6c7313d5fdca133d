// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeremyhahn/go-tunnelkey/pkg/tunnelkey"
)

// formatKey renders k in the format selected by --format, followed by a
// newline.
func formatKey(k tunnelkey.Key) ([]byte, error) {
	switch format {
	case formatBase64:
		return []byte(k.Base64String() + "\n"), nil
	case formatHex:
		return []byte(k.HexString() + "\n"), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want %s or %s)",
			ErrInvalidInput, format, formatBase64, formatHex)
	}
}

// readKeyText returns the key text from args[0], the file named by the
// --key-file flag if the command has one, or the first line of stdin.
func readKeyText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.TrimSpace(args[0]), nil
	}

	if f := cmd.Flags().Lookup("key-file"); f != nil && f.Value.String() != "" {
		path := f.Value.String()
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("%w: reading key file %s: %w", ErrFileOperation, path, err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		if err != nil {
			return "", fmt.Errorf("%w: no key on stdin: %w", ErrInvalidInput, err)
		}
		return "", fmt.Errorf("%w: no key on stdin", ErrInvalidInput)
	}
	return line, nil
}

// decodeKeyText decodes text in either form, selected by its length.
func decodeKeyText(text string) ([]byte, string, error) {
	var (
		raw []byte
		err error
		enc string
	)
	switch len(text) {
	case tunnelkey.Base64Len:
		enc = formatBase64
		raw, err = tunnelkey.DecodeBase64String(text)
	case tunnelkey.HexLen:
		enc = formatHex
		raw, err = tunnelkey.DecodeHexString(text)
	default:
		return nil, "", fmt.Errorf("%w: key must be %d base64 or %d hex characters, got %d: %w",
			ErrInvalidInput, tunnelkey.Base64Len, tunnelkey.HexLen, len(text), tunnelkey.ErrInvalidInputLength)
	}
	if err != nil {
		return nil, "", fmt.Errorf("%w: decoding %s key: %w", ErrInvalidInput, enc, err)
	}
	return raw, enc, nil
}
