// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const (
	// RFC 7748 section 6.1 key pair.
	alicePrivateHex = "77076d0a7318a57d3c16c17251b26645df4c2f87ebc0992ab177fba51db92c2a"
	alicePublicHex  = "8520f0098930a754748b7ddcb43ef75a0dbf3a0d26381af4eba4a98eaa9b4e6a"
	bobPublicHex    = "de9edb7d7b7dc1b4d35b61c2ece435373f8343c85b78674dadfc7e146f882b4f"

	vectorBase64 = "ADdgjBTmzc7FCXBFxgD5Pz3UXal7TDqlE95IjJXs9kI="
	vectorHex    = "0037608c14e6cdcec5097045c600f93f3dd45da97b4c3aa513de488c95ecf642"
)

// captureOutput points cmd's stdout at a buffer and restores it when the
// test ends.
func captureOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	t.Cleanup(func() { cmd.SetOut(nil) })
	return &buf
}

// setStdin feeds input to cmd's stdin for the duration of the test.
func setStdin(t *testing.T, cmd *cobra.Command, input string) {
	t.Helper()
	cmd.SetIn(strings.NewReader(input))
	t.Cleanup(func() { cmd.SetIn(nil) })
}

// setFlag sets a local flag and restores its default when the test ends.
func setFlag(t *testing.T, cmd *cobra.Command, name, value string) {
	t.Helper()
	f := cmd.Flags().Lookup(name)
	require.NotNil(t, f, "flag %s", name)
	require.NoError(t, f.Value.Set(value))
	t.Cleanup(func() {
		if sv, ok := f.Value.(interface{ Replace([]string) error }); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

// setFormat selects the --format value for the duration of the test.
func setFormat(t *testing.T, value string) {
	t.Helper()
	old := format
	format = value
	t.Cleanup(func() { format = old })
}
