// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	rtdebug "runtime/debug"
	"strings"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X main.version=...".
var version string

// readBuildInfo is swapped in tests.
var readBuildInfo = rtdebug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of tunnelkey",
	Long: `Print the tunnelkey version followed by the Go runtime and platform.
The version comes from build-time ldflags, the module version recorded by
"go install", or a VERSION file, in that order.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "tunnelkey version %s (%s %s/%s)\n",
		resolveVersion(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return err
}

// resolveVersion returns the first version found among the ldflags value,
// the main module version and a VERSION file in the working directory or
// next to the binary. It returns "unknown" if none is set.
func resolveVersion() string {
	if version != "" {
		return version
	}

	if info, ok := readBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return strings.TrimPrefix(v, "v")
		}
	}

	paths := []string{"VERSION"}
	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Join(filepath.Dir(execPath), "VERSION"))
	}
	for _, path := range paths {
		if data, err := os.ReadFile(path); err == nil {
			if v := strings.TrimSpace(string(data)); v != "" {
				return v
			}
		}
	}

	return "unknown"
}
