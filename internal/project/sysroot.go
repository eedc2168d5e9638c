package project

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// sysrootEnvVar overrides toolchain discovery entirely when set and
// non-empty. The value is used verbatim, with no check that it exists.
const sysrootEnvVar = "RUST_SRC_PATH"

// ResolveSysrootSrc determines where the standard-library sources live so
// rust-analyzer can cross-reference into them. Without the env override it
// asks the installed rustc for its sysroot.
func ResolveSysrootSrc(ctx context.Context) (string, error) {
	if path := os.Getenv(sysrootEnvVar); path != "" {
		return path, nil
	}

	out, err := exec.CommandContext(ctx, "rustc", "--print", "sysroot").Output()
	if err != nil {
		return "", fmt.Errorf("query rustc sysroot: %w", err)
	}

	toolchain := toolchainFromOutput(string(out))
	fmt.Printf("Determined toolchain: %s\n\n", toolchain)

	return filepath.Join(toolchain, "lib", "rustlib", "src", "rust", "library"), nil
}

// toolchainFromOutput extracts the toolchain root from rustc stdout.
// Output with no whitespace-delimited token is used as-is rather than
// rejected.
func toolchainFromOutput(out string) string {
	if fields := strings.Fields(out); len(fields) > 0 {
		return fields[0]
	}
	return out
}
