// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

const abortHelperEnv = "RESULT_ABORT_HELPER"

// TestViolation_AbortHelper triggers a violation when started by
// TestViolation_AbortBuild_TerminatesProcess and is skipped otherwise.
func TestViolation_AbortHelper(t *testing.T) {
	if os.Getenv(abortHelperEnv) != "1" {
		t.Skip("only run as a subprocess")
	}
	Ok[string](1).Err()
	t.Fatal("violation did not terminate the process")
}

func TestViolation_AbortBuild_TerminatesProcess(t *testing.T) {
	if testing.Short() {
		t.Skip("compiles the package with different build tags")
	}
	goTool, err := exec.LookPath("go")
	if err != nil {
		t.Skip("go tool not available")
	}
	cmd := exec.Command(goTool, "test", "-tags", "resultabort", "-count=1", "-run", "^TestViolation_AbortHelper$", ".")
	cmd.Env = append(os.Environ(), abortHelperEnv+"=1")
	output, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected process to exit with error, got %v\n%s", err, output)
	require.NotZero(t, exitErr.ExitCode())
	require.Contains(t, string(output), "result contract violation in Err: result must not hold a value when taking an error")
	require.NotContains(t, string(output), "violation did not terminate the process")
}
