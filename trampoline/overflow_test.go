package trampoline_test

import (
	"os"
	"os/exec"
	"runtime/debug"
	"testing"

	"github.com/on-the-ground/funstruct_go/trampoline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overflowModeEnv = "TRAMPOLINE_OVERFLOW_MODE"

func plainSum(n int) int {
	if n == 0 {
		return 0
	}
	return n + plainSum(n-1)
}

func nestedDriverSum() *trampoline.Fn2[int, int, int] {
	var sum *trampoline.Fn2[int, int, int]
	sum = trampoline.Tco2(func(n, acc int) trampoline.Step[int] {
		if n == 0 {
			return trampoline.Done(acc)
		}
		return trampoline.Done(sum.Call(n-1, acc+n))
	})
	return sum
}

func runOverflowMode(mode string) {
	debug.SetMaxStack(1 << 20)
	switch mode {
	case "plain":
		plainSum(deep)
	case "nested":
		nestedDriverSum().Call(deep, 0)
	case "trampolined":
		newSum().Call(deep, 0)
	}
}

// TestStackExhaustion re-runs itself in a child process, because running out
// of goroutine stack is fatal and cannot be recovered.
func TestStackExhaustion(t *testing.T) {
	if mode := os.Getenv(overflowModeEnv); mode != "" {
		runOverflowMode(mode)
		return
	}

	cases := []struct {
		mode     string
		overflow bool
	}{
		{"plain", true},
		{"nested", true},
		{"trampolined", false},
	}
	for _, tc := range cases {
		t.Run(tc.mode, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestStackExhaustion$")
			cmd.Env = append(os.Environ(), overflowModeEnv+"="+tc.mode)
			out, err := cmd.CombinedOutput()
			if !tc.overflow {
				require.NoError(t, err, string(out))
				return
			}
			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.NotZero(t, exitErr.ExitCode())
			assert.Contains(t, string(out), "stack overflow")
		})
	}
}
