package tracer

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// spawnTraced implements spec.md §4.1: it resolves argv[0] and starts the
// child with ptrace enabled. It returns as soon as the child is started;
// waiting for the child's first stop is left to waitInitialStop. Go's
// os/exec + SysProcAttr{Ptrace: true} already perform the fork/TRACEME/stop
// sequence in the child — the same sequence the teacher's tracer.go Run
// relies on — so no cgo or raw syscall.ForkExec is needed here.
func spawnTraced(argv []string) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, newSetupError("spawn", fmt.Errorf("empty argv"))
	}

	path, err := resolvePath(argv[0])
	if err != nil {
		return nil, newSetupError("resolve-path", err)
	}

	cmd := exec.Command(path, argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Ptrace: true}

	if err := cmd.Start(); err != nil {
		return nil, newSetupError("start", err)
	}

	return cmd, nil
}

// resolvePath resolves the *given* executable name, fixing the defect
// spec.md §4.1/§9 documents in the reference implementation (whose fallback
// search resolved a hardcoded name instead of argv[0]). If name already
// refers to an existing file it is used verbatim; otherwise it is searched
// for on PATH.
func resolvePath(name string) (string, error) {
	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		return name, nil
	}

	resolved, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("executable %q not found: %w", name, err)
	}
	return resolved, nil
}

// waitInitialStop blocks until pid reports its first status change and
// verifies that it is a stop; any other status is a protocol violation.
// Which signal caused the stop is not checked.
func waitInitialStop(pid int) error {
	var ws syscall.WaitStatus
	if _, err := syscall.Wait4(pid, &ws, 0, nil); err != nil {
		return newSetupError("initial-wait", err)
	}
	if !ws.Stopped() {
		return newProtocolViolation("initial-stop",
			fmt.Errorf("pid %d: expected a stop after spawn, got status %#x", pid, uint32(ws)))
	}
	return nil
}
