package tracer

import (
	"errors"
	"fmt"
	"syscall"
)

// SetupError wraps a failure to spawn, resolve the executable, or apply
// initial ptrace options (spec.md §7 "setup errors"). It is recoverable by
// the caller — TraceToExit/StreamTrace return it directly rather than
// panicking.
type SetupError struct {
	Op  string
	Err error
}

func (e *SetupError) Error() string { return fmt.Sprintf("tracer setup: %s: %v", e.Op, e.Err) }
func (e *SetupError) Unwrap() error { return e.Err }

func newSetupError(op string, err error) *SetupError {
	return &SetupError{Op: op, Err: err}
}

// ProtocolViolation marks a stop, opcode, or enter/exit-alternation shape
// the engine's documented kernel contract rules out (spec.md §7 "protocol
// violations"). These are fatal engine bugs: the Driver does not attempt to
// recover from one, it aborts naming the violated invariant.
type ProtocolViolation struct {
	Invariant string
	Err       error
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation (%s): %v", e.Invariant, e.Err)
}
func (e *ProtocolViolation) Unwrap() error { return e.Err }

func newProtocolViolation(invariant string, err error) *ProtocolViolation {
	return &ProtocolViolation{Invariant: invariant, Err: err}
}

// errVanished is the sentinel recognized via errors.Is for spec.md §5/§7's
// "transient tracee disappearance" path: ESRCH from wait/peek/resume
// primitives drops that PID from the tracked set instead of failing the
// whole run.
var errVanished = errors.New("tracee vanished")

func isVanished(err error) bool {
	return errors.Is(err, syscall.ESRCH) || errors.Is(err, errVanished)
}
