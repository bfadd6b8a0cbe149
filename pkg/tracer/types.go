// Package tracer implements a Linux ptrace-based syscall-tracing engine: it
// launches a target program, follows it and its descendants through the
// kernel's stop/resume protocol, and exposes a typed, pull-driven stream of
// syscall, signal and lifecycle events.
package tracer

import "fmt"

// PID identifies a tracee for the lifetime of its kernel process entry.
type PID int

// ABI is the calling convention a syscall entry used.
type ABI int

const (
	ABIUnknown ABI = iota
	ABI386
	ABIAmd64
)

func (a ABI) String() string {
	switch a {
	case ABI386:
		return "i386"
	case ABIAmd64:
		return "x86_64"
	default:
		return "unknown"
	}
}

// EventKind discriminates the tagged Event record of spec.md §3.
type EventKind int

const (
	// EventSyscallEnter/EventSyscallExit bracket one syscall in one tracee.
	EventSyscallEnter EventKind = iota
	EventSyscallExit
	// EventSignalDelivery is a signal about to be delivered to the tracee.
	EventSignalDelivery
	// EventGroupStop is a stop-signal affecting the whole thread group.
	EventGroupStop
	// EventNewChild is a fork/vfork/clone PTRACE_EVENT; Event.NewChild carries
	// the spawned PID.
	EventNewChild
	// EventExec is a PTRACE_EVENT_EXEC stop (the tracee replaced its image).
	EventExec
	// EventPTraceExit is the PTRACE_EVENT_EXIT lifecycle notification — the
	// tracee is about to exit but is still alive and inspectable. It is
	// distinct from EventExit, which is the terminal wait4 reap.
	EventPTraceExit
	// EventExit is terminal for Event.PID; no further event mentions it.
	EventExit
)

func (k EventKind) String() string {
	switch k {
	case EventSyscallEnter:
		return "syscall-enter"
	case EventSyscallExit:
		return "syscall-exit"
	case EventSignalDelivery:
		return "signal-delivery"
	case EventGroupStop:
		return "group-stop"
	case EventNewChild:
		return "new-child"
	case EventExec:
		return "exec"
	case EventPTraceExit:
		return "ptrace-exit"
	case EventExit:
		return "exit"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

// ChildKind distinguishes the three ways a PTRACE_EVENT_FORK-family stop can
// introduce a new tracee.
type ChildKind int

const (
	ChildFork ChildKind = iota
	ChildVfork
	ChildClone
)

// Event is the single stream element the Driver emits. Fields other than PID
// and Kind are only meaningful for the Kind that sets them; this mirrors the
// teacher's OpenFlags/WhiteoutStyle closed-enum style rather than an open
// interface hierarchy, generalized to a tagged union over event kinds.
type Event struct {
	PID  PID
	Kind EventKind

	// EventSyscallEnter / EventSyscallExit.
	Syscall SyscallKind
	ABI     ABI
	Args    [6]uint64 // raw argument registers, captured at enter time
	Detail  SyscallDetail // non-nil when the kind has a detail variant: read-family on exit, execve-family on enter and exit

	// EventSignalDelivery / EventGroupStop.
	Signal int

	// EventNewChild.
	NewChild PID
	How      ChildKind

	// EventExit.
	ExitStatus int    // process convention: signal-death maps to 128+signal
	ExitSignal bool   // true if ExitStatus came from a fatal signal
}

// SyscallDetail carries argument-dependent materialized data captured at
// syscall-exit. New detail variants are additive — see ReadDetail below for
// the one spec.md §3 requires concretely.
type SyscallDetail interface {
	isSyscallDetail()
}

// ReadDetail materializes the outcome of a read(2)-family syscall: the
// bytes actually returned, of length exactly the syscall's non-negative
// return value.
type ReadDetail struct {
	FD           int
	RequestedLen int
	Buf          []byte
}

func (ReadDetail) isSyscallDetail() {}

// ExecveDetail materializes the filename argument of an execve(2)-family
// syscall, read out of the tracee's address space at syscall-enter (before
// a successful exec replaces it) and carried over to the matching exit.
type ExecveDetail struct {
	Path string
}

func (ExecveDetail) isSyscallDetail() {}
