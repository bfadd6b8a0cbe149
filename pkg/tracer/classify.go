package tracer

import (
	"fmt"
	"syscall"
)

const sigtrapMask = 0x80 // PTRACE_O_TRACESYSGOOD's disambiguation bit

// ptrace event codes carried in the upper bits of a SIGTRAP stop status
// when PTRACE_O_TRACE{FORK,VFORK,CLONE,EXEC,EXIT} is set.
const (
	ptraceEventFork = 1
	ptraceEventVfork = 2
	ptraceEventClone = 3
	ptraceEventExec  = 4
	ptraceEventExit  = 6
)

// stop pairs one wake-up from wait4 with the PID that produced it. classify
// takes only the raw status and returns an Event; nothing builds a stop.
type stop struct {
	pid PID
	ws  syscall.WaitStatus
}

// classify turns a raw wait4 status into the Event the Driver should emit,
// consulting and mutating the per-tracee in_syscall flag as spec.md §4.3
// requires. It does not itself block — the wait4 call in Driver.Events does
// that.
func classify(tr *tracee, ws syscall.WaitStatus) (Event, error) {
	pid := tr.pid

	switch {
	case ws.Exited():
		return Event{PID: pid, Kind: EventExit, ExitStatus: ws.ExitStatus()}, nil

	case ws.Signaled():
		sig := ws.Signal()
		return Event{PID: pid, Kind: EventExit, ExitStatus: 128 + int(sig), ExitSignal: true}, nil

	case ws.Stopped():
		sig := ws.StopSignal()

		if sig == syscall.SIGTRAP|sigtrapMask {
			isEnter := tr.toggleSyscall()
			if isEnter {
				return Event{PID: pid, Kind: EventSyscallEnter}, nil
			}
			return Event{PID: pid, Kind: EventSyscallExit}, nil
		}

		if sig == syscall.SIGTRAP {
			evCode := (int(ws) >> 16) & 0xff
			switch evCode {
			case ptraceEventFork:
				return Event{PID: pid, Kind: EventNewChild, How: ChildFork}, nil
			case ptraceEventVfork:
				return Event{PID: pid, Kind: EventNewChild, How: ChildVfork}, nil
			case ptraceEventClone:
				return Event{PID: pid, Kind: EventNewChild, How: ChildClone}, nil
			case ptraceEventExec:
				return Event{PID: pid, Kind: EventExec}, nil
			case ptraceEventExit:
				return Event{PID: pid, Kind: EventPTraceExit}, nil
			default:
				return Event{}, newProtocolViolation("unexpected-ptrace-event",
					fmt.Errorf("pid %d: unrecognized ptrace event code %d", pid, evCode))
			}
		}

		if isGroupStopSignal(sig) {
			return Event{PID: pid, Kind: EventGroupStop, Signal: int(sig)}, nil
		}

		return Event{PID: pid, Kind: EventSignalDelivery, Signal: int(sig)}, nil

	default:
		// "continued" - the caller re-waits; Driver.Events never reaches
		// this branch because it skips every status that is not Stopped()
		// before calling classify.
		return Event{}, newProtocolViolation("unclassifiable-stop",
			fmt.Errorf("pid %d: wait status %#x matched no known case", pid, uint32(ws)))
	}
}

// isGroupStopSignal reports whether sig belongs to the stop-signal family
// that produces a group-stop rather than an ordinary signal-delivery-stop.
func isGroupStopSignal(sig syscall.Signal) bool {
	switch sig {
	case syscall.SIGSTOP, syscall.SIGTSTP, syscall.SIGTTIN, syscall.SIGTTOU:
		return true
	default:
		return false
	}
}
