package tracer

import (
	"errors"
	"fmt"
	"iter"
	"syscall"

	"golang.org/x/sys/unix"
)

// traceOptions mirrors the teacher's tracer.go option set, generalized with
// PTRACE_O_TRACEEXIT so ptraceEventExit (spec.md §4.2's EventPTraceExit) is
// actually delivered — the teacher never needed it because it had no
// equivalent lifecycle event.
const traceOptions = syscall.PTRACE_O_TRACESYSGOOD |
	syscall.PTRACE_O_TRACEFORK |
	syscall.PTRACE_O_TRACEVFORK |
	syscall.PTRACE_O_TRACECLONE |
	syscall.PTRACE_O_TRACEEXEC |
	syscall.PTRACE_O_TRACEEXIT

// Driver is the Event Stream Driver of spec.md §4.5: it owns the one table
// of tracked tracees, runs the wait4/classify/resume loop, and exposes the
// result as a pull-driven iter.Seq so a consumer can range over it and stop
// early without the engine leaking a goroutine.
type Driver struct {
	tbl        *table
	initialPID PID

	exitStatus int
	exitSignal bool
	sawExit    bool
	setupErr   error
}

// newDriver wires up the Driver around the already-spawned, already-stopped
// initial tracee. The caller (facade.go) is responsible for spawnTraced and
// waitInitialStop; newDriver takes it from there.
func newDriver(initialPID int) *Driver {
	d := &Driver{tbl: newTable(), initialPID: PID(initialPID)}
	tr := d.tbl.add(d.initialPID)
	tr.attached = true
	return d
}

// Injector lets a consumer of Events deliver a signal to a tracked tracee
// from outside the pull loop, per spec.md §6's send-signal(pid, signal)
// external interface. Sending queues the signal with the kernel immediately;
// the Driver reports it back as an EventSignalDelivery the next time that
// tracee stops, same as a signal the tracee would have received on its own.
type Injector struct {
	tbl *table
}

// Send delivers sig to pid. A PID no longer tracked, or one whose process
// has already vanished, is not an error — signals racing process death are
// routine here, not a protocol violation.
func (inj *Injector) Send(pid PID, sig syscall.Signal) error {
	if _, ok := inj.tbl.get(pid); !ok {
		return nil
	}
	if err := syscall.Kill(int(pid), sig); err != nil && !isVanished(err) {
		return fmt.Errorf("signal pid %d: %w", pid, err)
	}
	return nil
}

// Injector returns the handle a consumer holds onto for the lifetime of the
// trace to call Send concurrently with ranging over Events.
func (d *Driver) Injector() *Injector {
	return &Injector{tbl: d.tbl}
}

// ExitStatus reports the initial tracee's terminal status once Events has
// delivered its EventExit — the status TraceToExit ultimately returns,
// per spec.md §4.1's "process convention."
func (d *Driver) ExitStatus() (status int, bySignal bool, ok bool) {
	return d.exitStatus, d.exitSignal, d.sawExit
}

// Err reports a setup failure that kept Events from ever reaching the
// initial tracee's exit — checked by the facade once the range over Events
// returns, before it looks at ExitStatus.
func (d *Driver) Err() error {
	return d.setupErr
}

// Events is the Driver's public stream: one Event per wait4 wake-up,
// decoded and classified, with the resume continuation for the tracee that
// produced it decided and issued before the next wake-up is awaited. If the
// consumer stops ranging early, remaining tracees are resumed to quiescence
// (plain PTRACE_SYSCALL, no signal injection) so none are left frozen.
func (d *Driver) Events() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		if err := syscall.PtraceSetOptions(int(d.initialPID), traceOptions); err != nil {
			d.setupErr = newSetupError("set-options", err)
			return
		}
		if err := syscall.PtraceSyscall(int(d.initialPID), 0); err != nil {
			d.setupErr = newSetupError("initial-resume", err)
			return
		}

		for !d.tbl.empty() {
			var ws syscall.WaitStatus
			pid, err := syscall.Wait4(-1, &ws, syscall.WALL, nil)
			if err != nil {
				if err == syscall.ECHILD {
					break
				}
				continue
			}

			tr, known := d.tbl.get(PID(pid))
			if !known {
				tr = d.tbl.add(PID(pid))
				syscall.PtraceSetOptions(pid, traceOptions)
			}

			if ws.Exited() || ws.Signaled() {
				ev := Event{PID: tr.pid, Kind: EventExit}
				if ws.Exited() {
					ev.ExitStatus = ws.ExitStatus()
				} else {
					ev.ExitStatus = 128 + int(ws.Signal())
					ev.ExitSignal = true
				}
				d.tbl.remove(tr.pid)
				if tr.pid == d.initialPID {
					d.exitStatus, d.exitSignal, d.sawExit = ev.ExitStatus, ev.ExitSignal, true
				}
				if !yield(ev) {
					d.drain()
					return
				}
				continue
			}

			if !ws.Stopped() {
				continue
			}

			sig := ws.StopSignal()
			if sig == syscall.SIGSTOP && !tr.attached {
				tr.attached = true
				syscall.PtraceSyscall(pid, 0)
				continue
			}

			ev, cerr := classify(tr, ws)
			if cerr != nil {
				panic(cerr)
			}

			var vanished bool
			switch ev.Kind {
			case EventSyscallEnter:
				decoded, derr := decodeEnter(pid, tr)
				switch {
				case derr == nil:
					ev = decoded
				case isVanished(derr):
					vanished = true
				case errors.As(derr, new(*ProtocolViolation)):
					panic(derr)
				}
			case EventSyscallExit:
				decoded, derr := decodeExit(pid, tr)
				switch {
				case derr == nil:
					ev = decoded
				case isVanished(derr):
					vanished = true
				case errors.As(derr, new(*ProtocolViolation)):
					panic(derr)
				}
			case EventNewChild:
				if msg, merr := syscall.PtraceGetEventMsg(pid); merr == nil {
					child := PID(msg)
					ev.NewChild = child
					if _, exists := d.tbl.get(child); !exists {
						d.tbl.add(child)
					}
				}
			}

			// A tracing primitive reporting ESRCH here means the tracee died
			// between the wait4 wake-up and the decode — a signal (most often
			// a kill-rule's SIGKILL, see killrule.go) raced the decoder.
			// spec.md treats this as non-fatal: drop the PID and move on
			// rather than yielding a half-decoded event or aborting the run.
			// The initial tracee stays tracked so that wait4 still reaps its
			// exit and the run reports that exit status.
			if vanished {
				if tr.pid != d.initialPID {
					d.tbl.remove(tr.pid)
				}
				continue
			}

			cont := !yield(ev)
			if cont {
				d.drain()
				return
			}

			if rerr := d.resume(pid, ev); rerr != nil && isVanished(rerr) && tr.pid != d.initialPID {
				d.tbl.remove(tr.pid)
			}
		}
	}
}

// resume issues the continuation decision of spec.md §4.5 step 1 for the
// tracee that produced ev.
func (d *Driver) resume(pid int, ev Event) error {
	switch ev.Kind {
	case EventGroupStop:
		return ptraceListen(pid)
	case EventSignalDelivery:
		return syscall.PtraceSyscall(pid, ev.Signal)
	default:
		return syscall.PtraceSyscall(pid, 0)
	}
}

// ptraceListen issues PTRACE_LISTEN, which golang.org/x/sys/unix exposes as
// a constant but not (in the version the pack pins) as a wrapper function —
// grounded on zyedidia-perforator/pkg/utrace/ptrace/ptrace.go's identical
// raw-Syscall6 invocation.
func ptraceListen(pid int) error {
	_, _, errno := unix.Syscall6(unix.SYS_PTRACE, unix.PTRACE_LISTEN, uintptr(pid), 0, 0, 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}

// drain resumes every remaining tracked tracee with a plain PTRACE_SYSCALL
// and lets them run uninspected to completion, so an early-terminated range
// over Events never leaves a tracee frozen in a ptrace-stop.
func (d *Driver) drain() {
	for pid := range d.tbl.tracees {
		syscall.PtraceSyscall(int(pid), 0)
	}
	for !d.tbl.empty() {
		var ws syscall.WaitStatus
		pid, err := syscall.Wait4(-1, &ws, syscall.WALL, nil)
		if err != nil {
			return
		}
		if ws.Exited() || ws.Signaled() {
			d.tbl.remove(PID(pid))
			continue
		}
		if ws.Stopped() {
			syscall.PtraceSyscall(pid, 0)
		}
	}
}
