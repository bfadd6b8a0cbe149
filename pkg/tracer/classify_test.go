package tracer

import (
	"syscall"
	"testing"
)

// stopStatus synthesizes the WaitStatus a stopped tracee would report: low
// byte 0x7F marks a stop, the next byte is the stop signal, and (for a
// SIGTRAP stop) the byte above that carries the ptrace event code.
func stopStatus(stopSignal syscall.Signal, eventCode int) syscall.WaitStatus {
	return syscall.WaitStatus(0x7F | (int(stopSignal) << 8) | (eventCode << 16))
}

func TestClassifySyscallEnterExit(t *testing.T) {
	tr := &tracee{pid: 1}
	ws := stopStatus(syscall.SIGTRAP|sigtrapMask, 0)

	ev, err := classify(tr, ws)
	if err != nil {
		t.Fatalf("classify (enter): %v", err)
	}
	if ev.Kind != EventSyscallEnter {
		t.Fatalf("first syscall-stop: got %v, want EventSyscallEnter", ev.Kind)
	}

	ev, err = classify(tr, ws)
	if err != nil {
		t.Fatalf("classify (exit): %v", err)
	}
	if ev.Kind != EventSyscallExit {
		t.Fatalf("second syscall-stop: got %v, want EventSyscallExit", ev.Kind)
	}
}

func TestClassifyPtraceEvents(t *testing.T) {
	tests := []struct {
		name string
		code int
		want EventKind
	}{
		{"fork", ptraceEventFork, EventNewChild},
		{"vfork", ptraceEventVfork, EventNewChild},
		{"clone", ptraceEventClone, EventNewChild},
		{"exec", ptraceEventExec, EventExec},
		{"ptrace-exit", ptraceEventExit, EventPTraceExit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &tracee{pid: 1}
			ws := stopStatus(syscall.SIGTRAP, tt.code)
			ev, err := classify(tr, ws)
			if err != nil {
				t.Fatalf("classify: %v", err)
			}
			if ev.Kind != tt.want {
				t.Errorf("classify(event %d) = %v, want %v", tt.code, ev.Kind, tt.want)
			}
		})
	}
}

func TestClassifyGroupStopVsSignalDelivery(t *testing.T) {
	tr := &tracee{pid: 1}

	ev, err := classify(tr, stopStatus(syscall.SIGSTOP, 0))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if ev.Kind != EventGroupStop {
		t.Errorf("SIGSTOP: got %v, want EventGroupStop", ev.Kind)
	}

	ev, err = classify(tr, stopStatus(syscall.SIGUSR1, 0))
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if ev.Kind != EventSignalDelivery {
		t.Errorf("SIGUSR1: got %v, want EventSignalDelivery", ev.Kind)
	}
	if ev.Signal != int(syscall.SIGUSR1) {
		t.Errorf("signal field = %d, want %d", ev.Signal, syscall.SIGUSR1)
	}
}

func TestClassifyExitedAndSignaled(t *testing.T) {
	tr := &tracee{pid: 7}

	ev, err := classify(tr, syscall.WaitStatus(3<<8)) // exited with status 3
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if ev.Kind != EventExit || ev.ExitStatus != 3 || ev.ExitSignal {
		t.Errorf("exited status 3: got %+v", ev)
	}

	ev, err = classify(tr, syscall.WaitStatus(int(syscall.SIGKILL))) // killed
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if ev.Kind != EventExit || !ev.ExitSignal || ev.ExitStatus != 128+int(syscall.SIGKILL) {
		t.Errorf("signaled by SIGKILL: got %+v", ev)
	}
}
