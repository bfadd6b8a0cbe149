package tracer

import "testing"

func TestKillWatcherFiresAtOccurrence(t *testing.T) {
	w, err := newKillWatcher(&KillRule{Syscall: "write", Occurrence: 2, Signal: "TERM"})
	if err != nil {
		t.Fatalf("newKillWatcher: %v", err)
	}

	inj := &Injector{tbl: newTable()}
	inj.tbl.add(99)

	fire := func() { w.Observe(Event{PID: 99, Kind: EventSyscallEnter, Syscall: SysWrite}, inj) }

	fire()
	if w.fired {
		t.Fatalf("fired after 1 occurrence, want armed at 2")
	}
	fire()
	if !w.fired {
		t.Fatalf("did not fire after 2 occurrences")
	}
}

func TestKillWatcherIgnoresOtherSyscalls(t *testing.T) {
	w, err := newKillWatcher(&KillRule{Syscall: "write", Occurrence: 1, Signal: "TERM"})
	if err != nil {
		t.Fatalf("newKillWatcher: %v", err)
	}

	inj := &Injector{tbl: newTable()}
	inj.tbl.add(99)

	w.Observe(Event{PID: 99, Kind: EventSyscallEnter, Syscall: SysRead}, inj)
	if w.fired {
		t.Fatalf("fired on a non-matching syscall")
	}
}

func TestNewKillWatcherRejectsUnknownSyscall(t *testing.T) {
	if _, err := newKillWatcher(&KillRule{Syscall: "not_a_syscall", Occurrence: 1, Signal: "TERM"}); err == nil {
		t.Fatalf("want error for unrecognized syscall name")
	}
}
