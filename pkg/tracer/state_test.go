package tracer

import "testing"

func TestToggleSyscallAlternates(t *testing.T) {
	tr := &tracee{pid: 1}

	isEnter := tr.toggleSyscall()
	if !isEnter {
		t.Fatalf("first toggle: got exit, want enter")
	}
	if !tr.inSyscall {
		t.Fatalf("after enter, inSyscall should be true")
	}

	isEnter = tr.toggleSyscall()
	if isEnter {
		t.Fatalf("second toggle: got enter, want exit")
	}
	if tr.inSyscall {
		t.Fatalf("after exit, inSyscall should be false")
	}

	isEnter = tr.toggleSyscall()
	if !isEnter {
		t.Fatalf("third toggle: got exit, want enter again")
	}
}

func TestTableAddGetRemove(t *testing.T) {
	tbl := newTable()
	if !tbl.empty() {
		t.Fatalf("new table should be empty")
	}

	tbl.add(42)
	tr, ok := tbl.get(42)
	if !ok || tr.pid != 42 {
		t.Fatalf("get(42) = %v, %v; want a tracee with pid 42", tr, ok)
	}

	if tbl.empty() {
		t.Fatalf("table with one tracee should not be empty")
	}

	tbl.remove(42)
	if !tbl.empty() {
		t.Fatalf("table should be empty after removing its only tracee")
	}
	if _, ok := tbl.get(42); ok {
		t.Fatalf("get(42) should fail after remove")
	}
}
