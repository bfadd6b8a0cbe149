package tracer

import "testing"

func TestLookupAmd64RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		number uint64
		want   SyscallKind
	}{
		{"read", 0, SysRead},
		{"write", 1, SysWrite},
		{"openat", 257, SysOpenat},
		{"execve", 59, SysExecve},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lookupAmd64(tt.number); got != tt.want {
				t.Errorf("lookupAmd64(%d) = %v, want %v", tt.number, got, tt.want)
			}
		})
	}
}

func TestLookupUnknownNumberIsUnknown(t *testing.T) {
	const implausible = 999999
	if got := lookupAmd64(implausible); got != SysUnknown {
		t.Errorf("lookupAmd64(%d) = %v, want SysUnknown", implausible, got)
	}
}

func TestSyscallKindByNameRoundTrip(t *testing.T) {
	for kind, name := range syscallNames {
		got, ok := syscallKindByName(name)
		if !ok {
			t.Errorf("syscallKindByName(%q) not found", name)
			continue
		}
		if got != kind {
			t.Errorf("syscallKindByName(%q) = %v, want %v", name, got, kind)
		}
	}
}

func TestNameFallsBackToNumberForUnknown(t *testing.T) {
	got := SysUnknown.Name(1234)
	want := "sys_1234"
	if got != want {
		t.Errorf("SysUnknown.Name(1234) = %q, want %q", got, want)
	}
}
