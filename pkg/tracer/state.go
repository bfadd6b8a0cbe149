package tracer

// tracee is the per-PID record of spec.md §3: whether it is between
// syscall-enter and syscall-exit, and its last observed ABI (which can
// change across execve). Generalized from the teacher's ProcessState,
// stripped of the cwd/fdPaths bookkeeping that only existed to support
// overlay-FS path resolution (out of scope here — see DESIGN.md).
type tracee struct {
	pid       PID
	inSyscall bool
	abi       ABI
	attached  bool // true once the tracee's first stop has been consumed: set at creation for the initial tracee (waitInitialStop consumed it), on its initial SIGSTOP for an auto-attached child

	// enterArgs/enterSyscall/enterDetail remember the decoded syscall-enter
	// so the matching syscall-exit can pair retval with the right argument
	// tuple and kind, per spec.md §4.4. enterDetail additionally carries
	// anything that must be read before the tracee can destroy it (e.g.
	// execve's filename, gone from the address space after a successful
	// exec).
	enterArgs    [6]uint64
	enterSyscall SyscallKind
	enterDetail  SyscallDetail
}

// table is the tracking structure of spec.md §9 "Global state": a single
// owned map[PID]*tracee, exclusively mutated by the Driver's loop, so no
// synchronization is needed (the engine is single-threaded, per spec.md §5).
type table struct {
	tracees map[PID]*tracee
}

func newTable() *table {
	return &table{tracees: make(map[PID]*tracee)}
}

func (t *table) add(pid PID) *tracee {
	tr := &tracee{pid: pid}
	t.tracees[pid] = tr
	return tr
}

func (t *table) get(pid PID) (*tracee, bool) {
	tr, ok := t.tracees[pid]
	return tr, ok
}

func (t *table) remove(pid PID) {
	delete(t.tracees, pid)
}

func (t *table) empty() bool {
	return len(t.tracees) == 0
}

// toggleSyscall flips in_syscall on a syscall-stop and reports whether this
// stop is the Enter (false->true) half of the pair, per spec.md §4.3's
// invariant that enter/exit alternate strictly.
func (tr *tracee) toggleSyscall() (isEnter bool) {
	isEnter = !tr.inSyscall
	tr.inSyscall = !tr.inSyscall
	return isEnter
}
