package tracer

import "syscall"

// decodeEnter reads registers on a syscall-enter stop, determines the ABI
// (spec.md §4.4), looks up the symbolic kind, and remembers the enter-time
// state on tr so the matching decodeExit can pair them.
func decodeEnter(pid int, tr *tracee) (Event, error) {
	var regs syscall.PtraceRegs
	if err := syscall.PtraceGetRegs(pid, &regs); err != nil {
		return Event{}, err
	}

	abi, err := DetectABI(pid, &regs)
	if err != nil {
		return Event{}, err
	}
	tr.abi = abi

	number := sysno(&regs)
	kind := lookupSyscall(abi, number)
	argv := args(&regs, abi)

	tr.enterArgs = argv
	tr.enterSyscall = kind
	tr.enterDetail = nil

	ev := Event{
		PID:     tr.pid,
		Kind:    EventSyscallEnter,
		Syscall: kind,
		ABI:     abi,
		Args:    argv,
	}

	// execve's filename must be read now: on success the tracee's address
	// space is replaced by the time the matching syscall-exit stop arrives,
	// so decodeExit can no longer see the argument the kernel looked up.
	switch kind {
	case SysExecve:
		tr.enterDetail = materializeExecve(pid, argv[0])
	case SysExecveat:
		tr.enterDetail = materializeExecve(pid, argv[1])
	}
	ev.Detail = tr.enterDetail

	return ev, nil
}

// decodeExit reads the return value on a syscall-exit stop and combines it
// with the remembered enter-time state to materialize a detail record when
// the kind has one, per spec.md §4.4.
func decodeExit(pid int, tr *tracee) (Event, error) {
	var regs syscall.PtraceRegs
	if err := syscall.PtraceGetRegs(pid, &regs); err != nil {
		return Event{}, err
	}

	ret := retval(&regs)
	kind := tr.enterSyscall
	argv := tr.enterArgs

	ev := Event{
		PID:     tr.pid,
		Kind:    EventSyscallExit,
		Syscall: kind,
		ABI:     tr.abi,
		Args:    argv,
	}

	switch kind {
	case SysRead, SysPread64:
		ev.Detail = materializeRead(pid, argv, ret)
	case SysExecve, SysExecveat:
		ev.Detail = tr.enterDetail
	}

	return ev, nil
}

// materializeRead implements spec.md §4.4's read(2) example precisely: if
// the return value, reinterpreted as a signed count, is non-negative, read
// exactly that many bytes from the buffer pointer; on an error return (a
// small negative value that is really -errno), the buffer is not touched —
// this is what original_source/example-programs/write-EBADF.c's analogous
// write(-1, ...) failure pins down for the write-side equivalent.
func materializeRead(pid int, argv [6]uint64, ret uint64) SyscallDetail {
	n := int64(ret)
	fd := int(int32(argv[0]))
	bufAddr := uintptr(argv[1])
	requested := int(argv[2])

	if n < 0 {
		return ReadDetail{FD: fd, RequestedLen: requested}
	}

	buf := make([]byte, n)
	if n > 0 {
		if _, err := ReadBytes(pid, bufAddr, buf); err != nil {
			return ReadDetail{FD: fd, RequestedLen: requested}
		}
	}

	return ReadDetail{FD: fd, RequestedLen: requested, Buf: buf}
}

// maxPathLen bounds the ReadString scan for a filename argument — Linux's
// own PATH_MAX, the same ceiling original_source/example-programs/execve.c
// operates under.
const maxPathLen = 4096

// materializeExecve implements the "execve-decoding path" of
// original_source/example-programs/execve.c: the filename must be read at
// syscall-enter, while the tracee's address space is still its pre-exec
// image — on a successful execve that image is gone by syscall-exit.
func materializeExecve(pid int, filenameAddr uint64) SyscallDetail {
	path, err := ReadString(pid, uintptr(filenameAddr), maxPathLen)
	if err != nil {
		return ExecveDetail{}
	}
	return ExecveDetail{Path: path}
}
