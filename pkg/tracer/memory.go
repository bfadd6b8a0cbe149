package tracer

import (
	"syscall"
	"unsafe"
)

// ReadString reads a NUL-terminated string from the tracee's address space,
// up to maxLen bytes. Grounded on the teacher's memory.go, trimmed to the
// read-only half this engine needs — spec.md explicitly rules out mutating
// tracee memory, so WriteBytes/WriteString are not carried over (see
// DESIGN.md).
func ReadString(pid int, addr uintptr, maxLen int) (string, error) {
	if addr == 0 {
		return "", nil
	}
	buf := make([]byte, maxLen)
	n, err := ReadBytes(pid, addr, buf)
	if err != nil {
		return "", err
	}
	for i := 0; i < n; i++ {
		if buf[i] == 0 {
			return string(buf[:i]), nil
		}
	}
	return string(buf[:n]), nil
}

// ReadBytes reads len(buf) bytes from the tracee's address space via
// PTRACE_PEEKDATA, word-granular as the kernel requires. A short read
// across a page boundary is reported as a partial read (spec.md §4.4),
// not an error, so long as the first word succeeded.
func ReadBytes(pid int, addr uintptr, buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	wordSize := int(unsafe.Sizeof(uintptr(0)))
	words := (len(buf) + wordSize - 1) / wordSize

	for i := 0; i < words; i++ {
		var wordBuf [8]byte
		_, err := syscall.PtracePeekData(pid, addr+uintptr(i*wordSize), wordBuf[:])
		if err != nil {
			if i == 0 {
				return 0, err
			}
			return i * wordSize, nil
		}

		start := i * wordSize
		end := start + wordSize
		if end > len(buf) {
			end = len(buf)
		}
		copy(buf[start:end], wordBuf[:end-start])
	}

	return len(buf), nil
}
