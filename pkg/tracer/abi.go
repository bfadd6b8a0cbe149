package tracer

import (
	"fmt"
	"syscall"
)

// opcode bytes for the two supported syscall entry instructions, per
// spec.md §4.4: `syscall` (x86_64) is 0F 05, `int 0x80` (i386) is CD 80.
var (
	opcodeSyscall = [2]byte{0x0f, 0x05}
	opcodeInt80   = [2]byte{0xcd, 0x80}
)

// DetectABI determines the invocation ABI of the syscall the tracee just
// entered by inspecting the two bytes preceding its instruction pointer.
// Any value other than the two recognized opcodes is a protocol violation:
// it means the decoder's entry-opcode assumption no longer holds, which
// spec.md §4.4/§7 treats as a fatal engine bug, not a recoverable error.
func DetectABI(pid int, regs *syscall.PtraceRegs) (ABI, error) {
	ip := insnPointer(regs)
	if ip < 2 {
		return ABIUnknown, newProtocolViolation("abi-detect", fmt.Errorf("instruction pointer %#x too small to contain an opcode", ip))
	}

	var buf [2]byte
	if _, err := ReadBytes(pid, uintptr(ip-2), buf[:]); err != nil {
		return ABIUnknown, fmt.Errorf("reading entry opcode: %w", err)
	}

	switch buf {
	case opcodeSyscall:
		return ABIAmd64, nil
	case opcodeInt80:
		return ABI386, nil
	default:
		return ABIUnknown, newProtocolViolation("abi-detect",
			fmt.Errorf("unrecognized syscall entry opcode %02x%02x at rip-2", buf[0], buf[1]))
	}
}

// lookupSyscall resolves a raw kernel syscall number to a symbolic kind
// under the given ABI's table.
func lookupSyscall(abi ABI, number uint64) SyscallKind {
	switch abi {
	case ABI386:
		return lookupI386(number)
	default:
		return lookupAmd64(number)
	}
}
