//go:build amd64

package tracer

import "syscall"

// Register accessors for the x86_64 calling convention. Only amd64 hosts are
// supported: the same binary decodes both the native x86_64 ABI and, for
// tracees that entered via `int 0x80`, the i386 ABI — see abi.go.

func sysno(regs *syscall.PtraceRegs) uint64 { return regs.Orig_rax }
func retval(regs *syscall.PtraceRegs) uint64 { return regs.Rax }
func insnPointer(regs *syscall.PtraceRegs) uint64 { return regs.Rip }

// args returns the raw six-argument register tuple in calling-convention
// order, for whichever ABI the tracee entered under. A tracee that entered
// via `int 0x80` (abi == ABI386) passes its arguments in ebx,ecx,edx,esi,
// edi,ebp; the native x86_64 `syscall` instruction uses rdi,rsi,rdx,r10,r8,
// r9. Both sets live in the same syscall.PtraceRegs struct regardless of
// which convention the tracee used, so picking the wrong one silently reads
// the wrong argument registers rather than failing.
func args(regs *syscall.PtraceRegs, abi ABI) [6]uint64 {
	if abi == ABI386 {
		return [6]uint64{
			regs.Rbx, regs.Rcx, regs.Rdx,
			regs.Rsi, regs.Rdi, regs.Rbp,
		}
	}
	return [6]uint64{
		regs.Rdi, regs.Rsi, regs.Rdx,
		regs.R10, regs.R8, regs.R9,
	}
}
