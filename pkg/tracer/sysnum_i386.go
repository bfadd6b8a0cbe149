package tracer

// sysnumI386 maps the 32-bit (`int 0x80`) syscall numbers to symbolic
// kinds. Unlike sysnumAmd64, these cannot come from golang.org/x/sys/unix's
// SYS_* constants on an amd64 build (those name the host's native ABI), so
// the classic i386 table is reproduced directly — the same hand-const-block
// style the teacher used for its filesystem-subset SYS_* constants, just
// covering the i386 ABI instead of amd64. Numbers are not shared with
// sysnumAmd64 by design (spec.md §3): disagreement between the two tables
// is expected.
var sysnumI386 = map[uint64]SyscallKind{
	1:   SysExit,
	2:   SysFork,
	3:   SysRead,
	4:   SysWrite,
	5:   SysOpen,
	6:   SysClose,
	7:   SysWait4,
	9:   SysLink,
	10:  SysUnlink,
	11:  SysExecve,
	12:  SysChdir,
	15:  SysChmod,
	19:  SysLseek,
	20:  SysGetpid,
	33:  SysAccess,
	37:  SysKill,
	38:  SysRename,
	39:  SysMkdir,
	40:  SysRmdir,
	41:  SysDup,
	42:  SysPipe,
	45:  SysBrk,
	54:  SysIoctl,
	23:  SysSetuid,
	63:  SysDup2,
	64:  SysGetppid,
	83:  SysSymlink,
	85:  SysReadlink,
	90:  SysMmap,
	91:  SysMunmap,
	100: SysFstatfs,
	102: SysSocket,
	106: SysStat,
	108: SysFstat,
	114: SysWait4,
	120: SysClone,
	125: SysMprotect,
	140: SysLseek,
	141: SysGetdents64,
	142: SysSelect,
	158: SysSchedYield,
	162: SysNanosleep,
	172: SysPrctl,
	174: SysRtSigaction,
	175: SysRtSigprocmask,
	183: SysGetcwd,
	191: SysGetrlimit, // ugetrlimit, the 32-bit compat name for getrlimit
	192: SysMmap,
	195: SysStat,
	196: SysLstat,
	197: SysFstat,
	199: SysGetuid,
	200: SysGetgid,
	201: SysGeteuid,
	202: SysGetegid,
	219: SysMadvise,
	220: SysGetdents64,
	221: SysFcntl,
	78:  SysGettimeofday,
	240: SysFutex,
	252: SysExitGroup,
	258: SysSetTidAddress,
	265: SysClockGettime,
	267: SysClockNanosleep,
	295: SysOpenat,
	296: SysMkdirat,
	298: SysFchownat,
	300: SysNewfstatat,
	301: SysUnlinkat,
	302: SysRenameat,
	303: SysLinkat,
	304: SysSymlinkat,
	305: SysReadlinkat,
	306: SysFchmodat,
	307: SysFaccessat,
	311: SysSetRobustList,
	312: SysGetRobustList,
	330: SysDup3,
	331: SysPipe2,
	329: SysEpollCreate1,
	328: SysEventfd2,
	327: SysSignalfd4,
	340: SysPrlimit64,
	353: SysRenameat2,
	355: SysGetrandom,
	356: SysMemfdCreate,
	383: SysStatx,
	386: SysRseq,
	384: SysArchPrctl,
	437: SysOpenat2,
	439: SysFaccessat2,
}

func lookupI386(number uint64) SyscallKind {
	if kind, ok := sysnumI386[number]; ok {
		return kind
	}
	return SysUnknown
}
