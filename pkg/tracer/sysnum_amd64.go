package tracer

import "golang.org/x/sys/unix"

// sysnumAmd64 maps x86_64 kernel syscall numbers to symbolic kinds, built
// from golang.org/x/sys/unix's SYS_* constants rather than hand-copied
// numbers — grounded on other_examples/orivej-fptrace__amd64.go.
var sysnumAmd64 = map[uint64]SyscallKind{
	unix.SYS_READ:             SysRead,
	unix.SYS_WRITE:            SysWrite,
	unix.SYS_OPEN:             SysOpen,
	unix.SYS_CLOSE:            SysClose,
	unix.SYS_STAT:             SysStat,
	unix.SYS_FSTAT:            SysFstat,
	unix.SYS_LSTAT:            SysLstat,
	unix.SYS_POLL:             SysPoll,
	unix.SYS_LSEEK:            SysLseek,
	unix.SYS_MMAP:             SysMmap,
	unix.SYS_MPROTECT:         SysMprotect,
	unix.SYS_MUNMAP:           SysMunmap,
	unix.SYS_BRK:              SysBrk,
	unix.SYS_RT_SIGACTION:     SysRtSigaction,
	unix.SYS_RT_SIGPROCMASK:   SysRtSigprocmask,
	unix.SYS_IOCTL:            SysIoctl,
	unix.SYS_PREAD64:          SysPread64,
	unix.SYS_PWRITE64:         SysPwrite64,
	unix.SYS_ACCESS:           SysAccess,
	unix.SYS_PIPE:             SysPipe,
	unix.SYS_SELECT:           SysSelect,
	unix.SYS_SCHED_YIELD:      SysSchedYield,
	unix.SYS_DUP:              SysDup,
	unix.SYS_DUP2:             SysDup2,
	unix.SYS_NANOSLEEP:        SysNanosleep,
	unix.SYS_GETPID:           SysGetpid,
	unix.SYS_SOCKET:           SysSocket,
	unix.SYS_CONNECT:          SysConnect,
	unix.SYS_ACCEPT:           SysAccept,
	unix.SYS_SENDTO:           SysSendto,
	unix.SYS_RECVFROM:         SysRecvfrom,
	unix.SYS_EXECVE:           SysExecve,
	unix.SYS_EXIT:             SysExit,
	unix.SYS_WAIT4:            SysWait4,
	unix.SYS_KILL:             SysKill,
	unix.SYS_UNAME:            SysUname,
	unix.SYS_FCNTL:            SysFcntl,
	unix.SYS_FLOCK:            SysFlock,
	unix.SYS_FSYNC:            SysFsync,
	unix.SYS_GETDENTS64:       SysGetdents64,
	unix.SYS_GETCWD:           SysGetcwd,
	unix.SYS_CHDIR:            SysChdir,
	unix.SYS_FCHDIR:           SysFchdir,
	unix.SYS_RENAME:           SysRename,
	unix.SYS_MKDIR:            SysMkdir,
	unix.SYS_RMDIR:            SysRmdir,
	unix.SYS_UNLINK:           SysUnlink,
	unix.SYS_LINK:             SysLink,
	unix.SYS_SYMLINK:          SysSymlink,
	unix.SYS_READLINK:         SysReadlink,
	unix.SYS_CHMOD:            SysChmod,
	unix.SYS_FCHMOD:           SysFchmod,
	unix.SYS_CHOWN:            SysChown,
	unix.SYS_FCHOWN:           SysFchown,
	unix.SYS_UMASK:            SysUmask,
	unix.SYS_GETUID:           SysGetuid,
	unix.SYS_GETEUID:          SysGeteuid,
	unix.SYS_GETGID:           SysGetgid,
	unix.SYS_GETEGID:          SysGetegid,
	unix.SYS_SETUID:           SysSetuid,
	unix.SYS_SETGID:           SysSetgid,
	unix.SYS_GETPPID:          SysGetppid,
	unix.SYS_STATFS:           SysStatfs,
	unix.SYS_FSTATFS:          SysFstatfs,
	unix.SYS_PRCTL:            SysPrctl,
	unix.SYS_ARCH_PRCTL:       SysArchPrctl,
	unix.SYS_GETTIMEOFDAY:     SysGettimeofday,
	unix.SYS_CLOCK_GETTIME:    SysClockGettime,
	unix.SYS_EXIT_GROUP:       SysExitGroup,
	unix.SYS_TGKILL:           SysTgkill,
	unix.SYS_FUTEX:            SysFutex,
	unix.SYS_SET_TID_ADDRESS:  SysSetTidAddress,
	unix.SYS_SET_ROBUST_LIST:  SysSetRobustList,
	unix.SYS_GET_ROBUST_LIST:  SysGetRobustList,
	unix.SYS_RSEQ:             SysRseq,
	unix.SYS_EPOLL_CREATE1:    SysEpollCreate1,
	unix.SYS_EVENTFD2:         SysEventfd2,
	unix.SYS_SIGNALFD4:        SysSignalfd4,
	unix.SYS_PIPE2:            SysPipe2,
	unix.SYS_DUP3:             SysDup3,
	unix.SYS_CLONE:            SysClone,
	unix.SYS_VFORK:            SysVfork,
	unix.SYS_FORK:             SysFork,
	unix.SYS_OPENAT:           SysOpenat,
	unix.SYS_MKDIRAT:          SysMkdirat,
	unix.SYS_FCHOWNAT:         SysFchownat,
	unix.SYS_NEWFSTATAT:       SysNewfstatat,
	unix.SYS_UNLINKAT:         SysUnlinkat,
	unix.SYS_RENAMEAT:         SysRenameat,
	unix.SYS_RENAMEAT2:        SysRenameat2,
	unix.SYS_LINKAT:           SysLinkat,
	unix.SYS_SYMLINKAT:        SysSymlinkat,
	unix.SYS_READLINKAT:       SysReadlinkat,
	unix.SYS_FCHMODAT:         SysFchmodat,
	unix.SYS_FACCESSAT:        SysFaccessat,
	unix.SYS_FACCESSAT2:       SysFaccessat2,
	unix.SYS_STATX:            SysStatx,
	unix.SYS_EXECVEAT:         SysExecveat,
	unix.SYS_OPENAT2:          SysOpenat2,
	unix.SYS_GETRANDOM:        SysGetrandom,
	unix.SYS_MEMFD_CREATE:     SysMemfdCreate,
	unix.SYS_PRLIMIT64:        SysPrlimit64,
	unix.SYS_CLOCK_NANOSLEEP:  SysClockNanosleep,
}

func lookupAmd64(number uint64) SyscallKind {
	if kind, ok := sysnumAmd64[number]; ok {
		return kind
	}
	return SysUnknown
}
