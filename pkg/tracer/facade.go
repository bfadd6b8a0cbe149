package tracer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Sink receives every Event a trace produces, in order, per tracee. It is
// the callback shape StreamTrace uses; TraceToExit uses it internally just
// to discard events when the caller only wants the exit status.
type Sink func(Event)

// TraceToExit implements spec.md §6's simplest external interface: run argv
// to completion under the default Options, and return the initial tracee's
// exit status. It is StreamTrace with a Sink that does nothing.
func TraceToExit(argv []string) (int, error) {
	return StreamTrace(argv, func(Event) {})
}

// StreamTrace is RunWithOptions under DefaultOptions.
func StreamTrace(argv []string, sink Sink) (int, error) {
	status, _, err := RunWithOptions(argv, DefaultOptions(), sink)
	return status, err
}

// RunWithOptions spawns argv under ptrace and feeds every Event to sink
// until the initial tracee exits, then returns its exit status (spec.md
// §4.1's process convention: a fatal-signal death reports 128+signal).
// When opts.KillOn names a rule, a killWatcher observes the same stream and
// sends SIGKILL once the rule fires, whatever signal the rule names.
func RunWithOptions(argv []string, opts Options, sink Sink) (status int, bySignal bool, err error) {
	// Ptrace's process-level semantics (every request must come from the
	// thread that attached) require the calling goroutine to stay pinned to
	// one OS thread for the whole trace, same as the teacher's Tracer.Run.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if opts.LogLevel != "" {
		setLogLevel(opts.LogLevel)
	}

	var watcher *killWatcher
	if opts.KillOn != nil {
		watcher, err = newKillWatcher(opts.KillOn)
		if err != nil {
			return 0, false, newSetupError("kill-on", err)
		}
	}

	cmd, err := spawnTraced(argv)
	if err != nil {
		return 0, false, err
	}

	if err := waitInitialStop(cmd.Process.Pid); err != nil {
		killAndReap(cmd)
		return 0, false, err
	}

	d := newDriver(cmd.Process.Pid)
	inj := d.Injector()

	for ev := range d.Events() {
		if !opts.FollowChildren && ev.Kind == EventNewChild {
			continue
		}
		logEvent(ev)
		sink(ev)
		if watcher != nil {
			watcher.Observe(ev, inj)
		}
	}

	if err := d.Err(); err != nil {
		return 0, false, err
	}

	status, bySignal, ok := d.ExitStatus()
	if !ok {
		return 0, false, newProtocolViolation("no-exit",
			fmt.Errorf("pid %d: event stream ended without an exit for the initial tracee", cmd.Process.Pid))
	}
	return status, bySignal, nil
}

// killAndReap best-efforts cleanup of a started child whose initial stop
// waitInitialStop could not confirm, so the Driver never takes it over.
func killAndReap(cmd *exec.Cmd) {
	if cmd.Process == nil {
		return
	}
	_ = cmd.Process.Kill()
	_, _ = cmd.Process.Wait()
}
