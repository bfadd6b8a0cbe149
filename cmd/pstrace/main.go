package main

import (
	"fmt"
	"os"

	"github.com/nyxtrace/pstrace/pkg/tracer"

	"github.com/spf13/cobra"
)

var (
	configPath    string
	logLevel      string
	killOnSyscall string
	killOnCount   int
	killOnSignal  string
	noFollowChild bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pstrace [flags] -- command [args...]",
		Short: "Trace a program's syscalls using ptrace",
		Long: `pstrace runs a program under ptrace and reports every syscall, signal,
and lifecycle event it and its descendants produce.

Example:
  pstrace -- ls -la /tmp
  pstrace --kill-on-syscall write --kill-on-count 3 --kill-on-signal KILL -- ./flaky`,
		Args:               cobra.MinimumNArgs(1),
		DisableFlagParsing: false,
		RunE:               run,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML options file (pkg/tracer.Options)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "off|trace|debug (overrides PSTRACE_LOG_LEVEL)")
	rootCmd.Flags().BoolVar(&noFollowChild, "no-follow-children", false, "do not report fork/vfork/clone new-child events (descendants are still traced and their other events reported)")
	rootCmd.Flags().StringVar(&killOnSyscall, "kill-on-syscall", "", "syscall name that arms a kill rule")
	rootCmd.Flags().IntVar(&killOnCount, "kill-on-count", 1, "occurrence count that triggers the kill rule")
	rootCmd.Flags().StringVar(&killOnSignal, "kill-on-signal", "KILL", "signal name recorded for the kill rule (delivery always uses SIGKILL)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	status, bySignal, err := tracer.RunWithOptions(args, opts, printEvent)
	if err != nil {
		return err
	}
	if bySignal {
		fmt.Fprintf(os.Stderr, "pstrace: traced process died from a signal (status %d)\n", status)
	}
	os.Exit(status)
	return nil
}

func loadOptions() (tracer.Options, error) {
	opts := tracer.DefaultOptions()
	if configPath != "" {
		loaded, err := tracer.LoadOptions(configPath)
		if err != nil {
			return tracer.Options{}, err
		}
		opts = loaded
	}

	if noFollowChild {
		opts.FollowChildren = false
	}
	if logLevel != "" {
		opts.LogLevel = logLevel
	}
	if killOnSyscall != "" {
		opts.KillOn = &tracer.KillRule{
			Syscall:    killOnSyscall,
			Occurrence: killOnCount,
			Signal:     killOnSignal,
		}
	}

	return opts, nil
}

func printEvent(ev tracer.Event) {
	switch ev.Kind {
	case tracer.EventSyscallEnter:
		fmt.Printf("%d %s(%s) = ...\n", ev.PID, ev.Syscall, formatArgs(ev.Args))
	case tracer.EventSyscallExit:
		fmt.Printf("%d %s = <exit>\n", ev.PID, ev.Syscall)
	case tracer.EventSignalDelivery:
		fmt.Printf("%d --- signal %d ---\n", ev.PID, ev.Signal)
	case tracer.EventNewChild:
		fmt.Printf("%d forked child %d\n", ev.PID, ev.NewChild)
	case tracer.EventExec:
		fmt.Printf("%d execve\n", ev.PID)
	case tracer.EventExit:
		fmt.Printf("%d exited, status=%d\n", ev.PID, ev.ExitStatus)
	}
}

func formatArgs(args [6]uint64) string {
	return fmt.Sprintf("%#x, %#x, %#x, %#x, %#x, %#x",
		args[0], args[1], args[2], args[3], args[4], args[5])
}
