// Package launcher prepares the process environment for the Alpha Bot
// application and hands control to it.
package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"alphabot-launcher/config"
	"alphabot-launcher/utils"
)

// Banner goes out before anything else so platform logs show the service
// coming up even when the handoff fails.
const Banner = "🚀 Starting Alpha Bot v2.0..."

// Launcher resolves the environment and starts the application entry point.
type Launcher struct {
	cfg      *config.Config
	stdout   io.Writer
	launchID string

	// execve is swappable in tests; the real one never returns on success.
	execve func(argv0 string, argv []string, envv []string) error
}

// New returns a launcher writing its startup lines to os.Stdout.
func New(cfg *config.Config) *Launcher {
	return &Launcher{
		cfg:      cfg,
		stdout:   os.Stdout,
		launchID: uuid.New().String(),
		execve:   syscall.Exec,
	}
}

// Run prints the startup lines, pins PORT in the environment and hands off
// to the configured entry point. With exec handoff it only returns on
// failure; with spawn handoff the int is the child's exit status.
func (l *Launcher) Run() (int, error) {
	fmt.Fprintln(l.stdout, Banner)

	if l.cfg.StartupDelay > 0 {
		utils.LogInfo("applying startup delay", "launch_id", l.launchID, "delay", l.cfg.StartupDelay.String())
		time.Sleep(l.cfg.StartupDelay)
	}

	// PORT may have been unset or empty; the application must always see
	// the resolved value.
	if err := os.Setenv("PORT", l.cfg.Port); err != nil {
		return 0, fmt.Errorf("failed to set PORT: %w", err)
	}
	fmt.Fprintf(l.stdout, "Using PORT: %s\n", l.cfg.Port)

	if l.cfg.WorkDir != "" {
		if err := os.Chdir(l.cfg.WorkDir); err != nil {
			return 0, fmt.Errorf("failed to enter %s: %w", l.cfg.WorkDir, err)
		}
	}

	if l.cfg.ExecHandoff {
		return 0, l.execHandoff()
	}
	return l.spawnHandoff()
}

// execHandoff replaces the launcher's process image with the application.
func (l *Launcher) execHandoff() error {
	argv := l.cfg.Command
	path, err := exec.LookPath(argv[0])
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", argv[0], err)
	}
	utils.LogInfo("handing off", "launch_id", l.launchID, "target", path)
	return l.execve(path, argv, os.Environ())
}

// spawnHandoff starts the application as a child, forwards termination
// signals to it and reports its exit status.
func (l *Launcher) spawnHandoff() (int, error) {
	argv := l.cfg.Command
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", argv[0], err)
	}
	utils.LogInfo("application started", "launch_id", l.launchID, "pid", cmd.Process.Pid)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for sig := range signals {
			_ = cmd.Process.Signal(sig)
		}
	}()
	defer func() {
		signal.Stop(signals)
		close(signals)
	}()

	err := cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed waiting for %s: %w", argv[0], err)
	}
	return 0, nil
}
