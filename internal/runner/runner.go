// Package runner spawns the external package-manager install commands.
package runner

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/stencilworks/stencil/internal/messages"
)

// System abstracts process lookup and execution so tests can stub the
// package managers. Package-local, following the same seam pattern the
// config loader uses for the filesystem.
type System interface {
	LookPath(name string) (string, error)
	Run(cmd *exec.Cmd) error
}

// RealSystem implements System using the host OS.
type RealSystem struct{}

// LookPath searches PATH for the named executable.
func (RealSystem) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run starts cmd and waits for it to complete.
func (RealSystem) Run(cmd *exec.Cmd) error {
	return cmd.Run()
}

// Runner executes `<name> install` in Dir, streaming process output to
// Stdout and Stderr. Failures are reported to WarnWriter and never
// propagated; install execution is fire-and-forget from the orchestrator's
// contract.
type Runner struct {
	Dir        string
	Stdout     io.Writer
	Stderr     io.Writer
	WarnWriter io.Writer
	System     System
}

// RunInstall runs the named installer's install command.
func (r *Runner) RunInstall(name string) {
	sys := r.System
	if sys == nil {
		sys = RealSystem{}
	}
	warn := r.WarnWriter
	if warn == nil {
		warn = os.Stderr
	}
	path, err := sys.LookPath(name)
	if err != nil {
		_, _ = fmt.Fprintf(warn, messages.RunnerNotFoundFmt, name, name+" install")
		return
	}
	cmd := exec.Command(path, "install")
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	if err := sys.Run(cmd); err != nil {
		_, _ = fmt.Fprintf(warn, messages.RunnerFailedFmt, name+" install", err)
	}
}
