package runner

import (
	"bytes"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilworks/stencil/internal/testutil"
)

type fakeSystem struct {
	lookErr error
	runErr  error
	looked  []string
	cmds    []*exec.Cmd
}

func (f *fakeSystem) LookPath(name string) (string, error) {
	f.looked = append(f.looked, name)
	if f.lookErr != nil {
		return "", f.lookErr
	}
	return "/fake/bin/" + name, nil
}

func (f *fakeSystem) Run(cmd *exec.Cmd) error {
	f.cmds = append(f.cmds, cmd)
	return f.runErr
}

func TestRunInstall_BuildsInstallCommand(t *testing.T) {
	sys := &fakeSystem{}
	var warn bytes.Buffer
	r := &Runner{Dir: "/project", WarnWriter: &warn, System: sys}

	r.RunInstall("npm")

	require.Equal(t, []string{"npm"}, sys.looked)
	require.Len(t, sys.cmds, 1)
	require.Equal(t, "/fake/bin/npm", sys.cmds[0].Path)
	require.Equal(t, []string{"/fake/bin/npm", "install"}, sys.cmds[0].Args)
	require.Equal(t, "/project", sys.cmds[0].Dir)
	require.Empty(t, warn.String())
}

func TestRunInstall_MissingInstallerWarnsAndSkips(t *testing.T) {
	sys := &fakeSystem{lookErr: exec.ErrNotFound}
	var warn bytes.Buffer
	r := &Runner{WarnWriter: &warn, System: sys}

	r.RunInstall("composer")

	require.Empty(t, sys.cmds)
	require.Contains(t, warn.String(), "composer not found on PATH")
	require.Contains(t, warn.String(), `"composer install"`)
}

func TestRunInstall_FailureIsWarnedNotReturned(t *testing.T) {
	sys := &fakeSystem{runErr: exec.ErrNotFound}
	var warn bytes.Buffer
	r := &Runner{WarnWriter: &warn, System: sys}

	r.RunInstall("npm")

	require.Contains(t, warn.String(), "npm install failed")
}

func TestRunInstall_RealSystemRunsStub(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubExpectArg(t, dir, "npm", "install")
	t.Setenv("PATH", dir)

	var warn bytes.Buffer
	r := &Runner{Dir: dir, WarnWriter: &warn}

	r.RunInstall("npm")

	require.Empty(t, warn.String())
}

func TestRunInstall_RealSystemFailingStubWarns(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteStubWithExit(t, dir, "npm", 1)
	t.Setenv("PATH", dir)

	var warn bytes.Buffer
	r := &Runner{Dir: dir, WarnWriter: &warn}

	r.RunInstall("npm")

	require.Contains(t, warn.String(), "npm install failed")
}
