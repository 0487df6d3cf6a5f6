package install

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stencilworks/stencil/internal/format"
	"github.com/stencilworks/stencil/internal/runloop"
)

type recordingQueue struct {
	adds []queueAdd
}

type queueAdd struct {
	queue string
	task  runloop.TaskFunc
	opts  runloop.Options
}

func (q *recordingQueue) Add(queue string, task runloop.TaskFunc, opts runloop.Options) {
	q.adds = append(q.adds, queueAdd{queue: queue, task: task, opts: opts})
}

func TestInstallers_RunsEnabledInstallersInOrder(t *testing.T) {
	var ran []string
	o := &Orchestrator{
		Registry: NewRegistry(
			Entry{Name: "npm", Enabled: true},
			Entry{Name: "composer", Enabled: true},
		),
		Runner: RunnerFunc(func(name string) { ran = append(ran, name) }),
		Queue:  &recordingQueue{},
	}

	doneCalls := 0
	o.Installers(func() { doneCalls++ })

	require.Equal(t, []string{"npm", "composer"}, ran)
	require.Equal(t, 1, doneCalls)
}

func TestInstallers_DisabledInstallerSkippedButStillReported(t *testing.T) {
	var ran []string
	var emitted []string
	queue := &recordingQueue{}
	o := &Orchestrator{
		Registry: NewRegistry(
			Entry{Name: "npm", Enabled: true},
			Entry{Name: "composer", Enabled: false},
		),
		Runner:    RunnerFunc(func(name string) { ran = append(ran, name) }),
		Queue:     queue,
		Sink:      func(line string) { emitted = append(emitted, line) },
		Emphasize: format.Plain,
	}

	o.Installers(nil)

	require.Equal(t, []string{"npm"}, ran)
	require.Len(t, queue.adds, 1)

	queue.adds[0].task(func() {})
	require.Len(t, emitted, 3)
	require.Contains(t, emitted[1], "npm install")
	require.Contains(t, emitted[1], "composer install")
	require.Contains(t, emitted[1], "Skipping")
}

func TestInstallers_EnqueuesExactlyOneStatusTask(t *testing.T) {
	queue := &recordingQueue{}
	o := &Orchestrator{
		Registry: NewRegistry(Entry{Name: "npm", Enabled: true}),
		Runner:   RunnerFunc(func(string) {}),
		Queue:    queue,
	}

	o.Installers(nil)

	require.Len(t, queue.adds, 1)
	require.Equal(t, QueueInstall, queue.adds[0].queue)
	require.Equal(t, runloop.Options{Once: "installMessage", Run: false}, queue.adds[0].opts)
}

func TestInstallers_SkipMessageSuppressesScheduling(t *testing.T) {
	var ran []string
	queue := &recordingQueue{}
	o := &Orchestrator{
		Registry: NewRegistry(Entry{Name: "npm", Enabled: true}),
		Runner:   RunnerFunc(func(name string) { ran = append(ran, name) }),
		Queue:    queue,
		Options:  Options{SkipMessage: true},
	}

	doneCalls := 0
	o.Installers(func() { doneCalls++ })

	require.Equal(t, []string{"npm"}, ran)
	require.Empty(t, queue.adds)
	require.Equal(t, 1, doneCalls)
}

func TestInstallers_EmptyRegistrySchedulesNoOpStatusTask(t *testing.T) {
	var emitted []string
	queue := &recordingQueue{}
	o := &Orchestrator{
		Registry: NewRegistry(),
		Runner:   RunnerFunc(func(string) { t.Fatal("runner must not be invoked") }),
		Queue:    queue,
		Sink:     func(line string) { emitted = append(emitted, line) },
	}

	doneCalls := 0
	o.Installers(func() { doneCalls++ })
	require.Equal(t, 1, doneCalls)
	require.Len(t, queue.adds, 1)

	taskDone := 0
	queue.adds[0].task(func() { taskDone++ })
	require.Empty(t, emitted)
	require.Equal(t, 1, taskDone)
}

func TestInstallers_NilRegistryAndQueue(t *testing.T) {
	doneCalls := 0
	o := &Orchestrator{}
	o.Installers(func() { doneCalls++ })
	require.Equal(t, 1, doneCalls)
}

func TestInstallers_RepeatedCallsCollapseOnRealLoop(t *testing.T) {
	var emitted []string
	loop := runloop.New(QueueInstall)
	o := &Orchestrator{
		Registry:  NewRegistry(Entry{Name: "npm", Enabled: true}),
		Runner:    RunnerFunc(func(string) {}),
		Queue:     loop,
		Sink:      func(line string) { emitted = append(emitted, line) },
		Emphasize: format.Plain,
	}

	o.Installers(nil)
	o.Installers(nil)
	loop.Run()

	// Two orchestration calls within one loop pass collapse to one status block.
	require.Len(t, emitted, 3)
}

func TestInstallers_StatusTaskNotInvokedDirectly(t *testing.T) {
	var emitted []string
	queue := &recordingQueue{}
	o := &Orchestrator{
		Registry: NewRegistry(Entry{Name: "npm", Enabled: true}),
		Runner:   RunnerFunc(func(string) {}),
		Queue:    queue,
		Sink:     func(line string) { emitted = append(emitted, line) },
	}

	o.Installers(nil)

	// Nothing is emitted until the loop invokes the deferred task.
	require.Empty(t, emitted)
}
