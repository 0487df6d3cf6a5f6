// Package install decides which dependency installers run after scaffolding,
// reports which ran versus which were skipped, and defers the status output
// through the run loop so it prints at the correct point in the generator
// lifecycle.
package install

import (
	"github.com/stencilworks/stencil/internal/format"
	"github.com/stencilworks/stencil/internal/runloop"
)

// QueueInstall is the run-loop queue carrying the deferred status task.
const QueueInstall = "install"

// onceStatusMessage collapses repeated status tasks within one loop pass.
const onceStatusMessage = "installMessage"

// Runner triggers installation for a named package manager. Failures are the
// runner's to report; the orchestrator fires and forgets.
type Runner interface {
	RunInstall(name string)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(name string)

// RunInstall calls f.
func (f RunnerFunc) RunInstall(name string) {
	f(name)
}

// Queue is the deferred task registration surface of the run loop. The
// orchestrator never invokes the task itself; execution timing and
// deduplication belong to the loop.
type Queue interface {
	Add(queue string, task runloop.TaskFunc, opts runloop.Options)
}

// Options controls orchestration behavior.
type Options struct {
	// SkipMessage suppresses scheduling of the status task. Default false.
	SkipMessage bool
}

// Orchestrator runs the post-scaffolding install phase. All collaborators
// are injected; the orchestrator holds no ambient state and is a pure
// function of its inputs plus the collaborators' effects.
type Orchestrator struct {
	Registry  *Registry
	Runner    Runner
	Queue     Queue
	Sink      Sink
	Emphasize format.Emphasizer
	Options   Options
}

// Installers partitions the registry, invokes the runner for every enabled
// installer in registration order, and enqueues one deferred status task
// unless Options.SkipMessage suppresses it. done fires exactly once before
// return on every path.
func (o *Orchestrator) Installers(done func()) {
	if done == nil {
		done = func() {}
	}
	defer done()

	var part Partition
	if o.Registry != nil {
		part = o.Registry.Partition()
	}
	if o.Runner != nil {
		for _, name := range part.Commands {
			o.Runner.RunInstall(name)
		}
	}
	if o.Options.SkipMessage || o.Queue == nil {
		return
	}
	task := StatusTask(Status{Commands: part.Commands, Skipped: part.Skipped}, o.Sink, o.Emphasize)
	o.Queue.Add(QueueInstall, task, runloop.Options{Once: onceStatusMessage, Run: false})
}
