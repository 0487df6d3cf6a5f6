package install

import (
	"strings"

	"github.com/stencilworks/stencil/internal/format"
	"github.com/stencilworks/stencil/internal/runloop"
)

// Sink receives one emitted output chunk at a time. Variadic console sinks
// are adapted to this single-string contract at the CLI boundary.
type Sink func(line string)

// Status carries the partition outcome into the deferred status task.
type Status struct {
	Commands []string
	Skipped  []string
}

// blockSeparator frames the status block and separates the run and skip
// sentences within it.
const blockSeparator = "\n\n"

// StatusTask returns the deferred task that emits the install/skip status
// block through sink. emphasize styles each command in the list (nil for the
// default bold). The returned task signals done exactly once on every path,
// including when nothing is emitted; the run loop depends on that.
func StatusTask(status Status, sink Sink, emphasize format.Emphasizer) runloop.TaskFunc {
	return func(done func()) {
		defer done()
		if sink == nil {
			return
		}
		var blocks []string
		running := format.InstallMessage(format.List(status.Commands, nil, emphasize), len(status.Commands))
		if running != "" {
			blocks = append(blocks, running)
		}
		skipping := format.SkipMessage(format.List(status.Skipped, nil, emphasize), len(status.Skipped))
		if skipping != "" {
			blocks = append(blocks, skipping)
		}
		if len(blocks) == 0 {
			return
		}
		sink(blockSeparator)
		sink(strings.Join(blocks, blockSeparator))
		sink(blockSeparator)
	}
}
