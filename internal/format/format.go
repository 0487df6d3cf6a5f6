// Package format builds the user-facing installer status sentences.
package format

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/stencilworks/stencil/internal/messages"
)

// Emphasizer decorates one formatted list element for display.
type Emphasizer func(string) string

// Bold wraps s in terminal bold styling.
func Bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}

// Plain returns s unchanged. Used when output is not an interactive terminal.
func Plain(s string) string {
	return s
}

// InstallMessage returns the sentence announcing the commands about to run.
// command is the already-formatted command list; count pluralizes the
// trailing noun. Returns the empty string when count is zero.
func InstallMessage(command string, count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf(messages.InstallRunningFmt, command, noun(count))
}

// SkipMessage returns the sentence announcing the commands that were skipped.
// Same contract as InstallMessage.
func SkipMessage(command string, count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf(messages.InstallSkippingFmt, command, noun(count))
}

// List renders installer names as an emphasized command list. Each item is
// passed through transform (nil for identity), suffixed with " install", and
// emphasized (nil for Bold). The emphasized elements are then oxford-joined.
func List(items []string, transform func(string) string, emphasize Emphasizer) string {
	if transform == nil {
		transform = func(s string) string { return s }
	}
	if emphasize == nil {
		emphasize = Bold
	}
	formatted := make([]string, 0, len(items))
	for _, item := range items {
		formatted = append(formatted, emphasize(transform(item)+messages.InstallListSuffix))
	}
	return joinOxford(formatted)
}

// joinOxford joins parts with "and" before the final element. Two elements
// take no comma; three or more take an oxford comma.
func joinOxford(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " and " + parts[1]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + ", and " + parts[len(parts)-1]
	}
}

func noun(count int) string {
	if count == 1 {
		return messages.InstallNounSingular
	}
	return messages.InstallNounPlural
}
