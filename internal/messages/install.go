package messages

// Installer status messages.
const (
	// InstallRunningFmt announces the install commands about to run. The
	// first verb is the formatted command list, the second the pluralized
	// noun from InstallNounSingular/InstallNounPlural.
	InstallRunningFmt = "Running %s to install the required dependencies. If this fails, try running the %s yourself."
	// InstallSkippingFmt announces the install commands that were skipped.
	// The double space after "ready" is deliberate; downstream output
	// snapshots match this sentence verbatim.
	InstallSkippingFmt = "Skipping %s. When you are ready  to install these dependencies, run the %s yourself."

	// InstallNounSingular is substituted into the sentences above for a
	// single command; InstallNounPlural for any other count.
	InstallNounSingular = "command"
	InstallNounPlural   = "commands"

	// InstallListSuffix is appended to each installer name when building
	// the command list ("npm" becomes "npm install").
	InstallListSuffix = " install"
)

// Runner warnings. Install execution is fire-and-forget, so failures are
// reported here rather than returned.
const (
	// RunnerNotFoundFmt warns that a configured installer is missing from PATH.
	RunnerNotFoundFmt = "Warning: %s not found on PATH; run %q yourself\n"
	// RunnerFailedFmt warns that an install command exited with an error.
	RunnerFailedFmt = "Warning: %s failed: %v\n"
)
