package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "stencil"
	// RootShort is the short description for the root command.
	RootShort       = "Stencil project generator CLI"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Run the configured dependency installers"
	InstallLong  = "Run the dependency installers configured in stencil.toml and report which commands ran and which were skipped."

	InstallFlagSkipInstall = "Skip running installers; every configured command is reported as skipped"
	InstallFlagSkipMessage = "Suppress the install status message"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Write a starter stencil.toml in the current directory"

	InitConfigExistsFmt = "%s already exists; remove it first to reinitialize"
	InitWroteConfigFmt  = "Wrote %s\n"
)
