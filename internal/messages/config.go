package messages

// Config messages for configuration loading and validation.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt = "missing config file %s: %w"
	// ConfigInvalidConfigFmt formats TOML syntax errors.
	ConfigInvalidConfigFmt = "invalid config %s: %w"
	// ConfigRootRequired indicates the project root path is required.
	ConfigRootRequired = "config root path is required"
	// ConfigValidationFailed is the sentinel text for validation failures.
	ConfigValidationFailed = "config validation failed"
	ConfigResolveHomeFmt   = "resolve home dir: %w"

	ConfigInstallerNameRequiredFmt  = "%s: installers[%d].name is required"
	ConfigInstallerNameDuplicateFmt = "%s: installers[%d].name %q duplicates installers[%d].name"
)
