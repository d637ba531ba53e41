// Package constants provides shared constants used throughout docverify.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Application identity
const (
	// AppName is the binary and config file stem
	AppName = "docverify"

	// ConfigFileName is the config file looked up in $HOME and the working directory
	ConfigFileName = ".docverify"

	// SampleCaseName identifies the embedded sample case in logs and output
	SampleCaseName = "sample"
)

// Limit constants
const (
	// MaxCaseFileSize bounds how much of a case file is read (bytes)
	MaxCaseFileSize = 8 << 20

	// MaxRiskScore is the upper bound of the reconciliation risk score
	MaxRiskScore = 100

	// PreviewWrapWidth is the word-wrap width for rendered document previews
	PreviewWrapWidth = 100
)
