// Package exitcode provides standardized exit codes for licet
package exitcode

// Exit codes for the licet CLI
const (
	Success           = 0
	GeneralError      = 1
	ConfigError       = 2
	ValidationError   = 3
	FileSystemError   = 4
	UnsupportedFormat = 5
	PolicyViolation   = 6
)

// String returns a human-readable description of the exit code
func String(code int) string {
	switch code {
	case Success:
		return "Success"
	case GeneralError:
		return "General error"
	case ConfigError:
		return "Configuration error"
	case ValidationError:
		return "Validation error"
	case FileSystemError:
		return "File system error"
	case UnsupportedFormat:
		return "Unsupported format"
	case PolicyViolation:
		return "Policy violation"
	default:
		return "Unknown error"
	}
}
