package printlog

import (
	"fmt"
	"strings"
)

// Severity identifies the logging level of a message. Each severity maps to
// exactly one file tag and one color key in the [Config] color table.
type Severity int

const (
	// SeverityNormal is the level used by plain Print calls. It shares the
	// INFO tag but renders with the "normal" console color.
	SeverityNormal Severity = iota
	// SeverityInfo is for general operational messages.
	SeverityInfo
	// SeveritySuccess is for successful completion of an operation.
	SeveritySuccess
	// SeverityWarning is for conditions that need attention but don't
	// prevent operation.
	SeverityWarning
	// SeverityError is for failures. Error messages flush the console
	// immediately by default.
	SeverityError
	// SeverityDebug is for diagnostic detail.
	SeverityDebug
	// SeverityCritical is for failures that require immediate attention.
	// Critical messages flush the console immediately by default.
	SeverityCritical
)

// String returns the lowercase name of the severity. The name doubles as the
// key into the [Config] color table.
func (s Severity) String() string {
	switch s {
	case SeverityNormal:
		return "normal"
	case SeverityInfo:
		return "info"
	case SeveritySuccess:
		return "success"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityDebug:
		return "debug"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a user-provided severity name to a Severity.
// Matching is case-insensitive and accepts "warn" as an alias for "warning".
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "normal":
		return SeverityNormal, nil
	case "info":
		return SeverityInfo, nil
	case "success":
		return SeveritySuccess, nil
	case "warn", "warning":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "debug":
		return SeverityDebug, nil
	case "critical", "crit":
		return SeverityCritical, nil
	default:
		return SeverityInfo, fmt.Errorf("invalid severity: %s", name)
	}
}

// Severities returns every severity in declaration order.
func Severities() []Severity {
	return []Severity{
		SeverityNormal,
		SeverityInfo,
		SeveritySuccess,
		SeverityWarning,
		SeverityError,
		SeverityDebug,
		SeverityCritical,
	}
}
