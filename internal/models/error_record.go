package models

import "fmt"

// ErrorLevel is an nginx error-log severity.
type ErrorLevel string

const (
	LevelEmerg  ErrorLevel = "emerg"
	LevelAlert  ErrorLevel = "alert"
	LevelCrit   ErrorLevel = "crit"
	LevelError  ErrorLevel = "error"
	LevelWarn   ErrorLevel = "warn"
	LevelNotice ErrorLevel = "notice"
	LevelInfo   ErrorLevel = "info"
	LevelDebug  ErrorLevel = "debug"
)

// ErrorLevels lists every recognised level, most severe first.
var ErrorLevels = []ErrorLevel{
	LevelEmerg,
	LevelAlert,
	LevelCrit,
	LevelError,
	LevelWarn,
	LevelNotice,
	LevelInfo,
	LevelDebug,
}

// ParseErrorLevel maps a token such as "crit" to its ErrorLevel.
func ParseErrorLevel(s string) (ErrorLevel, error) {
	for _, level := range ErrorLevels {
		if string(level) == s {
			return level, nil
		}
	}
	return "", fmt.Errorf("unknown error level: %q", s)
}

// IsCritical reports whether the level is crit or worse.
func (l ErrorLevel) IsCritical() bool {
	switch l {
	case LevelEmerg, LevelAlert, LevelCrit:
		return true
	}
	return false
}

// IsError reports whether the level is error or worse.
func (l ErrorLevel) IsError() bool {
	return l.IsCritical() || l == LevelError
}

// ErrorRecord is one error-log line that carried a bracketed severity token.
// RawLine is only kept for critical levels; it feeds the "recent critical" list.
type ErrorRecord struct {
	Level   ErrorLevel `json:"level"`
	Message string     `json:"message"`
	RawLine string     `json:"rawLine,omitempty"`
}
