package telemetry

import "fmt"

// Level is the severity of a log entry, ordered from least to most verbose.
type Level int

const (
	LevelNone Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	case LevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name written all in lower case or all in upper
// case (as read from a config file or the POCKETCORE_LOG_LEVEL environment
// variable) to a Level. Mixed-case and unrecognised names fall back to
// LevelInfo.
func ParseLevel(name string) Level {
	switch name {
	case "none", "NONE":
		return LevelNone
	case "error", "ERROR":
		return LevelError
	case "warn", "WARN", "warning", "WARNING":
		return LevelWarn
	case "info", "INFO", "":
		return LevelInfo
	case "debug", "DEBUG":
		return LevelDebug
	case "trace", "TRACE":
		return LevelTrace
	default:
		return LevelInfo
	}
}

// Component identifies the subsystem that produced a log entry.
type Component string

const (
	ComponentCPU        Component = "CPU"
	ComponentMemory     Component = "Memory"
	ComponentCartridge  Component = "Cartridge"
	ComponentSystem     Component = "System"
)

// Entry is a single recorded log line.
type Entry struct {
	Component Component
	Level     Level
	Message   string
}

// Format renders an entry the way the CPU's dump-status trace expects:
// "tag: message".
func (e Entry) Format() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Message)
}
