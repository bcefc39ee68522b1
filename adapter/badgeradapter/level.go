package badgeradapter

// Level is the badger severity a line was logged at.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
)

// tag mirrors the prefixes of badger's default logger so lines read the same
// whichever logger the engine was given.
func (l Level) tag() string {
	switch l {
	case LevelDebug:
		return "DEBUG: "
	case LevelInfo:
		return "INFO: "
	case LevelWarning:
		return "WARNING: "
	default:
		return "ERROR: "
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	default:
		return "error"
	}
}
