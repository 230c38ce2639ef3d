package logging

import "go.llib.dev/lazytake/pkg/errorkit"

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

const ErrInvalidLevel errorkit.Error = "ErrInvalidLevel"

type Level string

func (ll Level) String() string { return string(ll) }

// ParseLevel maps a level name, as found in configuration, to a Level.
// The empty name is the default level.
func ParseLevel(name string) (Level, error) {
	if name == "" {
		return defaultLevel, nil
	}
	lvl := Level(name)
	if _, ok := levelPriorityMapping[lvl]; !ok {
		return "", ErrInvalidLevel.F("%q", name)
	}
	return lvl, nil
}

var defaultLevel Level = LevelInfo

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,
}

func isLevelEnabled(target, level Level) bool {
	return levelPriorityMapping[target] <= levelPriorityMapping[level]
}
