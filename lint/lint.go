package lint

import (
	"fmt"
	"sort"
	"sync"
)

// Level is the reporting level configured for a lint.
type Level int

const (
	LevelAllow Level = iota // suppress entirely
	LevelWarn
	LevelDeny // report as error
)

func (l Level) String() string {
	switch l {
	case LevelAllow:
		return "allow"
	case LevelWarn:
		return "warn"
	case LevelDeny:
		return "deny"
	default:
		return "unknown"
	}
}

// ParseLevel parses a level name as written in config files and -A/-W/-D flags.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "allow":
		return LevelAllow, nil
	case "warn":
		return LevelWarn, nil
	case "deny":
		return LevelDeny, nil
	default:
		return LevelAllow, fmt.Errorf("unknown lint level %q (want allow, warn or deny)", name)
	}
}

// Severity returns the diagnostic severity a level maps to. LevelAllow has no
// severity; callers must suppress before asking.
func (l Level) Severity() Severity {
	if l == LevelDeny {
		return SeverityError
	}
	return SeverityWarning
}

// Lint describes one diagnostic category. Hard lints are language errors
// (they carry an error code) and ignore level configuration.
type Lint struct {
	Name    string
	Code    string
	Doc     string
	Default Level
	Hard    bool
}

var (
	registryMu sync.Mutex
	registry   = map[string]*Lint{}
)

// Register adds a lint to the global registry. It panics on duplicate names,
// which indicates a programming error in an analyzer package.
func Register(l *Lint) *Lint {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[l.Name]; ok {
		panic("lint: duplicate registration of " + l.Name)
	}
	registry[l.Name] = l
	return l
}

// Lookup returns the registered lint with the given name.
func Lookup(name string) (*Lint, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	l, ok := registry[name]
	return l, ok
}

// All returns every registered lint, sorted by name.
func All() []*Lint {
	registryMu.Lock()
	defer registryMu.Unlock()
	lints := make([]*Lint, 0, len(registry))
	for _, l := range registry {
		lints = append(lints, l)
	}
	sort.Slice(lints, func(i, j int) bool { return lints[i].Name < lints[j].Name })
	return lints
}
