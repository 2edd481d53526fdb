package lint

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Levels maps lint names to configured levels. Lints without an entry run at
// their default level; hard lints ignore the map entirely.
type Levels map[string]Level

// For returns the effective level for a lint.
func (m Levels) For(l *Lint) Level {
	if l.Hard {
		return LevelDeny
	}
	if level, ok := m[l.Name]; ok {
		return level
	}
	return l.Default
}

// Set records an override, validating that the lint exists.
func (m Levels) Set(name string, level Level) error {
	if _, ok := Lookup(name); !ok {
		return fmt.Errorf("unknown lint %q", name)
	}
	m[name] = level
	return nil
}

type levelsFile struct {
	Lints map[string]string `yaml:"lints"`
}

// LoadLevels reads a level configuration file of the form:
//
//	lints:
//	  unused_parens: allow
//	  while_true: deny
func LoadLevels(path string) (Levels, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lint config: %w", err)
	}
	var f levelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse lint config %s: %w", path, err)
	}
	levels := make(Levels, len(f.Lints))
	for name, value := range f.Lints {
		level, err := ParseLevel(value)
		if err != nil {
			return nil, fmt.Errorf("lint config %s: %s: %w", path, name, err)
		}
		if err := levels.Set(name, level); err != nil {
			return nil, fmt.Errorf("lint config %s: %w", path, err)
		}
	}
	return levels, nil
}
