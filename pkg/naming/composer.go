// Package naming composes the generated attribute names for a batch from a
// base name, free-text prefix/suffix, and an optional zero-padded running
// counter.
package naming

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyName signals that every name part was empty, leaving nothing to
// compose. The whole batch aborts on the first occurrence.
var ErrEmptyName = errors.New("naming: composed name is empty")

// Config describes how names are assembled around the base name.
type Config struct {
	// BaseName is the central token of every generated name.
	BaseName string
	// Prefix and Suffix are optional free-text tokens wrapped around the rest.
	Prefix string
	Suffix string
	// AutoIncrement controls whether the running counter token is emitted.
	AutoIncrement bool
	// StartIndex is where the counter starts. Zero (or negative) means 1.
	StartIndex int
	// NumberAsPrefix places the counter token before the base name instead of
	// after it.
	NumberAsPrefix bool
}

// EffectiveStart returns the index of the first generated name.
func (c Config) EffectiveStart() int {
	if c.StartIndex > 0 {
		return c.StartIndex
	}
	return 1
}

// Compose produces count names in generation order. The running index always
// advances, even when AutoIncrement is off and the token is not emitted, so a
// later toggle-on resumes at the expected position. Returns ErrEmptyName if a
// composed name ends up empty.
func Compose(cfg Config, count int) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("naming: count must be at least 1, got %d", count)
	}

	names := make([]string, 0, count)
	idx := cfg.EffectiveStart()
	for i := 0; i < count; i++ {
		token := ""
		if cfg.AutoIncrement {
			token = counterToken(idx)
		}

		var parts []string
		if cfg.NumberAsPrefix {
			parts = []string{cfg.Prefix, token, cfg.BaseName, cfg.Suffix}
		} else {
			parts = []string{cfg.Prefix, cfg.BaseName, token, cfg.Suffix}
		}

		name := join(parts)
		if name == "" {
			return nil, ErrEmptyName
		}
		names = append(names, name)
		idx++
	}
	return names, nil
}

// counterToken renders the running index as a 3-digit zero-padded decimal
// followed by an underscore. The field widens past 3 digits rather than
// truncating.
func counterToken(idx int) string {
	return fmt.Sprintf("%03d_", idx)
}

func join(parts []string) string {
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(part)
	}
	return b.String()
}
