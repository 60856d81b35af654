package writer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descPolicyOnce sync.Once
	descPolicy     *bluemonday.Policy
)

// sanitizeDescription strips any markup from a user-entered description
// before it is stored as host tooltip metadata.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(descSanitizer().Sanitize(trimmed))
}

func descSanitizer() *bluemonday.Policy {
	descPolicyOnce.Do(func() {
		descPolicy = bluemonday.StrictPolicy()
	})
	return descPolicy
}
