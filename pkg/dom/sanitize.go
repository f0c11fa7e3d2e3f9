package dom

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicyOnce sync.Once
	fragmentPolicy     *bluemonday.Policy
)

// SanitizeFragment strips everything from fragment except the structural
// markup feedback elements are built from.
func SanitizeFragment(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(fragmentSanitizer().Sanitize(trimmed))
}

func fragmentSanitizer() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("div", "ul", "li", "span")
		policy.AllowAttrs("id", "class").Globally()
		policy.AllowStyles("display").MatchingEnum("block", "none").OnElements("div")
		fragmentPolicy = policy
	})
	return fragmentPolicy
}
