package focusable

import (
	"github.com/go-drift/spatialnav/pkg/core"
	"github.com/go-drift/spatialnav/pkg/focus"
)

type parentKeyContext struct{}

// ProvideFocusKey makes key the parent focus key for handles created under
// scope and its descendants.
func ProvideFocusKey(scope *core.Scope, key string) {
	scope.Provide(parentKeyContext{}, key)
}

// ParentFocusKey returns the key provided by the nearest enclosing scope, or
// focus.RootFocusKey when none is. Empty keys are skipped in favor of the
// next provider up. A nil scope yields the root key.
func ParentFocusKey(scope *core.Scope) string {
	for s := scope; s != nil; s = s.Parent() {
		key, ok := core.LookupValue[string](s, parentKeyContext{})
		if !ok {
			break
		}
		if key != "" {
			return key
		}
	}
	return focus.RootFocusKey
}
