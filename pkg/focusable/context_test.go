package focusable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/spatialnav/pkg/core"
	"github.com/go-drift/spatialnav/pkg/focus"
)

func TestParentFocusKey(t *testing.T) {
	root := core.NewScope(nil)
	section := core.NewScope(root)
	row := core.NewScope(section)
	leaf := core.NewScope(row)

	assert.Equal(t, focus.RootFocusKey, ParentFocusKey(nil))
	assert.Equal(t, focus.RootFocusKey, ParentFocusKey(leaf))

	ProvideFocusKey(section, "section")
	assert.Equal(t, "section", ParentFocusKey(leaf))
	assert.Equal(t, focus.RootFocusKey, ParentFocusKey(root))

	ProvideFocusKey(row, "row")
	assert.Equal(t, "row", ParentFocusKey(leaf))
	assert.Equal(t, "section", ParentFocusKey(section))

	ProvideFocusKey(row, "")
	assert.Equal(t, "section", ParentFocusKey(leaf), "an empty key defers to the next provider")
	assert.Equal(t, "section", ParentFocusKey(row))

	ProvideFocusKey(root, "")
	ProvideFocusKey(section, "")
	assert.Equal(t, focus.RootFocusKey, ParentFocusKey(leaf))
}
