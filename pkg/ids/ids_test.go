package ids

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func suffix(t *testing.T, id, prefix string) uint64 {
	t.Helper()
	require.True(t, strings.HasPrefix(id, prefix), "id %q missing prefix %q", id, prefix)
	n, err := strconv.ParseUint(strings.TrimPrefix(id, prefix), 10, 64)
	require.NoError(t, err)
	return n
}

func TestUnique_StrictlyIncreasing(t *testing.T) {
	const prefix = "item-"
	var last uint64
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := Unique(prefix)
		n := suffix(t, id, prefix)
		assert.Greater(t, n, last)
		last = n

		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

func TestUnique_SharedAcrossPrefixes(t *testing.T) {
	a := suffix(t, Unique("a-"), "a-")
	b := suffix(t, Unique("b-"), "b-")
	assert.Equal(t, a+1, b)
}

func TestUnique_EmptyPrefix(t *testing.T) {
	id := Unique("")
	_, err := strconv.ParseUint(id, 10, 64)
	assert.NoError(t, err)
}

func TestUnique_Concurrent(t *testing.T) {
	const workers, perWorker = 8, 200

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Unique("c-"))
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, workers*perWorker)
}
