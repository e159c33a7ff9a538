// Package ids generates process-wide unique identifiers.
package ids

import (
	"strconv"
	"sync/atomic"
)

// counter is shared by every caller in the process. It starts at zero and is
// never reset.
var counter atomic.Uint64

// Unique returns prefix followed by the next value of the process-wide
// counter. The first call returns prefix+"1".
//
// Values are never reused, so two calls never return the same string for the
// same prefix, even when made from different goroutines.
func Unique(prefix string) string {
	n := counter.Add(1)
	return prefix + strconv.FormatUint(n, 10)
}
