package eigentrust

import (
	"fmt"
	"time"
)

// EpochAt returns number of the epoch the moment belongs to:
// whole seconds since Unix epoch divided by the interval in seconds.
// The number is reproducible across restarts without persisted state.
//
// Panics if interval is shorter than a second.
func EpochAt(t time.Time, interval time.Duration) uint64 {
	secs := uint64(interval / time.Second)
	if secs == 0 {
		panic(fmt.Sprintf("invalid epoch interval %s", interval))
	}

	unix := t.Unix()
	if unix < 0 {
		return 0
	}

	return uint64(unix) / secs
}
