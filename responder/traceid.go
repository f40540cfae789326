package responder

import (
	mathrand "math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Every problem document carries a fresh ULID so a failed probe invocation
// can be correlated between the HTTP payload a caller saw and the log record
// the responder wrote. Monotonic entropy keeps IDs minted in the same
// millisecond sortable in invocation order.
var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(mathrand.New(mathrand.NewSource(time.Now().UnixNano())), 0)
)

func nextTraceID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()

	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)
	return id.String()
}
