package match

import "time"

// Scheduler runs fn once after d unless the returned cancel is called first.
// Implementations must run fn on the goroutine that drives the Match.
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}
