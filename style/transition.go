package style

import "github.com/npillmayer/peacock/style/timing"

// Transition declares that computed changes to one property are to be
// animated instead of applied instantly. Durations are in seconds.
type Transition struct {
	Property PropID
	Duration float64
	Delay    float64
	Timing   timing.Function // nil means linear
}
