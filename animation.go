package peacock

import (
	"github.com/npillmayer/peacock/style"
)

// animation is the running state of one transitioning property on one
// element. It is (re)started whenever the resolved target changes and
// removed as soon as the end value has been applied.
type animation struct {
	from    style.Value // value at the last (re)start
	to      style.Value // resolved target
	elapsed float64     // seconds since the last (re)start
	spec    style.Transition
}

// fraction maps elapsed time to the linear clock in [0,1]. Time spent in
// the delay window keeps the clock at 0; a non-positive duration jumps it
// straight to 1.
func (a *animation) fraction() float64 {
	t := a.elapsed - a.spec.Delay
	if t <= 0 {
		if a.spec.Duration <= 0 && a.elapsed >= a.spec.Delay {
			return 1
		}
		return 0
	}
	if a.spec.Duration <= 0 {
		return 1
	}
	x := t / a.spec.Duration
	if x > 1 {
		return 1
	}
	return x
}

// current computes the value shown at the animation's clock. Values that
// cannot interpolate snap to the target.
func (a *animation) current() style.Value {
	x := a.fraction()
	if a.spec.Timing != nil {
		x = a.spec.Timing(x)
	}
	v, ok := style.Lerp(a.from, a.to, x)
	if !ok {
		return a.to
	}
	return v
}

// done reports whether delay and duration have fully elapsed.
func (a *animation) done() bool {
	return a.elapsed-a.spec.Delay >= a.spec.Duration
}
