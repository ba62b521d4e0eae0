// Package motion describes the decorative animation of the site as data.
// Timelines are built while a page is composed and shipped with the page for
// a client runtime to play; nothing here affects routing or content.
package motion

import "time"

// Props maps an animatable property (opacity, x, y, scale, rotate, rotationY) to a value
type Props map[string]float64

// Trigger says when a tween starts
type Trigger string

const (
	OnMount Trigger = "mount"
	InView  Trigger = "in-view"
	OnHover Trigger = "hover"
	OnTap   Trigger = "tap"
)

// Tween animates properties from one state to another
type Tween struct {
	From     Props
	To       Props
	Duration time.Duration
	Delay    time.Duration
	Ease     Ease
	Trigger  Trigger
	// Once plays an in-view tween a single time instead of reversing when the element leaves
	Once bool
	// Threshold is the visible fraction that fires an in-view tween
	Threshold float64
}

// neutral is the resting value of a property that a tween leaves unspecified
func neutral(prop string) float64 {
	switch prop {
	case "opacity", "scale":
		return 1
	}
	return 0
}

// End is the elapsed time at which the tween settles
func (t Tween) End() time.Duration {
	return t.Delay + t.Duration
}

// Progress returns normalized time in [0,1] after elapsed since the trigger fired
func (t Tween) Progress(elapsed time.Duration) float64 {
	active := elapsed - t.Delay
	if active <= 0 {
		if t.Duration <= 0 && elapsed >= t.Delay {
			return 1
		}
		return 0
	}
	if t.Duration <= 0 || active >= t.Duration {
		return 1
	}
	return float64(active) / float64(t.Duration)
}

// At interpolates every property touched by the tween at elapsed
func (t Tween) At(elapsed time.Duration) Props {
	p := t.Progress(elapsed)
	eased := p
	if p > 0 && p < 1 {
		eased = t.Ease.Func()(p)
	}

	out := make(Props, len(t.To)+len(t.From))
	for _, prop := range t.keys() {
		from, ok := t.From[prop]
		if !ok {
			from = neutral(prop)
		}
		to, ok := t.To[prop]
		if !ok {
			to = neutral(prop)
		}
		out[prop] = from + (to-from)*eased
	}
	return out
}

func (t Tween) keys() []string {
	keys := make([]string, 0, len(t.To)+len(t.From))
	for k := range t.From {
		keys = append(keys, k)
	}
	for k := range t.To {
		if _, dup := t.From[k]; !dup {
			keys = append(keys, k)
		}
	}
	return keys
}
