package motion

import (
	"encoding/json"
	"fmt"
)

// Handle is an opaque reference to a rendered element that a timeline animates
type Handle struct {
	ID   string
	Name string
}

func (h Handle) String() string {
	return h.ID
}

// Step binds a tween to its target element
type Step struct {
	Target Handle
	Tween  Tween
}

// Timeline is the ordered animation program of one page
type Timeline struct {
	Steps []Step
}

// Len returns the number of steps
func (tl Timeline) Len() int {
	return len(tl.Steps)
}

type stepJSON struct {
	Target    string  `json:"target"`
	Name      string  `json:"name"`
	From      Props   `json:"from,omitempty"`
	To        Props   `json:"to"`
	Duration  int64   `json:"duration"` // milliseconds
	Delay     int64   `json:"delay,omitempty"`
	Ease      Ease    `json:"ease"`
	Trigger   Trigger `json:"trigger"`
	Once      bool    `json:"once,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
}

// MarshalJSON emits the wire form read by static/js/motion.js
func (tl Timeline) MarshalJSON() ([]byte, error) {
	steps := make([]stepJSON, len(tl.Steps))
	for i, s := range tl.Steps {
		ease := s.Tween.Ease
		if ease == "" {
			ease = Linear
		}
		steps[i] = stepJSON{
			Target:    s.Target.ID,
			Name:      s.Target.Name,
			From:      s.Tween.From,
			To:        s.Tween.To,
			Duration:  s.Tween.Duration.Milliseconds(),
			Delay:     s.Tween.Delay.Milliseconds(),
			Ease:      ease,
			Trigger:   s.Tween.Trigger,
			Once:      s.Tween.Once,
			Threshold: s.Tween.Threshold,
		}
	}
	return json.Marshal(steps)
}

// Collector hands out element handles while a page is composed and is
// drained exactly once into the page's timeline. Not safe for concurrent use;
// each render owns its own collector.
type Collector struct {
	prefix  string
	next    int
	steps   []Step
	drained bool
}

// NewCollector creates a collector whose handle ids start with prefix
func NewCollector(prefix string) *Collector {
	return &Collector{prefix: prefix}
}

// Add allocates a handle for a new element and schedules t on it
func (c *Collector) Add(name string, t Tween) Handle {
	c.next++
	h := Handle{ID: fmt.Sprintf("%s-%d", c.prefix, c.next), Name: name}
	c.Attach(h, t)
	return h
}

// Attach schedules another tween on an existing handle, e.g. hover feedback on a revealed card
func (c *Collector) Attach(h Handle, t Tween) {
	if c.drained {
		panic("motion: collector used after Drain")
	}
	c.steps = append(c.steps, Step{Target: h, Tween: t})
}

// Drain returns the collected timeline. Later calls return an empty timeline.
func (c *Collector) Drain() Timeline {
	if c.drained {
		return Timeline{}
	}
	c.drained = true
	steps := c.steps
	c.steps = nil
	return Timeline{Steps: steps}
}
