package motion

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseEndpoints(t *testing.T) {
	for _, e := range []Ease{Linear, EaseOut, EaseInOut, Power3Out, BackOut, ElasticOut, Ease("unknown")} {
		f := e.Func()
		assert.InDelta(t, 0, f(0), 1e-9, string(e))
		assert.InDelta(t, 1, f(1), 1e-9, string(e))
	}
}

func TestEaseShapes(t *testing.T) {
	assert.InDelta(t, 0.5, Linear.Func()(0.5), 1e-9)
	assert.InDelta(t, 0.75, EaseOut.Func()(0.5), 1e-9)
	assert.InDelta(t, 0.5, EaseInOut.Func()(0.5), 1e-9)
	assert.InDelta(t, 0.9375, Power3Out.Func()(0.5), 1e-9)
	assert.Greater(t, BackOut.Func()(0.8), 1.0, "backOut overshoots")
}

func TestTweenAt(t *testing.T) {
	tw := Tween{
		From:     Props{"opacity": 0, "y": 100},
		To:       Props{"opacity": 1, "y": 0},
		Duration: time.Second,
		Delay:    500 * time.Millisecond,
		Ease:     Linear,
	}

	before := tw.At(200 * time.Millisecond)
	assert.Equal(t, Props{"opacity": 0, "y": 100}, before)

	mid := tw.At(time.Second)
	assert.InDelta(t, 0.5, mid["opacity"], 1e-9)
	assert.InDelta(t, 50, mid["y"], 1e-9)

	after := tw.At(5 * time.Second)
	assert.Equal(t, Props{"opacity": 1, "y": 0}, after)
	assert.Equal(t, 1500*time.Millisecond, tw.End())
}

func TestTweenNeutralValues(t *testing.T) {
	hover := HoverLift()
	start := hover.At(0)
	assert.Equal(t, Props{"y": 0, "scale": 1}, start)

	end := hover.At(hover.End())
	assert.InDelta(t, -10, end["y"], 1e-9)
	assert.InDelta(t, 1.02, end["scale"], 1e-9)
}

func TestTweenZeroDuration(t *testing.T) {
	tw := Tween{From: Props{"opacity": 0}, To: Props{"opacity": 1}, Delay: time.Second}
	assert.Equal(t, 0.0, tw.Progress(999*time.Millisecond))
	assert.Equal(t, 1.0, tw.Progress(time.Second))
}

func TestCollectorOrderAndDrain(t *testing.T) {
	c := NewCollector("m")
	a := c.Add("header", HeaderDrop())
	b := c.Add("card", CardReveal(1))
	c.Attach(b, HoverLift())

	assert.Equal(t, "m-1", a.ID)
	assert.Equal(t, "m-2", b.String())

	tl := c.Drain()
	require.Equal(t, 3, tl.Len())
	assert.Equal(t, a, tl.Steps[0].Target)
	assert.Equal(t, b, tl.Steps[1].Target)
	assert.Equal(t, OnHover, tl.Steps[2].Tween.Trigger)

	assert.Equal(t, 0, c.Drain().Len(), "second drain is empty")
	assert.Panics(t, func() { c.Add("late", EnterUp()) })
}

func TestTimelineJSON(t *testing.T) {
	c := NewCollector("p")
	c.Add("card", CardReveal(2))
	data, err := json.Marshal(c.Drain())
	require.NoError(t, err)

	var steps []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &steps))
	require.Len(t, steps, 1)
	s := steps[0]
	assert.Equal(t, "p-1", s["target"])
	assert.Equal(t, "card", s["name"])
	assert.Equal(t, 800.0, s["duration"])
	assert.Equal(t, 400.0, s["delay"])
	assert.Equal(t, "power3.out", s["ease"])
	assert.Equal(t, "in-view", s["trigger"])
	assert.Equal(t, 0.15, s["threshold"])
	assert.Equal(t, -45.0, s["from"].(map[string]interface{})["rotationY"])
}

func TestNavItemStagger(t *testing.T) {
	assert.Equal(t, 500*time.Millisecond, NavItem(0).Delay)
	assert.Equal(t, 900*time.Millisecond, NavItem(4).Delay)
}
