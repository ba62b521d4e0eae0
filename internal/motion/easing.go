package motion

import "math"

// Ease names an easing curve understood by the client runtime
type Ease string

const (
	Linear     Ease = "linear"
	EaseOut    Ease = "easeOut"
	EaseInOut  Ease = "easeInOut"
	Power3Out  Ease = "power3.out"
	BackOut    Ease = "backOut"
	ElasticOut Ease = "elastic.out"
)

// Func maps normalized time in [0,1] to progress. Overshooting curves may leave [0,1] in between.
func (e Ease) Func() func(float64) float64 {
	switch e {
	case EaseOut:
		return func(t float64) float64 { return 1 - (1-t)*(1-t) }
	case EaseInOut:
		return func(t float64) float64 {
			if t < 0.5 {
				return 2 * t * t
			}
			return 1 - math.Pow(-2*t+2, 2)/2
		}
	case Power3Out:
		return func(t float64) float64 { return 1 - math.Pow(1-t, 4) }
	case BackOut:
		const c1 = 1.70158
		const c3 = c1 + 1
		return func(t float64) float64 {
			return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
		}
	case ElasticOut:
		// amplitude 1, period 0.5
		const p = 0.5
		return func(t float64) float64 {
			if t <= 0 {
				return 0
			}
			if t >= 1 {
				return 1
			}
			return math.Pow(2, -10*t)*math.Sin((t-p/4)*(2*math.Pi)/p) + 1
		}
	default:
		return func(t float64) float64 { return t }
	}
}
