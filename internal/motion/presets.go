package motion

import "time"

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// HeaderDrop slides the header in from above on load
func HeaderDrop() Tween {
	return Tween{
		From:     Props{"y": -100, "opacity": 0},
		To:       Props{"y": 0, "opacity": 1},
		Duration: ms(1000),
		Ease:     Power3Out,
		Trigger:  OnMount,
	}
}

// LogoSpin spins and scales the logo into place
func LogoSpin() Tween {
	return Tween{
		From:     Props{"scale": 0, "rotate": -180},
		To:       Props{"scale": 1, "rotate": 0},
		Duration: ms(1200),
		Delay:    ms(300),
		Ease:     ElasticOut,
		Trigger:  OnMount,
	}
}

// NavItem fades the i-th navigation entry in, one after another
func NavItem(i int) Tween {
	return Tween{
		From:     Props{"opacity": 0, "y": -20},
		To:       Props{"opacity": 1, "y": 0},
		Duration: ms(500),
		Delay:    ms(500 + i*100),
		Ease:     EaseOut,
		Trigger:  OnMount,
	}
}

// FadeUp reveals a section the first time a fifth of it scrolls into view
func FadeUp(delay time.Duration) Tween {
	return Tween{
		From:      Props{"opacity": 0, "y": 30},
		To:        Props{"opacity": 1, "y": 0},
		Duration:  ms(600),
		Delay:     delay,
		Ease:      EaseOut,
		Trigger:   InView,
		Once:      true,
		Threshold: 0.2,
	}
}

// EnterUp is FadeUp played on load instead of on scroll
func EnterUp() Tween {
	return Tween{
		From:     Props{"opacity": 0, "y": 20},
		To:       Props{"opacity": 1, "y": 0},
		Duration: ms(500),
		Ease:     EaseOut,
		Trigger:  OnMount,
	}
}

// CardReveal flips the i-th project card into view, reversing when it scrolls back out
func CardReveal(i int) Tween {
	return Tween{
		From:      Props{"opacity": 0, "y": 100, "rotationY": -45, "scale": 0.8},
		To:        Props{"opacity": 1, "y": 0, "rotationY": 0, "scale": 1},
		Duration:  ms(800),
		Delay:     ms(i * 200),
		Ease:      Power3Out,
		Trigger:   InView,
		Threshold: 0.15,
	}
}

// SkillPop pops the i-th skill badge in
func SkillPop(i int) Tween {
	return Tween{
		From:      Props{"opacity": 0, "scale": 0.5, "y": 20},
		To:        Props{"opacity": 1, "scale": 1, "y": 0},
		Duration:  ms(500),
		Delay:     ms(i * 50),
		Ease:      BackOut,
		Trigger:   InView,
		Once:      true,
		Threshold: 0.2,
	}
}

// GlitchIn scales the error code in
func GlitchIn() Tween {
	return Tween{
		From:     Props{"opacity": 0, "scale": 0.5},
		To:       Props{"opacity": 1, "scale": 1},
		Duration: ms(800),
		Ease:     BackOut,
		Trigger:  OnMount,
	}
}

// HoverLift raises an element under the pointer
func HoverLift() Tween {
	return Tween{
		To:       Props{"y": -10, "scale": 1.02},
		Duration: ms(300),
		Ease:     EaseOut,
		Trigger:  OnHover,
	}
}

// TapPress shrinks a pressed control
func TapPress() Tween {
	return Tween{
		To:       Props{"scale": 0.95},
		Duration: ms(150),
		Ease:     EaseOut,
		Trigger:  OnTap,
	}
}
