package shell

import "math"

// Bounds is the outer window rectangle in screen pixels.
type Bounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Grow enlarges b by step (0.1 = 10%) keeping the centre fixed. No upper clamp.
func Grow(b Bounds, step float64) Bounds {
	return rescale(b, 1+step, 0, 0)
}

// Shrink reduces b by step keeping the centre fixed, never going below
// minW x minH.
func Shrink(b Bounds, step float64, minW, minH int) Bounds {
	return rescale(b, 1-step, minW, minH)
}

func rescale(b Bounds, factor float64, minW, minH int) Bounds {
	w := max(minW, round(float64(b.Width)*factor))
	h := max(minH, round(float64(b.Height)*factor))
	return Bounds{
		X:      round(float64(b.X) - float64(w-b.Width)/2),
		Y:      round(float64(b.Y) - float64(h-b.Height)/2),
		Width:  w,
		Height: h,
	}
}

// round is half-up, so -0.5 goes to 0 rather than -1.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
