package engine

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is wrapped by every validation failure so callers
// can test for the whole class with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	Mandelbrot Set = iota
	Julia
)

// Set selects which recurrence the kernel runs.
type Set int

func (s Set) String() string {
	if s < Mandelbrot || s > Julia {
		return fmt.Sprintf("Set(%d)", int(s))
	}
	return []string{
		"Mandelbrot", "Julia",
	}[s]
}

// View describes the window onto the complex plane. Scale is plane
// units per pixel and applies to both axes, so pixels are always
// square: a non-square image shows more of the plane along its longer
// side rather than stretching.
type View struct {
	CenterX float64
	CenterY float64
	Scale   float64
}

func (v *View) String() string {
	output := "{View "
	output += fmt.Sprintf("CenterX: %f ", v.CenterX)
	output += fmt.Sprintf("CenterY: %f ", v.CenterY)
	output += fmt.Sprintf("Scale: %f}", v.Scale)
	return output
}

// Params carries the fractal variant. CX and CY are the fixed Julia
// constant and are ignored for Mandelbrot, where c is the mapped point.
type Params struct {
	Set Set
	CX  float64
	CY  float64
}

func (p *Params) String() string {
	output := "{Params "
	output += fmt.Sprintf("Set: %s ", p.Set)
	output += fmt.Sprintf("CX: %f ", p.CX)
	output += fmt.Sprintf("CY: %f}", p.CY)
	return output
}

// Palette parameterizes the cyclic escape-count color ramp. Length is
// the period in iterations; Hue rotates the whole ramp and accepts any
// real number of degrees.
type Palette struct {
	Length int
	Hue    float64
}

func (p *Palette) String() string {
	output := "{Palette "
	output += fmt.Sprintf("Length: %d ", p.Length)
	output += fmt.Sprintf("Hue: %f}", p.Hue)
	return output
}

// Result is the outcome of iterating a single point. Smooth holds the
// continuous escape value and is only meaningful when Escaped is true.
// Non-escaped points always report Iterations equal to the iteration
// bound they were run with.
type Result struct {
	Escaped    bool
	Iterations int
	Smooth     float64
}

// Request bundles everything one generation call needs. Workers and
// RowsPerTask are tuning knobs: zero means pick a default. Everything
// else is validated strictly; the engine never substitutes defaults
// for bad values.
type Request struct {
	Width          int
	Height         int
	View           View
	Fractal        Params
	Palette        Palette
	MaxIterations  int
	EscapeRadiusSq float64
	Smooth         bool
	Workers        int
	RowsPerTask    int
}

// Validate checks the request once, up front. After it passes, per
// pixel computation cannot fail.
func (r *Request) Validate() error {
	if r.Width <= 0 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidParameter, r.Width)
	}
	if r.Height <= 0 {
		return fmt.Errorf("%w: height must be positive, got %d", ErrInvalidParameter, r.Height)
	}
	if !(r.View.Scale > 0) || math.IsInf(r.View.Scale, 0) {
		return fmt.Errorf("%w: view scale must be a positive finite number, got %f", ErrInvalidParameter, r.View.Scale)
	}
	if r.Fractal.Set < Mandelbrot || r.Fractal.Set > Julia {
		return fmt.Errorf("%w: unknown fractal set %d", ErrInvalidParameter, int(r.Fractal.Set))
	}
	if r.Palette.Length <= 0 {
		return fmt.Errorf("%w: palette length must be positive, got %d", ErrInvalidParameter, r.Palette.Length)
	}
	if r.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations must not be negative, got %d", ErrInvalidParameter, r.MaxIterations)
	}
	if !(r.EscapeRadiusSq > 0) || math.IsInf(r.EscapeRadiusSq, 0) {
		return fmt.Errorf("%w: escape radius squared must be a positive finite number, got %f", ErrInvalidParameter, r.EscapeRadiusSq)
	}
	return nil
}
