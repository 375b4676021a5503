package main

import (
	"encoding/json"
	"fmt"

	"fractal/engine"
	"fractal/misc"

	"github.com/BrugadaSyndrome/bslogger"
)

// Settings is everything a render run needs, loadable from a JSON
// settings file so a run can be reproduced later. Zero values are
// filled in by Verify; the engine itself never defaults anything.
type Settings struct {
	logger bslogger.Logger

	Width          int
	Height         int
	CenterX        float64
	CenterY        float64
	Scale          float64
	MaxIterations  int
	EscapeRadiusSq float64
	PaletteLength  int
	PaletteHue     float64
	Smooth         bool
	Workers        int
	RowsPerTask    int
	JuliaCX        float64
	JuliaCY        float64
	Output         string
	RawOutput      string
}

func NewSettings(settingsFile string) (Settings, error) {
	s := Settings{
		logger: bslogger.NewLogger("Settings", bslogger.Normal, nil),
	}
	fileBytes, err := misc.ReadFile(settingsFile)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(fileBytes, &s); err != nil {
		return s, fmt.Errorf("unable to parse %s - %s", settingsFile, err)
	}
	if err := s.Verify(); err != nil {
		return s, err
	}
	s.logger.Debug(s.String())
	return s, nil
}

func (s *Settings) String() string {
	output := "\nRender settings\n"
	output += fmt.Sprintf("Image: %dx%d\n", s.Width, s.Height)
	output += fmt.Sprintf("Center: (%f, %f)\n", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Scale: %g\n", s.Scale)
	output += fmt.Sprintf("Max Iterations: %d\n", s.MaxIterations)
	output += fmt.Sprintf("Escape Radius Squared: %f\n", s.EscapeRadiusSq)
	output += fmt.Sprintf("Palette: length %d hue %f\n", s.PaletteLength, s.PaletteHue)
	output += fmt.Sprintf("Smooth Coloring: %t\n", s.Smooth)
	output += fmt.Sprintf("Workers: %d\n", s.Workers)
	output += fmt.Sprintf("Julia Constant: (%f, %f)\n", s.JuliaCX, s.JuliaCY)
	output += fmt.Sprintf("Output: %s\n", s.Output)
	return output
}

func (s *Settings) Verify() error {
	if s.Width <= 0 {
		s.Width = 1024
	}
	if s.Height <= 0 {
		s.Height = 1024
	}
	if !(s.Scale > 0) {
		// Cover [-2, 2] along the shorter side of the image.
		shorterSide := s.Height
		if s.Width < s.Height {
			shorterSide = s.Width
		}
		s.Scale = 4.0 / float64(shorterSide)
	}
	if s.MaxIterations <= 0 {
		s.MaxIterations = 1000
	}
	if s.EscapeRadiusSq <= 0 {
		s.EscapeRadiusSq = 4.0
	}
	if s.PaletteLength <= 0 {
		s.PaletteLength = 64
	}
	if s.Workers < 0 {
		s.Workers = 0
	}
	if s.RowsPerTask < 0 {
		s.RowsPerTask = 0
	}
	if s.Output == "" {
		s.Output = "fractal.png"
	}
	return nil
}

// Request assembles the engine request for the chosen fractal set.
func (s *Settings) Request(set engine.Set) engine.Request {
	return engine.Request{
		Width:  s.Width,
		Height: s.Height,
		View: engine.View{
			CenterX: s.CenterX,
			CenterY: s.CenterY,
			Scale:   s.Scale,
		},
		Fractal: engine.Params{
			Set: set,
			CX:  s.JuliaCX,
			CY:  s.JuliaCY,
		},
		Palette: engine.Palette{
			Length: s.PaletteLength,
			Hue:    s.PaletteHue,
		},
		MaxIterations:  s.MaxIterations,
		EscapeRadiusSq: s.EscapeRadiusSq,
		Smooth:         s.Smooth,
		Workers:        s.Workers,
		RowsPerTask:    s.RowsPerTask,
	}
}
