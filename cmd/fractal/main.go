package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"fractal/engine"
	"fractal/misc"
	"fractal/render"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"
)

var (
	settings     Settings
	settingsFile string

	zoom zoomSettings
)

type zoomSettings struct {
	Frames     int
	ScaleStart float64
	ScaleEnd   float64
	EndX       float64
	EndY       float64
	OutDir     string
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fractal",
		Short: "Render escape-time fractals to PNG images",
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&settings.Width, "width", 1024, "Width of resulting image")
	flags.IntVar(&settings.Height, "height", 1024, "Height of resulting image")
	flags.Float64Var(&settings.CenterX, "centerX", 0, "Center x value of the view window")
	flags.Float64Var(&settings.CenterY, "centerY", 0, "Center y value of the view window")
	flags.Float64Var(&settings.Scale, "scale", 0, "Plane units per pixel (0 covers [-2,2] on the shorter side)")
	flags.IntVar(&settings.MaxIterations, "maxIterations", 1000, "Iterations to run to verify each point")
	flags.Float64Var(&settings.EscapeRadiusSq, "escapeRadiusSq", 4.0, "Squared magnitude past which a point has escaped")
	flags.IntVar(&settings.PaletteLength, "paletteLength", 64, "Iterations per palette cycle")
	flags.Float64Var(&settings.PaletteHue, "paletteHue", 0, "Degrees to rotate the palette hue by")
	flags.BoolVar(&settings.Smooth, "smooth", true, "Enable smooth coloring")
	flags.IntVar(&settings.Workers, "workers", 0, "Number of render workers (0 uses all CPUs)")
	flags.IntVar(&settings.RowsPerTask, "rowsPerTask", 0, "Rows per render task (0 uses the default)")
	flags.StringVar(&settings.Output, "output", "fractal.png", "PNG file to write")
	flags.StringVar(&settings.RawOutput, "rawOutput", "", "Optional file for the raw RGBA buffer")
	flags.StringVar(&settingsFile, "settings", "", "Json settings file; overrides command line values")

	cmd.AddCommand(mandelbrotCmd(), juliaCmd(), zoomCmd())
	return cmd
}

func mandelbrotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return renderOne(engine.Mandelbrot)
		},
	}
}

func juliaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render a Julia set for a fixed constant c",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return renderOne(engine.Julia)
		},
	}
	cmd.Flags().Float64Var(&settings.JuliaCX, "cx", -0.8, "Real part of the Julia constant")
	cmd.Flags().Float64Var(&settings.JuliaCY, "cy", 0.156, "Imaginary part of the Julia constant")
	return cmd
}

func zoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zoom",
		Short: "Render a Mandelbrot zoom sequence as numbered frames",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return renderZoom()
		},
	}
	cmd.Flags().IntVar(&zoom.Frames, "frames", 60, "Number of frames to render")
	cmd.Flags().Float64Var(&zoom.ScaleStart, "scaleStart", 0.004, "Plane units per pixel of the first frame")
	cmd.Flags().Float64Var(&zoom.ScaleEnd, "scaleEnd", 0.00004, "Plane units per pixel of the last frame")
	cmd.Flags().Float64Var(&zoom.EndX, "endX", -0.743643, "Center x value of the last frame")
	cmd.Flags().Float64Var(&zoom.EndY, "endY", 0.131825, "Center y value of the last frame")
	cmd.Flags().StringVar(&zoom.OutDir, "outDir", "frames", "Directory for the frame images")
	return cmd
}

func loadSettings() (Settings, error) {
	if settingsFile == "" {
		s := settings
		if err := s.Verify(); err != nil {
			return s, err
		}
		return s, nil
	}
	return NewSettings(settingsFile)
}

func renderOne(set engine.Set) error {
	logger := bslogger.NewLogger(set.String(), bslogger.Normal, nil)

	s, err := loadSettings()
	if err != nil {
		return err
	}

	start := time.Now()
	buffer, err := engine.Generate(s.Request(set))
	if err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Rendered %dx%d %s in %s", s.Width, s.Height, set, time.Since(start)))

	if s.RawOutput != "" {
		bytesWritten, err := misc.WriteFile(s.RawOutput, buffer)
		misc.CheckError(err, logger, misc.Warning)
		if err == nil {
			logger.Info(fmt.Sprintf("Wrote %d raw bytes to %s", bytesWritten, s.RawOutput))
		}
	}

	img, err := render.ToImage(buffer, s.Width, s.Height)
	if err != nil {
		return err
	}
	if err := render.WritePNG(s.Output, img); err != nil {
		return err
	}
	logger.Info(fmt.Sprintf("Wrote %s", s.Output))
	return nil
}

// renderZoom renders a sequence of Mandelbrot frames sliding the view
// center toward the target while the scale shrinks geometrically, so
// the zoom feels constant-rate. The center slide is eased so the
// motion settles as the target structure fills the frame.
func renderZoom() error {
	logger := bslogger.NewLogger("Zoom", bslogger.Normal, nil)

	s, err := loadSettings()
	if err != nil {
		return err
	}
	if zoom.Frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", zoom.Frames)
	}
	if !(zoom.ScaleStart > 0) || !(zoom.ScaleEnd > 0) {
		return fmt.Errorf("scaleStart and scaleEnd must be positive")
	}
	if err := os.MkdirAll(zoom.OutDir, os.ModePerm); err != nil {
		return fmt.Errorf("unable to create folder: %s", err)
	}

	startX, startY := s.CenterX, s.CenterY
	start := time.Now()
	for frame := 0; frame < zoom.Frames; frame++ {
		t := 0.0
		if zoom.Frames > 1 {
			t = float64(frame) / float64(zoom.Frames-1)
		}
		eased := misc.EaseOutExpo(t)
		s.CenterX = misc.LerpFloat64(startX, zoom.EndX, eased)
		s.CenterY = misc.LerpFloat64(startY, zoom.EndY, eased)
		s.Scale = zoom.ScaleStart * math.Pow(zoom.ScaleEnd/zoom.ScaleStart, t)

		buffer, err := engine.Generate(s.Request(engine.Mandelbrot))
		if err != nil {
			return err
		}
		img, err := render.ToImage(buffer, s.Width, s.Height)
		if err != nil {
			return err
		}
		name := filepath.Join(zoom.OutDir, fmt.Sprintf("%04d.png", frame))
		if err := render.WritePNG(name, img); err != nil {
			return err
		}
		logger.Info(fmt.Sprintf("Generated frame %d/%d", frame+1, zoom.Frames))
	}
	logger.Info(fmt.Sprintf("Rendered %d frames in %s", zoom.Frames, time.Since(start)))
	return nil
}
