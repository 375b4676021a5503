package engine

import (
	"bytes"
	"errors"
	"testing"
)

func testRequest() Request {
	return Request{
		Width:          4,
		Height:         4,
		View:           View{CenterX: 0, CenterY: 0, Scale: 1},
		Fractal:        Params{Set: Mandelbrot},
		Palette:        Palette{Length: 16, Hue: 0},
		MaxIterations:  50,
		EscapeRadiusSq: 4.0,
	}
}

func TestGenerateBufferLength(t *testing.T) {
	tests := []struct {
		width, height int
	}{
		{1, 1},
		{4, 4},
		{7, 3},
		{64, 48},
	}

	for _, tt := range tests {
		request := testRequest()
		request.Width = tt.width
		request.Height = tt.height
		buffer, err := Generate(request)
		if err != nil {
			t.Errorf("%dx%d: %v", tt.width, tt.height, err)
			continue
		}
		if len(buffer) != tt.width*tt.height*4 {
			t.Errorf("%dx%d: buffer length = %d, want %d", tt.width, tt.height, len(buffer), tt.width*tt.height*4)
		}
	}
}

func TestGenerateInvalidParameter(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero width", func(r *Request) { r.Width = 0 }},
		{"negative width", func(r *Request) { r.Width = -3 }},
		{"zero height", func(r *Request) { r.Height = 0 }},
		{"zero scale", func(r *Request) { r.View.Scale = 0 }},
		{"negative scale", func(r *Request) { r.View.Scale = -1 }},
		{"zero palette length", func(r *Request) { r.Palette.Length = 0 }},
		{"negative max iterations", func(r *Request) { r.MaxIterations = -1 }},
		{"zero escape radius", func(r *Request) { r.EscapeRadiusSq = 0 }},
		{"negative escape radius", func(r *Request) { r.EscapeRadiusSq = -4 }},
		{"unknown set", func(r *Request) { r.Fractal.Set = Set(7) }},
	}

	for _, tt := range tests {
		request := testRequest()
		tt.mutate(&request)
		buffer, err := Generate(request)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: error = %v, want ErrInvalidParameter", tt.name, err)
		}
		if buffer != nil {
			t.Errorf("%s: got a %d byte buffer, want nil on failure", tt.name, len(buffer))
		}
	}
}

func TestGenerateDeterministicAcrossWorkers(t *testing.T) {
	request := testRequest()
	request.Width = 48
	request.Height = 37
	request.View.Scale = 4.0 / 37
	request.Smooth = true

	request.Workers = 1
	serial, err := Generate(request)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 3, 8} {
		for _, rowsPerTask := range []int{1, 4, 100} {
			request.Workers = workers
			request.RowsPerTask = rowsPerTask
			parallel, err := Generate(request)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(serial, parallel) {
				t.Errorf("workers=%d rowsPerTask=%d: buffer differs from serial render", workers, rowsPerTask)
			}
		}
	}
}

func TestGenerateMaxIterZero(t *testing.T) {
	// Zero iterations can never escape, so every pixel gets the in-set
	// sentinel color.
	request := testRequest()
	request.MaxIterations = 0
	buffer, err := Generate(request)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < len(buffer); i += 4 {
		if buffer[i] != 0 || buffer[i+1] != 0 || buffer[i+2] != 0 || buffer[i+3] != 255 {
			t.Fatalf("pixel %d: got (%d,%d,%d,%d), want opaque black",
				i/4, buffer[i], buffer[i+1], buffer[i+2], buffer[i+3])
		}
	}
}

func TestGenerateExampleScenario(t *testing.T) {
	// 4x4 view of [-2,2]x[-2,2]: the corners sit far outside the set
	// and the pixel mapped to the origin sits inside it.
	request := testRequest()
	buffer, err := Generate(request)
	if err != nil {
		t.Fatal(err)
	}

	corner := Iterate(kernelArgs(t, request, 0, 0))
	if !corner.Escaped || corner.Iterations >= 5 {
		t.Errorf("corner pixel: %+v, want escaped in under 5 iterations", corner)
	}

	center := Iterate(kernelArgs(t, request, 2, 2))
	if center.Escaped || center.Iterations != request.MaxIterations {
		t.Errorf("center pixel: %+v, want non-escaped at %d iterations", center, request.MaxIterations)
	}

	// The buffer must agree with the kernel: corner colored, center
	// sentinel black.
	cornerOffset := 0
	if buffer[cornerOffset] == 0 && buffer[cornerOffset+1] == 0 && buffer[cornerOffset+2] == 0 {
		t.Error("corner pixel colored as in-set sentinel")
	}
	centerOffset := (2*request.Width + 2) * 4
	for c := 0; c < 3; c++ {
		if buffer[centerOffset+c] != 0 {
			t.Errorf("center pixel channel %d = %d, want 0", c, buffer[centerOffset+c])
		}
	}
	if buffer[centerOffset+3] != 255 {
		t.Errorf("center pixel alpha = %d, want 255", buffer[centerOffset+3])
	}
}

// kernelArgs maps a pixel through the request's view and returns
// the kernel arguments for it.
func kernelArgs(t *testing.T, request Request, px, py int) (float64, float64, Params, int, float64) {
	t.Helper()
	x, y := PointAt(px, py, request.Width, request.Height, request.View)
	return x, y, request.Fractal, request.MaxIterations, request.EscapeRadiusSq
}

func TestGenerateMatchesKernelPerPixel(t *testing.T) {
	request := testRequest()
	request.Width = 9
	request.Height = 5
	request.View.Scale = 0.5
	request.Fractal = Params{Set: Julia, CX: -0.8, CY: 0.156}
	request.Smooth = true

	buffer, err := Generate(request)
	if err != nil {
		t.Fatal(err)
	}

	for py := 0; py < request.Height; py++ {
		for px := 0; px < request.Width; px++ {
			x, y := PointAt(px, py, request.Width, request.Height, request.View)
			result := Iterate(x, y, request.Fractal, request.MaxIterations, request.EscapeRadiusSq)
			want := Colorize(result, request.Palette, request.Smooth)
			offset := (py*request.Width + px) * 4
			got := [4]byte{buffer[offset], buffer[offset+1], buffer[offset+2], buffer[offset+3]}
			if got != want {
				t.Errorf("pixel (%d, %d): buffer has %v, kernel path gives %v", px, py, got, want)
			}
		}
	}
}
