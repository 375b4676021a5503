package engine

import (
	"runtime"
	"sync"

	"fractal/task"
)

// defaultRowsPerTask balances dispatch overhead against load balance:
// a few rows amortize the channel send, while keeping enough blocks in
// flight that uneven rows (deep in the set vs far outside) spread over
// the workers.
const defaultRowsPerTask = 4

// Generate renders the requested fractal into a freshly allocated
// pixel buffer: row-major RGBA8, 4 bytes per pixel, no padding, length
// width*height*4, top-left origin. The buffer is handed to the caller
// on success; on validation failure no buffer is returned.
//
// Every pixel's computation is pure, and every row block writes to a
// disjoint byte range of the one buffer, so the output is byte
// identical whatever the worker count or scheduling order. The call
// returns only after all blocks are done.
func Generate(request Request) ([]byte, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	buffer := make([]byte, request.Width*request.Height*4)

	workers := request.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	rowsPerTask := request.RowsPerTask
	if rowsPerTask <= 0 {
		rowsPerTask = defaultRowsPerTask
	}

	blocks := task.Partition(request.Height, rowsPerTask)
	if workers == 1 || len(blocks) == 1 {
		for _, block := range blocks {
			renderBlock(buffer, request, block)
		}
		return buffer, nil
	}

	todo := make(chan task.Block)
	go func() {
		for _, block := range blocks {
			todo <- block
		}
		close(todo)
	}()

	var wait sync.WaitGroup
	wait.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wait.Done()
			for block := range todo {
				renderBlock(buffer, request, block)
			}
		}()
	}
	wait.Wait()

	return buffer, nil
}

// renderBlock fills the buffer bytes for every pixel in the block.
// It touches only offsets (py*width+px)*4 .. +3 for py inside the
// block, which is what makes concurrent blocks safe to run against
// the same buffer.
func renderBlock(buffer []byte, request Request, block task.Block) {
	for py := block.Y0; py < block.Y1; py++ {
		offset := py * request.Width * 4
		for px := 0; px < request.Width; px++ {
			x, y := PointAt(px, py, request.Width, request.Height, request.View)
			result := Iterate(x, y, request.Fractal, request.MaxIterations, request.EscapeRadiusSq)
			pixel := Colorize(result, request.Palette, request.Smooth)
			copy(buffer[offset:offset+4], pixel[:])
			offset += 4
		}
	}
}
