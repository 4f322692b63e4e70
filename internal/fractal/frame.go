package fractal

import (
	"runtime"
	"sync"
)

// Frame couples one rendered grid with the view it was computed from and its
// position in the zoom sequence.
type Frame struct {
	Index int
	View  View
	Grid  *Grid
}

// Generator turns views into intensity grids. The zero value is not usable;
// set Eval before calling Generate. Workers caps the number of goroutines
// used per frame; zero or negative means one per CPU. Pixel intensities
// depend only on the view and the evaluator, so the same view produces the
// same grid at any worker count.
type Generator struct {
	Eval    *Evaluator
	Workers int
}

// Generate evaluates every pixel of the view and returns the finished grid.
// Rows are handed out to workers whole, which keeps writes within a worker
// confined to disjoint slices of the backing array.
func (gen *Generator) Generate(view View) *Grid {
	grid := NewGrid(view.Res)

	workers := gen.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > view.Res.Height {
		workers = view.Res.Height
	}

	rows := make(chan int, workers)
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range rows {
				for u := 0; u < view.Res.Width; u++ {
					grid.set(u, v, gen.Eval.Evaluate(view.Point(u, v)))
				}
			}
		}()
	}

	for v := 0; v < view.Res.Height; v++ {
		rows <- v
	}
	close(rows)
	wg.Wait()

	return grid
}
