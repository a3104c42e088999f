package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// TileTask is one tile queued for shading into a shared float buffer
type TileTask struct {
	Tile         *Tile
	TaskID       int // index into the tile grid
	Buffer       *FloatImage
	UnitPerPixel float64
}

// TileResult reports a finished (or skipped) tile
type TileResult struct {
	TaskID  int
	Stats   RenderStats
	Skipped bool // the context was done before the tile started
}

// WorkerPool shades tiles in parallel. Each worker owns a Raytracer so shading
// counters are never shared; tiles write disjoint regions of the buffer.
type WorkerPool struct {
	ctx         context.Context
	tracers     []*Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	wg          sync.WaitGroup
}

// NewWorkerPool creates a pool with room for taskCount queued tiles.
// numWorkers <= 0 uses one worker per CPU.
func NewWorkerPool(ctx context.Context, s *scene.Scene, camera *geometry.Camera, maxDepth, numWorkers, taskCount int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		ctx:         ctx,
		taskQueue:   make(chan TileTask, taskCount),
		resultQueue: make(chan TileResult, taskCount),
	}
	for range numWorkers {
		wp.tracers = append(wp.tracers, NewRaytracer(s, camera, maxDepth))
	}
	return wp
}

// Start launches one goroutine per raytracer
func (wp *WorkerPool) Start() {
	for _, rt := range wp.tracers {
		wp.wg.Add(1)
		go wp.work(rt)
	}
}

// Stop closes the queue, waits for every queued tile to be drained and then
// closes the result channel
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// Submit queues a tile
func (wp *WorkerPool) Submit(task TileTask) {
	wp.taskQueue <- task
}

// Results returns the channel of finished tiles; it is closed by Stop
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// NumWorkers returns the number of shading goroutines
func (wp *WorkerPool) NumWorkers() int {
	return len(wp.tracers)
}

func (wp *WorkerPool) work(rt *Raytracer) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if wp.ctx.Err() != nil {
			wp.resultQueue <- TileResult{TaskID: task.TaskID, Skipped: true}
			continue
		}
		stats := rt.RenderTile(task.Tile, task.Buffer, task.UnitPerPixel)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
