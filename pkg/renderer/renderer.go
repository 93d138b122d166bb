// Package renderer turns a scene into an image. Rows are independent tasks
// with their own random streams, rendered sequentially or in parallel.
package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/scene"
)

var (
	// ErrInvalidDimensions is returned for a non-positive image size
	ErrInvalidDimensions = errors.New("image dimensions must be positive")

	// ErrIncompleteScene is returned when a scene has no world or camera
	ErrIncompleteScene = errors.New("scene needs a world and a camera")

	// ErrRowPanicked is returned when rendering a row panics
	ErrRowPanicked = errors.New("row render panicked")
)

// Config contains rendering configuration
type Config struct {
	SamplesPerPixel int   // Number of rays per pixel, at least 1
	MaxDepth        int   // Maximum ray bounce depth, at least 1
	Multithreading  bool  // Render rows in parallel
	Workers         int   // Parallel row limit, 0 means one per CPU
	Seed            int64 // Base seed; row r uses Seed + r
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Multithreading:  true,
		Seed:            42,
	}
}

// Renderer handles the rendering process
type Renderer struct {
	config     Config
	integrator integrator.Integrator
	log        log.Logger
}

// New creates a renderer. Sample count and depth are floored to 1.
func New(config Config) *Renderer {
	r := &Renderer{
		integrator: integrator.NewPathTracer(),
		log:        log.New("renderer"),
	}
	r.config = config
	r.SetNumSamples(config.SamplesPerPixel)
	r.SetDepth(config.MaxDepth)
	r.SetWorkers(config.Workers)
	return r
}

// Config returns the effective configuration
func (r *Renderer) Config() Config {
	return r.config
}

// SetNumSamples sets the samples per pixel, clamped to at least 1
func (r *Renderer) SetNumSamples(n int) {
	r.config.SamplesPerPixel = max(1, n)
}

// SetDepth sets the maximum bounce depth, clamped to at least 1
func (r *Renderer) SetDepth(n int) {
	r.config.MaxDepth = max(1, n)
}

// SetMultithreading toggles parallel row rendering
func (r *Renderer) SetMultithreading(enabled bool) {
	r.config.Multithreading = enabled
}

// SetSeed sets the base seed for the per-row random streams
func (r *Renderer) SetSeed(seed int64) {
	r.config.Seed = seed
}

// SetWorkers limits the number of rows rendered at once. Zero or less
// means one per CPU.
func (r *Renderer) SetWorkers(n int) {
	r.config.Workers = max(0, n)
}

func (r *Renderer) workers(height int) int {
	if !r.config.Multithreading {
		return 1
	}
	workers := r.config.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	return max(1, min(workers, height))
}

// Render produces a height×width image of s. The output is identical for a
// given seed whether or not multithreading is enabled. A row that panics
// fails the whole render.
func (r *Renderer) Render(ctx context.Context, s *scene.Scene, height, width int) (*image.RGBA, RenderStats, error) {
	if height <= 0 || width <= 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	if s == nil || s.World == nil || s.Camera == nil {
		return nil, RenderStats{}, ErrIncompleteScene
	}

	workers := r.workers(height)
	r.log.Infof("rendering %dx%d at %d spp, depth %d, %d worker(s)", width, height, r.config.SamplesPerPixel, r.config.MaxDepth, workers)

	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	var err error
	if workers == 1 {
		err = r.renderSequential(ctx, s, img)
	} else {
		err = r.renderParallel(ctx, s, img, workers)
	}
	if err != nil {
		r.log.Errorf("render failed: %v", err)
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Rows:     height,
		Pixels:   width * height,
		Samples:  width * height * r.config.SamplesPerPixel,
		Duration: time.Since(start),
		Workers:  workers,

		AverageLuminance: CalculateAverageLuminance(img),
	}
	r.log.Infof("render finished in %v (%.0f samples/s, average luminance %.3f)", stats.Duration, stats.SamplesPerSecond(), stats.AverageLuminance)

	return img, stats, nil
}

func (r *Renderer) renderSequential(ctx context.Context, s *scene.Scene, img *image.RGBA) error {
	height := img.Bounds().Dy()
	for row := 0; row < height; row++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("while rendering row %d: %w", row, err)
		}
		if err := r.renderRow(s, img, row); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderParallel(ctx context.Context, s *scene.Scene, img *image.RGBA, workers int) error {
	height := img.Bounds().Dy()

	// Use errgroup and semaphore to limit concurrency.
	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	var acquireErr error
	for row := 0; row < height; row++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			acquireErr = fmt.Errorf("while acquiring row semaphore: %w", err)
			break
		}

		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("while rendering row %d: %w", row, err)
			}
			return r.renderRow(s, img, row)
		})
	}

	// A row error cancels ctx, which is what usually fails Acquire, so the
	// group's error takes precedence
	if err := eg.Wait(); err != nil {
		return fmt.Errorf("while waiting for rows: %w", err)
	}
	return acquireErr
}

// renderRow renders one image row with its own random stream
func (r *Renderer) renderRow(s *scene.Scene, img *image.RGBA, row int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%w: row %d: %v", ErrRowPanicked, row, p)
		}
	}()

	width, height := img.Bounds().Dx(), img.Bounds().Dy()
	random := rand.New(rand.NewSource(r.config.Seed + int64(row)))

	// Image rows run top-down, the camera's v axis bottom-up
	j := height - 1 - row
	uScale := 1.0 / float64(max(1, width-1))
	vScale := 1.0 / float64(max(1, height-1))

	for i := 0; i < width; i++ {
		var sum core.Vec3
		for sample := 0; sample < r.config.SamplesPerPixel; sample++ {
			u := (float64(i) + random.Float64()) * uScale
			v := (float64(j) + random.Float64()) * vScale
			ray := s.Camera.GetRay(random, u, v)

			// A single NaN would poison the pixel average
			radiance := r.integrator.Trace(random, ray, s, r.config.MaxDepth)
			if radiance.IsFinite() {
				sum = sum.Add(radiance)
			}
		}

		img.SetRGBA(i, row, toneMap(sum.Multiply(1/float64(r.config.SamplesPerPixel))))
	}

	return nil
}
