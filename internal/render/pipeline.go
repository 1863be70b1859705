package render

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// FrameIndices picks at most max evenly strided indices out of n. With
// max >= 2 the first and last are always kept; max == 1 keeps only the
// last. max <= 0 keeps all.
func FrameIndices(n, max int) []int {
	if n <= 0 {
		return nil
	}
	if max <= 0 || max >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}
	if max == 1 {
		return []int{n - 1}
	}

	out := make([]int, max)
	for k := range out {
		out[k] = k * (n - 1) / (max - 1)
	}
	return out
}

// RenderFrames renders the given frame indices with at most workers in
// flight, preserving order. workers <= 0 uses GOMAXPROCS.
func RenderFrames(ctx context.Context, fr *FrameRenderer, indices []int, workers int) ([]*image.RGBA, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	start := time.Now()

	frames := make([]*image.RGBA, len(indices))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k, j := range indices {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := fr.Render(j)
			if err != nil {
				return fmt.Errorf("frame %d: %w", j, err)
			}
			frames[k] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"frames":  len(frames),
		"workers": workers,
		"elapsed": time.Since(start),
	}).Info("frames rendered")
	return frames, nil
}
