package colometry

import (
	"context"
	"math"
	"sync"
)

// batchCheck is how many pixels a worker classifies between context checks.
const batchCheck = 4096

// BatchStats summarizes a batch classification.
type BatchStats struct {
	Pixels int
	// Degenerate pixels have a zero tristimulus sum or non finite input.
	Degenerate int
	// Unclassified pixels have a hue outside the calibration table.
	Unclassified int
}

// Classified returns the number of pixels with a wavelength.
func (s BatchStats) Classified() int {
	return s.Pixels - s.Degenerate - s.Unclassified
}

// ClassifyBatch classifies every pixel independently using workers
// goroutines over contiguous chunks. Degenerate pixels are counted, not
// treated as errors; only ctx cancellation aborts the batch.
func ClassifyBatch(ctx context.Context, pixels []Reflectance, workers int) ([]Result, BatchStats, error) {
	stats := BatchStats{Pixels: len(pixels)}
	results := make([]Result, len(pixels))
	if len(pixels) == 0 {
		return results, stats, nil
	}

	numWorkers := max(1, min(workers, len(pixels)))
	chunkSize := (len(pixels) + numWorkers - 1) / numWorkers
	degenerate := make([]int, numWorkers)
	unclassified := make([]int, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)

	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		end := min(start+chunkSize, len(pixels))

		go func(worker, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if (i-start)%batchCheck == 0 && ctx.Err() != nil {
					return
				}
				res := Classify(pixels[i])
				results[i] = res
				switch {
				case math.IsNaN(res.Purity) || math.IsInf(res.Purity, 0):
					degenerate[worker]++
				case !res.HasWavelength():
					unclassified[worker]++
				}
			}
		}(w, start, end)
	}

	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, stats, err
	}

	for w := 0; w < numWorkers; w++ {
		stats.Degenerate += degenerate[w]
		stats.Unclassified += unclassified[w]
	}
	return results, stats, nil
}
