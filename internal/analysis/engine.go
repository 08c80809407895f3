package analysis

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"stopbias.onebusaway.org/internal/logging"
	"stopbias.onebusaway.org/internal/models"
)

// Thresholds holds the per-test significance levels and skip preconditions.
// Each alpha is applied as-is; there is no multiple-comparison correction.
type Thresholds struct {
	BinomAlpha      float64
	Chi2Alpha       float64
	TTestAlpha      float64
	MinChi2Count    int
	MinTTestSamples int
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		BinomAlpha:      0.05,
		Chi2Alpha:       0.05,
		TTestAlpha:      0.005,
		MinChi2Count:    10,
		MinTTestSamples: 5,
	}
}

// Engine runs a test over every group of a dataset. Groups are evaluated
// concurrently; results come back in group order.
type Engine struct {
	workers    int
	thresholds Thresholds
}

// NewEngine returns an engine using up to workers goroutines; workers <= 0
// means GOMAXPROCS.
func NewEngine(workers int, thresholds Thresholds) *Engine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Engine{workers: workers, thresholds: thresholds}
}

func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// BoardingRateBias runs BoardingRateTest for every vehicle group.
func (e *Engine) BoardingRateBias(ctx context.Context, groups []Group[models.StopEvent], p0 float64) ([]BoardingRateResult, error) {
	alpha := e.thresholds.BinomAlpha
	return runTests(ctx, e.workers, "boarding_rate", groups, func(g Group[models.StopEvent]) (BoardingRateResult, error) {
		return BoardingRateTest(g, p0, alpha)
	})
}

// OffsOnsRatioBias runs OffsOnsRatioTest for every vehicle group.
func (e *Engine) OffsOnsRatioBias(ctx context.Context, groups []Group[models.StopEvent], totals Totals) ([]RatioResult, error) {
	minCount, alpha := e.thresholds.MinChi2Count, e.thresholds.Chi2Alpha
	return runTests(ctx, e.workers, "offs_ons_ratio", groups, func(g Group[models.StopEvent]) (RatioResult, error) {
		return OffsOnsRatioTest(g, totals, minCount, alpha)
	})
}

// RelposBias runs RelposBiasTest for every vehicle group.
func (e *Engine) RelposBias(ctx context.Context, groups []Group[models.RelposSample], systemMean float64) ([]RelposResult, error) {
	minSamples, alpha := e.thresholds.MinTTestSamples, e.thresholds.TTestAlpha
	return runTests(ctx, e.workers, "relpos_bias", groups, func(g Group[models.RelposSample]) (RelposResult, error) {
		return RelposBiasTest(g, systemMean, minSamples, alpha)
	})
}

// runTests applies test to every group with a bounded pool of workers. Each
// result lands in the slot of its group, so the output order never depends on
// scheduling. The first error stops the remaining work.
func runTests[G, R any](ctx context.Context, workers int, name string, groups []G, test func(G) (R, error)) ([]R, error) {
	start := time.Now()
	results := make([]R, len(groups))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	indices := make(chan int)

	if workers > len(groups) {
		workers = len(groups)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				r, err := test(groups[i])
				if err != nil {
					errOnce.Do(func() {
						firstErr = err
						cancel()
					})
					continue
				}
				results[i] = r
			}
		}()
	}

feed:
	for i := range groups {
		select {
		case indices <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(indices)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logging.LogOperation(logging.FromContext(ctx), "tests_completed",
		slog.String("test", name),
		slog.Int("groups", len(groups)),
		slog.Int("workers", workers),
		slog.Duration("duration", time.Since(start)))

	return results, nil
}
