package cmd

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// batchSize is the number of calls a worker makes between clock reads. The calls
// under test take nanoseconds, so timing each one would mostly measure time.Now.
const batchSize = 1024

var progressInterval = 5 * time.Second

// operation performs one benchmarked call and reports whether it returned the
// expected value.
type operation func(r *rand.Rand) bool

type BenchmarkResults struct {
	Implementation string        `json:"implementation"`
	TotalOps       int           `json:"totalOps"`
	Failures       int           `json:"failures"`
	ElapsedTime    time.Duration `json:"elapsedTime"`
	OpsPerSecond   float64       `json:"opsPerSecond"`
	LatencyNs      float64       `json:"latencyNs"`
}

func benchmarkConfig(cmd *cobra.Command) (time.Duration, int, error) {
	duration, err := cmd.Flags().GetDuration("duration")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get duration: %w", err)
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get workers: %w", err)
	}

	return duration, workers, nil
}

func executeBenchmark(ctx context.Context, impl string, op operation, workers int, duration time.Duration) (*BenchmarkResults, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	startTime := time.Now()
	logger.Info("Benchmark started",
		zap.String("impl", impl),
		zap.Int("workers", workers),
		zap.Duration("duration", duration))

	var totalOps, failures, totalLatency atomic.Int64

	benchCtx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			runWorker(benchCtx, op, workerID, &totalOps, &failures, &totalLatency)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		reportProgress(benchCtx, startTime, startTime.Add(duration), &totalOps)
	}()

	wg.Wait()

	actualElapsed := time.Since(startTime)
	finalOps := totalOps.Load()
	if finalOps == 0 {
		return nil, fmt.Errorf("no operations completed")
	}

	results := &BenchmarkResults{
		Implementation: impl,
		TotalOps:       int(finalOps),
		Failures:       int(failures.Load()),
		ElapsedTime:    actualElapsed,
		OpsPerSecond:   float64(finalOps) / actualElapsed.Seconds(),
		LatencyNs:      float64(totalLatency.Load()) / float64(finalOps),
	}

	return results, nil
}

func runWorker(ctx context.Context, op operation, workerID int, totalOps, failures, totalLatency *atomic.Int64) {
	// Local random source per worker to avoid contention
	localRand := rand.New(rand.NewSource(time.Now().UnixNano() + int64(workerID)))

	for ctx.Err() == nil {
		var failed int64
		batchStart := time.Now()
		for i := 0; i < batchSize; i++ {
			if !op(localRand) {
				failed++
			}
		}
		elapsed := time.Since(batchStart)

		if failed > 0 {
			logger.Warn("Unexpected results", zap.Int("worker", workerID), zap.Int64("count", failed))
			failures.Add(failed)
		}
		totalOps.Add(batchSize)
		totalLatency.Add(elapsed.Nanoseconds())
	}
}

func reportProgress(ctx context.Context, startTime, endTime time.Time, totalOps *atomic.Int64) {
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			currentOps := totalOps.Load()
			elapsed := time.Since(startTime)
			remaining := time.Until(endTime)
			if remaining > 0 {
				logger.Info("Progress",
					zap.Int64("ops", currentOps),
					zap.Float64("opsPerSec", float64(currentOps)/elapsed.Seconds()),
					zap.Duration("remaining", remaining.Round(time.Second)))
			}
		case <-ctx.Done():
			return
		}
	}
}

func printResults(w io.Writer, results *BenchmarkResults) {
	fmt.Fprintf(w, "\n=== Benchmark Results ===\n")
	fmt.Fprintf(w, "Implementation: %s\n", results.Implementation)
	fmt.Fprintf(w, "Total ops: %d\n", results.TotalOps)
	fmt.Fprintf(w, "Failures: %d\n", results.Failures)
	fmt.Fprintf(w, "Total elapsed time: %v\n", results.ElapsedTime.Round(time.Millisecond))
	fmt.Fprintf(w, "Ops/sec: %.2f\n", results.OpsPerSecond)
	fmt.Fprintf(w, "Latency (mean): %.2f ns\n", results.LatencyNs)
	fmt.Fprintf(w, "========================\n")

	fmt.Fprintf(w, "\n=== Markdown Table ===\n")
	fmt.Fprintf(w, "| Implementation | Total Ops | Duration (ms) | Ops/sec | Latency (ns) |\n")
	fmt.Fprintf(w, "|----------------|-----------|---------------|---------|--------------|\n")
	fmt.Fprintf(w, "| %s | %d | %d | %.2f | %.2f |\n",
		results.Implementation,
		results.TotalOps,
		results.ElapsedTime.Milliseconds(),
		results.OpsPerSecond,
		results.LatencyNs)
	fmt.Fprintf(w, "======================\n")
}
