package operations

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"rubbishrsa/src/numtheory"
)

// BenchmarkOptions configures the primality/modexp benchmark.
type BenchmarkOptions struct {
	Duration time.Duration
	Samples  int
	Bits     int
}

// BenchmarkSample is a single benchmark sample.
type BenchmarkSample struct {
	Operations   uint64
	Elapsed      time.Duration
	OpsPerSecond float64
}

// BenchmarkResult is the outcome of a benchmark run.
type BenchmarkResult struct {
	Samples         []BenchmarkSample
	TotalOps        uint64
	TotalTime       time.Duration
	AvgOpsPerSecond float64
}

// RunBenchmark times how many Miller-Rabin primality tests rubbishrsa can
// run per second at opts.Bits - the number that governs how long GeneratePrime
// and the attack engine's brute-force searches are expected to take on this
// machine, adapted from the teacher's sequential-squaring benchmark to the
// operations this toolkit actually performs.
func RunBenchmark(opts BenchmarkOptions) (*BenchmarkResult, error) {
	candidate, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), uint(opts.Bits)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate benchmark candidate: %v", err)
	}
	candidate.SetBit(candidate, 0, 1)

	var samples []BenchmarkSample
	var totalOps uint64
	var totalTime time.Duration

	for sample := 1; sample <= opts.Samples; sample++ {
		ops, elapsed := benchmarkPrimality(candidate, opts.Duration)
		opsPerSecond := float64(ops) / elapsed.Seconds()

		samples = append(samples, BenchmarkSample{
			Operations:   ops,
			Elapsed:      elapsed,
			OpsPerSecond: opsPerSecond,
		})
		totalOps += ops
		totalTime += elapsed
	}

	return &BenchmarkResult{
		Samples:         samples,
		TotalOps:        totalOps,
		TotalTime:       totalTime,
		AvgOpsPerSecond: float64(totalOps) / totalTime.Seconds(),
	}, nil
}

func benchmarkPrimality(candidate *big.Int, duration time.Duration) (uint64, time.Duration) {
	var operations uint64
	start := time.Now()
	end := start.Add(duration)

	for time.Now().Before(end) {
		for i := 0; i < 16; i++ {
			numtheory.IsPrime(candidate, numtheory.DefaultRounds)
			operations++
		}
	}

	return operations, time.Since(start)
}
