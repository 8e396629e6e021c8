package cmd

import (
	"flag"
	"fmt"
	"os"
	"time"

	"rubbishrsa/src/operations"
	"rubbishrsa/src/utils"
)

// BenchmarkCommand handles the benchmark subcommand.
func BenchmarkCommand(args []string) error {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)

	var (
		duration = fs.Duration("duration", 3*time.Second, "How long to run each sample")
		samples  = fs.Int("samples", 3, "Number of benchmark samples to take")
		bits     = fs.Int("bits", 512, "Bit size of the benchmark candidate")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s benchmark [--duration DURATION] [--samples COUNT] [--bits N]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nBenchmark Miller-Rabin primality testing throughput\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	fmt.Printf("Benchmarking %d-bit primality testing...\n", *bits)
	fmt.Printf("Duration per sample: %v, samples: %d\n\n", *duration, *samples)

	result, err := operations.RunBenchmark(operations.BenchmarkOptions{
		Duration: *duration,
		Samples:  *samples,
		Bits:     *bits,
	})
	if err != nil {
		return err
	}

	for i, sample := range result.Samples {
		fmt.Printf("Sample %d/%d: %d tests in %v (%.0f tests/sec)\n",
			i+1, len(result.Samples), sample.Operations, sample.Elapsed.Round(time.Millisecond), sample.OpsPerSecond)
	}

	fmt.Printf("\nAverage rate: %.0f primality tests/sec\n", result.AvgOpsPerSecond)

	fmt.Printf("\nEstimated time to generate a prime of size:\n")
	for _, bitSize := range []int{256, 512, 1024, 2048} {
		guessesPerPrime := float64(bitSize) * 0.7 // rough density of primes near 2^bitSize, per the prime number theorem
		estimated := utils.EstimateTime(uint64(guessesPerPrime), result.AvgOpsPerSecond)
		fmt.Printf("  %4d bits: %s\n", bitSize, utils.FormatDuration(estimated))
	}

	return nil
}
