package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/analogrelay/go-ffi-examples/ffi"
	"github.com/spf13/cobra"
)

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Benchmark calls to the exported ping_go probe",
	Long: `Calls ping_go through its C entry point from concurrent workers.
Each call crosses Go -> C -> Go. The probe's marker output is discarded while the
benchmark runs and every result is checked against the negated input. The probe
takes no lock, so workers only contend on the output writer.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPingBenchmark(cmd)
	},
}

func runPingBenchmark(cmd *cobra.Command) error {
	duration, workers, err := benchmarkConfig(cmd)
	if err != nil {
		return err
	}

	prev := ffi.SetOutput(io.Discard)
	defer ffi.SetOutput(prev)

	results, err := executeBenchmark(cmd.Context(), "cgo ping_go", pingOp, workers, duration)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	printResults(cmd.OutOrStdout(), results)
	return nil
}

func pingOp(r *rand.Rand) bool {
	in := r.Intn(2) == 0
	return ffi.CallPing(in) == !in
}

func init() {
	rootCmd.AddCommand(pingCmd)
	addBenchmarkFlags(pingCmd)
}
