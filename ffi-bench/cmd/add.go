package cmd

import (
	"fmt"
	"math/rand"

	"github.com/analogrelay/go-ffi-examples/add"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Benchmark the Go and cgo implementations of add",
	Long: `Sums random uint8 pairs from concurrent workers using either add.Add ("go")
or add.AddCgo ("cgo"), so the two results can be compared side by side.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAddBenchmark(cmd)
	},
}

func runAddBenchmark(cmd *cobra.Command) error {
	duration, workers, err := benchmarkConfig(cmd)
	if err != nil {
		return err
	}

	impl, err := cmd.Flags().GetString("impl")
	if err != nil {
		return fmt.Errorf("failed to get impl: %w", err)
	}

	name, op, err := addOp(impl)
	if err != nil {
		return err
	}

	results, err := executeBenchmark(cmd.Context(), name, op, workers, duration)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	printResults(cmd.OutOrStdout(), results)
	return nil
}

func addOp(impl string) (string, operation, error) {
	switch impl {
	case "go":
		return "Go add", func(r *rand.Rand) bool {
			a, b := uint8(r.Intn(256)), uint8(r.Intn(256))
			return add.Add(a, b)-b == a
		}, nil
	case "cgo":
		return "cgo add_c", func(r *rand.Rand) bool {
			a, b := uint8(r.Intn(256)), uint8(r.Intn(256))
			return add.AddCgo(a, b) == add.Add(a, b)
		}, nil
	default:
		return "", nil, fmt.Errorf("unknown implementation %q (want go or cgo)", impl)
	}
}

func init() {
	rootCmd.AddCommand(addCmd)
	addBenchmarkFlags(addCmd)
	addCmd.Flags().StringP("impl", "i", "cgo", "Implementation to benchmark: go or cgo")
}
