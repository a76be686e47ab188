package cmd

import (
	"os"
	"runtime"
	"time"

	"github.com/analogrelay/go-ffi-examples/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ffi-bench",
	Short: "Benchmarks calls across the cgo boundary",
	Long:  `Tools to compare the cost of plain Go calls with calls that cross the C ABI through cgo`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return err
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

func addBenchmarkFlags(cmd *cobra.Command) {
	cmd.Flags().DurationP("duration", "t", 10*time.Second, "Duration to run the benchmark")
	cmd.Flags().IntP("workers", "w", runtime.NumCPU(), "Number of concurrent workers")
}
