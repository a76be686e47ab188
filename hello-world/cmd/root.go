package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/analogrelay/go-ffi-examples/add"
	"github.com/analogrelay/go-ffi-examples/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "hello-world",
	Short:         "Prints a sum computed by the add library",
	Long:          `Calls add.Add(1, 2) and prints the result on a single line.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printSum(cmd.OutOrStdout())
	},
}

func printSum(w io.Writer) error {
	_, err := fmt.Fprintf(w, "I'm using the library: %v\n", add.Add(1, 2))
	if err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Execute runs the root command and exits with status 1 on failure.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	logger, lerr := logging.New(false)
	if lerr != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	logger.Error("hello-world failed", zap.Error(err))
	_ = logger.Sync()
	os.Exit(1)
}
