// Command dsbeam runs objective-space beam searches over design states and
// reports the resulting frontier.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dsbeam",
	Short: "Objective-space beam search over design states",
	Long: `dsbeam explores a design-state tree with a soft-Pareto beam search,
steered by a diversity-modulated target field, and can semantically
re-rank and analyze the resulting frontier.`,
}

func main() {
	rootCmd.AddCommand(analyzeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
