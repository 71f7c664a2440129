package main

import (
	"fmt"
	"os"

	"github.com/bezout/euclid"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "euclid",
		Short: "Compute the GCD and Bézout coefficients of two integers",
		Long: "euclid reads two whitespace-separated non-negative 64-bit integers\n" +
			"from standard input and solves gcd(a,b) = a*x + b*y with both forms of\n" +
			"the extended Euclidean algorithm, printing each solution as \"gcd x y\".",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var a, b uint64
			if _, err := fmt.Fscan(cmd.InOrStdin(), &a, &b); err != nil {
				return fmt.Errorf("failed to read two non-negative integers: %w", err)
			}
			// recursive first, then iterative; they agree on the GCD but
			// may print distinct coefficient pairs
			fmt.Fprintln(cmd.OutOrStdout(), euclid.ExtGCDRecursive(a, b))
			fmt.Fprintln(cmd.OutOrStdout(), euclid.ExtGCD(a, b))
			return nil
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
