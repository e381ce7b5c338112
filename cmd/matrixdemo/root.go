package main

import (
	"github.com/spf13/cobra"
)

// flagFloat selects float64 elements instead of int.
const flagFloat = "float"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matrixdemo",
		Short:         "Demonstrate the dense matrix value type",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			useFloat, err := cmd.Flags().GetBool(flagFloat)
			if err != nil {
				return err
			}
			if useFloat {
				return walkthrough[float64](cmd.OutOrStdout())
			}

			return walkthrough[int](cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().Bool(flagFloat, false, "use float64 elements instead of int")

	root.AddCommand(newDetCmd(), newTransposeCmd())

	return root
}

func newDetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det LITERAL",
		Short: `Print the determinant of a matrix literal such as "1 2; 3 4"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useFloat, err := cmd.Flags().GetBool(flagFloat)
			if err != nil {
				return err
			}
			if useFloat {
				return printDet(cmd.OutOrStdout(), args[0], parseFloat)
			}

			return printDet(cmd.OutOrStdout(), args[0], parseInt)
		},
	}
}

func newTransposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transpose LITERAL",
		Short: `Print the transpose of a matrix literal such as "1 2 3; 4 5 6"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			useFloat, err := cmd.Flags().GetBool(flagFloat)
			if err != nil {
				return err
			}
			if useFloat {
				return printTranspose(cmd.OutOrStdout(), args[0], parseFloat)
			}

			return printTranspose(cmd.OutOrStdout(), args[0], parseInt)
		},
	}
}
