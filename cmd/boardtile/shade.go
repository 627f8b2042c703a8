package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/boardtile/internal/colorutil"
)

func newShadeCmd() *cobra.Command {
	var delta float64

	cmd := &cobra.Command{
		Use:   "shade COLOR",
		Short: "Print the shadow colour derived from COLOR",
		Example: `  boardtile shade "#3498DB"
  boardtile shade 196 --delta 0.1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shade, err := colorutil.DeriveLuminance(lipgloss.Color(args[0]), delta)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(shade))
			return nil
		},
	}

	cmd.Flags().Float64Var(&delta, "delta", colorutil.ShadowDelta, "Relative luminance change, -1 to 1")

	return cmd
}
