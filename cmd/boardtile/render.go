package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/boardtile/internal/tile"
)

type renderOptions struct {
	color        string
	label        string
	depth        float64
	borderRadius float64
	width        float64
	height       float64
	disabled     bool
	props        bool
}

var captionStyle = lipgloss.NewStyle().Faint(true)

func newRenderCmd() *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a tile at rest and pressed",
		Long:  `Print one tile idle and pressed side by side, or its computed geometry with --props.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runRender(opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "#3498DB", "Face colour (hex or ANSI index)")
	cmd.Flags().StringVar(&opts.label, "label", "1", "Tile label")
	cmd.Flags().Float64Var(&opts.depth, "depth", tile.DefaultDepth, "Raised height of the face")
	cmd.Flags().Float64Var(&opts.borderRadius, "radius", tile.DefaultBorderRadius, "Corner radius")
	cmd.Flags().Float64Var(&opts.width, "width", tile.DefaultWidth, "Face width")
	cmd.Flags().Float64Var(&opts.height, "height", tile.DefaultHeight, "Face height")
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Render a disabled tile")
	cmd.Flags().BoolVar(&opts.props, "props", false, "Print computed geometry as YAML")

	return cmd
}

func runRender(opts renderOptions) (string, error) {
	cfg := tile.DefaultConfig(lipgloss.Color(opts.color))
	cfg.Label = opts.label
	cfg.Depth = opts.depth
	cfg.BorderRadius = opts.borderRadius
	cfg.Width = opts.width
	cfg.Height = opts.height
	cfg.Enabled = !opts.disabled

	t, err := tile.New(cfg)
	if err != nil {
		return "", fmt.Errorf("invalid tile: %w", err)
	}

	idle := t.Props()
	idleView := tile.DefaultRenderer().Render(t)

	// a disabled tile refuses the press, so both columns stay at rest
	t.PressIn()
	pressed := t.Props()
	pressedView := tile.DefaultRenderer().Render(t)
	t.PressOut()

	if opts.props {
		data, err := yaml.Marshal(map[string]any{"idle": idle, "pressed": pressed})
		if err != nil {
			return "", fmt.Errorf("encode props: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, captionStyle.Render("idle"), idleView),
		"    ",
		lipgloss.JoinVertical(lipgloss.Left, captionStyle.Render("pressed"), pressedView),
	), nil
}

// staticBoard lays the tiles out at rest, for output that is not a terminal.
func staticBoard(configs []tile.Config, columns int) (string, error) {
	if columns <= 0 {
		columns = 1
	}

	renderer := tile.DefaultRenderer()
	var rows []string
	var row []string
	for i, cfg := range configs {
		t, err := tile.New(cfg)
		if err != nil {
			return "", fmt.Errorf("tile %d: %w", i, err)
		}
		if len(row) > 0 {
			row = append(row, "  ")
		}
		row = append(row, renderer.Render(t))
		if (i+1)%columns == 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}
