package cli

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/matzehuels/resonicon/pkg/icon"
)

// layoutCommand prints the node and connection tables for a canvas size.
// It is a debugging aid for style files.
func (c *CLI) layoutCommand() *cobra.Command {
	size := defaultRenderSize

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print node positions and connections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			style, err := c.loadStyle()
			if err != nil {
				return err
			}
			nodes, err := icon.Nodes(size, icon.WithStyle(style))
			if err != nil {
				return err
			}
			printLayout(size, nodes)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", size, "canvas edge length in pixels")

	return cmd
}

func printLayout(size int, nodes []icon.Node) {
	printInfo("Layout for a %dx%d canvas", size, size)
	printNewline()

	for _, n := range nodes {
		deg := icon.NodeAngle(n.Index) * 180 / math.Pi
		line := fmt.Sprintf("(%7.2f, %7.2f)  %6.1f°  r=%.1f", n.Pos.X, n.Pos.Y, deg, n.Radius)
		if n.Active {
			line = StyleHighlight.Render(line + "  active")
		}
		printKeyValue(fmt.Sprintf("node %d", n.Index), line)
	}

	printNewline()
	active := make(map[icon.Connection]bool)
	for _, a := range icon.ActiveConnections() {
		active[a] = true
	}
	for i, conn := range icon.Connections() {
		value := fmt.Sprintf("%2d → %-2d  alpha %d", conn.From, conn.To, conn.Alpha)
		if active[icon.Connection{From: conn.From, To: conn.To}] {
			value = StyleHighlight.Render(value + "  active")
		}
		printKeyValue(fmt.Sprintf("edge %d", i), value)
	}
}
