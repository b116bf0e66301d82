package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/maniverse/pkg/data"
)

var (
	pink = lipgloss.Color("#FF6B9D")

	headerStyle = lipgloss.NewStyle().Foreground(pink).Bold(true).Align(lipgloss.Center)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(pink)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			default:
				return cellStyle
			}
		}).
		Headers(headers...)
}

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the available nail shapes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable("#", "ID", "Name", "Icon")
		for i, s := range data.Shapes() {
			t.Row(fmt.Sprintf("%d", i+1), s.ID, s.Name, s.Icon)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
	},
}

var colorsCmd = &cobra.Command{
	Use:   "colors",
	Short: "List the available colors and finishes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		t := newTable("#", "ID", "Name", "Hex", "Finish")
		for i, c := range data.Colors() {
			t.Row(fmt.Sprintf("%d", i+1), c.ID, c.Name, c.Hex, c.Type.Label())
		}
		fmt.Fprintln(cmd.OutOrStdout(), t)
	},
}
