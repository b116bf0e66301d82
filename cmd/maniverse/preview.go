package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/maniverse/pkg/integrations"
)

var (
	previewOut  string
	previewNail bool
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the saved design as SVG",
	Long:  "Render the hand illustration for the saved shape and color. With --nail only a single nail is drawn.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cliLogger(cmd)

		store, closer, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closer.Close()

		sel := store.Selection()
		summary, ok := integrations.Summarize(sel)
		if !ok {
			return fmt.Errorf("cannot render preview: %w", integrations.ErrIncompleteSelection)
		}

		doc := integrations.RenderIllustration(*sel.Shape, *sel.Color)
		if previewNail {
			doc = integrations.RenderNail(*sel.Shape, *sel.Color)
		}

		if err := os.WriteFile(previewOut, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", previewOut, err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "✨ Design written to %s\n", previewOut)
		fmt.Fprintf(out, "Shape:  %s %s\n", summary.ShapeIcon, summary.ShapeName)
		fmt.Fprintf(out, "Color:  %s (%s)\n", summary.ColorName, summary.ColorHex)
		fmt.Fprintf(out, "Finish: %s, %s\n", summary.FinishLabel, summary.FinishDescription)
		return nil
	},
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "", "SVG file to write")
	previewCmd.Flags().BoolVar(&previewNail, "nail", false, "draw a single nail instead of the hand")
	_ = previewCmd.MarkFlagRequired("out")
}
